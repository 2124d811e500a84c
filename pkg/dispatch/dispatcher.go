// Package dispatch forwards menu activations for application actions to the
// rest of the shell as named notifications.
package dispatch

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mchmarny/jot/pkg/menu"
	"github.com/mchmarny/jot/pkg/metric"
)

// EventMenuAction is the event name carried by every outbound notification.
const EventMenuAction = "menu-action"

// Activation is raised by the host when the user selects a menu item.
// ID is empty or opaque for predefined items.
type Activation struct {
	ID string
}

// Notification is the outbound message for an application action.
type Notification struct {
	Event   string `json:"event"`
	Payload string `json:"payload"`
}

// Notifier receives notifications. Implementations must not block.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// Dispatcher filters activations against the application action ids and
// forwards matches. It keeps no state between activations.
type Dispatcher struct {
	notifier  Notifier
	logger    *slog.Logger
	forwarded metric.IncrementalCounter
	ignored   metric.IncrementalCounter
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// WithMetrics registers forwarded and ignored activation counters with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(d *Dispatcher) {
		d.forwarded = metric.NewCounter(reg, "menu", "actions_total",
			"Menu actions forwarded to the application, by id.", "id")
		d.ignored = metric.NewCounter(reg, "menu", "ignored_total",
			"Menu activations not forwarded.")
	}
}

// WithCounters sets the forwarded and ignored counters directly.
func WithCounters(forwarded, ignored metric.IncrementalCounter) Option {
	return func(d *Dispatcher) {
		d.forwarded = forwarded
		d.ignored = ignored
	}
}

// New creates a Dispatcher delivering to n. A nil n discards notifications.
func New(n Notifier, opts ...Option) *Dispatcher {
	if n == nil {
		n = NotifierFunc(func(Notification) {})
	}

	d := &Dispatcher{
		notifier:  n,
		logger:    slog.Default(),
		forwarded: metric.Discard,
		ignored:   metric.Discard,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Dispatch forwards the activation if it names an application action and
// reports whether a notification was sent. Anything else is ignored.
func (d *Dispatcher) Dispatch(a Activation) bool {
	if !menu.IsAction(a.ID) {
		d.ignored.Increment()
		d.logger.Debug("menu activation ignored", "id", a.ID)
		return false
	}

	d.notifier.Notify(Notification{Event: EventMenuAction, Payload: a.ID})
	d.forwarded.Increment(a.ID)
	d.logger.Debug("menu action forwarded", "id", a.ID)

	return true
}
