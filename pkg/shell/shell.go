// Package shell owns the built menu and exposes it to the host webview over
// a local HTTP bridge: the menu tree, inbound activations, and the outbound
// menu-action event stream.
package shell

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mchmarny/jot/pkg/dispatch"
	"github.com/mchmarny/jot/pkg/menu"
	"github.com/mchmarny/jot/pkg/server"
)

// Shell ties the menu, the dispatcher, and the notification fan-out together.
type Shell struct {
	menu       *menu.Menu
	dispatcher *dispatch.Dispatcher
	events     *Broadcaster
}

// New creates a Shell. The dispatcher is expected to deliver to events.
func New(m *menu.Menu, d *dispatch.Dispatcher, events *Broadcaster) *Shell {
	return &Shell{
		menu:       m,
		dispatcher: d,
		events:     events,
	}
}

// Menu returns the menu owned by the shell.
func (s *Shell) Menu() *menu.Menu {
	return s.menu
}

// Activate delivers a host activation to the dispatcher.
func (s *Shell) Activate(id string) bool {
	return s.dispatcher.Dispatch(dispatch.Activation{ID: id})
}

// Options returns the server options registering the bridge routes.
func (s *Shell) Options() []server.Option {
	return []server.Option{
		server.WithSimpleHealth(),
		server.WithHandler("GET /menu", s.menuHandler()),
		server.WithHandler("POST /activate/{id}", s.activateHandler()),
		server.WithHandler("GET /events", s.eventsHandler()),
	}
}

// Run serves the bridge and blocks until the context is canceled or an error occurs.
func (s *Shell) Run(ctx context.Context, opt ...server.Option) error {
	slog.Info("starting shell",
		"platform", s.menu.Platform(),
		"submenus", s.menu.Len(),
		"actions", len(s.menu.Actions()))

	opts := append(s.Options(), opt...)
	return server.New(opts...).Serve(ctx)
}

// menuHandler responds with the menu tree, accelerators resolved for the platform.
func (s *Shell) menuHandler() http.Handler {
	resolved := s.menu.Resolved()

	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, resolved)
	})
}

// activateHandler accepts an activation from the host. Ignored ids are not
// an error, so the response is 202 either way.
func (s *Shell) activateHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		forwarded := s.Activate(id)

		writeJSON(w, http.StatusAccepted, map[string]any{
			"id":        id,
			"forwarded": forwarded,
		})
	})
}

// eventsHandler streams notifications as server-sent events until the client goes away.
func (s *Shell) eventsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			writeError(w, http.StatusInternalServerError, "streaming unsupported")
			return
		}

		// the stream outlives the server write timeout
		if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
			slog.Debug("write deadline not cleared", "error", err)
		}

		events, cancel := s.events.Subscribe()
		defer cancel()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		slog.Debug("event subscriber connected", "remote", r.RemoteAddr)

		for {
			select {
			case <-r.Context().Done():
				slog.Debug("event subscriber disconnected", "remote", r.RemoteAddr)
				return
			case n, ok := <-events:
				if !ok {
					return
				}
				if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", n.Event, n.Payload); err != nil {
					slog.Debug("event write failed", "error", err)
					return
				}
				flusher.Flush()
			}
		}
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	slog.Error("handling error response",
		"status", status,
		"message", message,
	)
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	b, err := json.Marshal(data)
	if err != nil {
		slog.Error("failed to marshal JSON response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(b); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}
