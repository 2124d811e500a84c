package menu

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrDuplicateID is returned when two actions share an identifier.
	ErrDuplicateID = errors.New("duplicate action id")

	// ErrInvalidAccelerator is returned for a malformed keyboard shortcut.
	ErrInvalidAccelerator = errors.New("invalid accelerator")

	// ErrInvalidNode is returned for a structurally invalid item.
	ErrInvalidNode = errors.New("invalid menu node")
)

// Menu represents the root menu structure: an ordered list of top-level submenus.
// A Menu is immutable once built; accessors return copies.
type Menu struct {
	title    string
	platform Platform
	items    []Item
}

// New assembles and validates a menu from top-level submenus.
func New(title string, p Platform, items ...Item) (*Menu, error) {
	m := &Menu{
		title:    title,
		platform: p,
		items:    make([]Item, len(items)),
	}
	for i := range items {
		m.items[i] = items[i].clone()
	}

	if err := m.validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Title returns the application title of the menu.
func (m *Menu) Title() string { return m.title }

// Platform returns the platform the menu was built for.
func (m *Menu) Platform() Platform { return m.platform }

// Len returns the number of top-level submenus.
func (m *Menu) Len() int { return len(m.items) }

// Items returns a deep copy of the top-level submenus.
func (m *Menu) Items() []Item {
	out := make([]Item, len(m.items))
	for i := range m.items {
		out[i] = m.items[i].clone()
	}
	return out
}

// Walk visits every item depth-first in menu order.
// The path holds the titles of the enclosing submenus.
// Returning false from fn stops the walk.
func (m *Menu) Walk(fn func(path []string, it Item) bool) {
	for i := range m.items {
		if !walkItem(nil, m.items[i], fn) {
			return
		}
	}
}

func walkItem(path []string, it Item, fn func([]string, Item) bool) bool {
	if !fn(path, it.clone()) {
		return false
	}

	if it.Kind != KindSubmenu {
		return true
	}

	sub := append(path[:len(path):len(path)], it.Title)
	for i := range it.Items {
		if !walkItem(sub, it.Items[i], fn) {
			return false
		}
	}
	return true
}

// Actions returns every application action item in menu order.
func (m *Menu) Actions() []Item {
	var out []Item
	m.Walk(func(_ []string, it Item) bool {
		if it.Kind == KindAction {
			out = append(out, it)
		}
		return true
	})
	return out
}

// Find returns the action item with the given id.
func (m *Menu) Find(id ActionID) (Item, bool) {
	var (
		found Item
		ok    bool
	)
	m.Walk(func(_ []string, it Item) bool {
		if it.Kind == KindAction && it.ID == id {
			found, ok = it, true
			return false
		}
		return true
	})
	return found, ok
}

// Submenu returns the top-level submenu with the given title.
func (m *Menu) Submenu(title string) (Item, bool) {
	for i := range m.items {
		if m.items[i].Title == title {
			return m.items[i].clone(), true
		}
	}
	return Item{}, false
}

// Resolved returns a copy of the menu with every accelerator resolved
// to the menu's platform convention.
func (m *Menu) Resolved() *Menu {
	out := &Menu{title: m.title, platform: m.platform, items: m.Items()}
	for i := range out.items {
		resolveItem(&out.items[i], m.platform)
	}
	return out
}

func resolveItem(it *Item, p Platform) {
	it.Accelerator = it.Accelerator.Resolve(p)
	for i := range it.Items {
		resolveItem(&it.Items[i], p)
	}
}

// MarshalJSON renders the menu for the frontend.
func (m *Menu) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Title    string   `json:"title"`
		Platform Platform `json:"platform"`
		Items    []Item   `json:"items"`
	}{
		Title:    m.title,
		Platform: m.platform,
		Items:    m.items,
	})
}

// validate checks every node and the uniqueness of action ids across the tree.
func (m *Menu) validate() error {
	if len(m.items) == 0 {
		return fmt.Errorf("%w: menu has no submenus", ErrInvalidNode)
	}

	for i := range m.items {
		if m.items[i].Kind != KindSubmenu {
			return fmt.Errorf("%w: top-level %s %q is not a submenu",
				ErrInvalidNode, m.items[i].Kind, m.items[i].Title)
		}
	}

	seen := make(map[ActionID][]string)

	var err error
	m.Walk(func(path []string, it Item) bool {
		if err = it.validate(); err != nil {
			return false
		}
		if it.Kind != KindAction {
			return true
		}
		if prev, dup := seen[it.ID]; dup {
			err = fmt.Errorf("%w: %q in %v and %v", ErrDuplicateID, it.ID, prev, path)
			return false
		}
		seen[it.ID] = path
		return true
	})

	return err
}
