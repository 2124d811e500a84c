package menu

import (
	"fmt"
	"strings"
)

// Kind identifies which variant of menu node an Item holds.
type Kind int

const (
	// KindAction is an application action carrying a stable ActionID.
	KindAction Kind = iota + 1

	// KindPredefined is a standard action implemented natively by the host.
	KindPredefined

	// KindSeparator is a display-only divider.
	KindSeparator

	// KindSubmenu is a labeled, ordered group of child items.
	KindSubmenu
)

var kindNames = map[Kind]string{
	KindAction:     "action",
	KindPredefined: "predefined",
	KindSeparator:  "separator",
	KindSubmenu:    "submenu",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText renders the kind by name so the frontend does not depend on ordinals.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidNode, int(k))
	}
	return []byte(k.String()), nil
}

// Role names a host-supplied standard menu action.
type Role string

const (
	RoleAbout       Role = "about"
	RoleHide        Role = "hide"
	RoleHideOthers  Role = "hide_others"
	RoleShowAll     Role = "show_all"
	RoleQuit        Role = "quit"
	RoleUndo        Role = "undo"
	RoleRedo        Role = "redo"
	RoleCut         Role = "cut"
	RoleCopy        Role = "copy"
	RolePaste       Role = "paste"
	RoleSelectAll   Role = "select_all"
	RoleMinimize    Role = "minimize"
	RoleMaximize    Role = "maximize"
	RoleCloseWindow Role = "close_window"
)

// roleTitles holds the default label the host shows for each role.
var roleTitles = map[Role]string{
	RoleAbout:       "About " + AppName,
	RoleHide:        "Hide " + AppName,
	RoleHideOthers:  "Hide Others",
	RoleShowAll:     "Show All",
	RoleQuit:        "Quit " + AppName,
	RoleUndo:        "Undo",
	RoleRedo:        "Redo",
	RoleCut:         "Cut",
	RoleCopy:        "Copy",
	RolePaste:       "Paste",
	RoleSelectAll:   "Select All",
	RoleMinimize:    "Minimize",
	RoleMaximize:    "Maximize",
	RoleCloseWindow: "Close Window",
}

// Title returns the default host label for the role.
func (r Role) Title() string {
	return roleTitles[r]
}

// Valid reports whether the role is one the host knows how to perform.
func (r Role) Valid() bool {
	_, ok := roleTitles[r]
	return ok
}

// Item represents an individual node in the menu tree.
// Only the fields relevant to its Kind are set.
type Item struct {
	// Kind selects the variant.
	Kind Kind `json:"kind"`

	// ID is the action identifier, set for KindAction only.
	ID ActionID `json:"id,omitempty"`

	// Role is the host action, set for KindPredefined only.
	Role Role `json:"role,omitempty"`

	// Title is the display label.
	Title string `json:"title,omitempty"`

	// Accelerator is the optional keyboard shortcut of an action.
	Accelerator Accelerator `json:"accelerator,omitempty"`

	// Enabled reports whether the item can be activated.
	Enabled bool `json:"enabled"`

	// Items are the children of a submenu.
	Items []Item `json:"items,omitempty"`
}

// Action creates an enabled application action item.
func Action(id ActionID, title string, accel Accelerator) Item {
	return Item{
		Kind:        KindAction,
		ID:          id,
		Title:       title,
		Accelerator: accel,
		Enabled:     true,
	}
}

// Predefined creates a host-implemented item labeled with the role's default title.
func Predefined(role Role) Item {
	return Item{
		Kind:    KindPredefined,
		Role:    role,
		Title:   role.Title(),
		Enabled: true,
	}
}

// Separator creates a divider.
func Separator() Item {
	return Item{Kind: KindSeparator}
}

// Submenu creates a labeled group holding items in the given order.
func Submenu(title string, items ...Item) Item {
	return Item{
		Kind:    KindSubmenu,
		Title:   title,
		Enabled: true,
		Items:   items,
	}
}

// clone returns a deep copy of the item and its children.
func (it Item) clone() Item {
	if it.Items != nil {
		children := make([]Item, len(it.Items))
		for i := range it.Items {
			children[i] = it.Items[i].clone()
		}
		it.Items = children
	}
	return it
}

// validate checks the item in isolation. Uniqueness is checked by the tree.
func (it Item) validate() error {
	switch it.Kind {
	case KindAction:
		if it.ID == "" {
			return fmt.Errorf("%w: action %q has no id", ErrInvalidNode, it.Title)
		}
		if strings.TrimSpace(it.Title) == "" {
			return fmt.Errorf("%w: action %q has no title", ErrInvalidNode, it.ID)
		}
		if err := it.Accelerator.Validate(); err != nil {
			return fmt.Errorf("action %q: %w", it.ID, err)
		}
	case KindPredefined:
		if !it.Role.Valid() {
			return fmt.Errorf("%w: unknown role %q", ErrInvalidNode, it.Role)
		}
	case KindSeparator:
	case KindSubmenu:
		if strings.TrimSpace(it.Title) == "" {
			return fmt.Errorf("%w: submenu has no title", ErrInvalidNode)
		}
		if len(it.Items) == 0 {
			return fmt.Errorf("%w: submenu %q is empty", ErrInvalidNode, it.Title)
		}
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidNode, int(it.Kind))
	}
	return nil
}
