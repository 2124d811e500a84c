package menu

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform is the host operating system the menu is built for,
// using runtime.GOOS values.
type Platform string

const (
	Darwin  Platform = "darwin"
	Linux   Platform = "linux"
	Windows Platform = "windows"
)

// CurrentPlatform returns the platform the process is running on.
func CurrentPlatform() Platform {
	return Platform(runtime.GOOS)
}

// HasAppMenu reports whether the platform convention requires a leading
// application menu in the global menu bar.
func (p Platform) HasAppMenu() bool {
	return p == Darwin
}

// Modifier tokens accepted in an accelerator.
const (
	// ModPrimary resolves to ModCmd on darwin and ModCtrl elsewhere.
	ModPrimary = "CmdOrCtrl"
	ModCmd     = "Cmd"
	ModCtrl    = "Ctrl"
	ModAlt     = "Alt"
	ModShift   = "Shift"
	ModSuper   = "Super"
)

var modifiers = map[string]struct{}{
	ModPrimary: {},
	ModCmd:     {},
	ModCtrl:    {},
	ModAlt:     {},
	ModShift:   {},
	ModSuper:   {},
}

var namedKeys = map[string]struct{}{
	"Enter": {}, "Tab": {}, "Space": {}, "Escape": {}, "Backspace": {}, "Delete": {},
	"Up": {}, "Down": {}, "Left": {}, "Right": {},
	"Home": {}, "End": {}, "PageUp": {}, "PageDown": {},
}

// Accelerator is a platform-neutral keyboard shortcut such as "CmdOrCtrl+Shift+S".
// Zero or more modifiers are followed by exactly one key. The empty value means no shortcut.
// Tokens are separated by "+", so the plus key itself cannot be expressed;
// "CmdOrCtrl++" is rejected. Use "=" (as zoom in does) for the shifted plus key.
type Accelerator string

// Validate returns ErrInvalidAccelerator if the shortcut cannot be parsed.
func (a Accelerator) Validate() error {
	if a == "" {
		return nil
	}

	tokens := strings.Split(string(a), "+")
	seen := make(map[string]bool, len(tokens))

	for i, tok := range tokens {
		if tok == "" {
			return fmt.Errorf("%w: %q has an empty token", ErrInvalidAccelerator, a)
		}

		if i < len(tokens)-1 {
			if _, ok := modifiers[tok]; !ok {
				return fmt.Errorf("%w: %q has unknown modifier %q", ErrInvalidAccelerator, a, tok)
			}
			if seen[tok] {
				return fmt.Errorf("%w: %q repeats modifier %q", ErrInvalidAccelerator, a, tok)
			}
			seen[tok] = true
			continue
		}

		if !validKey(tok) {
			return fmt.Errorf("%w: %q has invalid key %q", ErrInvalidAccelerator, a, tok)
		}
	}

	return nil
}

func validKey(k string) bool {
	if _, ok := namedKeys[k]; ok {
		return true
	}
	if _, ok := modifiers[k]; ok {
		return false
	}
	if len(k) == 1 {
		return k[0] > ' ' && k[0] < 0x7f
	}
	// F1..F24
	var n int
	if _, err := fmt.Sscanf(k, "F%d", &n); err == nil && fmt.Sprintf("F%d", n) == k {
		return n >= 1 && n <= 24
	}
	return false
}

// Resolve replaces the primary modifier with the platform's convention.
func (a Accelerator) Resolve(p Platform) Accelerator {
	if a == "" {
		return a
	}

	mod := ModCtrl
	if p == Darwin {
		mod = ModCmd
	}

	tokens := strings.Split(string(a), "+")
	for i := range tokens[:len(tokens)-1] {
		if tokens[i] == ModPrimary {
			tokens[i] = mod
		}
	}

	return Accelerator(strings.Join(tokens, "+"))
}
