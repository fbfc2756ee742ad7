// Package key models decoded keyboard input and parses the key
// specification strings used for activation bindings.
package key

// Key identifies a pressed key.
type Key uint16

const (
	// KeyNone is the zero value, no key.
	KeyNone Key = iota

	// KeyRune is a printable character key; Event.Rune holds the
	// character.
	KeyRune

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// String returns the canonical key name.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyRune:
		return "Rune"
	case KeyEscape:
		return "Esc"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "BS"
	case KeyDelete:
		return "Del"
	case KeySpace:
		return "Space"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// IsSpecial returns true for non-character keys.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// KeyFromName resolves a lowercase key name to a Key. Returns KeyNone
// for unknown names.
func KeyFromName(name string) Key {
	switch name {
	case "esc", "escape":
		return KeyEscape
	case "enter", "return", "cr":
		return KeyEnter
	case "tab":
		return KeyTab
	case "bs", "backspace":
		return KeyBackspace
	case "del", "delete":
		return KeyDelete
	case "space":
		return KeySpace
	case "up":
		return KeyUp
	case "down":
		return KeyDown
	case "left":
		return KeyLeft
	case "right":
		return KeyRight
	default:
		return KeyNone
	}
}
