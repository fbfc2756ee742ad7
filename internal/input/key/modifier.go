package key

import "strings"

// Modifier is a bitmask of modifier keys held during a key press.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModCtrl  Modifier = 1 << 1
	ModAlt   Modifier = 1 << 2
	ModMeta  Modifier = 1 << 3
)

// With returns the modifier set with the given modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Has returns true if the given modifier is set.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift returns true if Shift is set.
func (m Modifier) HasShift() bool { return m.Has(ModShift) }

// HasCtrl returns true if Ctrl is set.
func (m Modifier) HasCtrl() bool { return m.Has(ModCtrl) }

// HasAlt returns true if Alt is set.
func (m Modifier) HasAlt() bool { return m.Has(ModAlt) }

// HasMeta returns true if Meta/Command is set.
func (m Modifier) HasMeta() bool { return m.Has(ModMeta) }

// String returns a stable representation like "Ctrl+Shift".
func (m Modifier) String() string {
	if m == ModNone {
		return "None"
	}
	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	if m.HasMeta() {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}

// ModifierFromName resolves a lowercase modifier name. Returns ModNone
// for unknown names.
func ModifierFromName(name string) Modifier {
	switch name {
	case "shift":
		return ModShift
	case "ctrl", "control":
		return ModCtrl
	case "alt", "option":
		return ModAlt
	case "meta", "cmd", "command", "super":
		return ModMeta
	default:
		return ModNone
	}
}
