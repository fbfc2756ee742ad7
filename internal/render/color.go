package render

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a terminal color. True color (RGB) and indexed palette
// colors are supported.
type Color struct {
	R, G, B uint8
	// Indexed means R holds a palette index (0-255) and G, B are
	// ignored.
	Indexed bool
	// Default marks the terminal's default color.
	Default bool
}

// ColorDefault is the terminal's default (transparent) color.
var ColorDefault = Color{Default: true}

// ColorFromRGB creates a true color.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromIndex creates an indexed palette color.
func ColorFromIndex(index uint8) Color {
	return Color{R: index, Indexed: true}
}

// ColorFromHex parses "#RGB", "#RRGGBB", "RGB" or "RRGGBB".
func ColorFromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return Color{}, fmt.Errorf("invalid hex color length: %q", hex)
	}

	v, err := strconv.ParseUint(hex, 16, 24)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color: %q", hex)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// IsDefault reports whether this is the default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Equals reports whether two colors are the same.
func (c Color) Equals(other Color) bool {
	if c.Default != other.Default {
		return false
	}
	if c.Default {
		return true
	}
	if c.Indexed != other.Indexed {
		return false
	}
	if c.Indexed {
		return c.R == other.R
	}
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Hex returns the "#RRGGBB" form of a true color. Indexed and default
// colors return an empty string.
func (c Color) Hex() string {
	if c.Default || c.Indexed {
		return ""
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	if c.Default {
		return "default"
	}
	if c.Indexed {
		return fmt.Sprintf("idx(%d)", c.R)
	}
	return c.Hex()
}
