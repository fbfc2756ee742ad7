package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Theme holds the overlay styles. Hint codes render in two parts:
// the already-typed prefix and the still-pending remainder.
type Theme struct {
	// Typed styles the prefix characters the user has entered.
	Typed Style

	// Pending styles the remaining characters of each code.
	Pending Style

	// Highlight styles the rect of targets still in the candidate
	// subset.
	Highlight Style

	// Badge styles the truncation badge ("+N").
	Badge Style
}

// DefaultTheme returns the built-in overlay theme.
func DefaultTheme() Theme {
	amber := ColorFromRGB(255, 215, 95)
	return Theme{
		Typed:     NewStyle(ColorFromRGB(135, 95, 0)).WithBackground(amber).Dim(),
		Pending:   NewStyle(ColorFromRGB(26, 26, 26)).WithBackground(amber).Bold(),
		Highlight: DefaultStyle().Reverse(),
		Badge:     NewStyle(ColorFromRGB(255, 95, 95)).Bold(),
	}
}

// LoadTheme reads a theme from a JSON file. Missing keys keep their
// defaults; a missing file is an error.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme file %s: %w", path, err)
	}
	return ParseTheme(data)
}

// ParseTheme decodes a theme from JSON bytes.
func ParseTheme(data []byte) (Theme, error) {
	if !gjson.ValidBytes(data) {
		return Theme{}, fmt.Errorf("theme is not valid JSON")
	}

	theme := DefaultTheme()
	doc := gjson.ParseBytes(data)

	for _, entry := range []struct {
		path  string
		style *Style
	}{
		{"hint.typed", &theme.Typed},
		{"hint.pending", &theme.Pending},
		{"target.highlight", &theme.Highlight},
		{"badge", &theme.Badge},
	} {
		if node := doc.Get(entry.path); node.Exists() {
			s, err := parseStyle(node, *entry.style)
			if err != nil {
				return Theme{}, fmt.Errorf("theme %s: %w", entry.path, err)
			}
			*entry.style = s
		}
	}

	return theme, nil
}

// parseStyle reads fg, bg and attrs from a theme node, starting from
// the given base style.
func parseStyle(node gjson.Result, base Style) (Style, error) {
	s := base

	if fg := node.Get("fg"); fg.Exists() {
		c, err := ColorFromHex(fg.String())
		if err != nil {
			return Style{}, err
		}
		s.Foreground = c
	}
	if bg := node.Get("bg"); bg.Exists() {
		c, err := ColorFromHex(bg.String())
		if err != nil {
			return Style{}, err
		}
		s.Background = c
	}
	if attrs := node.Get("attrs"); attrs.Exists() {
		s.Attributes = AttrNone
		for _, a := range attrs.Array() {
			attr, err := attributeFromName(a.String())
			if err != nil {
				return Style{}, err
			}
			s.Attributes |= attr
		}
	}

	return s, nil
}

func attributeFromName(name string) (Attribute, error) {
	switch name {
	case "bold":
		return AttrBold, nil
	case "dim":
		return AttrDim, nil
	case "italic":
		return AttrItalic, nil
	case "underline":
		return AttrUnderline, nil
	case "reverse":
		return AttrReverse, nil
	default:
		return AttrNone, fmt.Errorf("unknown attribute %q", name)
	}
}

// WriteDefaultTheme writes the built-in theme to path as JSON,
// creating parent directories as needed. Existing files are left
// alone.
func WriteDefaultTheme(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	data, err := marshalTheme(DefaultTheme())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating theme directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing theme file %s: %w", path, err)
	}
	return nil
}

// marshalTheme encodes a theme as JSON.
func marshalTheme(theme Theme) ([]byte, error) {
	out := []byte("{}")

	for _, entry := range []struct {
		path  string
		style Style
	}{
		{"hint.typed", theme.Typed},
		{"hint.pending", theme.Pending},
		{"target.highlight", theme.Highlight},
		{"badge", theme.Badge},
	} {
		var err error
		if hex := entry.style.Foreground.Hex(); hex != "" {
			out, err = sjson.SetBytes(out, entry.path+".fg", hex)
			if err != nil {
				return nil, err
			}
		}
		if hex := entry.style.Background.Hex(); hex != "" {
			out, err = sjson.SetBytes(out, entry.path+".bg", hex)
			if err != nil {
				return nil, err
			}
		}
		out, err = sjson.SetBytes(out, entry.path+".attrs", attributeNames(entry.style.Attributes))
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

func attributeNames(attrs Attribute) []string {
	names := []string{}
	for _, entry := range []struct {
		attr Attribute
		name string
	}{
		{AttrBold, "bold"},
		{AttrDim, "dim"},
		{AttrItalic, "italic"},
		{AttrUnderline, "underline"},
		{AttrReverse, "reverse"},
	} {
		if attrs.Has(entry.attr) {
			names = append(names, entry.name)
		}
	}
	return names
}
