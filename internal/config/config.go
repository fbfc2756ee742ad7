// Package config loads framework settings from a TOML file with
// environment overrides layered on top of built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lodestar-tui/lodestar/internal/hint"
	"github.com/lodestar-tui/lodestar/internal/input/key"
)

// Validation errors.
var (
	ErrBadActivateKey = errors.New("config: invalid hints.activateKey")
	ErrBadMaxHints    = errors.New("config: hints.maxHints must be positive")
	ErrBadCodeLength  = errors.New("config: hints.maxCodeLength must be positive")
)

// HintsConfig configures hint assignment and session behavior.
type HintsConfig struct {
	// Alphabet is the ordered hint character set.
	Alphabet string `toml:"alphabet"`

	// MaxHints caps how many targets receive codes per session.
	MaxHints int `toml:"maxHints"`

	// MaxCodeLength caps hint code length; candidates beyond the
	// alphabet's capacity at this length are dropped.
	MaxCodeLength int `toml:"maxCodeLength"`

	// ActivateKey is the key spec that enters hint mode, e.g. "f" or
	// "<C-f>".
	ActivateKey string `toml:"activateKey"`
}

// UIConfig configures the overlay presentation.
type UIConfig struct {
	// ThemePath points at a JSON theme file. Empty selects the
	// built-in theme.
	ThemePath string `toml:"themePath"`

	// ShowTruncation renders a "+N" badge when targets were dropped.
	ShowTruncation bool `toml:"showTruncation"`
}

// ScriptConfig configures optional Lua hooks.
type ScriptConfig struct {
	// Path points at a Lua script defining filter/on_resolve hooks.
	// Empty disables scripting.
	Path string `toml:"path"`
}

// Config is the merged framework configuration.
type Config struct {
	Hints   HintsConfig  `toml:"hints"`
	UI      UIConfig     `toml:"ui"`
	Scripts ScriptConfig `toml:"scripts"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Hints: HintsConfig{
			Alphabet:      hint.DefaultAlphabet,
			MaxHints:      hint.DefaultMaxHints,
			MaxCodeLength: hint.DefaultMaxCodeLength,
			ActivateKey:   "f",
		},
		UI: UIConfig{
			ShowTruncation: true,
		},
	}
}

// Validate checks the configuration for values the framework cannot
// work with.
func (c Config) Validate() error {
	if _, err := hint.NewAlphabet(c.Hints.Alphabet); err != nil {
		return fmt.Errorf("config: hints.alphabet: %w", err)
	}
	if c.Hints.MaxHints <= 0 {
		return ErrBadMaxHints
	}
	if c.Hints.MaxCodeLength <= 0 {
		return ErrBadCodeLength
	}
	if _, err := key.Parse(c.Hints.ActivateKey); err != nil {
		return fmt.Errorf("%w: %v", ErrBadActivateKey, err)
	}
	return nil
}

// Alphabet returns the validated hint alphabet.
func (c Config) Alphabet() (hint.Alphabet, error) {
	return hint.NewAlphabet(c.Hints.Alphabet)
}

// ActivateEvent returns the parsed activation key event.
func (c Config) ActivateEvent() (key.Event, error) {
	return key.Parse(c.Hints.ActivateKey)
}

// DefaultPath returns the default settings file location, honoring
// XDG_CONFIG_HOME.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "lodestar", "settings.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "lodestar", "settings.toml")
}
