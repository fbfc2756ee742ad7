package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "LODESTAR_"

// Load reads the settings file at path, layers environment overrides
// on top of the defaults, and validates the result. A missing file is
// not an error; defaults plus environment apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults apply.
		case err != nil:
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, &ParseError{Path: path, Err: err}
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides individual settings from LODESTAR_* variables.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvPrefix + "ALPHABET"); ok {
		cfg.Hints.Alphabet = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "ACTIVATE_KEY"); ok {
		cfg.Hints.ActivateKey = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "MAX_HINTS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Hints.MaxHints = n
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "MAX_CODE_LENGTH"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Hints.MaxCodeLength = n
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "THEME"); ok {
		cfg.UI.ThemePath = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "SCRIPT"); ok {
		cfg.Scripts.Path = v
	}
}

// ParseError reports a malformed settings file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
