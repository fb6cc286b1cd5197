package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/deck/internal/validation"
	deckerrors "github.com/alexisbeaulieu97/deck/pkg/errors"
)

// Load reads settings from path over the defaults. A missing file is not an
// error: the defaults are returned as is.
func Load(path string) (Settings, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return Settings{}, deckerrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, deckerrors.NewYAMLParseError(path, err)
	}

	if err := validation.Struct(settings); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/deck/config.yaml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "deck", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".deck", "config.yaml")
	}
	return filepath.Join(home, ".config", "deck", "config.yaml")
}
