// Package file provides file-based configuration stores.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// AliasStore loads charset alias overrides from a TOML file in the
// sercha config directory. Harvested corpora routinely mislabel their
// charsets, so deployments can remap labels before classification:
//
//	[aliases]
//	latin1 = "windows-1252"
//	x-sjis = "shift_jis"
type AliasStore struct {
	filePath string
}

// NewAliasStore creates a TOML-based alias store.
// If configDir is empty, defaults to ~/.sercha/charsets.toml.
func NewAliasStore(configDir string) (*AliasStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".sercha")
	}

	return &AliasStore{
		filePath: filepath.Join(configDir, "charsets.toml"),
	}, nil
}

// Load reads the alias map, keyed by lower-cased label. A missing file
// yields an empty map: overrides are optional.
func (s *AliasStore) Load() (map[string]string, error) {
	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg struct {
		Aliases map[string]string `toml:"aliases"`
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.filePath, err)
	}

	aliases := make(map[string]string, len(cfg.Aliases))
	for label, target := range cfg.Aliases {
		aliases[strings.ToLower(label)] = target
	}
	return aliases, nil
}
