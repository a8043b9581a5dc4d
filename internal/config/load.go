package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// layer is one configuration file; absent keys stay nil.
type layer struct {
	Config struct {
		Error struct {
			DisplayStyle *string `toml:"display-style" yaml:"display-style"`
			Limit        *int    `toml:"limit" yaml:"limit"`
			FailFast     *bool   `toml:"fail-fast" yaml:"fail-fast"`
		} `toml:"error" yaml:"error"`
	} `toml:"config" yaml:"config"`
	Package *PackageConfig `toml:"package" yaml:"package"`
}

func (c *Config) merge(l layer, path string) {
	e := l.Config.Error
	c.apply(Overrides{DisplayStyle: e.DisplayStyle, Limit: e.Limit, FailFast: e.FailFast})
	if l.Package != nil {
		c.Package = *l.Package
	}
	c.Sources = append(c.Sources, path)
}

type LoadOptions struct {
	// StartDir is where the Core.toml search begins, usually the input
	// file's directory. Empty disables the search.
	StartDir string
	// File is an explicit config file (.toml, .yaml or .yml).
	File      string
	Overrides Overrides
}

// Load resolves and validates the configuration.
func Load(opts LoadOptions) (Config, error) {
	cfg := Default()

	if opts.StartDir != "" {
		path, ok, err := FindManifest(opts.StartDir)
		if err != nil {
			return Config{}, err
		}
		if ok {
			l, err := readTOML(path)
			if err != nil {
				return Config{}, err
			}
			cfg.merge(l, path)
		}
	}

	if opts.File != "" {
		l, err := readFile(opts.File)
		if err != nil {
			return Config{}, err
		}
		cfg.merge(l, opts.File)
	}

	cfg.apply(opts.Overrides)
	if err := cfg.Validate(); err != nil {
		if n := len(cfg.Sources); n > 0 {
			return Config{}, fmt.Errorf("%s: %w", cfg.Sources[n-1], err)
		}
		return Config{}, err
	}
	return cfg, nil
}

// FindManifest walks up from startDir looking for Core.toml.
func FindManifest(startDir string) (string, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func readFile(path string) (layer, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return readTOML(path)
	case ".yaml", ".yml":
		return readYAML(path)
	}
	return layer{}, fmt.Errorf("%s: %w (want .toml, .yaml or .yml)", path, ErrUnsupportedFormat)
}

func readTOML(path string) (layer, error) {
	var l layer
	if _, err := toml.DecodeFile(path, &l); err != nil {
		return layer{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return l, nil
}

func readYAML(path string) (layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return layer{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var l layer
	if err := yaml.Unmarshal(data, &l); err != nil {
		return layer{}, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
	}
	return l, nil
}
