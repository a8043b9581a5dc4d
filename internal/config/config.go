package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"corec/internal/diagfmt"
	"corec/internal/version"
)

const (
	DefaultDisplayStyle = "default"
	DefaultLimit        = 25
	ManifestName        = "Core.toml"
)

var (
	ErrInvalidStyle      = errors.New("invalid error display style")
	ErrInvalidLimit      = errors.New("invalid error limit")
	ErrInvalidVersion    = errors.New("invalid package version")
	ErrIncompatibleCore  = errors.New("tool version does not satisfy package core constraint")
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// ErrorConfig: секция [config.error].
type ErrorConfig struct {
	DisplayStyle string `toml:"display-style" yaml:"display-style"`
	Limit        int    `toml:"limit" yaml:"limit"`
	FailFast     bool   `toml:"fail-fast" yaml:"fail-fast"`
}

// PackageConfig: секция [package].
type PackageConfig struct {
	Name    string `toml:"name" yaml:"name"`
	Version string `toml:"version" yaml:"version"`
	Core    string `toml:"core" yaml:"core"`
}

type Config struct {
	Error   ErrorConfig
	Package PackageConfig
	// Sources lists the files that contributed, lowest priority first.
	Sources []string
}

func Default() Config {
	return Config{Error: ErrorConfig{DisplayStyle: DefaultDisplayStyle, Limit: DefaultLimit}}
}

// Style returns the parsed display style; call after Validate.
func (c Config) Style() diagfmt.Style {
	s, err := diagfmt.ParseStyle(c.Error.DisplayStyle)
	if err != nil {
		return diagfmt.StyleDefault
	}
	return s
}

// DrainCount is how many records are rendered on abort.
func (c Config) DrainCount() int {
	return c.Error.Limit / 2
}

// Validate checks the resolved values.
func (c Config) Validate() error {
	if _, err := diagfmt.ParseStyle(c.Error.DisplayStyle); err != nil {
		return fmt.Errorf("%w: %q (want one of %s)", ErrInvalidStyle, c.Error.DisplayStyle, strings.Join(diagfmt.StyleNames(), ", "))
	}
	if c.Error.Limit < 1 {
		return fmt.Errorf("%w: %d (must be at least 1)", ErrInvalidLimit, c.Error.Limit)
	}
	if c.Package.Version != "" {
		if _, err := semver.NewVersion(c.Package.Version); err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidVersion, c.Package.Version, err)
		}
	}
	if c.Package.Core != "" {
		ok, err := version.Satisfies(c.Package.Core)
		if err != nil {
			return fmt.Errorf("[package].core: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: %s does not match %q", ErrIncompatibleCore, version.Version, c.Package.Core)
		}
	}
	return nil
}

// Overrides carries command-line values; nil fields were not set.
type Overrides struct {
	DisplayStyle *string
	Limit        *int
	FailFast     *bool
}

func (c *Config) apply(o Overrides) {
	if o.DisplayStyle != nil {
		c.Error.DisplayStyle = *o.DisplayStyle
	}
	if o.Limit != nil {
		c.Error.Limit = *o.Limit
	}
	if o.FailFast != nil {
		c.Error.FailFast = *o.FailFast
	}
}
