package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"corec/internal/config"
	"corec/internal/driver"
	"corec/internal/observ"
	"corec/internal/source"
)

// resolveColor applies --color to one output stream.
func resolveColor(cmd *cobra.Command, w io.Writer) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch mode {
	case "on", "always":
		return true, nil
	case "off", "never":
		return false, nil
	case "auto":
		return isTerminal(w), nil
	}
	return false, fmt.Errorf("invalid --color %q (expected: auto|on|off)", mode)
}

// loadConfig resolves Core.toml, --config and the error flags. Only flags
// the user actually set override the files.
func loadConfig(cmd *cobra.Command, input string) (config.Config, error) {
	pf := cmd.Root().PersistentFlags()
	file, err := pf.GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}

	ov := config.Overrides{
		DisplayStyle: changedString(pf, "error-display-style"),
		Limit:        changedInt(pf, "error-limit"),
		FailFast:     changedBool(pf, "fail-fast"),
	}

	startDir := "."
	if input != "" && input != "-" {
		startDir = filepath.Dir(input)
	}
	cfg, err := config.Load(config.LoadOptions{StartDir: startDir, File: file, Overrides: ov})
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// sessionOptions gathers everything a driver session needs for input.
func sessionOptions(cmd *cobra.Command, input string) (driver.Options, error) {
	cfg, err := loadConfig(cmd, input)
	if err != nil {
		return driver.Options{}, err
	}
	errOut := cmd.ErrOrStderr()
	useColor, err := resolveColor(cmd, errOut)
	if err != nil {
		return driver.Options{}, err
	}
	opts := driver.Options{Config: cfg, Out: errOut, Color: useColor}
	if on, _ := cmd.Root().PersistentFlags().GetBool("timings"); on {
		opts.Timer = observ.NewTimer()
	}
	return opts, nil
}

// printTimings writes the --timings table to stderr when enabled.
func printTimings(cmd *cobra.Command, t *observ.Timer) {
	if t == nil {
		return
	}
	fmt.Fprint(cmd.ErrOrStderr(), t.Summary())
}

// openInput loads a file, or stdin for "-".
func openInput(cmd *cobra.Command, s *driver.Session, path string) (*source.File, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return s.AddSource("<stdin>", data), nil
	}
	return s.Load(path)
}

func changedString(fs *pflag.FlagSet, name string) *string {
	if !fs.Changed(name) {
		return nil
	}
	v, err := fs.GetString(name)
	if err != nil {
		return nil
	}
	return &v
}

func changedInt(fs *pflag.FlagSet, name string) *int {
	if !fs.Changed(name) {
		return nil
	}
	v, err := fs.GetInt(name)
	if err != nil {
		return nil
	}
	return &v
}

func changedBool(fs *pflag.FlagSet, name string) *bool {
	if !fs.Changed(name) {
		return nil
	}
	v, err := fs.GetBool(name)
	if err != nil {
		return nil
	}
	return &v
}
