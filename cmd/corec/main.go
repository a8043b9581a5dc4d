package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"corec/internal/driver"
	"corec/internal/version"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "corec",
		Short:         "Front end of the Core language",
		Long:          `corec tokenizes and parses Core sources and reports syntax diagnostics`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupTracing(cmd)
		},
	}

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.String("config", "", "explicit config file (.toml, .yaml, .yml)")
	pf.String("error-display-style", "", "diagnostic style (default|simple|extended|json)")
	pf.Int("error-limit", 0, "line groups per record; half of it is drained on abort")
	pf.Bool("fail-fast", false, "abort at the first checkpoint with pending errors")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("timings", false, "show timing information")
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")

	root.AddCommand(
		newTokenizeCmd(),
		newParseCmd(),
		newCheckCmd(),
		newReplCmd(),
		newWatchCmd(),
		newVersionCmd(),
	)
	return root
}

// run executes the CLI and maps the outcome onto an exit status.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.Execute()
	closeTracing(root)
	if err == nil {
		return 0
	}
	// диагностики и уведомление уже напечатаны
	if !errors.Is(err, driver.ErrAborted) {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return 1
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// isTerminal проверяет, является ли writer терминалом
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
