package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"corec/internal/diag"
	"corec/internal/driver"
	"corec/internal/lexer"
	"corec/internal/source"
	"corec/internal/token"
)

func newReplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse declarations interactively",
		Long: `Each complete input (balanced braces and parentheses) is parsed in a
fresh session and its syntax tree is printed. Type 'exit' or press Ctrl+D to quit.`,
		Args: cobra.NoArgs,
		RunE: runRepl,
	}
	cmd.Flags().String("format", "tree", "tree output format (tree|json|yaml)")
	cmd.Flags().String("history", "", "history file (default ~/.core_history)")
	return cmd
}

func runRepl(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "tree" && format != "json" && format != "yaml" {
		return fmt.Errorf("unknown format: %s", format)
	}
	historyFile, err := cmd.Flags().GetString("history")
	if err != nil {
		return fmt.Errorf("failed to get history flag: %w", err)
	}
	if historyFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			historyFile = filepath.Join(home, ".core_history")
		}
	}

	opts, err := sessionOptions(cmd, "")
	if err != nil {
		return err
	}
	opts.Interactive = true
	useColor, err := resolveColor(cmd, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	prompt := promptStyle(useColor, color.FgHiRed).Sprint("core> ")
	more := promptStyle(useColor, color.FgHiBlack).Sprint("...   ")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		Stdin:             io.NopCloser(cmd.InOrStdin()),
		Stdout:            cmd.OutOrStdout(),
		Stderr:            cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("readline init failed: %w", err)
	}
	defer rl.Close()

	var acc strings.Builder
	for {
		if acc.Len() > 0 {
			rl.SetPrompt(more)
		} else {
			rl.SetPrompt(prompt)
		}
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			acc.Reset()
			continue
		}
		if err != nil {
			// EOF (Ctrl+D)
			return nil
		}
		if acc.Len() == 0 && strings.TrimSpace(line) == "exit" {
			return nil
		}
		acc.WriteString(line)
		acc.WriteByte('\n')
		src := acc.String()
		if openDepth(src) > 0 {
			continue
		}
		acc.Reset()
		if strings.TrimSpace(src) == "" {
			continue
		}
		if err := evalInput(cmd, opts, src, format, useColor); err != nil {
			return err
		}
	}
}

// evalInput parses one complete input. Syntax errors are rendered and
// swallowed; only output failures stop the loop.
func evalInput(cmd *cobra.Command, opts driver.Options, src, format string, useColor bool) error {
	s := driver.NewSession(opts)
	res, err := s.Parse(cmd.Context(), s.AddSource("<repl>", []byte(src)))
	if errors.Is(err, driver.ErrAborted) {
		return nil
	}
	if err != nil {
		return err
	}
	return printAST(cmd.OutOrStdout(), format, res.Builder, res.Top, useColor)
}

// openDepth is the number of unclosed '{' and '(' in src; the lexer
// keeps brackets inside strings and comments out of the count.
func openDepth(src string) int {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<repl>", []byte(src)))
	depth := 0
	for _, tok := range lexer.Scan(file, lexer.Options{Reporter: diag.NopReporter{}}) {
		switch tok.Kind {
		case token.LBrace, token.LParen:
			depth++
		case token.RBrace, token.RParen:
			depth--
		}
	}
	return depth
}

func promptStyle(on bool, attr color.Attribute) *color.Color {
	c := color.New(attr, color.Bold)
	if on {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
