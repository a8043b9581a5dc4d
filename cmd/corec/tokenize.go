package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"corec/internal/diagfmt"
	"corec/internal/driver"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.core",
		Short: "Tokenize a Core source file",
		Long:  `Tokenize breaks a Core source file (or - for stdin) into tokens`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	opts, err := sessionOptions(cmd, args[0])
	if err != nil {
		return err
	}
	s := driver.NewSession(opts)
	file, err := openInput(cmd, s, args[0])
	if err != nil {
		return err
	}
	res, err := s.Tokenize(cmd.Context(), file)
	printTimings(cmd, opts.Timer)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return diagfmt.FormatTokensJSON(out, res.Tokens, s.FileSet)
	case "msgpack":
		return diagfmt.FormatTokensMsgpack(out, res.Tokens, s.FileSet)
	default:
		return diagfmt.FormatTokensPretty(out, res.Tokens, s.FileSet)
	}
}
