package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"corec/internal/ast"
	"corec/internal/diagfmt"
	"corec/internal/driver"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] file.core",
		Short: "Parse a Core source file and print its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().String("format", "tree", "output format (tree|json|yaml|msgpack)")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if !validASTFormat(format) {
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
	res, err := s.Parse(cmd.Context(), file)
	printTimings(cmd, opts.Timer)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	treeColor, err := resolveColor(cmd, out)
	if err != nil {
		return err
	}
	return printAST(out, format, res.Builder, res.Top, treeColor)
}

func validASTFormat(format string) bool {
	switch format {
	case "tree", "json", "yaml", "msgpack":
		return true
	}
	return false
}

func printAST(w io.Writer, format string, b *ast.Builder, top ast.TopLevelID, color bool) error {
	root := diagfmt.BuildAST(b, top)
	switch format {
	case "json":
		return diagfmt.FormatASTJSON(w, root)
	case "yaml":
		return diagfmt.FormatASTYAML(w, root)
	case "msgpack":
		return diagfmt.FormatASTMsgpack(w, root)
	default:
		return diagfmt.FormatASTTree(w, root, color)
	}
}
