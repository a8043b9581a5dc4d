package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"corec/internal/trace"
)

// setupTracing inspects the trace flags and attaches a tracer to the
// command context.
func setupTracing(cmd *cobra.Command) error {
	root := cmd.Root()
	output, err := root.PersistentFlags().GetString("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := root.PersistentFlags().GetString("trace-level")
	if err != nil {
		return fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	formatStr, err := root.PersistentFlags().GetString("trace-format")
	if err != nil {
		return fmt.Errorf("failed to get trace-format flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	// --trace без уровня включает phase
	if output != "" && !root.PersistentFlags().Changed("trace-level") {
		level = trace.LevelPhase
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	tracer := trace.Nop
	if level != trace.LevelOff {
		cfg := trace.Config{Level: level, Format: format, OutputPath: output}
		if output == "" || output == "-" {
			cfg.Output = cmd.ErrOrStderr()
		}
		tracer, err = trace.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to create tracer: %w", err)
		}
	}
	ctx = trace.WithTracer(ctx, tracer)
	cmd.SetContext(ctx)
	root.SetContext(ctx)
	return nil
}

// closeTracing flushes the tracer; PersistentPostRun is skipped on error,
// so this runs from run() instead.
func closeTracing(root *cobra.Command) {
	tracer := trace.FromContext(root.Context())
	if err := tracer.Flush(); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "trace: flush error: %v\n", err)
	}
	if err := tracer.Close(); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "trace: close error: %v\n", err)
	}
}
