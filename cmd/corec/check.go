package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"corec/internal/driver"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] file.core...",
		Short: "Parse many files in parallel and report diagnostics",
		Long: `Check parses every file in its own session. Diagnostics are printed in
argument order; the exit status is 1 if any file failed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}
	cmd.Flags().IntP("jobs", "j", 0, "files parsed concurrently (0 = GOMAXPROCS)")
	cmd.Flags().BoolP("quiet", "q", false, "do not print the summary line")
	cmd.Flags().String("ui", "off", "progress screen (auto|on|off)")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	// конфиг ищется от первого файла
	opts, err := sessionOptions(cmd, args[0])
	if err != nil {
		return err
	}
	var results []driver.CheckResult
	if shouldUseTUI(mode, cmd.OutOrStdout()) {
		results, err = runCheckWithUI(cmd.Context(), args, opts, jobs, cmd.OutOrStdout(), opts.Out)
	} else {
		results, err = driver.Check(cmd.Context(), args, opts, jobs)
	}
	printTimings(cmd, opts.Timer)
	if !quiet {
		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "checked %d files, %d failed\n", len(results), failed)
	}
	return err
}
