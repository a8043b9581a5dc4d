package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"corec/internal/driver"
)

// debounce collapses the burst of events an editor save produces.
const debounce = 100 * time.Millisecond

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [flags] file.core",
		Short: "Re-parse a file every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}
	cmd.Flags().Bool("clear", false, "clear the screen before every run")
	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := filepath.Clean(args[0])
	clearScreen, err := cmd.Flags().GetBool("clear")
	if err != nil {
		return fmt.Errorf("failed to get clear flag: %w", err)
	}
	opts, err := sessionOptions(cmd, path)
	if err != nil {
		return err
	}
	opts.Interactive = true

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()
	// каталог, а не файл: редакторы сохраняют через rename
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rerun := func() error {
		if clearScreen {
			fmt.Fprint(cmd.OutOrStdout(), "\033[H\033[2J")
		}
		return watchOnce(ctx, cmd, opts, path)
	}
	if err := rerun(); err != nil {
		return err
	}

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %w", err)
		case <-fire:
			fire = nil
			if err := rerun(); err != nil {
				return err
			}
		}
	}
}

// watchOnce parses path in a fresh session. Syntax errors are already
// rendered by the session and do not stop the watcher.
func watchOnce(ctx context.Context, cmd *cobra.Command, opts driver.Options, path string) error {
	s := driver.NewSession(opts)
	stamp := time.Now().Format("15:04:05")
	file, err := s.Load(path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "[%s] %v\n", stamp, err)
		return nil
	}
	res, err := s.Parse(ctx, file)
	if errors.Is(err, driver.ErrAborted) {
		fmt.Fprintf(cmd.ErrOrStderr(), "[%s] %s: failed\n", stamp, path)
		return nil
	}
	if err != nil {
		return err
	}
	top := res.Builder.TopLevel(res.Top)
	fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: ok (%d imports, %d variables, %d functions)\n",
		stamp, path, len(top.Imports), len(top.Variables), len(top.Functions))
	return nil
}
