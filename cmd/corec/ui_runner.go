package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"corec/internal/driver"
	"corec/internal/ui"
)

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

func shouldUseTUI(mode uiMode, out io.Writer) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return isTerminal(out)
	}
}

type checkOutcome struct {
	results []driver.CheckResult
	err     error
}

// runCheckWithUI runs driver.Check behind the progress screen. Diagnostics
// are held back until the screen is gone, then written to diagOut.
func runCheckWithUI(ctx context.Context, paths []string, opts driver.Options, jobs int, screen, diagOut io.Writer) ([]driver.CheckResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)
	var held bytes.Buffer

	go func() {
		o := opts
		o.Out = &held
		o.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.Check(ctx, paths, o, jobs)
		close(events)
		outcomeCh <- checkOutcome{results: res, err: err}
	}()

	program := tea.NewProgram(ui.NewProgressModel("checking", paths, events), tea.WithOutput(screen), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// экран мог закрыться раньше, дочитываем события
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if _, err := diagOut.Write(held.Bytes()); err != nil {
		return outcome.results, fmt.Errorf("write diagnostics: %w", err)
	}
	if uiErr != nil && ctx.Err() == nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
