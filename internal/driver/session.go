package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"corec/internal/config"
	"corec/internal/diag"
	"corec/internal/diagfmt"
	"corec/internal/observ"
	"corec/internal/source"
	"corec/internal/trace"
)

// ErrAborted is returned once a session has drained its errors and
// written the abort notice.
var ErrAborted = errors.New("aborting due to previous errors")

type Options struct {
	Config config.Config
	// Diagnostics go here, usually stderr.
	Out   io.Writer
	Color bool
	// Timer is optional; nil disables --timings bookkeeping.
	Timer *observ.Timer
	// Interactive sessions (repl, watch) drain without the abort notice.
	Interactive bool
	// Progress receives per-file events of Check; nil disables them.
	Progress ProgressSink
}

// Session: состояние одного прогона: файлы, очередь диагностик, настройки.
type Session struct {
	FileSet *source.FileSet
	Bag     *diag.Bag
	Config  config.Config

	out         io.Writer
	color       bool
	timer       *observ.Timer
	interactive bool
	progress    ProgressSink
	path        string // reported to progress
}

func NewSession(opts Options) *Session {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	cfg := opts.Config
	if cfg.Error.Limit == 0 && cfg.Error.DisplayStyle == "" {
		cfg = config.Default()
	}
	return &Session{
		FileSet:     source.NewFileSet(),
		Bag:         diag.NewBag(),
		Config:      cfg,
		out:         out,
		color:       opts.Color,
		timer:       opts.Timer,
		interactive: opts.Interactive,
		progress:    opts.Progress,
	}
}

// Load reads a file from disk into the session.
func (s *Session) Load(path string) (*source.File, error) {
	id, err := s.FileSet.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s.FileSet.Get(id), nil
}

// AddSource registers an in-memory buffer (REPL input, stdin).
func (s *Session) AddSource(name string, content []byte) *source.File {
	return s.FileSet.Get(s.FileSet.AddVirtual(name, content))
}

// Reporter is the sink handed to the lexer and parser.
func (s *Session) Reporter() diag.Reporter {
	return diag.BagReporter{Bag: s.Bag}
}

// RenderOpts derives renderer settings from the configuration.
func (s *Session) RenderOpts() diagfmt.RenderOpts {
	return diagfmt.RenderOpts{
		Style: s.Config.Style(),
		Limit: s.Config.Error.Limit,
		Color: s.color,
	}
}

// shouldStop is the checkpoint predicate: the flood guard always stops,
// pending errors stop only in fail-fast mode.
func (s *Session) shouldStop() bool {
	if s.Bag.Flooded() {
		return true
	}
	return s.Config.Error.FailFast && s.Bag.HasErrors()
}

// Drain renders up to n queued records and empties the queue; n < 0 means all.
func (s *Session) Drain(n int) error {
	items := s.Bag.Items()
	if n >= 0 && n < len(items) {
		items = items[:n]
	}
	err := diagfmt.RenderAll(s.out, items, s.FileSet, s.RenderOpts())
	s.Bag.Reset()
	return err
}

// Abort drains floor(limit/2) records, writes the notice and returns
// ErrAborted (or the write error). Interactive sessions skip the notice.
func (s *Session) Abort(ctx context.Context) error {
	pending := s.Bag.Len()
	trace.Error(trace.FromContext(ctx), "abort", strconv.Itoa(pending)+" records", trace.CurrentSpan(ctx))
	if s.Bag.Flooded() {
		if _, err := fmt.Fprintln(s.out, diagfmt.FloodNotice); err != nil {
			return fmt.Errorf("write diagnostics: %w", err)
		}
	}
	if err := s.Drain(s.Config.DrainCount()); err != nil {
		return err
	}
	if s.interactive {
		return ErrAborted
	}
	if _, err := fmt.Fprintln(s.out, diagfmt.AbortNotice(s.color)); err != nil {
		return fmt.Errorf("write diagnostics: %w", err)
	}
	return ErrAborted
}

// Finish is the end-of-run checkpoint: pending errors abort.
func (s *Session) Finish(ctx context.Context) error {
	if s.Bag.HasErrors() || s.Bag.Flooded() {
		return s.Abort(ctx)
	}
	return nil
}

func (s *Session) phase(name string) func(note string) {
	idx := s.timer.Begin(name)
	return func(note string) { s.timer.End(idx, note) }
}
