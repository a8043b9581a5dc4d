package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"corec/internal/trace"
)

// CheckResult is the outcome of one file of a parallel check.
type CheckResult struct {
	Path string
	// Output holds everything the file's session rendered.
	Output []byte
	// Err is nil, ErrAborted, or a load/write error.
	Err error
}

// Check parses paths concurrently, one Session per file, with at most jobs
// files in flight (jobs <= 0 means GOMAXPROCS). Outputs are written to
// opts.Out in input order once every file is done. The returned error is
// ErrAborted if any file failed to parse.
func Check(ctx context.Context, paths []string, opts Options, jobs int) ([]CheckResult, error) {
	root := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "check", trace.CurrentSpan(ctx))
	defer root.End(fmt.Sprintf("%d files", len(paths)))
	ctx = trace.WithSpan(ctx, root.ID())

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]CheckResult, len(paths))
	if opts.Progress != nil {
		for _, path := range paths {
			opts.Progress.OnEvent(Event{Path: path, Status: StatusQueued})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(paths))))
	for i, path := range paths {
		g.Go(func() error {
			// индексы уникальны для каждой горутины, мьютекс не нужен
			results[i] = checkOne(gctx, path, opts)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	var failed error
	for _, r := range results {
		if _, err := out.Write(r.Output); err != nil {
			return results, fmt.Errorf("write diagnostics: %w", err)
		}
		if r.Err == nil {
			continue
		}
		if !errors.Is(r.Err, ErrAborted) {
			if _, err := fmt.Fprintf(out, "error: %v\n", r.Err); err != nil {
				return results, fmt.Errorf("write diagnostics: %w", err)
			}
		}
		failed = ErrAborted
	}
	return results, failed
}

func checkOne(ctx context.Context, path string, opts Options) CheckResult {
	var buf bytes.Buffer
	opts.Out = &buf
	s := NewSession(opts)
	s.path = path
	res := CheckResult{Path: path}
	defer func() {
		status := StatusDone
		if res.Err != nil {
			status = StatusError
		}
		s.report(StageNone, status)
	}()
	file, err := s.Load(path)
	if err != nil {
		res.Err = err
		return res
	}
	_, res.Err = s.Parse(ctx, file)
	res.Output = buf.Bytes()
	return res
}
