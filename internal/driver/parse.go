package driver

import (
	"context"
	"strconv"

	"corec/internal/ast"
	"corec/internal/parser"
	"corec/internal/source"
	"corec/internal/token"
	"corec/internal/trace"
)

type ParseResult struct {
	File    *source.File
	Tokens  []token.Token
	Builder *ast.Builder
	Top     ast.TopLevelID
	// Halted is set when a checkpoint or the nesting guard stopped the parse.
	Halted bool
}

// Parse lexes and parses file. The returned error is ErrAborted when the
// run ended with pending errors; the tree is still returned for printing.
func (s *Session) Parse(ctx context.Context, file *source.File) (*ParseResult, error) {
	tracer := trace.FromContext(ctx)
	root := trace.Begin(tracer, trace.ScopeDriver, "parse-file", trace.CurrentSpan(ctx))
	defer root.End(file.Path)
	ctx = trace.WithSpan(ctx, root.ID())

	res := &ParseResult{File: file}
	res.Tokens = s.lex(ctx, file)
	if s.shouldStop() {
		trace.Point(tracer, trace.ScopeNode, "checkpoint", "stop after lex", root.ID())
		return res, s.Abort(ctx)
	}

	sp := trace.Begin(tracer, trace.ScopePass, "parse", root.ID())
	done := s.phase("parse")
	s.report(StageParse, StatusWorking)

	res.Builder = ast.NewBuilder(ast.Hints{}, nil)
	decls := 0
	pr := parser.ParseTokens(file, res.Tokens, res.Builder, parser.Options{
		Reporter: s.Reporter(),
		Checkpoint: func() bool {
			decls++
			stop := s.shouldStop()
			if tracer.Enabled() {
				detail := "continue"
				if stop {
					detail = "stop"
				}
				trace.Point(tracer, trace.ScopeNode, "checkpoint", "#"+strconv.Itoa(decls)+" "+detail, sp.ID())
			}
			return !stop
		},
	})
	res.Top = pr.Top
	res.Halted = pr.Halted

	done(strconv.Itoa(decls) + " declarations")
	sp.WithExtra("errors", strconv.FormatUint(uint64(pr.Errors), 10)).
		WithExtra("halted", strconv.FormatBool(pr.Halted)).
		End(file.Path)

	return res, s.Finish(ctx)
}
