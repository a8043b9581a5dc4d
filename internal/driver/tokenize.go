package driver

import (
	"context"
	"strconv"

	"corec/internal/lexer"
	"corec/internal/source"
	"corec/internal/token"
	"corec/internal/trace"
)

type TokenizeResult struct {
	File   *source.File
	Tokens []token.Token
}

// lex scans file without running the end-of-run checkpoint.
func (s *Session) lex(ctx context.Context, file *source.File) []token.Token {
	sp := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "lex", trace.CurrentSpan(ctx))
	done := s.phase("lex")
	s.report(StageLex, StatusWorking)

	toks := lexer.Scan(file, lexer.Options{Reporter: s.Reporter()})

	done(strconv.Itoa(len(toks)) + " tokens")
	sp.WithExtra("tokens", strconv.Itoa(len(toks))).
		WithExtra("records", strconv.Itoa(s.Bag.Len())).
		End(file.Path)
	return toks
}

// Tokenize scans file; lexical errors end the run through Finish.
func (s *Session) Tokenize(ctx context.Context, file *source.File) (*TokenizeResult, error) {
	root := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "tokenize", trace.CurrentSpan(ctx))
	defer root.End(file.Path)
	ctx = trace.WithSpan(ctx, root.ID())

	toks := s.lex(ctx, file)
	return &TokenizeResult{File: file, Tokens: toks}, s.Finish(ctx)
}
