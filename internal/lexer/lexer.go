package lexer

import (
	"corec/internal/source"
	"corec/internal/token"
)

type Lexer struct {
	file    *source.File
	cursor  Cursor
	opts    Options
	look    *token.Token
	pending []unknownRun
	flushed bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Scan tokenizes the whole file. The returned slice has no EOF token.
// Problems go to opts.Reporter; Scan itself never fails.
func Scan(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	out := make([]token.Token, 0, len(file.Content)/3+1)
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return out
		}
		out = append(out, tok)
	}
}

// Next возвращает следующий значимый токен. После EOF всегда возвращает EOF.
// Unknown characters yield no token; they are reported together when
// EOF is first reached.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	for {
		lx.skipTrivia()
		if lx.cursor.EOF() {
			lx.flushUnknown()
			return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
		}
		ch := lx.cursor.Peek()
		switch {
		case isDec(ch):
			return lx.scanNumber()
		case ch == '"':
			return lx.scanString()
		case isIdentStartByte(ch):
			return lx.scanIdent()
		}
		if tok, ok := lx.scanOperatorOrPunct(); ok {
			return tok
		}
		lx.skipUnknown()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
