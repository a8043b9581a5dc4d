package lexer

import (
	"strings"

	"corec/internal/diag"
	"corec/internal/source"
	"corec/internal/token"

	"golang.org/x/text/unicode/norm"
)

// scanString reads a double-quoted literal. Escapes: \n \r \t, \uXXXX
// (exactly four hex digits), any other escaped character stands for itself.
// A malformed \u escape is reported and dropped; the character that broke it
// is processed as ordinary input, so `"\u12"` still closes.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	var sb strings.Builder
	closed := false

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			closed = true
			break
		}
		if b != '\\' {
			from := lx.cursor.Off
			lx.bumpRune()
			sb.Write(lx.file.Content[from:lx.cursor.Off])
			continue
		}
		escStart := lx.cursor.Mark()
		lx.cursor.Bump() // '\'
		if lx.cursor.EOF() {
			break
		}
		switch e := lx.cursor.Peek(); e {
		case 'n':
			lx.cursor.Bump()
			sb.WriteByte('\n')
		case 'r':
			lx.cursor.Bump()
			sb.WriteByte('\r')
		case 't':
			lx.cursor.Bump()
			sb.WriteByte('\t')
		case 'u':
			lx.cursor.Bump()
			lx.unicodeEscape(&sb, escStart)
		default:
			from := lx.cursor.Off
			lx.bumpRune()
			sb.Write(lx.file.Content[from:lx.cursor.Off])
		}
	}

	sp := lx.cursor.SpanFrom(start)
	if !closed {
		quote := source.Span{File: lx.file.ID, Start: sp.Start, End: sp.Start + 1}
		lx.errLex(diag.LexUnterminatedString, quote, "string was never closed").
			WithNote(lx.file.EOF(), "EOF").
			Emit()
	}
	return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp), Value: norm.NFC.String(sb.String())}
}

func (lx *Lexer) unicodeEscape(sb *strings.Builder, escStart Mark) {
	var code rune
	n := 0
	for n < 4 && isHex(lx.cursor.Peek()) {
		code = code<<4 | hexVal(lx.cursor.Bump())
		n++
	}
	if n == 4 {
		sb.WriteRune(code)
		return
	}
	lx.errLex(diag.LexBadUnicodeEscape, lx.cursor.SpanFrom(escStart), "invalid unicode escape sequence").Emit()
}
