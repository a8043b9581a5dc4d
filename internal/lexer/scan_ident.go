package lexer

import "corec/internal/token"

// Идентификаторы только ASCII: [A-Za-z_][A-Za-z0-9_]*.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	return token.Token{Kind: token.Ident, Span: sp, Text: text, Value: text}
}
