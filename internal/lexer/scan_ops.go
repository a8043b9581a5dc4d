package lexer

import "corec/internal/token"

// scanOperatorOrPunct: сначала пара байт, потом одиночный символ.
// The second byte is only consumed when the pair matches.
func (lx *Lexer) scanOperatorOrPunct() (token.Token, bool) {
	start := lx.cursor.Mark()
	if b0, b1, ok := lx.cursor.Peek2(); ok {
		if k, ok := token.Pair(b0, b1); ok {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.punct(k, start), true
		}
	}
	k, ok := token.Punct(lx.cursor.Peek())
	if !ok {
		return token.Token{}, false
	}
	lx.cursor.Bump()
	return lx.punct(k, start), true
}

func (lx *Lexer) punct(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
}
