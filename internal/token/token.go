package token

import (
	"corec/internal/source"
)

// Token is one lexeme with its location.
type Token struct {
	Kind  Kind
	Span  source.Span
	Text  string
	Value string
}

// IsLiteral reports whether the token is a number or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= Plus && t.Kind < kindCount
}

func (t Token) IsIdent() bool { return t.Kind == Ident }
