package lexer

import (
	"strconv"

	"corec/internal/diag"
	"corec/internal/source"
	"corec/internal/token"
)

// Десятичные числа: digits ['.' digits]. A dot joins the number only when a
// digit follows it, so `5.len()` lexes as Int Dot Ident.
// A second fractional dot is reported and the rest is still consumed into
// the same token; Value keeps the well-formed prefix ("1.2" for "1.2.3").
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit
	valueEnd := uint32(0)

	lx.digits()
	for lx.cursor.Peek() == '.' {
		dot := lx.cursor.Mark()
		lx.cursor.Bump()
		if !isDec(lx.cursor.Peek()) {
			lx.cursor.Reset(dot) // точка без цифры: это Dot, не часть числа
			break
		}
		if kind == token.FloatLit {
			if valueEnd == 0 {
				valueEnd = uint32(dot)
			}
			sp := source.Span{File: lx.file.ID, Start: uint32(dot), End: uint32(dot) + 1}
			lx.errLex(diag.LexUnexpectedChar, sp, "unexpected token").Emit()
		}
		kind = token.FloatLit
		lx.digits()
	}

	sp := lx.cursor.SpanFrom(start)
	if valueEnd == 0 {
		valueEnd = sp.End
	}
	value := string(lx.file.Content[sp.Start:valueEnd])
	if !numberInRange(kind, value) {
		lx.errLex(diag.LexNumberRange, sp, "number literal out of range").Emit()
	}
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp), Value: value}
}

func (lx *Lexer) digits() {
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

func numberInRange(kind token.Kind, value string) bool {
	var err error
	if kind == token.IntLit {
		_, err = strconv.ParseInt(value, 10, 64)
	} else {
		_, err = strconv.ParseFloat(value, 64)
	}
	return err == nil
}
