package parser

import (
	"corec/internal/ast"
	"corec/internal/diag"
	"corec/internal/source"
	"corec/internal/token"
)

// canStartType: '~' или идентификатор.
func canStartType(k token.Kind) bool {
	return k == token.Tilde || k == token.Ident
}

// parseType разбирает тип: '~', auto, примитив (void, int, iN, float, fN, str)
// или путь вида geo.Point.
func (p *Parser) parseType() (ast.Type, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.Tilde:
		p.advance()
		return ast.Type{Kind: ast.TypeAuto, Span: tok.Span}, true
	case token.Ident:
	default:
		p.err(diag.SynExpectType, "expected type")
		return ast.Type{}, false
	}

	p.advance()
	if tok.Text == "auto" {
		return ast.Type{Kind: ast.TypeAuto, Span: tok.Span}, true
	}
	if prim, bits, ok := ast.ParsePrimitive(tok.Text); ok {
		return ast.Type{Kind: ast.TypePrimitive, Span: tok.Span, Prim: prim, Bits: bits}, true
	}

	interner := p.arenas.StringsInterner
	path := []source.StringID{interner.Intern(tok.Text)}
	for p.at(token.Dot) && p.peekN(1).Kind == token.Ident {
		p.advance()
		seg := p.advance()
		path = append(path, interner.Intern(seg.Text))
	}
	return ast.Type{Kind: ast.TypePath, Span: p.spanFrom(tok.Span), Path: path}, true
}
