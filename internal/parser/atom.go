package parser

import (
	"corec/internal/ast"
	"corec/internal/diag"
	"corec/internal/source"
	"corec/internal/token"
)

// parseAtom: literal ["." chain] | chain | "(" list ")" ["." chain]
func (p *Parser) parseAtom() ast.ExprID {
	tok := p.peek()
	switch tok.Kind {
	case token.IntLit, token.FloatLit, token.StringLit:
		p.advance()
		atom := p.arenas.Exprs.NewAtom(tok.Span, atomKind(tok.Kind), tok.Value)
		return p.parseChainTail(atom)
	case token.Ident:
		return p.parseChain(ast.NoExprID, tok.Span)
	case token.LParen:
		list := p.parseList()
		return p.parseChainTail(list)
	case token.RParen:
		p.err(diag.SynStrayRParen, "unexpected RParen (forgot to open parentheses?)")
		p.advance()
		return p.invalid(tok.Span)
	}

	p.errAt(diag.ExprExpectAtom, tok.Span, "expected atom").Emit()
	switch tok.Kind {
	case token.Semicolon, token.RBrace, token.Comma, token.Colon, token.EOF:
		// терминатор не трогаем, заглушка встаёт в конец разобранного
		return p.invalid(p.lastSpan.EndPoint())
	}
	p.advance()
	return p.invalid(tok.Span)
}

func atomKind(k token.Kind) ast.AtomKind {
	switch k {
	case token.FloatLit:
		return ast.AtomFloat
	case token.StringLit:
		return ast.AtomString
	}
	return ast.AtomInt
}

// parseChainTail продолжает цепочку после литерала или списка: 1.str, (a).x
func (p *Parser) parseChainTail(recv ast.ExprID) ast.ExprID {
	if !p.at(token.Dot) || p.peekN(1).Kind != token.Ident {
		return recv
	}
	p.advance()
	return p.parseChain(recv, p.exprSpan(recv))
}

// parseChain: seg {"." seg}, seg := Ident ["(" list ")"].
func (p *Parser) parseChain(recv ast.ExprID, start source.Span) ast.ExprID {
	var segs []ast.Segment
	for {
		tok := p.advance()
		seg := ast.Segment{
			Name: p.arenas.StringsInterner.Intern(tok.Text),
			Span: tok.Span,
			Args: ast.NoExprID,
		}
		if p.at(token.LParen) {
			seg.Args = p.parseList()
			seg.Span = p.spanFrom(tok.Span)
		}
		segs = append(segs, seg)
		if p.halted || !p.at(token.Dot) || p.peekN(1).Kind != token.Ident {
			break
		}
		p.advance()
	}
	return p.arenas.Exprs.NewIdent(p.spanFrom(start), recv, segs)
}

// parseList: "(" [expr {"," expr}] ")"
func (p *Parser) parseList() ast.ExprID {
	open := p.advance().Span
	var items []ast.ExprID
	for {
		if p.at(token.RParen) {
			p.advance()
			break
		}
		if p.at(token.EOF) || p.halted {
			p.unclosed(diag.SynUnclosedParen, open, "parentheses were never closed")
			break
		}
		items = append(items, p.parseExpr())
		switch {
		case p.at(token.Comma):
			p.advance()
			continue
		case p.atOr(token.RParen, token.EOF) || p.halted:
			continue
		}
		p.err(diag.SynExpectCommaOrRParen, "expected Comma or RParen")
		if p.atOr(token.Semicolon, token.RBrace) {
			break
		}
		p.advance()
	}
	return p.arenas.Exprs.NewList(p.spanFrom(open), items)
}
