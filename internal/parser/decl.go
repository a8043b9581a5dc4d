package parser

import (
	"corec/internal/ast"
	"corec/internal/diag"
	"corec/internal/source"
	"corec/internal/token"
)

// parseDecl разбирает одну декларацию верхнего уровня.
// Returns false when the declaration is broken; the error is already reported.
func (p *Parser) parseDecl() (ast.ItemID, bool) {
	switch p.peek().Kind {
	case token.Caret:
		return p.parseImport()
	case token.At:
		start := p.advance().Span
		return p.parseTypedDecl(start, false, true)
	case token.Star:
		start := p.advance().Span
		return p.parseTypedDecl(start, true, false)
	}
	if !canStartType(p.peek().Kind) {
		p.unexpected()
		return ast.NoItemID, false
	}
	return p.parseTypedDecl(p.peek().Span, false, false)
}

// parseTypedDecl: <type> <name>, затем решаем, переменная это или функция.
func (p *Parser) parseTypedDecl(start source.Span, mutable, macro bool) (ast.ItemID, bool) {
	typ, ok := p.parseType()
	if !ok {
		return ast.NoItemID, false
	}
	name, nameSpan, ok := p.parseName()
	if !ok {
		return ast.NoItemID, false
	}

	switch {
	case macro || (!mutable && p.atOr(token.LParen, token.LBrace)):
		return p.parseFnRest(start, macro, typ, name, nameSpan)
	case mutable || p.atOr(token.Colon, token.Assign, token.Semicolon, token.EOF):
		v, ok := p.parseVarRest(mutable, typ, name, nameSpan)
		if !ok {
			return ast.NoItemID, false
		}
		return p.arenas.Items.NewVar(p.spanFrom(start), v), true
	}
	p.err(diag.SynExpectDecl, "expected variable or function")
	return ast.NoItemID, false
}

func (p *Parser) parseName() (source.StringID, source.Span, bool) {
	if !p.at(token.Ident) {
		p.err(diag.SynExpectIdentifier, "expected identifier")
		return source.NoStringID, source.Span{}, false
	}
	tok := p.advance()
	return p.arenas.StringsInterner.Intern(tok.Text), tok.Span, true
}

// parseVarRest разбирает хвост переменной после имени: [: type] [= expr].
func (p *Parser) parseVarRest(mutable bool, typ ast.Type, name source.StringID, nameSpan source.Span) (ast.VarItem, bool) {
	v := ast.VarItem{Mutable: mutable, Type: typ, Name: name, NameSpan: nameSpan, Value: ast.NoExprID}

	if p.at(token.Colon) {
		p.advance()
		ann, ok := p.parseType()
		if !ok {
			return v, false
		}
		switch {
		case !v.Type.IsExplicit():
			v.Type = ann
		case ann.IsExplicit():
			p.errAt(diag.ExprTypeTwice, ann.Span, "type declared twice").
				WithNote(v.Type.Span, "first declared here").
				Emit()
			return v, false
		}
	}

	if p.at(token.Assign) {
		p.advance()
		v.Value = p.parseExpr()
		return v, true
	}

	if !p.atOr(token.Semicolon, token.RBrace, token.EOF) {
		p.err(diag.SynExpectAssign, `expected "="`)
		return v, false
	}
	switch {
	case !mutable:
		p.err(diag.ExprImmutableNoValue, "immutable variables must be declared with a value")
		return v, false
	case !v.Type.IsExplicit():
		p.err(diag.ExprUntypedNoValue, "variables with no initial value must have a specified type")
		return v, false
	}
	return v, true
}

// parseFnRest: ["(" params ")"] block.
func (p *Parser) parseFnRest(start source.Span, macro bool, typ ast.Type, name source.StringID, nameSpan source.Span) (ast.ItemID, bool) {
	fn := ast.FnItem{Macro: macro, Type: typ, Name: name, NameSpan: nameSpan, Body: ast.NoExprID}

	if p.at(token.LParen) {
		open := p.peek().Span
		params, ok := p.parseParams()
		if !ok {
			return ast.NoItemID, false
		}
		if macro {
			// параметры макроса отбрасываем, функцию всё равно записываем
			p.errAt(diag.ExprMacroParams, p.spanFrom(open), "macro function cannot have arguments").Emit()
		} else {
			fn.Params = params
		}
	}

	if !p.at(token.LBrace) {
		p.err(diag.SynExpectBlock, "expected block")
		return ast.NoItemID, false
	}
	fn.Body = p.parseBlock()
	return p.arenas.Items.NewFn(p.spanFrom(start), fn), true
}

// parseParams: "(" [param {"," param}] ")", param := name [":" type] ["=" expr].
func (p *Parser) parseParams() ([]ast.Param, bool) {
	open := p.advance().Span
	var params []ast.Param
	for !p.at(token.RParen) {
		if p.at(token.EOF) || p.halted {
			p.unclosed(diag.SynUnclosedParen, open, "parentheses were never closed")
			return nil, false
		}
		prm, ok := p.parseParam()
		if !ok {
			return nil, false
		}
		params = append(params, prm)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		if !p.at(token.RParen) {
			if p.at(token.EOF) {
				p.unclosed(diag.SynUnclosedParen, open, "parentheses were never closed")
			} else {
				p.err(diag.SynExpectCommaOrRParen, "expected Comma or RParen")
			}
			return nil, false
		}
	}
	p.advance()
	return params, true
}

func (p *Parser) parseParam() (ast.Param, bool) {
	start := p.peek().Span
	name, nameSpan, ok := p.parseName()
	if !ok {
		return ast.Param{}, false
	}
	prm := ast.Param{Name: name, NameSpan: nameSpan, Default: ast.NoExprID}
	if p.at(token.Colon) {
		p.advance()
		if prm.Type, ok = p.parseType(); !ok {
			return ast.Param{}, false
		}
	}
	if p.at(token.Assign) {
		p.advance()
		prm.Default = p.parseExpr()
	}
	prm.Span = p.spanFrom(start)
	return prm, true
}

// parseImport: "^" seg {"/" seg}, seg: идентификатор или строка.
func (p *Parser) parseImport() (ast.ItemID, bool) {
	start := p.advance().Span
	interner := p.arenas.StringsInterner
	var path []ast.ImportSegment
	for {
		tok := p.peek()
		switch tok.Kind {
		case token.Ident:
			path = append(path, ast.ImportSegment{Name: interner.Intern(tok.Text), Span: tok.Span})
		case token.StringLit:
			path = append(path, ast.ImportSegment{Name: interner.Intern(tok.Value), Span: tok.Span, Quoted: true})
		default:
			p.unexpected()
			return ast.NoItemID, false
		}
		p.advance()
		if !p.at(token.Slash) {
			break
		}
		p.advance()
	}
	return p.arenas.Items.NewImport(p.spanFrom(start), path), true
}
