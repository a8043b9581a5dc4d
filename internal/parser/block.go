package parser

import (
	"corec/internal/ast"
	"corec/internal/diag"
	"corec/internal/token"
)

// parseBlock: "{" {stmt (";" | &"}")} "}". hasResult ставится, только если
// последнее выражение не закрыто ';'.
func (p *Parser) parseBlock() ast.ExprID {
	openTok := p.advance()
	open := openTok.Span
	if !p.enter() {
		return p.invalid(open)
	}
	defer p.leave()

	var stmts []ast.StmtID
	hasResult := false
	for {
		if p.at(token.RBrace) {
			p.advance()
			break
		}
		if p.at(token.EOF) || p.halted {
			p.unclosed(diag.SynUnclosedBlock, open, "block was never closed")
			break
		}
		switch p.peek().Kind {
		case token.Semicolon:
			p.advance()
			hasResult = false
			continue
		case token.RParen:
			p.err(diag.SynStrayRParen, "unexpected RParen (forgot to open parentheses?)")
			p.advance()
			continue
		}

		before := p.pos
		stmt, isExpr, ok := p.parseStmt()
		stmts = append(stmts, stmt)
		hasResult = false
		if !ok {
			p.resyncStmt(before)
			continue
		}

		switch {
		case p.at(token.Semicolon):
			p.advance()
			continue
		case p.at(token.RBrace):
			hasResult = isExpr
			continue
		case p.at(token.EOF) || p.halted:
			continue
		}
		p.missingSemicolon()
		if p.pos == before || !canStartStmt(p.peek().Kind) {
			p.advance()
		}
	}
	return p.arenas.Exprs.NewBlock(p.spanFrom(open), stmts, hasResult)
}

func canStartStmt(k token.Kind) bool {
	switch k {
	case token.IntLit, token.FloatLit, token.StringLit, token.Ident,
		token.LParen, token.LBrace, token.Minus, token.Bang, token.Star, token.Tilde:
		return true
	}
	return false
}

// resyncStmt пропускает токены до ';' или '}' на нулевой глубине.
// Neither is consumed.
func (p *Parser) resyncStmt(before int) {
	if p.pos == before && !p.atOr(token.Semicolon, token.RBrace, token.EOF) {
		p.advance()
	}
	depth := 0
	for !p.at(token.EOF) && !p.halted {
		switch p.peek().Kind {
		case token.LParen, token.LBrace, token.LBracket:
			depth++
		case token.RParen, token.RBracket:
			if depth > 0 {
				depth--
			}
		case token.RBrace:
			if depth == 0 {
				return
			}
			depth--
		case token.Semicolon:
			if depth == 0 {
				return
			}
		}
		p.advance()
	}
}

// parseStmt returns the statement, whether it is an expression statement
// and whether it parsed cleanly.
func (p *Parser) parseStmt() (ast.StmtID, bool, bool) {
	start := p.peek().Span
	if p.atVarStart() {
		mutable := false
		if p.at(token.Star) {
			p.advance()
			mutable = true
		}
		if typ, ok := p.parseType(); ok {
			if name, nameSpan, ok := p.parseName(); ok {
				if v, ok := p.parseVarRest(mutable, typ, name, nameSpan); ok {
					sp := p.spanFrom(start)
					item := p.arenas.Items.NewVar(sp, v)
					return p.arenas.Stmts.NewVar(sp, item), false, true
				}
			}
		}
		sp := p.spanFrom(start)
		return p.arenas.Stmts.NewExpr(sp, p.invalid(sp)), false, false
	}

	if p.at(token.LBrace) {
		blk := p.parseBlock()
		return p.arenas.Stmts.NewExpr(p.exprSpan(blk), blk), true, true
	}
	expr := p.parseExpr()
	ok := p.arenas.Exprs.Get(expr).Kind != ast.ExprInvalid
	return p.arenas.Stmts.NewExpr(p.exprSpan(expr), expr), true, ok
}

// atVarStart: '*', '~' или путь типа, за которым идёт имя (int x, geo.Point p).
func (p *Parser) atVarStart() bool {
	switch p.peek().Kind {
	case token.Star, token.Tilde:
		return true
	case token.Ident:
	default:
		return false
	}
	i := 1
	for p.peekN(i).Kind == token.Dot && p.peekN(i+1).Kind == token.Ident {
		i += 2
	}
	return p.peekN(i).Kind == token.Ident
}
