package parser

import (
	"corec/internal/ast"
	"corec/internal/diag"
	"corec/internal/token"
)

// parseExpr точка входа, assign := cond ["=" assign].
func (p *Parser) parseExpr() ast.ExprID {
	if !p.enter() {
		return p.invalid(p.lastSpan.EndPoint())
	}
	defer p.leave()

	left := p.parseCond()
	if !p.at(token.Assign) {
		return left
	}
	p.advance()
	right := p.parseExpr()

	target := p.arenas.Exprs.Get(left)
	if target != nil && target.Kind != ast.ExprIdent && target.Kind != ast.ExprInvalid {
		p.errAt(diag.ExprBadAssignTarget, target.Span, "cannot assign to "+target.Kind.String()).Emit()
	}
	return p.arenas.Exprs.NewAssign(p.exprSpan(left).Cover(p.exprSpan(right)), left, right)
}

// parseCond: or ["?" branch [":" branch]]
func (p *Parser) parseCond() ast.ExprID {
	test := p.parseBinaryExpr(precLogicalOr)
	if !p.at(token.Question) {
		return test
	}
	p.advance()
	then := p.parseBranch()
	els := ast.NoExprID
	sp := p.exprSpan(test).Cover(p.exprSpan(then))
	if p.at(token.Colon) {
		p.advance()
		els = p.parseBranch()
		sp = sp.Cover(p.exprSpan(els))
	}
	return p.arenas.Exprs.NewCond(sp, test, then, els)
}

// parseBranch: ветка условия, блок или полное выражение (с присваиванием).
func (p *Parser) parseBranch() ast.ExprID {
	if p.at(token.LBrace) {
		return p.parseBlock()
	}
	return p.parseExpr()
}

// parseBinaryExpr: precedence climbing, все уровни левоассоциативны.
func (p *Parser) parseBinaryExpr(minPrec int) ast.ExprID {
	left := p.parseUnary()
	for !p.halted {
		info, ok := binaryOps[p.peek().Kind]
		if !ok || info.prec < minPrec {
			break
		}
		p.advance()
		right := p.parseBinaryExpr(info.prec + 1)
		sp := p.exprSpan(left).Cover(p.exprSpan(right))
		left = p.arenas.Exprs.NewBinary(sp, info.op, left, right)
	}
	return left
}

func (p *Parser) parseUnary() ast.ExprID {
	op, ok := unaryOps[p.peek().Kind]
	if !ok {
		return p.parseAtom()
	}
	if !p.enter() {
		return p.invalid(p.lastSpan.EndPoint())
	}
	defer p.leave()

	opTok := p.advance()
	operand := p.parseUnary()
	return p.arenas.Exprs.NewUnary(opTok.Span.Cover(p.exprSpan(operand)), op, operand)
}
