package parser

import (
	"slices"

	"corec/internal/ast"
	"corec/internal/diag"
	"corec/internal/source"
	"corec/internal/token"
)

func (p *Parser) peek() token.Token {
	return p.peekN(0)
}

// peekN смотрит на n токенов вперёд, за концом всегда EOF.
func (p *Parser) peekN(n int) token.Token {
	if i := p.pos + n; i < len(p.toks) {
		return p.toks[i]
	}
	return p.eof
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// advance: съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if tok.Kind != token.EOF {
		p.pos++
		p.lastSpan = tok.Span
	}
	return tok
}

// spanFrom covers everything from start to the last consumed token.
func (p *Parser) spanFrom(start source.Span) source.Span {
	if p.lastSpan.End < start.Start {
		return start
	}
	return source.Span{File: start.File, Start: start.Start, End: p.lastSpan.End}
}

func (p *Parser) exprSpan(id ast.ExprID) source.Span {
	if e := p.arenas.Exprs.Get(id); e != nil {
		return e.Span
	}
	return p.peek().Span
}

func (p *Parser) invalid(sp source.Span) ast.ExprID {
	return p.arenas.Exprs.NewInvalid(sp)
}

// reporter wraps opts.Reporter with error counting and the halt switch.
type reporter struct{ p *Parser }

func (r reporter) Report(code diag.Code, primary source.Span, msg string, notes []diag.Note) bool {
	p := r.p
	if p.halted {
		return false
	}
	p.opts.CurrentErrors++
	accepted := p.opts.Reporter == nil || p.opts.Reporter.Report(code, primary, msg, notes)
	if !accepted || p.opts.Enough() {
		p.halted = true
		return false
	}
	return true
}

// errAt starts an error report at sp.
func (p *Parser) errAt(code diag.Code, sp source.Span, msg string) *diag.ReportBuilder {
	return diag.ReportError(reporter{p}, code, sp, msg)
}

// err репортует ошибку на текущем токене.
func (p *Parser) err(code diag.Code, msg string) {
	p.errAt(code, p.peek().Span, msg).Emit()
}

func (p *Parser) unexpected() {
	tok := p.peek()
	if tok.Kind == token.RParen {
		p.err(diag.SynStrayRParen, "unexpected RParen (forgot to open parentheses?)")
		return
	}
	p.err(diag.SynUnexpectedToken, "unexpected "+tok.Kind.String())
}

// unclosed reports an opener that never met its closer, with a note where
// the construct ran out.
func (p *Parser) unclosed(code diag.Code, open source.Span, msg string) {
	if p.halted {
		return
	}
	b := p.errAt(code, open, msg)
	if p.at(token.EOF) {
		b.WithNote(p.eof.Span, "EOF")
	} else {
		b.WithNote(p.peek().Span, "unexpected "+p.peek().Kind.String())
	}
	b.Emit()
}

// enter/leave track nesting; past MaxDepth the parse halts and enter
// leaves depth untouched.
func (p *Parser) enter() bool {
	if p.halted {
		return false
	}
	if p.depth >= p.opts.MaxDepth {
		p.err(diag.SynNestingTooDeep, "nesting too deep")
		p.halted = true
		return false
	}
	p.depth++
	return true
}

func (p *Parser) leave() {
	p.depth--
}
