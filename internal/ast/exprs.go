package ast

import (
	"corec/internal/source"
)

// Exprs manages allocation of expressions and their payloads.
type Exprs struct {
	Arena    *Arena[Expr]
	Atoms    *Arena[ExprAtomData]
	Idents   *Arena[ExprIdentData]
	Binaries *Arena[ExprBinaryData]
	Unaries  *Arena[ExprUnaryData]
	Assigns  *Arena[ExprAssignData]
	Conds    *Arena[ExprCondData]
	Lists    *Arena[ExprListData]
	Blocks   *Arena[ExprBlockData]
}

func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Atoms:    NewArena[ExprAtomData](capHint / 2),
		Idents:   NewArena[ExprIdentData](capHint / 2),
		Binaries: NewArena[ExprBinaryData](capHint / 4),
		Unaries:  NewArena[ExprUnaryData](capHint / 8),
		Assigns:  NewArena[ExprAssignData](capHint / 8),
		Conds:    NewArena[ExprCondData](capHint / 8),
		Lists:    NewArena[ExprListData](capHint / 4),
		Blocks:   NewArena[ExprBlockData](capHint / 8),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: kind, Span: span, Payload: payload}))
}

func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewInvalid allocates the placeholder used after a reported error.
func (e *Exprs) NewInvalid(span source.Span) ExprID {
	return e.new(ExprInvalid, span, NoPayloadID)
}

func (e *Exprs) NewAtom(span source.Span, kind AtomKind, value string) ExprID {
	p := e.Atoms.Allocate(ExprAtomData{Kind: kind, Value: value})
	return e.new(ExprAtom, span, PayloadID(p))
}

func (e *Exprs) Atom(id ExprID) (*ExprAtomData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprAtom {
		return nil, false
	}
	return e.Atoms.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewIdent(span source.Span, receiver ExprID, segs []Segment) ExprID {
	p := e.Idents.Allocate(ExprIdentData{Receiver: receiver, Segments: append([]Segment(nil), segs...)})
	return e.new(ExprIdent, span, PayloadID(p))
}

func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewBinary(span source.Span, op ExprBinaryOp, left, right ExprID) ExprID {
	p := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(p))
}

func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewUnary(span source.Span, op ExprUnaryOp, operand ExprID) ExprID {
	p := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(p))
}

func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewAssign(span source.Span, target, value ExprID) ExprID {
	p := e.Assigns.Allocate(ExprAssignData{Target: target, Value: value})
	return e.new(ExprAssign, span, PayloadID(p))
}

func (e *Exprs) Assign(id ExprID) (*ExprAssignData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprAssign {
		return nil, false
	}
	return e.Assigns.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewCond(span source.Span, test, then, els ExprID) ExprID {
	p := e.Conds.Allocate(ExprCondData{Test: test, Then: then, Else: els})
	return e.new(ExprCond, span, PayloadID(p))
}

func (e *Exprs) Cond(id ExprID) (*ExprCondData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCond {
		return nil, false
	}
	return e.Conds.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewList(span source.Span, items []ExprID) ExprID {
	p := e.Lists.Allocate(ExprListData{Items: append([]ExprID(nil), items...)})
	return e.new(ExprList, span, PayloadID(p))
}

func (e *Exprs) List(id ExprID) (*ExprListData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprList {
		return nil, false
	}
	return e.Lists.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewBlock(span source.Span, stmts []StmtID, hasResult bool) ExprID {
	p := e.Blocks.Allocate(ExprBlockData{Stmts: append([]StmtID(nil), stmts...), HasResult: hasResult})
	return e.new(ExprBlock, span, PayloadID(p))
}

func (e *Exprs) Block(id ExprID) (*ExprBlockData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBlock {
		return nil, false
	}
	return e.Blocks.Get(uint32(expr.Payload)), true
}
