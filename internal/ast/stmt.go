package ast

import "corec/internal/source"

type StmtKind uint8

const (
	StmtExpr StmtKind = iota
	StmtVar
)

// Stmt is a block entry: an expression or a local variable declaration.
type Stmt struct {
	Kind StmtKind
	Span source.Span
	Expr ExprID // StmtExpr
	Var  ItemID // StmtVar, never pushed to TopLevel
}

type Stmts struct {
	Arena *Arena[Stmt]
}

func NewStmts(capHint uint) *Stmts {
	return &Stmts{Arena: NewArena[Stmt](capHint)}
}

func (s *Stmts) NewExpr(sp source.Span, expr ExprID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{Kind: StmtExpr, Span: sp, Expr: expr}))
}

func (s *Stmts) NewVar(sp source.Span, item ItemID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{Kind: StmtVar, Span: sp, Var: item}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}
