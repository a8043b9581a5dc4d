package ast

import (
	"corec/internal/source"
)

type ExprKind uint8

const (
	ExprInvalid ExprKind = iota // placeholder after a reported error
	ExprAtom
	ExprIdent
	ExprBinary
	ExprUnary
	ExprAssign
	ExprCond
	ExprList
	ExprBlock
)

func (k ExprKind) String() string {
	switch k {
	case ExprInvalid:
		return "Invalid"
	case ExprAtom:
		return "Atom"
	case ExprIdent:
		return "Identifier"
	case ExprBinary:
		return "BinaryExpression"
	case ExprUnary:
		return "PrefixExpression"
	case ExprAssign:
		return "Assignment"
	case ExprCond:
		return "Conditional"
	case ExprList:
		return "List"
	case ExprBlock:
		return "Block"
	}
	return "Expr(?)"
}

type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

type AtomKind uint8

const (
	AtomInt AtomKind = iota
	AtomFloat
	AtomString
)

// ExprAtomData: Value is the decoded literal text (number as written,
// unescaped string contents).
type ExprAtomData struct {
	Kind  AtomKind
	Value string
}

// Type is the surface type of the literal.
func (d ExprAtomData) Type() string {
	switch d.Kind {
	case AtomInt:
		return "int"
	case AtomFloat:
		return "float"
	}
	return "str"
}

// Segment is one link of a dotted chain; Args is set for calls.
type Segment struct {
	Name source.StringID
	Span source.Span
	Args ExprID // ExprList or NoExprID
}

// ExprIdentData: Receiver is the literal or parenthesised list a chain
// hangs off (`5.str()`, `(a).b`), NoExprID for plain names.
type ExprIdentData struct {
	Receiver ExprID
	Segments []Segment
}

type ExprBinaryOp uint8

const (
	ExprBinaryAdd ExprBinaryOp = iota
	ExprBinarySub
	ExprBinaryMul
	ExprBinaryDiv
	ExprBinaryEq
	ExprBinaryNotEq
	ExprBinaryLess
	ExprBinaryLessEq
	ExprBinaryGreater
	ExprBinaryGreaterEq
	ExprBinaryLogicalAnd
	ExprBinaryLogicalOr
)

var binaryOpNames = [...]string{
	ExprBinaryAdd:        "Add",
	ExprBinarySub:        "Sub",
	ExprBinaryMul:        "Mul",
	ExprBinaryDiv:        "Div",
	ExprBinaryEq:         "Eq",
	ExprBinaryNotEq:      "NotEq",
	ExprBinaryLess:       "Lt",
	ExprBinaryLessEq:     "LtEq",
	ExprBinaryGreater:    "Gt",
	ExprBinaryGreaterEq:  "GtEq",
	ExprBinaryLogicalAnd: "And",
	ExprBinaryLogicalOr:  "Or",
}

func (op ExprBinaryOp) String() string {
	if int(op) < len(binaryOpNames) {
		return binaryOpNames[op]
	}
	return "?"
}

type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

type ExprUnaryOp uint8

const (
	ExprUnaryNeg ExprUnaryOp = iota
	ExprUnaryNot
)

func (op ExprUnaryOp) String() string {
	if op == ExprUnaryNot {
		return "Not"
	}
	return "Neg"
}

type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
}

// ExprAssignData: Target is always kept, even when it is not an Identifier.
type ExprAssignData struct {
	Target ExprID
	Value  ExprID
}

// ExprCondData: Else is NoExprID when there is no `:` branch.
type ExprCondData struct {
	Test ExprID
	Then ExprID
	Else ExprID
}

type ExprListData struct {
	Items []ExprID
}

// ExprBlockData: HasResult means the last entry had no terminator and is
// the block value.
type ExprBlockData struct {
	Stmts     []StmtID
	HasResult bool
}
