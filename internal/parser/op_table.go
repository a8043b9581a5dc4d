package parser

import (
	"corec/internal/ast"
	"corec/internal/token"
)

// Таблица приоритетов для бинарных операторов.
// Чем больше число, тем выше приоритет; все уровни левоассоциативны.
const (
	precLogicalOr      = 1 // ||
	precLogicalAnd     = 2 // &&
	precEquality       = 3 // == !=
	precComparison     = 4 // < <= > >=
	precAdditive       = 5 // + -
	precMultiplicative = 6 // * /
)

type binaryOpInfo struct {
	prec int
	op   ast.ExprBinaryOp
}

var binaryOps = map[token.Kind]binaryOpInfo{
	token.OrOr:   {precLogicalOr, ast.ExprBinaryLogicalOr},
	token.AndAnd: {precLogicalAnd, ast.ExprBinaryLogicalAnd},
	token.EqEq:   {precEquality, ast.ExprBinaryEq},
	token.BangEq: {precEquality, ast.ExprBinaryNotEq},
	token.Lt:     {precComparison, ast.ExprBinaryLess},
	token.LtEq:   {precComparison, ast.ExprBinaryLessEq},
	token.Gt:     {precComparison, ast.ExprBinaryGreater},
	token.GtEq:   {precComparison, ast.ExprBinaryGreaterEq},
	token.Plus:   {precAdditive, ast.ExprBinaryAdd},
	token.Minus:  {precAdditive, ast.ExprBinarySub},
	token.Star:   {precMultiplicative, ast.ExprBinaryMul},
	token.Slash:  {precMultiplicative, ast.ExprBinaryDiv},
}

var unaryOps = map[token.Kind]ast.ExprUnaryOp{
	token.Minus: ast.ExprUnaryNeg,
	token.Bang:  ast.ExprUnaryNot,
}
