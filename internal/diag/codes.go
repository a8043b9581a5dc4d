package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexUnexpectedChar     Code = 1001
	LexBadUnicodeEscape   Code = 1002
	LexUnterminatedString Code = 1003
	LexNumberRange        Code = 1004

	// Синтаксические
	SynUnexpectedToken     Code = 2001
	SynUnclosedParen       Code = 2002
	SynExpectCommaOrRParen Code = 2003
	SynUnclosedBlock       Code = 2004
	SynExpectIdentifier    Code = 2005
	SynExpectDecl          Code = 2006
	SynNestingTooDeep      Code = 2007
	SynExpectType          Code = 2008
	SynStrayRParen         Code = 2009
	SynExpectAssign        Code = 2010
	SynExpectBlock         Code = 2011

	// Грамматически допустимо, но бессмысленно
	ExprExpectAtom       Code = 3001
	ExprBadAssignTarget  Code = 3002
	ExprImmutableNoValue Code = 3003
	ExprUntypedNoValue   Code = 3004
	ExprMacroParams      Code = 3005
	ExprTypeTwice        Code = 3006

	DeclDuplicate Code = 4001
)

// Record messages. They double as the merge key.
const (
	MsgInvalidSyntax     = "invalid syntax"
	MsgInvalidExpression = "invalid expression"
	MsgDuplicateName     = "duplicated object name"
)

var codeDescription = map[Code]string{
	UnknownCode:            "Unknown error",
	LexUnexpectedChar:      "Unexpected character",
	LexBadUnicodeEscape:    "Invalid unicode escape sequence",
	LexUnterminatedString:  "Unterminated string literal",
	LexNumberRange:         "Number literal out of range",
	SynUnexpectedToken:     "Unexpected token",
	SynUnclosedParen:       "Unclosed parenthesis",
	SynExpectCommaOrRParen: "Expected comma or closing parenthesis",
	SynUnclosedBlock:       "Unclosed block",
	SynExpectIdentifier:    "Expected identifier",
	SynExpectDecl:          "Expected variable or function",
	SynNestingTooDeep:      "Nesting too deep",
	SynExpectType:          "Expected type",
	SynStrayRParen:         "Unmatched closing parenthesis",
	SynExpectAssign:        "Expected \"=\"",
	SynExpectBlock:         "Expected block",
	ExprExpectAtom:         "Expected atom",
	ExprBadAssignTarget:    "Invalid assignment target",
	ExprImmutableNoValue:   "Immutable variable without value",
	ExprUntypedNoValue:     "Untyped variable without value",
	ExprMacroParams:        "Macro function with parameters",
	ExprTypeTwice:          "Type declared twice",
	DeclDuplicate:          "Duplicate declaration",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EXP%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("DCL%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

// Message is the record message a code files under.
func (c Code) Message() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 3000:
		return MsgInvalidSyntax
	case ic >= 3000 && ic < 4000:
		return MsgInvalidExpression
	case ic >= 4000 && ic < 5000:
		return MsgDuplicateName
	}
	return MsgInvalidSyntax
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
