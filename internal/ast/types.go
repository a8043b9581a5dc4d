package ast

import (
	"strconv"
	"strings"

	"corec/internal/source"
)

type TypeKind uint8

const (
	TypeNone TypeKind = iota
	TypeAuto
	TypePrimitive
	TypePath
)

type PrimitiveKind uint8

const (
	PrimVoid PrimitiveKind = iota + 1
	PrimInt
	PrimFloat
	PrimStr
)

// Type is a value, not an arena node: a primitive, the inference marker
// or a dotted user path.
type Type struct {
	Kind TypeKind
	Span source.Span
	Prim PrimitiveKind
	Bits uint16            // iN / fN width, 0 for plain int/float
	Path []source.StringID // TypePath only
}

// IsExplicit reports a type that is present and not the inference marker.
func (t Type) IsExplicit() bool {
	return t.Kind == TypePrimitive || t.Kind == TypePath
}

// ParsePrimitive recognises void, int, iN, float, fN and str.
func ParsePrimitive(name string) (PrimitiveKind, uint16, bool) {
	switch name {
	case "void":
		return PrimVoid, 0, true
	case "int":
		return PrimInt, 0, true
	case "float":
		return PrimFloat, 0, true
	case "str":
		return PrimStr, 0, true
	}
	if len(name) < 2 || (name[0] != 'i' && name[0] != 'f') {
		return 0, 0, false
	}
	bits, err := strconv.ParseUint(name[1:], 10, 16)
	if err != nil || bits == 0 || name[1] == '0' {
		return 0, 0, false
	}
	if name[0] == 'i' {
		return PrimInt, uint16(bits), true
	}
	return PrimFloat, uint16(bits), true
}

// FormatType renders t the way it is written in source, ~ shown as auto.
func (b *Builder) FormatType(t Type) string {
	switch t.Kind {
	case TypeAuto:
		return "auto"
	case TypePrimitive:
		return primitiveName(t.Prim, t.Bits)
	case TypePath:
		parts := make([]string, len(t.Path))
		for i, id := range t.Path {
			parts[i] = b.Name(id)
		}
		return strings.Join(parts, ".")
	}
	return ""
}

func primitiveName(p PrimitiveKind, bits uint16) string {
	switch p {
	case PrimVoid:
		return "void"
	case PrimInt:
		if bits != 0 {
			return "i" + strconv.Itoa(int(bits))
		}
		return "int"
	case PrimFloat:
		if bits != 0 {
			return "f" + strconv.Itoa(int(bits))
		}
		return "float"
	case PrimStr:
		return "str"
	}
	return "?"
}
