package ast

import (
	"testing"

	"corec/internal/source"
)

func sp(start, end uint32) source.Span { return source.Span{Start: start, End: end} }

func TestArenaIDsAreOneBased(t *testing.T) {
	a := NewArena[int](0)
	if a.Get(0) != nil || a.Get(1) != nil {
		t.Fatal("empty arena returned a value")
	}
	id := a.Allocate(7)
	if id != 1 || *a.Get(id) != 7 || a.Len() != 1 {
		t.Fatalf("Allocate = %d", id)
	}
}

func TestPayloadAccessorsCheckKind(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	one := b.Exprs.NewAtom(sp(0, 1), AtomInt, "1")
	two := b.Exprs.NewAtom(sp(4, 5), AtomInt, "2")
	sum := b.Exprs.NewBinary(sp(0, 5), ExprBinaryAdd, one, two)

	if _, ok := b.Exprs.Atom(sum); ok {
		t.Error("Atom accessor accepted a binary node")
	}
	bin, ok := b.Exprs.Binary(sum)
	if !ok || bin.Left != one || bin.Right != two || bin.Op != ExprBinaryAdd {
		t.Fatalf("Binary = %+v", bin)
	}
	if got := b.ExprChildren(sum); len(got) != 2 || got[0] != one || got[1] != two {
		t.Errorf("children = %v", got)
	}
	if atom, _ := b.Exprs.Atom(one); atom.Type() != "int" {
		t.Errorf("atom type = %q", atom.Type())
	}
}

func TestPushItemSortsByKind(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	top := b.NewTopLevel(sp(0, 30))
	imp := b.Items.NewImport(sp(0, 4), []ImportSegment{{Name: b.StringsInterner.Intern("std")}})
	v := b.Items.NewVar(sp(5, 15), VarItem{Name: b.StringsInterner.Intern("x")})
	fn := b.Items.NewFn(sp(16, 30), FnItem{Name: b.StringsInterner.Intern("main")})
	for _, id := range []ItemID{fn, imp, v} {
		b.PushItem(top, id)
	}
	tl := b.TopLevel(top)
	if len(tl.Imports) != 1 || len(tl.Variables) != 1 || len(tl.Functions) != 1 {
		t.Fatalf("top = %+v", tl)
	}
	if tl.Order[0] != fn || tl.Order[2] != v {
		t.Errorf("order = %v", tl.Order)
	}
	name, _, ok := b.Items.DeclName(fn)
	if !ok || b.Name(name) != "main" {
		t.Errorf("DeclName = %q", b.Name(name))
	}
	if _, _, ok := b.Items.DeclName(imp); ok {
		t.Error("imports have no declaration name")
	}
}

func TestParsePrimitive(t *testing.T) {
	tests := []struct {
		in   string
		kind PrimitiveKind
		bits uint16
		ok   bool
	}{
		{"void", PrimVoid, 0, true},
		{"int", PrimInt, 0, true},
		{"i32", PrimInt, 32, true},
		{"float", PrimFloat, 0, true},
		{"f64", PrimFloat, 64, true},
		{"str", PrimStr, 0, true},
		{"i", 0, 0, false},
		{"i0", 0, 0, false},
		{"i08", 0, 0, false},
		{"ix", 0, 0, false},
		{"Point", 0, 0, false},
	}
	for _, tt := range tests {
		kind, bits, ok := ParsePrimitive(tt.in)
		if kind != tt.kind || bits != tt.bits || ok != tt.ok {
			t.Errorf("ParsePrimitive(%q) = %v,%d,%v", tt.in, kind, bits, ok)
		}
	}
}

func TestFormatType(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	tests := []struct {
		typ  Type
		want string
	}{
		{Type{Kind: TypeAuto}, "auto"},
		{Type{Kind: TypePrimitive, Prim: PrimInt, Bits: 8}, "i8"},
		{Type{Kind: TypePrimitive, Prim: PrimStr}, "str"},
		{Type{Kind: TypePath, Path: []source.StringID{b.StringsInterner.Intern("geo"), b.StringsInterner.Intern("Point")}}, "geo.Point"},
		{Type{}, ""},
	}
	for _, tt := range tests {
		if got := b.FormatType(tt.typ); got != tt.want {
			t.Errorf("FormatType = %q, want %q", got, tt.want)
		}
	}
	if (Type{Kind: TypeAuto}).IsExplicit() || !(Type{Kind: TypePath}).IsExplicit() {
		t.Error("IsExplicit misclassifies")
	}
}
