package ast

import (
	"corec/internal/source"
)

type Hints struct{ Items, Stmts, Exprs uint }

// Builder owns every arena of one parse plus the name interner.
type Builder struct {
	Tops            *Arena[TopLevel]
	Items           *Items
	Stmts           *Stmts
	Exprs           *Exprs
	StringsInterner *source.Interner
}

func NewBuilder(hints Hints, interner *source.Interner) *Builder {
	if hints.Items == 0 {
		hints.Items = 1 << 5
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 6
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 7
	}
	if interner == nil {
		interner = source.NewInterner()
	}
	return &Builder{
		Tops:            NewArena[TopLevel](1),
		Items:           NewItems(hints.Items),
		Stmts:           NewStmts(hints.Stmts),
		Exprs:           NewExprs(hints.Exprs),
		StringsInterner: interner,
	}
}

func (b *Builder) NewTopLevel(sp source.Span) TopLevelID {
	return TopLevelID(b.Tops.Allocate(TopLevel{Span: sp}))
}

func (b *Builder) TopLevel(id TopLevelID) *TopLevel {
	return b.Tops.Get(uint32(id))
}

// PushItem files an item into the list matching its kind.
func (b *Builder) PushItem(top TopLevelID, item ItemID) {
	t := b.TopLevel(top)
	it := b.Items.Get(item)
	if t == nil || it == nil {
		return
	}
	switch it.Kind {
	case ItemImport:
		t.Imports = append(t.Imports, item)
	case ItemVar:
		t.Variables = append(t.Variables, item)
	case ItemFn:
		t.Functions = append(t.Functions, item)
	}
	t.Order = append(t.Order, item)
}

// Name resolves an interned name; unknown ids give "".
func (b *Builder) Name(id source.StringID) string {
	s, _ := b.StringsInterner.Lookup(id)
	return s
}
