package ast

import (
	"corec/internal/source"
)

type ItemKind uint8

const (
	ItemImport ItemKind = iota
	ItemVar
	ItemFn
)

func (k ItemKind) String() string {
	switch k {
	case ItemImport:
		return "Import"
	case ItemVar:
		return "Variable"
	case ItemFn:
		return "Function"
	}
	return "Item(?)"
}

type Item struct {
	Kind    ItemKind
	Span    source.Span
	Payload PayloadID
}

// ImportSegment is one piece of a / separated path.
type ImportSegment struct {
	Name   source.StringID
	Span   source.Span
	Quoted bool
}

type ImportItem struct {
	Path []ImportSegment
}

// VarItem: Value is NoExprID only for `*T name` with an explicit T.
type VarItem struct {
	Mutable  bool
	Type     Type
	Name     source.StringID
	NameSpan source.Span
	Value    ExprID
}

type Param struct {
	Name     source.StringID
	NameSpan source.Span
	Type     Type
	Default  ExprID
	Span     source.Span
}

// FnItem: a macro never has Params.
type FnItem struct {
	Macro    bool
	Type     Type
	Name     source.StringID
	NameSpan source.Span
	Params   []Param
	Body     ExprID // ExprBlock
}

type Items struct {
	Arena   *Arena[Item]
	Imports *Arena[ImportItem]
	Vars    *Arena[VarItem]
	Fns     *Arena[FnItem]
}

func NewItems(capHint uint) *Items {
	if capHint == 0 {
		capHint = 1 << 5
	}
	return &Items{
		Arena:   NewArena[Item](capHint),
		Imports: NewArena[ImportItem](capHint / 4),
		Vars:    NewArena[VarItem](capHint),
		Fns:     NewArena[FnItem](capHint),
	}
}

func (i *Items) new(kind ItemKind, sp source.Span, payload PayloadID) ItemID {
	return ItemID(i.Arena.Allocate(Item{Kind: kind, Span: sp, Payload: payload}))
}

func (i *Items) Get(id ItemID) *Item {
	return i.Arena.Get(uint32(id))
}

func (i *Items) NewImport(sp source.Span, path []ImportSegment) ItemID {
	p := i.Imports.Allocate(ImportItem{Path: append([]ImportSegment(nil), path...)})
	return i.new(ItemImport, sp, PayloadID(p))
}

func (i *Items) Import(id ItemID) (*ImportItem, bool) {
	it := i.Get(id)
	if it == nil || it.Kind != ItemImport {
		return nil, false
	}
	return i.Imports.Get(uint32(it.Payload)), true
}

func (i *Items) NewVar(sp source.Span, v VarItem) ItemID {
	p := i.Vars.Allocate(v)
	return i.new(ItemVar, sp, PayloadID(p))
}

func (i *Items) Var(id ItemID) (*VarItem, bool) {
	it := i.Get(id)
	if it == nil || it.Kind != ItemVar {
		return nil, false
	}
	return i.Vars.Get(uint32(it.Payload)), true
}

func (i *Items) NewFn(sp source.Span, fn FnItem) ItemID {
	fn.Params = append([]Param(nil), fn.Params...)
	p := i.Fns.Allocate(fn)
	return i.new(ItemFn, sp, PayloadID(p))
}

func (i *Items) Fn(id ItemID) (*FnItem, bool) {
	it := i.Get(id)
	if it == nil || it.Kind != ItemFn {
		return nil, false
	}
	return i.Fns.Get(uint32(it.Payload)), true
}

// DeclName returns the name of a variable or function item.
func (i *Items) DeclName(id ItemID) (source.StringID, source.Span, bool) {
	if v, ok := i.Var(id); ok {
		return v.Name, v.NameSpan, true
	}
	if fn, ok := i.Fn(id); ok {
		return fn.Name, fn.NameSpan, true
	}
	return source.NoStringID, source.Span{}, false
}
