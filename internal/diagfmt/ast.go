package diagfmt

import (
	"strconv"
	"strings"

	"corec/internal/ast"
)

// ASTNode is the printer-neutral form of a tree node. The tree, json,
// yaml and msgpack printers all walk it.
type ASTNode struct {
	Kind     string            `json:"kind" yaml:"kind" msgpack:"kind"`
	Role     string            `json:"role,omitempty" yaml:"role,omitempty" msgpack:"role,omitempty"`
	Span     [2]uint32         `json:"span" yaml:"span,flow" msgpack:"span"`
	Attrs    map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty" msgpack:"attrs,omitempty"`
	Children []*ASTNode        `json:"children,omitempty" yaml:"children,omitempty" msgpack:"children,omitempty"`
}

func (n *ASTNode) attr(key, value string) *ASTNode {
	if value == "" {
		return n
	}
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

func (n *ASTNode) add(role string, child *ASTNode) {
	if child == nil {
		return
	}
	child.Role = role
	n.Children = append(n.Children, child)
}

type astConv struct {
	b *ast.Builder
}

// BuildAST converts the tree under top into ASTNodes.
func BuildAST(b *ast.Builder, top ast.TopLevelID) *ASTNode {
	tl := b.TopLevel(top)
	if tl == nil {
		return &ASTNode{Kind: "TopLevel"}
	}
	c := astConv{b: b}
	root := &ASTNode{Kind: "TopLevel", Span: [2]uint32{tl.Span.Start, tl.Span.End}}
	root.attr("imports", strconv.Itoa(len(tl.Imports))).
		attr("variables", strconv.Itoa(len(tl.Variables))).
		attr("functions", strconv.Itoa(len(tl.Functions)))
	for _, id := range tl.Order {
		root.add("", c.item(id))
	}
	return root
}

func (c astConv) item(id ast.ItemID) *ASTNode {
	it := c.b.Items.Get(id)
	if it == nil {
		return nil
	}
	n := &ASTNode{Kind: it.Kind.String(), Span: [2]uint32{it.Span.Start, it.Span.End}}
	switch it.Kind {
	case ast.ItemImport:
		imp, _ := c.b.Items.Import(id)
		segs := make([]string, len(imp.Path))
		for i, seg := range imp.Path {
			segs[i] = c.b.Name(seg.Name)
			if seg.Quoted {
				segs[i] = strconv.Quote(segs[i])
			}
		}
		n.attr("path", strings.Join(segs, "/"))
	case ast.ItemVar:
		v, _ := c.b.Items.Var(id)
		n.attr("name", c.b.Name(v.Name)).
			attr("type", c.b.FormatType(v.Type)).
			attr("mutable", strconv.FormatBool(v.Mutable))
		n.add("value", c.expr(v.Value))
	case ast.ItemFn:
		fn, _ := c.b.Items.Fn(id)
		n.attr("name", c.b.Name(fn.Name)).
			attr("type", c.b.FormatType(fn.Type))
		if fn.Macro {
			n.attr("macro", "true")
		}
		for _, prm := range fn.Params {
			pn := &ASTNode{Kind: "Param", Span: [2]uint32{prm.Span.Start, prm.Span.End}}
			pn.attr("name", c.b.Name(prm.Name)).attr("type", c.b.FormatType(prm.Type))
			pn.add("default", c.expr(prm.Default))
			n.add("param", pn)
		}
		n.add("body", c.expr(fn.Body))
	}
	return n
}

func (c astConv) expr(id ast.ExprID) *ASTNode {
	e := c.b.Exprs.Get(id)
	if e == nil {
		return nil
	}
	n := &ASTNode{Kind: e.Kind.String(), Span: [2]uint32{e.Span.Start, e.Span.End}}
	exprs := c.b.Exprs
	switch e.Kind {
	case ast.ExprAtom:
		a, _ := exprs.Atom(id)
		n.attr("type", a.Type()).attr("value", a.Value)
	case ast.ExprIdent:
		d, _ := exprs.Ident(id)
		names := make([]string, len(d.Segments))
		for i, seg := range d.Segments {
			names[i] = c.b.Name(seg.Name)
		}
		n.attr("path", strings.Join(names, "."))
		n.add("receiver", c.expr(d.Receiver))
		for i, seg := range d.Segments {
			n.add("args:"+names[i], c.expr(seg.Args))
		}
	case ast.ExprBinary:
		d, _ := exprs.Binary(id)
		n.attr("op", d.Op.String())
		n.add("left", c.expr(d.Left))
		n.add("right", c.expr(d.Right))
	case ast.ExprUnary:
		d, _ := exprs.Unary(id)
		n.attr("op", d.Op.String())
		n.add("operand", c.expr(d.Operand))
	case ast.ExprAssign:
		d, _ := exprs.Assign(id)
		n.add("target", c.expr(d.Target))
		n.add("value", c.expr(d.Value))
	case ast.ExprCond:
		d, _ := exprs.Cond(id)
		n.add("test", c.expr(d.Test))
		n.add("then", c.expr(d.Then))
		n.add("else", c.expr(d.Else))
	case ast.ExprList:
		d, _ := exprs.List(id)
		for _, it := range d.Items {
			n.add("", c.expr(it))
		}
	case ast.ExprBlock:
		d, _ := exprs.Block(id)
		n.attr("hasResult", strconv.FormatBool(d.HasResult))
		for _, sid := range d.Stmts {
			st := c.b.Stmts.Get(sid)
			if st == nil {
				continue
			}
			if st.Kind == ast.StmtVar {
				n.add("", c.item(st.Var))
			} else {
				n.add("", c.expr(st.Expr))
			}
		}
	}
	return n
}
