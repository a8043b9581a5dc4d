package ast

// ExprChildren lists direct sub-expressions in source order.
func (b *Builder) ExprChildren(id ExprID) []ExprID {
	expr := b.Exprs.Get(id)
	if expr == nil {
		return nil
	}
	var out []ExprID
	add := func(ids ...ExprID) {
		for _, c := range ids {
			if c.IsValid() {
				out = append(out, c)
			}
		}
	}
	switch expr.Kind {
	case ExprIdent:
		d, _ := b.Exprs.Ident(id)
		add(d.Receiver)
		for _, s := range d.Segments {
			add(s.Args)
		}
	case ExprBinary:
		d, _ := b.Exprs.Binary(id)
		add(d.Left, d.Right)
	case ExprUnary:
		d, _ := b.Exprs.Unary(id)
		add(d.Operand)
	case ExprAssign:
		d, _ := b.Exprs.Assign(id)
		add(d.Target, d.Value)
	case ExprCond:
		d, _ := b.Exprs.Cond(id)
		add(d.Test, d.Then, d.Else)
	case ExprList:
		d, _ := b.Exprs.List(id)
		add(d.Items...)
	case ExprBlock:
		d, _ := b.Exprs.Block(id)
		for _, sid := range d.Stmts {
			st := b.Stmts.Get(sid)
			if st == nil {
				continue
			}
			if st.Kind == StmtExpr {
				add(st.Expr)
			} else if v, ok := b.Items.Var(st.Var); ok {
				add(v.Value)
			}
		}
	}
	return out
}

// ItemExprs lists the expressions owned directly by an item.
func (b *Builder) ItemExprs(id ItemID) []ExprID {
	var out []ExprID
	if v, ok := b.Items.Var(id); ok && v.Value.IsValid() {
		out = append(out, v.Value)
	}
	if fn, ok := b.Items.Fn(id); ok {
		for _, p := range fn.Params {
			if p.Default.IsValid() {
				out = append(out, p.Default)
			}
		}
		if fn.Body.IsValid() {
			out = append(out, fn.Body)
		}
	}
	return out
}

// WalkExpr visits id and its descendants depth-first; returning false from
// fn skips the children of that node.
func (b *Builder) WalkExpr(id ExprID, fn func(ExprID, *Expr) bool) {
	expr := b.Exprs.Get(id)
	if expr == nil || !fn(id, expr) {
		return
	}
	for _, c := range b.ExprChildren(id) {
		b.WalkExpr(c, fn)
	}
}
