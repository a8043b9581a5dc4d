// Package testkit holds structural checks shared by parser and fuzz tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"corec/internal/ast"
	"corec/internal/source"
)

// CheckSpanInvariants runs the span invariants on a parsed program:
// 1) the program span lies within the file content
// 2) every item span is inside the program span
// 3) every expression span is inside its item, every child inside its parent
// 4) block statements are inside their block
func CheckSpanInvariants(b *ast.Builder, top ast.TopLevelID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	t := b.TopLevel(top)
	if t == nil {
		return fmt.Errorf("top level node not found")
	}

	if t.Span.File != sf.ID {
		return fmt.Errorf("program span points to different file id: got=%d want=%d", t.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if t.Span.Start > t.Span.End || t.Span.End > lenContent {
		return fmt.Errorf("program span %v outside content of %d bytes", t.Span, lenContent)
	}

	for _, id := range t.Order {
		item := b.Items.Get(id)
		if item == nil {
			return fmt.Errorf("nil item for id=%d", id)
		}
		if !t.Span.Contains(item.Span) {
			return fmt.Errorf("%s span %v is outside program span %v", item.Kind, item.Span, t.Span)
		}
		if err := checkItem(b, id, item.Span); err != nil {
			return err
		}
	}
	return nil
}

func checkItem(b *ast.Builder, id ast.ItemID, outer source.Span) error {
	for _, root := range b.ItemExprs(id) {
		e := b.Exprs.Get(root)
		if e == nil {
			return fmt.Errorf("item %d refers to missing expression %d", id, root)
		}
		if !outer.Contains(e.Span) {
			return fmt.Errorf("%s span %v escapes its item %v", e.Kind, e.Span, outer)
		}
		if err := checkExpr(b, root); err != nil {
			return err
		}
	}
	return nil
}

func checkExpr(b *ast.Builder, id ast.ExprID) error {
	var firstErr error
	b.WalkExpr(id, func(id ast.ExprID, e *ast.Expr) bool {
		if firstErr != nil {
			return false
		}
		if e.Span.Start > e.Span.End {
			firstErr = fmt.Errorf("inverted %s span %v", e.Kind, e.Span)
			return false
		}
		for _, c := range b.ExprChildren(id) {
			child := b.Exprs.Get(c)
			if child == nil {
				firstErr = fmt.Errorf("%s %d has missing child %d", e.Kind, id, c)
				return false
			}
			if !e.Span.Contains(child.Span) {
				firstErr = fmt.Errorf("%s %v does not contain %s %v", e.Kind, e.Span, child.Kind, child.Span)
				return false
			}
		}
		if blk, ok := b.Exprs.Block(id); ok {
			for _, sid := range blk.Stmts {
				st := b.Stmts.Get(sid)
				if st == nil || !e.Span.Contains(st.Span) {
					firstErr = fmt.Errorf("statement %d escapes block %v", sid, e.Span)
					return false
				}
			}
		}
		return true
	})
	return firstErr
}
