package parser

import (
	"fmt"
	"strings"
	"testing"

	"corec/internal/ast"
	"corec/internal/diag"
	"corec/internal/source"
)

type parsed struct {
	fs      *source.FileSet
	file    *source.File
	builder *ast.Builder
	res     Result
	bag     *diag.Bag
}

func parseSource(t *testing.T, input string) parsed {
	t.Helper()
	return parseSourceOpts(t, input, Options{})
}

func parseSourceOpts(t *testing.T, input string, opts Options) parsed {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.core", []byte(input))
	file := fs.Get(id)
	bag := diag.NewBag()
	builder := ast.NewBuilder(ast.Hints{}, source.NewInterner())
	opts.Reporter = diag.BagReporter{Bag: bag}
	res := ParseFile(file, builder, opts)
	return parsed{fs: fs, file: file, builder: builder, res: res, bag: bag}
}

// errors returns "CODE msg" for every error entry in raise order.
func (p parsed) errors() []string {
	var out []string
	for _, d := range p.bag.Items() {
		for _, e := range d.Entries {
			if e.Severity == diag.SevError {
				out = append(out, e.Code.ID()+" "+e.Msg)
			}
		}
	}
	return out
}

func (p parsed) countCode(code diag.Code) int {
	n := 0
	for _, d := range p.bag.Items() {
		for _, e := range d.Entries {
			if e.Severity == diag.SevError && e.Code == code {
				n++
			}
		}
	}
	return n
}

func (p parsed) top() *ast.TopLevel {
	return p.builder.TopLevel(p.res.Top)
}

func (p parsed) expectClean(t *testing.T) {
	t.Helper()
	if errs := p.errors(); len(errs) > 0 {
		t.Fatalf("unexpected diagnostics:\n%s", strings.Join(errs, "\n"))
	}
}

func (p parsed) onlyVar(t *testing.T) *ast.VarItem {
	t.Helper()
	top := p.top()
	if len(top.Variables) != 1 {
		t.Fatalf("expected 1 variable, got %d", len(top.Variables))
	}
	v, ok := p.builder.Items.Var(top.Variables[0])
	if !ok {
		t.Fatalf("item is not a variable")
	}
	return v
}

func (p parsed) onlyFn(t *testing.T) *ast.FnItem {
	t.Helper()
	top := p.top()
	if len(top.Functions) != 1 {
		t.Fatalf("expected 1 function, got %d", len(top.Functions))
	}
	fn, ok := p.builder.Items.Fn(top.Functions[0])
	if !ok {
		t.Fatalf("item is not a function")
	}
	return fn
}

// sexpr renders an expression compactly for structural comparisons.
func (p parsed) sexpr(id ast.ExprID) string {
	exprs := p.builder.Exprs
	e := exprs.Get(id)
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case ast.ExprAtom:
		a, _ := exprs.Atom(id)
		return a.Value
	case ast.ExprIdent:
		d, _ := exprs.Ident(id)
		var sb strings.Builder
		if d.Receiver.IsValid() {
			sb.WriteString(p.sexpr(d.Receiver))
			sb.WriteString(".")
		}
		for i, seg := range d.Segments {
			if i > 0 {
				sb.WriteString(".")
			}
			sb.WriteString(p.builder.Name(seg.Name))
			if seg.Args.IsValid() {
				sb.WriteString(p.sexpr(seg.Args))
			}
		}
		return sb.String()
	case ast.ExprBinary:
		b, _ := exprs.Binary(id)
		return fmt.Sprintf("(%s %s %s)", b.Op, p.sexpr(b.Left), p.sexpr(b.Right))
	case ast.ExprUnary:
		u, _ := exprs.Unary(id)
		return fmt.Sprintf("(%s %s)", u.Op, p.sexpr(u.Operand))
	case ast.ExprAssign:
		a, _ := exprs.Assign(id)
		return fmt.Sprintf("(= %s %s)", p.sexpr(a.Target), p.sexpr(a.Value))
	case ast.ExprCond:
		c, _ := exprs.Cond(id)
		if c.Else.IsValid() {
			return fmt.Sprintf("(? %s %s %s)", p.sexpr(c.Test), p.sexpr(c.Then), p.sexpr(c.Else))
		}
		return fmt.Sprintf("(? %s %s)", p.sexpr(c.Test), p.sexpr(c.Then))
	case ast.ExprList:
		l, _ := exprs.List(id)
		parts := make([]string, len(l.Items))
		for i, it := range l.Items {
			parts[i] = p.sexpr(it)
		}
		return "[" + strings.Join(parts, " ") + "]"
	case ast.ExprBlock:
		b, _ := exprs.Block(id)
		return fmt.Sprintf("{%d stmts result=%v}", len(b.Stmts), b.HasResult)
	}
	return "!"
}
