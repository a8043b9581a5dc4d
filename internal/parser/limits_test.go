package parser

import (
	"reflect"
	"strings"
	"testing"

	"corec/internal/ast"
	"corec/internal/diag"
	"corec/internal/source"
	"corec/internal/testkit"
)

func TestNestingTooDeep(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"parens", "~ x = " + strings.Repeat("(", 300) + "1" + strings.Repeat(")", 300) + ";"},
		{"unary", "~ x = " + strings.Repeat("- ", 300) + "1;"},
		{"blocks", "void f() " + strings.Repeat("{", 300) + strings.Repeat("}", 300)},
		{"cond", "~ x = " + strings.Repeat("1 ? ", 300) + "1;"},
		{"cond_else", "~ x = " + strings.Repeat("1 ? 2 : ", 300) + "1;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := parseSource(t, tt.input)
			if want := []string{"SYN2007 nesting too deep"}; !reflect.DeepEqual(p.errors(), want) {
				t.Fatalf("errors = %v, want %v", p.errors(), want)
			}
			if !p.res.Halted {
				t.Errorf("parse must halt")
			}
		})
	}
}

func TestNestingWithinLimit(t *testing.T) {
	input := "~ x = " + strings.Repeat("(", 20) + "1" + strings.Repeat(")", 20) + ";"
	p := parseSourceOpts(t, input, Options{MaxDepth: 64})
	p.expectClean(t)
}

func TestMaxErrorsHalts(t *testing.T) {
	p := parseSourceOpts(t, "5; 5; 5; 5; 5;", Options{MaxErrors: 3})
	if got := len(p.errors()); got != 3 {
		t.Errorf("errors = %d, want 3", got)
	}
	if !p.res.Halted {
		t.Errorf("parse must halt at the limit")
	}
}

func TestCheckpointStops(t *testing.T) {
	calls := 0
	p := parseSourceOpts(t, "~ a = 1; ~ b = 2; ~ c = 3;", Options{
		Checkpoint: func() bool {
			calls++
			return calls < 2
		},
	})
	if len(p.top().Variables) != 2 {
		t.Errorf("vars = %d, want 2", len(p.top().Variables))
	}
	if !p.res.Halted {
		t.Errorf("expected halted result")
	}
}

func TestFloodedSinkHalts(t *testing.T) {
	bag := diag.NewBag()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("flood.core", []byte(strings.Repeat("5; ", diag.FloodLimit+50))))
	builder := ast.NewBuilder(ast.Hints{}, source.NewInterner())
	res := ParseFile(file, builder, Options{Reporter: diag.BagReporter{Bag: bag}})
	if !res.Halted || !bag.Flooded() {
		t.Fatalf("halted=%v flooded=%v", res.Halted, bag.Flooded())
	}
	if res.Errors != diag.FloodLimit+1 {
		t.Errorf("errors = %d, want %d", res.Errors, diag.FloodLimit+1)
	}
}

const mixedProgram = `^ std/"io";
*int counter;
~ limit = 10;
int add(a: int, b = 2) {
	~ s = a + b * 2;
	s > limit ? { limit } : { s }
}
@void main {
	counter = add(1, 2).abs;
	!(counter == 3) || -counter < 0;
}
int broken = (1, ;
`

func TestDeterministic(t *testing.T) {
	a := parseSource(t, mixedProgram)
	b := parseSource(t, mixedProgram)
	if !reflect.DeepEqual(a.errors(), b.errors()) {
		t.Fatalf("diagnostics differ:\n%v\n%v", a.errors(), b.errors())
	}
	if a.builder.Exprs.Arena.Len() != b.builder.Exprs.Arena.Len() {
		t.Fatalf("expression count differs")
	}
	for i := uint32(1); i <= a.builder.Exprs.Arena.Len(); i++ {
		id := ast.ExprID(i)
		if a.sexpr(id) != b.sexpr(id) || a.builder.Exprs.Get(id).Span != b.builder.Exprs.Get(id).Span {
			t.Fatalf("expression %d differs", i)
		}
	}
}

func TestSpansNest(t *testing.T) {
	p := parseSource(t, mixedProgram)
	if err := testkit.CheckSpanInvariants(p.builder, p.res.Top, p.file); err != nil {
		t.Fatal(err)
	}
}
