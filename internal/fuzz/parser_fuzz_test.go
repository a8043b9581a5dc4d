package fuzztests

import (
	"testing"
	"time"

	"corec/internal/ast"
	"corec/internal/diag"
	"corec/internal/parser"
	"corec/internal/source"
	"corec/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// Longer means a recovery loop that does not make progress.
const parseTimeout = 5 * time.Second

func parseOnce(input []byte) (*ast.Builder, *source.File, parser.Result, *diag.Bag) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("fuzz.core", input))
	bag := diag.NewBag()
	b := ast.NewBuilder(ast.Hints{}, nil)
	res := parser.ParseFile(file, b, parser.Options{
		Reporter:  diag.BagReporter{Bag: bag},
		MaxErrors: 128,
	})
	return b, file, res, bag
}

func FuzzParserBuildsAST(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		b, file, res, bag := parseOnce(input)
		if !res.Top.IsValid() {
			t.Fatal("parser returned no program node")
		}
		// на корректных программах спаны обязаны быть вложенными
		if !bag.HasErrors() {
			if err := testkit.CheckSpanInvariants(b, res.Top, file); err != nil {
				t.Fatalf("%v\ninput: %q", err, truncateForLog(input, 200))
			}
		}
	})
}

// FuzzParserNoHang checks that error recovery always makes progress.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	f.Add([]byte("int f() { ~ x = 1\n~ y = 2; }")) // missing semicolon
	f.Add([]byte("int f() { x + y\n~ z = 3; }"))   // expression without semicolon
	f.Add([]byte("{ ~ x = 1 }"))                   // block at top level
	f.Add([]byte("void f() { { { { } } } }"))      // nested blocks
	f.Add([]byte(")))))))"))                       // stray parens
	f.Add([]byte("int f(,,,,) {"))                 // broken params

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		done := make(chan struct{})
		go func() {
			defer close(done)
			parseOnce(input)
		}()
		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes.
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
