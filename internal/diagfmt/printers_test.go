package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"corec/internal/ast"
	"corec/internal/lexer"
	"corec/internal/parser"
	"corec/internal/source"
)

func parseForPrint(t *testing.T, input string) (*ast.Builder, ast.TopLevelID) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("print.core", []byte(input)))
	b := ast.NewBuilder(ast.Hints{}, source.NewInterner())
	res := parser.ParseFile(file, b, parser.Options{})
	if res.Errors != 0 {
		t.Fatalf("unexpected parse errors: %d", res.Errors)
	}
	return b, res.Top
}

func TestFormatASTTree(t *testing.T) {
	b, top := parseForPrint(t, "~ x = a + 1;")
	var buf bytes.Buffer
	if err := FormatASTTree(&buf, BuildAST(b, top), false); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"TopLevel functions=0 imports=0 variables=1 [0..12]",
		"└─ Variable mutable=false name=x type=auto [0..11]",
		"   └─ value: BinaryExpression op=Add [6..11]",
		"      ├─ left: Identifier path=a [6..7]",
		"      └─ right: Atom type=int value=1 [10..11]",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestASTEncodings(t *testing.T) {
	b, top := parseForPrint(t, "^ std; int f(a: int) { a }")
	root := BuildAST(b, top)

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := FormatASTJSON(&buf, root); err != nil {
			t.Fatal(err)
		}
		var back ASTNode
		if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
			t.Fatal(err)
		}
		if len(back.Children) != 2 || back.Children[1].Attrs["name"] != "f" {
			t.Errorf("unexpected tree %+v", back)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := FormatASTYAML(&buf, root); err != nil {
			t.Fatal(err)
		}
		var back ASTNode
		if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil {
			t.Fatal(err)
		}
		if back.Children[0].Attrs["path"] != "std" {
			t.Errorf("unexpected import %+v", back.Children[0])
		}
	})

	t.Run("msgpack", func(t *testing.T) {
		var buf bytes.Buffer
		if err := FormatASTMsgpack(&buf, root); err != nil {
			t.Fatal(err)
		}
		var back ASTNode
		if err := msgpack.Unmarshal(buf.Bytes(), &back); err != nil {
			t.Fatal(err)
		}
		fn := back.Children[1]
		if fn.Children[0].Kind != "Param" || fn.Children[1].Role != "body" {
			t.Errorf("unexpected fn %+v", fn)
		}
	})
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("tok.core", []byte("x = \"a\\n\";")))
	toks := lexer.Scan(file, lexer.Options{})

	var pretty bytes.Buffer
	if err := FormatTokensPretty(&pretty, toks, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(pretty.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 tokens, got:\n%s", pretty.String())
	}
	if !strings.Contains(lines[2], `= "a\n"`) {
		t.Errorf("string value missing: %s", lines[2])
	}

	var js bytes.Buffer
	if err := FormatTokensJSON(&js, toks, fs); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(js.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out[0].Kind != "Identifier" || out[0].Value != "" || out[2].Value != "a\n" {
		t.Errorf("unexpected tokens %+v", out)
	}

	var mp bytes.Buffer
	if err := FormatTokensMsgpack(&mp, toks, fs); err != nil {
		t.Fatal(err)
	}
	var back []TokenOutput
	if err := msgpack.Unmarshal(mp.Bytes(), &back); err != nil {
		t.Fatal(err)
	}
	if len(back) != 4 || back[3].Kind != "Semicolon" {
		t.Errorf("unexpected msgpack tokens %+v", back)
	}
}
