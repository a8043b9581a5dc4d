package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"corec/internal/diag"
	"corec/internal/lexer"
	"corec/internal/source"
	"corec/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	bag *diag.Bag
}

func (r *testReporter) Report(code diag.Code, primary source.Span, msg string, notes []diag.Note) bool {
	return diag.BagReporter{Bag: r.bag}.Report(code, primary, msg, notes)
}

// entries flattens every record into its entries in raise order.
func (r *testReporter) entries() []diag.Entry {
	var out []diag.Entry
	for _, d := range r.bag.Items() {
		out = append(out, d.Entries...)
	}
	return out
}

func (r *testReporter) errorMessages() []string {
	var out []string
	for _, e := range r.entries() {
		out = append(out, fmt.Sprintf("[%s] %s: %s", e.Code.ID(), e.Severity, e.Msg))
	}
	return out
}

func scanAll(input string) ([]token.Token, *testReporter, *source.File) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.core", []byte(input)))
	rep := &testReporter{bag: diag.NewBag()}
	return lexer.Scan(file, lexer.Options{Reporter: rep}), rep, file
}

func expectKinds(t *testing.T, input string, expected ...token.Kind) []token.Token {
	t.Helper()
	toks, rep, _ := scanAll(input)
	if len(toks) != len(expected) {
		t.Fatalf("%q: expected %d tokens, got %d: %s\nerrors: %v",
			input, len(expected), len(toks), tokensToString(toks), rep.errorMessages())
	}
	for i, tok := range toks {
		if tok.Kind != expected[i] {
			t.Errorf("%q token %d: expected %v, got %v (%q)", input, i, expected[i], tok.Kind, tok.Text)
		}
	}
	return toks
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func TestIdentifiers(t *testing.T) {
	for _, in := range []string{"foo", "_bar", "x123", "camelCase", "i32"} {
		toks := expectKinds(t, in, token.Ident)
		if toks[0].Value != in || toks[0].Text != in {
			t.Errorf("%q: value %q text %q", in, toks[0].Value, toks[0].Text)
		}
	}
}

func TestPunctuation(t *testing.T) {
	expectKinds(t, "+-*/()[]{}!@#$%^&=|.,<>;:~?",
		token.Plus, token.Minus, token.Star, token.Slash, token.LParen, token.RParen,
		token.LBracket, token.RBracket, token.LBrace, token.RBrace, token.Bang, token.At,
		token.Hash, token.Dollar, token.Percent, token.Caret, token.Amp, token.Assign,
		token.Pipe, token.Dot, token.Comma, token.Lt, token.Gt, token.Semicolon,
		token.Colon, token.Tilde, token.Question)
}

func TestTwoCharOperators(t *testing.T) {
	expectKinds(t, "== != <= >= && || !!",
		token.EqEq, token.BangEq, token.LtEq, token.GtEq, token.AndAnd, token.OrOr, token.BangBang)
	// lookahead does not swallow the second char unless the pair matches
	expectKinds(t, "=<", token.Assign, token.Lt)
	expectKinds(t, "!x", token.Bang, token.Ident)
	expectKinds(t, "a=-1", token.Ident, token.Assign, token.Minus, token.IntLit)
}

func TestCommentsAndWhitespace(t *testing.T) {
	toks := expectKinds(t, "a // comment + - *\n\tb\r\n// tail", token.Ident, token.Ident)
	if toks[1].Value != "b" {
		t.Errorf("second ident = %q", toks[1].Value)
	}
	expectKinds(t, "a / b", token.Ident, token.Slash, token.Ident)
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		in    string
		kind  token.Kind
		value string
	}{
		{"0", token.IntLit, "0"},
		{"12345", token.IntLit, "12345"},
		{"1.5", token.FloatLit, "1.5"},
		{"10.25", token.FloatLit, "10.25"},
	}
	for _, tt := range tests {
		toks := expectKinds(t, tt.in, tt.kind)
		if toks[0].Value != tt.value {
			t.Errorf("%q: value %q, want %q", tt.in, toks[0].Value, tt.value)
		}
	}
}

func TestNumberFollowedByCallChain(t *testing.T) {
	expectKinds(t, "5.toString()", token.IntLit, token.Dot, token.Ident, token.LParen, token.RParen)
	expectKinds(t, "5.", token.IntLit, token.Dot)
}

func TestNumberWithSecondDot(t *testing.T) {
	toks, rep, _ := scanAll("1.2.3")
	if len(toks) != 1 || toks[0].Kind != token.FloatLit {
		t.Fatalf("tokens = %s", tokensToString(toks))
	}
	if toks[0].Value != "1.2" || toks[0].Text != "1.2.3" {
		t.Errorf("value %q text %q", toks[0].Value, toks[0].Text)
	}
	ents := rep.entries()
	if len(ents) != 1 || ents[0].Code != diag.LexUnexpectedChar {
		t.Fatalf("entries = %v", rep.errorMessages())
	}
	if ents[0].Span.Start != 3 || ents[0].Span.End != 4 {
		t.Errorf("diagnostic span = %v, want the second dot", ents[0].Span)
	}
	if rep.bag.Items()[0].Message != diag.MsgInvalidSyntax {
		t.Errorf("message = %q", rep.bag.Items()[0].Message)
	}
}

func TestIntegerOutOfRange(t *testing.T) {
	toks, rep, _ := scanAll("99999999999999999999")
	if len(toks) != 1 || toks[0].Kind != token.IntLit {
		t.Fatalf("tokens = %s", tokensToString(toks))
	}
	if ents := rep.entries(); len(ents) != 1 || ents[0].Code != diag.LexNumberRange {
		t.Fatalf("entries = %v", rep.errorMessages())
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"abc"`, "abc"},
		{`""`, ""},
		{`"a\nb\tc\r"`, "a\nb\tc\r"},
		{`"\"q\""`, `"q"`},
		{`"\\"`, `\`},
		{`"\z"`, "z"},
		{`"Aé"`, "Aé"},
		{`"привет"`, "привет"},
		{"\"é\"", "é"}, // NFC
	}
	for _, tt := range tests {
		toks, rep, _ := scanAll(tt.in)
		if len(toks) != 1 || toks[0].Kind != token.StringLit {
			t.Fatalf("%s: tokens = %s", tt.in, tokensToString(toks))
		}
		if toks[0].Value != tt.want {
			t.Errorf("%s: value %q, want %q", tt.in, toks[0].Value, tt.want)
		}
		if toks[0].Text != tt.in {
			t.Errorf("%s: text %q", tt.in, toks[0].Text)
		}
		if rep.bag.Len() != 0 {
			t.Errorf("%s: unexpected diagnostics %v", tt.in, rep.errorMessages())
		}
	}
}

func TestBadUnicodeEscape(t *testing.T) {
	toks, rep, _ := scanAll(`"x\u12g"`)
	if len(toks) != 1 || toks[0].Kind != token.StringLit {
		t.Fatalf("tokens = %s", tokensToString(toks))
	}
	if toks[0].Value != "xg" {
		t.Errorf("value %q, want the escape dropped", toks[0].Value)
	}
	ents := rep.entries()
	if len(ents) != 1 || ents[0].Code != diag.LexBadUnicodeEscape || ents[0].Msg != "invalid unicode escape sequence" {
		t.Fatalf("entries = %v", rep.errorMessages())
	}
	if ents[0].Span.Start != 2 || ents[0].Span.End != 6 {
		t.Errorf("span = %v", ents[0].Span)
	}
}

func TestBadUnicodeEscapeStillCloses(t *testing.T) {
	toks, rep, _ := scanAll(`"\u1" x`)
	if len(toks) != 2 || toks[0].Kind != token.StringLit || toks[1].Kind != token.Ident {
		t.Fatalf("tokens = %s", tokensToString(toks))
	}
	if len(rep.entries()) != 1 {
		t.Errorf("entries = %v", rep.errorMessages())
	}
}

func TestUnterminatedString(t *testing.T) {
	toks, rep, file := scanAll(`"abc`)
	if len(toks) != 1 || toks[0].Kind != token.StringLit || toks[0].Value != "abc" {
		t.Fatalf("tokens = %s", tokensToString(toks))
	}
	if rep.bag.Len() != 1 {
		t.Fatalf("records = %d", rep.bag.Len())
	}
	ents := rep.entries()
	if len(ents) != 2 {
		t.Fatalf("entries = %v", rep.errorMessages())
	}
	if ents[0].Severity != diag.SevError || ents[0].Msg != "string was never closed" || ents[0].Span.Start != 0 {
		t.Errorf("primary = %+v", ents[0])
	}
	if ents[1].Severity != diag.SevNote || ents[1].Msg != "EOF" || ents[1].Span != file.EOF() {
		t.Errorf("note = %+v", ents[1])
	}
}

func TestUnknownCharactersCoalesce(t *testing.T) {
	toks, rep, _ := scanAll("a `` b \\\n`")
	expected := []token.Kind{token.Ident, token.Ident}
	if len(toks) != len(expected) {
		t.Fatalf("tokens = %s", tokensToString(toks))
	}
	ents := rep.entries()
	if len(ents) != 3 {
		t.Fatalf("expected 3 runs, got %v", rep.errorMessages())
	}
	want := [][2]uint32{{2, 4}, {7, 8}, {9, 10}}
	for i, e := range ents {
		if e.Span.Start != want[i][0] || e.Span.End != want[i][1] {
			t.Errorf("run %d span = %v, want %v", i, e.Span, want[i])
		}
		if e.Msg != "unexpected token" {
			t.Errorf("run %d msg = %q", i, e.Msg)
		}
	}
	if rep.bag.Len() != 1 {
		t.Errorf("runs should merge into one record, got %d", rep.bag.Len())
	}
}

func TestUnknownRunsReportedAtEnd(t *testing.T) {
	toks, rep, _ := scanAll("`x 1.2.3")
	if len(toks) != 2 {
		t.Fatalf("tokens = %s", tokensToString(toks))
	}
	ents := rep.entries()
	if len(ents) != 2 {
		t.Fatalf("entries = %v", rep.errorMessages())
	}
	// the number error is raised while scanning, the backtick run at EOF
	if ents[0].Span.Start != 6 || ents[1].Span.Start != 0 {
		t.Errorf("order = %v", rep.errorMessages())
	}
}

func TestNonASCIIIsUnknown(t *testing.T) {
	toks, rep, _ := scanAll("αβ x")
	if len(toks) != 1 || toks[0].Value != "x" {
		t.Fatalf("tokens = %s", tokensToString(toks))
	}
	ents := rep.entries()
	if len(ents) != 1 || ents[0].Span.Start != 0 || ents[0].Span.End != 4 {
		t.Fatalf("entries = %v", ents)
	}
}

func TestNextAfterEOF(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t", []byte("a `")))
	bag := diag.NewBag()
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	if tok := lx.Peek(); tok.Kind != token.Ident {
		t.Fatalf("Peek = %v", tok.Kind)
	}
	lx.Next()
	for range 3 {
		if tok := lx.Next(); tok.Kind != token.EOF || tok.Span.Start != 3 {
			t.Fatalf("Next = %v %v", tok.Kind, tok.Span)
		}
	}
	if bag.Raised() != 1 {
		t.Errorf("unknown run reported %d times", bag.Raised())
	}
}

func TestDeterministic(t *testing.T) {
	src := `^std/"io"; *int x = 1.5 + foo.bar(2, "s\n") ? { a } : b; // c`
	a, _, _ := scanAll(src)
	b, _, _ := scanAll(src)
	if tokensToString(a) != tokensToString(b) {
		t.Fatalf("non-deterministic scan:\n%s\n%s", tokensToString(a), tokensToString(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("token %d differs", i)
		}
	}
}

func TestSpansMatchText(t *testing.T) {
	src := "int main() { \"s\" + 1.25 != x; }"
	toks, _, file := scanAll(src)
	for _, tok := range toks {
		if got := string(file.Content[tok.Span.Start:tok.Span.End]); got != tok.Text {
			t.Errorf("%v: span text %q != %q", tok.Kind, got, tok.Text)
		}
	}
}
