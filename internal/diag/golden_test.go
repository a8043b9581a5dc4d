package diag

import (
	"testing"

	"corec/internal/source"
)

func TestFormatGolden(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.AddVirtual("sample.core", []byte("a\nb\n"))
	d := New(SynUnexpectedToken, source.Span{File: f, Start: 2, End: 3}, "unexpected\nIdentifier").
		WithNote(source.Span{File: f, Start: 0, End: 1}, "missing semicolon?")

	want := "error SYN2001 sample.core:2:1 unexpected Identifier\n" +
		"note SYN2001 sample.core:1:1 missing semicolon?"
	if got := FormatGolden([]*Diagnostic{&d}, fs, true); got != want {
		t.Fatalf("want:\n%s\ngot:\n%s", want, got)
	}
	if got := FormatGolden([]*Diagnostic{&d}, fs, false); got != "error SYN2001 sample.core:2:1 unexpected Identifier" {
		t.Fatalf("without notes: %q", got)
	}
}
