package fuzztests

import (
	"reflect"
	"testing"

	"corec/internal/diag"
	"corec/internal/lexer"
	"corec/internal/source"
	"corec/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func scanOnce(input []byte) ([]token.Token, int) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("fuzz.core", input))
	bag := diag.NewBag()
	toks := lexer.Scan(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return toks, bag.Len()
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		toks, n := scanOnce(input)

		var prevEnd uint32
		for i, tok := range toks {
			if tok.Kind == token.EOF {
				t.Fatalf("token %d: EOF inside the token stream", i)
			}
			if tok.Span.Start < prevEnd || tok.Span.End < tok.Span.Start {
				t.Fatalf("token %d: span %v overlaps or is inverted (prev end %d)", i, tok.Span, prevEnd)
			}
			if int(tok.Span.End) > len(input) {
				t.Fatalf("token %d: span %v beyond input of %d bytes", i, tok.Span, len(input))
			}
			prevEnd = tok.Span.End
		}

		again, n2 := scanOnce(input)
		if !reflect.DeepEqual(toks, again) || n != n2 {
			t.Fatalf("lexing is not deterministic for %q", truncateForLog(input, 200))
		}
	})
}
