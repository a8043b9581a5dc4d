package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"corec/internal/source"
	"corec/internal/token"
)

// TokenOutput is the serialised form of one token.
type TokenOutput struct {
	Kind  string    `json:"kind" msgpack:"kind"`
	Text  string    `json:"text,omitempty" msgpack:"text,omitempty"`
	Value string    `json:"value,omitempty" msgpack:"value,omitempty"`
	Span  [2]uint32 `json:"span" msgpack:"span"`
	Line  uint32    `json:"line" msgpack:"line"`
	Col   uint32    `json:"col" msgpack:"col"`
}

func tokenOutputs(tokens []token.Token, fs *source.FileSet) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		start, _ := fs.Resolve(tok.Span)
		o := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: [2]uint32{tok.Span.Start, tok.Span.End},
			Line: start.Line,
			Col:  start.Col,
		}
		// значение печатаем только если оно отличается от текста
		if tok.Value != tok.Text {
			o.Value = tok.Value
		}
		out = append(out, o)
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)
		if _, err := fmt.Fprintf(w, "%3d: %-12s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		if tok.Kind == token.StringLit || (tok.Value != "" && tok.Value != tok.Text) {
			fmt.Fprintf(w, " = %q", tok.Value)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n", startPos.Line, startPos.Col, endPos.Line, endPos.Col)
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tokenOutputs(tokens, fs)); err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}
	return nil
}

// FormatTokensMsgpack пишет токены одним msgpack-массивом.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	if err := msgpack.NewEncoder(w).Encode(tokenOutputs(tokens, fs)); err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}
	return nil
}
