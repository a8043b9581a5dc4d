package diag

import (
	"fmt"
	"strings"

	"corec/internal/source"
)

// FormatGolden renders records one entry per line in a stable
// "severity CODE path:line:col message" form. Intended for tests and golden
// files, it ignores display style and limits.
func FormatGolden(diags []*Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}
	var b strings.Builder
	first := true
	for _, d := range diags {
		for _, e := range d.Entries {
			if e.Severity == SevNote && !includeNotes {
				continue
			}
			if !first {
				b.WriteByte('\n')
			}
			first = false
			start, _ := fs.Resolve(e.Span)
			path := fs.Get(e.Span.File).Path
			fmt.Fprintf(&b, "%s %s %s:%d:%d %s", e.Severity.Label(), e.Code.ID(), path, start.Line, start.Col, oneLine(e.Msg))
		}
	}
	return b.String()
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
