package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"corec/internal/diag"
	"corec/internal/source"
)

const (
	gutterBar      = "┃"
	underlineHead  = "^"
	underlineGlyph = "Ⲻ"
	// wrapWidth: подпись длиннее (вместе с подчёркиванием) уходит на новую строку
	wrapWidth = 50
)

// placed is an entry resolved against its file.
type placed struct {
	entry  diag.Entry
	index  int    // порядок в записи, от него зависит цвет
	line   uint32 // 1-based
	col    uint32 // 0-based byte offset within the line
	endCol uint32
}

func placeEntries(d *diag.Diagnostic, fs *source.FileSet) []placed {
	f := fs.Get(d.File)
	out := make([]placed, 0, len(d.Entries))
	for i, e := range d.Entries {
		start, end := fs.Resolve(e.Span)
		p := placed{entry: e, index: i, line: start.Line, col: start.Col - 1}
		lineLen := uint32(len(f.Line(start.Line))) // #nosec G115
		switch {
		case end.Line == start.Line:
			p.endCol = end.Col - 1
		default:
			p.endCol = lineLen
		}
		p.col = min(p.col, lineLen)
		p.endCol = max(min(p.endCol, lineLen), p.col)
		out = append(out, p)
	}
	return out
}

// Format renders one record into a string.
func Format(d *diag.Diagnostic, fs *source.FileSet, opts RenderOpts) string {
	switch opts.Style {
	case StyleSimple:
		return formatSimple(d, fs, opts, true)
	case StyleExtended:
		return formatDefault(d, fs, opts) + "\n\n" + formatSimple(d, fs, opts, false)
	case StyleJSON:
		return formatJSON(d, fs)
	}
	return formatDefault(d, fs, opts)
}

// Render writes one record followed by a newline.
func Render(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts RenderOpts) error {
	if _, err := io.WriteString(w, Format(d, fs, opts)+"\n"); err != nil {
		return fmt.Errorf("render diagnostic: %w", err)
	}
	return nil
}

// AbortNotice is the trailer written after an aborting drain.
func AbortNotice(color bool) string {
	return palette{on: color}.grey("\nAborting due to previous errors")
}

// FloodNotice is written before the drain when the flood guard trips.
const FloodNotice = "too many errors"

// RenderAll writes records in order.
func RenderAll(w io.Writer, diags []*diag.Diagnostic, fs *source.FileSet, opts RenderOpts) error {
	for _, d := range diags {
		if err := Render(w, d, fs, opts); err != nil {
			return err
		}
	}
	return nil
}

// formatDefault: заголовок, затем группы по строкам с подчёркиваниями.
// Вывод начинается с пустой строки.
func formatDefault(d *diag.Diagnostic, fs *source.FileSet, opts RenderOpts) string {
	pal := palette{on: opts.Color}
	f := fs.Get(d.File)
	entries := placeEntries(d, fs)

	width := 1
	for _, e := range entries {
		width = max(width, len(strconv.FormatUint(uint64(e.line), 10)))
	}
	padding := strings.Repeat(" ", width)

	out := []string{
		"",
		pal.badge(d.Message) + " at " + pal.grey(f.Path),
		" " + padding + " " + pal.primary(gutterBar),
	}

	groups := groupByLine(entries)
	if opts.Limit > 0 && len(groups) > opts.Limit {
		groups = groups[:opts.Limit]
	}

	lines := defaultLines.Lines(f)
	for _, group := range groups {
		lineNo := min(group[0].line, uint32(len(lines))) // #nosec G115
		if lineNo == 0 {
			continue
		}
		no := strconv.FormatUint(uint64(lineNo), 10)
		src := lines[lineNo-1]
		out = append(out, " "+strings.Repeat(" ", width-len(no))+pal.primary(no)+" "+pal.primary(gutterBar)+" "+src.render(pal))

		raw := f.Line(lineNo)
		spans := slices.Clone(group)
		slices.SortStableFunc(spans, func(a, b placed) int { return int(a.col) - int(b.col) })
		seen := make(map[[2]uint32]bool, len(spans))
		for i := len(spans) - 1; i >= 0; i-- {
			sp := spans[i]
			key := [2]uint32{sp.col, sp.endCol}
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, underlineRow(pal, padding, raw, sp))
		}
	}
	return strings.Join(out, "\n")
}

func groupByLine(entries []placed) [][]placed {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b placed) int { return int(a.line) - int(b.line) })
	var groups [][]placed
	for _, e := range sorted {
		if n := len(groups); n > 0 && groups[n-1][0].line == e.line {
			groups[n-1] = append(groups[n-1], e)
			continue
		}
		groups = append(groups, []placed{e})
	}
	return groups
}

func underlineRow(pal palette, padding, raw string, sp placed) string {
	n := uint32(len(raw)) // #nosec G115
	col, end := min(sp.col, n), min(sp.endCol, n)
	lead := caretPad(raw[:col])
	size := max(runewidth.StringWidth(raw[col:max(col, end)]), 1)
	paint := pal.underline(sp.index)

	row := " " + padding + pal.primary(" "+gutterBar) + " " + lead +
		paint.Sprint(underlineHead+strings.Repeat(underlineGlyph, size-1)) + " "
	if size+runewidth.StringWidth(sp.entry.Msg) > wrapWidth {
		return row + "\n " + padding + " " + pal.primary(gutterBar) + " " + lead + paint.Sprint(sp.entry.Msg)
	}
	return row + paint.Sprint(sp.entry.Msg)
}

// caretPad turns a line prefix into blank space of the same display width.
// Tabs are kept so the caret lands where the terminal put the text.
func caretPad(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}

// formatSimple: по строке на запись: LEVEL:line:col: message.
func formatSimple(d *diag.Diagnostic, fs *source.FileSet, opts RenderOpts, header bool) string {
	pal := palette{on: opts.Color}
	var out []string
	if header {
		out = append(out, pal.bold(d.Message)+" @ "+pal.grey(fs.Get(d.File).Path))
	}
	for _, e := range placeEntries(d, fs) {
		isNote := e.entry.Severity == diag.SevNote
		pos := fmt.Sprintf("%d:%d", e.line, e.col+1)
		out = append(out, pal.label(isNote, e.entry.Severity.String())+":"+pal.grey(pos)+": "+e.entry.Msg)
	}
	return strings.Join(out, "\n")
}

// RecordJSON is the json display style of one record.
type RecordJSON struct {
	Message string      `json:"message"`
	File    string      `json:"file"`
	Lines   []EntryJSON `json:"lines"`
}

type EntryJSON struct {
	Type    string    `json:"type"`
	Message string    `json:"message"`
	Line    uint32    `json:"line"`
	Span    [2]uint32 `json:"span"`
}

// RecordToJSON builds the json form of d; span holds 0-based columns.
func RecordToJSON(d *diag.Diagnostic, fs *source.FileSet) RecordJSON {
	rec := RecordJSON{Message: d.Message, File: fs.Get(d.File).Path, Lines: []EntryJSON{}}
	for _, e := range placeEntries(d, fs) {
		rec.Lines = append(rec.Lines, EntryJSON{
			Type:    e.entry.Severity.Label(),
			Message: e.entry.Msg,
			Line:    e.line,
			Span:    [2]uint32{e.col, e.endCol},
		})
	}
	return rec
}

func formatJSON(d *diag.Diagnostic, fs *source.FileSet) string {
	data, err := json.Marshal(RecordToJSON(d, fs))
	if err != nil {
		return fmt.Sprintf(`{"message":%q,"error":%q}`, d.Message, err.Error())
	}
	return string(data)
}
