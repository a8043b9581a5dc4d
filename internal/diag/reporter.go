package diag

import "corec/internal/source"

// Note is a secondary span attached to a report.
type Note struct {
	Span source.Span
	Msg  string
}

// Reporter: минимальный контракт получения диагностик от фаз.
// Report returns false once the sink refuses more input (flood guard).
type Reporter interface {
	Report(code Code, primary source.Span, msg string, notes []Note) bool
}

// ReportBuilder accumulates notes before emitting to a Reporter.
type ReportBuilder struct {
	reporter Reporter
	code     Code
	primary  source.Span
	msg      string
	notes    []Note
	emitted  bool
}

// ReportError starts an error report.
func ReportError(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{reporter: r, code: code, primary: primary, msg: msg}
}

func (b *ReportBuilder) WithNote(sp source.Span, msg string) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.notes = append(b.notes, Note{Span: sp, Msg: msg})
	return b
}

// Emit sends the report exactly once.
func (b *ReportBuilder) Emit() bool {
	if b == nil || b.emitted {
		return false
	}
	b.emitted = true
	if b.reporter == nil {
		return false
	}
	return b.reporter.Report(b.code, b.primary, b.msg, b.notes)
}

// Diagnostic returns the record without emitting it.
func (b *ReportBuilder) Diagnostic() Diagnostic {
	if b == nil {
		return Diagnostic{}
	}
	d := New(b.code, b.primary, b.msg)
	for _, n := range b.notes {
		d = d.WithNote(n.Span, n.Msg)
	}
	return d
}

// BagReporter: адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, primary source.Span, msg string, notes []Note) bool {
	if r.Bag == nil {
		return false
	}
	d := New(code, primary, msg)
	for _, n := range notes {
		d = d.WithNote(n.Span, n.Msg)
	}
	return r.Bag.Add(d)
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Code, source.Span, string, []Note) bool { return true }
