package diag

import (
	"corec/internal/source"
)

// Entry is one underlined span inside a record.
type Entry struct {
	Severity Severity
	Code     Code
	Span     source.Span
	Msg      string
}

// Diagnostic is an error record: one message, one file, many entries.
type Diagnostic struct {
	File    source.FileID
	Message string
	Entries []Entry
}

// New starts a record whose first entry is the primary error.
func New(code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		File:    primary.File,
		Message: code.Message(),
		Entries: []Entry{{Severity: SevError, Code: code, Span: primary, Msg: msg}},
	}
}

// WithNote appends a note entry carrying the code of the primary entry.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Entries = append(d.Entries, Entry{Severity: SevNote, Code: d.Code(), Span: sp, Msg: msg})
	return d
}

// Code returns the code of the first entry.
func (d Diagnostic) Code() Code {
	if len(d.Entries) == 0 {
		return UnknownCode
	}
	return d.Entries[0].Code
}

// HasErrors reports whether any entry is an error.
func (d Diagnostic) HasErrors() bool {
	for _, e := range d.Entries {
		if e.Severity == SevError {
			return true
		}
	}
	return false
}
