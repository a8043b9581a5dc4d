package diag

// Severity of a single entry inside a record.
type Severity uint8

const (
	SevNote Severity = iota
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevNote:
		return "NOTE"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Label is the lowercase form used by the json renderer.
func (s Severity) Label() string {
	switch s {
	case SevNote:
		return "note"
	case SevError:
		return "error"
	}
	return "unknown"
}
