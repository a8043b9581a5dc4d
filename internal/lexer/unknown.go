package lexer

import (
	"corec/internal/diag"
	"corec/internal/source"
)

// unknownRun is a stretch of adjacent characters no scanner accepts.
type unknownRun struct {
	start, end uint32
}

// skipUnknown consumes one rune and folds it into the last run when the
// two touch. Whitespace and newlines break runs, so a run never spans lines.
func (lx *Lexer) skipUnknown() {
	start := lx.cursor.Off
	lx.bumpRune()
	end := lx.cursor.Off
	if n := len(lx.pending); n > 0 && lx.pending[n-1].end == start {
		lx.pending[n-1].end = end
		return
	}
	lx.pending = append(lx.pending, unknownRun{start: start, end: end})
}

func (lx *Lexer) flushUnknown() {
	if lx.flushed {
		return
	}
	lx.flushed = true
	for _, run := range lx.pending {
		sp := source.Span{File: lx.file.ID, Start: run.start, End: run.end}
		lx.errLex(diag.LexUnexpectedChar, sp, "unexpected token").Emit()
	}
	lx.pending = nil
}
