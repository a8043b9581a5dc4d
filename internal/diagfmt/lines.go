package diagfmt

import (
	"strings"
	"sync"

	"corec/internal/source"
)

// annotatedLine is a source line split at its trailing comment.
type annotatedLine struct {
	code    string
	comment string // начинается с "//", пусто если комментария нет
}

func (l annotatedLine) render(p palette) string {
	if l.comment == "" {
		return l.code
	}
	return l.code + p.grey(l.comment)
}

type cachedFile struct {
	hash  [32]byte
	lines []annotatedLine
}

// LineCache keeps annotated source lines per file path for the lifetime of
// the process. An entry is rebuilt when the file content hash changes.
type LineCache struct {
	mu    sync.Mutex
	files map[string]*cachedFile
}

func NewLineCache() *LineCache {
	return &LineCache{files: make(map[string]*cachedFile)}
}

var defaultLines = NewLineCache()

// Lines returns the annotated lines of f, building them on first use.
func (c *LineCache) Lines(f *source.File) []annotatedLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cf, ok := c.files[f.Path]; ok && cf.hash == f.Hash {
		return cf.lines
	}
	raw := strings.Split(string(f.Content), "\n")
	lines := make([]annotatedLine, len(raw))
	for i, ln := range raw {
		lines[i] = splitComment(ln)
	}
	c.files[f.Path] = &cachedFile{hash: f.Hash, lines: lines}
	return lines
}

// Len reports how many files are cached.
func (c *LineCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.files)
}

// splitComment finds "//" outside string literals.
func splitComment(line string) annotatedLine {
	inString := false
	for i := 0; i < len(line); i++ {
		switch ch := line[i]; {
		case inString && ch == '\\':
			i++
		case ch == '"':
			inString = !inString
		case !inString && ch == '/' && i+1 < len(line) && line[i+1] == '/':
			return annotatedLine{code: line[:i], comment: line[i:]}
		}
	}
	return annotatedLine{code: line}
}
