package source

import (
	"crypto/sha256"
	"fmt"
	"math"
	"os"

	"fortio.org/safecast"
)

// FileSet owns every buffer of one run and resolves offsets to positions.
type FileSet struct {
	files []File
	index map[string]FileID // path -> latest id
}

func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0, 1),
		index: make(map[string]FileID),
	}
}

// Add stores content under path and returns a fresh FileID.
// Re-adding a path creates a new version; the old one stays addressable.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	if len(content) >= math.MaxUint32 {
		panic(fmt.Errorf("source %q is too large", path))
	}
	n, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(n)
	p := normalizePath(path)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    p,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	fileSet.index[p] = id
	return id
}

// Load reads path from disk, strips a BOM and folds CRLF before Add.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path comes from the command line
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)
	var flags FileFlags
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fileSet.Add(path, content, flags), nil
}

// AddVirtual adds an in-memory buffer (REPL line, test input).
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

func (fileSet *FileSet) Get(id FileID) *File {
	return &fileSet.files[id]
}

func (fileSet *FileSet) Len() int {
	return len(fileSet.files)
}

// GetLatest returns the newest version registered for path.
func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fileSet.index[normalizePath(path)]
	return id, ok
}

// Resolve converts both ends of span into line/column positions.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := &fileSet.files[span.File]
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// LineCount is the number of lines, a trailing newline opens one more empty line.
func (f *File) LineCount() uint32 {
	return uint32(len(f.LineIdx)) + 1 // #nosec G115
}

// Line returns the text of line n (1-based) without its newline.
// Out-of-range lines yield "".
func (f *File) Line(n uint32) string {
	if n == 0 || n > f.LineCount() {
		return ""
	}
	start := f.LineStart(n)
	end := uint32(len(f.Content)) // #nosec G115
	if int(n-1) < len(f.LineIdx) {
		end = f.LineIdx[n-1]
	}
	return string(f.Content[start:end])
}

// LineStart returns the offset of the first byte of line n.
func (f *File) LineStart(n uint32) uint32 {
	if n <= 1 {
		return 0
	}
	return f.LineIdx[n-2] + 1
}

// EOF is the empty span at the end of the buffer.
func (f *File) EOF() Span {
	end := uint32(len(f.Content)) // #nosec G115
	return Span{File: f.ID, Start: end, End: end}
}
