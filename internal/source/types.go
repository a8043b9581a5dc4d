package source

type (
	// FileID identifies a source buffer within a FileSet.
	FileID uint32
	// FileFlags records how a buffer was obtained.
	FileFlags uint8
)

const (
	// FileVirtual marks buffers that did not come from disk (REPL, tests, stdin).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File is one source buffer plus its newline index.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of every '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a 1-based position; Col counts bytes.
type LineCol struct {
	Line uint32
	Col  uint32
}
