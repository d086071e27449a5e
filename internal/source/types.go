package source

type (
	FileID uint32
	// FileFlags records how a file's bytes were changed on the way in.
	FileFlags uint8
)

const (
	// FileVirtual marks content that did not come from disk: stdin or tests.
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM is set when a leading UTF-8 BOM was stripped. The formatter
	// writes it back.
	FileHadBOM
	// FileNormalizedCRLF is set when \r\n pairs were folded into \n.
	FileNormalizedCRLF
)

// Has reports whether every bit of flag is set.
func (f FileFlags) Has(flag FileFlags) bool { return f&flag == flag }

// File is one source held by a FileSet. Content is already normalized;
// LineIdx holds the offset of every '\n' in it.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a 1-based position.
type LineCol struct {
	Line uint32
	Col  uint32
}
