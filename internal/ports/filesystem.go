package ports

// FileSystem provides the file system operations the sequencer needs.
type FileSystem interface {
	// Exists reports whether a file or directory exists at path.
	Exists(path string) bool
	// RemoveAll removes path and everything below it.
	RemoveAll(path string) error
}
