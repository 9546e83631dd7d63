package ports

// FileSystem abstracts the file operations used by the batch.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, replacing any existing content.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Exists reports whether a file or directory exists.
	Exists(path string) (bool, error)
}
