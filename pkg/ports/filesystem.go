package ports

// FileSystem abstracts the file operations used to persist extracted frames.
type FileSystem interface {
	// WriteFile writes data to a file, creating or truncating it.
	// The parent directory must already exist.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and all parent directories.
	// It succeeds if the directory already exists.
	MkdirAll(path string) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// CheckWritable returns an error unless files can be created in dir.
	CheckWritable(dir string) error
}
