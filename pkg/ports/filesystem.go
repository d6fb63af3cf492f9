package ports

// WalkFunc is called by FileSystem.Walk for each visited entry.
// Returning an error stops the walk.
type WalkFunc func(path string, isDir bool) error

// FileSystem abstracts file system operations.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it if necessary.
	WriteFile(path string, data []byte) error

	// AppendLine appends a newline-terminated line to a file,
	// creating the file if it does not exist.
	AppendLine(path string, line string) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// IsDir reports whether the path exists and is a directory.
	IsDir(path string) (bool, error)

	// Walk visits every entry under root in lexical order.
	Walk(root string, fn WalkFunc) error

	// Remove deletes a file or empty directory.
	Remove(path string) error
}
