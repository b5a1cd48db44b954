package types

import "io/fs"

// FS abstracts the filesystem operations the core needs. Production code uses
// the OS implementation in pkg/filesystem; tests may substitute their own.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error

	// Lstat must not follow symlinks; path safety depends on it.
	Lstat(name string) (fs.FileInfo, error)
}
