// in: internal/filesystem/filesystem.go
package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// This allows a mock to tell the code what environment it's simulating.
type Platformer interface {
	Platform() string
}

// Filesystem is the abstraction internal/walker drives its traversal
// through, so tests can substitute an in-memory tree for the real one.
type Filesystem interface {
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	ReadFile(name string) ([]byte, error)
	Getwd() (string, error)
	Abs(path string) (string, error)
}

// DefaultFS implements the Filesystem interface using the standard `os` and `filepath` packages.
// It represents the real, underlying filesystem of the host operating system.
type DefaultFS struct{}

func (DefaultFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (DefaultFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (DefaultFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (DefaultFS) Getwd() (string, error) {
	return os.Getwd()
}

func (DefaultFS) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// Platform reports runtime.GOOS, satisfying Platformer for real enumeration
// runs. Matching code never branches on runtime.GOOS directly; instead it
// takes an explicit isWindowsHost bool, derived once here, so the same
// matching logic runs identically under a MockFilesystem in tests.
func (DefaultFS) Platform() string {
	return runtime.GOOS
}

// IsWindowsHost reports whether platform (as returned by Platformer.Platform)
// names a Windows-family host.
func IsWindowsHost(platform string) bool {
	return platform == "windows"
}
