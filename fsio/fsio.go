// Package fsio abstracts the filesystem operations the analyzer needs:
// reading file content, statting for modification times, and listing
// directories. Swapping the implementation keeps analysis testable without
// touching the real disk.
package fsio

import (
	"io/fs"
	"os"
)

// FileSystem is the analyzer's only I/O dependency.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	Stat(path string) (fs.FileInfo, error)
	ReadDir(path string) ([]fs.DirEntry, error)
}

// Lstater is implemented by filesystems that can stat without following
// symlinks. Traversal uses it to honor the followSymlinks setting.
type Lstater interface {
	Lstat(path string) (fs.FileInfo, error)
}

// OS is the real-filesystem implementation.
type OS struct{}

// NewOS returns a FileSystem backed by the operating system.
func NewOS() OS {
	return OS{}
}

func (OS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (OS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (OS) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

// Lstat is used when symlinks must not be followed during traversal.
func (OS) Lstat(path string) (fs.FileInfo, error) {
	return os.Lstat(path)
}
