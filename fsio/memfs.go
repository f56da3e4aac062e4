package fsio

import (
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

// MemFS is an in-memory FileSystem for tests. Files are registered with
// absolute slash-separated paths; parent directories materialize implicitly.
type MemFS struct {
	files map[string]*memFile
}

type memFile struct {
	content []byte
	modTime time.Time
}

// NewMemFS returns an empty in-memory filesystem.
func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string]*memFile)}
}

// WriteFile adds or replaces a file.
func (m *MemFS) WriteFile(filePath string, content []byte, modTime time.Time) {
	m.files[path.Clean(filePath)] = &memFile{content: content, modTime: modTime}
}

// Touch updates a file's modification time without changing content.
func (m *MemFS) Touch(filePath string, modTime time.Time) {
	if f, ok := m.files[path.Clean(filePath)]; ok {
		f.modTime = modTime
	}
}

// Remove deletes a file.
func (m *MemFS) Remove(filePath string) {
	delete(m.files, path.Clean(filePath))
}

func (m *MemFS) ReadFile(filePath string) ([]byte, error) {
	f, ok := m.files[path.Clean(filePath)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), f.content...), nil
}

func (m *MemFS) Stat(filePath string) (fs.FileInfo, error) {
	cleaned := path.Clean(filePath)
	if f, ok := m.files[cleaned]; ok {
		return memInfo{name: path.Base(cleaned), size: int64(len(f.content)), modTime: f.modTime}, nil
	}
	if m.isDir(cleaned) {
		return memInfo{name: path.Base(cleaned), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: filePath, Err: fs.ErrNotExist}
}

func (m *MemFS) ReadDir(dirPath string) ([]fs.DirEntry, error) {
	cleaned := path.Clean(dirPath)
	if !m.isDir(cleaned) {
		return nil, &fs.PathError{Op: "readdir", Path: dirPath, Err: fs.ErrNotExist}
	}

	seen := make(map[string]bool)
	var entries []fs.DirEntry
	prefix := cleaned
	if prefix != "/" {
		prefix += "/"
	}

	for filePath, f := range m.files {
		if !strings.HasPrefix(filePath, prefix) {
			continue
		}
		rest := strings.TrimPrefix(filePath, prefix)
		name, _, nested := strings.Cut(rest, "/")
		if seen[name] {
			continue
		}
		seen[name] = true
		if nested {
			entries = append(entries, memEntry{info: memInfo{name: name, dir: true}})
		} else {
			entries = append(entries, memEntry{info: memInfo{
				name: name, size: int64(len(f.content)), modTime: f.modTime,
			}})
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (m *MemFS) isDir(dirPath string) bool {
	if dirPath == "/" {
		return len(m.files) > 0
	}
	prefix := dirPath + "/"
	for filePath := range m.files {
		if strings.HasPrefix(filePath, prefix) {
			return true
		}
	}
	return false
}

type memInfo struct {
	name    string
	size    int64
	modTime time.Time
	dir     bool
}

func (i memInfo) Name() string { return i.name }
func (i memInfo) Size() int64  { return i.size }
func (i memInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (i memInfo) ModTime() time.Time { return i.modTime }
func (i memInfo) IsDir() bool        { return i.dir }
func (i memInfo) Sys() any           { return nil }

type memEntry struct {
	info memInfo
}

func (e memEntry) Name() string               { return e.info.name }
func (e memEntry) IsDir() bool                { return e.info.dir }
func (e memEntry) Type() fs.FileMode          { return e.info.Mode().Type() }
func (e memEntry) Info() (fs.FileInfo, error) { return e.info, nil }
