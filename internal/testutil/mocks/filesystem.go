package mocks

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/felixgeelhaar/devstack/internal/ports"
)

// FileSystem is a thread-safe in-memory test double for ports.FileSystem.
type FileSystem struct {
	mu        sync.RWMutex
	paths     map[string]bool
	removeErr map[string]error
	removed   []string
}

// NewFileSystem creates a new FileSystem mock.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		paths:     make(map[string]bool),
		removeErr: make(map[string]error),
	}
}

// AddDir adds a directory to the mock filesystem.
func (fs *FileSystem) AddDir(paths ...string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	for _, p := range paths {
		fs.paths[filepath.Clean(p)] = true
	}
}

// SetRemoveError makes RemoveAll fail for path. The path is left in place.
func (fs *FileSystem) SetRemoveError(path string, err error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.removeErr[filepath.Clean(path)] = err
}

// Exists reports whether path or anything below it was added.
func (fs *FileSystem) Exists(path string) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	path = filepath.Clean(path)
	for p := range fs.paths {
		if p == path || strings.HasPrefix(p, path+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// RemoveAll removes path and everything below it.
func (fs *FileSystem) RemoveAll(path string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	path = filepath.Clean(path)
	fs.removed = append(fs.removed, path)

	if err, ok := fs.removeErr[path]; ok {
		return err
	}
	for p := range fs.paths {
		if p == path || strings.HasPrefix(p, path+string(filepath.Separator)) {
			delete(fs.paths, p)
		}
	}
	return nil
}

// Removed returns every path passed to RemoveAll, in order.
func (fs *FileSystem) Removed() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	out := make([]string, len(fs.removed))
	copy(out, fs.removed)
	return out
}

// Ensure FileSystem implements ports.FileSystem.
var _ ports.FileSystem = (*FileSystem)(nil)
