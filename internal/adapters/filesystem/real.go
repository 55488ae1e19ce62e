// Package filesystem provides file system adapters.
package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/felixgeelhaar/devstack/internal/ports"
)

// RealFileSystem implements ports.FileSystem using actual file system operations.
type RealFileSystem struct{}

// NewRealFileSystem creates a new RealFileSystem.
func NewRealFileSystem() *RealFileSystem {
	return &RealFileSystem{}
}

// Exists checks if a file or directory exists. Dangling symlinks count as
// present, and so does a path that cannot be inspected: RemoveAll then
// reports the underlying error instead of the step passing silently.
func (fs *RealFileSystem) Exists(path string) bool {
	return exists(path)
}

// RemoveAll removes path recursively. Platform specific handling of
// read-only entries lives in removeAll.
func (fs *RealFileSystem) RemoveAll(path string) error {
	return removeAll(path)
}

// Ensure RealFileSystem implements ports.FileSystem.
var _ ports.FileSystem = (*RealFileSystem)(nil)

// DryRunFileSystem reports what would be removed without touching the disk.
// Existence checks are answered by the real file system.
type DryRunFileSystem struct {
	mu  sync.Mutex
	out io.Writer
}

// NewDryRunFileSystem creates a DryRunFileSystem writing to out.
func NewDryRunFileSystem(out io.Writer) *DryRunFileSystem {
	return &DryRunFileSystem{out: out}
}

// Exists checks the real file system.
func (fs *DryRunFileSystem) Exists(path string) bool {
	return exists(path)
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return !errors.Is(err, os.ErrNotExist)
}

// RemoveAll prints the removal instead of performing it.
func (fs *DryRunFileSystem) RemoveAll(path string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	_, _ = fmt.Fprintf(fs.out, "+ rm -rf %s\n", path)
	return nil
}

// Ensure DryRunFileSystem implements ports.FileSystem.
var _ ports.FileSystem = (*DryRunFileSystem)(nil)
