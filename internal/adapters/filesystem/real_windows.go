//go:build windows

package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
)

// removeAll clears the read-only attribute that package managers leave on
// vendored files before removing, which os.RemoveAll refuses on Windows.
func removeAll(path string) error {
	if err := os.RemoveAll(path); err == nil {
		return nil
	}
	_ = filepath.WalkDir(path, func(p string, _ fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // best effort, the final RemoveAll reports failures
		}
		_ = os.Chmod(p, 0o666)
		return nil
	})
	return os.RemoveAll(path)
}
