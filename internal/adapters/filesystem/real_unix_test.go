//go:build !windows

package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealFileSystem_UnreadableParentIsNotAbsent(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	root := t.TempDir()
	locked := filepath.Join(root, "var")
	cache := filepath.Join(locked, "cache")
	require.NoError(t, os.MkdirAll(cache, 0o755))
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	fs := NewRealFileSystem()
	assert.True(t, fs.Exists(cache))
	assert.Error(t, fs.RemoveAll(cache))
}
