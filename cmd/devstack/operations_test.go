package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/devstack/internal/domain/config"
	"github.com/felixgeelhaar/devstack/internal/testutil"
)

func TestOperationCommands_DryRun(t *testing.T) {
	tests := []struct {
		operation string
		contains  []string
	}{
		{
			operation: "setup",
			contains:  []string{"+ docker info", "+ docker-compose build --no-cache", "SETUP COMPLETE!"},
		},
		{
			operation: "fresh-start",
			contains:  []string{"+ docker-compose down -v --remove-orphans", "+ rm -rf", "FRESH START COMPLETE!"},
		},
		{
			operation: "restart",
			contains:  []string{"+ docker-compose exec -T backend php bin/console cache:clear", "Restart: 4 steps, 0 warnings"},
		},
		{
			operation: "cleanup",
			contains:  []string{"+ docker system prune -f", "CLEANUP COMPLETE!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.operation, func(t *testing.T) {
			dir := testutil.ProjectTree(t, "backend", "vendor", "var/cache", "var/log")

			out, err := executeCommand(t, tt.operation, "--dry-run", "--dir", dir)
			require.NoError(t, err)

			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			_, statErr := os.Stat(filepath.Join(dir, "backend", "vendor"))
			assert.NoError(t, statErr)
		})
	}
}

func TestOperationCommands_Quiet(t *testing.T) {
	dir := t.TempDir()

	out, err := executeCommand(t, "restart", "-n", "-q", "-C", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "+ docker-compose down")
	assert.Contains(t, out, "RESTART COMPLETE!")
	assert.NotContains(t, out, "Stopping containers...")
}

func TestOperationCommands_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := testutil.WriteFixtureToDir(t, dir, "devstack.yaml", "custom.yaml")

	out, err := executeCommand(t, "restart", "-n", "-C", dir, "--config", cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "+ docker compose exec -T app php bin/console cache:clear")
	assert.Contains(t, out, "http://localhost:9000")
}

func TestOperationCommands_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTempFile(t, dir, "devstack.yaml", "app_dir: /etc\n")

	_, err := executeCommand(t, "cleanup", "-n", "-C", dir)
	require.Error(t, err)
	assert.True(t, config.IsUserError(err, config.ErrCodeValidationFailed))
}

func TestOperationCommands_RejectArgs(t *testing.T) {
	_, err := executeCommand(t, "setup", "extra")
	assert.Error(t, err)
}

func TestOperationCommands_BadLogFormat(t *testing.T) {
	_, err := executeCommand(t, "restart", "-n", "-C", t.TempDir(), "--log-format", "xml")
	require.Error(t, err)
	assert.Contains(t, formatError(err), "--log-format text")
}
