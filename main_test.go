package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"CONTENT_DIR", "OUTPUT_DIR", "TEMPLATE_DIR", "PAGE_SIZE",
		"BASE_URL", "SITE_TITLE", "REQUIRE_CONTENT", "LOG_LEVEL",
	} {
		t.Setenv(name, "")
	}
}

func TestRun(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "content"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "content", "hello.md"),
		[]byte("---\ntitle: Hello\ndate: 2024-05-01\n---\nHi.\n"), 0o644))

	assert.Equal(t, 0, run(dir, []string{"-log-level", "error"}))
	assert.FileExists(t, filepath.Join(dir, "public", "index.html"))
	assert.FileExists(t, filepath.Join(dir, "public", "posts", "hello.html"))
}

func TestRunExitCodes(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	assert.Equal(t, 1, run(dir, []string{"-page-size", "0"}))
	assert.Equal(t, 2, run(dir, []string{"-require-content", "-log-level", "error"}))

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "content"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "content", "bad.md"),
		[]byte("---\ntitle: Bad\ndate: soon\n---\n"), 0o644))
	assert.Equal(t, 2, run(dir, []string{"-log-level", "error"}))
}
