package fsops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveFile(t *testing.T) {
	workDir := t.TempDir()

	filePath := filepath.Join(workDir, "codecov.yaml")
	require.NoError(t, os.WriteFile(filePath, []byte("coverage:\n"), 0o644))

	require.NoError(t, RemoveFile(filePath))
	assert.NoFileExists(t, filePath)

	// Second removal is a reported no-op.
	assert.ErrorIs(t, RemoveFile(filePath), ErrSourceMissing)
}

func TestRemoveDir(t *testing.T) {
	workDir := t.TempDir()

	dirPath := filepath.Join(workDir, "docs")
	require.NoError(t, os.MkdirAll(filepath.Join(dirPath, "api"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dirPath, "index.md"),
		[]byte("# Docs\n"), 0o644))

	require.NoError(t, RemoveDir(dirPath))
	assert.NoDirExists(t, dirPath)

	assert.ErrorIs(t, RemoveDir(dirPath), ErrSourceMissing)
}

func TestMoveFile(t *testing.T) {
	workDir := t.TempDir()

	src := filepath.Join(workDir, "LICENSE_MIT")
	dst := filepath.Join(workDir, "LICENSE")
	require.NoError(t, os.WriteFile(src, []byte("MIT License\n"), 0o644))

	require.NoError(t, Move(src, dst))
	assert.NoFileExists(t, src)
	assert.FileExists(t, dst)

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "MIT License\n", string(content))
}

func TestMoveMissingSource(t *testing.T) {
	workDir := t.TempDir()

	err := Move(filepath.Join(workDir, "LICENSE_BSD"), filepath.Join(workDir, "LICENSE"))
	assert.ErrorIs(t, err, ErrSourceMissing)
}

func TestMoveDestinationConflict(t *testing.T) {
	workDir := t.TempDir()

	src := filepath.Join(workDir, "LICENSE_MIT")
	dst := filepath.Join(workDir, "LICENSE")
	require.NoError(t, os.WriteFile(src, []byte("MIT License\n"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("occupied\n"), 0o644))

	assert.ErrorIs(t, Move(src, dst), ErrDestinationExists)

	// Both paths are left untouched.
	assert.FileExists(t, src)
	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "occupied\n", string(content))
}

func TestMoveCreatesParentDirs(t *testing.T) {
	workDir := t.TempDir()

	src := filepath.Join(workDir, "notebook.ipynb")
	dst := filepath.Join(workDir, "notebooks", "exploration", "notebook.ipynb")
	require.NoError(t, os.WriteFile(src, []byte("{}\n"), 0o644))

	require.NoError(t, Move(src, dst))
	assert.FileExists(t, dst)
}

func TestMoveDirectory(t *testing.T) {
	workDir := t.TempDir()

	src := filepath.Join(workDir, "include")
	dst := filepath.Join(workDir, "src", "include")
	require.NoError(t, os.MkdirAll(src, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "foo.py"), []byte("x = 1\n"), 0o644))

	require.NoError(t, Move(src, dst))
	assert.NoDirExists(t, src)
	assert.FileExists(t, filepath.Join(dst, "foo.py"))
}
