package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	for _, name := range []string{
		"a.funding",
		"b.dsl",
		"notes.txt",
		"nested/deeper/c.funding",
		"nested/d.funding.bak",
	} {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	}

	// --- Act ---
	files, err := FindFilesByExtension(root, DSLExtensions...)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.funding"),
		filepath.Join(root, "b.dsl"),
		filepath.Join(root, "nested", "deeper", "c.funding"),
	}, files)
}

func TestFindFilesByExtension_Errors(t *testing.T) {
	t.Parallel()

	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "missing"), ".dsl")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	assert.Panics(t, func() { _, _ = FindFilesByExtension(t.TempDir()) })
}
