package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// Fixture file names under the repository's examples directory.
const (
	MinimalFixture       = "minimal_funding.dsl"
	ComprehensiveFixture = "example_funding.dsl"
)

// ExamplesDir returns the absolute path of the repository's examples
// directory, independent of the package the test runs in.
func ExamplesDir(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok, "could not determine the testutil source location")
	return filepath.Join(filepath.Dir(file), "..", "..", "examples")
}

// FixturePath returns the path of the named example fixture.
func FixturePath(t testing.TB, name string) string {
	t.Helper()
	return filepath.Join(ExamplesDir(t), name)
}

// ReadFixture returns the contents of the named example fixture.
func ReadFixture(t testing.TB, name string) string {
	t.Helper()
	data, err := os.ReadFile(FixturePath(t, name))
	require.NoError(t, err, "failed to read fixture %s", name)
	return string(data)
}

// WriteFiles writes files into a fresh temporary directory and returns it.
// Keys are slash separated paths relative to that directory; parent
// directories are created as needed.
func WriteFiles(t testing.TB, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}
