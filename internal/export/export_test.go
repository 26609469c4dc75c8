package export

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/specialistvlad/fundingdsl/internal/model"
	"github.com/specialistvlad/fundingdsl/internal/parser"
	"github.com/specialistvlad/fundingdsl/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2025, time.March, 1, 12, 30, 0, 0, time.UTC)

// testRegistry returns the built-in formats with a fixed clock and id.
func testRegistry() *Registry {
	return Default(
		WithClock(func() time.Time { return fixedTime }),
		WithIDGenerator(func() string { return "test-export-id" }),
	)
}

// loadFixture parses one of the example fixtures.
func loadFixture(t *testing.T, name string) *model.Configuration {
	t.Helper()
	cfg, err := parser.NewTextual().ParseFile(context.Background(), testutil.FixturePath(t, name))
	require.NoError(t, err, "failed to parse fixture %s", name)
	return cfg
}

func render(t *testing.T, format string, cfg *model.Configuration) string {
	t.Helper()
	out, err := testRegistry().Render(context.Background(), format, cfg)
	require.NoError(t, err)
	return string(out)
}

func TestRegistry_Default(t *testing.T) {
	t.Parallel()

	r := testRegistry()

	assert.Equal(t, []string{FormatGitHubYML, FormatJSON, FormatMarkdown, FormatCSV, FormatDSL}, r.Names())
	f, err := r.Lookup(FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "application/json", f.ContentType)
	assert.Equal(t, ".json", f.Extension)
}

func TestRegistry_UnknownFormat(t *testing.T) {
	t.Parallel()

	// --- Act ---
	_, lookupErr := testRegistry().Lookup("xml")
	exportErr := testRegistry().Export(context.Background(), "xml", &bytes.Buffer{}, model.NewConfiguration("p"))

	// --- Assert ---
	assert.True(t, errors.Is(lookupErr, ErrUnknownFormat))
	assert.True(t, errors.Is(exportErr, ErrUnknownFormat))
	assert.Contains(t, lookupErr.Error(), `"xml"`)
}

func TestRegistry_RegisterDuplicatePanics(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(Format{Name: "x", Exporter: &CSVExporter{}})

	assert.Panics(t, func() {
		r.Register(Format{Name: "x", Exporter: &CSVExporter{}})
	})
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "nested", "dir", "FUNDING.yml")

	// --- Act ---
	err := WriteFile(path, []byte("github: octocat\n"))

	// --- Assert ---
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "github: octocat\n", string(data))
}
