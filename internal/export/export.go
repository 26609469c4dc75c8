package export

import (
	"context"
	"errors"
	"io"

	"github.com/specialistvlad/fundingdsl/internal/model"
)

// Built-in format names.
const (
	FormatGitHubYML = "github_yml"
	FormatJSON      = "json"
	FormatMarkdown  = "markdown"
	FormatCSV       = "csv"
	FormatDSL       = "dsl"
)

// ErrUnknownFormat is returned when a format name is not registered.
var ErrUnknownFormat = errors.New("unknown export format")

// Exporter writes one rendering of cfg to w.
type Exporter interface {
	Export(ctx context.Context, w io.Writer, cfg *model.Configuration) error
}

// Format describes a registered output format.
type Format struct {
	Name string
	// ContentType is the media type served by the HTTP API.
	ContentType string
	// Extension is the file extension used when writing one file per input.
	Extension string
	Exporter  Exporter
}
