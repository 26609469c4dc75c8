package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/specialistvlad/fundingdsl/internal/model"
)

// Registry holds the available formats in registration order.
type Registry struct {
	formats map[string]Format
	order   []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]Format),
	}
}

type options struct {
	now   func() time.Time
	newID func() string
}

// Option customizes the built-in exporters.
type Option func(*options)

// WithClock sets the time source for generated timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator sets the generator for export identifiers.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

// Default returns a registry with every built-in format.
func Default(opts ...Option) *Registry {
	o := options{now: time.Now, newID: uuid.NewString}
	for _, opt := range opts {
		opt(&o)
	}

	r := NewRegistry()
	r.Register(Format{Name: FormatGitHubYML, ContentType: "application/yaml", Extension: ".yml", Exporter: &GitHubExporter{}})
	r.Register(Format{Name: FormatJSON, ContentType: "application/json", Extension: ".json", Exporter: &JSONExporter{now: o.now, newID: o.newID}})
	r.Register(Format{Name: FormatMarkdown, ContentType: "text/markdown; charset=utf-8", Extension: ".md", Exporter: &MarkdownExporter{}})
	r.Register(Format{Name: FormatCSV, ContentType: "text/csv; charset=utf-8", Extension: ".csv", Exporter: &CSVExporter{}})
	r.Register(Format{Name: FormatDSL, ContentType: "text/plain; charset=utf-8", Extension: ".funding", Exporter: &DSLExporter{}})
	return r
}

// Register adds a format. Registering the same name twice is a programming
// error and panics.
func (r *Registry) Register(f Format) {
	if _, exists := r.formats[f.Name]; exists {
		panic(fmt.Sprintf("export format with name '%s' already registered", f.Name))
	}
	slog.Debug("Registering export format.", "name", f.Name)
	r.formats[f.Name] = f
	r.order = append(r.order, f.Name)
}

// Lookup returns the named format or an error wrapping ErrUnknownFormat.
func (r *Registry) Lookup(name string) (Format, error) {
	f, ok := r.formats[name]
	if !ok {
		return Format{}, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownFormat, name, r.order)
	}
	return f, nil
}

// Names lists the registered format names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Export writes cfg to w in the named format.
func (r *Registry) Export(ctx context.Context, name string, w io.Writer, cfg *model.Configuration) error {
	f, err := r.Lookup(name)
	if err != nil {
		return err
	}
	if err := f.Exporter.Export(ctx, w, cfg); err != nil {
		return fmt.Errorf("export %s: %w", name, err)
	}
	return nil
}

// Render returns cfg in the named format.
func (r *Registry) Render(ctx context.Context, name string, cfg *model.Configuration) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Export(ctx, name, &buf, cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
