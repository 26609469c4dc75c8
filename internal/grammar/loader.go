package grammar

import (
	"context"

	"github.com/specialistvlad/fundingdsl/internal/config"
	"github.com/specialistvlad/fundingdsl/internal/ctxlog"
	"github.com/specialistvlad/fundingdsl/internal/schema"
)

// Loader is the grammar implementation of the config.Loader interface. Each
// call builds its own token stream and parser state, so a Loader is safe for
// concurrent use.
type Loader struct{}

// NewLoader creates a new grammar loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses src and returns the intermediate document for its first
// `funding` block. Syntax errors are returned as hcl.Diagnostics.
func (l *Loader) Load(ctx context.Context, filename string, src []byte) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Grammar loader started.", "filename", filename, "bytes", len(src))

	body, diags := Parse(src, filename)
	if diags.HasErrors() {
		logger.Debug("Grammar loader found syntax errors.", "filename", filename, "count", len(diags))
		return nil, diags
	}

	root := body.FirstBlock(schema.FundingKeyword, 1)
	if root == nil {
		return nil, config.ErrNoFundingBlock
	}

	doc := translate(root)
	logger.Debug("Grammar loader finished.",
		"project", doc.ProjectName,
		"beneficiaries", len(doc.Beneficiaries),
		"sources", len(doc.Sources),
		"tiers", len(doc.Tiers),
		"goals", len(doc.Goals),
	)
	return doc, nil
}
