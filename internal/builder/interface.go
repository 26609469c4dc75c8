package builder

import (
	"context"

	"github.com/specialistvlad/fundingdsl/internal/config"
	"github.com/specialistvlad/fundingdsl/internal/model"
)

// Builder transforms an intermediate document into a funding configuration.
type Builder interface {
	// Build returns a new configuration for doc. It fails only when doc is
	// nil; every nested problem degrades to a default or an absent value.
	Build(ctx context.Context, doc *config.Document) (*model.Configuration, error)
}
