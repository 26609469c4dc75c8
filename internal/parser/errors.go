package parser

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/fundingdsl/internal/config"
)

// ErrNoFundingBlock is matched with errors.Is when the source has no
// `funding "<name>" { ... }` block.
var ErrNoFundingBlock = config.ErrNoFundingBlock

// ErrInvalidUTF8 is the cause of a ParseError for files that are not valid
// UTF-8 text.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// ParseError reports a failed parse of one source.
type ParseError struct {
	// Source is the file path, or a placeholder name for in-memory input.
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
