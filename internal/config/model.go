package config

import (
	"errors"

	"github.com/zclconf/go-cty/cty"
)

// Document is the engine-neutral representation of one `funding` block.
type Document struct {
	ProjectName   string
	Attributes    Attributes
	Beneficiaries []*Entry
	Sources       []*Entry
	Tiers         []*Entry
	Goals         []*Entry
}

// NewDocument returns an empty document for the given project.
func NewDocument(projectName string) *Document {
	return &Document{
		ProjectName: projectName,
		Attributes:  make(Attributes),
	}
}

// Entry is one labeled block inside a section, e.g. `tier "Basic" { ... }`.
type Entry struct {
	// Keyword is the word that opened the block. For sources it is the
	// platform token as written.
	Keyword    string
	Label      string
	Attributes Attributes
	// Pairs holds the `config { "k" "v" }` entries in source order,
	// duplicates included.
	Pairs []Pair
}

// NewEntry returns an entry with an initialized attribute map.
func NewEntry(keyword, label string) *Entry {
	return &Entry{
		Keyword:    keyword,
		Label:      label,
		Attributes: make(Attributes),
	}
}

// Pair is a single key/value line from a `config` block.
type Pair struct {
	Key   string
	Value string
}

// Attributes maps attribute names to their values.
type Attributes map[string]cty.Value

// SetFirst stores v under name unless a value is already present, so the
// first occurrence of a repeated property wins.
func (a Attributes) SetFirst(name string, v cty.Value) bool {
	if _, exists := a[name]; exists {
		return false
	}
	a[name] = v
	return true
}

// Get returns the value for name, or cty.NilVal.
func (a Attributes) Get(name string) (cty.Value, bool) {
	v, ok := a[name]
	return v, ok
}

// ErrNoFundingBlock is returned by a Loader when the source has no
// `funding "<name>" { ... }` block.
var ErrNoFundingBlock = errors.New("no funding block found")
