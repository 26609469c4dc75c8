// Package schema declares which attributes each block of the funding DSL
// accepts and what kind of value they carry. Both DSL engines read these
// definitions, so a property recognized by one is recognized by the other.
package schema

import (
	"github.com/zclconf/go-cty/cty"
)

// Kind is the syntactic shape of an attribute value.
type Kind int

const (
	// String is a quoted string: `description "text"`.
	String Kind = iota
	// Keyword is a bare identifier: `currency EUR`, `type recurring`.
	Keyword
	// Number is a bare number: `min_amount 5.0`.
	Number
	// Bool is `true` or `false`: `active false`.
	Bool
	// StringList is a bracketed list of quoted strings: `benefits ["a", "b"]`.
	StringList
	// Amount is a number followed by a currency code on the same line:
	// `amount 10.0 USD`.
	Amount
)

var kindNames = map[Kind]string{
	String:     "string",
	Keyword:    "keyword",
	Number:     "number",
	Bool:       "bool",
	StringList: "list of strings",
	Amount:     "amount",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// AmountType is the cty type of an Amount attribute: the numeric value and
// the currency code.
var AmountType = cty.Tuple([]cty.Type{cty.Number, cty.String})

// Type returns the cty type values of this kind are stored as.
func (k Kind) Type() cty.Type {
	switch k {
	case Number:
		return cty.Number
	case Bool:
		return cty.Bool
	case StringList:
		return cty.List(cty.String)
	case Amount:
		return AmountType
	default:
		return cty.String
	}
}

// Attribute is a single named property of a block.
type Attribute struct {
	Name string
	Kind Kind
}

// Block describes one block kind.
type Block struct {
	// Type is the keyword that opens the block, e.g. "tier". Source entries
	// have no fixed keyword; the platform name takes its place.
	Type       string
	Attributes []Attribute
	// Pairs marks blocks that may carry a `config { "k" "v" }` sub-block.
	Pairs bool
}

// Attribute looks up an attribute by name.
func (b Block) Attribute(name string) (Attribute, bool) {
	for _, a := range b.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// Top level block and section keywords.
const (
	FundingKeyword       = "funding"
	BeneficiariesSection = "beneficiaries"
	SourcesSection       = "sources"
	TiersSection         = "tiers"
	GoalsSection         = "goals"
	ConfigBlock          = "config"
)

var (
	// Funding is the root `funding "<project>" { ... }` block.
	Funding = Block{
		Type: FundingKeyword,
		Attributes: []Attribute{
			{Name: "description", Kind: String},
			{Name: "currency", Kind: Keyword},
			{Name: "min_amount", Kind: Number},
			{Name: "max_amount", Kind: Number},
		},
	}

	// Beneficiary is `beneficiary "<name>" { ... }` inside `beneficiaries`.
	Beneficiary = Block{
		Type: "beneficiary",
		Attributes: []Attribute{
			{Name: "email", Kind: String},
			{Name: "github", Kind: String},
			{Name: "website", Kind: String},
			{Name: "description", Kind: String},
		},
	}

	// Source is `<platform> "<username>" { ... }` inside `sources`.
	Source = Block{
		Attributes: []Attribute{
			{Name: "type", Kind: Keyword},
			{Name: "active", Kind: Bool},
			{Name: "url", Kind: String},
		},
		Pairs: true,
	}

	// Tier is `tier "<name>" { ... }` inside `tiers`.
	Tier = Block{
		Type: "tier",
		Attributes: []Attribute{
			{Name: "amount", Kind: Amount},
			{Name: "description", Kind: String},
			{Name: "max_sponsors", Kind: Number},
			{Name: "benefits", Kind: StringList},
		},
	}

	// Goal is `goal "<name>" { ... }` inside `goals`.
	Goal = Block{
		Type: "goal",
		Attributes: []Attribute{
			{Name: "target", Kind: Amount},
			{Name: "current", Kind: Amount},
			{Name: "description", Kind: String},
			{Name: "deadline", Kind: String},
		},
	}
)
