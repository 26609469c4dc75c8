package grammar

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Form is the syntactic shape an attribute value was written in.
type Form int

const (
	// Quoted is a quoted string.
	Quoted Form = iota
	// Bare is an identifier such as `EUR` or `true`.
	Bare
	// Numeric is a plain number.
	Numeric
	// Amount is a number followed by a currency identifier.
	Amount
	// List is a bracketed list of quoted strings.
	List
)

// Attribute is a `name value` item.
type Attribute struct {
	Name  string
	Form  Form
	Value cty.Value
	Range hcl.Range
}

// Pair is a `"key" "value"` item.
type Pair struct {
	Key   string
	Value string
	Range hcl.Range
}

// Block is a `type ["label"] { ... }` item.
type Block struct {
	Type      string
	Labels    []string
	Body      *Body
	TypeRange hcl.Range
}

// Body holds the items of one block, each kind in source order.
type Body struct {
	Attributes []*Attribute
	Blocks     []*Block
	Pairs      []Pair
}

// FirstBlock returns the first direct child block of the given type that has
// exactly the given number of labels.
func (b *Body) FirstBlock(typ string, labels int) *Block {
	for _, blk := range b.Blocks {
		if blk.Type == typ && len(blk.Labels) == labels {
			return blk
		}
	}
	return nil
}
