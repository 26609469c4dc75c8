package grammar

import (
	"github.com/specialistvlad/fundingdsl/internal/config"
	"github.com/specialistvlad/fundingdsl/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translate maps a `funding "<name>" { ... }` block onto a config.Document.
// Unknown items and attributes written in the wrong form are ignored.
func translate(root *Block) *config.Document {
	doc := config.NewDocument(root.Labels[0])
	applyAttributes(root.Body, schema.Funding, doc.Attributes)

	doc.Beneficiaries = entries(root.Body, schema.BeneficiariesSection, schema.Beneficiary)
	doc.Sources = entries(root.Body, schema.SourcesSection, schema.Source)
	doc.Tiers = entries(root.Body, schema.TiersSection, schema.Tier)
	doc.Goals = entries(root.Body, schema.GoalsSection, schema.Goal)
	return doc
}

// entries collects the labeled blocks of the first section of that name.
// A schema block without a Type accepts any keyword.
func entries(body *Body, section string, block schema.Block) []*config.Entry {
	sec := body.FirstBlock(section, 0)
	if sec == nil {
		return nil
	}

	var out []*config.Entry
	for _, b := range sec.Body.Blocks {
		if len(b.Labels) != 1 || (block.Type != "" && b.Type != block.Type) {
			continue
		}
		e := config.NewEntry(b.Type, b.Labels[0])
		applyAttributes(b.Body, block, e.Attributes)
		if block.Pairs {
			if cfg := b.Body.FirstBlock(schema.ConfigBlock, 0); cfg != nil {
				for _, p := range cfg.Body.Pairs {
					e.Pairs = append(e.Pairs, config.Pair{Key: p.Key, Value: p.Value})
				}
			}
		}
		out = append(out, e)
	}
	return out
}

func applyAttributes(body *Body, block schema.Block, attrs config.Attributes) {
	for _, a := range body.Attributes {
		def, ok := block.Attribute(a.Name)
		if !ok {
			continue
		}
		if v, ok := coerce(a, def.Kind); ok {
			attrs.SetFirst(a.Name, v)
		}
	}
}

// coerce returns the attribute value in the shape kind expects.
func coerce(a *Attribute, kind schema.Kind) (cty.Value, bool) {
	switch kind {
	case schema.String:
		return a.Value, a.Form == Quoted
	case schema.Keyword:
		return a.Value, a.Form == Bare
	case schema.Number:
		switch a.Form {
		case Numeric:
			return a.Value, true
		case Amount:
			// `max_sponsors 10 SEATS` still carries a number.
			return a.Value.Index(cty.NumberIntVal(0)), true
		}
	case schema.Bool:
		if a.Form != Bare {
			return cty.NilVal, false
		}
		v, err := convert.Convert(a.Value, cty.Bool)
		if err != nil {
			return cty.NilVal, false
		}
		return v, true
	case schema.StringList:
		return a.Value, a.Form == List
	case schema.Amount:
		return a.Value, a.Form == Amount
	}
	return cty.NilVal, false
}
