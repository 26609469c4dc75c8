package scanner

import (
	"context"
	"regexp"

	"github.com/specialistvlad/fundingdsl/internal/config"
	"github.com/specialistvlad/fundingdsl/internal/ctxlog"
	"github.com/specialistvlad/fundingdsl/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the scanner implementation of the config.Loader interface. It
// holds no state and is safe for concurrent use.
type Loader struct{}

// NewLoader creates a new scanner loader.
func NewLoader() *Loader {
	return &Loader{}
}

var (
	fundingMatcher = Labeled(schema.FundingKeyword)

	sectionMatchers = map[string]Matcher{
		schema.BeneficiariesSection: Section(schema.BeneficiariesSection),
		schema.SourcesSection:       Section(schema.SourcesSection),
		schema.TiersSection:         Section(schema.TiersSection),
		schema.GoalsSection:         Section(schema.GoalsSection),
	}

	beneficiaryMatcher = Labeled(schema.Beneficiary.Type)
	sourceMatcher      = AnyLabeled()
	tierMatcher        = Labeled(schema.Tier.Type)
	goalMatcher        = Labeled(schema.Goal.Type)
)

// Load scans src and returns the intermediate document for its first
// `funding` block.
func (l *Loader) Load(ctx context.Context, filename string, src []byte) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Scanner loader started.", "filename", filename, "bytes", len(src))

	text := StripComments(string(src))

	funding, ok := fundingMatcher.Find(text, 0)
	if !ok {
		return nil, config.ErrNoFundingBlock
	}

	doc := config.NewDocument(funding.Label)
	extractAttributes(Mask(funding.Body), schema.Funding, doc.Attributes)

	hidden := HideStrings(funding.Body)
	doc.Beneficiaries = entries(funding.Body, hidden, schema.BeneficiariesSection, beneficiaryMatcher, schema.Beneficiary)
	doc.Sources = entries(funding.Body, hidden, schema.SourcesSection, sourceMatcher, schema.Source)
	doc.Tiers = entries(funding.Body, hidden, schema.TiersSection, tierMatcher, schema.Tier)
	doc.Goals = entries(funding.Body, hidden, schema.GoalsSection, goalMatcher, schema.Goal)

	logger.Debug("Scanner loader finished.",
		"project", doc.ProjectName,
		"beneficiaries", len(doc.Beneficiaries),
		"sources", len(doc.Sources),
		"tiers", len(doc.Tiers),
		"goals", len(doc.Goals),
	)
	return doc, nil
}

// entries extracts every labeled block inside the named section of body.
func entries(body, hidden, section string, m Matcher, block schema.Block) []*config.Entry {
	sec, ok := sectionMatchers[section].find(body, hidden, 0)
	if !ok {
		return nil
	}

	var out []*config.Entry
	for _, b := range m.All(sec.Body) {
		e := config.NewEntry(b.Keyword, b.Label)
		extractAttributes(Mask(b.Body), block, e.Attributes)
		if block.Pairs {
			for _, p := range Pairs(b.Body) {
				e.Pairs = append(e.Pairs, config.Pair{Key: p[0], Value: p[1]})
			}
		}
		out = append(out, e)
	}
	return out
}

// extractAttributes runs the extractor matching each schema attribute over
// the own-level text and stores what it finds.
func extractAttributes(own string, block schema.Block, attrs config.Attributes) {
	ownView := newView(own)
	for _, a := range block.Attributes {
		if v, ok := extract(ownView, a); ok {
			attrs.SetFirst(a.Name, v)
		}
	}
}

func extract(own view, a schema.Attribute) (cty.Value, bool) {
	switch a.Kind {
	case schema.String:
		if s, ok := own.quoted(a.Name); ok {
			return cty.StringVal(s), true
		}
	case schema.Keyword:
		if s, ok := own.keyword(a.Name); ok {
			return cty.StringVal(s), true
		}
	case schema.Number:
		if s, ok := own.number(a.Name); ok {
			return numberVal(s)
		}
	case schema.Bool:
		if b, ok := own.boolean(a.Name); ok {
			return cty.BoolVal(b), true
		}
	case schema.StringList:
		if items, ok := own.list(a.Name); ok {
			if len(items) == 0 {
				return cty.ListValEmpty(cty.String), true
			}
			vals := make([]cty.Value, len(items))
			for i, s := range items {
				vals[i] = cty.StringVal(s)
			}
			return cty.ListVal(vals), true
		}
	case schema.Amount:
		if num, cur, ok := own.amount(a.Name); ok {
			n, ok := numberVal(num)
			if !ok {
				return cty.NilVal, false
			}
			return cty.TupleVal([]cty.Value{n, cty.StringVal(cur)}), true
		}
	}
	return cty.NilVal, false
}

var plainNumber = regexp.MustCompile(`^\d+(?:\.\d+)?$`)

func numberVal(s string) (cty.Value, bool) {
	if !plainNumber.MatchString(s) {
		return cty.NilVal, false
	}
	v, err := cty.ParseNumberVal(s)
	if err != nil {
		return cty.NilVal, false
	}
	return v, true
}
