package builder

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/specialistvlad/fundingdsl/internal/config"
	"github.com/specialistvlad/fundingdsl/internal/ctxlog"
	"github.com/specialistvlad/fundingdsl/internal/model"
)

// DefaultBuilder implements Builder with its own coercion tables.
type DefaultBuilder struct {
	platforms    map[string]model.Platform
	fundingTypes map[string]model.FundingType
	currencies   map[string]model.Currency
}

// New creates a builder with freshly populated lookup tables.
func New() Builder {
	b := &DefaultBuilder{
		platforms:    make(map[string]model.Platform),
		fundingTypes: make(map[string]model.FundingType),
		currencies:   make(map[string]model.Currency),
	}
	for _, p := range model.Platforms() {
		b.platforms[string(p)] = p
	}
	for _, t := range []model.FundingType{model.OneTime, model.Recurring, model.Both} {
		b.fundingTypes[string(t)] = t
	}
	for _, c := range model.Currencies() {
		b.currencies[string(c)] = c
	}
	return b
}

var errNilDocument = errors.New("builder: nil document")

// Build implements the Builder interface.
func (b *DefaultBuilder) Build(ctx context.Context, doc *config.Document) (*model.Configuration, error) {
	if doc == nil {
		return nil, errNilDocument
	}
	logger := ctxlog.FromContext(ctx)

	cfg := model.NewConfiguration(doc.ProjectName)
	if s, ok := stringAttr(doc.Attributes, "description"); ok {
		cfg.Description = s
	}
	if s, ok := stringAttr(doc.Attributes, "currency"); ok {
		cfg.PreferredCurrency = b.currency(s)
	}
	// A zero limit means no limit.
	if v, ok := numberAttr(doc.Attributes, "min_amount"); ok && v != 0 {
		a := model.NewAmount(v, cfg.PreferredCurrency)
		cfg.MinAmount = &a
	}
	if v, ok := numberAttr(doc.Attributes, "max_amount"); ok && v != 0 {
		a := model.NewAmount(v, cfg.PreferredCurrency)
		cfg.MaxAmount = &a
	}

	for _, e := range doc.Beneficiaries {
		cfg.AddBeneficiary(b.beneficiary(e))
	}
	for _, e := range doc.Sources {
		cfg.AddSource(b.source(e))
	}
	for _, e := range doc.Tiers {
		cfg.AddTier(b.tier(e, cfg.PreferredCurrency))
	}
	for _, e := range doc.Goals {
		cfg.AddGoal(b.goal(ctx, e, cfg.PreferredCurrency))
	}

	logger.Debug("Configuration built.",
		"project", cfg.ProjectName,
		"currency", cfg.PreferredCurrency,
		"beneficiaries", len(cfg.Beneficiaries),
		"sources", len(cfg.Sources),
		"tiers", len(cfg.Tiers),
		"goals", len(cfg.Goals),
	)
	return cfg, nil
}

func (b *DefaultBuilder) beneficiary(e *config.Entry) model.Beneficiary {
	ben := model.Beneficiary{Name: e.Label}
	ben.Email, _ = stringAttr(e.Attributes, "email")
	ben.GitHubUsername, _ = stringAttr(e.Attributes, "github")
	ben.Website, _ = stringAttr(e.Attributes, "website")
	ben.Description, _ = stringAttr(e.Attributes, "description")
	return ben
}

func (b *DefaultBuilder) source(e *config.Entry) model.Source {
	src := model.NewSource(b.platform(e.Keyword), e.Label)
	if s, ok := stringAttr(e.Attributes, "type"); ok {
		src.FundingType = b.fundingType(s)
	}
	if v, ok := boolAttr(e.Attributes, "active"); ok {
		src.IsActive = v
	}
	src.CustomURL, _ = stringAttr(e.Attributes, "url")
	for _, p := range e.Pairs {
		src.Config.Set(p.Key, p.Value)
	}
	return src
}

func (b *DefaultBuilder) tier(e *config.Entry, preferred model.Currency) model.Tier {
	t := model.Tier{
		Name:     e.Label,
		Amount:   b.amount(e.Attributes, "amount", preferred),
		Benefits: []string{},
		IsActive: true,
	}
	t.Description, _ = stringAttr(e.Attributes, "description")
	if list, ok := stringListAttr(e.Attributes, "benefits"); ok {
		t.Benefits = list
	}
	if v, ok := numberAttr(e.Attributes, "max_sponsors"); ok && v >= 1 && v <= math.MaxInt32 {
		t.MaxSponsors = int(v)
	}
	return t
}

func (b *DefaultBuilder) goal(ctx context.Context, e *config.Entry, preferred model.Currency) model.Goal {
	g := model.Goal{
		Name:          e.Label,
		TargetAmount:  b.amount(e.Attributes, "target", preferred),
		CurrentAmount: b.amount(e.Attributes, "current", preferred),
	}
	g.Description, _ = stringAttr(e.Attributes, "description")
	if s, ok := stringAttr(e.Attributes, "deadline"); ok {
		if d, ok := parseDeadline(s); ok {
			g.Deadline = &d
		} else {
			ctxlog.FromContext(ctx).Debug("Ignoring malformed goal deadline.", "goal", g.Name, "deadline", s)
		}
	}
	g.IsReached = g.TargetAmount.Value > 0 && g.CurrentAmount.Value >= g.TargetAmount.Value
	return g
}

// amount reads an amount attribute. A missing one is zero in the preferred
// currency.
func (b *DefaultBuilder) amount(attrs config.Attributes, name string, preferred model.Currency) model.Amount {
	v, cur, ok := amountAttr(attrs, name)
	if !ok {
		return model.NewAmount(0, preferred)
	}
	return model.NewAmount(v, b.currency(cur))
}

func (b *DefaultBuilder) platform(s string) model.Platform {
	if p, ok := b.platforms[s]; ok {
		return p
	}
	return model.Custom
}

func (b *DefaultBuilder) fundingType(s string) model.FundingType {
	if t, ok := b.fundingTypes[s]; ok {
		return t
	}
	return model.DefaultFundingType
}

func (b *DefaultBuilder) currency(s string) model.Currency {
	if c, ok := b.currencies[s]; ok {
		return c
	}
	return model.DefaultCurrency
}

func parseDeadline(s string) (time.Time, bool) {
	d, err := time.Parse(model.DeadlineLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
