package export

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/specialistvlad/fundingdsl/internal/ctxlog"
	"github.com/specialistvlad/fundingdsl/internal/model"
)

// Generator metadata stamped into every JSON export.
const (
	GeneratorName    = "funding-dsl-exporter"
	GeneratorVersion = "1.0"
)

// JSONExporter renders the full configuration as an indented JSON document.
// Absent optional values are written as null.
type JSONExporter struct {
	now   func() time.Time
	newID func() string
}

type jsonDocument struct {
	Project        jsonProject       `json:"project"`
	Beneficiaries  []jsonBeneficiary `json:"beneficiaries"`
	FundingSources []jsonSource      `json:"funding_sources"`
	Tiers          []jsonTier        `json:"tiers"`
	Goals          []jsonGoal        `json:"goals"`
	Metadata       jsonMetadata      `json:"metadata"`
}

type jsonProject struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Currency    string   `json:"currency"`
	MinAmount   *float64 `json:"min_amount"`
	MaxAmount   *float64 `json:"max_amount"`
}

type jsonBeneficiary struct {
	Name           string  `json:"name"`
	Email          *string `json:"email"`
	GitHubUsername *string `json:"github_username"`
	Website        *string `json:"website"`
	Description    *string `json:"description"`
}

type jsonSource struct {
	Platform    string          `json:"platform"`
	Username    string          `json:"username"`
	FundingType string          `json:"funding_type"`
	IsActive    bool            `json:"is_active"`
	CustomURL   *string         `json:"custom_url"`
	Config      orderedSettings `json:"config"`
}

type jsonAmount struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

type jsonTier struct {
	Name        string     `json:"name"`
	Amount      jsonAmount `json:"amount"`
	Description *string    `json:"description"`
	Benefits    []string   `json:"benefits"`
	MaxSponsors *int       `json:"max_sponsors"`
	IsActive    bool       `json:"is_active"`
}

type jsonGoal struct {
	Name               string     `json:"name"`
	TargetAmount       jsonAmount `json:"target_amount"`
	CurrentAmount      jsonAmount `json:"current_amount"`
	Description        *string    `json:"description"`
	Deadline           *string    `json:"deadline"`
	ProgressPercentage float64    `json:"progress_percentage"`
	IsReached          bool       `json:"is_reached"`
}

type jsonMetadata struct {
	GeneratedAt string `json:"generated_at"`
	Generator   string `json:"generator"`
	Version     string `json:"version"`
	ExportID    string `json:"export_id"`
}

// orderedSettings marshals a PlatformConfig as an object that keeps the
// declaration order of its keys.
type orderedSettings model.PlatformConfig

func (s orderedSettings) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, setting := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(setting.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(setting.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Export implements the Exporter interface.
func (e *JSONExporter) Export(ctx context.Context, w io.Writer, cfg *model.Configuration) error {
	now, newID := e.now, e.newID
	if now == nil {
		now = time.Now
	}

	doc := jsonDocument{
		Project: jsonProject{
			Name:        cfg.ProjectName,
			Description: optional(cfg.Description),
			Currency:    string(cfg.PreferredCurrency),
		},
		Beneficiaries:  []jsonBeneficiary{},
		FundingSources: []jsonSource{},
		Tiers:          []jsonTier{},
		Goals:          []jsonGoal{},
		Metadata: jsonMetadata{
			GeneratedAt: now().Format(time.RFC3339),
			Generator:   GeneratorName,
			Version:     GeneratorVersion,
		},
	}
	if newID != nil {
		doc.Metadata.ExportID = newID()
	}
	if cfg.MinAmount != nil {
		doc.Project.MinAmount = &cfg.MinAmount.Value
	}
	if cfg.MaxAmount != nil {
		doc.Project.MaxAmount = &cfg.MaxAmount.Value
	}

	for _, b := range cfg.Beneficiaries {
		doc.Beneficiaries = append(doc.Beneficiaries, jsonBeneficiary{
			Name:           b.Name,
			Email:          optional(b.Email),
			GitHubUsername: optional(b.GitHubUsername),
			Website:        optional(b.Website),
			Description:    optional(b.Description),
		})
	}
	for _, s := range cfg.Sources {
		doc.FundingSources = append(doc.FundingSources, jsonSource{
			Platform:    string(s.Platform),
			Username:    s.Username,
			FundingType: string(s.FundingType),
			IsActive:    s.IsActive,
			CustomURL:   optional(s.CustomURL),
			Config:      orderedSettings(s.Config),
		})
	}
	for _, t := range cfg.Tiers {
		jt := jsonTier{
			Name:        t.Name,
			Amount:      amountJSON(t.Amount),
			Description: optional(t.Description),
			Benefits:    append([]string{}, t.Benefits...),
			IsActive:    t.IsActive,
		}
		if t.MaxSponsors > 0 {
			n := t.MaxSponsors
			jt.MaxSponsors = &n
		}
		doc.Tiers = append(doc.Tiers, jt)
	}
	for _, g := range cfg.Goals {
		jg := jsonGoal{
			Name:               g.Name,
			TargetAmount:       amountJSON(g.TargetAmount),
			CurrentAmount:      amountJSON(g.CurrentAmount),
			Description:        optional(g.Description),
			ProgressPercentage: g.ProgressPercentage(),
			IsReached:          g.IsReached,
		}
		if g.Deadline != nil {
			d := g.Deadline.Format(model.DeadlineLayout)
			jg.Deadline = &d
		}
		doc.Goals = append(doc.Goals, jg)
	}

	ctxlog.FromContext(ctx).Debug("Rendering JSON export.", "export_id", doc.Metadata.ExportID)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func amountJSON(a model.Amount) jsonAmount {
	return jsonAmount{Value: a.Value, Currency: string(a.Currency)}
}
