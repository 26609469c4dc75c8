package export

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/fundingdsl/internal/model"
)

// DSLExporter writes the configuration back as canonical funding DSL text.
// Parsing the output yields a configuration equal to the input, except for
// values the DSL cannot express: inactive tiers, reached flags (recomputed on
// parse) and root amount limits in a currency other than the preferred one.
type DSLExporter struct{}

// Export implements the Exporter interface.
func (e *DSLExporter) Export(_ context.Context, w io.Writer, cfg *model.Configuration) error {
	d := &dslWriter{}
	d.block(0, "funding", cfg.ProjectName)
	d.quoted(1, "description", cfg.Description)
	d.line(1, "currency %s", cfg.PreferredCurrency)
	if cfg.MinAmount != nil {
		d.line(1, "min_amount %s", model.FormatNumber(cfg.MinAmount.Value))
	}
	if cfg.MaxAmount != nil {
		d.line(1, "max_amount %s", model.FormatNumber(cfg.MaxAmount.Value))
	}

	if len(cfg.Beneficiaries) > 0 {
		d.section("beneficiaries")
		for _, b := range cfg.Beneficiaries {
			d.block(2, "beneficiary", b.Name)
			d.quoted(3, "email", b.Email)
			d.quoted(3, "github", b.GitHubUsername)
			d.quoted(3, "website", b.Website)
			d.quoted(3, "description", b.Description)
			d.line(2, "}")
		}
		d.line(1, "}")
	}

	if len(cfg.Sources) > 0 {
		d.section("sources")
		for _, s := range cfg.Sources {
			d.block(2, string(s.Platform), s.Username)
			if s.FundingType != model.DefaultFundingType {
				d.line(3, "type %s", s.FundingType)
			}
			if !s.IsActive {
				d.line(3, "active false")
			}
			d.quoted(3, "url", s.CustomURL)
			if s.Config.Len() > 0 {
				d.line(3, "config {")
				for _, setting := range s.Config {
					d.line(4, "%s %s", d.quote(setting.Key), d.quote(setting.Value))
				}
				d.line(3, "}")
			}
			d.line(2, "}")
		}
		d.line(1, "}")
	}

	if len(cfg.Tiers) > 0 {
		d.section("tiers")
		for _, t := range cfg.Tiers {
			d.block(2, "tier", t.Name)
			d.line(3, "amount %s", t.Amount)
			d.quoted(3, "description", t.Description)
			if t.MaxSponsors > 0 {
				d.line(3, "max_sponsors %d", t.MaxSponsors)
			}
			if len(t.Benefits) > 0 {
				items := make([]string, len(t.Benefits))
				for i, b := range t.Benefits {
					items[i] = d.quote(b)
				}
				d.line(3, "benefits [%s]", strings.Join(items, ", "))
			}
			d.line(2, "}")
		}
		d.line(1, "}")
	}

	if len(cfg.Goals) > 0 {
		d.section("goals")
		for _, g := range cfg.Goals {
			d.block(2, "goal", g.Name)
			d.line(3, "target %s", g.TargetAmount)
			d.line(3, "current %s", g.CurrentAmount)
			d.quoted(3, "description", g.Description)
			if g.Deadline != nil {
				d.quoted(3, "deadline", g.Deadline.Format(model.DeadlineLayout))
			}
			d.line(2, "}")
		}
		d.line(1, "}")
	}
	d.line(0, "}")

	if d.err != nil {
		return d.err
	}
	_, err := io.WriteString(w, d.sb.String())
	return err
}

const dslIndent = "    "

type dslWriter struct {
	sb  strings.Builder
	err error
}

func (d *dslWriter) line(depth int, format string, args ...any) {
	d.sb.WriteString(strings.Repeat(dslIndent, depth))
	fmt.Fprintf(&d.sb, format, args...)
	d.sb.WriteByte('\n')
}

func (d *dslWriter) section(name string) {
	d.sb.WriteByte('\n')
	d.line(1, "%s {", name)
}

func (d *dslWriter) block(depth int, keyword, label string) {
	d.line(depth, "%s %s {", keyword, d.quote(label))
}

// quoted writes `name "value"` unless value is empty.
func (d *dslWriter) quoted(depth int, name, value string) {
	if value == "" {
		return
	}
	d.line(depth, "%s %s", name, d.quote(value))
}

// quote wraps s in double quotes. The DSL has no escape sequences, so a value
// containing a quote or a line break cannot be written; the first such value
// is recorded as the writer's error.
func (d *dslWriter) quote(s string) string {
	if strings.ContainsAny(s, "\"\r\n") && d.err == nil {
		d.err = fmt.Errorf("value %q cannot be written as a DSL string", s)
	}
	return `"` + s + `"`
}
