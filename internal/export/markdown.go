package export

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/fundingdsl/internal/model"
)

// platformLink is the label and profile URL prefix of a platform's page.
type platformLink struct {
	label string
	base  string
}

var platformLinks = map[model.Platform]platformLink{
	model.GitHubSponsors:  {"GitHub Sponsors", "https://github.com/sponsors/"},
	model.Patreon:         {"Patreon", "https://patreon.com/"},
	model.KoFi:            {"Ko-fi", "https://ko-fi.com/"},
	model.OpenCollective:  {"Open Collective", "https://opencollective.com/"},
	model.Liberapay:       {"Liberapay", "https://liberapay.com/"},
	model.Tidelift:        {"Tidelift", "https://tidelift.com/subscription/pkg/"},
	model.IssueHunt:       {"IssueHunt", "https://issuehunt.io/r/"},
	model.CommunityBridge: {"LFX Mentorship", "https://mentorship.lfx.linuxfoundation.org/project/"},
	model.Polar:           {"Polar", "https://polar.sh/"},
	model.ThanksDev:       {"thanks.dev", "https://thanks.dev/"},
	model.BuyMeACoffee:    {"Buy Me a Coffee", "https://buymeacoffee.com/"},
}

const progressCells = 10

// MarkdownExporter renders a human readable funding page.
type MarkdownExporter struct{}

// Export implements the Exporter interface.
func (e *MarkdownExporter) Export(_ context.Context, w io.Writer, cfg *model.Configuration) error {
	var md []string
	add := func(format string, args ...any) {
		md = append(md, fmt.Sprintf(format, args...))
	}

	add("# %s - Funding Information", cfg.ProjectName)
	add("")
	if cfg.Description != "" {
		add("%s", cfg.Description)
		add("")
	}

	if len(cfg.Beneficiaries) > 0 {
		add("## 👥 Beneficiaries")
		add("")
		for _, b := range cfg.Beneficiaries {
			add("### %s", b.Name)
			if b.Description != "" {
				add("%s", b.Description)
			}
			if b.GitHubUsername != "" {
				add("- **GitHub**: [@%s](https://github.com/%s)", b.GitHubUsername, b.GitHubUsername)
			}
			if b.Website != "" {
				add("- **Website**: [%s](%s)", b.Website, b.Website)
			}
			if b.Email != "" {
				add("- **Email**: %s", b.Email)
			}
			add("")
		}
	}

	if len(cfg.Sources) > 0 {
		add("## 💰 How to Support")
		add("")
		for _, s := range cfg.ActiveSources() {
			add("### %s", s.Platform.DisplayName())
			if link, ok := platformLinks[s.Platform]; ok {
				add("Support via [%s](%s%s)", link.label, link.base, s.Username)
			} else if s.CustomURL != "" {
				add("Support via [custom platform](%s)", s.CustomURL)
			}
			add("- **Type**: %s", s.FundingType.DisplayName())
			add("")
		}
	}

	if len(cfg.Tiers) > 0 {
		add("## 🎯 Sponsorship Tiers")
		add("")
		for _, t := range cfg.ActiveTiers() {
			add("### %s - %s", t.Name, t.Amount)
			if t.Description != "" {
				add("%s", t.Description)
			}
			if len(t.Benefits) > 0 {
				add("\n**Benefits:**")
				for _, b := range t.Benefits {
					add("- %s", b)
				}
			}
			if t.MaxSponsors > 0 {
				add("\n*Limited to %d sponsors*", t.MaxSponsors)
			}
			add("")
		}
	}

	if len(cfg.Goals) > 0 {
		add("## 📈 Funding Goals")
		add("")
		for _, g := range cfg.Goals {
			add("### %s", g.Name)
			if g.Description != "" {
				add("%s", g.Description)
			}
			progress := g.ProgressPercentage()
			add("\n**Progress**: %.1f%% `%s`", progress, ProgressBar(progress))
			add("**Target**: %s | **Current**: %s", g.TargetAmount, g.CurrentAmount)
			if g.Deadline != nil {
				add("**Deadline**: %s", g.Deadline.Format(model.DeadlineLayout))
			}
			add("")
		}
	}

	_, err := io.WriteString(w, strings.Join(md, "\n"))
	return err
}

// ProgressBar draws a ten cell bar with one filled cell per full 10%.
func ProgressBar(percentage float64) string {
	filled := int(percentage / 10)
	filled = max(0, min(filled, progressCells))
	return strings.Repeat("█", filled) + strings.Repeat("░", progressCells-filled)
}
