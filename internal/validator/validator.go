// Package validator checks a built funding configuration against the
// structural and platform rules of the DSL. Validation never fails; it
// returns every violation it finds as a human readable message.
package validator

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/fundingdsl/internal/model"
)

// TideliftRegistries are the package registries a Tidelift username may
// start with.
var TideliftRegistries = []string{"npm", "pypi", "rubygems", "maven", "packagist", "nuget"}

const thanksDevPrefix = "u/gh/"

// Validate returns all rule violations in cfg, or nil when cfg is valid. A
// nil cfg is checked as an empty configuration.
func Validate(cfg *model.Configuration) []string {
	if cfg == nil {
		cfg = &model.Configuration{}
	}
	var errs []string

	if cfg.ProjectName == "" {
		errs = append(errs, "Project name is required")
	}
	if len(cfg.Beneficiaries) == 0 {
		errs = append(errs, "At least one beneficiary is required")
	}
	if len(cfg.Sources) == 0 {
		errs = append(errs, "At least one funding source is required")
	}

	for _, s := range cfg.Sources {
		errs = append(errs, validateSource(s)...)
	}

	tierNames := make([]string, len(cfg.Tiers))
	for i, t := range cfg.Tiers {
		tierNames[i] = t.Name
	}
	if hasDuplicates(tierNames) {
		errs = append(errs, "Funding tier names must be unique")
	}

	goalNames := make([]string, len(cfg.Goals))
	for i, g := range cfg.Goals {
		goalNames[i] = g.Name
	}
	if hasDuplicates(goalNames) {
		errs = append(errs, "Funding goal names must be unique")
	}

	return errs
}

// IsValid reports whether cfg has no violations.
func IsValid(cfg *model.Configuration) bool {
	return len(Validate(cfg)) == 0
}

func validateSource(s model.Source) []string {
	var errs []string
	if s.Username == "" {
		errs = append(errs, fmt.Sprintf("Username is required for %s", s.Platform))
	}

	switch s.Platform {
	case model.Custom:
		if s.CustomURL == "" {
			errs = append(errs, "Custom URL is required for custom platforms")
		}
	case model.Tidelift:
		registry, _, found := strings.Cut(s.Username, "/")
		if !found {
			errs = append(errs, "Tidelift username must be in format 'platform-name/package-name' (e.g., 'npm/package-name')")
		} else if !isTideliftRegistry(registry) {
			errs = append(errs, "Tidelift platform name must be one of: "+strings.Join(TideliftRegistries, ", "))
		}
	case model.ThanksDev:
		if !strings.HasPrefix(s.Username, thanksDevPrefix) {
			errs = append(errs, "Thanks.dev username must be in format 'u/gh/username'")
		}
	}
	return errs
}

func isTideliftRegistry(name string) bool {
	for _, r := range TideliftRegistries {
		if r == name {
			return true
		}
	}
	return false
}

func hasDuplicates(names []string) bool {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			return true
		}
		seen[n] = struct{}{}
	}
	return false
}
