// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the aggregate root of the funding model.
package model

// Configuration is one project's full funding setup.
type Configuration struct {
	ProjectName       string
	Description       string
	Beneficiaries     []Beneficiary
	Sources           []Source
	Tiers             []Tier
	Goals             []Goal
	PreferredCurrency Currency
	MinAmount         *Amount
	MaxAmount         *Amount
}

// NewConfiguration returns an empty configuration in the default currency.
func NewConfiguration(projectName string) *Configuration {
	return &Configuration{
		ProjectName:       projectName,
		PreferredCurrency: DefaultCurrency,
	}
}

// AddBeneficiary appends b.
func (c *Configuration) AddBeneficiary(b Beneficiary) {
	c.Beneficiaries = append(c.Beneficiaries, b)
}

// AddSource appends s.
func (c *Configuration) AddSource(s Source) {
	c.Sources = append(c.Sources, s)
}

// AddTier appends t.
func (c *Configuration) AddTier(t Tier) {
	c.Tiers = append(c.Tiers, t)
}

// AddGoal appends g.
func (c *Configuration) AddGoal(g Goal) {
	c.Goals = append(c.Goals, g)
}

// ActiveSources returns the sources whose IsActive flag is set.
func (c *Configuration) ActiveSources() []Source {
	var out []Source
	for _, s := range c.Sources {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out
}

// ActiveTiers returns the tiers whose IsActive flag is set.
func (c *Configuration) ActiveTiers() []Tier {
	var out []Tier
	for _, t := range c.Tiers {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out
}

// UnreachedGoals returns the goals not yet marked as reached.
func (c *Configuration) UnreachedGoals() []Goal {
	var out []Goal
	for _, g := range c.Goals {
		if !g.IsReached {
			out = append(out, g)
		}
	}
	return out
}

func (c *Configuration) String() string {
	return "Funding Configuration for " + c.ProjectName
}
