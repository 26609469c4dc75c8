// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import "fmt"

// Tier is a priced sponsorship level. MaxSponsors of zero means unlimited.
type Tier struct {
	Name        string
	Amount      Amount
	Description string
	Benefits    []string
	MaxSponsors int
	IsActive    bool
}

func (t Tier) String() string {
	return fmt.Sprintf("%s (%s)", t.Name, t.Amount)
}
