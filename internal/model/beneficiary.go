// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

// Beneficiary is a person or organization designated to receive funds.
// Empty optional fields mean "not provided".
type Beneficiary struct {
	Name           string
	Email          string
	GitHubUsername string
	Website        string
	Description    string
}

func (b Beneficiary) String() string {
	return b.Name
}
