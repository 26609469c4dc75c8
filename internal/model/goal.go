// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import (
	"fmt"
	"time"
)

// DeadlineLayout is the date format used for goal deadlines.
const DeadlineLayout = "2006-01-02"

// Goal is a funding milestone.
type Goal struct {
	Name          string
	TargetAmount  Amount
	CurrentAmount Amount
	Description   string
	Deadline      *time.Time
	IsReached     bool
}

// ProgressPercentage returns current/target as a percentage capped at 100.
// A zero target yields 0.
func (g Goal) ProgressPercentage() float64 {
	if g.TargetAmount.Value == 0 {
		return 0
	}
	return min(g.CurrentAmount.Value/g.TargetAmount.Value*100, 100)
}

func (g Goal) String() string {
	return fmt.Sprintf("%s: %s/%s", g.Name, g.CurrentAmount, g.TargetAmount)
}
