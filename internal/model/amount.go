// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines monetary amounts and the closed set of currencies the DSL
// understands.
package model

import (
	"strconv"
	"strings"
)

// Currency is an ISO 4217 code from the supported set.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	CAD Currency = "CAD"
	AUD Currency = "AUD"
)

// DefaultCurrency is used whenever a currency is omitted or unrecognized.
const DefaultCurrency = USD

// Currencies lists every supported currency in declaration order.
func Currencies() []Currency {
	return []Currency{USD, EUR, GBP, CAD, AUD}
}

// Amount is a monetary value in a given currency. Non-negative values are
// expected but not enforced.
type Amount struct {
	Value    float64
	Currency Currency
}

// NewAmount is a small convenience constructor.
func NewAmount(value float64, currency Currency) Amount {
	return Amount{Value: value, Currency: currency}
}

// String renders the amount as "<value> <currency>", e.g. "10.0 USD".
func (a Amount) String() string {
	return FormatNumber(a.Value) + " " + string(a.Currency)
}

// FormatNumber renders a float in its shortest form, always keeping at least
// one fractional digit so whole numbers read as "10.0".
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
