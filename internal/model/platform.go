// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the funding platforms and funding arrangement types.
// The string values double as the DSL keywords.
package model

import "strings"

// Platform identifies a funding service.
type Platform string

const (
	GitHubSponsors  Platform = "github_sponsors"
	Patreon         Platform = "patreon"
	OpenCollective  Platform = "open_collective"
	KoFi            Platform = "ko_fi"
	BuyMeACoffee    Platform = "buy_me_a_coffee"
	Liberapay       Platform = "liberapay"
	PayPal          Platform = "paypal"
	Tidelift        Platform = "tidelift"
	IssueHunt       Platform = "issuehunt"
	CommunityBridge Platform = "community_bridge"
	Polar           Platform = "polar"
	ThanksDev       Platform = "thanks_dev"
	Custom          Platform = "custom"
)

// Platforms lists every supported platform in declaration order.
func Platforms() []Platform {
	return []Platform{
		GitHubSponsors, Patreon, OpenCollective, KoFi, BuyMeACoffee, Liberapay,
		PayPal, Tidelift, IssueHunt, CommunityBridge, Polar, ThanksDev, Custom,
	}
}

// ManifestKey is the key GitHub's FUNDING.yml uses for the platform.
func (p Platform) ManifestKey() string {
	if p == GitHubSponsors {
		return "github"
	}
	return string(p)
}

// DisplayName turns the keyword into a title, e.g. "buy_me_a_coffee" becomes
// "Buy Me A Coffee".
func (p Platform) DisplayName() string {
	return titleWords(string(p))
}

// FundingType describes how a source accepts money.
type FundingType string

const (
	OneTime   FundingType = "one_time"
	Recurring FundingType = "recurring"
	Both      FundingType = "both"
)

// DefaultFundingType applies when a source omits `type`.
const DefaultFundingType = Both

// DisplayName turns the keyword into a title, e.g. "One Time".
func (t FundingType) DisplayName() string {
	return titleWords(string(t))
}

func titleWords(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
