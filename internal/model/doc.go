// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the strongly-typed, in-memory representation of a
// project's funding setup. A Configuration is the aggregate root: it owns its
// beneficiaries, funding sources, tiers and goals outright, and nothing in
// this package is shared between two configurations.
//
// # Core Concepts
//
//   - Configuration: The root container for one project. Entities are appended
//     in declaration order through the Add* methods and are never reordered or
//     deduplicated.
//
//   - Source: One funding platform entry (GitHub Sponsors, Patreon, a custom
//     URL, ...) together with its platform specific settings.
//
//   - Tier: A priced sponsorship level with a list of benefits.
//
//   - Goal: A funding milestone. Progress is derived from the current and
//     target amounts.
//
// Why a separate model package?
//
// Both DSL engines, the graphical tooling that constructs configurations
// directly, the validator and every exporter speak this one vocabulary. The
// model therefore carries no parsing or rendering logic of its own, only the
// small derived views (active sources, progress) that every consumer needs.
//
// Values are plain data. Mutation after construction is allowed but nothing
// in the system relies on it, and equality is structural.
package model
