// Package builder turns the intermediate document produced by a DSL engine
// into the typed funding model.
//
// # Why Builder Exists
//
// Both DSL engines stop at a field dictionary per block (config.Document).
// Turning those raw values into domain entities is the same work no matter
// which engine ran, so it lives here once:
//   - **Coercion:** platform, funding type and currency tokens are mapped to
//     model enums through lookup tables owned by each Builder.
//   - **Defaults:** omitted optional fields get their documented defaults.
//   - **Assembly:** entities are appended to the configuration in source
//     order with the model's Add* methods.
//
// # Leniency
//
// Building never fails on nested content. An unknown platform becomes
// model.Custom, an unknown funding type becomes model.Both, an unknown
// currency becomes model.USD, and a deadline that is not YYYY-MM-DD is
// dropped. The only error is a missing document.
//
// # Thread-Safety
//
// A Builder's lookup tables are filled at construction and only read
// afterwards, so one Builder may serve concurrent Build calls.
package builder
