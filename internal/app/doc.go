// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the two execution modes: a one-shot export
// of DSL files and a long-running HTTP API. Both are decoupled from any
// specific entrypoint like a CLI.
package app
