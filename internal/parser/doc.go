// Package parser is the public entry point for turning funding DSL text into
// a model.Configuration. A Parser pairs one DSL engine (the text scanner or
// the token grammar) with its own model builder. Both engines produce
// structurally equal configurations from the same input.
package parser
