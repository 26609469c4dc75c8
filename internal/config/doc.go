// Package config defines the format-agnostic intermediate document that sits
// between a DSL engine and the model builder, along with the Loader interface
// every engine implements.
//
// A Document is a field dictionary per block: attribute values are stored as
// cty.Value in the shape declared by the schema package, so the builder never
// needs to know which engine produced them.
package config
