// Package export renders a funding configuration into the output formats the
// tool supports: GitHub's FUNDING.yml, JSON, Markdown, CSV and canonical DSL
// text. Formats are looked up by name in a Registry.
package export
