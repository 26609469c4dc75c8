// Package grammar is the grammar-driven DSL engine. Source text is tokenized
// with the HCL native-syntax lexer and matched by a small recursive-descent
// grammar into a generic tree of blocks, attributes and key/value pairs. The
// tree is then translated through the schema package into a config.Document.
//
// The grammar accepts these body items:
//
//	name "string"
//	name "label" { body }
//	name { body }
//	name keyword
//	name 10.5
//	name 10.5 CURRENCY      (currency on the same line as the number)
//	name [ "a", "b" ]
//	"key" "value"           (both on the same line)
//
// Comments (`#`, `//`, `/* */`) are dropped by the lexer. Newlines separate
// items but are otherwise insignificant. Syntax errors are reported as
// hcl.Diagnostics carrying file, line and column.
package grammar
