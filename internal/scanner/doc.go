// Package scanner is the text-scanning DSL engine. It locates blocks by
// keyword, extracts their bodies by counting brace depth, and pulls
// properties out of each body with small independent pattern lookups.
//
// Scanning works on four views of the same text:
//
//   - the comment-free source, produced by StripComments;
//   - the own-level view of a block body, produced by Mask, in which every
//     nested `{ ... }` region is blanked out so a property of an inner block
//     never matches as a property of its parent;
//   - the hidden view, produced by HideStrings, which additionally blanks
//     own-level string contents so names are only matched outside strings;
//   - the balanced body of a block, produced by ExtractBalanced.
//
// Mask, HideStrings and StripComments preserve byte offsets, so a match
// found in one view can be used to slice another. Quoted strings, including
// their `\"` escapes, are honored everywhere: a brace, a `//` or a property
// name inside a string is content, not structure.
package scanner
