package scanner

import (
	"regexp"
)

// identPattern matches a DSL keyword such as a platform name.
const identPattern = `[A-Za-z_][A-Za-z0-9_-]*`

// Block is a block located inside some parent text.
type Block struct {
	// Keyword is the word that opened the block.
	Keyword string
	// Label is the quoted name after the keyword; empty for unlabeled blocks.
	Label string
	// Body is the text strictly between the outer braces.
	Body string
	// Open and Close are the offsets of the outer braces in the parent text.
	Open, Close int
}

// Matcher locates one kind of block within a parent body.
type Matcher struct {
	re *regexp.Regexp
}

// Section matches an unlabeled block: `<keyword> {`.
func Section(keyword string) Matcher {
	return Matcher{re: regexp.MustCompile(`\b(` + regexp.QuoteMeta(keyword) + `)\s*\{`)}
}

// Labeled matches `<keyword> "<label>" {`.
func Labeled(keyword string) Matcher {
	return Matcher{re: regexp.MustCompile(`\b(` + regexp.QuoteMeta(keyword) + `)\s+"([^"\n]*)"\s*\{`)}
}

// AnyLabeled matches `<identifier> "<label>" {` for any identifier. Source
// entries use it since the keyword is the platform name.
func AnyLabeled() Matcher {
	return Matcher{re: regexp.MustCompile(`\b(` + identPattern + `)\s+"([^"\n]*)"\s*\{`)}
}

// Find locates the first matching block at the own level of text, starting
// at offset from. Keywords inside quoted strings are ignored. Blocks whose
// braces do not balance are reported as not found.
func (m Matcher) Find(text string, from int) (Block, bool) {
	return m.find(text, HideStrings(text), from)
}

// find matches against hidden, the HideStrings view of text, and reads the
// keyword and label from text itself.
func (m Matcher) find(text, hidden string, from int) (Block, bool) {
	if from >= len(hidden) {
		return Block{}, false
	}
	loc := m.re.FindStringSubmatchIndex(hidden[from:])
	if loc == nil {
		return Block{}, false
	}

	// The pattern always ends at the opening brace.
	open := from + loc[1] - 1
	body, closeIdx, ok := ExtractBalanced(text, open)
	if !ok {
		return Block{}, false
	}

	b := Block{
		Keyword: text[from+loc[2] : from+loc[3]],
		Body:    body,
		Open:    open,
		Close:   closeIdx,
	}
	if len(loc) >= 6 && loc[4] >= 0 {
		b.Label = text[from+loc[4] : from+loc[5]]
	}
	return b, true
}

// All returns every matching block at the own level of text in source order.
// Each search resumes just past the previous block; an unterminated block
// ends the scan.
func (m Matcher) All(text string) []Block {
	hidden := HideStrings(text)
	var blocks []Block
	pos := 0
	for {
		b, ok := m.find(text, hidden, pos)
		if !ok {
			return blocks
		}
		blocks = append(blocks, b)
		pos = b.Close + 1
	}
}
