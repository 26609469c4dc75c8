package scanner

import (
	"regexp"
	"strconv"
	"sync"
)

// The extractors below are independent lookups over the own-level text of a
// block. None of them consumes input; each searches the whole text and only
// the first match counts. Quoted strings are values, never names: a property
// name inside a description does not match, and a string may contain `\"`.

const numberPattern = `(\d+(?:\.\d+)?)`

var (
	patternCache sync.Map // string -> *regexp.Regexp

	quotedRe = regexp.MustCompile(`"([^"\n]*)"`)
	pairRe   = regexp.MustCompile(`"([^"\n]*)"[ \t]+"([^"\n]*)"`)
)

func compile(pattern string) *regexp.Regexp {
	if re, ok := patternCache.Load(pattern); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(pattern)
	patternCache.Store(pattern, re)
	return re
}

// view is a text together with its HideStrings form. Patterns run against
// the hidden form; captured groups are read from text at the same offsets.
type view struct {
	text   string
	hidden string
}

func newView(text string) view {
	return view{text: text, hidden: HideStrings(text)}
}

// submatches returns the groups of the first match of re, read from text.
func (v view) submatches(re *regexp.Regexp) []string {
	return v.groups(re.FindStringSubmatchIndex(v.hidden))
}

func (v view) groups(loc []int) []string {
	if loc == nil {
		return nil
	}
	m := make([]string, len(loc)/2)
	for i := range m {
		if loc[2*i] >= 0 {
			m[i] = v.text[loc[2*i]:loc[2*i+1]]
		}
	}
	return m
}

func (v view) find(name, valuePattern string) []string {
	return v.submatches(compile(`\b` + regexp.QuoteMeta(name) + valuePattern))
}

func (v view) quoted(name string) (string, bool) {
	m := v.find(name, `\s+"([^"\n]*)"`)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func (v view) keyword(name string) (string, bool) {
	m := v.find(name, `\s+(`+identPattern+`)`)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func (v view) number(name string) (string, bool) {
	m := v.find(name, `\s+`+numberPattern+`\b`)
	if m == nil {
		return "", false
	}
	if _, err := strconv.ParseFloat(m[1], 64); err != nil {
		return "", false
	}
	return m[1], true
}

func (v view) boolean(name string) (bool, bool) {
	m := v.find(name, `\s+(true|false)\b`)
	if m == nil {
		return false, false
	}
	return m[1] == "true", true
}

func (v view) list(name string) ([]string, bool) {
	loc := compile(`\b` + regexp.QuoteMeta(name) + `\s*\[([^\]]*)\]`).FindStringSubmatchIndex(v.hidden)
	if loc == nil {
		return nil, false
	}
	start, end := loc[2], loc[3]
	inner := view{text: v.text[start:end], hidden: v.hidden[start:end]}
	items := []string{}
	for _, q := range quotedRe.FindAllStringSubmatchIndex(inner.hidden, -1) {
		items = append(items, inner.groups(q)[1])
	}
	return items, true
}

func (v view) amount(name string) (value, currency string, ok bool) {
	m := v.find(name, `\s+`+numberPattern+`[ \t]+(`+identPattern+`)`)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// String extracts `<name> "<value>"`. The value is returned as written,
// escape sequences included.
func String(text, name string) (string, bool) {
	return newView(text).quoted(name)
}

// Keyword extracts `<name> <IDENT>`, e.g. `currency EUR`.
func Keyword(text, name string) (string, bool) {
	return newView(text).keyword(name)
}

// Number extracts `<name> <number>` and returns the literal as written.
func Number(text, name string) (string, bool) {
	return newView(text).number(name)
}

// Bool extracts `<name> true|false`.
func Bool(text, name string) (bool, bool) {
	return newView(text).boolean(name)
}

// StringList extracts `<name> [ "a", "b", ... ]`. ok is false only when the
// property is missing; an empty list is still a match.
func StringList(text, name string) ([]string, bool) {
	return newView(text).list(name)
}

// Amount extracts `<name> <number> <CURRENCY>`. The currency code must be on
// the same line as the number.
func Amount(text, name string) (value, currency string, ok bool) {
	return newView(text).amount(name)
}

// Pairs extracts the `"<key>" "<value>"` lines of the first own-level
// `config { ... }` block in text, in source order.
func Pairs(text string) [][2]string {
	b, ok := Section("config").Find(text, 0)
	if !ok {
		return nil
	}
	body := newView(b.Body)
	var pairs [][2]string
	for _, loc := range pairRe.FindAllStringSubmatchIndex(body.hidden, -1) {
		m := body.groups(loc)
		pairs = append(pairs, [2]string{m[1], m[2]})
	}
	return pairs
}
