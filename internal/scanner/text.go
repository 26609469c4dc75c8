package scanner

// blank replaces b with a space unless it is a line break, which is kept so
// line-sensitive lookups still see the original line structure.
func blank(b byte) byte {
	if b == '\n' || b == '\r' {
		return b
	}
	return ' '
}

// StripComments blanks out `//` line comments and `/* */` block comments.
// Comment markers inside quoted strings are left alone. The result has the
// same length as text.
func StripComments(text string) string {
	out := []byte(text)
	inQuote := false
	for i := 0; i < len(out); i++ {
		c := out[i]
		if inQuote {
			switch c {
			case '\\':
				i++
			case '"':
				inQuote = false
			case '\n':
				// Quoted strings never span lines.
				inQuote = false
			}
			continue
		}

		switch {
		case c == '"':
			inQuote = true
		case c == '/' && i+1 < len(out) && out[i+1] == '/':
			for ; i < len(out) && out[i] != '\n'; i++ {
				out[i] = ' '
			}
		case c == '/' && i+1 < len(out) && out[i+1] == '*':
			out[i], out[i+1] = ' ', ' '
			i += 2
			for ; i < len(out); i++ {
				if out[i] == '*' && i+1 < len(out) && out[i+1] == '/' {
					out[i], out[i+1] = ' ', ' '
					i++
					break
				}
				out[i] = blank(out[i])
			}
		}
	}
	return string(out)
}

// Mask returns the own-level view of text: the contents of every brace pair
// are blanked out while the braces themselves stay. The result has the same
// length as text.
func Mask(text string) string {
	return mask(text, false)
}

// HideStrings is Mask with the contents of own-level quoted strings blanked
// as well. The quote characters stay, so a string still matches `"..."` and
// its value can be sliced from text at the same offsets. Names are matched in
// this view; a word inside a string never counts as a property or a block.
func HideStrings(text string) string {
	return mask(text, true)
}

func mask(text string, hideStrings bool) string {
	out := []byte(text)
	depth := 0
	inQuote := false
	for i := 0; i < len(out); i++ {
		c := out[i]
		if inQuote {
			hide := depth > 0 || hideStrings
			if c == '\\' && i+1 < len(out) {
				if hide {
					out[i] = ' '
					out[i+1] = blank(out[i+1])
				}
				i++
				continue
			}
			if c == '"' || c == '\n' {
				inQuote = false
				if depth > 0 {
					out[i] = blank(c)
				}
				continue
			}
			if hide {
				out[i] = blank(c)
			}
			continue
		}

		switch c {
		case '"':
			inQuote = true
			if depth > 0 {
				out[i] = ' '
			}
		case '{':
			if depth > 0 {
				out[i] = ' '
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth > 0 {
					out[i] = ' '
				}
			}
		default:
			if depth > 0 {
				out[i] = blank(c)
			}
		}
	}
	return string(out)
}

// ExtractBalanced returns the text strictly between the brace at open and its
// matching closing brace, plus the index of that closing brace. ok is false
// when text[open] is not '{' or the braces never balance; nothing is
// extracted in that case.
func ExtractBalanced(text string, open int) (body string, end int, ok bool) {
	if open < 0 || open >= len(text) || text[open] != '{' {
		return "", -1, false
	}

	depth := 0
	inQuote := false
	for i := open; i < len(text); i++ {
		c := text[i]
		if inQuote {
			switch c {
			case '\\':
				i++
			case '"', '\n':
				inQuote = false
			}
			continue
		}
		switch c {
		case '"':
			inQuote = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[open+1 : i], i, true
			}
		}
	}
	return "", -1, false
}
