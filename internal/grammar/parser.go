package grammar

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

var plainNumber = regexp.MustCompile(`^\d+(?:\.\d+)?$`)

// Parse tokenizes src and parses it as a sequence of top level body items.
func Parse(src []byte, filename string) (*Body, hcl.Diagnostics) {
	raw, diags := hclsyntax.LexConfig(src, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, diags
	}

	p := &parser{toks: significant(raw)}
	body := p.parseBody(false)
	if p.diags.HasErrors() {
		return nil, p.diags
	}
	return body, nil
}

// significant drops comments. A line comment swallows its line ending, so
// one that ends in a newline is replaced by a newline token.
func significant(raw hclsyntax.Tokens) []hclsyntax.Token {
	out := make([]hclsyntax.Token, 0, len(raw))
	for _, tok := range raw {
		if tok.Type != hclsyntax.TokenComment {
			out = append(out, tok)
			continue
		}
		if bytes.HasSuffix(tok.Bytes, []byte("\n")) {
			out = append(out, hclsyntax.Token{
				Type:  hclsyntax.TokenNewline,
				Bytes: []byte("\n"),
				Range: tok.Range,
			})
		}
	}
	return out
}

type parser struct {
	toks  []hclsyntax.Token
	pos   int
	diags hcl.Diagnostics
}

func (p *parser) peek() hclsyntax.Token {
	return p.toks[p.pos]
}

// peekAt looks n tokens ahead without skipping anything.
func (p *parser) peekAt(n int) hclsyntax.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

// next consumes one token. The trailing EOF token is never consumed.
func (p *parser) next() hclsyntax.Token {
	tok := p.toks[p.pos]
	if tok.Type != hclsyntax.TokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) skipNewlines() {
	for p.peek().Type == hclsyntax.TokenNewline {
		p.next()
	}
}

// peekPastNewlines returns the first non-newline token without consuming
// anything.
func (p *parser) peekPastNewlines() hclsyntax.Token {
	for i := p.pos; i < len(p.toks); i++ {
		if p.toks[i].Type != hclsyntax.TokenNewline {
			return p.toks[i]
		}
	}
	return p.toks[len(p.toks)-1]
}

func (p *parser) errorf(rng hcl.Range, summary, format string, args ...any) {
	p.diags = append(p.diags, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   fmt.Sprintf(format, args...),
		Subject:  rng.Ptr(),
	})
}

// parseBody parses items until EOF (top level) or until the closing brace
// of a nested body, which it consumes. It returns nil after an error.
func (p *parser) parseBody(nested bool) *Body {
	body := &Body{}
	for {
		p.skipNewlines()
		tok := p.peek()
		switch tok.Type {
		case hclsyntax.TokenEOF:
			if nested {
				p.errorf(tok.Range, "Unclosed block", "The block body reaches the end of the file without a closing brace.")
				return nil
			}
			return body
		case hclsyntax.TokenCBrace:
			if !nested {
				p.errorf(tok.Range, "Unexpected closing brace", "This brace does not close any open block.")
				return nil
			}
			p.next()
			return body
		case hclsyntax.TokenOQuote:
			if !p.parsePair(body) {
				return nil
			}
		case hclsyntax.TokenIdent:
			if !p.parseItem(body) {
				return nil
			}
		default:
			p.errorf(tok.Range, "Argument or block definition required", "Expected a property name, a block or a quoted key, found %s.", describe(tok))
			return nil
		}
	}
}

func (p *parser) parsePair(body *Body) bool {
	key, keyRange, ok := p.parseString()
	if !ok {
		return false
	}
	if tok := p.peek(); tok.Type != hclsyntax.TokenOQuote {
		p.errorf(tok.Range, "Invalid config entry", "A quoted key must be followed by a quoted value on the same line, found %s.", describe(tok))
		return false
	}
	value, valueRange, ok := p.parseString()
	if !ok {
		return false
	}
	body.Pairs = append(body.Pairs, Pair{
		Key:   key,
		Value: value,
		Range: hcl.RangeBetween(keyRange, valueRange),
	})
	return true
}

func (p *parser) parseItem(body *Body) bool {
	nameTok := p.next()
	name := string(nameTok.Bytes)
	p.skipNewlines()

	tok := p.peek()
	switch tok.Type {
	case hclsyntax.TokenOBrace:
		p.next()
		inner := p.parseBody(true)
		if inner == nil {
			return false
		}
		body.Blocks = append(body.Blocks, &Block{Type: name, Body: inner, TypeRange: nameTok.Range})
		return true

	case hclsyntax.TokenOQuote:
		s, rng, ok := p.parseString()
		if !ok {
			return false
		}
		if p.peekPastNewlines().Type == hclsyntax.TokenOBrace {
			p.skipNewlines()
			p.next()
			inner := p.parseBody(true)
			if inner == nil {
				return false
			}
			body.Blocks = append(body.Blocks, &Block{Type: name, Labels: []string{s}, Body: inner, TypeRange: nameTok.Range})
			return true
		}
		body.Attributes = append(body.Attributes, &Attribute{
			Name:  name,
			Form:  Quoted,
			Value: cty.StringVal(s),
			Range: hcl.RangeBetween(nameTok.Range, rng),
		})
		return true

	case hclsyntax.TokenIdent:
		p.next()
		body.Attributes = append(body.Attributes, &Attribute{
			Name:  name,
			Form:  Bare,
			Value: cty.StringVal(string(tok.Bytes)),
			Range: hcl.RangeBetween(nameTok.Range, tok.Range),
		})
		return true

	case hclsyntax.TokenNumberLit:
		return p.parseNumber(body, nameTok)

	case hclsyntax.TokenOBrack:
		return p.parseList(body, nameTok)

	default:
		p.errorf(tok.Range, "Invalid value", "Expected a value for %q, found %s.", name, describe(tok))
		return false
	}
}

// parseNumber parses `name 10` or `name 10 CUR`. The identifier after the
// number counts as a currency only when it is on the same line and does not
// itself start the next item.
func (p *parser) parseNumber(body *Body, nameTok hclsyntax.Token) bool {
	tok := p.next()
	lit := string(tok.Bytes)
	if !plainNumber.MatchString(lit) {
		p.errorf(tok.Range, "Invalid number", "Numbers are written as digits with an optional decimal fraction, found %q.", lit)
		return false
	}
	n, err := cty.ParseNumberVal(lit)
	if err != nil {
		p.errorf(tok.Range, "Invalid number", "%s", err)
		return false
	}

	attr := &Attribute{
		Name:  string(nameTok.Bytes),
		Form:  Numeric,
		Value: n,
		Range: hcl.RangeBetween(nameTok.Range, tok.Range),
	}
	if cur := p.peek(); cur.Type == hclsyntax.TokenIdent && !startsValue(p.peekAt(1)) {
		p.next()
		attr.Form = Amount
		attr.Value = cty.TupleVal([]cty.Value{n, cty.StringVal(string(cur.Bytes))})
		attr.Range = hcl.RangeBetween(nameTok.Range, cur.Range)
	}
	body.Attributes = append(body.Attributes, attr)
	return true
}

func startsValue(tok hclsyntax.Token) bool {
	switch tok.Type {
	case hclsyntax.TokenOQuote, hclsyntax.TokenOBrace, hclsyntax.TokenOBrack, hclsyntax.TokenNumberLit:
		return true
	}
	return false
}

func (p *parser) parseList(body *Body, nameTok hclsyntax.Token) bool {
	p.next()
	var vals []cty.Value
	for {
		p.skipNewlines()
		tok := p.peek()
		switch tok.Type {
		case hclsyntax.TokenCBrack:
			p.next()
			value := cty.ListValEmpty(cty.String)
			if len(vals) > 0 {
				value = cty.ListVal(vals)
			}
			body.Attributes = append(body.Attributes, &Attribute{
				Name:  string(nameTok.Bytes),
				Form:  List,
				Value: value,
				Range: hcl.RangeBetween(nameTok.Range, tok.Range),
			})
			return true
		case hclsyntax.TokenOQuote:
			s, _, ok := p.parseString()
			if !ok {
				return false
			}
			vals = append(vals, cty.StringVal(s))
			p.skipNewlines()
			switch sep := p.peek(); sep.Type {
			case hclsyntax.TokenComma:
				p.next()
			case hclsyntax.TokenCBrack:
			default:
				p.errorf(sep.Range, "Missing item separator", "Expected a comma or a closing bracket, found %s.", describe(sep))
				return false
			}
		default:
			p.errorf(tok.Range, "Invalid list item", "Only quoted strings may appear in a list, found %s.", describe(tok))
			return false
		}
	}
}

// parseString consumes a quoted string. Literal segments are concatenated
// as written; escape sequences are not interpreted.
func (p *parser) parseString() (string, hcl.Range, bool) {
	open := p.next()
	var sb strings.Builder
	for {
		tok := p.next()
		switch tok.Type {
		case hclsyntax.TokenQuotedLit:
			sb.Write(tok.Bytes)
		case hclsyntax.TokenCQuote:
			return sb.String(), hcl.RangeBetween(open.Range, tok.Range), true
		case hclsyntax.TokenTemplateInterp, hclsyntax.TokenTemplateControl:
			p.errorf(tok.Range, "Unsupported template sequence", "Strings are taken literally; %q sequences are not allowed.", string(tok.Bytes))
			return "", open.Range, false
		default:
			p.errorf(tok.Range, "Unterminated string", "Expected the end of the quoted string, found %s.", describe(tok))
			return "", open.Range, false
		}
	}
}

var tokenNames = map[hclsyntax.TokenType]string{
	hclsyntax.TokenEOF:     "end of file",
	hclsyntax.TokenNewline: "newline",
	hclsyntax.TokenOBrace:  "opening brace",
	hclsyntax.TokenCBrace:  "closing brace",
	hclsyntax.TokenOBrack:  "opening bracket",
	hclsyntax.TokenCBrack:  "closing bracket",
	hclsyntax.TokenOQuote:  "quoted string",
	hclsyntax.TokenComma:   "comma",
}

func describe(tok hclsyntax.Token) string {
	if n, ok := tokenNames[tok.Type]; ok {
		return n
	}
	return fmt.Sprintf("%q", string(tok.Bytes))
}
