// Copyright 2021 Josh Deprez
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package messageformat

import (
	"strconv"
	"strings"
)

// parse is the pattern parser: a single-pass, recursive-descent
// parser over byte indices into src, with no regular expressions and
// no parser-generator library — one manual lookahead byte suffices.
func parse(src string) (*pattern, error) {
	p := &parser{src: src}
	nodes, err := p.parseNodes(false)
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		// parseNodes only stops early on an unmatched '}'.
		return nil, &ParseError{Msg: "unexpected '}'", Offset: p.pos}
	}
	return &pattern{nodes: nodes}, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) errf(msg string) error {
	return &ParseError{Msg: msg, Offset: p.pos}
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

// peek returns the byte at pos without consuming it, or 0 at EOF.
func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

// peekAt returns the byte at pos+n without consuming it, or 0 past EOF.
func (p *parser) peekAt(n int) byte {
	if p.pos+n >= len(p.src) {
		return 0
	}
	return p.src[p.pos+n]
}

func (p *parser) skipWS() {
	for !p.eof() {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// parseNodes consumes literal text and placeholders until EOF or an
// unmatched '}' (the caller is responsible for consuming the '}' that
// closes a placeholder or sub-pattern). If inPlural, a bare '#'
// terminates the current literal run and yields a kindPluralHash node.
func (p *parser) parseNodes(inPlural bool) ([]node, error) {
	var nodes []node
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			nodes = append(nodes, node{kind: kindLiteral, literalText: lit.String()})
			lit.Reset()
		}
	}
	for !p.eof() {
		c := p.src[p.pos]
		switch {
		case c == '}':
			flush()
			return nodes, nil
		case c == '\'':
			p.parseQuoted(&lit, inPlural)
		case c == '{':
			flush()
			n, err := p.parsePlaceholder()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
		case c == '#' && inPlural:
			flush()
			nodes = append(nodes, node{kind: kindPluralHash})
			p.pos++
		default:
			lit.WriteByte(c)
			p.pos++
		}
	}
	flush()
	return nodes, nil
}

// parseQuoted handles a single apostrophe encountered at the current
// position, writing whatever it denotes into lit and advancing past
// it. Two rules, matching how ICU MessageFormat patterns actually
// read in practice rather than a naive "every apostrophe quotes"
// scan: a doubled "''" is always one literal apostrophe, and a lone
// "'" only opens a quoted region — running to the next "'", with
// braces and (inside a plural/selectordinal body) '#' inert — when it
// is immediately followed by one of the characters that would
// otherwise carry syntactic meaning there: '{', '}', or '#' when
// inPlural. An apostrophe not followed by one of those is not quoting
// syntax at all; it is a literal apostrophe, same as in ordinary text
// such as "It's". inPlural gates whether a following '#' counts as
// such a trigger. An unterminated quoted region extends to
// end-of-pattern.
func (p *parser) parseQuoted(lit *strings.Builder, inPlural bool) {
	next := p.peekAt(1)
	switch {
	case next == '\'':
		lit.WriteByte('\'')
		p.pos += 2
	case next == '{' || next == '}' || (inPlural && next == '#'):
		p.pos++ // consume the opening quote
		for !p.eof() {
			c := p.src[p.pos]
			if c == '\'' {
				p.pos++
				if p.peek() == '\'' {
					// '' inside a quoted region is still a literal
					// apostrophe, and does not close the region.
					lit.WriteByte('\'')
					p.pos++
					continue
				}
				return
			}
			lit.WriteByte(c)
			p.pos++
		}
		// unterminated quote: ran to EOF, which is allowed.
	default:
		lit.WriteByte('\'')
		p.pos++
	}
}

// parsePlaceholder parses a '{' ... '}' placeholder starting at the
// opening brace.
func (p *parser) parsePlaceholder() (node, error) {
	p.pos++ // consume '{'
	p.skipWS()

	name, err := p.parseName()
	if err != nil {
		return node{}, err
	}
	p.skipWS()

	if p.eof() {
		return node{}, p.errf("unexpected end of input in placeholder")
	}
	if p.peek() == '}' {
		p.pos++
		return node{kind: kindVariable, name: name}, nil
	}
	if p.peek() != ',' {
		return node{}, p.errf("expected ',' or '}' after argument name")
	}
	p.pos++ // consume ','
	p.skipWS()

	typ, err := p.parseName()
	if err != nil {
		return node{}, err
	}
	p.skipWS()

	if branchingTypes[typ] {
		n, err := p.parseBranchTail(name, typ)
		if err != nil {
			return node{}, err
		}
		p.skipWS()
		if p.eof() || p.peek() != '}' {
			return node{}, p.errf("expected '}' to close placeholder")
		}
		p.pos++
		return n, nil
	}

	// Non-branching typed placeholder: either '}' (no style) or
	// ',' style-text '}'.
	if p.peek() == '}' {
		p.pos++
		return node{kind: kindFormatted, name: name, typ: typ}, nil
	}
	if p.peek() != ',' {
		return node{}, p.errf("expected ',' or '}' after format type")
	}
	p.pos++ // consume ','
	p.skipWS()
	style, err := p.parseStyleText()
	if err != nil {
		return node{}, err
	}
	if p.eof() || p.peek() != '}' {
		return node{}, p.errf("expected '}' to close placeholder")
	}
	p.pos++
	return node{kind: kindFormatted, name: name, typ: typ, styleText: style}, nil
}

// parseName parses an identifier: a run of characters other than
// whitespace, ',', '{', '}'. An empty name is a parse error.
func (p *parser) parseName() (string, error) {
	start := p.pos
	for !p.eof() {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r', ',', '{', '}':
			goto done
		}
		p.pos++
	}
done:
	if p.pos == start {
		return "", p.errf("expected a name, got empty string")
	}
	return p.src[start:p.pos], nil
}

// parseStyleText consumes raw text until the matching closing '}',
// honoring quote rules and brace depth, though built-in styles never
// contain braces. '#' never quotes specially here since style text is
// never a plural/selectordinal body.
func (p *parser) parseStyleText() (string, error) {
	var sb strings.Builder
	depth := 0
	for !p.eof() {
		c := p.src[p.pos]
		switch c {
		case '\'':
			p.parseQuoted(&sb, false)
			continue
		case '{':
			depth++
			sb.WriteByte(c)
			p.pos++
			continue
		case '}':
			if depth == 0 {
				return strings.TrimSpace(sb.String()), nil
			}
			depth--
			sb.WriteByte(c)
			p.pos++
			continue
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
	return "", p.errf("unexpected end of input in style text")
}

// parseBranchTail parses the branching-tail grammar shared by select,
// plural, and selectordinal: an optional "offset:N" (plural/
// selectordinal only), followed by one or more "key { sub-pattern }"
// branches. Validates unique keys, at least one "other" branch, and
// well-formed "=N" keys and offsets.
func (p *parser) parseBranchTail(name, typ string) (node, error) {
	offset := 0
	if typ != "select" && p.matchKeyword("offset") {
		p.skipWS()
		// matchKeyword has already ruled out longer identifiers such as
		// "offsetx", so the bare word "offset" stands here and ':' must
		// follow; a branch key named exactly "offset" is therefore a
		// parse error.
		if p.eof() || p.peek() != ':' {
			return node{}, p.errf("expected ':' after 'offset'")
		}
		p.pos++
		p.skipWS()
		n, err := p.parseUnsignedInt()
		if err != nil {
			return node{}, p.errf("malformed offset: " + err.Error())
		}
		offset = n
		p.skipWS()
	}

	seen := make(map[string]bool)
	var branches []branch
	haveOther := false
	for {
		p.skipWS()
		if p.eof() {
			return node{}, p.errf("unexpected end of input in branch list")
		}
		if p.peek() == '}' {
			break
		}
		key, explicitVal, isExplicit, err := p.parseBranchKey(typ)
		if err != nil {
			return node{}, err
		}
		p.skipWS()
		if p.eof() || p.peek() != '{' {
			return node{}, p.errf("expected '{' to start branch body for key " + key)
		}
		p.pos++ // consume '{'
		sub, err := p.parseNodes(typ != "select")
		if err != nil {
			return node{}, err
		}
		if p.eof() || p.peek() != '}' {
			return node{}, p.errf("expected '}' to close branch body for key " + key)
		}
		p.pos++ // consume '}'

		if seen[key] {
			return node{}, p.errf("duplicate branch key " + key)
		}
		seen[key] = true
		if key == "other" {
			haveOther = true
		}
		branches = append(branches, branch{
			key:           key,
			explicitValue: explicitVal,
			isExplicit:    isExplicit,
			sub:           &pattern{nodes: sub},
		})

		p.skipWS()
		if !p.eof() && p.peek() == '}' {
			break
		}
	}
	if !haveOther {
		return node{}, p.errf("missing required \"other\" branch")
	}
	return node{
		kind: kindBranch,
		name: name,
		typ:  typ,
		branch: &branchNode{
			offset:   offset,
			branches: branches,
		},
	}, nil
}

// parseBranchKey parses one branch key: "=N" for an explicit numeric
// match, or an identifier (a CLDR keyword or user pluralizer keyword
// for plural/selectordinal, or an arbitrary identifier for select).
func (p *parser) parseBranchKey(typ string) (key string, explicitVal float64, isExplicit bool, err error) {
	if p.peek() == '=' {
		start := p.pos
		p.pos++
		n, perr := p.parseSignedInt()
		if perr != nil {
			return "", 0, false, p.errf("malformed \"=N\" branch key: " + perr.Error())
		}
		key = p.src[start:p.pos]
		return key, float64(n), true, nil
	}
	key, err = p.parseName()
	if err != nil {
		return "", 0, false, err
	}
	return key, 0, false, nil
}

// matchKeyword consumes word if it appears at pos and is not merely a
// prefix of a longer identifier (e.g. a branch key literally named
// "offsetx" must not be mistaken for the "offset" keyword).
func (p *parser) matchKeyword(word string) bool {
	rest := p.src[p.pos:]
	if !strings.HasPrefix(rest, word) {
		return false
	}
	if len(rest) > len(word) && isNameByte(rest[len(word)]) {
		return false
	}
	p.pos += len(word)
	return true
}

// isNameByte reports whether c can appear inside an identifier parsed
// by parseName (anything but whitespace and the structural bytes).
func isNameByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', ',', '{', '}':
		return false
	default:
		return true
	}
}

func (p *parser) parseUnsignedInt() (int, error) {
	start := p.pos
	for !p.eof() && isDigit(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return 0, strconvErr("expected digits")
	}
	return strconv.Atoi(p.src[start:p.pos])
}

func (p *parser) parseSignedInt() (int, error) {
	start := p.pos
	if !p.eof() && (p.src[p.pos] == '-' || p.src[p.pos] == '+') {
		p.pos++
	}
	digitsStart := p.pos
	for !p.eof() && isDigit(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == digitsStart {
		return 0, strconvErr("expected digits")
	}
	return strconv.Atoi(p.src[start:p.pos])
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

type strconvErr string

func (e strconvErr) Error() string { return string(e) }
