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
	"errors"
	"strings"

	"golang.org/x/text/language"
)

// evaluator walks a pattern tree against an Args map and a locale,
// writing to a strings.Builder. One evaluator is
// created per top-level Format call; it never mutates the pattern
// tree itself except through each node's formatterStateCell, which is
// safe for concurrent use.
type evaluator struct {
	args     Args
	locale   language.Tag
	registry *Registry
	lf       LocaleFormatter
	cardinal PluralFunc
	ordinal  PluralFunc
}

// pluralContext carries the current `#` substitution value while
// evaluating inside a plural/selectordinal branch body; nil outside
// one.
type pluralContext struct {
	value float64
}

func (e *evaluator) eval(p *pattern, ctx *pluralContext) (string, error) {
	var sb strings.Builder
	for i := range p.nodes {
		if err := e.evalNode(&p.nodes[i], ctx, &sb); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func (e *evaluator) evalNode(n *node, ctx *pluralContext, sb *strings.Builder) error {
	switch n.kind {
	case kindLiteral:
		sb.WriteString(n.literalText)
		return nil

	case kindVariable:
		v, ok := e.args.Get(n.name)
		if !ok {
			return missingArgument(n.name)
		}
		s, err := e.defaultFormat(n.name, v)
		if err != nil {
			return err
		}
		sb.WriteString(s)
		return nil

	case kindFormatted:
		v, ok := e.args.Get(n.name)
		if !ok {
			return missingArgument(n.name)
		}
		f, ok := e.registry.Formatter(n.typ)
		if !ok {
			return unknownFormatter(n.typ)
		}
		state, err := n.formatterState.get(func() (formatterState, error) {
			return f.ParseArguments(n.styleText)
		})
		if err != nil {
			return formatterFailure(n.typ, err)
		}
		s, err := f.Format(state, v, e.locale, e.lf)
		if err != nil {
			var ferr *FormatError
			if errors.As(err, &ferr) {
				return err
			}
			return formatterFailure(n.typ, err)
		}
		sb.WriteString(s)
		return nil

	case kindBranch:
		return e.evalBranch(n, sb)

	case kindPluralHash:
		if ctx == nil {
			// Not reachable from a pattern produced by parser.go (# is
			// only special inside a plural/selectordinal body), kept
			// as a defensive fallback for hand-built trees.
			sb.WriteString("#")
			return nil
		}
		s, err := e.lf.FormatNumber(ctx.value, "", e.locale)
		if err != nil {
			return formatterFailure("number", err)
		}
		sb.WriteString(s)
		return nil
	}
	return nil
}

func (e *evaluator) evalBranch(n *node, sb *strings.Builder) error {
	v, ok := e.args.Get(n.name)
	if !ok {
		return missingArgument(n.name)
	}

	if n.typ == "select" {
		key, err := convertToStringKey(v)
		if err != nil {
			return argumentTypeMismatch(n.name, "string", err)
		}
		b := findBranch(n.branch.branches, key)
		if b == nil {
			b = findBranch(n.branch.branches, "other")
		}
		if b == nil {
			return unknownFormatter("select") // unreachable: parser guarantees "other"
		}
		s, err := e.eval(b.sub, nil)
		if err != nil {
			return err
		}
		sb.WriteString(s)
		return nil
	}

	// plural / selectordinal
	num, err := convertToFloat64(v)
	if err != nil {
		return argumentTypeMismatch(n.name, "number", err)
	}
	offsetVal := num - float64(n.branch.offset)

	var chosen *branch
	for i := range n.branch.branches {
		b := &n.branch.branches[i]
		if b.isExplicit && b.explicitValue == num {
			chosen = b
			break
		}
	}
	if chosen == nil {
		rule := e.cardinal
		if n.typ == "selectordinal" {
			rule = e.ordinal
		}
		keyword := string(rule(num))
		chosen = findBranch(n.branch.branches, keyword)
	}
	if chosen == nil {
		chosen = findBranch(n.branch.branches, "other")
	}
	if chosen == nil {
		return unknownFormatter(n.typ) // unreachable: parser guarantees "other"
	}

	s, err := e.eval(chosen.sub, &pluralContext{value: offsetVal})
	if err != nil {
		return err
	}
	sb.WriteString(s)
	return nil
}

func findBranch(branches []branch, key string) *branch {
	for i := range branches {
		if branches[i].key == key {
			return &branches[i]
		}
	}
	return nil
}

// defaultFormat implements the Variable node's default formatting
//: numeric values use the default number format,
// temporal values use the default date format, everything else uses
// its plain string representation.
func (e *evaluator) defaultFormat(name string, v interface{}) (string, error) {
	switch {
	case looksNumeric(v):
		n, err := convertToFloat64(v)
		if err != nil {
			return "", argumentTypeMismatch(name, "number", err)
		}
		s, err := e.lf.FormatNumber(n, "", e.locale)
		if err != nil {
			return "", formatterFailure("number", err)
		}
		return s, nil
	case looksTemporal(v):
		t, _ := convertToTime(v)
		s, err := e.lf.FormatDate(t, "", e.locale)
		if err != nil {
			return "", formatterFailure("date", err)
		}
		return s, nil
	default:
		return convertToDisplayString(v), nil
	}
}
