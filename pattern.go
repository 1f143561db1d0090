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

import "sync"

// pattern is an ordered sequence of nodes, parsed once and shared
// across concurrent format calls. It is immutable after parsing.
type pattern struct {
	nodes []node
}

// node is one element of a pattern. Exactly one of the typed fields
// below is meaningful, selected by kind.
type node struct {
	kind nodeKind

	// literalText is set for kindLiteral.
	literalText string

	// name is the argument name, set for kindVariable, kindFormatted,
	// and kindBranch.
	name string

	// typ is the format-type keyword (e.g. "number", "select"), set
	// for kindFormatted and kindBranch.
	typ string

	// styleText is the raw, unparsed style text following the type in
	// a kindFormatted node (e.g. "short" in {d, date, short}).
	styleText string

	// formatterState caches the result of calling the registered
	// formatter's ParseArguments on styleText, computed at most once
	// even under concurrent evaluation (see formatterStateCell below).
	formatterState formatterStateCell

	// branch holds the offset and ordered branch list for kindBranch
	// nodes (select/plural/selectordinal).
	branch *branchNode
}

type nodeKind int

const (
	kindLiteral nodeKind = iota
	kindVariable
	kindFormatted
	kindBranch
	kindPluralHash
)

// branchNode holds the parsed tail of a select/plural/selectordinal
// placeholder: an optional offset (plural/selectordinal only) and an
// ordered list of branches. Order is preserved from the source text,
// though dispatch is by key lookup, not position.
type branchNode struct {
	offset int // always 0 for select
	// branches in source order; "other" is guaranteed present by the
	// parser.
	branches []branch
}

// branch is one keyed sub-pattern of a branching node.
type branch struct {
	// key is the literal branch key as written: a CLDR keyword, an
	// "=N" explicit match, or (for select) an arbitrary identifier.
	key string
	// explicitValue and isExplicit describe "=N" keys.
	explicitValue float64
	isExplicit    bool
	sub           *pattern
}

// formatterStateCell lazily memoizes a formatter's ParseArguments
// result for one node, shared across concurrent Format calls on the
// same cached pattern.
type formatterStateCell struct {
	once  sync.Once
	state formatterState
	err   error
}

func (c *formatterStateCell) get(compute func() (formatterState, error)) (formatterState, error) {
	c.once.Do(func() {
		c.state, c.err = compute()
	})
	return c.state, c.err
}

// Equal reports two cells as equal without inspecting fields,
// including the embedded sync.Once that would otherwise make this
// type impossible for cmp.Diff/cmp.Equal to walk into. The cache
// state it guards is not part of a pattern's structural identity: a
// freshly parsed node always has an unfired cell regardless of
// whether some other node with equal content has already been
// formatted once.
func (formatterStateCell) Equal(formatterStateCell) bool {
	return true
}
