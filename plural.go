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

	cldr "github.com/razor-1/localizer-cldr"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// PluralKeyword is one of the six CLDR plural categories.
type PluralKeyword string

// The six CLDR plural keywords.
const (
	KeywordZero  PluralKeyword = "zero"
	KeywordOne   PluralKeyword = "one"
	KeywordTwo   PluralKeyword = "two"
	KeywordFew   PluralKeyword = "few"
	KeywordMany  PluralKeyword = "many"
	KeywordOther PluralKeyword = "other"
)

// PluralFunc maps a number to one of the six plural keywords.
// User-installed pluralizers implement this signature directly; the
// built-in CLDR tables are exposed in the same shape.
type PluralFunc func(n float64) PluralKeyword

// Pluralizer bundles the cardinal and ordinal rule functions for one
// locale. Either field may be left nil, in which case the
// built-in CLDR default for that axis is used.
type Pluralizer struct {
	Cardinal PluralFunc
	Ordinal  PluralFunc
}

// formKeyTable maps golang.org/x/text/feature/plural's Form values to
// the CLDR keyword strings this package uses throughout.
var formKeyTable = []PluralKeyword{
	plural.Other: KeywordOther,
	plural.Zero:  KeywordZero,
	plural.One:   KeywordOne,
	plural.Two:   KeywordTwo,
	plural.Few:   KeywordFew,
	plural.Many:  KeywordMany,
}

// cldrPluralFunc returns the built-in CLDR-derived PluralFunc for tag
// using rules (plural.Cardinal or plural.Ordinal). The number is
// rendered to its canonical decimal string and fed to
// cldr.NewOperands so fractional-digit operands (v, w, f, t) are
// derived the same way CLDR specifies, rather than guessed from the
// float64 bit pattern.
func cldrPluralFunc(tag language.Tag, rules *plural.Rules) PluralFunc {
	return func(n float64) PluralKeyword {
		ops, err := cldr.NewOperands(canonicalNumberString(n))
		if err != nil {
			return KeywordOther
		}
		form := rules.MatchPlural(tag, int(ops.I), int(ops.V), int(ops.W), int(ops.F), int(ops.T))
		if int(form) < 0 || int(form) >= len(formKeyTable) {
			return KeywordOther
		}
		return formKeyTable[form]
	}
}

// canonicalNumberString renders n the way a user would type it, so
// cldr.NewOperands can recover the number of visible fraction digits.
// This cannot recover formatting lost before reaching Go (e.g. "1.50"
// arriving as the float64 1.5), which is an inherent limit of
// accepting untyped numeric arguments rather than pre-formatted
// strings; integers render with no decimal point at all (v=0).
func canonicalNumberString(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// resolvePluralizer looks up the Pluralizer for tag in overrides,
// falling back in order: exact tag, then primary subtag (e.g. "pt-BR"
// falls back to "pt"), then the built-in CLDR default. Within a
// matched entry, a nil Cardinal or Ordinal field still falls back to
// the built-in CLDR default for that axis alone.
func resolvePluralizer(tag language.Tag, overrides map[string]Pluralizer) (cardinal, ordinal PluralFunc) {
	cardinal = cldrPluralFunc(tag, plural.Cardinal)
	ordinal = cldrPluralFunc(tag, plural.Ordinal)

	if p, ok := lookupPluralizer(tag, overrides); ok {
		if p.Cardinal != nil {
			cardinal = p.Cardinal
		}
		if p.Ordinal != nil {
			ordinal = p.Ordinal
		}
	}
	return cardinal, ordinal
}

func lookupPluralizer(tag language.Tag, overrides map[string]Pluralizer) (Pluralizer, bool) {
	if p, ok := overrides[tag.String()]; ok {
		return p, true
	}
	base, conf := tag.Base()
	if conf != language.No {
		if p, ok := overrides[base.String()]; ok {
			return p, true
		}
	}
	// Some callers register under the primary subtag string directly
	// (e.g. "pt") rather than a language.Base value; also try a naive
	// hyphen split as a last-resort textual fallback.
	if i := strings.IndexByte(tag.String(), '-'); i > 0 {
		if p, ok := overrides[tag.String()[:i]]; ok {
			return p, true
		}
	}
	return Pluralizer{}, false
}
