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
	"testing"

	"golang.org/x/text/language"
)

func TestCLDRCardinalEnglish(t *testing.T) {
	cardinal, _ := resolvePluralizer(language.English, nil)
	tests := []struct {
		n    float64
		want PluralKeyword
	}{
		{0, KeywordOther},
		{1, KeywordOne},
		{2, KeywordOther},
		{1.5, KeywordOther},
	}
	for _, tc := range tests {
		if got := cardinal(tc.n); got != tc.want {
			t.Errorf("cardinal(%v) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

func TestCLDRCardinalPolish(t *testing.T) {
	// Polish distinguishes "few" (2-4 excluding 12-14) from "many".
	tag := language.MustParse("pl")
	cardinal, _ := resolvePluralizer(tag, nil)
	tests := []struct {
		n    float64
		want PluralKeyword
	}{
		{1, KeywordOne},
		{2, KeywordFew},
		{5, KeywordMany},
	}
	for _, tc := range tests {
		if got := cardinal(tc.n); got != tc.want {
			t.Errorf("cardinal(%v) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

func TestPluralizerOverridePerLocale(t *testing.T) {
	alwaysFew := func(n float64) PluralKeyword { return KeywordFew }
	overrides := map[string]Pluralizer{
		"en": {Cardinal: alwaysFew},
	}
	cardinal, ordinal := resolvePluralizer(language.English, overrides)
	if got := cardinal(1); got != KeywordFew {
		t.Errorf("overridden cardinal(1) = %v, want %v", got, KeywordFew)
	}
	// Ordinal wasn't overridden, so it should still fall back to the
	// built-in CLDR default.
	if got := ordinal(1); got != KeywordOne {
		t.Errorf("ordinal(1) = %v, want %v (built-in default)", got, KeywordOne)
	}
}

func TestPluralizerFallsBackToPrimarySubtag(t *testing.T) {
	overrides := map[string]Pluralizer{
		"pt": {Cardinal: func(n float64) PluralKeyword { return KeywordMany }},
	}
	tag := language.MustParse("pt-BR")
	cardinal, _ := resolvePluralizer(tag, overrides)
	if got := cardinal(1); got != KeywordMany {
		t.Errorf("cardinal(1) = %v, want %v (fallback to primary subtag)", got, KeywordMany)
	}
}

func TestPluralizerUnknownLocaleDefaultsToCLDR(t *testing.T) {
	cardinal, _ := resolvePluralizer(language.Make("xx"), nil)
	if got := cardinal(1); got != KeywordOther {
		t.Errorf("cardinal(1) for unknown locale = %v, want %v", got, KeywordOther)
	}
}

func TestCanonicalNumberString(t *testing.T) {
	tests := []struct {
		n    float64
		want string
	}{
		{1, "1"},
		{1.5, "1.5"},
		{0, "0"},
	}
	for _, tc := range tests {
		if got := canonicalNumberString(tc.n); got != tc.want {
			t.Errorf("canonicalNumberString(%v) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
