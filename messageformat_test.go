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

	"github.com/google/go-cmp/cmp"
)

// Seed scenarios: representative patterns and expected output, all
// formatted by one shared default-configured Formatter.
func TestSeedScenarios(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		args    Args
		want    string
	}{
		{
			"simple variable",
			"Hello, {name}!",
			Args{"name": "Jeff"},
			"Hello, Jeff!",
		},
		{
			"plural no items",
			"You have {n, plural, =0 {no items} one {one item} other {# items}}.",
			Args{"n": 0},
			"You have no items.",
		},
		{
			"plural one item",
			"You have {n, plural, =0 {no items} one {one item} other {# items}}.",
			Args{"n": 1},
			"You have one item.",
		},
		{
			"plural many items",
			"You have {n, plural, =0 {no items} one {one item} other {# items}}.",
			Args{"n": 42},
			"You have 42 items.",
		},
		{
			"select female",
			"{g, select, male{He} female{She} other{They}} likes it.",
			Args{"g": "female"},
			"She likes it.",
		},
		{
			"select fallback to other",
			"{g, select, male{He} female{She} other{They}} likes it.",
			Args{"g": "xx"},
			"They likes it.",
		},
		{
			"quoted segment is inert",
			"Arg: '{escaped}' and {real}",
			Args{"real": "X"},
			"Arg: {escaped} and X",
		},
		{
			"apostrophe escaping",
			"It's '{a}' test: ''",
			Args{},
			"It's {a} test: '",
		},
		{
			"offset applied to hash, one branch",
			"{n, plural, offset:1 one{#st} other{# more}}",
			Args{"n": 1},
			"0st",
		},
		{
			"offset applied to hash, other branch",
			"{n, plural, offset:1 one{#st} other{# more}}",
			Args{"n": 3},
			"2 more",
		},
	}

	f := New(Options{})
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := f.Format(tc.pattern, tc.args)
			if err != nil {
				t.Fatalf("Format(%q): %v", tc.pattern, err)
			}
			if got != tc.want {
				t.Errorf("Format(%q) = %q, want %q", tc.pattern, got, tc.want)
			}
		})
	}
}

// Parse idempotence: parsing the same pattern twice yields
// structurally equal trees, and formatting via the cache equals
// formatting without it.
func TestParseIdempotence(t *testing.T) {
	const pattern = "{n, plural, offset:1 =0{none} one{#st} other{# more}}"

	p1, err := parse(pattern)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	p2, err := parse(pattern)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff(p1, p2, cmp.AllowUnexported(pattern{}, node{}, branchNode{}, branch{})); diff != "" {
		t.Errorf("two parses of the same pattern differ:\n%s", diff)
	}

	cached := New(Options{UseCache: true})
	uncached := New(Options{UseCache: false})
	for _, n := range []float64{0, 1, 5} {
		want, err := uncached.Format(pattern, Args{"n": n})
		if err != nil {
			t.Fatalf("uncached Format(n=%v): %v", n, err)
		}
		got, err := cached.Format(pattern, Args{"n": n})
		if err != nil {
			t.Fatalf("cached Format(n=%v): %v", n, err)
		}
		if got != want {
			t.Errorf("cached Format(n=%v) = %q, want %q", n, got, want)
		}
	}
}

// Whitespace inserted only between structural tokens must not change
// the formatted result.
func TestWhitespaceTolerance(t *testing.T) {
	tight := "{n,plural,=0{none}one{#st}other{# more}}"
	loose := "{ n , plural , =0 {none} one {#st} other {# more} }"

	f := New(Options{})
	for _, n := range []float64{0, 1, 5} {
		want, err := f.Format(tight, Args{"n": n})
		if err != nil {
			t.Fatalf("Format(tight, n=%v): %v", n, err)
		}
		got, err := f.Format(loose, Args{"n": n})
		if err != nil {
			t.Fatalf("Format(loose, n=%v): %v", n, err)
		}
		if got != want {
			t.Errorf("Format(loose, n=%v) = %q, want %q (from tight pattern)", n, got, want)
		}
	}
}

func TestFormatLocaleSelectsPluralRules(t *testing.T) {
	f := New(Options{Locale: "en"})
	pattern := "{n, plural, one{# one} few{# few} many{# many} other{# other}}"

	gotEn, err := f.FormatLocale(pattern, Args{"n": 2}, "en")
	if err != nil {
		t.Fatalf("FormatLocale en: %v", err)
	}
	gotPl, err := f.FormatLocale(pattern, Args{"n": 2}, "pl")
	if err != nil {
		t.Fatalf("FormatLocale pl: %v", err)
	}
	// English has no "few" category, so n=2 resolves to "other" under
	// en but "few" under pl.
	if want := "2 other"; gotEn != want {
		t.Errorf("gotEn = %q, want %q", gotEn, want)
	}
	if want := "2 few"; gotPl != want {
		t.Errorf("gotPl = %q, want %q", gotPl, want)
	}
}

func TestFormatInvalidLocaleTag(t *testing.T) {
	f := New(Options{})
	_, err := f.FormatLocale("{n}", Args{"n": 1}, "not a valid tag!!")
	if err == nil {
		t.Error("FormatLocale with a malformed locale tag succeeded, want error")
	}
}
