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
	"fmt"

	"golang.org/x/text/language"
)

// formatterState is the normalized, already-parsed state a Formatter
// produces from raw style text at first use. Built-in formatters use
// formatStyle; user formatters may use any concrete type.
type formatterState interface{}

// formatStyle is the formatterState used by the built-in number, date,
// and time formatters: the style keyword, verbatim.
type formatStyle string

// TypeFormatter implements one format-type keyword. It is
// invoked by the evaluator, never by the parser: ParseArguments is
// called at most once per node (memoized on the node, see pattern.go),
// the first time that node is evaluated, so an UnknownFormatter error
// can only ever occur at evaluation time even though the resulting
// state behaves like it was parsed once up front.
type TypeFormatter interface {
	// ParseArguments normalizes the raw style text that followed the
	// type keyword in the placeholder (e.g. "short" in {d, date,
	// short}, or "" if no style was given).
	ParseArguments(styleText string) (formatterState, error)
	// Format renders value (already looked up from Args) using the
	// normalized state, the active locale, and the Formatter's
	// LocaleFormatter. The current plural `#` value and the rest of the
	// Args map are not passed to it.
	Format(state formatterState, value interface{}, locale language.Tag, lf LocaleFormatter) (string, error)
}

// Registry maps format-type keywords to Formatters. A zero Registry is
// not usable; use NewRegistry.
type Registry struct {
	formatters map[string]TypeFormatter
}

// branchingTypes are parsed structurally by parser.go and can never be
// replaced: their grammar (offset, branch keys, mandatory "other") is
// part of the core pattern grammar, not a pluggable argument format.
var branchingTypes = map[string]bool{
	"select":        true,
	"plural":        true,
	"selectordinal": true,
}

// NewRegistry returns a Registry populated with the built-in number,
// date, and time formatters.
func NewRegistry() *Registry {
	r := &Registry{formatters: make(map[string]TypeFormatter)}
	r.formatters["number"] = numberFormatter{}
	r.formatters["date"] = dateFormatter{}
	r.formatters["time"] = timeFormatter{}
	return r
}

// Register installs or replaces the formatter for typ. It returns an
// error if typ names one of the three branching types, which must
// remain built-in to preserve the pattern grammar's invariants.
func (r *Registry) Register(typ string, f TypeFormatter) error {
	if branchingTypes[typ] {
		return fmt.Errorf("messageformat: %q is a structural branching type and cannot be overridden", typ)
	}
	r.formatters[typ] = f
	return nil
}

// Formatter returns the registered formatter for typ, if any.
func (r *Registry) Formatter(typ string) (TypeFormatter, bool) {
	f, ok := r.formatters[typ]
	return f, ok
}

// --- built-in number/date/time formatters ---

type numberFormatter struct{}

func (numberFormatter) ParseArguments(styleText string) (formatterState, error) {
	return formatStyle(styleText), nil
}

func (numberFormatter) Format(state formatterState, value interface{}, locale language.Tag, lf LocaleFormatter) (string, error) {
	n, err := convertToFloat64(value)
	if err != nil {
		return "", argumentTypeMismatch("", "number", err)
	}
	s, err := lf.FormatNumber(n, string(state.(formatStyle)), locale)
	if err != nil {
		return "", formatterFailure("number", err)
	}
	return s, nil
}

type dateFormatter struct{}

func (dateFormatter) ParseArguments(styleText string) (formatterState, error) {
	return formatStyle(styleText), nil
}

func (dateFormatter) Format(state formatterState, value interface{}, locale language.Tag, lf LocaleFormatter) (string, error) {
	t, err := convertToTime(value)
	if err != nil {
		return "", argumentTypeMismatch("", "date", err)
	}
	s, err := lf.FormatDate(t, string(state.(formatStyle)), locale)
	if err != nil {
		return "", formatterFailure("date", err)
	}
	return s, nil
}

type timeFormatter struct{}

func (timeFormatter) ParseArguments(styleText string) (formatterState, error) {
	return formatStyle(styleText), nil
}

func (timeFormatter) Format(state formatterState, value interface{}, locale language.Tag, lf LocaleFormatter) (string, error) {
	t, err := convertToTime(value)
	if err != nil {
		return "", argumentTypeMismatch("", "time", err)
	}
	s, err := lf.FormatTime(t, string(state.(formatStyle)), locale)
	if err != nil {
		return "", formatterFailure("time", err)
	}
	return s, nil
}
