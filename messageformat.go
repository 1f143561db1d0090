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

// Package messageformat implements the ICU MessageFormat
// string-formatting language: given a pattern template and a bag of
// named arguments, it produces a rendered string in which variable
// placeholders, select/plural/selectordinal branches, and typed value
// formatters have been resolved against the supplied data and a
// locale.
package messageformat // import "github.com/locaxis/messageformat"

import (
	"fmt"

	"golang.org/x/text/language"
)

// TraceFunc, if set on Options, is called with one event name and a
// handful of loosely-typed fields when a Format call fails: the
// events are "parse_error" and "format_error". See cmd/msgfmt for a
// log/slog-backed implementation.
type TraceFunc func(event string, fields ...interface{})

// Options configures a Formatter at construction.
type Options struct {
	// UseCache enables the pattern cache. Caching is
	// opt-in: a Formatter with UseCache false reparses every pattern
	// on every Format call.
	UseCache bool

	// Locale is the default BCP 47 locale tag used when Format is
	// called without one (see FormatLocale). Empty defaults to "en".
	Locale string

	// ValueFormatter, if set, is tried before the built-in number,
	// date, and time formatting for every typed placeholder and for
	// '#' substitution; a returned error falls through to the
	// built-in formatter.
	ValueFormatter LocaleFormatter

	// Trace, if non-nil, receives diagnostic events. Optional.
	Trace TraceFunc
}

// Formatter is the facade binding the pattern parser, evaluator,
// plural rule tables, formatter registry, and pattern cache together.
// The zero value is not usable; construct with New.
type Formatter struct {
	useCache bool
	locale   language.Tag
	lf       LocaleFormatter
	trace    TraceFunc

	registry *Registry
	cache    *patternCache // nil if UseCache is false

	// Pluralizers is a mutable mapping from locale tag to per-locale
	// cardinal/ordinal rule overrides. Safe to mutate before concurrent
	// Format calls begin; mutation concurrent with formatting is
	// undefined.
	Pluralizers map[string]Pluralizer
}

// New constructs a Formatter from opts.
func New(opts Options) *Formatter {
	locale := language.English
	if opts.Locale != "" {
		if tag, err := language.Parse(opts.Locale); err == nil {
			locale = tag
		}
	}
	f := &Formatter{
		useCache:    opts.UseCache,
		locale:      locale,
		lf:          defaultLocaleFormatter{},
		trace:       opts.Trace,
		registry:    NewRegistry(),
		Pluralizers: make(map[string]Pluralizer),
	}
	if opts.ValueFormatter != nil {
		f.lf = overridingLocaleFormatter{override: opts.ValueFormatter, fallback: defaultLocaleFormatter{}}
	}
	if opts.UseCache {
		f.cache = &patternCache{}
	}
	return f
}

// RegisterFormatter installs or replaces the TypeFormatter for typ
// (e.g. a "duration" type, or a replacement "number" formatter). It
// refuses to replace the structural select/plural/selectordinal types.
func (f *Formatter) RegisterFormatter(typ string, formatter TypeFormatter) error {
	return f.registry.Register(typ, formatter)
}

// Format parses pattern (using the cache if enabled) and evaluates it
// against args under the Formatter's default locale.
func (f *Formatter) Format(pattern string, args Args) (string, error) {
	return f.FormatLocale(pattern, args, "")
}

// FormatLocale is like Format but selects the locale explicitly; an
// empty localeTag uses the Formatter's default locale.
func (f *Formatter) FormatLocale(src string, args Args, localeTag string) (string, error) {
	locale := f.locale
	if localeTag != "" {
		tag, err := language.Parse(localeTag)
		if err != nil {
			return "", fmt.Errorf("messageformat: invalid locale %q: %w", localeTag, err)
		}
		locale = tag
	}

	p, err := f.parsePattern(src)
	if err != nil {
		return "", err
	}

	cardinal, ordinal := resolvePluralizer(locale, f.Pluralizers)
	e := &evaluator{
		args:     args,
		locale:   locale,
		registry: f.registry,
		lf:       f.lf,
		cardinal: cardinal,
		ordinal:  ordinal,
	}
	out, err := e.eval(p, nil)
	if err != nil {
		f.tracef("format_error", "pattern", src, "err", err)
		return "", err
	}
	return out, nil
}

func (f *Formatter) parsePattern(src string) (*pattern, error) {
	if f.cache == nil {
		p, err := parse(src)
		if err != nil {
			f.tracef("parse_error", "pattern", src, "err", err)
			return nil, err
		}
		return p, nil
	}
	p, err := f.cache.get(src, parse)
	if err != nil {
		f.tracef("parse_error", "pattern", src, "err", err)
		return nil, err
	}
	return p, nil
}

func (f *Formatter) tracef(event string, fields ...interface{}) {
	if f.trace != nil {
		f.trace(event, fields...)
	}
}
