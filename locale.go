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
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/number"
)

// LocaleFormatter formats numbers, dates, and times under a locale and
// a style keyword. The built-in number, date, and time TypeFormatters
// in registry.go delegate to one of these, so installing a custom
// LocaleFormatter on the Formatter (Options.ValueFormatter) changes
// the rendering of all three placeholder types without touching the
// pattern grammar.
type LocaleFormatter interface {
	// FormatNumber renders value under style ("integer", "currency",
	// "percent", or "" for the default decimal style).
	FormatNumber(value float64, style string, locale language.Tag) (string, error)
	// FormatDate renders value under style ("short", "full", or ""
	// for the default medium style).
	FormatDate(value time.Time, style string, locale language.Tag) (string, error)
	// FormatTime renders value under style ("short", "medium", or ""
	// for the default short style).
	FormatTime(value time.Time, style string, locale language.Tag) (string, error)
}

// defaultLocaleFormatter is the built-in LocaleFormatter, used unless
// Options.ValueFormatter is set (and for any of the three operations
// the override declines, see overridingLocaleFormatter).
type defaultLocaleFormatter struct{}

func (defaultLocaleFormatter) FormatNumber(value float64, style string, locale language.Tag) (string, error) {
	p := message.NewPrinter(locale)
	switch style {
	case "integer":
		return p.Sprintf("%v", number.Decimal(value, number.MaxFractionDigits(0))), nil
	case "percent":
		return p.Sprintf("%v", number.Percent(value)), nil
	case "currency":
		unit, err := currency.FromTag(locale)
		if err != nil {
			unit = currency.USD
		}
		amount := unit.Amount(value)
		return p.Sprintf("%v", currency.Symbol(amount)), nil
	case "":
		return p.Sprintf("%v", number.Decimal(value)), nil
	default:
		// An arbitrary, unrecognized style string has no raw-pattern
		// engine backing it here, so it falls back to the default
		// decimal style rather than erroring.
		return p.Sprintf("%v", number.Decimal(value)), nil
	}
}

// dateLayouts and timeLayouts give a plausible default rendering per
// style keyword. These are not full CLDR date-pattern tables; callers
// needing locale-faithful date/time rendering should set
// Options.ValueFormatter.
var dateLayouts = map[string]string{
	"short": "1/2/06",
	"":      "Jan 2, 2006",
	"full":  "Monday, January 2, 2006",
}

var timeLayouts = map[string]string{
	"short":  "3:04 PM",
	"":       "3:04 PM",
	"medium": "3:04:05 PM",
}

func (defaultLocaleFormatter) FormatDate(value time.Time, style string, locale language.Tag) (string, error) {
	layout, ok := dateLayouts[style]
	if !ok {
		layout = dateLayouts[""]
	}
	return value.Format(layout), nil
}

func (defaultLocaleFormatter) FormatTime(value time.Time, style string, locale language.Tag) (string, error) {
	layout, ok := timeLayouts[style]
	if !ok {
		layout = timeLayouts[""]
	}
	return value.Format(layout), nil
}

// overridingLocaleFormatter tries a user-supplied LocaleFormatter
// first and falls back to the built-in default on error, so a caller
// can override just, say, currency formatting by returning an error
// from FormatDate/FormatTime and letting the default handle those.
type overridingLocaleFormatter struct {
	override LocaleFormatter
	fallback LocaleFormatter
}

func (o overridingLocaleFormatter) FormatNumber(value float64, style string, locale language.Tag) (string, error) {
	if o.override != nil {
		if s, err := o.override.FormatNumber(value, style, locale); err == nil {
			return s, nil
		}
	}
	return o.fallback.FormatNumber(value, style, locale)
}

func (o overridingLocaleFormatter) FormatDate(value time.Time, style string, locale language.Tag) (string, error) {
	if o.override != nil {
		if s, err := o.override.FormatDate(value, style, locale); err == nil {
			return s, nil
		}
	}
	return o.fallback.FormatDate(value, style, locale)
}

func (o overridingLocaleFormatter) FormatTime(value time.Time, style string, locale language.Tag) (string, error) {
	if o.override != nil {
		if s, err := o.override.FormatTime(value, style, locale); err == nil {
			return s, nil
		}
	}
	return o.fallback.FormatTime(value, style, locale)
}
