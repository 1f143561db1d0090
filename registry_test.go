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
	"strings"
	"testing"

	"golang.org/x/text/language"
)

// upperFormatter is a minimal custom TypeFormatter used to exercise
// RegisterFormatter / Registry.Register from tests.
type upperFormatter struct{}

func (upperFormatter) ParseArguments(styleText string) (formatterState, error) {
	return formatStyle(styleText), nil
}

func (upperFormatter) Format(state formatterState, value interface{}, locale language.Tag, lf LocaleFormatter) (string, error) {
	return strings.ToUpper(convertToDisplayString(value)), nil
}

func TestRegistryBuiltins(t *testing.T) {
	r := NewRegistry()
	for _, typ := range []string{"number", "date", "time"} {
		if _, ok := r.Formatter(typ); !ok {
			t.Errorf("Formatter(%q) missing from new registry", typ)
		}
	}
}

func TestRegistryRefusesBranchingTypes(t *testing.T) {
	r := NewRegistry()
	for _, typ := range []string{"select", "plural", "selectordinal"} {
		if err := r.Register(typ, upperFormatter{}); err == nil {
			t.Errorf("Register(%q, ...) succeeded, want error", typ)
		}
	}
}

func TestRegistryReplacesBuiltin(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("number", upperFormatter{}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	f, ok := r.Formatter("number")
	if !ok {
		t.Fatal("Formatter(\"number\") not found after replace")
	}
	if _, ok := f.(upperFormatter); !ok {
		t.Errorf("Formatter(\"number\") = %T, want upperFormatter", f)
	}
}

func TestRegistryUnknownType(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Formatter("duration"); ok {
		t.Error("Formatter(\"duration\") found in a fresh registry, want not found")
	}
}
