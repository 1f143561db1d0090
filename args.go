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

import "reflect"

// Args is the argument map a pattern is formatted against: an
// unordered, case-sensitive mapping from placeholder name to a
// dynamically-typed value. It is borrowed for the duration of one
// Format call and never retained by the evaluator.
type Args map[string]interface{}

// Get looks up name, returning (nil, false) if absent. Lookup is
// byte-for-byte case-sensitive.
func (a Args) Get(name string) (interface{}, bool) {
	v, ok := a[name]
	return v, ok
}

// ArgsFromStruct reflects the exported fields of v (a struct or
// pointer to struct) into an Args map, so callers who already have a
// typed options struct don't need to hand-build a map literal. A
// field may carry a `msgfmt:"name"` tag to rename its key;
// `msgfmt:"-"` excludes it. Non-struct values return an empty Args.
// This is a thin adapter only: the evaluator itself never does
// reflection and consumes nothing but an Args map.
func ArgsFromStruct(v interface{}) Args {
	args := make(Args)
	if v == nil {
		return args
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return args
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return args
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if field.PkgPath != "" {
			continue // unexported
		}
		name := field.Name
		if tag, ok := field.Tag.Lookup("msgfmt"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		args[name] = rv.Field(i).Interface()
	}
	return args
}
