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
	"strconv"
	"time"
)

// convertToFloat64 coerces an argument value to a real number, for
// numeric placeholder, number-formatter, and plural/selectordinal
// contexts.
func convertToFloat64(x interface{}) (float64, error) {
	switch t := x.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int32:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case uint:
		return float64(t), nil
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert string %q to number: %w", t, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("cannot convert value of type %T to number", x)
	}
}

// convertToStringKey coerces an argument value to a string, for
// select branch keys. A nil select argument is simply the empty key,
// which will fall through to "other"; unlike convertToDisplayString,
// values other than strings, nil, and fmt.Stringers are rejected.
func convertToStringKey(x interface{}) (string, error) {
	switch t := x.(type) {
	case string:
		return t, nil
	case nil:
		return "", nil
	case fmt.Stringer:
		return t.String(), nil
	default:
		return "", fmt.Errorf("cannot convert value of type %T to a select key", x)
	}
}

// convertToTime coerces an argument value to an absolute instant, for
// date/time placeholder contexts.
func convertToTime(x interface{}) (time.Time, error) {
	switch t := x.(type) {
	case time.Time:
		return t, nil
	case int64:
		return time.Unix(t, 0).UTC(), nil
	case int:
		return time.Unix(int64(t), 0).UTC(), nil
	case float64:
		sec := int64(t)
		nsec := int64((t - float64(sec)) * 1e9)
		return time.Unix(sec, nsec).UTC(), nil
	case string:
		ts, err := time.Parse(time.RFC3339, t)
		if err != nil {
			return time.Time{}, fmt.Errorf("cannot parse %q as RFC 3339: %w", t, err)
		}
		return ts, nil
	default:
		return time.Time{}, fmt.Errorf("cannot convert value of type %T to a time", x)
	}
}

// convertToDisplayString renders a value the way the Variable node
// default formatting falls back to when the argument is neither
// numeric nor temporal: its plain string representation.
func convertToDisplayString(x interface{}) string {
	if x == nil {
		return ""
	}
	if s, ok := x.(string); ok {
		return s
	}
	return fmt.Sprint(x)
}

// looksNumeric reports whether x is one of the types convertToFloat64
// accepts without needing a string parse, used by the evaluator to
// decide the Variable node's default formatter.
func looksNumeric(x interface{}) bool {
	switch x.(type) {
	case float64, float32, int, int32, int64, uint:
		return true
	default:
		return false
	}
}

// looksTemporal reports whether x is a time.Time, used by the
// evaluator to decide the Variable node's default formatter.
func looksTemporal(x interface{}) bool {
	_, ok := x.(time.Time)
	return ok
}
