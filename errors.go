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

import "fmt"

// ParseError is returned when a pattern fails to parse. Offset is the
// byte index into the pattern string where the problem was detected.
type ParseError struct {
	Msg    string
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("messageformat: parse error at offset %d: %s", e.Offset, e.Msg)
}

// FormatErrorKind distinguishes the ways a format call can fail once a
// pattern has parsed successfully.
type FormatErrorKind int

const (
	// UnknownFormatter means a placeholder named a type keyword with no
	// registered formatter.
	UnknownFormatter FormatErrorKind = iota
	// MissingArgument means a placeholder or branch referenced an
	// argument name absent from the supplied Args.
	MissingArgument
	// ArgumentTypeMismatch means an argument could not be coerced to
	// the type a node required (numeric, temporal, or string).
	ArgumentTypeMismatch
	// FormatterFailure means a registered formatter's Format or
	// ParseArguments method returned an error.
	FormatterFailure
)

func (k FormatErrorKind) String() string {
	switch k {
	case UnknownFormatter:
		return "UnknownFormatter"
	case MissingArgument:
		return "MissingArgument"
	case ArgumentTypeMismatch:
		return "ArgumentTypeMismatch"
	case FormatterFailure:
		return "FormatterFailure"
	default:
		return "FormatError"
	}
}

// FormatError is returned when a parsed pattern cannot be evaluated
// against the supplied arguments and locale.
type FormatError struct {
	Kind FormatErrorKind
	Msg  string
	// Err, if non-nil, is the underlying error from a formatter or
	// coercion attempt.
	Err error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("messageformat: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("messageformat: %s: %s", e.Kind, e.Msg)
}

func (e *FormatError) Unwrap() error { return e.Err }

func missingArgument(name string) error {
	return &FormatError{Kind: MissingArgument, Msg: fmt.Sprintf("argument %q not found", name)}
}

func unknownFormatter(typ string) error {
	return &FormatError{Kind: UnknownFormatter, Msg: fmt.Sprintf("no formatter registered for type %q", typ)}
}

func argumentTypeMismatch(name string, want string, err error) error {
	return &FormatError{
		Kind: ArgumentTypeMismatch,
		Msg:  fmt.Sprintf("argument %q cannot be coerced to %s", name, want),
		Err:  err,
	}
}

func formatterFailure(typ string, err error) error {
	return &FormatError{
		Kind: FormatterFailure,
		Msg:  fmt.Sprintf("formatter %q failed", typ),
		Err:  err,
	}
}
