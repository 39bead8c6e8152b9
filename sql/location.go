// Copyright 2022 Dolthub, Inc.
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

package sql

import (
	"fmt"
	"strings"
)

// Location is a 1-based line and column position in query text.
type Location struct {
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// LocatedError carries the byte offset in the query text where an error was
// produced. It travels as the cause of an error kind, so Is checks on the
// outer kind keep working while the offset stays recoverable through
// ErrorOffset.
type LocatedError struct {
	Offset int
}

// NewLocatedError returns an error marking the given byte offset.
func NewLocatedError(offset int) *LocatedError {
	return &LocatedError{Offset: offset}
}

func (e *LocatedError) Error() string {
	return fmt.Sprintf("query offset %d", e.Offset)
}

type causer interface {
	Cause() error
}

type unwrapper interface {
	Unwrap() error
}

// ErrorOffset extracts the query byte offset attached to err, walking wrapped
// causes. ok is false when no offset is attached anywhere in the chain.
func ErrorOffset(err error) (offset int, ok bool) {
	for err != nil {
		if located, isLocated := err.(*LocatedError); isLocated {
			return located.Offset, true
		}
		switch e := err.(type) {
		case causer:
			err = e.Cause()
		case unwrapper:
			err = e.Unwrap()
		default:
			err = nil
		}
	}
	return 0, false
}

// OffsetLocation converts a byte offset into a line and column position
// within the given query text. Offsets outside the text clamp to its ends.
func OffsetLocation(query string, offset int) Location {
	if offset < 0 {
		offset = 0
	}
	if offset > len(query) {
		offset = len(query)
	}

	loc := Location{Line: 1, Column: 1}
	for _, r := range query[:offset] {
		if r == '\n' {
			loc.Line++
			loc.Column = 1
		} else {
			loc.Column++
		}
	}
	return loc
}

// QueryLine returns the text of the given 1-based line of the query, without
// its trailing newline. It returns the empty string for lines the query does
// not have.
func QueryLine(query string, line int) string {
	if line < 1 {
		return ""
	}
	lines := strings.Split(query, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}
