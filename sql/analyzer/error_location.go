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

package analyzer

import (
	"fmt"
	"strings"

	"github.com/dolthub/go-sql-rewriter/sql"
)

// ErrorFormat selects how query locations attached to errors are rendered
// by the rewrite entry points.
type ErrorFormat byte

const (
	// ErrorFormatPayload returns errors unchanged. The offset stays
	// recoverable through sql.ErrorOffset and kind checks keep working.
	ErrorFormatPayload ErrorFormat = iota
	// ErrorFormatOneLine appends " [at line:column]" to the message.
	ErrorFormatOneLine
	// ErrorFormatMultiLineWithCaret adds the offending query line and a
	// caret under the offending column.
	ErrorFormatMultiLineWithCaret
)

// convertErrorLocation renders the query offset attached to err according
// to the given format. Errors with no attached offset pass through
// unchanged, as does everything under ErrorFormatPayload.
//
// The one line and caret formats produce plain text for humans. They flatten
// the error to its message, so callers that branch on error kinds should use
// the payload format.
func convertErrorLocation(query string, format ErrorFormat, err error) error {
	if err == nil {
		return nil
	}
	offset, ok := sql.ErrorOffset(err)
	if !ok || format == ErrorFormatPayload {
		return err
	}

	loc := sql.OffsetLocation(query, offset)
	msg := strings.TrimSuffix(err.Error(), fmt.Sprintf(": query offset %d", offset))

	switch format {
	case ErrorFormatOneLine:
		return fmt.Errorf("%s [at %s]", msg, loc)
	case ErrorFormatMultiLineWithCaret:
		line := sql.QueryLine(query, loc.Line)
		caret := strings.Repeat(" ", loc.Column-1) + "^"
		return fmt.Errorf("%s [at %s]\n%s\n%s", msg, loc, line, caret)
	default:
		return err
	}
}
