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

package sql_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/go-sql-rewriter/sql"
)

func TestErrorOffset(t *testing.T) {
	require := require.New(t)

	located := sql.NewLocatedError(7)
	offset, ok := sql.ErrorOffset(located)
	require.True(ok)
	require.Equal(7, offset)

	// Through an error kind wrapping.
	kind := errors.NewKind("operator does not support hints")
	offset, ok = sql.ErrorOffset(kind.Wrap(located))
	require.True(ok)
	require.Equal(7, offset)

	// Through fmt wrapping.
	offset, ok = sql.ErrorOffset(fmt.Errorf("while lowering: %w", located))
	require.True(ok)
	require.Equal(7, offset)

	// No offset anywhere.
	_, ok = sql.ErrorOffset(kind.New())
	require.False(ok)
	_, ok = sql.ErrorOffset(nil)
	require.False(ok)
}

func TestOffsetLocation(t *testing.T) {
	require := require.New(t)

	query := "SELECT a,\n typeof(b)\nFROM t"

	require.Equal(sql.Location{Line: 1, Column: 1}, sql.OffsetLocation(query, 0))
	require.Equal(sql.Location{Line: 1, Column: 8}, sql.OffsetLocation(query, 7))
	require.Equal(sql.Location{Line: 2, Column: 1}, sql.OffsetLocation(query, 10))
	require.Equal(sql.Location{Line: 2, Column: 2}, sql.OffsetLocation(query, 11))
	require.Equal(sql.Location{Line: 3, Column: 1}, sql.OffsetLocation(query, 21))

	// Clamped at both ends.
	require.Equal(sql.Location{Line: 1, Column: 1}, sql.OffsetLocation(query, -5))
	require.Equal(sql.Location{Line: 3, Column: 7}, sql.OffsetLocation(query, 1000))

	require.Equal("2:2", sql.OffsetLocation(query, 11).String())
}

func TestQueryLine(t *testing.T) {
	require := require.New(t)

	query := "SELECT a,\n typeof(b)\nFROM t"
	require.Equal("SELECT a,", sql.QueryLine(query, 1))
	require.Equal(" typeof(b)", sql.QueryLine(query, 2))
	require.Equal("FROM t", sql.QueryLine(query, 3))
	require.Equal("", sql.QueryLine(query, 0))
	require.Equal("", sql.QueryLine(query, 4))
}
