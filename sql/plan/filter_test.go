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

package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-sql-rewriter/sql"
	"github.com/dolthub/go-sql-rewriter/sql/expression"
	"github.com/dolthub/go-sql-rewriter/sql/types"
)

// geCondition builds total >= 25 without going through a catalog.
func geCondition() *expression.FunctionCall {
	def := &sql.FunctionDef{
		Name:       "$greater_or_equal",
		Builtin:    true,
		ArgTypes:   []sql.Type{nil, nil},
		ReturnType: types.Boolean,
	}
	return expression.NewFunctionCall(def,
		expression.NewColumnRef(1, "total", types.Int64, false),
		expression.NewLiteral(int64(25), types.Int64),
	)
}

func TestFilterChildren(t *testing.T) {
	require := require.New(t)

	scan := salesScan()
	cond := geCondition()
	filter := NewFilter(cond, scan)

	children := filter.Children()
	require.Len(children, 2)
	require.Same(scan, children[0])
	require.Same(cond, children[1])
	require.True(filter.Resolved())
}

func TestFilterSchema(t *testing.T) {
	require := require.New(t)

	// A filter drops rows, not columns.
	scan := salesScan()
	filter := NewFilter(geCondition(), scan)
	require.Equal(scan.Schema(), filter.Schema())
}

func TestFilterWithChildren(t *testing.T) {
	require := require.New(t)

	scan := salesScan()
	filter := NewFilter(geCondition(), scan)

	replacement := geCondition()
	rebuilt, err := filter.WithChildren(scan, replacement)
	require.NoError(err)

	nf, ok := rebuilt.(*Filter)
	require.True(ok)
	require.Same(scan, nf.Child)
	require.Same(replacement, nf.Condition)

	_, err = filter.WithChildren(scan)
	require.True(sql.ErrInvalidChildrenNumber.Is(err))

	// The condition slot only takes expressions.
	_, err = filter.WithChildren(scan, salesScan())
	require.True(sql.ErrInvalidChildType.Is(err))
}

func TestFilterString(t *testing.T) {
	require := require.New(t)

	filter := NewFilter(geCondition(), NewProject(
		[]sql.Expression{expression.NewColumnRef(1, "total", types.Int64, false)},
		salesScan(),
	))

	require.Equal(
		"Filter($greater_or_equal(total#1, 25))\n"+
			" └─ Project(total#1)\n"+
			"     └─ TableScan(sales)\n",
		filter.String())
}
