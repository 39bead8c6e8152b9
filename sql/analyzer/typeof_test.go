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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-sql-rewriter/sql"
	"github.com/dolthub/go-sql-rewriter/sql/expression"
	"github.com/dolthub/go-sql-rewriter/sql/plan"
	"github.com/dolthub/go-sql-rewriter/sql/types"
)

func runTypeof(t *testing.T, catalog *sql.Catalog, node sql.Node) (sql.Node, error) {
	t.Helper()
	return TypeofRewriter{}.Rewrite(
		testContext(""), NewOptions(), node, catalog, &OutputProperties{})
}

func TestTypeofBecomesTypeNameLiteral(t *testing.T) {
	testCases := []struct {
		arg  sql.Expression
		want string
	}{
		{expression.NewColumnRef(1, "id", types.Int64, false), "INT64"},
		{expression.NewColumnRef(2, "city", types.Text, true), "TEXT"},
		{expression.NewLiteral(1.5, types.Float64), "FLOAT64"},
		{expression.NewLiteral(true, types.Boolean), "BOOL"},
	}

	for _, tt := range testCases {
		t.Run(tt.want, func(t *testing.T) {
			require := require.New(t)

			catalog := testCatalog()
			node := plan.NewProject([]sql.Expression{
				mustCall(t, catalog, "typeof", tt.arg),
			}, testScan())

			rewritten, err := runTypeof(t, catalog, node)
			require.NoError(err)

			lit, ok := rewritten.(*plan.Project).Projections[0].(*expression.Literal)
			require.True(ok, "typeof should lower to a literal")
			require.Equal(tt.want, lit.Value())
			require.True(types.Text.Equals(lit.Type()))
		})
	}
}

func TestTypeofDropsItsArgument(t *testing.T) {
	require := require.New(t)

	// typeof(typeof(id)): the inner call is visited first, so the outer call
	// sees a text literal and the whole thing lowers in a single invocation.
	catalog := testCatalog()
	node := plan.NewProject([]sql.Expression{
		mustCall(t, catalog, "typeof",
			mustCall(t, catalog, "typeof",
				expression.NewColumnRef(1, "id", types.Int64, false))),
	}, testScan())

	rewritten, err := runTypeof(t, catalog, node)
	require.NoError(err)

	lit, ok := rewritten.(*plan.Project).Projections[0].(*expression.Literal)
	require.True(ok)
	require.Equal("TEXT", lit.Value())
}

func TestTypeofSkipsShadowingFunctions(t *testing.T) {
	require := require.New(t)

	catalog := testCatalog()
	def := &sql.FunctionDef{
		Name:       "typeof",
		ArgTypes:   []sql.Type{nil},
		ReturnType: types.Text,
	}
	node := plan.NewProject([]sql.Expression{
		expression.NewFunctionCall(def, expression.NewColumnRef(1, "id", types.Int64, false)),
	}, testScan())

	rewritten, err := runTypeof(t, catalog, node)
	require.NoError(err)
	require.Same(node, rewritten)
}

func TestTypeofUntypedArgument(t *testing.T) {
	require := require.New(t)

	catalog := testCatalog()
	node := plan.NewProject([]sql.Expression{
		mustCall(t, catalog, "typeof", expression.NewLiteral("x", nil)),
	}, testScan())

	_, err := runTypeof(t, catalog, node)
	require.Error(err)
	require.True(ErrRewriteInternal.Is(err))
	require.Contains(err.Error(), "no type")
}
