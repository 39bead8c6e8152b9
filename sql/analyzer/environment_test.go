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

func TestOptionsForRewritePinsModes(t *testing.T) {
	require := require.New(t)

	opts := NewOptions()
	opts.NameResolutionMode = NameResolutionDefault
	opts.ParameterMode = ParameterModePositional
	opts.StatementContext = StatementContextModule
	opts.AllowUndeclaredParameters = true
	opts.ExpressionColumns = map[string]sql.Type{"x": types.Int64}
	opts.SetFeature(FeatureWithExpression, false)

	out := NewStatementOutput(testScan())
	derived := optionsForRewrite(opts, out, sql.NewColumnIDSequence())

	require.Equal(NameResolutionStrict, derived.NameResolutionMode)
	require.Equal(ParameterModeNamed, derived.ParameterMode)
	require.Equal(StatementContextDefault, derived.StatementContext)
	require.False(derived.AllowUndeclaredParameters)
	require.Nil(derived.ExpressionColumns)
	require.True(derived.FeatureEnabled(FeatureWithExpression))
	require.Same(out.IDPool, derived.IDPool)

	// The caller's options are left alone.
	require.Equal(NameResolutionDefault, opts.NameResolutionMode)
	require.Equal(ParameterModePositional, opts.ParameterMode)
	require.Equal(StatementContextModule, opts.StatementContext)
	require.True(opts.AllowUndeclaredParameters)
	require.NotNil(opts.ExpressionColumns)
	require.False(opts.FeatureEnabled(FeatureWithExpression))
}

func TestOptionsForRewriteKeepsCallerSequence(t *testing.T) {
	require := require.New(t)

	seq := sql.NewColumnIDSequence()
	seq.AdvancePast(40)
	opts := NewOptions()
	opts.ColumnIDSequence = seq

	out := NewStatementOutput(testScan())
	fallback := sql.NewColumnIDSequence()
	derived := optionsForRewrite(opts, out, fallback)

	require.Same(seq, derived.ColumnIDSequence)
	require.Equal(sql.ColumnID(0), fallback.Last())
	require.Equal(sql.ColumnID(41), derived.ColumnIDSequence.Next())
}

func TestOptionsForRewriteFallbackUsesMaxColumnID(t *testing.T) {
	require := require.New(t)

	out := NewStatementOutput(testScan())
	out.MaxColumnID = 50

	fallback := sql.NewColumnIDSequence()
	derived := optionsForRewrite(NewOptions(), out, fallback)

	require.Same(fallback, derived.ColumnIDSequence)
	require.Equal(sql.ColumnID(51), derived.ColumnIDSequence.Next())
}

func TestOptionsForRewriteFallbackScansTree(t *testing.T) {
	require := require.New(t)

	// MaxColumnID unset, so the fallback is advanced past the biggest id
	// anywhere in the tree, here a column reference.
	root := plan.NewProject([]sql.Expression{
		expression.NewColumnRef(9, "id", types.Int64, false),
	}, testScan())
	out := NewStatementOutput(root)

	fallback := sql.NewColumnIDSequence()
	derived := optionsForRewrite(NewOptions(), out, fallback)
	require.Equal(sql.ColumnID(10), derived.ColumnIDSequence.Next())
}

func TestMaxColumnID(t *testing.T) {
	require := require.New(t)

	require.Equal(sql.ColumnID(0), maxColumnID(nil))

	// Schema ids, reference ids and binding ids all count.
	scan := plan.NewTableScan("events", sql.Schema{
		{ID: 4, Name: "id", Type: types.Int64, Source: "events"},
	})
	require.Equal(sql.ColumnID(4), maxColumnID(scan))

	withRef := plan.NewProject([]sql.Expression{
		expression.NewColumnRef(6, "id", types.Int64, false),
	}, scan)
	require.Equal(sql.ColumnID(6), maxColumnID(withRef))

	withBinding := plan.NewProject([]sql.Expression{
		expression.NewWithExpr(
			[]expression.Binding{{
				ID:   11,
				Name: "b",
				Expr: expression.NewLiteral(int64(1), types.Int64),
			}},
			expression.NewColumnRef(11, "b", types.Int64, false),
		),
	}, scan)
	require.Equal(sql.ColumnID(11), maxColumnID(withBinding))
}
