// Copyright 2023 Dolthub, Inc.
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
	"github.com/dolthub/go-sql-rewriter/sql"
	"github.com/dolthub/go-sql-rewriter/sql/expression"
	"github.com/dolthub/go-sql-rewriter/sql/transform"
)

// WithExprRewriter eliminates WithExpr nodes by substituting each binding's
// expression for the references to its column, front to back so later
// bindings see earlier ones already substituted. A binding referenced more
// than once gets its expression duplicated, which is sound because analyzed
// expressions are pure.
type WithExprRewriter struct{}

var _ Rewriter = WithExprRewriter{}

// Name implements the Rewriter interface.
func (WithExprRewriter) Name() string {
	return "with_expr"
}

// Rewrite implements the Rewriter interface.
func (WithExprRewriter) Rewrite(ctx *sql.Context, opts *Options, node sql.Node, catalog *sql.Catalog, props *OutputProperties) (sql.Node, error) {
	newNode, _, err := transform.Node(node, func(n sql.Node) (sql.Node, transform.TreeIdentity, error) {
		with, ok := n.(*expression.WithExpr)
		if !ok {
			return n, transform.SameTree, nil
		}

		bindings := with.Bindings()
		exprs := make([]sql.Expression, len(bindings))
		for i, b := range bindings {
			exprs[i] = b.Expr
		}

		result := with.Result()
		for i, b := range bindings {
			var err error
			for j := i + 1; j < len(exprs); j++ {
				exprs[j], err = substituteColumn(exprs[j], b.ID, exprs[i])
				if err != nil {
					return nil, transform.SameTree, err
				}
			}
			result, err = substituteColumn(result, b.ID, exprs[i])
			if err != nil {
				return nil, transform.SameTree, err
			}
		}
		return result, transform.NewTree, nil
	})
	return newNode, err
}

// substituteColumn replaces every reference to the column id inside in with
// value.
func substituteColumn(in sql.Expression, id sql.ColumnID, value sql.Expression) (sql.Expression, error) {
	out, _, err := transform.Expr(in, func(n sql.Node) (sql.Node, transform.TreeIdentity, error) {
		if ref, ok := n.(*expression.ColumnRef); ok && ref.ID() == id {
			return value, transform.NewTree, nil
		}
		return n, transform.SameTree, nil
	})
	return out, err
}
