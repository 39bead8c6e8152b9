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
	"github.com/dolthub/go-sql-rewriter/sql"

	"github.com/dolthub/go-sql-rewriter/sql/expression"
	"github.com/dolthub/go-sql-rewriter/sql/transform"
)

// optionsForRewrite derives the options rewriters run under from the
// caller's options. The derived options pin down every mode a rewriter's
// output could otherwise depend on: names resolve strictly, parameters are
// named and must be declared, and WITH expressions are available because
// several rewriters build them.
//
// The caller's options are never modified. When the caller supplies no
// column id sequence, the fallback sequence is advanced past every id the
// output already uses and installed instead; fallback must outlive the
// derived options.
func optionsForRewrite(opts *Options, out *Output, fallback *sql.ColumnIDSequence) *Options {
	derived := opts.Copy()

	derived.NameResolutionMode = NameResolutionStrict
	derived.SetFeature(FeatureWithExpression, true)
	derived.AllowUndeclaredParameters = false
	derived.ParameterMode = ParameterModeNamed
	derived.StatementContext = StatementContextDefault
	derived.IDPool = out.IDPool
	derived.ExpressionColumns = nil

	if derived.ColumnIDSequence == nil {
		maxID := out.MaxColumnID
		if maxID == 0 {
			maxID = maxColumnID(out.Root())
		}
		fallback.AdvancePast(maxID)
		derived.ColumnIDSequence = fallback
	}

	return derived
}

// maxColumnID returns the largest column id referenced anywhere in the
// tree, or zero for a tree with no columns.
func maxColumnID(node sql.Node) sql.ColumnID {
	var max sql.ColumnID
	if node == nil {
		return max
	}

	transform.Inspect(node, func(n sql.Node) bool {
		switch n := n.(type) {
		case *expression.ColumnRef:
			if n.ID() > max {
				max = n.ID()
			}
		case *expression.WithExpr:
			for _, binding := range n.Bindings() {
				if binding.ID > max {
					max = binding.ID
				}
			}
		case sql.Statement:
			for _, col := range n.Schema() {
				if col.ID > max {
					max = col.ID
				}
			}
		}
		return true
	})
	return max
}
