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
	"github.com/dolthub/go-sql-rewriter/sql/plan"
	"github.com/dolthub/go-sql-rewriter/sql/transform"
)

// FindRelevantRewriters walks a tree and returns the set of rewrites with
// at least one target construct in it. The walk is the ground truth the
// rewrite loop converges against: a rewrite stays scheduled as long as this
// finds work for it.
func FindRelevantRewriters(node sql.Node) (RewriteSet, error) {
	var kinds []RewriteKind
	if node == nil {
		return RewriteSet{}, nil
	}

	transform.Inspect(node, func(n sql.Node) bool {
		switch n := n.(type) {
		case *expression.FunctionCall:
			def := n.Func()
			if def != nil && !def.Builtin && def.Body != nil {
				kinds = append(kinds, RewriteInlineFunctions)
			}
			// Only the builtins are rewrite targets. A user function may
			// shadow the name; inlining handles it above if it has a body.
			if def != nil && def.Builtin {
				switch n.Name() {
				case "nulliferror":
					kinds = append(kinds, RewriteNullIfError)
				case "typeof":
					kinds = append(kinds, RewriteTypeof)
				}
			}
		case *expression.WithExpr:
			kinds = append(kinds, RewriteWithExpr)
		case *plan.AnonymizedAggregate:
			kinds = append(kinds, RewriteAnonymization)
		}
		return true
	})

	return NewRewriteSet(kinds...), nil
}
