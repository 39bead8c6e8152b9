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
	"github.com/dolthub/go-sql-rewriter/sql/types"
)

// TypeofRewriter replaces calls to the typeof builtin with a text literal
// naming the argument's type. Resolution fixed every type already, so the
// argument itself is dropped without being evaluated.
type TypeofRewriter struct{}

var _ Rewriter = TypeofRewriter{}

// Name implements the Rewriter interface.
func (TypeofRewriter) Name() string {
	return "typeof"
}

// Rewrite implements the Rewriter interface.
func (TypeofRewriter) Rewrite(ctx *sql.Context, opts *Options, node sql.Node, catalog *sql.Catalog, props *OutputProperties) (sql.Node, error) {
	newNode, _, err := transform.Node(node, func(n sql.Node) (sql.Node, transform.TreeIdentity, error) {
		call, ok := n.(*expression.FunctionCall)
		if !ok || call.Name() != "typeof" || !call.Func().Builtin {
			return n, transform.SameTree, nil
		}

		args := call.Arguments()
		if len(args) != 1 {
			return nil, transform.SameTree, ErrRewriteInternal.New("typeof call with wrong arity survived resolution")
		}
		typ := args[0].Type()
		if typ == nil {
			return nil, transform.SameTree, ErrRewriteInternal.New("typeof argument has no type")
		}
		return expression.NewLiteral(typ.String(), types.Text), transform.NewTree, nil
	})
	return newNode, err
}
