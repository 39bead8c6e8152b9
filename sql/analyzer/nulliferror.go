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
	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/go-sql-rewriter/sql"
	"github.com/dolthub/go-sql-rewriter/sql/expression"
	"github.com/dolthub/go-sql-rewriter/sql/expression/function"
	"github.com/dolthub/go-sql-rewriter/sql/transform"
)

// ErrNullIfErrorHints is returned when a NULLIFERROR call carries engine
// hints. The call is lowered away, so there is nothing left to attach the
// hints to.
var ErrNullIfErrorHints = errors.NewKind("the NULLIFERROR() operator does not support hints")

// NullIfErrorRewriter lowers nulliferror(e) to iferror(e, null), with the
// null typed like e.
type NullIfErrorRewriter struct{}

var _ Rewriter = NullIfErrorRewriter{}

// Name implements the Rewriter interface.
func (NullIfErrorRewriter) Name() string {
	return "nulliferror"
}

// Rewrite implements the Rewriter interface.
func (NullIfErrorRewriter) Rewrite(ctx *sql.Context, opts *Options, node sql.Node, catalog *sql.Catalog, props *OutputProperties) (sql.Node, error) {
	builder := function.NewCallBuilder(catalog.FunctionRegistry)

	newNode, _, err := transform.Node(node, func(n sql.Node) (sql.Node, transform.TreeIdentity, error) {
		call, ok := n.(*expression.FunctionCall)
		if !ok || call.Name() != "nulliferror" || !call.Func().Builtin {
			return n, transform.SameTree, nil
		}

		if len(call.Hints()) > 0 {
			if offset := call.Offset(); offset >= 0 {
				return nil, transform.SameTree, ErrNullIfErrorHints.Wrap(sql.NewLocatedError(offset))
			}
			return nil, transform.SameTree, ErrNullIfErrorHints.New()
		}

		args := call.Arguments()
		if len(args) != 1 {
			return nil, transform.SameTree, ErrRewriteInternal.New("nulliferror call with wrong arity survived resolution")
		}
		typ := args[0].Type()
		if typ == nil {
			return nil, transform.SameTree, ErrRewriteInternal.New("nulliferror argument has no type")
		}

		replacement, err := builder.IfError(args[0], expression.NewLiteral(nil, typ))
		if err != nil {
			return nil, transform.SameTree, err
		}
		return replacement, transform.NewTree, nil
	})
	return newNode, err
}
