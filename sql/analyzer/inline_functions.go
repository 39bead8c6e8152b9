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

// InlineFunctionsRewriter replaces calls to SQL defined functions with
// their analyzed bodies. Each argument value is bound to a fresh column and
// the body's argument references become references to those columns, so an
// argument is evaluated once no matter how often the body mentions it.
//
// Bodies may call other SQL defined functions. Those calls are left in the
// inlined body and picked up by a later pass, so a chain of functions
// converges in as many passes as it is deep.
type InlineFunctionsRewriter struct{}

var _ Rewriter = InlineFunctionsRewriter{}

// Name implements the Rewriter interface.
func (InlineFunctionsRewriter) Name() string {
	return "inline_functions"
}

// Rewrite implements the Rewriter interface.
func (InlineFunctionsRewriter) Rewrite(ctx *sql.Context, opts *Options, node sql.Node, catalog *sql.Catalog, props *OutputProperties) (sql.Node, error) {
	newNode, _, err := transform.Node(node, func(n sql.Node) (sql.Node, transform.TreeIdentity, error) {
		call, ok := n.(*expression.FunctionCall)
		if !ok {
			return n, transform.SameTree, nil
		}
		def := call.Func()
		if def == nil || def.Builtin || def.Body == nil {
			return n, transform.SameTree, nil
		}

		inlined, err := inlineCall(opts, call)
		if err != nil {
			return nil, transform.SameTree, err
		}
		return inlined, transform.NewTree, nil
	})
	return newNode, err
}

// inlineCall builds the replacement for one call site.
func inlineCall(opts *Options, call *expression.FunctionCall) (sql.Expression, error) {
	def := call.Func()
	args := call.Arguments()
	if len(args) != len(def.ArgNames) {
		return nil, ErrRewriteInternal.New("call to " + def.Name + " with wrong arity survived resolution")
	}
	if opts.ColumnIDSequence == nil {
		return nil, ErrRewriteInternal.New("inlining needs a column id sequence")
	}

	bindings := make([]expression.Binding, len(args))
	refs := make(map[string]*expression.ColumnRef, len(args))
	for i, arg := range args {
		var declared sql.Type
		if i < len(def.ArgTypes) {
			declared = def.ArgTypes[i]
		}

		value := arg
		if declared != nil {
			value = coerceLiteral(value, declared)
		}
		typ := value.Type()
		if declared != nil {
			typ = declared
		}

		id := opts.ColumnIDSequence.Next()
		name := opts.intern("$inline_" + def.ArgNames[i])
		bindings[i] = expression.Binding{ID: id, Name: name, Expr: value}
		refs[def.ArgNames[i]] = expression.NewColumnRef(id, name, typ, value.IsNullable())
	}

	// Bodies are shared between call sites, so the substitution must leave
	// def.Body itself untouched. The copy on write transform guarantees it.
	body, _, err := transform.Expr(def.Body, func(n sql.Node) (sql.Node, transform.TreeIdentity, error) {
		argRef, ok := n.(*expression.ArgumentRef)
		if !ok {
			return n, transform.SameTree, nil
		}
		ref, ok := refs[argRef.Name()]
		if !ok {
			return nil, transform.SameTree, ErrRewriteInternal.New("body of " + def.Name + " references unknown argument " + argRef.Name())
		}
		return ref, transform.NewTree, nil
	})
	if err != nil {
		return nil, err
	}

	if len(bindings) == 0 {
		return body, nil
	}
	return expression.NewWithExpr(bindings, body), nil
}

// coerceLiteral converts a literal to the declared argument type when the
// two differ. Other expressions keep their own type, the engine coerces
// them at evaluation time.
func coerceLiteral(e sql.Expression, declared sql.Type) sql.Expression {
	lit, ok := e.(*expression.Literal)
	if !ok || lit.Value() == nil {
		return e
	}
	if lit.Type() != nil && declared.Equals(lit.Type()) {
		return e
	}
	converted, err := declared.Convert(lit.Value())
	if err != nil {
		return e
	}
	return expression.NewLiteral(converted, declared)
}
