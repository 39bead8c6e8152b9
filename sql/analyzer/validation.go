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
	"github.com/dolthub/go-sql-rewriter/sql/plan"
	"github.com/dolthub/go-sql-rewriter/sql/transform"
	"github.com/dolthub/go-sql-rewriter/sql/types"
)

// ErrInvalidPlan is returned when a rewritten tree breaks an invariant the
// resolution stage established.
var ErrInvalidPlan = errors.NewKind("invalid plan after rewrite: %s")

// Validator checks that a tree still holds the invariants resolution
// established. Rewriters are trusted during a run; validation after the run
// catches the ones that are not trustworthy.
type Validator struct {
	opts *Options
}

// NewValidator returns a validator checking trees against the given
// options.
func NewValidator(opts *Options) *Validator {
	return &Validator{opts: opts}
}

// ValidateStatement checks a statement tree.
func (v *Validator) ValidateStatement(ctx *sql.Context, statement sql.Statement) error {
	return v.validate(ctx, statement)
}

// ValidateExpression checks a standalone expression tree.
func (v *Validator) ValidateExpression(ctx *sql.Context, expr sql.Expression) error {
	return v.validate(ctx, expr)
}

func (v *Validator) validate(ctx *sql.Context, node sql.Node) error {
	if node == nil {
		return nil
	}
	if !node.Resolved() {
		return ErrInvalidPlan.New("tree contains unresolved nodes")
	}

	var err error
	transform.Inspect(node, func(n sql.Node) bool {
		if err != nil {
			return false
		}
		err = v.validateNode(n)
		return err == nil
	})
	return err
}

func (v *Validator) validateNode(n sql.Node) error {
	if e, ok := n.(sql.Expression); ok && e.Type() == nil {
		return ErrInvalidPlan.New("expression " + e.String() + " has no type")
	}

	switch n := n.(type) {
	case *plan.Filter:
		typ := n.Condition.Type()
		if typ == nil || !types.Boolean.Equals(typ) {
			return ErrInvalidPlan.New("filter condition " + n.Condition.String() + " is not boolean")
		}
	case *expression.WithExpr:
		seen := make(map[sql.ColumnID]struct{}, len(n.Bindings()))
		for _, b := range n.Bindings() {
			if b.ID == 0 {
				return ErrInvalidPlan.New("binding " + b.Name + " has no column id")
			}
			if _, dup := seen[b.ID]; dup {
				return ErrInvalidPlan.New("binding " + b.Name + " repeats a column id")
			}
			seen[b.ID] = struct{}{}
		}
	case *expression.FunctionCall:
		if err := n.Func().CheckArity(len(n.Arguments())); err != nil {
			return ErrInvalidPlan.New(err.Error())
		}
	case *expression.Parameter:
		if v.opts.AllowUndeclaredParameters {
			break
		}
		declared, ok := v.opts.Parameters[n.Name()]
		if !ok {
			return ErrInvalidPlan.New("parameter @" + n.Name() + " is not declared")
		}
		if n.Type() != nil && !declared.Equals(n.Type()) {
			return ErrInvalidPlan.New("parameter @" + n.Name() + " does not have its declared type")
		}
	}
	return nil
}

// validateOutput checks the output's root under the options rewriters ran
// with.
func validateOutput(ctx *sql.Context, env *Options, out *Output) error {
	v := NewValidator(env)
	if statement := out.Statement(); statement != nil {
		return v.ValidateStatement(ctx, statement)
	}
	if expr := out.Expression(); expr != nil {
		return v.ValidateExpression(ctx, expr)
	}
	return nil
}
