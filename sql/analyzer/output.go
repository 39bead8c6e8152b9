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
)

// OutputProperties carries resolver-reported facts about an analyzed tree
// that rewriting consumes and maintains.
type OutputProperties struct {
	// RelevantRewrites is the set of rewrites the resolver saw constructs
	// for while building the tree. Runs with the rewrite checker disabled
	// trust this set instead of detecting from the tree.
	RelevantRewrites RewriteSet
}

// Output is the result of analyzing one statement or one standalone
// expression. Exactly one of the two roots is set.
type Output struct {
	statement  sql.Statement
	expression sql.Expression

	// Properties carries resolver-reported facts about the tree.
	Properties OutputProperties

	// MaxColumnID is the largest column id allocated for the tree. Zero
	// means unknown, in which case consumers scan the tree.
	MaxColumnID sql.ColumnID

	// IDPool interns identifier strings minted for the tree.
	IDPool *sql.IDPool

	// RuntimeInfo accumulates accounting for the runs that touched this
	// output.
	RuntimeInfo *RuntimeInfo

	// AccessedColumns lists the ids of columns the final tree references,
	// populated only under LegacyFieldsAccessed.
	AccessedColumns []sql.ColumnID
}

// NewStatementOutput returns an output rooted at a statement.
func NewStatementOutput(statement sql.Statement) *Output {
	out := &Output{statement: statement}
	out.init()
	return out
}

// NewExpressionOutput returns an output rooted at a standalone expression.
func NewExpressionOutput(expression sql.Expression) *Output {
	out := &Output{expression: expression}
	out.init()
	return out
}

// Statement returns the statement root, or nil for expression outputs.
func (o *Output) Statement() sql.Statement {
	return o.statement
}

// Expression returns the expression root, or nil for statement outputs.
func (o *Output) Expression() sql.Expression {
	return o.expression
}

// Root returns whichever root is set as a plain node, or nil when neither
// is.
func (o *Output) Root() sql.Node {
	if o.statement != nil {
		return o.statement
	}
	if o.expression != nil {
		return o.expression
	}
	return nil
}

// installRoot replaces the root with a rewritten tree, keeping the output's
// flavor. A statement output must stay a statement and an expression output
// an expression; a rewriter changing the flavor is an internal error.
func (o *Output) installRoot(node sql.Node) error {
	switch {
	case o.statement != nil:
		statement, ok := node.(sql.Statement)
		if !ok {
			return ErrRewriteInternal.New("rewritten statement is no longer a statement")
		}
		o.statement = statement
	case o.expression != nil:
		expression, ok := node.(sql.Expression)
		if !ok {
			return ErrRewriteInternal.New("rewritten expression is no longer an expression")
		}
		o.expression = expression
	default:
		return ErrRewriteInternal.New("output has no root to install over")
	}
	return nil
}

// init makes the output safe to rewrite by allocating the shared
// infrastructure its zero value leaves nil.
func (o *Output) init() {
	if o.IDPool == nil {
		o.IDPool = sql.NewIDPool()
	}
	if o.RuntimeInfo == nil {
		o.RuntimeInfo = newRuntimeInfo()
	}
}
