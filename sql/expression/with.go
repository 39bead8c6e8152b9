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

package expression

import (
	"fmt"
	"strings"

	"github.com/dolthub/go-sql-rewriter/sql"
)

// Binding assigns the value of an expression to a fresh column inside a
// WithExpr.
type Binding struct {
	ID   sql.ColumnID
	Name string
	Expr sql.Expression
}

// WithExpr evaluates its bindings in order and then its result expression,
// which can reference the bound columns by id. Bindings later in the list
// may reference earlier ones.
type WithExpr struct {
	bindings []Binding
	result   sql.Expression
}

var _ sql.Expression = (*WithExpr)(nil)

// NewWithExpr creates a WithExpr with the given bindings and result
// expression.
func NewWithExpr(bindings []Binding, result sql.Expression) *WithExpr {
	return &WithExpr{bindings: bindings, result: result}
}

// Bindings returns the bindings in evaluation order.
func (w *WithExpr) Bindings() []Binding {
	return w.bindings
}

// Result returns the result expression.
func (w *WithExpr) Result() sql.Expression {
	return w.result
}

// Resolved implements sql.Node.
func (w *WithExpr) Resolved() bool {
	for _, b := range w.bindings {
		if b.ID == 0 || !b.Expr.Resolved() {
			return false
		}
	}
	return w.result.Resolved()
}

// Type implements sql.Expression.
func (w *WithExpr) Type() sql.Type {
	return w.result.Type()
}

// IsNullable implements sql.Expression.
func (w *WithExpr) IsNullable() bool {
	return w.result.IsNullable()
}

// Children implements sql.Node. The children are the binding expressions in
// evaluation order followed by the result expression.
func (w *WithExpr) Children() []sql.Node {
	children := make([]sql.Node, 0, len(w.bindings)+1)
	for _, b := range w.bindings {
		children = append(children, b.Expr)
	}
	return append(children, w.result)
}

// WithChildren implements sql.Node.
func (w *WithExpr) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != len(w.bindings)+1 {
		return nil, sql.ErrInvalidChildrenNumber.New(w, len(children), len(w.bindings)+1)
	}

	bindings := make([]Binding, len(w.bindings))
	for i, b := range w.bindings {
		expr, err := sql.ExpressionChild(w, children[i])
		if err != nil {
			return nil, err
		}
		bindings[i] = Binding{ID: b.ID, Name: b.Name, Expr: expr}
	}

	result, err := sql.ExpressionChild(w, children[len(children)-1])
	if err != nil {
		return nil, err
	}
	return NewWithExpr(bindings, result), nil
}

func (w *WithExpr) String() string {
	bindings := make([]string, len(w.bindings))
	for i, b := range w.bindings {
		bindings[i] = fmt.Sprintf("%s#%d := %s", b.Name, b.ID, b.Expr)
	}
	return fmt.Sprintf("with(%s; %s)", strings.Join(bindings, ", "), w.result)
}
