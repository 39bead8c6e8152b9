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

// Package plan contains the statement nodes of the analyzed vocabulary.
package plan

import (
	"github.com/dolthub/go-sql-rewriter/sql"
)

// UnaryNode is a statement node with one child statement.
type UnaryNode struct {
	Child sql.Node
}

// Resolved implements sql.Node.
func (n UnaryNode) Resolved() bool {
	return n.Child.Resolved()
}

// childSchema returns the schema of the child when it is a statement.
func (n UnaryNode) childSchema() sql.Schema {
	if stmt, ok := n.Child.(sql.Statement); ok {
		return stmt.Schema()
	}
	return nil
}

func expressionsResolved(exprs ...sql.Expression) bool {
	for _, e := range exprs {
		if !e.Resolved() {
			return false
		}
	}
	return true
}

// expressionChildren appends the given expressions to a child list.
func expressionChildren(children []sql.Node, exprs []sql.Expression) []sql.Node {
	for _, e := range exprs {
		children = append(children, e)
	}
	return children
}

// expressionSlice asserts a rebuilt child sublist back into expressions.
func expressionSlice(parent sql.Node, children []sql.Node) ([]sql.Expression, error) {
	exprs := make([]sql.Expression, len(children))
	for i, child := range children {
		expr, err := sql.ExpressionChild(parent, child)
		if err != nil {
			return nil, err
		}
		exprs[i] = expr
	}
	return exprs, nil
}

func expressionStrings(exprs []sql.Expression) []string {
	strs := make([]string, len(exprs))
	for i, e := range exprs {
		strs[i] = e.String()
	}
	return strs
}
