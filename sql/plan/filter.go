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

package plan

import (
	"github.com/dolthub/go-sql-rewriter/sql"
)

// Filter skips rows of its child that do not match the condition.
type Filter struct {
	UnaryNode
	Condition sql.Expression
}

var _ sql.Statement = (*Filter)(nil)

// NewFilter creates a new filter node.
func NewFilter(condition sql.Expression, child sql.Node) *Filter {
	return &Filter{
		UnaryNode: UnaryNode{Child: child},
		Condition: condition,
	}
}

// Resolved implements sql.Node.
func (f *Filter) Resolved() bool {
	return f.UnaryNode.Resolved() && f.Condition.Resolved()
}

// Schema implements sql.Statement.
func (f *Filter) Schema() sql.Schema {
	return f.childSchema()
}

// Children implements sql.Node. The first child is the input statement, the
// second is the condition.
func (f *Filter) Children() []sql.Node {
	return []sql.Node{f.Child, f.Condition}
}

// WithChildren implements sql.Node.
func (f *Filter) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(f, len(children), 2)
	}

	condition, err := sql.ExpressionChild(f, children[1])
	if err != nil {
		return nil, err
	}
	return NewFilter(condition, children[0]), nil
}

func (f *Filter) String() string {
	tp := sql.NewTreePrinter()
	_ = tp.WriteNode("Filter(%s)", f.Condition)
	_ = tp.WriteChildren(f.Child.String())
	return tp.String()
}
