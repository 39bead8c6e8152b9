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
	"strings"

	"github.com/dolthub/go-sql-rewriter/sql"
)

// Aggregate groups the rows of its child by the grouping expressions and
// computes the aggregation expressions over each group.
type Aggregate struct {
	UnaryNode
	Aggregations []sql.Expression
	Groupings    []sql.Expression
}

var _ sql.Statement = (*Aggregate)(nil)

// NewAggregate creates an aggregation over the child.
func NewAggregate(aggregations, groupings []sql.Expression, child sql.Node) *Aggregate {
	return &Aggregate{
		UnaryNode:    UnaryNode{Child: child},
		Aggregations: aggregations,
		Groupings:    groupings,
	}
}

// Resolved implements sql.Node.
func (a *Aggregate) Resolved() bool {
	return a.UnaryNode.Resolved() &&
		expressionsResolved(a.Aggregations...) &&
		expressionsResolved(a.Groupings...)
}

// Schema implements sql.Statement.
func (a *Aggregate) Schema() sql.Schema {
	schema := make(sql.Schema, len(a.Aggregations))
	for i, e := range a.Aggregations {
		schema[i] = schemaColumn(e)
	}
	return schema
}

// Children implements sql.Node. The first child is the input statement,
// followed by the grouping expressions, then the aggregation expressions.
func (a *Aggregate) Children() []sql.Node {
	children := expressionChildren([]sql.Node{a.Child}, a.Groupings)
	return expressionChildren(children, a.Aggregations)
}

// WithChildren implements sql.Node.
func (a *Aggregate) WithChildren(children ...sql.Node) (sql.Node, error) {
	want := 1 + len(a.Groupings) + len(a.Aggregations)
	if len(children) != want {
		return nil, sql.ErrInvalidChildrenNumber.New(a, len(children), want)
	}

	groupings, err := expressionSlice(a, children[1:1+len(a.Groupings)])
	if err != nil {
		return nil, err
	}
	aggregations, err := expressionSlice(a, children[1+len(a.Groupings):])
	if err != nil {
		return nil, err
	}
	return NewAggregate(aggregations, groupings, children[0]), nil
}

func (a *Aggregate) String() string {
	tp := sql.NewTreePrinter()
	_ = tp.WriteNode("Aggregate(%s, group by %s)",
		strings.Join(expressionStrings(a.Aggregations), ", "),
		strings.Join(expressionStrings(a.Groupings), ", "))
	_ = tp.WriteChildren(a.Child.String())
	return tp.String()
}
