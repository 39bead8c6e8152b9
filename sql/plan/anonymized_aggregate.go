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

package plan

import (
	"strings"

	"github.com/dolthub/go-sql-rewriter/sql"
)

// AnonymizedAggregate is an aggregation whose per group results must not
// reveal individual rows. The anonymization lowering adds noise to its
// aggregations and a group size threshold above it, but the node itself
// survives the rewrite so engines can see the anonymization boundary.
type AnonymizedAggregate struct {
	UnaryNode
	Aggregations []sql.Expression
	Groupings    []sql.Expression
	// Epsilon is the differential privacy budget for the whole aggregation.
	Epsilon float64
	// KThreshold is the minimum number of contributing rows a group needs to
	// be reported at all.
	KThreshold int64
}

var _ sql.Statement = (*AnonymizedAggregate)(nil)

// NewAnonymizedAggregate creates an anonymized aggregation over the child.
func NewAnonymizedAggregate(aggregations, groupings []sql.Expression, child sql.Node, epsilon float64, kThreshold int64) *AnonymizedAggregate {
	return &AnonymizedAggregate{
		UnaryNode:    UnaryNode{Child: child},
		Aggregations: aggregations,
		Groupings:    groupings,
		Epsilon:      epsilon,
		KThreshold:   kThreshold,
	}
}

// Resolved implements sql.Node.
func (a *AnonymizedAggregate) Resolved() bool {
	return a.UnaryNode.Resolved() &&
		expressionsResolved(a.Aggregations...) &&
		expressionsResolved(a.Groupings...)
}

// Schema implements sql.Statement.
func (a *AnonymizedAggregate) Schema() sql.Schema {
	schema := make(sql.Schema, len(a.Aggregations))
	for i, e := range a.Aggregations {
		schema[i] = schemaColumn(e)
	}
	return schema
}

// Children implements sql.Node. The first child is the input statement,
// followed by the grouping expressions, then the aggregation expressions.
func (a *AnonymizedAggregate) Children() []sql.Node {
	children := expressionChildren([]sql.Node{a.Child}, a.Groupings)
	return expressionChildren(children, a.Aggregations)
}

// WithChildren implements sql.Node.
func (a *AnonymizedAggregate) WithChildren(children ...sql.Node) (sql.Node, error) {
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
	return NewAnonymizedAggregate(aggregations, groupings, children[0], a.Epsilon, a.KThreshold), nil
}

func (a *AnonymizedAggregate) String() string {
	tp := sql.NewTreePrinter()
	_ = tp.WriteNode("AnonymizedAggregate(%s, group by %s, epsilon=%v, k=%d)",
		strings.Join(expressionStrings(a.Aggregations), ", "),
		strings.Join(expressionStrings(a.Groupings), ", "),
		a.Epsilon, a.KThreshold)
	_ = tp.WriteChildren(a.Child.String())
	return tp.String()
}
