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
	"github.com/dolthub/go-sql-rewriter/sql/expression"
)

// Project is a statement that computes a set of expressions over the rows of
// its child.
type Project struct {
	UnaryNode
	Projections []sql.Expression
}

var _ sql.Statement = (*Project)(nil)

// NewProject creates a projection of the given expressions over the child.
func NewProject(projections []sql.Expression, child sql.Node) *Project {
	return &Project{
		UnaryNode:   UnaryNode{Child: child},
		Projections: projections,
	}
}

// Resolved implements sql.Node.
func (p *Project) Resolved() bool {
	return p.UnaryNode.Resolved() && expressionsResolved(p.Projections...)
}

// Schema implements sql.Statement.
func (p *Project) Schema() sql.Schema {
	schema := make(sql.Schema, len(p.Projections))
	for i, e := range p.Projections {
		schema[i] = schemaColumn(e)
	}
	return schema
}

// Children implements sql.Node. The first child is the input statement, the
// rest are the projection expressions.
func (p *Project) Children() []sql.Node {
	return expressionChildren([]sql.Node{p.Child}, p.Projections)
}

// WithChildren implements sql.Node.
func (p *Project) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 1+len(p.Projections) {
		return nil, sql.ErrInvalidChildrenNumber.New(p, len(children), 1+len(p.Projections))
	}

	projections, err := expressionSlice(p, children[1:])
	if err != nil {
		return nil, err
	}
	return NewProject(projections, children[0]), nil
}

func (p *Project) String() string {
	tp := sql.NewTreePrinter()
	_ = tp.WriteNode("Project(%s)", strings.Join(expressionStrings(p.Projections), ", "))
	_ = tp.WriteChildren(p.Child.String())
	return tp.String()
}

// schemaColumn derives the schema column an expression produces.
func schemaColumn(e sql.Expression) *sql.Column {
	col := &sql.Column{
		Name:     e.String(),
		Type:     e.Type(),
		Nullable: e.IsNullable(),
	}
	if n, ok := e.(sql.Nameable); ok {
		col.Name = n.Name()
	}
	if ref, ok := e.(*expression.ColumnRef); ok {
		col.ID = ref.ID()
	}
	return col
}
