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

package expression

import (
	"fmt"

	"github.com/dolthub/go-sql-rewriter/sql"
)

// ColumnRef is a reference to a column by the id the resolution stage
// assigned to it.
type ColumnRef struct {
	id       sql.ColumnID
	name     string
	typ      sql.Type
	nullable bool
}

var _ sql.Expression = (*ColumnRef)(nil)

// NewColumnRef creates a reference to the column with the given id.
func NewColumnRef(id sql.ColumnID, name string, typ sql.Type, nullable bool) *ColumnRef {
	return &ColumnRef{id: id, name: name, typ: typ, nullable: nullable}
}

// ID returns the referenced column id.
func (c *ColumnRef) ID() sql.ColumnID {
	return c.id
}

// Name returns the referenced column name.
func (c *ColumnRef) Name() string {
	return c.name
}

// Resolved implements sql.Node. A column reference is resolved once it has
// an assigned id.
func (c *ColumnRef) Resolved() bool {
	return c.id != 0
}

// Type implements sql.Expression.
func (c *ColumnRef) Type() sql.Type {
	return c.typ
}

// IsNullable implements sql.Expression.
func (c *ColumnRef) IsNullable() bool {
	return c.nullable
}

// Children implements sql.Node.
func (c *ColumnRef) Children() []sql.Node {
	return nil
}

// WithChildren implements sql.Node.
func (c *ColumnRef) WithChildren(children ...sql.Node) (sql.Node, error) {
	return sql.NillaryWithChildren(c, children...)
}

func (c *ColumnRef) String() string {
	return fmt.Sprintf("%s#%d", c.name, c.id)
}
