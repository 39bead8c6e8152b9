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
	"fmt"

	"github.com/dolthub/go-sql-rewriter/sql"
)

// TableScan is a leaf statement producing the rows of a resolved table.
type TableScan struct {
	name   string
	schema sql.Schema
}

var _ sql.Statement = (*TableScan)(nil)
var _ sql.Nameable = (*TableScan)(nil)

// NewTableScan creates a scan over the table with the given name and schema.
func NewTableScan(name string, schema sql.Schema) *TableScan {
	return &TableScan{name: name, schema: schema}
}

// Name implements sql.Nameable.
func (t *TableScan) Name() string {
	return t.name
}

// Resolved implements sql.Node.
func (t *TableScan) Resolved() bool {
	return true
}

// Schema implements sql.Statement.
func (t *TableScan) Schema() sql.Schema {
	return t.schema
}

// Children implements sql.Node.
func (t *TableScan) Children() []sql.Node {
	return nil
}

// WithChildren implements sql.Node.
func (t *TableScan) WithChildren(children ...sql.Node) (sql.Node, error) {
	return sql.NillaryWithChildren(t, children...)
}

func (t *TableScan) String() string {
	return fmt.Sprintf("TableScan(%s)", t.name)
}
