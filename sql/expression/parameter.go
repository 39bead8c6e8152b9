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

// Parameter is a reference to a named query parameter.
type Parameter struct {
	name string
	typ  sql.Type
}

var _ sql.Expression = (*Parameter)(nil)

// NewParameter creates a reference to the named parameter.
func NewParameter(name string, typ sql.Type) *Parameter {
	return &Parameter{name: name, typ: typ}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Resolved implements sql.Node.
func (p *Parameter) Resolved() bool {
	return true
}

// Type implements sql.Expression.
func (p *Parameter) Type() sql.Type {
	return p.typ
}

// IsNullable implements sql.Expression.
func (p *Parameter) IsNullable() bool {
	return true
}

// Children implements sql.Node.
func (p *Parameter) Children() []sql.Node {
	return nil
}

// WithChildren implements sql.Node.
func (p *Parameter) WithChildren(children ...sql.Node) (sql.Node, error) {
	return sql.NillaryWithChildren(p, children...)
}

func (p *Parameter) String() string {
	return fmt.Sprintf("@%s", p.name)
}
