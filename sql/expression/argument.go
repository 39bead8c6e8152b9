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

// ArgumentRef is a reference to a function argument inside the analyzed body
// of a SQL defined function. Inlining replaces it with a reference to the
// column the argument value was bound to.
type ArgumentRef struct {
	name string
	typ  sql.Type
}

var _ sql.Expression = (*ArgumentRef)(nil)

// NewArgumentRef creates a reference to the function argument with the
// given name.
func NewArgumentRef(name string, typ sql.Type) *ArgumentRef {
	return &ArgumentRef{name: name, typ: typ}
}

// Name returns the referenced argument name.
func (a *ArgumentRef) Name() string {
	return a.name
}

// Resolved implements sql.Node.
func (a *ArgumentRef) Resolved() bool {
	return true
}

// Type implements sql.Expression.
func (a *ArgumentRef) Type() sql.Type {
	return a.typ
}

// IsNullable implements sql.Expression.
func (a *ArgumentRef) IsNullable() bool {
	return true
}

// Children implements sql.Node.
func (a *ArgumentRef) Children() []sql.Node {
	return nil
}

// WithChildren implements sql.Node.
func (a *ArgumentRef) WithChildren(children ...sql.Node) (sql.Node, error) {
	return sql.NillaryWithChildren(a, children...)
}

func (a *ArgumentRef) String() string {
	return fmt.Sprintf("arg(%s)", a.name)
}
