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

// Literal is a constant value with an explicit type. A Literal with a nil
// value is a typed NULL.
type Literal struct {
	value interface{}
	typ   sql.Type
}

var _ sql.Expression = (*Literal)(nil)

// NewLiteral creates a new Literal of the given type.
func NewLiteral(value interface{}, typ sql.Type) *Literal {
	return &Literal{value: value, typ: typ}
}

// Value returns the literal value.
func (l *Literal) Value() interface{} {
	return l.value
}

// Resolved implements sql.Node.
func (l *Literal) Resolved() bool {
	return true
}

// Type implements sql.Expression.
func (l *Literal) Type() sql.Type {
	return l.typ
}

// IsNullable implements sql.Expression.
func (l *Literal) IsNullable() bool {
	return l.value == nil
}

// Children implements sql.Node.
func (l *Literal) Children() []sql.Node {
	return nil
}

// WithChildren implements sql.Node.
func (l *Literal) WithChildren(children ...sql.Node) (sql.Node, error) {
	return sql.NillaryWithChildren(l, children...)
}

func (l *Literal) String() string {
	if l.value == nil {
		return fmt.Sprintf("NULL(%s)", l.typ)
	}
	if s, ok := l.value.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprint(l.value)
}
