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

package sql

import (
	"fmt"
)

// Type represents the static type of an analyzed expression. Concrete types
// live in the sql/types package.
type Type interface {
	fmt.Stringer
	// Convert coerces a value to this type. It returns an error when the
	// value does not fit.
	Convert(v interface{}) (interface{}, error)
	// Equals reports whether the given type is the same type as this one.
	Equals(other Type) bool
}

// Column is a single column produced by a node, identified by the id the
// resolution stage assigned to it.
type Column struct {
	// ID is the column id, unique within one analyzed tree. The zero value
	// means the id was never assigned.
	ID ColumnID
	// Name is the column name.
	Name string
	// Type is the column type.
	Type Type
	// Nullable is true if the column can contain NULL.
	Nullable bool
	// Source is the name of the node that produces this column, if any.
	Source string
}

// Schema is the description of the rows a statement produces.
type Schema []*Column

// Contains reports whether the schema contains a column with the given name.
func (s Schema) Contains(name string) bool {
	return s.IndexOf(name) >= 0
}

// IndexOf returns the index of the column with the given name, or -1 if the
// schema has no such column.
func (s Schema) IndexOf(name string) int {
	for i, col := range s {
		if col.Name == name {
			return i
		}
	}
	return -1
}
