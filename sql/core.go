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

// Node is a node of an analyzed query tree. Statements and expressions share
// this interface so that a single transform pass can reach every part of a
// tree, whichever flavor its root has.
//
// Nodes are immutable. Rewrites never modify a node in place, they build a
// replacement with WithChildren and hand back the new tree.
type Node interface {
	fmt.Stringer
	// Resolved reports whether the node and all of its children are resolved.
	Resolved() bool
	// Children returns the immediate children of the node in a fixed order.
	// Expression operands are children too.
	Children() []Node
	// WithChildren returns a copy of the node with its children replaced. It
	// must be given exactly as many children as Children returns.
	WithChildren(children ...Node) (Node, error)
}

// Expression is a node with a static type, produced by the resolution stage.
type Expression interface {
	Node
	// Type returns the type of the value the expression produces.
	Type() Type
	// IsNullable reports whether the expression can produce NULL.
	IsNullable() bool
}

// Statement is a node that can stand as the root of an analyzed statement.
type Statement interface {
	Node
	// Schema returns the schema of the rows the statement produces.
	Schema() Schema
}

// Nameable is something that has a name.
type Nameable interface {
	// Name returns the name.
	Name() string
}

// NillaryWithChildren is a shorthand for implementing WithChildren on nodes
// without children.
func NillaryWithChildren(node Node, children ...Node) (Node, error) {
	if len(children) != 0 {
		return nil, ErrInvalidChildrenNumber.New(node, len(children), 0)
	}
	return node, nil
}

// ExpressionChild asserts that a rebuilt child is an expression. WithChildren
// implementations use it for the operand slots of their child list.
func ExpressionChild(parent Node, child Node) (Expression, error) {
	expr, ok := child.(Expression)
	if !ok {
		return nil, ErrInvalidChildType.New(parent, child, "sql.Expression")
	}
	return expr, nil
}
