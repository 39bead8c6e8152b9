// Copyright 2020-2021 Dolthub, Inc.
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

package transform

import (
	"github.com/dolthub/go-sql-rewriter/sql"
)

// Visitor visits nodes of an analyzed tree.
type Visitor interface {
	// Visit method is invoked for each node encountered by Walk. If the
	// result Visitor is not nil, Walk visits each of the children of the node
	// with that visitor.
	Visit(node sql.Node) Visitor
}

// Walk traverses the tree in depth-first order. It starts by calling
// v.Visit(node); node must not be nil. If the visitor returned by
// v.Visit(node) is not nil, Walk is invoked recursively with the returned
// visitor for each child of the node.
func Walk(v Visitor, node sql.Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	for _, child := range node.Children() {
		Walk(v, child)
	}
}

type inspector func(sql.Node) bool

func (f inspector) Visit(node sql.Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect performs a pre-order traversal of the tree. It calls f(node) first
// and descends into the node's children only when f returns true.
func Inspect(node sql.Node, f func(sql.Node) bool) {
	Walk(inspector(f), node)
}
