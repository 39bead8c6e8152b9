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

// TreeIdentity tracks whether the node returned from a transform callback is
// the same node that was given or a new one.
type TreeIdentity bool

const (
	// SameTree is returned when the transform did not change the tree.
	SameTree TreeIdentity = true
	// NewTree is returned when the transform returned a replacement.
	NewTree TreeIdentity = false
)

// NodeFunc is a function that given a node will return that node as is or
// transformed, a TreeIdentity to indicate whether the node was modified, and
// an error or nil.
type NodeFunc func(n sql.Node) (sql.Node, TreeIdentity, error)

// Node applies a transformation function to the given tree from the bottom
// up. Children are rebuilt copy on write, untouched subtrees keep their
// original nodes.
func Node(node sql.Node, f NodeFunc) (sql.Node, TreeIdentity, error) {
	children := node.Children()
	if len(children) == 0 {
		return f(node)
	}

	var (
		newChildren []sql.Node
		err         error
	)
	for i := range children {
		child := children[i]
		child, same, err := Node(child, f)
		if err != nil {
			return nil, SameTree, err
		}
		if !same {
			if newChildren == nil {
				newChildren = make([]sql.Node, len(children))
				copy(newChildren, children)
			}
			newChildren[i] = child
		}
	}

	sameC := SameTree
	if len(newChildren) > 0 {
		sameC = NewTree
		node, err = node.WithChildren(newChildren...)
		if err != nil {
			return nil, SameTree, err
		}
	}

	node, sameN, err := f(node)
	if err != nil {
		return nil, SameTree, err
	}
	return node, sameC && sameN, nil
}

// Expr applies a transformation function to the given expression from the
// bottom up, like Node, and asserts that the transformed tree is still an
// expression.
func Expr(e sql.Expression, f NodeFunc) (sql.Expression, TreeIdentity, error) {
	node, same, err := Node(e, f)
	if err != nil {
		return nil, SameTree, err
	}
	expr, ok := node.(sql.Expression)
	if !ok {
		return nil, SameTree, sql.ErrInvalidChildType.New(e, node, "sql.Expression")
	}
	return expr, same, nil
}
