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
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/go-sql-rewriter/sql"
)

type testNode struct {
	name     string
	children []sql.Node
}

func tn(name string, children ...sql.Node) *testNode {
	return &testNode{name: name, children: children}
}

func (n *testNode) Resolved() bool       { return true }
func (n *testNode) String() string       { return n.name }
func (n *testNode) Children() []sql.Node { return n.children }

func (n *testNode) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != len(n.children) {
		return nil, sql.ErrInvalidChildrenNumber.New(n, len(children), len(n.children))
	}
	return &testNode{name: n.name, children: children}, nil
}

func render(n sql.Node) string {
	if len(n.Children()) == 0 {
		return n.String()
	}
	parts := make([]string, len(n.Children()))
	for i, c := range n.Children() {
		parts[i] = render(c)
	}
	return fmt.Sprintf("%s(%s)", n, strings.Join(parts, ","))
}

func renameNode(from, to string) NodeFunc {
	return func(n sql.Node) (sql.Node, TreeIdentity, error) {
		node, ok := n.(*testNode)
		if !ok || node.name != from {
			return n, SameTree, nil
		}
		return &testNode{name: to, children: node.children}, NewTree, nil
	}
}

func TestNode(t *testing.T) {
	tests := []struct {
		name     string
		f        NodeFunc
		same     TreeIdentity
		expected string
	}{
		{
			name: "no change",
			f: func(n sql.Node) (sql.Node, TreeIdentity, error) {
				return n, SameTree, nil
			},
			same:     SameTree,
			expected: "a(b(c),d)",
		},
		{
			name:     "rename leaf",
			f:        renameNode("c", "C"),
			same:     NewTree,
			expected: "a(b(C),d)",
		},
		{
			name:     "rename inner node",
			f:        renameNode("b", "B"),
			same:     NewTree,
			expected: "a(B(c),d)",
		},
		{
			name:     "rename root",
			f:        renameNode("a", "A"),
			same:     NewTree,
			expected: "A(b(c),d)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			tree := tn("a", tn("b", tn("c")), tn("d"))
			node, same, err := Node(tree, tt.f)
			require.NoError(err)
			require.Equal(tt.same, same)
			require.Equal(tt.expected, render(node))
		})
	}
}

func TestNodeSharesUntouchedSubtrees(t *testing.T) {
	require := require.New(t)

	left := tn("b", tn("c"))
	tree := tn("a", left, tn("d"))

	node, same, err := Node(tree, renameNode("d", "D"))
	require.NoError(err)
	require.Equal(NewTree, same)
	require.NotSame(tree, node)
	require.Same(left, node.Children()[0])
}

func TestNodeVisitsBottomUp(t *testing.T) {
	require := require.New(t)

	var order []string
	tree := tn("a", tn("b", tn("c")), tn("d"))
	_, same, err := Node(tree, func(n sql.Node) (sql.Node, TreeIdentity, error) {
		order = append(order, n.String())
		return n, SameTree, nil
	})
	require.NoError(err)
	require.Equal(SameTree, same)
	require.Equal([]string{"c", "b", "d", "a"}, order)
}

func TestNodePropagatesErrors(t *testing.T) {
	require := require.New(t)

	errBoom := errors.NewKind("boom on %s")
	tree := tn("a", tn("b", tn("c")), tn("d"))
	_, _, err := Node(tree, func(n sql.Node) (sql.Node, TreeIdentity, error) {
		if n.String() == "b" {
			return nil, SameTree, errBoom.New("b")
		}
		return n, SameTree, nil
	})
	require.Error(err)
	require.True(errBoom.Is(err))
}

func TestInspect(t *testing.T) {
	require := require.New(t)

	tree := tn("a", tn("b", tn("c")), tn("d"))

	var visited []string
	Inspect(tree, func(n sql.Node) bool {
		visited = append(visited, n.String())
		return true
	})
	require.Equal([]string{"a", "b", "c", "d"}, visited)

	visited = nil
	Inspect(tree, func(n sql.Node) bool {
		visited = append(visited, n.String())
		return n.String() != "b"
	})
	require.Equal([]string{"a", "b", "d"}, visited)
}
