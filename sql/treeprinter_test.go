package sql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const expectedTree = `Project(total#1, city#2)
 ├─ Filter(active#3)
 │   └─ TableScan(users)
 └─ TableScan(sales)
`

func TestTreePrinter(t *testing.T) {
	require := require.New(t)

	left := NewTreePrinter()
	require.NoError(left.WriteNode("Filter(%s)", "active#3"))
	require.NoError(left.WriteChildren("TableScan(users)"))

	p := NewTreePrinter()
	require.NoError(p.WriteNode("Project(%s, %s)", "total#1", "city#2"))
	require.NoError(p.WriteChildren(left.String(), "TableScan(sales)"))

	require.Equal(expectedTree, p.String())
}

func TestTreePrinterErrors(t *testing.T) {
	require := require.New(t)

	p := NewTreePrinter()
	require.True(ErrNodeNotWritten.Is(p.WriteChildren("child")))

	require.NoError(p.WriteNode("node"))
	require.True(ErrNodeAlreadyWritten.Is(p.WriteNode("node")))

	require.NoError(p.WriteChildren("child"))
	require.True(ErrChildrenAlreadyWritten.Is(p.WriteChildren("child")))
}
