package sql

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrNodeAlreadyWritten is returned when WriteNode is called twice on the
	// same printer.
	ErrNodeAlreadyWritten = errors.NewKind("treeprinter: node already written")

	// ErrNodeNotWritten is returned when WriteChildren is called before
	// WriteNode.
	ErrNodeNotWritten = errors.NewKind("treeprinter: children must be written after the node")

	// ErrChildrenAlreadyWritten is returned when WriteChildren is called twice
	// on the same printer.
	ErrChildrenAlreadyWritten = errors.NewKind("treeprinter: children already written")
)

// TreePrinter renders a node and its children as a tree for String methods.
type TreePrinter struct {
	buf             bytes.Buffer
	nodeWritten     bool
	childrenWritten bool
}

// NewTreePrinter creates a new tree printer.
func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

// WriteNode writes the representation of the node itself.
func (p *TreePrinter) WriteNode(format string, args ...interface{}) error {
	if p.nodeWritten {
		return ErrNodeAlreadyWritten.New()
	}

	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteRune('\n')
	p.nodeWritten = true
	return nil
}

// WriteChildren writes the representation of the children of the node. Each
// child may itself span multiple lines.
func (p *TreePrinter) WriteChildren(children ...string) error {
	if !p.nodeWritten {
		return ErrNodeNotWritten.New()
	}
	if p.childrenWritten {
		return ErrChildrenAlreadyWritten.New()
	}

	p.childrenWritten = true
	for i, child := range children {
		p.writeChild(child, i == len(children)-1)
	}
	return nil
}

func (p *TreePrinter) writeChild(child string, last bool) {
	lines := strings.Split(strings.TrimSuffix(child, "\n"), "\n")
	for i, line := range lines {
		switch {
		case i == 0 && last:
			p.buf.WriteString(" └─ ")
		case i == 0:
			p.buf.WriteString(" ├─ ")
		case last:
			p.buf.WriteString("    ")
		default:
			p.buf.WriteString(" │  ")
		}
		p.buf.WriteString(line)
		p.buf.WriteRune('\n')
	}
}

// String returns the rendered tree.
func (p *TreePrinter) String() string {
	return p.buf.String()
}
