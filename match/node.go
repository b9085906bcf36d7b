// Package match implements compiled queries: trees of nodes evaluated
// against records.
package match

import (
	"fmt"
	"strings"
)

// Node is compiled predicate on Record
type Node interface {
	// Search checks whether record matches
	Search(rec Record) bool
	// Valid is false when some extension couldn't be set up
	Valid() bool
	// String interface
	String() string
}

// True matches everything
type True struct{}

// False matches nothing
type False struct{}

// Union matches if any of the children matches
type Union struct {
	Children []Node
}

// Inter matches if all of the children match
type Inter struct {
	Children []Node
}

// Neg matches if child doesn't match
type Neg struct {
	Child Node
}

var (
	// Everything is the node matching all records
	Everything = &True{}
	// Nothing is the node matching no records
	Nothing = &False{}
)

// Search always matches
func (*True) Search(Record) bool { return true }

// Valid interface
func (*True) Valid() bool { return true }

func (*True) String() string { return "<True>" }

// Search never matches
func (*False) Search(Record) bool { return false }

// Valid interface
func (*False) Valid() bool { return true }

func (*False) String() string { return "<False>" }

// NewUnion creates union node out of children
func NewUnion(children ...Node) *Union {
	return &Union{Children: children}
}

// Search stops on first matching child
func (u *Union) Search(rec Record) bool {
	for _, child := range u.Children {
		if child.Search(rec) {
			return true
		}
	}
	return false
}

// Valid if all children are valid
func (u *Union) Valid() bool {
	return allValid(u.Children)
}

func (u *Union) String() string {
	return fmt.Sprintf("<Union %s>", joinNodes(u.Children))
}

// NewInter creates intersection node out of children
func NewInter(children ...Node) *Inter {
	return &Inter{Children: children}
}

// Search stops on first child which doesn't match
func (i *Inter) Search(rec Record) bool {
	for _, child := range i.Children {
		if !child.Search(rec) {
			return false
		}
	}
	return true
}

// Valid if all children are valid
func (i *Inter) Valid() bool {
	return allValid(i.Children)
}

func (i *Inter) String() string {
	return fmt.Sprintf("<Inter %s>", joinNodes(i.Children))
}

// Search inverts the child
func (n *Neg) Search(rec Record) bool {
	return !n.Child.Search(rec)
}

// Valid if child is valid
func (n *Neg) Valid() bool {
	return n.Child.Valid()
}

func (n *Neg) String() string {
	return fmt.Sprintf("<Neg %s>", n.Child)
}

func allValid(nodes []Node) bool {
	for _, node := range nodes {
		if !node.Valid() {
			return false
		}
	}
	return true
}

func joinNodes(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i := range nodes {
		parts[i] = nodes[i].String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func concat(a, b []Node) []Node {
	result := make([]Node, 0, len(a)+len(b))
	result = append(result, a...)
	return append(result, b...)
}

// And combines two nodes with logical AND, flattening
// intersections and dropping True operands
func And(a, b Node) Node {
	switch x := a.(type) {
	case *True:
		return b
	case *False:
		return x
	case *Union:
		switch b.(type) {
		case *Inter, *True:
			return And(b, a)
		}
		return NewInter(a, b)
	case *Inter:
		switch y := b.(type) {
		case *Inter:
			return &Inter{Children: concat(x.Children, y.Children)}
		case *True:
			return x
		}
		return &Inter{Children: concat(x.Children, []Node{b})}
	case *Extension:
		switch b.(type) {
		case *Inter, *True:
			return And(b, a)
		}
		return NewInter(a, b)
	}

	if _, ok := b.(*True); ok {
		return a
	}
	return NewInter(a, b)
}

// Or combines two nodes with logical OR, flattening unions,
// True operand absorbs everything
func Or(a, b Node) Node {
	switch x := a.(type) {
	case *True:
		return x
	case *False:
		return b
	case *Union:
		switch y := b.(type) {
		case *Union:
			return &Union{Children: concat(x.Children, y.Children)}
		case *True:
			return y
		}
		return &Union{Children: concat(x.Children, []Node{b})}
	case *Inter, *Extension:
		switch b.(type) {
		case *Union, *True:
			return Or(b, a)
		}
		return NewUnion(a, b)
	}

	if t, ok := b.(*True); ok {
		return t
	}
	return NewUnion(a, b)
}

// Not negates node, double negation cancels out
func Not(a Node) Node {
	if n, ok := a.(*Neg); ok {
		return n.Child
	}
	return &Neg{Child: a}
}

// Filter returns records matching the node, preserving order
//
// Result is always a new slice.
func Filter[R Record](node Node, records []R) []R {
	if _, ok := node.(*True); ok {
		return append([]R(nil), records...)
	}

	result := []R{}
	for _, rec := range records {
		if node.Search(rec) {
			result = append(result, rec)
		}
	}
	return result
}
