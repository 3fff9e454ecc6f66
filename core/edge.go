package core

import "fmt"

// Edge records the pairing of two connected interfaces. The tail→head
// direction is the "forward" reading convention for messages and marginals;
// it does not constrain evaluation order. An Edge does not own its
// interfaces.
type Edge struct {
	tail *Interface
	head *Interface
}

// Tail returns the interface at the forward end's source.
func (e *Edge) Tail() *Interface { return e.tail }

// Head returns the interface at the forward end's destination.
func (e *Edge) Head() *Interface { return e.head }

// ClearMessages clears the cached message on both sides of the edge.
func (e *Edge) ClearMessages() {
	e.tail.ClearMessage()
	e.head.ClearMessage()
}

// Connect pairs two previously unpartnered interfaces of distinct nodes into
// an Edge, establishing the symmetric partner relation. This is the only
// operation that mutates partners.
//
// Fails with ErrNilInterface, ErrSelfLoop (same owning node),
// ErrAlreadyConnected (either side partnered), or ErrTypeMismatch (both
// sides hold messages of different families). On any failure both
// interfaces are left exactly as they were.
func Connect(tail, head *Interface) (*Edge, error) {
	if tail == nil || head == nil {
		return nil, fmt.Errorf("Connect: %w", ErrNilInterface)
	}
	if tail.node == head.node {
		return nil, fmt.Errorf("Connect: node %q: %w", tail.node.Name(), ErrSelfLoop)
	}
	if tail.partner != nil {
		return nil, fmt.Errorf("Connect: tail on node %q: %w", tail.node.Name(), ErrAlreadyConnected)
	}
	if head.partner != nil {
		return nil, fmt.Errorf("Connect: head on node %q: %w", head.node.Name(), ErrAlreadyConnected)
	}
	tm, tok := tail.Message()
	hm, hok := head.Message()
	if tok && hok && tm.Kind() != hm.Kind() {
		return nil, fmt.Errorf("Connect: %s vs %s: %w", tm.Kind(), hm.Kind(), ErrTypeMismatch)
	}

	tail.partner = head
	head.partner = tail

	return &Edge{tail: tail, head: head}, nil
}

// ConnectNodes connects the first free interface of tail to the first free
// interface of head. Fails with ErrNilNode or, when either node is fully
// connected, ErrNoFreeInterface.
func ConnectNodes(tail, head Node) (*Edge, error) {
	if tail == nil || head == nil {
		return nil, fmt.Errorf("ConnectNodes: %w", ErrNilNode)
	}
	ti, err := freeInterface(tail)
	if err != nil {
		return nil, fmt.Errorf("ConnectNodes: tail: %w", err)
	}
	hi, err := freeInterface(head)
	if err != nil {
		return nil, fmt.Errorf("ConnectNodes: head: %w", err)
	}

	return Connect(ti, hi)
}

// freeInterface returns n's first interface without a partner.
func freeInterface(n Node) (*Interface, error) {
	for _, ifc := range n.Interfaces() {
		if ifc.Partner() == nil {
			return ifc, nil
		}
	}

	return nil, fmt.Errorf("node %q: %w", n.Name(), ErrNoFreeInterface)
}
