package nodes

import (
	"fmt"

	"github.com/tverien/mpgraph/core"
	"github.com/tverien/mpgraph/message"
)

// Constant is the single-port terminal node carrying a fixed message: the
// way priors and observations enter a graph. Having no other ports, it
// bottoms out the evaluator's demand-driven recursion.
type Constant struct {
	baseNode
	msg message.Message
}

// NewConstant returns a Constant node carrying msg.
// Fails with ErrElidedConstant when msg is the elided placeholder.
func NewConstant(name string, msg message.Message) (*Constant, error) {
	if msg.IsElided() {
		return nil, fmt.Errorf("NewConstant: %w", ErrElidedConstant)
	}
	n := &Constant{baseNode: baseNode{name: name}, msg: msg}
	n.ifaces = newInterfaces(n, 1)

	return n, nil
}

// Value returns the node's fixed message.
func (n *Constant) Value() message.Message { return n.msg }

// ResolveRule implements the dispatch contract: the only valid request is
// the single port with an empty inbound set, answered by the fixed message.
func (n *Constant) ResolveRule(out int, inbound []message.Kind) (core.Rule, error) {
	if out != 0 || len(inbound) != 1 || inbound[0] != message.KindElided {
		return nil, fmt.Errorf("constant: out=%d inbound=%v: %w", out, inbound, core.ErrRuleNotFound)
	}
	msg := n.msg

	return func(int, []message.Message) (message.Message, error) {
		return msg, nil
	}, nil
}
