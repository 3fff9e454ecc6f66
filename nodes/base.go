package nodes

import (
	"errors"
	"fmt"

	"github.com/tverien/mpgraph/core"
	"github.com/tverien/mpgraph/message"
)

// Sentinel errors for node construction.
var (
	// ErrArity indicates a node was constructed with an unsupported number of
	// interfaces (e.g. an Equality node below 3 ports).
	ErrArity = errors.New("nodes: unsupported interface arity")

	// ErrElidedConstant indicates a Constant node was given the elided
	// placeholder instead of a concrete message.
	ErrElidedConstant = errors.New("nodes: constant message must not be elided")

	// ErrNilGain indicates a FixedGain node was constructed without a gain
	// matrix.
	ErrNilGain = errors.New("nodes: gain matrix is nil")
)

// baseNode carries the name and port sequence shared by every node kind.
type baseNode struct {
	name   string
	ifaces []*core.Interface
}

// Name returns the node's identifier.
func (b *baseNode) Name() string { return b.name }

// Interfaces returns the node's ports in their fixed order.
func (b *baseNode) Interfaces() []*core.Interface { return b.ifaces }

// newInterfaces allocates n interfaces owned by owner.
func newInterfaces(owner core.Node, n int) []*core.Interface {
	ifaces := make([]*core.Interface, n)
	for i := range ifaces {
		ifaces[i] = core.NewInterface(owner)
	}

	return ifaces
}

// ruleEntry pairs an applicability predicate with its rule.
type ruleEntry struct {
	applies func(out int, inbound []message.Kind) bool
	rule    core.Rule
}

// resolve scans table for the entry whose predicate accepts (out, inbound).
// Predicates are disjoint by construction, so the first match is the only
// match; no match is a dispatch failure.
func resolve(table []ruleEntry, kind string, out int, inbound []message.Kind) (core.Rule, error) {
	for _, e := range table {
		if e.applies(out, inbound) {
			return e.rule, nil
		}
	}

	return nil, fmt.Errorf("%s: out=%d inbound=%v: %w", kind, out, inbound, core.ErrRuleNotFound)
}

// inboundAll reports whether inbound is a well-formed tuple for producing
// port out — the out slot elided, every other slot of family want.
func inboundAll(out int, inbound []message.Kind, want message.Kind) bool {
	if out < 0 || out >= len(inbound) || inbound[out] != message.KindElided {
		return false
	}
	for i, k := range inbound {
		if i == out {
			continue
		}
		if k != want {
			return false
		}
	}

	return true
}
