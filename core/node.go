package core

import "github.com/tverien/mpgraph/message"

// Rule is a single update rule: a pure function from the outbound port index
// and the ordered inbound messages (with the outbound slot holding the
// elided variant) to the outbound message.
//
// A Rule must be deterministic given its inputs and must not read or mutate
// any graph state beyond the messages passed to it.
type Rule func(out int, inbound []message.Message) (message.Message, error)

// Node is the contract every node kind satisfies. A Node owns an ordered,
// fixed sequence of Interfaces and resolves update rules for them.
type Node interface {
	// Name returns the node's identifier, used in errors and logs.
	Name() string

	// Interfaces returns the node's ports in their fixed order. The returned
	// slice must not be modified.
	Interfaces() []*Interface

	// ResolveRule returns the single update rule applicable to producing the
	// outbound message at port out, given the distribution families of the
	// inbound messages (inbound[out] is message.KindElided).
	// It returns ErrRuleNotFound when no rule matches.
	ResolveRule(out int, inbound []message.Kind) (Rule, error)
}

// ClearMessages clears the cached message of every interface of n: each
// message becomes absent and each validity flag false. Partner relations are
// untouched.
func ClearMessages(n Node) {
	if n == nil {
		return
	}
	for _, ifc := range n.Interfaces() {
		ifc.ClearMessage()
	}
}
