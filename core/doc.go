// Package core defines the factor-graph data model: Node (the kind-agnostic
// contract every node type satisfies), Interface (a node's port, caching one
// message and its validity), and Edge (the symmetric pairing of two
// interfaces), plus the connection and cache-clearing operations.
//
// Model invariants:
//
//   - An Interface belongs to exactly one Node for that Node's whole life.
//   - If an Interface has a partner, the relation is symmetric:
//     i.Partner().Partner() == i. Connect is the only operation that sets it.
//   - A cached message is an immutable message.Message value; recomputation
//     swaps the whole value, never edits it in place.
//   - Edge direction (tail→head) is a readability convention; it never
//     constrains evaluation order.
//
// The dispatch contract: every node kind resolves (outbound port index,
// inbound family tuple) to exactly one Rule — a pure, deterministic function
// from the ordered inbound messages (outbound slot elided) to the outbound
// message. Rules must not touch graph state beyond the messages handed to
// them.
//
// Errors:
//
//	ErrNilInterface     – nil interface passed to a connection operation.
//	ErrNilNode          – nil node passed to a connection operation.
//	ErrSelfLoop         – both interfaces belong to the same node.
//	ErrAlreadyConnected – an interface already has a partner.
//	ErrTypeMismatch     – the two interfaces hold messages of different families.
//	ErrNoFreeInterface  – every interface of the node already has a partner.
//	ErrRuleNotFound     – no update rule matches a port/family combination.
//	ErrPrecondition     – a matched update rule rejected its inputs.
//
// All mutation is single-threaded by design: one goroutine owns a graph
// instance, and connection or clearing must not be interleaved with an
// in-flight evaluation over the same region.
package core
