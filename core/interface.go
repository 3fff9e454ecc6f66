package core

import "github.com/tverien/mpgraph/message"

// Interface is one port of a Node: the unit that caches an outbound message
// together with a validity flag meaning "this message, if present, still
// reflects current upstream state".
//
// An Interface is created with its owning Node and lives as long as the Node
// does. Its partner is set at most once, by Connect.
type Interface struct {
	node    Node
	partner *Interface
	msg     message.Message
	present bool
	valid   bool
}

// NewInterface returns a fresh, unconnected Interface owned by owner.
// Node constructors are the intended callers.
func NewInterface(owner Node) *Interface {
	return &Interface{node: owner}
}

// Node returns the owning node.
func (i *Interface) Node() Node { return i.node }

// Partner returns the interface at the other end of this interface's edge,
// or nil when unconnected.
func (i *Interface) Partner() *Interface { return i.partner }

// Message returns the cached message; ok is false when no message is present.
// Presence and validity are independent: an invalidated interface may still
// hold its superseded message until recomputation replaces it.
func (i *Interface) Message() (message.Message, bool) {
	return i.msg, i.present
}

// Valid reports whether the cached message reflects current upstream state.
func (i *Interface) Valid() bool { return i.valid }

// StoreMessage caches m on the interface and marks it valid. The evaluator
// is the usual caller; callers may also use it to pin observed messages on
// terminal interfaces (followed by propagate.PushMessageInvalidations so
// downstream caches notice).
func (i *Interface) StoreMessage(m message.Message) {
	i.msg = m
	i.present = true
	i.valid = true
}

// MarkInvalid clears only the validity flag; a present message stays present.
func (i *Interface) MarkInvalid() { i.valid = false }

// ClearMessage resets the interface's cache: message absent, validity false.
func (i *Interface) ClearMessage() {
	i.msg = message.Message{}
	i.present = false
	i.valid = false
}
