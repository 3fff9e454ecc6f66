package core

import "errors"

// Sentinel errors for graph-model operations and the dispatch contract.
// All are matched with errors.Is; callers wrap them with operation context.
var (
	// ErrNilInterface indicates a nil *Interface was passed to Connect.
	ErrNilInterface = errors.New("core: interface is nil")

	// ErrNilNode indicates a nil Node was passed to a graph operation.
	ErrNilNode = errors.New("core: node is nil")

	// ErrSelfLoop indicates an attempt to connect two interfaces of the same
	// node. Both interfaces are left untouched.
	ErrSelfLoop = errors.New("core: cannot connect two interfaces of the same node")

	// ErrAlreadyConnected indicates an interface that already has a partner;
	// the partner relation is established exactly once.
	ErrAlreadyConnected = errors.New("core: interface already has a partner")

	// ErrTypeMismatch indicates the two sides hold (or were given) messages of
	// different distribution families.
	ErrTypeMismatch = errors.New("core: message families differ")

	// ErrNoFreeInterface indicates a fully connected node was asked for a free
	// interface.
	ErrNoFreeInterface = errors.New("core: node has no free interface")

	// ErrRuleNotFound indicates no update rule matches the requested outbound
	// port and inbound family tuple. This is a model misconfiguration, never
	// retried.
	ErrRuleNotFound = errors.New("core: no update rule matches")

	// ErrPrecondition indicates a matched update rule rejected its inputs
	// (wrong arity or parameterization for that rule's formula).
	ErrPrecondition = errors.New("core: update rule precondition violated")
)
