// Package propagate is the message-passing engine: demand-driven, memoizing
// evaluation of outbound messages, reverse-dependency cache invalidation, and
// the marginal combiner.
//
// Evaluation (CalculateMessage) recurses from the requested interface into
// whichever upstream interfaces lack a valid message, invokes the owning
// node's update rule once every inbound message is available, and caches the
// result on the interface. Validity flags make the cache a memo table:
// recomputing an already-valid interface is a no-op, so batch evaluation
// (CalculateMessages) is independent of invocation order.
//
// Cycles cannot hang the engine: every recursive descent spends one unit of
// a fixed depth budget (default 10, WithDepthBudget), and an exhausted budget
// stores a designed fallback message instead of recursing further. The
// fallback is a degraded result, not an error — it guarantees termination on
// cyclic graphs, not convergence. The fallback policy is injectable
// (WithFallback); the default, VagueFallback, is family- and shape-aware.
//
// Invalidation (Invalidate, PushMessageInvalidations) walks the graph
// depth-first against the dependency direction, marking every message that
// could have depended on the superseded one as stale. Interfaces found
// already invalid are not recursed into, which terminates the walk on cycles
// and makes repeated invalidation a no-op.
//
// Marginals (CalculateMarginal, CalculateEdgeMarginal) combine a
// forward/backward message pair through a transient 3-port equality node and
// return an independent belief value.
//
// Logging is an injected capability (WithLogger, a *zap.Logger); the engine
// has no global verbosity state. Computation, fallback and invalidation
// steps log at debug level.
//
// The engine is single-threaded by design: one goroutine owns a graph
// instance, and graph mutation must not be interleaved with an in-flight
// calculation over the same region.
//
// Errors:
//
//	ErrNilNode / ErrNilInterface / ErrNilEdge – nil argument.
//	ErrOwnership           – the interface does not belong to the given node.
//	ErrDisconnected        – an inbound interface has no partner.
//	ErrUpstreamUnavailable – recursion could not produce a required inbound
//	                         message (wraps the cause).
//	ErrMissingMessage      – edge marginal requested while a side holds no
//	                         message.
//
// All failures are fatal to the requested operation and propagate
// immediately; nothing is retried.
package propagate
