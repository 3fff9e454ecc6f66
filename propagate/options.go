package propagate

import (
	"errors"

	"go.uber.org/zap"

	"github.com/tverien/mpgraph/core"
	"github.com/tverien/mpgraph/message"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilNode indicates a nil core.Node argument.
	ErrNilNode = errors.New("propagate: node is nil")

	// ErrNilInterface indicates a nil *core.Interface argument.
	ErrNilInterface = errors.New("propagate: interface is nil")

	// ErrNilEdge indicates a nil *core.Edge argument.
	ErrNilEdge = errors.New("propagate: edge is nil")

	// ErrOwnership indicates the target interface does not belong to the node
	// it was requested on.
	ErrOwnership = errors.New("propagate: interface does not belong to node")

	// ErrDisconnected indicates an inbound interface with no partner: it can
	// never receive a message, so evaluation cannot proceed.
	ErrDisconnected = errors.New("propagate: inbound interface has no partner")

	// ErrUpstreamUnavailable indicates a required inbound message could not
	// be produced; it wraps the underlying cause.
	ErrUpstreamUnavailable = errors.New("propagate: upstream message unavailable")

	// ErrMissingMessage indicates an edge marginal was requested while one of
	// the edge's interfaces holds no message at all.
	ErrMissingMessage = errors.New("propagate: edge interface holds no message")

	// ErrBadDepthBudget indicates WithDepthBudget was given a non-positive
	// value.
	ErrBadDepthBudget = errors.New("propagate: depth budget must be positive")
)

// DefaultDepthBudget bounds recursive descent per top-level calculation.
// Ten levels cover any acyclic chain the built-in composite nodes produce
// while keeping cyclic graphs from exhausting the call stack.
const DefaultDepthBudget = 10

// FallbackFunc produces the designed degraded message stored when the depth
// budget runs out at target. It must return a non-elided message.
type FallbackFunc func(target *core.Interface) message.Message

// Options configures a single engine operation.
//
// DepthBudget – remaining recursion depth for this calculation (default 10).
// Logger      – injected logging capability (default zap.NewNop()).
// Fallback    – depth-exhaustion message policy (default VagueFallback).
type Options struct {
	DepthBudget int
	Logger      *zap.Logger
	Fallback    FallbackFunc
}

// Option is a functional option for engine operations.
type Option func(*Options)

// DefaultOptions returns the engine defaults: DefaultDepthBudget, a no-op
// logger, and the family-aware VagueFallback.
func DefaultOptions() Options {
	return Options{
		DepthBudget: DefaultDepthBudget,
		Logger:      zap.NewNop(),
		Fallback:    VagueFallback,
	}
}

// WithDepthBudget sets the recursion budget for one calculation.
// Panics on a non-positive budget; an engine that may never recurse cannot
// produce anything.
func WithDepthBudget(budget int) Option {
	return func(o *Options) {
		if budget <= 0 {
			panic(ErrBadDepthBudget.Error())
		}
		o.DepthBudget = budget
	}
}

// WithLogger injects the logging capability. A nil logger falls back to the
// no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Logger = l
	}
}

// WithFallback overrides the depth-exhaustion fallback policy.
// A nil fn restores VagueFallback.
func WithFallback(fn FallbackFunc) Option {
	return func(o *Options) {
		if fn == nil {
			fn = VagueFallback
		}
		o.Fallback = fn
	}
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
