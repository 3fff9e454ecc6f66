package propagate

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tverien/mpgraph/core"
	"github.com/tverien/mpgraph/message"
	"github.com/tverien/mpgraph/nodes"
)

// CalculateMarginal derives the belief over a variable from its forward and
// backward messages, which must belong to the same distribution family
// (core.ErrTypeMismatch otherwise).
//
// The combination is the equality rule itself: a transient 3-port equality
// node consumes the pair and produces the belief on its third port. The
// returned message is an independent value; the transient node is discarded.
func CalculateMarginal(forward, backward message.Message, opts ...Option) (message.Message, error) {
	cfg := buildOptions(opts)
	if forward.Kind() != backward.Kind() {
		return message.Message{}, fmt.Errorf("CalculateMarginal: %s vs %s: %w",
			forward.Kind(), backward.Kind(), core.ErrTypeMismatch)
	}

	eq, err := nodes.NewEquality("marginal", 3)
	if err != nil {
		return message.Message{}, fmt.Errorf("CalculateMarginal: %w", err)
	}
	kinds := []message.Kind{forward.Kind(), backward.Kind(), message.KindElided}
	rule, err := eq.ResolveRule(2, kinds)
	if err != nil {
		return message.Message{}, fmt.Errorf("CalculateMarginal: %w", err)
	}
	belief, err := rule(2, []message.Message{forward, backward, message.Elided()})
	if err != nil {
		return message.Message{}, fmt.Errorf("CalculateMarginal: %w", err)
	}
	cfg.Logger.Debug("combined marginal", zap.Stringer("family", belief.Kind()))

	return belief, nil
}

// CalculateEdgeMarginal derives the belief over the variable on e from the
// messages its two interfaces currently hold. Both sides must hold a present
// message — valid or stale (ErrMissingMessage otherwise); use the calculate
// functions first if they do not.
func CalculateEdgeMarginal(e *core.Edge, opts ...Option) (message.Message, error) {
	if e == nil {
		return message.Message{}, fmt.Errorf("CalculateEdgeMarginal: %w", ErrNilEdge)
	}
	forward, ok := e.Tail().Message()
	if !ok {
		return message.Message{}, fmt.Errorf("CalculateEdgeMarginal: tail: %w", ErrMissingMessage)
	}
	backward, ok := e.Head().Message()
	if !ok {
		return message.Message{}, fmt.Errorf("CalculateEdgeMarginal: head: %w", ErrMissingMessage)
	}

	return CalculateMarginal(forward, backward, opts...)
}
