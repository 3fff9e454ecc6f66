package propagate

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tverien/mpgraph/core"
	"github.com/tverien/mpgraph/message"
)

// CalculateMessage computes (and caches) the outbound message for target,
// one of n's interfaces.
//
// The calculation is demand-driven: any inbound interface whose partner does
// not hold a valid message is computed first by recursing into the partner's
// node, each descent spending one unit of the depth budget. An exhausted
// budget stores the fallback message at the interface reached and unwinds —
// a designed degraded result, never an error. Once every inbound message is
// valid, n's update rule for (target port, inbound family tuple) produces
// the outbound message, which is stored on target and marked valid.
//
// An already-valid target returns its cached message untouched.
//
// Errors: ErrOwnership (target is not n's), ErrDisconnected (an inbound
// interface has no partner), ErrUpstreamUnavailable (recursion could not
// produce an inbound message; wraps the cause), core.ErrRuleNotFound /
// core.ErrPrecondition from rule dispatch.
func CalculateMessage(n core.Node, target *core.Interface, opts ...Option) (message.Message, error) {
	cfg := buildOptions(opts)
	if n == nil {
		return message.Message{}, fmt.Errorf("CalculateMessage: %w", ErrNilNode)
	}
	if target == nil {
		return message.Message{}, fmt.Errorf("CalculateMessage: %w", ErrNilInterface)
	}

	return calculate(n, target, cfg.DepthBudget, &cfg)
}

// CalculateMessages computes the outbound message for every interface of n,
// reusing the shared cache. Because an already-valid interface is a no-op,
// the result does not depend on iteration order.
func CalculateMessages(n core.Node, opts ...Option) error {
	cfg := buildOptions(opts)
	if n == nil {
		return fmt.Errorf("CalculateMessages: %w", ErrNilNode)
	}
	for _, ifc := range n.Interfaces() {
		if _, err := calculate(n, ifc, cfg.DepthBudget, &cfg); err != nil {
			return err
		}
	}

	return nil
}

// CalculateForwardMessage computes the message flowing tail→head on e.
func CalculateForwardMessage(e *core.Edge, opts ...Option) (message.Message, error) {
	if e == nil {
		return message.Message{}, fmt.Errorf("CalculateForwardMessage: %w", ErrNilEdge)
	}

	return CalculateMessage(e.Tail().Node(), e.Tail(), opts...)
}

// CalculateBackwardMessage computes the message flowing head→tail on e.
func CalculateBackwardMessage(e *core.Edge, opts ...Option) (message.Message, error) {
	if e == nil {
		return message.Message{}, fmt.Errorf("CalculateBackwardMessage: %w", ErrNilEdge)
	}

	return CalculateMessage(e.Head().Node(), e.Head(), opts...)
}

// calculate is the recursive evaluator core. budget is the remaining depth;
// it is passed explicitly so depth-limiting is part of the call contract.
func calculate(n core.Node, target *core.Interface, budget int, cfg *Options) (message.Message, error) {
	ifaces := n.Interfaces()
	out := -1
	for i, ifc := range ifaces {
		if ifc == target {
			out = i

			break
		}
	}
	if out < 0 {
		return message.Message{}, fmt.Errorf("CalculateMessage: node %q: %w", n.Name(), ErrOwnership)
	}

	// Memo hit: a valid cached message is returned as-is.
	if m, ok := target.Message(); ok && target.Valid() {
		return m, nil
	}

	if budget <= 0 {
		fb := cfg.Fallback(target)
		target.StoreMessage(fb)
		cfg.Logger.Debug("depth budget exhausted, stored fallback message",
			zap.String("node", n.Name()),
			zap.Int("port", out),
			zap.Stringer("family", fb.Kind()))

		return fb, nil
	}

	inbound := make([]message.Message, len(ifaces))
	kinds := make([]message.Kind, len(ifaces))
	inbound[out] = message.Elided()
	for i, ifc := range ifaces {
		if i == out {
			continue
		}
		p := ifc.Partner()
		if p == nil {
			return message.Message{}, fmt.Errorf("CalculateMessage: node %q port %d: %w", n.Name(), i, ErrDisconnected)
		}
		if !p.Valid() {
			if _, err := calculate(p.Node(), p, budget-1, cfg); err != nil {
				return message.Message{}, fmt.Errorf("CalculateMessage: node %q port %d: %w: %w", n.Name(), i, ErrUpstreamUnavailable, err)
			}
		}
		m, ok := p.Message()
		if !ok || !p.Valid() {
			return message.Message{}, fmt.Errorf("CalculateMessage: node %q port %d: %w", n.Name(), i, ErrUpstreamUnavailable)
		}
		inbound[i] = m
		kinds[i] = m.Kind()
	}

	rule, err := n.ResolveRule(out, kinds)
	if err != nil {
		return message.Message{}, fmt.Errorf("CalculateMessage: node %q port %d: %w", n.Name(), out, err)
	}
	msg, err := rule(out, inbound)
	if err != nil {
		return message.Message{}, fmt.Errorf("CalculateMessage: node %q port %d: %w", n.Name(), out, err)
	}

	target.StoreMessage(msg)
	cfg.Logger.Debug("computed message",
		zap.String("node", n.Name()),
		zap.Int("port", out),
		zap.Stringer("family", msg.Kind()))

	return msg, nil
}
