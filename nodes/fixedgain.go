package nodes

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/tverien/mpgraph/core"
	"github.com/tverien/mpgraph/message"
)

// FixedGain is the 2-port node relating its ports by a static gain matrix A:
// the variable at port 1 equals A times the variable at port 0.
//
// Forward (producing port 1) works in moment form: m₁ = A·m₀, V₁ = A·V₀·Aᵀ.
// Backward (producing port 0) works in canonical form, which needs no
// inversion of A: ξ₀ = Aᵀ·ξ₁, W₀ = Aᵀ·W₁·A.
//
// A 1×1 gain additionally applies to univariate Gaussian messages, using the
// same formulas with the scalar k = A[0,0].
type FixedGain struct {
	baseNode
	gain *mat.Dense
}

// NewFixedGain returns a FixedGain node with the given gain matrix.
// Fails with ErrNilGain when gain is nil. The gain is copied.
func NewFixedGain(name string, gain *mat.Dense) (*FixedGain, error) {
	if gain == nil {
		return nil, fmt.Errorf("NewFixedGain: %w", ErrNilGain)
	}
	n := &FixedGain{baseNode: baseNode{name: name}}
	n.gain = mat.DenseCopyOf(gain)
	n.ifaces = newInterfaces(n, 2)

	return n, nil
}

// Gain returns a copy of the node's gain matrix.
func (n *FixedGain) Gain() *mat.Dense { return mat.DenseCopyOf(n.gain) }

// scalarGain returns A[0,0] when the gain is 1×1.
func (n *FixedGain) scalarGain() (float64, bool) {
	r, c := n.gain.Dims()
	if r != 1 || c != 1 {
		return 0, false
	}

	return n.gain.At(0, 0), true
}

// ResolveRule implements the dispatch contract for the fixed-gain node.
func (n *FixedGain) ResolveRule(out int, inbound []message.Kind) (core.Rule, error) {
	if len(inbound) != 2 || out < 0 || out > 1 || inbound[out] != message.KindElided {
		return nil, fmt.Errorf("fixedgain: out=%d inbound=%v: %w", out, inbound, core.ErrRuleNotFound)
	}
	in := inbound[1-out]

	switch {
	case in == message.KindMultivariate:
		if out == 1 {
			return n.ruleForwardMultivariate, nil
		}

		return n.ruleBackwardMultivariate, nil
	case in == message.KindGaussian:
		if _, ok := n.scalarGain(); !ok {
			return nil, fmt.Errorf("fixedgain: univariate message through non-scalar gain: %w", core.ErrRuleNotFound)
		}
		if out == 1 {
			return n.ruleForwardGaussian, nil
		}

		return n.ruleBackwardGaussian, nil
	default:
		return nil, fmt.Errorf("fixedgain: out=%d inbound=%v: %w", out, inbound, core.ErrRuleNotFound)
	}
}

func (n *FixedGain) ruleForwardGaussian(_ int, inbound []message.Message) (message.Message, error) {
	k, _ := n.scalarGain()
	g, _ := inbound[0].Gaussian()
	m, v, _ := g.ToMoment().Moment()

	return message.NewGaussianMoment(k*m, k*k*v), nil
}

func (n *FixedGain) ruleBackwardGaussian(_ int, inbound []message.Message) (message.Message, error) {
	k, _ := n.scalarGain()
	g, _ := inbound[1].Gaussian()
	xi, w, _ := g.ToCanonical().Canonical()

	return message.NewGaussianCanonical(k*xi, k*k*w), nil
}

func (n *FixedGain) ruleForwardMultivariate(_ int, inbound []message.Message) (message.Message, error) {
	g, _ := inbound[0].Multivariate()
	mom, err := g.ToMoment()
	if err != nil {
		return message.Message{}, fmt.Errorf("fixedgain: %w", err)
	}
	mv, cov, _ := mom.Moment()

	var m mat.VecDense
	m.MulVec(n.gain, mv)
	var av, v mat.Dense
	av.Mul(n.gain, cov)
	v.Mul(&av, n.gain.T())

	return message.NewMultivariateMoment(message.VecSlice(&m), &v), nil
}

func (n *FixedGain) ruleBackwardMultivariate(_ int, inbound []message.Message) (message.Message, error) {
	g, _ := inbound[1].Multivariate()
	can, err := g.ToCanonical()
	if err != nil {
		return message.Message{}, fmt.Errorf("fixedgain: %w", err)
	}
	xi, w, _ := can.Canonical()

	var xi0 mat.VecDense
	xi0.MulVec(n.gain.T(), xi)
	var tw, w0 mat.Dense
	tw.Mul(n.gain.T(), w)
	w0.Mul(&tw, n.gain)

	return message.NewMultivariateCanonical(message.VecSlice(&xi0), &w0), nil
}
