package nodes

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/tverien/mpgraph/core"
	"github.com/tverien/mpgraph/message"
)

// Addition is the 3-port node enforcing in₀ + in₁ = out₂ over Gaussian
// variables. Since the sum (and difference) of Gaussians is Gaussian with
// added means/variances, all rules work in moment form.
type Addition struct {
	baseNode
}

// NewAddition returns an Addition node with ports (summand, summand, sum).
func NewAddition(name string) *Addition {
	n := &Addition{baseNode{name: name}}
	n.ifaces = newInterfaces(n, 3)

	return n
}

// ResolveRule implements the dispatch contract for the addition node.
func (n *Addition) ResolveRule(out int, inbound []message.Kind) (core.Rule, error) {
	return resolve(additionRules, "addition", out, inbound)
}

var additionRules = []ruleEntry{
	{AdditionGaussianApplies, ruleAdditionGaussian},
	{AdditionMultivariateApplies, ruleAdditionMultivariate},
}

// AdditionGaussianApplies accepts exactly the 3-port tuples whose two
// inbound slots are univariate Gaussians.
func AdditionGaussianApplies(out int, inbound []message.Kind) bool {
	return len(inbound) == 3 && inboundAll(out, inbound, message.KindGaussian)
}

// AdditionMultivariateApplies accepts exactly the 3-port tuples whose two
// inbound slots are multivariate Gaussians.
func AdditionMultivariateApplies(out int, inbound []message.Kind) bool {
	return len(inbound) == 3 && inboundAll(out, inbound, message.KindMultivariate)
}

// ruleAdditionGaussian: forward (out=2) adds means, backward (out=0/1)
// subtracts the remaining summand's mean from the sum's. Variances add in
// every direction.
func ruleAdditionGaussian(out int, inbound []message.Message) (message.Message, error) {
	moment := func(i int) (m, v float64) {
		g, _ := inbound[i].Gaussian()
		m, v, _ = g.ToMoment().Moment()

		return m, v
	}
	switch out {
	case 2:
		m0, v0 := moment(0)
		m1, v1 := moment(1)

		return message.NewGaussianMoment(m0+m1, v0+v1), nil
	case 1:
		m0, v0 := moment(0)
		m2, v2 := moment(2)

		return message.NewGaussianMoment(m2-m0, v2+v0), nil
	default: // out == 0
		m1, v1 := moment(1)
		m2, v2 := moment(2)

		return message.NewGaussianMoment(m2-m1, v2+v1), nil
	}
}

// ruleAdditionMultivariate is ruleAdditionGaussian over gonum vectors and
// covariance matrices.
func ruleAdditionMultivariate(out int, inbound []message.Message) (message.Message, error) {
	moment := func(i int) (*mat.VecDense, *mat.Dense, error) {
		g, _ := inbound[i].Multivariate()
		mom, err := g.ToMoment()
		if err != nil {
			return nil, nil, fmt.Errorf("addition: port %d: %w", i, err)
		}
		m, v, _ := mom.Moment()

		return m, v, nil
	}

	combine := func(ai, bi int, subtract bool) (message.Message, error) {
		ma, va, err := moment(ai)
		if err != nil {
			return message.Message{}, err
		}
		mb, vb, err := moment(bi)
		if err != nil {
			return message.Message{}, err
		}
		var m mat.VecDense
		if subtract {
			m.SubVec(ma, mb)
		} else {
			m.AddVec(ma, mb)
		}
		var v mat.Dense
		v.Add(va, vb)

		return message.NewMultivariateMoment(message.VecSlice(&m), &v), nil
	}

	switch out {
	case 2:
		return combine(0, 1, false)
	case 1:
		return combine(2, 0, true)
	default: // out == 0
		return combine(2, 1, true)
	}
}
