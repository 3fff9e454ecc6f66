package nodes

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/tverien/mpgraph/core"
	"github.com/tverien/mpgraph/message"
)

// minEqualityArity is the smallest meaningful equality constraint: with two
// ports the node would be a plain wire.
const minEqualityArity = 3

// Equality is the multi-port equality-constraint node: all N ≥ 3 ports carry
// the same variable, so each outbound message is the product (in the
// sum-product sense) of the other N−1 inbound messages.
type Equality struct {
	baseNode
}

// NewEquality returns an Equality node with the given number of ports.
// Fails with ErrArity when arity < 3.
func NewEquality(name string, arity int) (*Equality, error) {
	if arity < minEqualityArity {
		return nil, fmt.Errorf("NewEquality: %d ports: %w", arity, ErrArity)
	}
	n := &Equality{baseNode{name: name}}
	n.ifaces = newInterfaces(n, arity)

	return n, nil
}

// ResolveRule implements the dispatch contract for the equality node.
func (n *Equality) ResolveRule(out int, inbound []message.Kind) (core.Rule, error) {
	return resolve(equalityRules, "equality", out, inbound)
}

// equalityRules is the dispatch table. Predicates are pairwise disjoint:
// they partition by family and, within the Gaussian families, by arity.
var equalityRules = []ruleEntry{
	{EqualityGaussianTripleApplies, ruleEqualityGaussianTriple},
	{EqualityGaussianNaryApplies, ruleEqualityGaussianNary},
	{EqualityMultivariateTripleApplies, ruleEqualityMultivariateTriple},
	{EqualityMultivariateNaryApplies, ruleEqualityMultivariateNary},
	{EqualityGeneralApplies, ruleEqualityGeneral},
	{EqualityGammaApplies, ruleEqualityGamma},
}

// EqualityGaussianTripleApplies accepts exactly the 3-port tuples whose two
// inbound slots are univariate Gaussians.
func EqualityGaussianTripleApplies(out int, inbound []message.Kind) bool {
	return len(inbound) == 3 && inboundAll(out, inbound, message.KindGaussian)
}

// EqualityGaussianNaryApplies accepts tuples of more than 3 ports whose
// inbound slots are all univariate Gaussians.
func EqualityGaussianNaryApplies(out int, inbound []message.Kind) bool {
	return len(inbound) > 3 && inboundAll(out, inbound, message.KindGaussian)
}

// EqualityMultivariateTripleApplies accepts exactly the 3-port tuples whose
// two inbound slots are multivariate Gaussians.
func EqualityMultivariateTripleApplies(out int, inbound []message.Kind) bool {
	return len(inbound) == 3 && inboundAll(out, inbound, message.KindMultivariate)
}

// EqualityMultivariateNaryApplies accepts tuples of more than 3 ports whose
// inbound slots are all multivariate Gaussians.
func EqualityMultivariateNaryApplies(out int, inbound []message.Kind) bool {
	return len(inbound) > 3 && inboundAll(out, inbound, message.KindMultivariate)
}

// EqualityGeneralApplies accepts tuples of 3 or more ports whose inbound
// slots are all General values.
func EqualityGeneralApplies(out int, inbound []message.Kind) bool {
	return len(inbound) >= 3 && inboundAll(out, inbound, message.KindGeneral)
}

// EqualityGammaApplies accepts tuples of 3 or more ports whose inbound slots
// are all Gamma messages. Arity and inversion are then checked by the rule
// itself, which fails with core.ErrPrecondition rather than a dispatch miss.
func EqualityGammaApplies(out int, inbound []message.Kind) bool {
	return len(inbound) >= 3 && inboundAll(out, inbound, message.KindGamma)
}

// ruleEqualityGaussianTriple combines the two inbound univariate Gaussians.
// Form preference exists only to avoid unnecessary inversions:
// both mean-precision → combine in precision space; both moment → combine in
// covariance space with a single pseudo-inverse of the sum; otherwise sum
// the canonical parameters.
func ruleEqualityGaussianTriple(out int, inbound []message.Message) (message.Message, error) {
	var in [2]message.Gaussian
	k := 0
	for i, m := range inbound {
		if i == out {
			continue
		}
		g, _ := m.Gaussian()
		in[k] = g
		k++
	}
	a, b := in[0], in[1]

	if ma, wa, ok := a.MeanPrecision(); ok {
		if mb, wb, ok2 := b.MeanPrecision(); ok2 {
			w := wa + wb

			return message.NewGaussianMeanPrecision(message.Pinv(w)*(wa*ma+wb*mb), w), nil
		}
	}
	if ma, va, ok := a.Moment(); ok {
		if mb, vb, ok2 := b.Moment(); ok2 {
			s := message.Pinv(va + vb)

			return message.NewGaussianMoment((vb*ma+va*mb)*s, va*s*vb), nil
		}
	}

	ca, cb := a.ToCanonical(), b.ToCanonical()
	xia, wa, _ := ca.Canonical()
	xib, wb, _ := cb.Canonical()

	return message.NewGaussianCanonical(xia+xib, wa+wb), nil
}

// ruleEqualityGaussianNary sums the canonical parameters of all N−1 inbound
// univariate Gaussians. Equality composition is associative and commutative
// in canonical form, so this generalizes the 3-port canonical case directly.
func ruleEqualityGaussianNary(out int, inbound []message.Message) (message.Message, error) {
	var xi, w float64
	for i, m := range inbound {
		if i == out {
			continue
		}
		g, _ := m.Gaussian()
		gxi, gw, _ := g.ToCanonical().Canonical()
		xi += gxi
		w += gw
	}

	return message.NewGaussianCanonical(xi, w), nil
}

// ruleEqualityMultivariateTriple is ruleEqualityGaussianTriple over gonum
// vectors/matrices, with the matrix pseudo-inverse in place of scalar Pinv.
func ruleEqualityMultivariateTriple(out int, inbound []message.Message) (message.Message, error) {
	var in [2]message.Multivariate
	k := 0
	for i, m := range inbound {
		if i == out {
			continue
		}
		g, _ := m.Multivariate()
		in[k] = g
		k++
	}
	a, b := in[0], in[1]

	if ma, wa, ok := a.MeanPrecision(); ok {
		if mb, wb, ok2 := b.MeanPrecision(); ok2 {
			var wsum mat.Dense
			wsum.Add(wa, wb)
			inv, err := message.PseudoInverse(&wsum)
			if err != nil {
				return message.Message{}, fmt.Errorf("equality: %w", err)
			}
			var t1, t2, m mat.VecDense
			t1.MulVec(wa, ma)
			t2.MulVec(wb, mb)
			t1.AddVec(&t1, &t2)
			m.MulVec(inv, &t1)

			return message.NewMultivariateMeanPrecision(message.VecSlice(&m), &wsum), nil
		}
	}
	if ma, va, ok := a.Moment(); ok {
		if mb, vb, ok2 := b.Moment(); ok2 {
			var vsum mat.Dense
			vsum.Add(va, vb)
			inv, err := message.PseudoInverse(&vsum)
			if err != nil {
				return message.Message{}, fmt.Errorf("equality: %w", err)
			}
			// V = V₁·pinv(V₁+V₂)·V₂
			var t, v mat.Dense
			t.Mul(va, inv)
			v.Mul(&t, vb)
			// m = V₂·pinv(V₁+V₂)·m₁ + V₁·pinv(V₁+V₂)·m₂
			var pb, pa mat.Dense
			pb.Mul(vb, inv)
			pa.Mul(va, inv)
			var m1, m2 mat.VecDense
			m1.MulVec(&pb, ma)
			m2.MulVec(&pa, mb)
			m1.AddVec(&m1, &m2)

			return message.NewMultivariateMoment(message.VecSlice(&m1), &v), nil
		}
	}

	return sumMultivariateCanonical(out, inbound)
}

// ruleEqualityMultivariateNary sums the canonical parameters of all N−1
// inbound multivariate Gaussians.
func ruleEqualityMultivariateNary(out int, inbound []message.Message) (message.Message, error) {
	return sumMultivariateCanonical(out, inbound)
}

// sumMultivariateCanonical converts every inbound multivariate Gaussian to
// canonical form and sums ξ and W elementwise.
func sumMultivariateCanonical(out int, inbound []message.Message) (message.Message, error) {
	var xiSum *mat.VecDense
	var wSum *mat.Dense
	for i, m := range inbound {
		if i == out {
			continue
		}
		g, _ := m.Multivariate()
		c, err := g.ToCanonical()
		if err != nil {
			return message.Message{}, fmt.Errorf("equality: port %d: %w", i, err)
		}
		xi, w, _ := c.Canonical()
		if xiSum == nil {
			xiSum, wSum = xi, w
			continue
		}
		xiSum.AddVec(xiSum, xi)
		wSum.Add(wSum, w)
	}

	return message.NewMultivariateCanonical(message.VecSlice(xiSum), wSum), nil
}

// ruleEqualityGeneral passes the common inbound value through when all N−1
// inbound values agree, and signals disagreement with a zero value of the
// first inbound's shape. Conflict is a designed result, not an error.
func ruleEqualityGeneral(out int, inbound []message.Message) (message.Message, error) {
	var first message.General
	seen := false
	for i, m := range inbound {
		if i == out {
			continue
		}
		g, _ := m.General()
		if !seen {
			first = g
			seen = true

			continue
		}
		if !first.EqualTo(g) {
			return first.Zero(), nil
		}
	}

	return first.Message(), nil
}

// ruleEqualityGamma combines inverse-Gamma messages on a 3-port equality
// node: a_out = 1 + Σaᵢ, b_out = Σbᵢ, inverted. Any other arity, or an
// inbound message without the inverted flag, violates the rule's
// precondition.
func ruleEqualityGamma(out int, inbound []message.Message) (message.Message, error) {
	if len(inbound) != 3 {
		return message.Message{}, fmt.Errorf("equality: gamma rule needs 3 ports, got %d: %w", len(inbound), core.ErrPrecondition)
	}
	var shape, rate float64
	for i, m := range inbound {
		if i == out {
			continue
		}
		g, _ := m.Gamma()
		if !g.Inverted() {
			return message.Message{}, fmt.Errorf("equality: gamma inbound at port %d not inverted: %w", i, core.ErrPrecondition)
		}
		shape += g.Shape()
		rate += g.Rate()
	}

	return message.NewGamma(1+shape, rate, true), nil
}
