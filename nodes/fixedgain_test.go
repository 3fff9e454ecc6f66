package nodes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/tverien/mpgraph/core"
	"github.com/tverien/mpgraph/message"
	"github.com/tverien/mpgraph/nodes"
)

func runFixedGain(t *testing.T, n *nodes.FixedGain, out int, inbound []message.Message) message.Message {
	t.Helper()
	kinds := make([]message.Kind, len(inbound))
	for i, m := range inbound {
		kinds[i] = m.Kind()
	}
	rule, err := n.ResolveRule(out, kinds)
	require.NoError(t, err)
	got, err := rule(out, inbound)
	require.NoError(t, err)

	return got
}

func TestNewFixedGain(t *testing.T) {
	_, err := nodes.NewFixedGain("g", nil)
	assert.ErrorIs(t, err, nodes.ErrNilGain)

	gain := mat.NewDense(1, 1, []float64{2})
	n, err := nodes.NewFixedGain("g", gain)
	require.NoError(t, err)
	assert.Len(t, n.Interfaces(), 2)

	// The gain is copied at construction.
	gain.Set(0, 0, 99)
	assert.Equal(t, 2.0, n.Gain().At(0, 0))
}

func TestFixedGainScalar_Forward(t *testing.T) {
	n, err := nodes.NewFixedGain("g", mat.NewDense(1, 1, []float64{2}))
	require.NoError(t, err)

	got := runFixedGain(t, n, 1, []message.Message{message.NewGaussianMoment(3, 4), message.Elided()})
	g, _ := got.Gaussian()
	m, v, ok := g.Moment()
	require.True(t, ok)
	assert.InDelta(t, 6.0, m, eps)  // k·m
	assert.InDelta(t, 16.0, v, eps) // k²·V
}

func TestFixedGainScalar_Backward(t *testing.T) {
	n, err := nodes.NewFixedGain("g", mat.NewDense(1, 1, []float64{2}))
	require.NoError(t, err)

	got := runFixedGain(t, n, 0, []message.Message{message.Elided(), message.NewGaussianCanonical(1, 2)})
	g, _ := got.Gaussian()
	xi, w, ok := g.Canonical()
	require.True(t, ok)
	assert.InDelta(t, 2.0, xi, eps) // k·ξ
	assert.InDelta(t, 8.0, w, eps)  // k²·W
}

func TestFixedGainMatrix_Forward(t *testing.T) {
	gain := mat.NewDense(2, 2, []float64{1, 1, 0, 1})
	n, err := nodes.NewFixedGain("g", gain)
	require.NoError(t, err)

	eye := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	got := runFixedGain(t, n, 1, []message.Message{
		message.NewMultivariateMoment([]float64{1, 2}, eye),
		message.Elided(),
	})
	g, _ := got.Multivariate()
	m, v, ok := g.Moment()
	require.True(t, ok)

	// m = A·[1 2] = [3 2]; V = A·I·Aᵀ = [[2 1][1 1]]
	assert.InDelta(t, 3.0, m.AtVec(0), eps)
	assert.InDelta(t, 2.0, m.AtVec(1), eps)
	assert.InDelta(t, 2.0, v.At(0, 0), eps)
	assert.InDelta(t, 1.0, v.At(0, 1), eps)
	assert.InDelta(t, 1.0, v.At(1, 0), eps)
	assert.InDelta(t, 1.0, v.At(1, 1), eps)
}

func TestFixedGainMatrix_Backward(t *testing.T) {
	gain := mat.NewDense(2, 2, []float64{1, 1, 0, 1})
	n, err := nodes.NewFixedGain("g", gain)
	require.NoError(t, err)

	eye := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	got := runFixedGain(t, n, 0, []message.Message{
		message.Elided(),
		message.NewMultivariateCanonical([]float64{1, 1}, eye),
	})
	g, _ := got.Multivariate()
	xi, w, ok := g.Canonical()
	require.True(t, ok)

	// ξ = Aᵀ·[1 1] = [1 2]; W = Aᵀ·I·A = [[1 1][1 2]]
	assert.InDelta(t, 1.0, xi.AtVec(0), eps)
	assert.InDelta(t, 2.0, xi.AtVec(1), eps)
	assert.InDelta(t, 1.0, w.At(0, 0), eps)
	assert.InDelta(t, 1.0, w.At(0, 1), eps)
	assert.InDelta(t, 1.0, w.At(1, 0), eps)
	assert.InDelta(t, 2.0, w.At(1, 1), eps)
}

func TestFixedGain_Dispatch(t *testing.T) {
	n, err := nodes.NewFixedGain("g", mat.NewDense(2, 2, []float64{1, 0, 0, 1}))
	require.NoError(t, err)

	// Univariate messages through a non-scalar gain have no rule.
	_, err = n.ResolveRule(1, []message.Kind{message.KindGaussian, message.KindElided})
	assert.ErrorIs(t, err, core.ErrRuleNotFound)

	// Unsupported family.
	_, err = n.ResolveRule(1, []message.Kind{message.KindGamma, message.KindElided})
	assert.ErrorIs(t, err, core.ErrRuleNotFound)

	// Malformed tuples.
	_, err = n.ResolveRule(2, []message.Kind{message.KindMultivariate, message.KindElided})
	assert.ErrorIs(t, err, core.ErrRuleNotFound)
	_, err = n.ResolveRule(1, []message.Kind{message.KindMultivariate, message.KindMultivariate})
	assert.ErrorIs(t, err, core.ErrRuleNotFound)
}
