package propagate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/tverien/mpgraph/core"
	"github.com/tverien/mpgraph/message"
	"github.com/tverien/mpgraph/propagate"
)

func TestVagueFallback_TargetMessage(t *testing.T) {
	eq := mustEquality(t, "eq", 3)
	eq.Interfaces()[0].StoreMessage(message.NewGamma(2, 3, true))

	got := propagate.VagueFallback(eq.Interfaces()[0])
	g, ok := got.Gamma()
	require.True(t, ok)
	assert.True(t, g.Inverted())
}

func TestVagueFallback_PartnerMessage(t *testing.T) {
	eqA := mustEquality(t, "a", 3)
	eqB := mustEquality(t, "b", 3)
	_, err := core.Connect(eqA.Interfaces()[0], eqB.Interfaces()[0])
	require.NoError(t, err)
	eqB.Interfaces()[0].StoreMessage(message.NewMultivariateMoment(
		[]float64{1, 2}, mat.NewDense(2, 2, []float64{1, 0, 0, 1})))

	got := propagate.VagueFallback(eqA.Interfaces()[0])
	g, ok := got.Multivariate()
	require.True(t, ok)
	assert.Equal(t, 2, g.Dim(), "fallback must preserve the evidence's dimension")
}

// TestVagueFallback_ConstantValueIsEvidence: a Constant's pinned value names
// the family even before its rule has ever produced a message.
func TestVagueFallback_ConstantValueIsEvidence(t *testing.T) {
	c := mustConstant(t, "c", message.NewGamma(2, 3, true))

	got := propagate.VagueFallback(c.Interfaces()[0])
	g, ok := got.Gamma()
	require.True(t, ok)
	assert.True(t, g.Inverted())
}

// TestVagueFallback_SiblingEvidence: with the target and its partner both
// empty, the observation hanging off a sibling port decides the family.
func TestVagueFallback_SiblingEvidence(t *testing.T) {
	eqA := mustEquality(t, "a", 3)
	eqB := mustEquality(t, "b", 3)
	_, err := core.Connect(eqA.Interfaces()[0], eqB.Interfaces()[0])
	require.NoError(t, err)
	obs := mustConstant(t, "obs", message.NewGamma(2, 3, true))
	_, err = core.Connect(obs.Interfaces()[0], eqA.Interfaces()[2])
	require.NoError(t, err)

	got := propagate.VagueFallback(eqA.Interfaces()[0])
	_, ok := got.Gamma()
	assert.True(t, ok)
}

func TestVagueFallback_NoEvidenceDefaultsToGaussian(t *testing.T) {
	eq := mustEquality(t, "eq", 3)

	got := propagate.VagueFallback(eq.Interfaces()[0])
	g, ok := got.Gaussian()
	require.True(t, ok)
	m, v, ok := g.Moment()
	require.True(t, ok)
	assert.Equal(t, 0.0, m)
	assert.Equal(t, 1e12, v)
}

// TestCalculateMessage_GammaCycleDegrades: a cycle carrying inverse-Gamma
// messages must terminate with a degraded Gamma result, never an error —
// in particular never a dispatch failure from a wrong-family fallback.
func TestCalculateMessage_GammaCycleDegrades(t *testing.T) {
	eqA, _ := cyclePairWith(t,
		message.NewGamma(2, 3, true),
		message.NewGamma(4, 5, true))

	got, err := propagate.CalculateMessage(eqA, eqA.Interfaces()[0])
	require.NoError(t, err)
	g, ok := got.Gamma()
	require.True(t, ok)
	assert.True(t, g.Inverted())
}

func TestCalculateMessage_MultivariateCycleDegrades(t *testing.T) {
	eye := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	eqA, _ := cyclePairWith(t,
		message.NewMultivariateMoment([]float64{1, 2}, eye),
		message.NewMultivariateMoment([]float64{3, 4}, eye))

	got, err := propagate.CalculateMessage(eqA, eqA.Interfaces()[0])
	require.NoError(t, err)
	g, ok := got.Multivariate()
	require.True(t, ok)
	assert.Equal(t, 2, g.Dim())
}
