package propagate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tverien/mpgraph/core"
	"github.com/tverien/mpgraph/message"
	"github.com/tverien/mpgraph/propagate"
)

func TestCalculateMarginal_GaussianCanonical(t *testing.T) {
	got, err := propagate.CalculateMarginal(
		message.NewGaussianCanonical(1, 2),
		message.NewGaussianCanonical(3, 4))
	require.NoError(t, err)

	g, ok := got.Gaussian()
	require.True(t, ok)
	xi, w, ok := g.Canonical()
	require.True(t, ok)
	assert.InDelta(t, 4.0, xi, eps)
	assert.InDelta(t, 6.0, w, eps)
}

func TestCalculateMarginal_InverseGamma(t *testing.T) {
	got, err := propagate.CalculateMarginal(
		message.NewGamma(1, 2, true),
		message.NewGamma(3, 4, true))
	require.NoError(t, err)

	g, ok := got.Gamma()
	require.True(t, ok)
	assert.InDelta(t, 5.0, g.Shape(), eps)
	assert.InDelta(t, 6.0, g.Rate(), eps)
	assert.True(t, g.Inverted())
}

func TestCalculateMarginal_FamilyMismatch(t *testing.T) {
	_, err := propagate.CalculateMarginal(
		message.NewGaussianCanonical(1, 2),
		message.NewGamma(3, 4, true))
	assert.ErrorIs(t, err, core.ErrTypeMismatch)
}

func TestCalculateEdgeMarginal(t *testing.T) {
	a := mustConstant(t, "a", message.NewGaussianCanonical(1, 2))
	b := mustConstant(t, "b", message.NewGaussianCanonical(3, 4))
	e, err := core.Connect(a.Interfaces()[0], b.Interfaces()[0])
	require.NoError(t, err)

	// A fresh edge carries no messages yet.
	_, err = propagate.CalculateEdgeMarginal(e)
	assert.ErrorIs(t, err, propagate.ErrMissingMessage)

	_, err = propagate.CalculateForwardMessage(e)
	require.NoError(t, err)
	_, err = propagate.CalculateEdgeMarginal(e)
	assert.ErrorIs(t, err, propagate.ErrMissingMessage, "head side still empty")

	_, err = propagate.CalculateBackwardMessage(e)
	require.NoError(t, err)

	got, err := propagate.CalculateEdgeMarginal(e)
	require.NoError(t, err)
	g, _ := got.Gaussian()
	xi, w, ok := g.Canonical()
	require.True(t, ok)
	assert.InDelta(t, 4.0, xi, eps)
	assert.InDelta(t, 6.0, w, eps)

	_, err = propagate.CalculateEdgeMarginal(nil)
	assert.ErrorIs(t, err, propagate.ErrNilEdge)
}
