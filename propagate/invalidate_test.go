package propagate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tverien/mpgraph/core"
	"github.com/tverien/mpgraph/message"
	"github.com/tverien/mpgraph/propagate"
)

// fillAll computes every outbound message on the given nodes so each
// interface holds a valid cache entry.
func fillAll(t *testing.T, ns ...core.Node) {
	t.Helper()
	for _, n := range ns {
		require.NoError(t, propagate.CalculateMessages(n))
	}
}

func TestInvalidate_ChainPropagation(t *testing.T) {
	// c1 → eq1 → eq2, with observations on the remaining ports.
	eq1 := mustEquality(t, "eq1", 3)
	eq2 := mustEquality(t, "eq2", 3)
	c1 := mustConstant(t, "c1", message.NewGaussianMeanPrecision(1, 1))
	c2 := mustConstant(t, "c2", message.NewGaussianMeanPrecision(2, 1))
	c3 := mustConstant(t, "c3", message.NewGaussianMeanPrecision(3, 1))
	c4 := mustConstant(t, "c4", message.NewGaussianMeanPrecision(4, 1))

	for _, pair := range [][2]*core.Interface{
		{c1.Interfaces()[0], eq1.Interfaces()[0]},
		{c2.Interfaces()[0], eq1.Interfaces()[2]},
		{eq1.Interfaces()[1], eq2.Interfaces()[0]},
		{c3.Interfaces()[0], eq2.Interfaces()[1]},
		{c4.Interfaces()[0], eq2.Interfaces()[2]},
	} {
		_, err := core.Connect(pair[0], pair[1])
		require.NoError(t, err)
	}
	fillAll(t, c1, c2, c3, c4, eq1, eq2)

	propagate.Invalidate(c1.Interfaces()[0])

	assert.False(t, c1.Interfaces()[0].Valid())
	// Both other eq1 ports depend on the observation.
	assert.False(t, eq1.Interfaces()[1].Valid())
	assert.False(t, eq1.Interfaces()[2].Valid())
	// Two hops downstream.
	assert.False(t, eq2.Interfaces()[1].Valid())
	assert.False(t, eq2.Interfaces()[2].Valid())
	// eq1's own inbound cache at port 0 is eq1's outbound toward c1; it does
	// not depend on c1's message and stays valid.
	assert.True(t, eq1.Interfaces()[0].Valid())

	// Stale messages stay present for inspection.
	_, present := eq2.Interfaces()[2].Message()
	assert.True(t, present)
}

func TestInvalidate_CycleTerminatesAndIsIdempotent(t *testing.T) {
	eqA, eqB := cyclePair(t)
	fillAll(t, eqA, eqB)
	for _, n := range []core.Node{eqA, eqB} {
		for _, ifc := range n.Interfaces() {
			require.True(t, ifc.Valid())
		}
	}

	propagate.Invalidate(eqA.Interfaces()[2].Partner()) // the observation's port

	for _, n := range []core.Node{eqA, eqB} {
		for _, ifc := range n.Interfaces() {
			assert.False(t, ifc.Valid())
		}
	}

	// A second call finds everything already invalid and stops immediately.
	propagate.Invalidate(eqA.Interfaces()[2].Partner())
	for _, ifc := range eqA.Interfaces() {
		assert.False(t, ifc.Valid())
	}
}

func TestPushMessageInvalidations_SourceStaysValid(t *testing.T) {
	eq := mustEquality(t, "eq", 3)
	c1 := mustConstant(t, "c1", message.NewGaussianMeanPrecision(1, 1))
	c2 := mustConstant(t, "c2", message.NewGaussianMeanPrecision(2, 1))
	_, err := core.Connect(c1.Interfaces()[0], eq.Interfaces()[0])
	require.NoError(t, err)
	_, err = core.Connect(c2.Interfaces()[0], eq.Interfaces()[1])
	require.NoError(t, err)
	fillAll(t, c1, c2)
	_, err = propagate.CalculateMessage(eq, eq.Interfaces()[2])
	require.NoError(t, err)

	// Refresh the observation, then push staleness downstream of it.
	c1.Interfaces()[0].StoreMessage(message.NewGaussianMeanPrecision(5, 1))
	propagate.PushMessageInvalidations(c1.Interfaces()[0])

	assert.True(t, c1.Interfaces()[0].Valid(), "the fresh message must survive the push")
	assert.False(t, eq.Interfaces()[1].Valid())
	assert.False(t, eq.Interfaces()[2].Valid())

	// Recomputation picks up the new observation.
	got, err := propagate.CalculateMessage(eq, eq.Interfaces()[2])
	require.NoError(t, err)
	g, _ := got.Gaussian()
	m, w, ok := g.MeanPrecision()
	require.True(t, ok)
	assert.InDelta(t, 3.5, m, eps)
	assert.InDelta(t, 2.0, w, eps)
}

func TestInvalidate_UnconnectedAndNil(t *testing.T) {
	eq := mustEquality(t, "eq", 3)
	eq.Interfaces()[0].StoreMessage(message.NewScalar(1))

	// No partner: the interface itself is marked, nothing else to do.
	propagate.Invalidate(eq.Interfaces()[0])
	assert.False(t, eq.Interfaces()[0].Valid())

	assert.NotPanics(t, func() { propagate.Invalidate(nil) })
	assert.NotPanics(t, func() { propagate.PushMessageInvalidations(nil) })
}
