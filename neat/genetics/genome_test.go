package genetics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvarga/neat-snake/neat/math"
	"github.com/mvarga/neat-snake/neat/rand"
)

func testOptions() *GenomeOptions {
	return &GenomeOptions{
		NumInputs:         2,
		NumOutputs:        2,
		NumHidden:         0,
		DefaultActivation: math.Sigmoid,
		BiasInitMean:      0, BiasInitStddev: 1, BiasMin: -30, BiasMax: 30,
		WeightInitMean: 0, WeightInitStddev: 1, WeightMin: -30, WeightMax: 30,
		MutationRate: 0.3, MutationPower: 0.8, ReplaceRate: 0.05,
		NeuronAddProb: 0.03, NeuronDelProb: 0.01, LinkAddProb: 0.05, LinkDelProb: 0.01,
	}
}

// Boundary scenario 9: seeding with num_inputs=2, num_outputs=2, num_hidden=0
// produces exactly 4 links, 4 neurons, and layers [[-1,-2],[0,1]].
func TestSeedTopologyBoundary(t *testing.T) {
	rng := rand.New(1)
	g := NewGenome(0, testOptions(), rng)

	assert.Len(t, g.Links, 4)
	assert.Len(t, g.Neurons, 4)

	net, err := g.ToNetwork()
	require.NoError(t, err)
	layers := net.Layers()
	require.Len(t, layers, 2)
	assert.ElementsMatch(t, []int{-1, -2}, layers[0])
	assert.ElementsMatch(t, []int{0, 1}, layers[1])
}

// Invariant 10: a genome whose only links are disabled produces outputs
// equal to the activation applied to each output's bias, even though no
// enabled link reaches any output.
func TestAllLinksDisabledYieldsBiasOnlyOutputs(t *testing.T) {
	rng := rand.New(2)
	g := NewGenome(0, testOptions(), rng)
	for i := range g.Links {
		g.Links[i].IsEnabled = false
	}

	net, err := g.ToNetwork()
	require.NoError(t, err)
	out, err := net.Activate([]float64{1, 1})
	require.NoError(t, err)

	require.Len(t, out, 2)
	for i, id := range []int{0, 1} {
		n := g.FindNeuron(id)
		require.NotNil(t, n)
		assert.InDelta(t, n.Activation.Apply(n.Bias), out[i], 1e-9)
	}
}

// Invariant 11: mutate_remove_neuron on a genome with num_hidden=0 is a
// no-op.
func TestRemoveNeuronNoHiddenIsNoop(t *testing.T) {
	rng := rand.New(3)
	g := NewGenome(0, testOptions(), rng)
	before := len(g.Neurons)

	g.RemoveNeuron(rng)

	assert.Equal(t, before, len(g.Neurons))
	assert.Equal(t, 0, g.NumHidden)
}

// Invariant 12: add_link proposing a self-loop is rejected.
func TestIsCyclicRejectsSelfLoop(t *testing.T) {
	rng := rand.New(4)
	g := NewGenome(0, testOptions(), rng)
	assert.True(t, g.IsCyclic(0, 0))
}

// Invariants 1-5, checked after a burst of randomized mutation.
func TestStructuralInvariantsHoldAfterMutation(t *testing.T) {
	rng := rand.New(5)
	opts := testOptions()
	g := NewGenome(0, opts, rng)

	for i := 0; i < 200; i++ {
		g.Mutate(rng, opts)
		require.NoError(t, g.Verify(), "iteration %d", i)

		seen := map[LinkID]bool{}
		for _, l := range g.Links {
			require.False(t, seen[l.ID], "duplicate link id %s at iteration %d", l.ID, i)
			seen[l.ID] = true
		}

		hidden := 0
		for _, n := range g.Neurons {
			if n.IsHidden(g.NumOutputs) {
				hidden++
			}
		}
		assert.Equal(t, g.NumHidden, hidden)
		assert.Equal(t, g.NumInputs+g.NumOutputs+g.NumHidden, len(g.Neurons))
	}
}

// Invariant 8: add-link followed by removing that same link restores the
// original count, when the added link was not a re-enable.
func TestAddThenRemoveLinkRestoresCount(t *testing.T) {
	rng := rand.New(6)
	opts := testOptions()
	opts.NumHidden = 1
	g := NewGenome(0, opts, rng)

	before := len(g.Links)
	// Retry until AddLink appends a genuinely new link (a proposal can also
	// re-enable an existing link or be rejected as a self-loop).
	for i := 0; i < 100 && len(g.Links) == before; i++ {
		g.AddLink(rng)
	}
	added := g.Links[len(g.Links)-1].ID
	assert.Equal(t, before+1, len(g.Links))

	idx := -1
	for i, l := range g.Links {
		if l.ID == added {
			idx = i
			break
		}
	}
	require.GreaterOrEqual(t, idx, 0)
	g.Links = append(g.Links[:idx], g.Links[idx+1:]...)
	assert.Equal(t, before, len(g.Links))
}

// Invariant 6: network evaluation is deterministic for a fixed genome and
// fixed input.
func TestActivateIsDeterministic(t *testing.T) {
	rng := rand.New(7)
	g := NewGenome(0, testOptions(), rng)
	net, err := g.ToNetwork()
	require.NoError(t, err)

	in := []float64{0.3, -0.7}
	a, err := net.Activate(in)
	require.NoError(t, err)
	b, err := net.Activate(in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// Invariant 7: activating any well-formed genome's network on a zero vector
// returns num_outputs values.
func TestActivateZeroVectorOutputLength(t *testing.T) {
	rng := rand.New(8)
	opts := testOptions()
	opts.NumHidden = 3
	g := NewGenome(0, opts, rng)
	net, err := g.ToNetwork()
	require.NoError(t, err)

	out, err := net.Activate(make([]float64, opts.NumInputs))
	require.NoError(t, err)
	assert.Len(t, out, opts.NumOutputs)
}
