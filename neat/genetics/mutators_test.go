package genetics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvarga/neat-snake/neat/math"
	"github.com/mvarga/neat-snake/neat/rand"
)

func TestNeuronMutatorCounterStartsAtNumOutputs(t *testing.T) {
	m := NewNeuronMutator(3, &NeuronMutatorOptions{DefaultActivation: math.Sigmoid, BiasMin: -30, BiasMax: 30})
	assert.Equal(t, 3, m.PeekNext())
	assert.Equal(t, 3, m.Next())
	assert.Equal(t, 4, m.PeekNext())
}

func TestNeuronMutatorSetNextNeverMovesBackwards(t *testing.T) {
	m := NewNeuronMutator(0, &NeuronMutatorOptions{BiasMin: -30, BiasMax: 30})
	m.SetNext(10)
	m.SetNext(2)
	assert.Equal(t, 10, m.PeekNext())
}

func TestNeuronMutatorNewNeuronRespectsClamp(t *testing.T) {
	rng := rand.New(1)
	m := NewNeuronMutator(0, &NeuronMutatorOptions{
		BiasInitMean: 0, BiasInitStddev: 1000, BiasMin: -5, BiasMax: 5,
		DefaultActivation: math.ReLU,
	})
	for i := 0; i < 50; i++ {
		n := m.NewNeuron(rng)
		assert.GreaterOrEqual(t, n.Bias, -5.0)
		assert.LessOrEqual(t, n.Bias, 5.0)
		assert.Equal(t, math.ReLU, n.Activation)
	}
}

func TestNeuronMutatorMutateNeverTouchesActivationOfOutput(t *testing.T) {
	rng := rand.New(2)
	m := NewNeuronMutator(2, &NeuronMutatorOptions{
		MutationRate: 1.0, ReplaceRate: 0, BiasMin: -30, BiasMax: 30,
		DefaultActivation: math.Sigmoid,
	})
	out := NeuronGene{NeuronID: 0, Activation: math.Softmax}
	for i := 0; i < 20; i++ {
		m.Mutate(rng, &out, 2)
		assert.Equal(t, math.Softmax, out.Activation)
	}
}

func TestLinkMutatorNewWeightRespectsClamp(t *testing.T) {
	rng := rand.New(3)
	m := NewLinkMutator(&LinkMutatorOptions{WeightInitMean: 0, WeightInitStddev: 1000, WeightMin: -2, WeightMax: 2})
	for i := 0; i < 50; i++ {
		w := m.NewWeight(rng)
		assert.GreaterOrEqual(t, w, -2.0)
		assert.LessOrEqual(t, w, 2.0)
	}
}
