package genetics

import (
	"github.com/mvarga/neat-snake/neat/math"
	"github.com/mvarga/neat-snake/neat/rand"
)

// NeuronMutator owns the parameters governing how new neuron genes are
// created and how existing ones drift, plus the monotonically increasing
// hidden-neuron id counter. It is owned by exactly one Genome; ids are never
// reused within that genome's lifetime, even after a neuron is deleted.
type NeuronMutator struct {
	BiasInitMean   float64
	BiasInitStddev float64
	BiasMin        float64
	BiasMax        float64
	MutationRate   float64
	MutationPower  float64
	ReplaceRate    float64

	DefaultActivation math.ActivationType

	nextID int
}

// NewNeuronMutator constructs a NeuronMutator whose id counter starts at
// numOutputs, the first id available to a hidden neuron under the
// partitioned neuron-id space (inputs negative, outputs [0, numOutputs),
// hidden ids counting up from there).
func NewNeuronMutator(numOutputs int, opts *NeuronMutatorOptions) *NeuronMutator {
	return &NeuronMutator{
		BiasInitMean:      opts.BiasInitMean,
		BiasInitStddev:    opts.BiasInitStddev,
		BiasMin:           opts.BiasMin,
		BiasMax:           opts.BiasMax,
		MutationRate:      opts.MutationRate,
		MutationPower:     opts.MutationPower,
		ReplaceRate:       opts.ReplaceRate,
		DefaultActivation: opts.DefaultActivation,
		nextID:            numOutputs,
	}
}

// NeuronMutatorOptions bundles the configuration a NeuronMutator needs at
// construction; it mirrors the bias and mutation subset of GenomeOptions
// (itself projected from neat.Options by GenomeOptionsFromNeat).
type NeuronMutatorOptions struct {
	BiasInitMean      float64
	BiasInitStddev    float64
	BiasMin           float64
	BiasMax           float64
	MutationRate      float64
	MutationPower     float64
	ReplaceRate       float64
	DefaultActivation math.ActivationType
}

// Next advances and returns the id counter. NewNeuron takes every fresh
// hidden-neuron id from it.
func (m *NeuronMutator) Next() int {
	id := m.nextID
	m.nextID++
	return id
}

// PeekNext returns the id the next call to Next will return, without
// consuming it. Used by persistence code restoring a counter's high-water
// mark.
func (m *NeuronMutator) PeekNext() int {
	return m.nextID
}

// SetNext forces the id counter to at least id, never moving it backwards.
// Used when restoring a genome from a checkpoint.
func (m *NeuronMutator) SetNext(id int) {
	if id > m.nextID {
		m.nextID = id
	}
}

// NewNeuron draws a fresh hidden neuron: a clamped Gaussian bias, a fresh id
// from the counter, tagged with the configured default activation.
func (m *NeuronMutator) NewNeuron(rng *rand.Source) NeuronGene {
	bias := rand.Clamp(rng.Gaussian(m.BiasInitMean, m.BiasInitStddev), m.BiasMin, m.BiasMax)
	return NeuronGene{
		NeuronID:   m.Next(),
		Bias:       bias,
		Activation: m.DefaultActivation,
	}
}

// Mutate applies the parametric mutation schedule to a single neuron gene in
// place: a single uniform draw decides between full bias resample and
// incremental bias drift, and an independent draw may swap the activation
// tag - but only for hidden neurons (neuronID >= numOutputs), since inputs
// and outputs have fixed roles in the topology.
func (m *NeuronMutator) Mutate(rng *rand.Source, n *NeuronGene, numOutputs int) {
	p := rng.Float64()
	if p < m.ReplaceRate {
		n.Bias = rand.Clamp(rng.Gaussian(m.BiasInitMean, m.BiasInitStddev), m.BiasMin, m.BiasMax)
	} else if p < m.ReplaceRate+m.MutationRate {
		n.Bias = rand.Clamp(n.Bias+rng.Gaussian(0, m.MutationPower), m.BiasMin, m.BiasMax)
	}

	if n.NeuronID >= numOutputs && rng.Bool(m.MutationRate) {
		n.Activation = rand.ChooseFrom(rng, math.MutableActivationTypes)
	}
}

// LinkMutator owns the parameters governing how new link genes are created
// and how existing weights drift. It mirrors NeuronMutator for the weight
// field; link enable/disable toggling is deliberately absent, matching the
// source's LinkMutator.mutate which carries the toggle commented out.
type LinkMutator struct {
	WeightInitMean   float64
	WeightInitStddev float64
	WeightMin        float64
	WeightMax        float64
	MutationRate     float64
	MutationPower    float64
	ReplaceRate      float64
}

// LinkMutatorOptions bundles the configuration a LinkMutator needs.
type LinkMutatorOptions struct {
	WeightInitMean   float64
	WeightInitStddev float64
	WeightMin        float64
	WeightMax        float64
	MutationRate     float64
	MutationPower    float64
	ReplaceRate      float64
}

// NewLinkMutator constructs a LinkMutator from options.
func NewLinkMutator(opts *LinkMutatorOptions) *LinkMutator {
	return &LinkMutator{
		WeightInitMean:   opts.WeightInitMean,
		WeightInitStddev: opts.WeightInitStddev,
		WeightMin:        opts.WeightMin,
		WeightMax:        opts.WeightMax,
		MutationRate:     opts.MutationRate,
		MutationPower:    opts.MutationPower,
		ReplaceRate:      opts.ReplaceRate,
	}
}

// NewWeight draws a clamped Gaussian weight for a freshly created link.
func (m *LinkMutator) NewWeight(rng *rand.Source) float64 {
	return rand.Clamp(rng.Gaussian(m.WeightInitMean, m.WeightInitStddev), m.WeightMin, m.WeightMax)
}

// Mutate applies the replace/drift schedule to a link's weight in place.
// Enable-state toggling is intentionally not performed; see the LinkMutator
// doc comment.
func (m *LinkMutator) Mutate(rng *rand.Source, l *LinkGene) {
	p := rng.Float64()
	if p < m.ReplaceRate {
		l.Weight = rand.Clamp(rng.Gaussian(m.WeightInitMean, m.WeightInitStddev), m.WeightMin, m.WeightMax)
	} else if p < m.ReplaceRate+m.MutationRate {
		l.Weight = rand.Clamp(l.Weight+rng.Gaussian(0, m.MutationPower), m.WeightMin, m.WeightMax)
	}
}
