package genetics

import (
	"fmt"
	stdmath "math"

	"github.com/mvarga/neat-snake/neat/math"
	"github.com/mvarga/neat-snake/neat/network"
	"github.com/mvarga/neat-snake/neat/rand"
)

// FitnessNotComputed is the sentinel "not yet evaluated" fitness value: the
// minimum representable float.
const FitnessNotComputed = -stdmath.MaxFloat64

// GenomeOptions bundles the construction-time configuration a Genome needs:
// topology shape, gene initialization parameters, and the structural
// mutation probabilities consulted by Mutate.
type GenomeOptions struct {
	NumInputs  int
	NumOutputs int
	NumHidden  int

	DefaultActivation math.ActivationType

	BiasInitMean   float64
	BiasInitStddev float64
	BiasMin        float64
	BiasMax        float64

	WeightInitMean   float64
	WeightInitStddev float64
	WeightMin        float64
	WeightMax        float64

	MutationRate  float64
	MutationPower float64
	ReplaceRate   float64

	NeuronAddProb float64
	NeuronDelProb float64
	LinkAddProb   float64
	LinkDelProb   float64
}

func (o *GenomeOptions) neuronMutatorOptions() *NeuronMutatorOptions {
	return &NeuronMutatorOptions{
		BiasInitMean:      o.BiasInitMean,
		BiasInitStddev:    o.BiasInitStddev,
		BiasMin:           o.BiasMin,
		BiasMax:           o.BiasMax,
		MutationRate:      o.MutationRate,
		MutationPower:     o.MutationPower,
		ReplaceRate:       o.ReplaceRate,
		DefaultActivation: o.DefaultActivation,
	}
}

func (o *GenomeOptions) linkMutatorOptions() *LinkMutatorOptions {
	return &LinkMutatorOptions{
		WeightInitMean:   o.WeightInitMean,
		WeightInitStddev: o.WeightInitStddev,
		WeightMin:        o.WeightMin,
		WeightMax:        o.WeightMax,
		MutationRate:     o.MutationRate,
		MutationPower:    o.MutationPower,
		ReplaceRate:      o.ReplaceRate,
	}
}

// Genome is the graph of neuron and link genes evolved by the population: an
// id, ordered gene sequences, its two owned mutators, and a fitness value.
type Genome struct {
	ID int

	NumInputs  int
	NumOutputs int
	NumHidden  int

	Neurons []NeuronGene
	Links   []LinkGene

	NeuronMutator *NeuronMutator
	LinkMutator   *LinkMutator

	Fitness float64
}

// NewGenome constructs a seeded genome: num_inputs input
// neurons with negative ids, num_outputs output neurons tagged SOFTMAX,
// num_hidden hidden neurons, and a dense input->(hidden->)output topology of
// Gaussian-clamped, enabled links.
func NewGenome(id int, opts *GenomeOptions, rng *rand.Source) *Genome {
	g := &Genome{
		ID:            id,
		NumInputs:     opts.NumInputs,
		NumOutputs:    opts.NumOutputs,
		NumHidden:     opts.NumHidden,
		NeuronMutator: NewNeuronMutator(opts.NumOutputs, opts.neuronMutatorOptions()),
		LinkMutator:   NewLinkMutator(opts.linkMutatorOptions()),
		Fitness:       FitnessNotComputed,
	}

	inputIDs := make([]int, opts.NumInputs)
	for i := 0; i < opts.NumInputs; i++ {
		id := -(i + 1)
		inputIDs[i] = id
		g.Neurons = append(g.Neurons, NeuronGene{NeuronID: id, Bias: 0, Activation: math.Linear})
	}

	outputIDs := make([]int, opts.NumOutputs)
	for i := 0; i < opts.NumOutputs; i++ {
		outputIDs[i] = i
		bias := rand.Clamp(rng.Gaussian(opts.BiasInitMean, opts.BiasInitStddev), opts.BiasMin, opts.BiasMax)
		g.Neurons = append(g.Neurons, NeuronGene{NeuronID: i, Bias: bias, Activation: math.Softmax})
	}

	hiddenIDs := make([]int, opts.NumHidden)
	for i := 0; i < opts.NumHidden; i++ {
		n := g.NeuronMutator.NewNeuron(rng)
		hiddenIDs[i] = n.NeuronID
		g.Neurons = append(g.Neurons, n)
	}

	addLink := func(in, out int) {
		g.Links = append(g.Links, LinkGene{
			ID:        LinkID{InputID: in, OutputID: out},
			Weight:    g.LinkMutator.NewWeight(rng),
			IsEnabled: true,
		})
	}

	if opts.NumHidden == 0 {
		for _, i := range inputIDs {
			for _, o := range outputIDs {
				addLink(i, o)
			}
		}
	} else {
		for _, i := range inputIDs {
			for _, h := range hiddenIDs {
				addLink(i, h)
			}
		}
		for _, h := range hiddenIDs {
			for _, o := range outputIDs {
				addLink(h, o)
			}
		}
	}

	return g
}

// Clone returns a deep copy of g, including independent copies of its
// mutators (so the clone's counter can diverge from the original's).
func (g *Genome) Clone() *Genome {
	clone := &Genome{
		ID:         g.ID,
		NumInputs:  g.NumInputs,
		NumOutputs: g.NumOutputs,
		NumHidden:  g.NumHidden,
		Neurons:    append([]NeuronGene(nil), g.Neurons...),
		Links:      append([]LinkGene(nil), g.Links...),
		Fitness:    g.Fitness,
	}
	nm := *g.NeuronMutator
	lm := *g.LinkMutator
	clone.NeuronMutator = &nm
	clone.LinkMutator = &lm
	return clone
}

// FindNeuron returns a pointer into g.Neurons for the given id, or nil.
func (g *Genome) FindNeuron(id int) *NeuronGene {
	for i := range g.Neurons {
		if g.Neurons[i].NeuronID == id {
			return &g.Neurons[i]
		}
	}
	return nil
}

// FindLink returns a pointer into g.Links for the given LinkID, or nil.
func (g *Genome) FindLink(id LinkID) *LinkGene {
	for i := range g.Links {
		if g.Links[i].ID == id {
			return &g.Links[i]
		}
	}
	return nil
}

// HasNeuron reports whether a neuron with the given id exists.
func (g *Genome) HasNeuron(id int) bool {
	return g.FindNeuron(id) != nil
}

// ToNetwork builds the feed-forward phenotype of g from its enabled links.
func (g *Genome) ToNetwork() (*network.Network, error) {
	inputIDs := make([]int, 0, g.NumInputs)
	outputIDs := make([]int, 0, g.NumOutputs)
	neurons := make([]network.NeuronSpec, 0, len(g.Neurons))
	for _, n := range g.Neurons {
		neurons = append(neurons, network.NeuronSpec{ID: n.NeuronID, Bias: n.Bias, Activation: n.Activation})
		if n.IsInput() {
			inputIDs = append(inputIDs, n.NeuronID)
		} else if n.IsOutput(g.NumOutputs) {
			outputIDs = append(outputIDs, n.NeuronID)
		}
	}

	links := make([]network.LinkSpec, 0, len(g.Links))
	for _, l := range g.Links {
		if !l.IsEnabled {
			continue
		}
		links = append(links, network.LinkSpec{InputID: l.ID.InputID, OutputID: l.ID.OutputID, Weight: l.Weight})
	}

	return network.Build(inputIDs, outputIDs, neurons, links)
}

// IsCyclic reports whether adding a directed edge from -> to would create a
// cycle in the graph formed by g's full link set (enabled and disabled
// links both count toward this conservative acyclicity rule), or
// whether from == to (a self-loop). It performs an iterative DFS from `to`
// looking for a path back to `from`.
func (g *Genome) IsCyclic(from, to int) bool {
	if from == to {
		return true
	}

	adjacency := make(map[int][]int, len(g.Links))
	for _, l := range g.Links {
		adjacency[l.ID.InputID] = append(adjacency[l.ID.InputID], l.ID.OutputID)
	}

	visited := make(map[int]bool, len(g.Neurons))
	stack := []int{to}
	for len(stack) > 0 {
		n := len(stack) - 1
		u := stack[n]
		stack = stack[:n]
		if u == from {
			return true
		}
		if visited[u] {
			continue
		}
		visited[u] = true
		stack = append(stack, adjacency[u]...)
	}
	return false
}

// Verify checks the structural invariants: no duplicate LinkID, every link
// endpoint names an existing neuron, NumHidden equals the hidden-neuron
// count, and the full link set is acyclic. The acyclicity check is gonum's
// topological sort, independent of the hand-rolled DFS in IsCyclic. It
// does not check the total neuron count or that no link targets an input.
func (g *Genome) Verify() error {
	seen := make(map[LinkID]bool, len(g.Links))
	edges := make([]network.Edge, 0, len(g.Links))
	for _, l := range g.Links {
		if seen[l.ID] {
			return fmt.Errorf("genome %d: duplicate link id %s", g.ID, l.ID)
		}
		seen[l.ID] = true

		if !g.HasNeuron(l.ID.InputID) {
			return fmt.Errorf("genome %d: link %s references missing input neuron", g.ID, l.ID)
		}
		if !g.HasNeuron(l.ID.OutputID) {
			return fmt.Errorf("genome %d: link %s references missing output neuron", g.ID, l.ID)
		}
		edges = append(edges, network.Edge{From: l.ID.InputID, To: l.ID.OutputID})
	}

	hiddenCount := 0
	for _, n := range g.Neurons {
		if n.IsHidden(g.NumOutputs) {
			hiddenCount++
		}
	}
	if hiddenCount != g.NumHidden {
		return fmt.Errorf("genome %d: num_hidden=%d but found %d hidden neurons", g.ID, g.NumHidden, hiddenCount)
	}

	if !network.VerifyAcyclic(edges) {
		return fmt.Errorf("genome %d: link graph is cyclic", g.ID)
	}

	return nil
}
