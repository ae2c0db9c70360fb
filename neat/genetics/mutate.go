package genetics

import "github.com/mvarga/neat-snake/neat/rand"

// AddNeuron splits a link chosen uniformly at random from the full link set
// (enabled or not): the chosen link is disabled, a fresh
// hidden neuron is allocated, and two new enabled links take its place - one
// with weight 1.0 from the old input, one inheriting the old weight into the
// old output. The original link is retained, disabled, so crossover can
// still inherit it.
func (g *Genome) AddNeuron(rng *rand.Source) {
	if len(g.Links) == 0 {
		return
	}
	i := rng.Intn(len(g.Links))
	old := &g.Links[i]
	old.IsEnabled = false

	n := g.NeuronMutator.NewNeuron(rng)
	g.Neurons = append(g.Neurons, n)
	g.NumHidden++

	g.Links = append(g.Links,
		LinkGene{ID: LinkID{InputID: old.ID.InputID, OutputID: n.NeuronID}, Weight: 1.0, IsEnabled: true},
		LinkGene{ID: LinkID{InputID: n.NeuronID, OutputID: old.ID.OutputID}, Weight: old.Weight, IsEnabled: true},
	)
}

// RemoveNeuron deletes a hidden neuron chosen uniformly at random (rejection
// sampling over the full neuron list) along with every
// link touching it. No-op when the genome has no hidden neurons.
func (g *Genome) RemoveNeuron(rng *rand.Source) {
	if g.NumHidden == 0 {
		return
	}

	var hiddenIdx int
	for {
		hiddenIdx = rng.Intn(len(g.Neurons))
		if g.Neurons[hiddenIdx].IsHidden(g.NumOutputs) {
			break
		}
	}
	victim := g.Neurons[hiddenIdx].NeuronID

	kept := g.Links[:0]
	for _, l := range g.Links {
		if l.ID.InputID != victim && l.ID.OutputID != victim {
			kept = append(kept, l)
		}
	}
	g.Links = kept

	g.Neurons = append(g.Neurons[:hiddenIdx], g.Neurons[hiddenIdx+1:]...)
	g.NumHidden--
}

// AddLink proposes a new link: source drawn from inputs and
// hidden neurons, target drawn from outputs and hidden neurons. An existing
// link with the same endpoints is force-enabled rather than duplicated; a
// proposal that would introduce a cycle (including a self-loop) is rejected.
func (g *Genome) AddLink(rng *rand.Source) {
	var sources, targets []int
	for _, n := range g.Neurons {
		if n.IsInput() || n.IsHidden(g.NumOutputs) {
			sources = append(sources, n.NeuronID)
		}
		if n.IsOutput(g.NumOutputs) || n.IsHidden(g.NumOutputs) {
			targets = append(targets, n.NeuronID)
		}
	}
	if len(sources) == 0 || len(targets) == 0 {
		return
	}

	in := rand.ChooseFrom(rng, sources)
	out := rand.ChooseFrom(rng, targets)

	id := LinkID{InputID: in, OutputID: out}
	if existing := g.FindLink(id); existing != nil {
		existing.IsEnabled = true
		return
	}

	if g.IsCyclic(in, out) {
		return
	}

	g.Links = append(g.Links, LinkGene{ID: id, Weight: g.LinkMutator.NewWeight(rng), IsEnabled: true})
}

// RemoveLink deletes a link chosen uniformly at random. No-op on a genome
// with no links.
func (g *Genome) RemoveLink(rng *rand.Source) {
	if len(g.Links) == 0 {
		return
	}
	i := rng.Intn(len(g.Links))
	g.Links = append(g.Links[:i], g.Links[i+1:]...)
}

// Mutate applies the full top-level mutation schedule: a
// single shared draw `p` gates all four structural mutations - so, with
// default probabilities, the events nest rather than fire independently
// (p < 0.01 fires all four; 0.01 <= p < 0.03 fires add-neuron and
// add-link; 0.03 <= p < 0.05 fires only add-link) - followed by parametric
// mutation of every
// surviving link and neuron. This nesting is intentional; do not rewrite it
// as four independent draws.
func (g *Genome) Mutate(rng *rand.Source, opts *GenomeOptions) {
	p := rng.Float64()

	if p < opts.NeuronAddProb {
		g.AddNeuron(rng)
	}
	if p < opts.NeuronDelProb {
		g.RemoveNeuron(rng)
	}
	if p < opts.LinkAddProb {
		g.AddLink(rng)
	}
	if p < opts.LinkDelProb {
		g.RemoveLink(rng)
	}

	for i := range g.Links {
		g.LinkMutator.Mutate(rng, &g.Links[i])
	}
	for i := range g.Neurons {
		g.NeuronMutator.Mutate(rng, &g.Neurons[i], g.NumOutputs)
	}
}
