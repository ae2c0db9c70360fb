package genetics

import "github.com/mvarga/neat-snake/neat/rand"

// Crossover combines two parent genomes into one offspring. It reproduces a
// documented quirk rather than the canonical textbook version: the
// offspring starts from a freshly seeded genome, and the aligned genes of
// the fitter parent are then appended on top, so the offspring's neuron and
// link sequences are the union of the seed topology and g1's genes. An
// implementer choosing the "canonical, empty offspring" alternative would
// remove the NewGenome seed call below (this choice is recorded in
// DESIGN.md).
func Crossover(id int, g1, g2 *Genome, opts *GenomeOptions, rng *rand.Source) *Genome {
	if g2.Fitness > g1.Fitness {
		g1, g2 = g2, g1
	}

	offspring := NewGenome(id, opts, rng)

	for _, n1 := range g1.Neurons {
		offspring.NeuronMutator.SetNext(n1.NeuronID + 1)
		if n2 := g2.FindNeuron(n1.NeuronID); n2 != nil {
			offspring.Neurons = append(offspring.Neurons, crossNeuron(rng, n1, *n2))
		} else {
			offspring.Neurons = append(offspring.Neurons, n1)
		}
	}

	for _, l1 := range g1.Links {
		if l2 := g2.FindLink(l1.ID); l2 != nil {
			offspring.Links = append(offspring.Links, crossLink(rng, l1, *l2))
		} else {
			offspring.Links = append(offspring.Links, l1)
		}
	}

	return offspring
}

func crossNeuron(rng *rand.Source, a, b NeuronGene) NeuronGene {
	return NeuronGene{
		NeuronID:   a.NeuronID,
		Bias:       rand.Choose(rng, 0.5, a.Bias, b.Bias),
		Activation: rand.Choose(rng, 0.5, a.Activation, b.Activation),
	}
}

func crossLink(rng *rand.Source, a, b LinkGene) LinkGene {
	return LinkGene{
		ID:        a.ID,
		Weight:    rand.Choose(rng, 0.5, a.Weight, b.Weight),
		IsEnabled: rand.Choose(rng, 0.5, a.IsEnabled, b.IsEnabled),
	}
}
