// Package genetics implements the NEAT genome: the graph of neuron and link
// genes, its structural and parametric mutations, crossover between two
// genomes, and the generational population loop that drives evolution.
// Genes are kept as ordered sequences with linear-scan lookups rather than
// a map, so iteration order for crossover and mutation matches insertion
// order.
package genetics

import (
	"fmt"

	"github.com/mvarga/neat-snake/neat/math"
)

// NeuronGene is the metadata for a single node in a genome: its stable id,
// bias, and activation tag. Neuron ids partition into three disjoint
// ranges: inputs are negative, outputs are [0, num_outputs), and hidden
// neurons are drawn from a per-genome monotonic counter starting at
// num_outputs.
type NeuronGene struct {
	NeuronID   int
	Bias       float64
	Activation math.ActivationType
}

// IsInput reports whether this neuron is an input (negative id).
func (n NeuronGene) IsInput() bool { return n.NeuronID < 0 }

// IsOutput reports whether this neuron is an output, given the genome's
// configured output count.
func (n NeuronGene) IsOutput(numOutputs int) bool {
	return n.NeuronID >= 0 && n.NeuronID < numOutputs
}

// IsHidden reports whether this neuron is hidden, given the genome's
// configured output count.
func (n NeuronGene) IsHidden(numOutputs int) bool {
	return n.NeuronID >= numOutputs
}

func (n NeuronGene) String() string {
	return fmt.Sprintf("neuron{id=%d bias=%.6f activation=%s}", n.NeuronID, n.Bias, n.Activation)
}

// LinkID identifies a directed edge by its endpoints. Two LinkIDs are equal
// iff both fields match; a genome may never hold two LinkGenes with the same
// LinkID.
type LinkID struct {
	InputID  int
	OutputID int
}

func (id LinkID) String() string {
	return fmt.Sprintf("%d->%d", id.InputID, id.OutputID)
}

// LinkGene is a directed, weighted edge between two neurons. A disabled link
// is retained for inheritance by crossover but contributes nothing to
// inference or to topological layering.
type LinkGene struct {
	ID        LinkID
	Weight    float64
	IsEnabled bool
}

func (l LinkGene) String() string {
	state := "enabled"
	if !l.IsEnabled {
		state = "disabled"
	}
	return fmt.Sprintf("link{%s weight=%.6f %s}", l.ID, l.Weight, state)
}
