// Package network builds and evaluates the feed-forward phenotype of a
// genome: a topologically layered DAG of neurons, materialized once from an
// enabled link set and then evaluated against arbitrary input vectors. It
// has no dependency on neat/genetics - callers hand it plain NeuronSpec and
// LinkSpec values - so neat/genetics can depend on network (to produce a
// Network from a Genome, and to borrow its gonum-backed acyclicity check)
// without an import cycle.
package network

import (
	"github.com/pkg/errors"

	"github.com/mvarga/neat-snake/neat/math"
	"github.com/mvarga/neat-snake/neat/neaterr"
)

// NeuronSpec is the per-neuron metadata a Network is built from.
type NeuronSpec struct {
	ID         int
	Bias       float64
	Activation math.ActivationType
}

// LinkSpec is a single enabled, directed, weighted edge a Network is built
// from. Disabled links must be filtered out by the caller before calling
// Build - the network layer only ever sees the edges that matter for
// inference.
type LinkSpec struct {
	InputID  int
	OutputID int
	Weight   float64
}

type incoming struct {
	sourceID int
	weight   float64
}

// Network is an immutable, evaluable feed-forward phenotype. It owns no
// reference back to the genome it was built from.
type Network struct {
	inputIDs  []int
	outputIDs []int

	neurons map[int]NeuronSpec
	inputs  map[int][]incoming // neuronID -> incoming (source, weight) pairs
	layers  [][]int           // evaluation order; layers[0] is the input layer
}

// Build topologically layers the given links with a Kahn-style BFS and
// materializes a Network ready for Activate. inputIDs and outputIDs are the
// genome's configured input/output neuron ids; neurons must contain an
// entry for every id referenced by inputIDs, outputIDs, or any link; links
// must already be filtered to enabled-only.
func Build(inputIDs, outputIDs []int, neurons []NeuronSpec, links []LinkSpec) (*Network, error) {
	neuronByID := make(map[int]NeuronSpec, len(neurons))
	for _, n := range neurons {
		neuronByID[n.ID] = n
	}

	adjacency := make(map[int][]int)
	inDegree := make(map[int]int)
	inputsOf := make(map[int][]incoming)
	for _, l := range links {
		adjacency[l.InputID] = append(adjacency[l.InputID], l.OutputID)
		inDegree[l.OutputID]++
		inputsOf[l.OutputID] = append(inputsOf[l.OutputID], incoming{sourceID: l.InputID, weight: l.Weight})
	}

	layerOf := make(map[int]int, len(neuronByID))
	queue := make([]int, 0, len(inputIDs))
	for _, id := range inputIDs {
		layerOf[id] = 0
		queue = append(queue, id)
	}

	var layers [][]int
	seen := make(map[int]bool, len(neuronByID))
	placeInLayer := func(id, layer int) {
		for len(layers) <= layer {
			layers = append(layers, nil)
		}
		if !seen[id] {
			layers[layer] = append(layers[layer], id)
			seen[id] = true
		}
	}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		placeInLayer(u, layerOf[u])

		for _, v := range adjacency[u] {
			inDegree[v]--
			if inDegree[v] == 0 {
				layerOf[v] = layerOf[u] + 1
				queue = append(queue, v)
			}
		}
	}

	// Disconnected outputs never entered the BFS; place them at the last
	// layer. They are still evaluated normally in Activate - with no
	// incoming links their sum is bias alone, so they resolve to
	// activation(bias) rather than staying at the initial-value 0 (see
	// DESIGN.md for the rationale).
	lastLayer := len(layers) - 1
	if lastLayer < 0 {
		lastLayer = 0
	}
	for _, id := range outputIDs {
		if !seen[id] {
			placeInLayer(id, lastLayer)
		}
	}

	return &Network{
		inputIDs:  append([]int(nil), inputIDs...),
		outputIDs: append([]int(nil), outputIDs...),
		neurons:   neuronByID,
		inputs:    inputsOf,
		layers:    layers,
	}, nil
}

// Activate evaluates the network against inputs, returning one output value
// per configured output id, in that order.
func (n *Network) Activate(inputs []float64) ([]float64, error) {
	if len(inputs) != len(n.inputIDs) {
		return nil, errors.Wrapf(neaterr.ErrInvalidArgument,
			"activate: expected %d inputs, got %d", len(n.inputIDs), len(inputs))
	}

	values := make(map[int]float64, len(n.neurons))
	for i, id := range n.inputIDs {
		values[id] = inputs[i]
	}
	for _, id := range n.outputIDs {
		if _, ok := values[id]; !ok {
			values[id] = 0.0
		}
	}

	isInput := make(map[int]bool, len(n.inputIDs))
	for _, id := range n.inputIDs {
		isInput[id] = true
	}

	for _, layer := range n.layers {
		for _, id := range layer {
			if isInput[id] {
				continue
			}
			spec, ok := n.neurons[id]
			if !ok {
				return nil, errors.Wrapf(neaterr.ErrInvalidState, "activate: neuron %d has no spec", id)
			}
			sum := spec.Bias
			for _, in := range n.inputs[id] {
				v, ok := values[in.sourceID]
				if !ok {
					return nil, errors.Wrapf(neaterr.ErrInvalidState,
						"activate: neuron %d references uncomputed source %d", id, in.sourceID)
				}
				sum += in.weight * v
			}
			values[id] = spec.Activation.Apply(sum)
		}
	}

	out := make([]float64, len(n.outputIDs))
	for i, id := range n.outputIDs {
		out[i] = values[id]
	}
	return out, nil
}

// Layers returns the computed evaluation layers, each a slice of neuron ids
// in BFS discovery order. Exposed for tests and diagnostics.
func (n *Network) Layers() [][]int {
	out := make([][]int, len(n.layers))
	for i, l := range n.layers {
		out[i] = append([]int(nil), l...)
	}
	return out
}
