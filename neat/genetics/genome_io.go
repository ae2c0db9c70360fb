package genetics

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/mvarga/neat-snake/neat/math"
	"github.com/mvarga/neat-snake/neat/neaterr"
)

// WriteGenome serializes g in a plaintext, whitespace-separated format: a
// header line, then its neuron genes, then its link genes, one gene per
// line in declaration order.
func WriteGenome(w io.Writer, g *Genome) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "genomestart %d %d %d %d %.17g\n",
		g.ID, g.NumInputs, g.NumOutputs, g.NumHidden, g.Fitness); err != nil {
		return errors.Wrapf(neaterr.ErrIOFailure, "failed to write genome header: %v", err)
	}

	if _, err := fmt.Fprintf(bw, "neurons %d\n", len(g.Neurons)); err != nil {
		return errors.Wrapf(neaterr.ErrIOFailure, "failed to write neuron count: %v", err)
	}
	for _, n := range g.Neurons {
		if _, err := fmt.Fprintf(bw, "%d %.17g %s\n", n.NeuronID, n.Bias, n.Activation); err != nil {
			return errors.Wrapf(neaterr.ErrIOFailure, "failed to write neuron gene: %v", err)
		}
	}

	if _, err := fmt.Fprintf(bw, "links %d\n", len(g.Links)); err != nil {
		return errors.Wrapf(neaterr.ErrIOFailure, "failed to write link count: %v", err)
	}
	for _, l := range g.Links {
		if _, err := fmt.Fprintf(bw, "%d %d %.17g %v\n", l.ID.InputID, l.ID.OutputID, l.Weight, l.IsEnabled); err != nil {
			return errors.Wrapf(neaterr.ErrIOFailure, "failed to write link gene: %v", err)
		}
	}

	if _, err := fmt.Fprintln(bw, "genomeend"); err != nil {
		return errors.Wrapf(neaterr.ErrIOFailure, "failed to write genome trailer: %v", err)
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrapf(neaterr.ErrIOFailure, "failed to flush genome: %v", err)
	}
	return nil
}

// ReadGenome parses a single genome from the plaintext format written by
// WriteGenome. The genome's mutators are reconstructed from muOpts (the
// run's current mutation configuration) with their id counters advanced
// past every hidden neuron id found in the stream, so a resumed run never
// reissues an id already in use.
func ReadGenome(r io.Reader, muOpts *GenomeOptions) (*Genome, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	g := &Genome{
		NeuronMutator: NewNeuronMutator(0, muOpts.neuronMutatorOptions()),
		LinkMutator:   NewLinkMutator(muOpts.linkMutatorOptions()),
	}

	if !sc.Scan() {
		return nil, errors.Wrap(neaterr.ErrIOFailure, "failed to read genome header: empty input")
	}
	var id, numInputs, numOutputs, numHidden int
	var fitness float64
	if _, err := fmt.Sscanf(sc.Text(), "genomestart %d %d %d %d %g", &id, &numInputs, &numOutputs, &numHidden, &fitness); err != nil {
		return nil, errors.Wrapf(neaterr.ErrIOFailure, "failed to parse genome header: %v", err)
	}
	g.ID, g.NumInputs, g.NumOutputs, g.NumHidden, g.Fitness = id, numInputs, numOutputs, numHidden, fitness
	g.NeuronMutator.SetNext(numOutputs)

	var neuronCount int
	if !sc.Scan() {
		return nil, errors.Wrap(neaterr.ErrIOFailure, "failed to read neuron count")
	}
	if _, err := fmt.Sscanf(sc.Text(), "neurons %d", &neuronCount); err != nil {
		return nil, errors.Wrapf(neaterr.ErrIOFailure, "failed to parse neuron count: %v", err)
	}
	for i := 0; i < neuronCount; i++ {
		if !sc.Scan() {
			return nil, errors.Wrap(neaterr.ErrIOFailure, "unexpected end of input reading neuron genes")
		}
		var neuronID int
		var bias float64
		var activationName string
		if _, err := fmt.Sscanf(sc.Text(), "%d %g %s", &neuronID, &bias, &activationName); err != nil {
			return nil, errors.Wrapf(neaterr.ErrIOFailure, "failed to parse neuron gene %q: %v", sc.Text(), err)
		}
		activation, ok := math.ActivationTypeFromName(activationName)
		if !ok {
			return nil, errors.Wrapf(neaterr.ErrIOFailure, "unknown activation in genome file: %s", activationName)
		}
		g.Neurons = append(g.Neurons, NeuronGene{NeuronID: neuronID, Bias: bias, Activation: activation})
		g.NeuronMutator.SetNext(neuronID + 1)
	}

	var linkCount int
	if !sc.Scan() {
		return nil, errors.Wrap(neaterr.ErrIOFailure, "failed to read link count")
	}
	if _, err := fmt.Sscanf(sc.Text(), "links %d", &linkCount); err != nil {
		return nil, errors.Wrapf(neaterr.ErrIOFailure, "failed to parse link count: %v", err)
	}
	for i := 0; i < linkCount; i++ {
		if !sc.Scan() {
			return nil, errors.Wrap(neaterr.ErrIOFailure, "unexpected end of input reading link genes")
		}
		var inID, outID int
		var weight float64
		var enabled bool
		if _, err := fmt.Sscanf(sc.Text(), "%d %d %g %v", &inID, &outID, &weight, &enabled); err != nil {
			return nil, errors.Wrapf(neaterr.ErrIOFailure, "failed to parse link gene %q: %v", sc.Text(), err)
		}
		g.Links = append(g.Links, LinkGene{ID: LinkID{InputID: inID, OutputID: outID}, Weight: weight, IsEnabled: enabled})
	}

	if !sc.Scan() || sc.Text() != "genomeend" {
		return nil, errors.Wrap(neaterr.ErrIOFailure, "missing genomeend trailer")
	}

	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(neaterr.ErrIOFailure, "failed to scan genome stream: %v", err)
	}
	return g, nil
}
