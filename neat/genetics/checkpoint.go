package genetics

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mvarga/neat-snake/neat/math"
	"github.com/mvarga/neat-snake/neat/neaterr"
	"github.com/mvarga/neat-snake/neat/rand"
)

// Checkpoint is a structured, YAML-encoded snapshot of a Population: every
// genome plus each genome's live neuron mutator id counter, so a resumed run
// allocates ids above any already in use. The plaintext format of
// genome_io.go/population_io.go remains canonical; this is a richer,
// structured alternative offered alongside it.
type Checkpoint struct {
	Generation        int               `yaml:"generation"`
	SurvivalThreshold float64           `yaml:"survival_threshold"`
	NextGenomeID      int               `yaml:"next_genome_id"`
	Genomes           []CheckpointGenome `yaml:"genomes"`
}

// CheckpointGenome is one genome's YAML representation within a Checkpoint.
type CheckpointGenome struct {
	ID         int               `yaml:"id"`
	NumInputs  int               `yaml:"num_inputs"`
	NumOutputs int               `yaml:"num_outputs"`
	NumHidden  int               `yaml:"num_hidden"`
	Fitness    float64           `yaml:"fitness"`
	NextNeuron int               `yaml:"next_neuron_id"`
	Neurons    []CheckpointNeuron `yaml:"neurons"`
	Links      []CheckpointLink   `yaml:"links"`
}

// CheckpointNeuron is one neuron gene's YAML representation.
type CheckpointNeuron struct {
	ID         int    `yaml:"id"`
	Bias       float64 `yaml:"bias"`
	Activation string `yaml:"activation"`
}

// CheckpointLink is one link gene's YAML representation.
type CheckpointLink struct {
	InputID  int     `yaml:"input_id"`
	OutputID int     `yaml:"output_id"`
	Weight   float64 `yaml:"weight"`
	Enabled  bool    `yaml:"enabled"`
}

// WriteCheckpoint encodes p as YAML.
func WriteCheckpoint(w io.Writer, p *Population) error {
	cp := Checkpoint{
		Generation:        p.Generation,
		SurvivalThreshold: p.SurvivalThreshold,
		NextGenomeID:      p.nextGenomeID,
	}
	for _, g := range p.Genomes {
		cg := CheckpointGenome{
			ID:         g.ID,
			NumInputs:  g.NumInputs,
			NumOutputs: g.NumOutputs,
			NumHidden:  g.NumHidden,
			Fitness:    g.Fitness,
			NextNeuron: g.NeuronMutator.PeekNext(),
		}
		for _, n := range g.Neurons {
			cg.Neurons = append(cg.Neurons, CheckpointNeuron{ID: n.NeuronID, Bias: n.Bias, Activation: n.Activation.String()})
		}
		for _, l := range g.Links {
			cg.Links = append(cg.Links, CheckpointLink{InputID: l.ID.InputID, OutputID: l.ID.OutputID, Weight: l.Weight, Enabled: l.IsEnabled})
		}
		cp.Genomes = append(cp.Genomes, cg)
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(cp); err != nil {
		return errors.Wrapf(neaterr.ErrIOFailure, "failed to encode population checkpoint: %v", err)
	}
	return nil
}

// ReadCheckpoint decodes a YAML checkpoint back into a Population, wiring
// opts as the mutation configuration every restored genome's mutators use
// and rng as the Population's RNG. Each restored neuron mutator counter
// resumes at NextNeuron (never below num_outputs), so continued mutation
// never reissues a live id.
func ReadCheckpoint(r io.Reader, opts *GenomeOptions, rng *rand.Source) (*Population, error) {
	var cp Checkpoint
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cp); err != nil {
		return nil, errors.Wrapf(neaterr.ErrIOFailure, "failed to decode population checkpoint: %v", err)
	}

	p := &Population{
		Options:           opts,
		RNG:               rng,
		SurvivalThreshold: cp.SurvivalThreshold,
		Generation:         cp.Generation,
		nextGenomeID:       cp.NextGenomeID,
	}

	for _, cg := range cp.Genomes {
		g := &Genome{
			ID:            cg.ID,
			NumInputs:     cg.NumInputs,
			NumOutputs:    cg.NumOutputs,
			NumHidden:     cg.NumHidden,
			Fitness:       cg.Fitness,
			NeuronMutator: NewNeuronMutator(cg.NumOutputs, opts.neuronMutatorOptions()),
			LinkMutator:   NewLinkMutator(opts.linkMutatorOptions()),
		}
		g.NeuronMutator.SetNext(cg.NextNeuron)

		for _, cn := range cg.Neurons {
			activation, ok := math.ActivationTypeFromName(cn.Activation)
			if !ok {
				return nil, errors.Wrapf(neaterr.ErrIOFailure, "checkpoint: unknown activation %q on genome %d", cn.Activation, cg.ID)
			}
			g.Neurons = append(g.Neurons, NeuronGene{NeuronID: cn.ID, Bias: cn.Bias, Activation: activation})
		}
		for _, cl := range cg.Links {
			g.Links = append(g.Links, LinkGene{
				ID:        LinkID{InputID: cl.InputID, OutputID: cl.OutputID},
				Weight:    cl.Weight,
				IsEnabled: cl.Enabled,
			})
		}
		p.Genomes = append(p.Genomes, g)
	}

	return p, nil
}
