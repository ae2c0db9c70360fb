package genetics

import "github.com/mvarga/neat-snake/neat"

// GenomeOptionsFromNeat projects the genome-shaping fields out of a
// neat.Options, the config surface cmd/neat-snake loads from disk, into the
// GenomeOptions this package's constructors and mutators consume directly.
func GenomeOptionsFromNeat(o *neat.Options) *GenomeOptions {
	return &GenomeOptions{
		NumInputs:  o.NumInputs,
		NumOutputs: o.NumOutputs,
		NumHidden:  o.NumHidden,

		DefaultActivation: o.Activation,

		BiasInitMean:   o.BiasInitMean,
		BiasInitStddev: o.BiasInitStddev,
		BiasMin:        o.BiasMin,
		BiasMax:        o.BiasMax,

		WeightInitMean:   o.WeightInitMean,
		WeightInitStddev: o.WeightInitStddev,
		WeightMin:        o.WeightMin,
		WeightMax:        o.WeightMax,

		MutationRate:  o.MutationRate,
		MutationPower: o.MutationPower,
		ReplaceRate:   o.ReplaceRate,

		NeuronAddProb: o.NeuronAddProb,
		NeuronDelProb: o.NeuronDelProb,
		LinkAddProb:   o.LinkAddProb,
		LinkDelProb:   o.LinkDelProb,
	}
}
