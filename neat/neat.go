// Package neat implements NeuroEvolution of Augmenting Topologies (NEAT), a
// genetic algorithm whose genome is a graph of neurons and weighted links
// rather than a fixed-shape parameter vector. This package holds the
// ambient configuration and logging surface used by neat/genetics and
// cmd/neat-snake; the evolutionary operators themselves live in the
// neat/genetics and neat/network sub-packages.
package neat

import "github.com/mvarga/neat-snake/neat/math"

// Options holds every tunable parameter of a NEAT run. Fields default to
// DefaultOptions's values when loaded from a config that omits them;
// unrecognized keys are ignored by the YAML loader and rejected by the
// plaintext loader (see LoadYAMLOptions / LoadNeatOptions).
type Options struct {
	// NEAT section
	PopulationSize     int     `yaml:"population_size"`
	MaxGenerations     int     `yaml:"max_generations"`
	SurvivalThreshold  float64 `yaml:"survival_threshold"`

	// DefaultGenome section
	NumInputs  int                 `yaml:"num_inputs"`
	NumOutputs int                 `yaml:"num_outputs"`
	NumHidden  int                 `yaml:"num_hidden"`
	Activation math.ActivationType `yaml:"-"`

	BiasInitMean   float64 `yaml:"bias_init_mean"`
	BiasInitStddev float64 `yaml:"bias_init_stddev"`
	BiasMin        float64 `yaml:"bias_min"`
	BiasMax        float64 `yaml:"bias_max"`

	WeightInitMean   float64 `yaml:"weight_init_mean"`
	WeightInitStddev float64 `yaml:"weight_init_stddev"`
	WeightMin        float64 `yaml:"weight_min"`
	WeightMax        float64 `yaml:"weight_max"`

	MutationRate  float64 `yaml:"mutation_rate"`
	MutationPower float64 `yaml:"mutation_power"`
	ReplaceRate   float64 `yaml:"replace_rate"`

	NeuronAddProb float64 `yaml:"neuron_add_prob"`
	NeuronDelProb float64 `yaml:"neuron_del_prob"`
	LinkAddProb   float64 `yaml:"link_add_prob"`
	LinkDelProb   float64 `yaml:"link_del_prob"`

	// ActivationName backs Activation for YAML (de)serialization, since
	// math.ActivationType itself has no yaml marshaling of its own.
	ActivationName string `yaml:"activation"`

	// LogLevel controls package-level log verbosity; see InitLogger.
	LogLevel string `yaml:"log_level"`
}

// DefaultOptions returns an Options populated with every tunable's default
// value.
func DefaultOptions() *Options {
	o := &Options{
		PopulationSize:    150,
		MaxGenerations:    100,
		SurvivalThreshold: 0.2,

		NumInputs:  1,
		NumOutputs: 3,
		NumHidden:  0,
		Activation: math.Sigmoid,

		BiasInitMean:   0.0,
		BiasInitStddev: 1.0,
		BiasMin:        -30,
		BiasMax:        30,

		WeightInitMean:   0.0,
		WeightInitStddev: 1.0,
		WeightMin:        -30,
		WeightMax:        30,

		MutationRate:  0.3,
		MutationPower: 0.8,
		ReplaceRate:   0.05,

		NeuronAddProb: 0.03,
		NeuronDelProb: 0.01,
		LinkAddProb:   0.05,
		LinkDelProb:   0.01,

		LogLevel: string(LogLevelInfo),
	}
	o.ActivationName = o.Activation.String()
	return o
}

// Validate checks the option set for internally-consistent values, beyond
// what a zero-value struct would satisfy.
func (o *Options) Validate() error {
	if o.PopulationSize <= 0 {
		return errNeat("population_size must be positive, got %d", o.PopulationSize)
	}
	if o.NumInputs <= 0 {
		return errNeat("num_inputs must be positive, got %d", o.NumInputs)
	}
	if o.NumOutputs <= 0 {
		return errNeat("num_outputs must be positive, got %d", o.NumOutputs)
	}
	if o.SurvivalThreshold <= 0 || o.SurvivalThreshold > 1 {
		return errNeat("survival_threshold must be in (0, 1], got %f", o.SurvivalThreshold)
	}
	return nil
}
