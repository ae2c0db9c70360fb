package neat

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/mvarga/neat-snake/neat/math"
	"github.com/mvarga/neat-snake/neat/neaterr"
)

// LoadYAMLOptions loads Options encoded as YAML. Unrecognized keys in the
// document are silently ignored.
func LoadYAMLOptions(r io.Reader) (*Options, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(neaterr.ErrIOFailure, "failed to read NEAT options: %v", err)
	}

	opts := DefaultOptions()
	if err = yaml.Unmarshal(content, opts); err != nil {
		return nil, errors.Wrapf(neaterr.ErrIOFailure, "failed to decode NEAT options from YAML: %v", err)
	}

	if err = opts.resolveActivation(); err != nil {
		return nil, errors.Wrap(err, "failed to resolve default activation")
	}
	if opts.LogLevel != "" {
		if err = InitLogger(opts.LogLevel); err != nil {
			return nil, errors.Wrapf(neaterr.ErrIOFailure, "failed to initialize logger: %v", err)
		}
	}
	if err = opts.Validate(); err != nil {
		return nil, errors.Wrapf(neaterr.ErrIOFailure, "invalid NEAT options: %v", err)
	}
	return opts, nil
}

// LoadNeatOptions loads Options from the flat "name value" plaintext
// format, one assignment per line. Unlike the YAML loader, an unknown key
// here is a hard error: the flat format is a strict legacy encoding, not a
// forgiving structured one.
func LoadNeatOptions(r io.Reader) (*Options, error) {
	o := DefaultOptions()
	var name, param string
	for {
		_, err := fmt.Fscanf(r, "%s %v\n", &name, &param)
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrapf(neaterr.ErrIOFailure, "failed to parse NEAT options line: %v", err)
		}
		switch name {
		case "population_size":
			o.PopulationSize = cast.ToInt(param)
		case "max_generations":
			o.MaxGenerations = cast.ToInt(param)
		case "survival_threshold":
			o.SurvivalThreshold = cast.ToFloat64(param)
		case "num_inputs":
			o.NumInputs = cast.ToInt(param)
		case "num_outputs":
			o.NumOutputs = cast.ToInt(param)
		case "num_hidden":
			o.NumHidden = cast.ToInt(param)
		case "activation":
			o.ActivationName = strings.ToUpper(param)
		case "bias_init_mean":
			o.BiasInitMean = cast.ToFloat64(param)
		case "bias_init_stddev":
			o.BiasInitStddev = cast.ToFloat64(param)
		case "bias_min":
			o.BiasMin = cast.ToFloat64(param)
		case "bias_max":
			o.BiasMax = cast.ToFloat64(param)
		case "weight_init_mean":
			o.WeightInitMean = cast.ToFloat64(param)
		case "weight_init_stddev":
			o.WeightInitStddev = cast.ToFloat64(param)
		case "weight_min":
			o.WeightMin = cast.ToFloat64(param)
		case "weight_max":
			o.WeightMax = cast.ToFloat64(param)
		case "mutation_rate":
			o.MutationRate = cast.ToFloat64(param)
		case "mutation_power":
			o.MutationPower = cast.ToFloat64(param)
		case "replace_rate":
			o.ReplaceRate = cast.ToFloat64(param)
		case "neuron_add_prob":
			o.NeuronAddProb = cast.ToFloat64(param)
		case "neuron_del_prob":
			o.NeuronDelProb = cast.ToFloat64(param)
		case "link_add_prob":
			o.LinkAddProb = cast.ToFloat64(param)
		case "link_del_prob":
			o.LinkDelProb = cast.ToFloat64(param)
		case "log_level":
			o.LogLevel = param
		default:
			return nil, errors.Wrapf(neaterr.ErrIOFailure, "unknown configuration parameter found: %s = %s", name, param)
		}
	}

	if err := o.resolveActivation(); err != nil {
		return nil, err
	}
	if o.LogLevel != "" {
		if err := InitLogger(o.LogLevel); err != nil {
			return nil, errors.Wrapf(neaterr.ErrIOFailure, "failed to initialize logger: %v", err)
		}
	}
	if err := o.Validate(); err != nil {
		return nil, errors.Wrapf(neaterr.ErrIOFailure, "invalid NEAT options: %v", err)
	}
	return o, nil
}

// ReadOptionsFromFile loads Options from configFilePath, dispatching to the
// YAML or plaintext loader based on the file extension.
func ReadOptionsFromFile(configFilePath string) (*Options, error) {
	configFile, err := os.Open(configFilePath)
	if err != nil {
		return nil, errors.Wrapf(neaterr.ErrIOFailure, "failed to open config file: %v", err)
	}
	defer configFile.Close()

	if strings.HasSuffix(configFilePath, ".yml") || strings.HasSuffix(configFilePath, ".yaml") {
		return LoadYAMLOptions(configFile)
	}
	return LoadNeatOptions(configFile)
}

func (o *Options) resolveActivation() error {
	if o.ActivationName == "" {
		o.ActivationName = o.Activation.String()
		return nil
	}
	a, ok := math.ActivationTypeFromName(strings.ToUpper(o.ActivationName))
	if !ok {
		return errors.Wrapf(neaterr.ErrIOFailure, "unsupported default activation: %s", o.ActivationName)
	}
	o.Activation = a
	return nil
}
