package neat

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvarga/neat-snake/neat/neaterr"
)

func TestLoadYAMLOptionsMalformedDocumentReturnsErrIOFailure(t *testing.T) {
	_, err := LoadYAMLOptions(strings.NewReader("population_size: [not, a, number]"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, neaterr.ErrIOFailure))
}

func TestLoadYAMLOptionsInvalidOptionsReturnsErrIOFailure(t *testing.T) {
	_, err := LoadYAMLOptions(strings.NewReader("population_size: 0\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, neaterr.ErrIOFailure))
}

func TestLoadNeatOptionsUnknownKeyReturnsErrIOFailure(t *testing.T) {
	_, err := LoadNeatOptions(strings.NewReader("bogus_key 1\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, neaterr.ErrIOFailure))
}

func TestLoadNeatOptionsValidDocumentSucceeds(t *testing.T) {
	doc := "population_size 10\nmax_generations 5\nsurvival_threshold 0.5\n" +
		"num_inputs 2\nnum_outputs 1\nnum_hidden 0\n"
	opts, err := LoadNeatOptions(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 10, opts.PopulationSize)
	assert.Equal(t, 2, opts.NumInputs)
}

func TestReadOptionsFromFileMissingFileReturnsErrIOFailure(t *testing.T) {
	_, err := ReadOptionsFromFile("/nonexistent/path/to/config.yml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, neaterr.ErrIOFailure))
}
