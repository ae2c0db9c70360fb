package genetics

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvarga/neat-snake/neat/neaterr"
	"github.com/mvarga/neat-snake/neat/rand"
)

func TestWriteCheckpointThenReadCheckpointRoundTrips(t *testing.T) {
	rng := rand.New(5)
	pop := NewPopulation(2, 0.5, testOptions(), rng)
	pop.Generation = 9

	var buf bytes.Buffer
	require.NoError(t, WriteCheckpoint(&buf, pop))

	got, err := ReadCheckpoint(&buf, testOptions(), rng)
	require.NoError(t, err)
	assert.Equal(t, pop.Generation, got.Generation)
	assert.Len(t, got.Genomes, 2)
}

func TestReadCheckpointMalformedYAMLReturnsErrIOFailure(t *testing.T) {
	_, err := ReadCheckpoint(strings.NewReader("not: [valid, yaml"), testOptions(), rand.New(6))
	require.Error(t, err)
	assert.True(t, errors.Is(err, neaterr.ErrIOFailure))
}

func TestReadCheckpointUnknownActivationReturnsErrIOFailure(t *testing.T) {
	yaml := `
generation: 0
survival_threshold: 0.5
next_genome_id: 1
genomes:
  - id: 0
    num_inputs: 2
    num_outputs: 2
    num_hidden: 0
    fitness: 0
    next_neuron_id: 2
    neurons:
      - id: 0
        bias: 0.1
        activation: BOGUS
    links: []
`
	_, err := ReadCheckpoint(strings.NewReader(yaml), testOptions(), rand.New(6))
	require.Error(t, err)
	assert.True(t, errors.Is(err, neaterr.ErrIOFailure))
}
