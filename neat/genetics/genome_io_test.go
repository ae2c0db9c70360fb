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

func TestWriteGenomeThenReadGenomeRoundTrips(t *testing.T) {
	rng := rand.New(2)
	g := NewGenome(7, testOptions(), rng)
	g.Fitness = 3.5

	var buf bytes.Buffer
	require.NoError(t, WriteGenome(&buf, g))

	got, err := ReadGenome(&buf, testOptions())
	require.NoError(t, err)

	assert.Equal(t, g.ID, got.ID)
	assert.Equal(t, g.NumInputs, got.NumInputs)
	assert.Equal(t, g.NumOutputs, got.NumOutputs)
	assert.Equal(t, g.NumHidden, got.NumHidden)
	assert.Equal(t, g.Fitness, got.Fitness)
	assert.Equal(t, g.Neurons, got.Neurons)
	assert.Equal(t, g.Links, got.Links)
}

func TestReadGenomeMalformedHeaderReturnsErrIOFailure(t *testing.T) {
	r := strings.NewReader("genomestart not-a-number\n")
	_, err := ReadGenome(r, testOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, neaterr.ErrIOFailure))
}

func TestReadGenomeEmptyInputReturnsErrIOFailure(t *testing.T) {
	_, err := ReadGenome(strings.NewReader(""), testOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, neaterr.ErrIOFailure))
}

func TestReadGenomeUnknownActivationReturnsErrIOFailure(t *testing.T) {
	r := strings.NewReader("genomestart 1 2 2 0 0\nneurons 1\n0 0.5 BOGUS\nlinks 0\ngenomeend\n")
	_, err := ReadGenome(r, testOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, neaterr.ErrIOFailure))
}

func TestReadGenomeMissingTrailerReturnsErrIOFailure(t *testing.T) {
	r := strings.NewReader("genomestart 1 2 2 0 0\nneurons 0\nlinks 0\n")
	_, err := ReadGenome(r, testOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, neaterr.ErrIOFailure))
}
