package genetics

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/mvarga/neat-snake/neat/neaterr"
	"github.com/mvarga/neat-snake/neat/rand"
)

// WritePopulation serializes p in a plaintext format: the population size,
// then each genome in WriteGenome's format.
func WritePopulation(w io.Writer, p *Population) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", len(p.Genomes)); err != nil {
		return errors.Wrapf(neaterr.ErrIOFailure, "failed to write population size: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrapf(neaterr.ErrIOFailure, "failed to flush population header: %v", err)
	}
	for _, g := range p.Genomes {
		if err := WriteGenome(w, g); err != nil {
			return errors.Wrapf(err, "failed to write genome %d", g.ID)
		}
	}
	return nil
}

// ReadPopulation parses a population previously written by WritePopulation.
// opts supplies the mutation configuration each restored genome's mutators
// are reconstructed with; rng seeds the Population's own RNG.
func ReadPopulation(r io.Reader, opts *GenomeOptions, survivalThreshold float64, rng *rand.Source) (*Population, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		return nil, errors.Wrap(neaterr.ErrIOFailure, "failed to read population size")
	}
	var size int
	if _, err := fmt.Sscanf(sc.Text(), "%d", &size); err != nil {
		return nil, errors.Wrapf(neaterr.ErrIOFailure, "failed to parse population size: %v", err)
	}

	p := &Population{Options: opts, SurvivalThreshold: survivalThreshold, RNG: rng}
	p.Genomes = make([]*Genome, 0, size)

	for i := 0; i < size; i++ {
		g, err := readGenomeFromScanner(sc, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read genome %d of %d", i, size)
		}
		p.Genomes = append(p.Genomes, g)
		if g.ID >= p.nextGenomeID {
			p.nextGenomeID = g.ID + 1
		}
	}
	return p, nil
}

// readGenomeFromScanner buffers one genome record (through its "genomeend"
// trailer) off an already-open bufio.Scanner and replays it through
// ReadGenome, since population files interleave many genome records in one
// stream and ReadGenome alone assumes sole ownership of r.
func readGenomeFromScanner(sc *bufio.Scanner, opts *GenomeOptions) (*Genome, error) {
	var lines []string
	for {
		if !sc.Scan() {
			return nil, errors.Wrap(neaterr.ErrIOFailure, "unexpected end of input reading genome record")
		}
		lines = append(lines, sc.Text())
		if sc.Text() == "genomeend" {
			break
		}
	}
	return ReadGenome(strings.NewReader(strings.Join(lines, "\n")+"\n"), opts)
}
