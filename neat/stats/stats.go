// Package stats accumulates per-generation population statistics across a
// run and flushes them to an .npz archive: one population, one run, no
// multi-trial or per-species partitioning.
package stats

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sbinet/npyio/npz"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/mvarga/neat-snake/neat/genetics"
)

// Generation is one generation's summary: best/mean/min fitness across the
// population and a genome complexity measure (total gene count). There is
// no age metric - age tracks a genome's species tenure, which this
// population has no concept of.
type Generation struct {
	Index         int
	BestFitness   float64
	MeanFitness   float64
	MinFitness    float64
	MeanComplexity float64
}

// Recorder accumulates one Generation per call to Record, then flushes the
// whole series to an .npz archive via Flush.
type Recorder struct {
	generations []Generation
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record computes and appends the statistics for one generation's genome
// set, as produced by a genetics.Population mid-run.
func (r *Recorder) Record(index int, genomes []*genetics.Genome) {
	fitness := make([]float64, len(genomes))
	complexity := make([]float64, len(genomes))
	for i, g := range genomes {
		fitness[i] = g.Fitness
		complexity[i] = float64(len(g.Neurons) + len(g.Links))
	}

	gen := Generation{Index: index}
	if len(fitness) > 0 {
		gen.BestFitness = floats.Max(fitness)
		gen.MinFitness = floats.Min(fitness)
		gen.MeanFitness = stat.Mean(fitness, nil)
		gen.MeanComplexity = stat.Mean(complexity, nil)
	}
	r.generations = append(r.generations, gen)
}

// Generations returns the recorded series, in recording order.
func (r *Recorder) Generations() []Generation {
	return append([]Generation(nil), r.generations...)
}

// Flush writes the recorded series to w as an .npz archive with four
// single-column matrices: best_fitness, mean_fitness, min_fitness, and
// mean_complexity, one row per generation.
func (r *Recorder) Flush(w io.Writer) error {
	n := len(r.generations)
	best := mat.NewDense(n, 1, nil)
	mean := mat.NewDense(n, 1, nil)
	min := mat.NewDense(n, 1, nil)
	complexity := mat.NewDense(n, 1, nil)
	for i, g := range r.generations {
		best.Set(i, 0, g.BestFitness)
		mean.Set(i, 0, g.MeanFitness)
		min.Set(i, 0, g.MinFitness)
		complexity.Set(i, 0, g.MeanComplexity)
	}

	out := npz.NewWriter(w)
	if err := out.Write("best_fitness", best); err != nil {
		return errors.Wrap(err, "failed to write best_fitness series")
	}
	if err := out.Write("mean_fitness", mean); err != nil {
		return errors.Wrap(err, "failed to write mean_fitness series")
	}
	if err := out.Write("min_fitness", min); err != nil {
		return errors.Wrap(err, "failed to write min_fitness series")
	}
	if err := out.Write("mean_complexity", complexity); err != nil {
		return errors.Wrap(err, "failed to write mean_complexity series")
	}
	return out.Close()
}
