package genetics

import (
	stdmath "math"
	"sort"

	"github.com/mvarga/neat-snake/neat"
	"github.com/mvarga/neat-snake/neat/rand"
)

// FitnessFunc evaluates every genome in the current population and must
// write a finite fitness value into each one before returning. It must not
// add, remove, or reorder genomes.
type FitnessFunc func(genomes []*Genome)

// Population holds one generation and drives the generational loop: a
// config, an RNG, a genome-id counter, the current ordered genome sequence,
// and a copy of the best genome seen across the whole run.
type Population struct {
	Options           *GenomeOptions
	RNG               *rand.Source
	SurvivalThreshold float64

	Genomes []*Genome
	Best    *Genome

	Generation int

	nextGenomeID int
}

// NewPopulation seeds populationSize genomes from the seeded-topology
// constructor.
func NewPopulation(populationSize int, survivalThreshold float64, opts *GenomeOptions, rng *rand.Source) *Population {
	p := &Population{Options: opts, RNG: rng, SurvivalThreshold: survivalThreshold}
	p.Genomes = make([]*Genome, populationSize)
	for i := range p.Genomes {
		p.Genomes[i] = NewGenome(p.nextID(), opts, rng)
	}
	return p
}

func (p *Population) nextID() int {
	id := p.nextGenomeID
	p.nextGenomeID++
	return id
}

// Run drives the generational loop for up to maxGenerations iterations:
// evaluate fitness, update the running best, replace the population with
// the result of Reproduce. Generation counts on across calls: each
// iteration evaluates generation p.Generation and then advances it by one.
func (p *Population) Run(fitnessFn FitnessFunc, maxGenerations int) {
	for i := 0; i < maxGenerations; i++ {
		gen := p.Generation
		fitnessFn(p.Genomes)

		for _, g := range p.Genomes {
			if p.Best == nil || g.Fitness > p.Best.Fitness {
				p.Best = g.Clone()
			}
		}
		neat.GenerationLog(gen, formatGenerationSummary(p.Genomes, p.Best))

		p.Genomes = p.Reproduce(survivalCutoff(len(p.Genomes), p.SurvivalThreshold))
		p.Generation++
	}
}

func survivalCutoff(populationSize int, survivalThreshold float64) int {
	cutoff := int(stdmath.Ceil(survivalThreshold * float64(populationSize)))
	if cutoff < 1 {
		cutoff = 1
	}
	if cutoff > populationSize {
		cutoff = populationSize
	}
	return cutoff
}

// Reproduce ranks the current genomes by fitness descending, truncates to
// the top cutoff as a breeding pool, then repeatedly crosses two uniformly
// drawn breeders and mutates the offspring. It reproduces the source's
// `while (spawn_size-- >= 0)` off-by-one: the new generation has
// populationSize+1 members, one more than configured (see DESIGN.md).
func (p *Population) Reproduce(cutoff int) []*Genome {
	ranked := append([]*Genome(nil), p.Genomes...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Fitness > ranked[j].Fitness })

	pool := ranked
	if cutoff < len(ranked) {
		pool = ranked[:cutoff]
	}

	populationSize := len(p.Genomes)
	next := make([]*Genome, 0, populationSize+1)
	for spawned := populationSize; spawned >= 0; spawned-- {
		parent1 := rand.ChooseFrom(p.RNG, pool)
		parent2 := rand.ChooseFrom(p.RNG, pool)

		offspring := Crossover(p.nextID(), parent1, parent2, p.Options, p.RNG)
		offspring.Mutate(p.RNG, p.Options)
		next = append(next, offspring)
	}
	return next
}
