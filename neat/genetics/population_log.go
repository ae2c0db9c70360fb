package genetics

import "fmt"

func formatGenerationSummary(genomes []*Genome, best *Genome) string {
	var bestFitness float64
	if best != nil {
		bestFitness = best.Fitness
	}

	mean := 0.0
	for _, g := range genomes {
		mean += g.Fitness
	}
	if len(genomes) > 0 {
		mean /= float64(len(genomes))
	}

	return fmt.Sprintf("population=%d mean_fitness=%.6f best_fitness=%.6f",
		len(genomes), mean, bestFitness)
}
