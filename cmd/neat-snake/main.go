// Command neat-snake runs a NEAT experiment to completion: stdlib flag
// parsing, a config-file driven Options load, a signal-interruptible run
// loop, and plaintext-plus-NPZ results on exit. No third-party CLI
// framework is introduced here.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mvarga/neat-snake/examples/snake"
	"github.com/mvarga/neat-snake/examples/xor"
	"github.com/mvarga/neat-snake/neat"
	"github.com/mvarga/neat-snake/neat/genetics"
	"github.com/mvarga/neat-snake/neat/rand"
	"github.com/mvarga/neat-snake/neat/stats"
)

func main() {
	var configPath = flag.String("config", "./data/xor.yml", "The NEAT options configuration file (.yml/.yaml or flat plaintext).")
	var experimentName = flag.String("experiment", "xor", "The experiment to run. [xor, snake]")
	var outDirPath = flag.String("out", "./out", "The output directory to store results.")
	var restorePath = flag.String("restore", "", "A checkpoint (.yml) or plaintext population file to resume from. If empty, a fresh population is seeded.")
	var seed = flag.Int64("seed", 0, "RNG seed. Defaults to a time-derived seed when 0.")

	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(*seed)

	opts, err := neat.ReadOptionsFromFile(*configPath)
	if err != nil {
		log.Fatal("Failed to load NEAT options: ", err)
	}

	fitnessFn, maxFitness, err := resolveExperiment(*experimentName, opts, rng)
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(*outDirPath, os.ModePerm); err != nil {
		log.Fatal("Failed to create output directory: ", err)
	}

	genomeOpts := genetics.GenomeOptionsFromNeat(opts)
	pop, err := loadOrSeedPopulation(*restorePath, opts, genomeOpts, rng)
	if err != nil {
		log.Fatal("Failed to initialize population: ", err)
	}

	recorder := stats.NewRecorder()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = neat.NewContext(ctx, &neat.RunContext{Options: opts, RNG: rng})

	var runErr error
	runInterruptibly(ctx, cancel, func(ctx context.Context) {
		runErr = runGenerations(ctx, pop, fitnessFn, recorder)
	})
	if runErr != nil {
		log.Fatal("Run failed: ", runErr)
	}

	neat.InfoLog(fmt.Sprintf("run complete: generation=%d best_fitness=%.6f (max=%.6f)",
		pop.Generation, bestFitness(pop), maxFitness))

	if err := writeResults(*outDirPath, *experimentName, pop, recorder); err != nil {
		log.Fatal("Failed to write results: ", err)
	}
}

func resolveExperiment(name string, opts *neat.Options, rng *rand.Source) (genetics.FitnessFunc, float64, error) {
	switch name {
	case "xor":
		return xor.Fitness, xor.MaxFitness, nil
	case "snake":
		return snake.NewFitness(rng), 0, nil
	default:
		return nil, 0, fmt.Errorf("unsupported experiment: %s", name)
	}
}

func loadOrSeedPopulation(restorePath string, opts *neat.Options, genomeOpts *genetics.GenomeOptions, rng *rand.Source) (*genetics.Population, error) {
	if restorePath == "" {
		return genetics.NewPopulation(opts.PopulationSize, opts.SurvivalThreshold, genomeOpts, rng), nil
	}

	f, err := os.Open(restorePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if isYAMLPath(restorePath) {
		return genetics.ReadCheckpoint(f, genomeOpts, rng)
	}
	return genetics.ReadPopulation(f, genomeOpts, opts.SurvivalThreshold, rng)
}

func isYAMLPath(path string) bool {
	n := len(path)
	return n >= 4 && (path[n-4:] == ".yml" || path[n-5:] == ".yaml")
}

// runGenerations drives pop.Run one generation at a time (rather than
// handing it the full generation count in one call) so recorder can observe
// every generation's statistics as they complete, and so an interrupt can
// stop the run between generations instead of mid-mutation. The generation
// budget comes from the RunContext stashed on ctx rather than a parameter,
// so a caller can't forget to keep it in sync with the Options ctx was built
// from.
func runGenerations(ctx context.Context, pop *genetics.Population, fitnessFn genetics.FitnessFunc, recorder *stats.Recorder) error {
	rc, ok := neat.FromContext(ctx)
	if !ok {
		return neat.ErrRunContextNotFound
	}

	for gen := 0; gen < rc.Options.MaxGenerations; gen++ {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		pop.Run(func(genomes []*genetics.Genome) {
			fitnessFn(genomes)
			recorder.Record(pop.Generation, genomes)
		}, 1)
	}
	return nil
}

// runInterruptibly runs work in a goroutine and blocks until it finishes or
// the process receives an interrupt signal, in which case it cancels ctx
// and waits for work to observe the cancellation and return.
func runInterruptibly(ctx context.Context, cancel context.CancelFunc, work func(context.Context)) {
	done := make(chan struct{})
	go func() {
		work(ctx)
		close(done)
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	select {
	case <-signals:
		cancel()
		<-done
	case <-done:
	}
}

func bestFitness(pop *genetics.Population) float64 {
	if pop.Best == nil {
		return genetics.FitnessNotComputed
	}
	return pop.Best.Fitness
}

func writeResults(outDir, experimentName string, pop *genetics.Population, recorder *stats.Recorder) error {
	popPath := fmt.Sprintf("%s/%s-population.txt", outDir, experimentName)
	popFile, err := os.Create(popPath)
	if err != nil {
		return err
	}
	defer popFile.Close()
	if err := genetics.WritePopulation(popFile, pop); err != nil {
		return err
	}

	npzPath := fmt.Sprintf("%s/%s-stats.npz", outDir, experimentName)
	npzFile, err := os.Create(npzPath)
	if err != nil {
		return err
	}
	defer npzFile.Close()
	return recorder.Flush(npzFile)
}
