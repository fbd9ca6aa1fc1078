// Package experiments measures the resolver over generated boards and
// stores the metrics as CSV files for offline analysis.
package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/stevenpelley/gloomhaven-monster-ai/experiments/metrics"
	"github.com/stevenpelley/gloomhaven-monster-ai/resolve"
)

const (
	NumBoards = 30 // Per experiment
	Repeats   = 3  // Per board and config
	Seed      = 20260823
)

var parallelConfigs = []metrics.ResolverConfig{
	{ID: 1, Goroutines: 1},
	{ID: 2, Goroutines: 2},
	{ID: 3, Goroutines: 4},
	{ID: 4, Goroutines: 8},
	{ID: 5, Goroutines: 16},
	{ID: 6, Goroutines: 32},
}

var policyConfigs = []metrics.ResolverConfig{
	{ID: 1, Goroutines: 8},
	{ID: 2, Goroutines: 8, RangeOneMelee: true},
	{ID: 3, Goroutines: 8, ActorsBlockSight: true},
	{ID: 4, Goroutines: 8, RangeOneMelee: true, ActorsBlockSight: true},
}

// RunParallelizationExperiment sweeps the goroutine count over the same
// board set to measure how candidate evaluation scales.
func RunParallelizationExperiment() {
	runExperiment("parallelization", parallelConfigs)
}

// RunPolicyExperiment compares the optional targeting rules over the same
// board set.
func RunPolicyExperiment() {
	runExperiment("policy", policyConfigs)
}

func runExperiment(name string, configs []metrics.ResolverConfig) {
	boards := generateBoards(NumBoards)
	records := []metrics.ResolveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for bi, bd := range boards {
		log.Info().Msgf("resolving board %d of %d...", bi+1, len(boards))

		for _, config := range configs {
			resolver := createResolver(config)
			for repeat := 1; repeat <= Repeats; repeat++ {
				_, metric, err := resolver.Resolve(bd)
				if err != nil {
					panic(fmt.Sprintf("failed to resolve experiment board: %v", err))
				}
				records = append(records, metrics.ResolveRecord{
					Board:         bd.Hash(),
					Config:        config.ID,
					Repeat:        repeat,
					ResolveMetric: metric,
				})
			}
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment metadata and results
	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteResolverConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store resolver configs: %v", err))
	}
	log.Info().Msg("stored resolver configs")

	err = writer.WriteResolveRecords(records)
	if err != nil {
		panic(fmt.Sprintf("failed to write resolve records: %v", err))
	}
	log.Info().Msg("stored resolve records")
}

func createResolver(config metrics.ResolverConfig) *resolve.Resolver {
	options := []resolve.Option{}

	if config.Goroutines > 0 {
		options = append(options, resolve.WithGoroutines(config.Goroutines))
	}
	if config.RangeOneMelee {
		options = append(options, resolve.WithRangeOneMelee(true))
	}
	if config.ActorsBlockSight {
		options = append(options, resolve.WithActorsBlockSight(true))
	}

	options = append(options, resolve.WithMetrics())
	return resolve.New(options...)
}
