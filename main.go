package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/stevenpelley/gloomhaven-monster-ai/experiments"
	"github.com/stevenpelley/gloomhaven-monster-ai/input"
	"github.com/stevenpelley/gloomhaven-monster-ai/resolve"
)

type config struct {
	Input            string `mapstructure:"input"`
	Goroutines       int    `mapstructure:"goroutines"`
	RangeOneMelee    bool   `mapstructure:"range-one-melee"`
	ActorsBlockSight bool   `mapstructure:"actors-block-sight"`
	Pretty           bool   `mapstructure:"pretty"`
	Verbose          bool   `mapstructure:"verbose"`
	Experiment       string `mapstructure:"experiment"`
}

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if cfg.Experiment != "" {
		runExperiment(cfg.Experiment)
		return
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to resolve move")
	}
}

// loadConfig layers flags over an optional YAML file: flags win, the file
// fills in whatever they leave at defaults.
func loadConfig(args []string) (config, error) {
	flags := pflag.NewFlagSet("gloomhaven-monster-ai", pflag.ContinueOnError)
	flags.StringP("input", "i", "-", "input document path, - for stdin")
	flags.Int("goroutines", 1, "goroutines for candidate evaluation")
	flags.Bool("range-one-melee", false, "treat range 1 attacks as melee")
	flags.Bool("actors-block-sight", false, "actors other than attacker and target block sight")
	flags.Bool("pretty", false, "indent the result JSON")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.String("experiment", "", "run a named experiment instead: parallelization or policy")
	configPath := flags.String("config", "", "optional YAML configuration file")
	if err := flags.Parse(args); err != nil {
		return config{}, err
	}

	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return config{}, err
	}
	if *configPath != "" {
		v.SetConfigFile(*configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, err
	}
	// A positional path wins over the input flag.
	if rest := flags.Args(); len(rest) > 0 {
		cfg.Input = rest[0]
	}
	return cfg, nil
}

func run(cfg config) error {
	data, err := readInput(cfg.Input)
	if err != nil {
		return err
	}
	doc, err := input.Decode(data)
	if err != nil {
		return err
	}
	bd, err := doc.Board()
	if err != nil {
		return err
	}

	options := []resolve.Option{resolve.WithMetrics()}
	if cfg.Goroutines > 0 {
		options = append(options, resolve.WithGoroutines(cfg.Goroutines))
	}
	if cfg.RangeOneMelee {
		options = append(options, resolve.WithRangeOneMelee(true))
	}
	if cfg.ActorsBlockSight {
		options = append(options, resolve.WithActorsBlockSight(true))
	}

	result, metric, err := resolve.New(options...).Resolve(bd)
	if err != nil {
		return err
	}
	log.Debug().Msgf("resolved %d branches in %s over %d expanded hexes",
		metric.Branches, metric.Duration, metric.HexesExpanded)

	encoder := json.NewEncoder(os.Stdout)
	if cfg.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(result)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

func runExperiment(name string) {
	switch name {
	case "parallelization":
		experiments.RunParallelizationExperiment()
	case "policy":
		experiments.RunPolicyExperiment()
	default:
		log.Fatal().Msgf("unknown experiment %q", name)
	}
}
