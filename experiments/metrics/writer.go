package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// ResolverConfig identifies one resolver variant under measurement.
type ResolverConfig struct {
	ID               int
	Goroutines       int
	RangeOneMelee    bool
	ActorsBlockSight bool
}

// ResolveRecord is one measured resolution: the board it ran on, the
// resolver variant, and the metric the run produced.
type ResolveRecord struct {
	Board  uint64 // board.Hash()
	Config int    // ResolverConfig.ID
	Repeat int
	ResolveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped directory for one experiment's files.
func NewWriter(name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteResolverConfigs(configs []ResolverConfig) error {
	path := filepath.Join(w.baseDir, "resolver_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create resolver configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "goroutines", "range_one_melee", "actors_block_sight"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write resolver configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Goroutines),
			strconv.FormatBool(config.RangeOneMelee),
			strconv.FormatBool(config.ActorsBlockSight),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write resolver config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteResolveRecords(records []ResolveRecord) error {
	path := filepath.Join(w.baseDir, "resolve_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create resolve records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"board", "config", "repeat", "goroutines", "duration", "hexes_expanded", "candidates", "branches", "attack_hexes"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write resolve records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.FormatUint(record.Board, 16),
			strconv.Itoa(record.Config),
			strconv.Itoa(record.Repeat),
			strconv.Itoa(record.Goroutines),
			record.Duration.String(),
			strconv.Itoa(record.HexesExpanded),
			strconv.Itoa(record.Candidates),
			strconv.Itoa(record.Branches),
			strconv.Itoa(record.AttackHexes),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write resolve record row: %w", err)
		}
	}

	return nil
}
