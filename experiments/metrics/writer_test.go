package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	t.Run("configs and records land on disk", func(t *testing.T) {
		// testing.T.Chdir requires Go 1.24; this build targets Go 1.21.
		wd, err := os.Getwd()
		require.NoError(t, err, "the working directory must be readable")
		require.NoError(t, os.Chdir(t.TempDir()))
		t.Cleanup(func() { _ = os.Chdir(wd) })

		w, err := NewWriter("unit")
		require.NoError(t, err, "the writer must create its directory")
		require.NoError(t, w.WriteResolverConfigs([]ResolverConfig{
			{ID: 1, Goroutines: 4, RangeOneMelee: true},
		}), "configs must write")
		require.NoError(t, w.WriteResolveRecords([]ResolveRecord{
			{Board: 0xabc, Config: 1, Repeat: 1, ResolveMetric: ResolveMetric{
				Goroutines:    4,
				Duration:      time.Millisecond,
				HexesExpanded: 10,
				Candidates:    2,
				Branches:      1,
				AttackHexes:   3,
			}},
		}), "records must write")

		entries, err := os.ReadDir(filepath.Join("experiments", "unit"))
		require.NoError(t, err, "the experiment directory must exist")
		require.Len(t, entries, 1, "one timestamped run expected")

		dir := filepath.Join("experiments", "unit", entries[0].Name())
		configs, err := os.ReadFile(filepath.Join(dir, "resolver_configs.csv"))
		require.NoError(t, err, "the configs file must exist")
		require.Contains(t, string(configs), "id,goroutines,range_one_melee,actors_block_sight",
			"the configs header names every column")
		require.Contains(t, string(configs), "1,4,true,false", "the config row must serialize")

		records, err := os.ReadFile(filepath.Join(dir, "resolve_records.csv"))
		require.NoError(t, err, "the records file must exist")
		require.Contains(t, string(records), "abc,1,1,4,1ms,10,2,1,3", "the record row must serialize")
	})
}
