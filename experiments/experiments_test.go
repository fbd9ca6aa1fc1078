package experiments

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stevenpelley/gloomhaven-monster-ai/experiments/metrics"
	"github.com/stevenpelley/gloomhaven-monster-ai/resolve"
)

func TestGenerateBoards(t *testing.T) {
	t.Run("generation is deterministic", func(t *testing.T) {
		first := generateBoards(8)
		second := generateBoards(8)
		require.Len(t, second, 8, "the requested number of boards is generated")
		for i := range first {
			require.Equal(t, first[i].Hash(), second[i].Hash(),
				"board %d must hash identically across runs", i)
		}
	})

	t.Run("generated boards resolve", func(t *testing.T) {
		for i, bd := range generateBoards(8) {
			_, _, err := resolve.New().Resolve(bd)
			require.NoError(t, err, "board %d must resolve", i)
		}
	})
}

func TestCreateResolver(t *testing.T) {
	t.Run("the config shapes the resolver", func(t *testing.T) {
		resolver := createResolver(metrics.ResolverConfig{ID: 1, Goroutines: 8})
		bd := generateBoards(1)[0]
		_, metric, err := resolver.Resolve(bd)
		require.NoError(t, err, "the configured resolver must resolve")
		require.Equal(t, 8, metric.Goroutines, "the goroutine count must carry into the metric")
		require.Positive(t, metric.HexesExpanded, "metrics collection must be switched on")
	})
}
