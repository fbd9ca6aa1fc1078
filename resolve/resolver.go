package resolve

import (
	"fmt"
	"sync"

	"github.com/stevenpelley/gloomhaven-monster-ai/board"
	"github.com/stevenpelley/gloomhaven-monster-ai/experiments/metrics"
)

// Resolver computes a monster's turn: focus, targets, attack hexes. A
// Resolver is reusable; one instance may serve concurrent calls on
// independent boards, though a metrics-enabled Resolver mixes the
// counters of calls that overlap.
type Resolver struct {
	goroutines       int
	rangeOneMelee    bool
	actorsBlockSight bool
	collector        metrics.Collector
}

type Option func(r *Resolver)

// WithGoroutines sets the worker count for candidate and branch
// evaluation. Values below 1 are ignored.
func WithGoroutines(goroutines int) Option {
	return func(r *Resolver) {
		if goroutines > 0 {
			r.goroutines = goroutines
		}
	}
}

// WithRangeOneMelee makes a range-1 attack resolve as a melee attack
// instead of a ranged one. The rulebooks read both ways; pick per table.
func WithRangeOneMelee(rangeOneMelee bool) Option {
	return func(r *Resolver) {
		r.rangeOneMelee = rangeOneMelee
	}
}

// WithActorsBlockSight makes actors standing on a sight line's interior
// hexes block it. The default lets only walls block.
func WithActorsBlockSight(actorsBlockSight bool) Option {
	return func(r *Resolver) {
		r.actorsBlockSight = actorsBlockSight
	}
}

// WithMetrics swaps the discarding default collector for a counting one,
// so Resolve returns a filled ResolveMetric.
func WithMetrics() Option {
	return func(r *Resolver) {
		r.collector = metrics.NewCollector()
	}
}

// New builds a Resolver. The default is sequential, treats range 1 as
// ranged, lets only walls block sight, and discards metrics.
func New(options ...Option) *Resolver {
	r := &Resolver{ // Default values
		goroutines: 1,
		collector:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Resolve computes the mover's turn on the given board. The result carries
// one branch per tied focus; no targetable opponent at all is a valid
// outcome, not an error. The board is read only and never retained.
func (r *Resolver) Resolve(bd *board.Board) (*Result, metrics.ResolveMetric, error) {
	mover := bd.Mover()
	if mover == nil || mover.Move == nil {
		return nil, metrics.ResolveMetric{}, fmt.Errorf("%w: board carries no resolvable mover", board.ErrInvalidMover)
	}
	r.collector.Start(r.goroutines)

	fwd := forwardDistances(bd)
	r.collector.AddExpandedHexes(len(fwd.Distances()))

	cands := candidates(bd)
	evals := make([]candidateEval, len(cands))
	r.each(len(cands), func(i int) {
		evals[i] = evaluate(bd, fwd, cands[i])
		r.collector.AddCandidate()
	})

	foci := tiedFoci(evals)
	branches := make([]Branch, len(foci))
	r.each(len(foci), func(i int) {
		branches[i] = r.branch(bd, fwd, foci[i], evals)
	})

	attackHexes := 0
	for _, b := range branches {
		attackHexes += len(b.AttackHexes)
	}
	metric := r.collector.Complete(len(branches), attackHexes)
	return assemble(branches), metric, nil
}

// each runs fn for every index on the configured goroutine count. Workers
// write to preassigned slots, so results reduce deterministically no
// matter how the work interleaves.
func (r *Resolver) each(count int, fn func(i int)) {
	if r.goroutines == 1 || count <= 1 {
		for i := 0; i < count; i++ {
			fn(i)
		}
		return
	}
	task := make(chan int, count)
	for i := 0; i < count; i++ {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for g := 0; g < r.goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range task {
				fn(i)
			}
		}()
	}
	wg.Wait()
}
