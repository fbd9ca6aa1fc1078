package graph

import "container/heap"

// Edge is a directed weighted step out of a vertex. Costs must be
// non-negative.
type Edge[V comparable] struct {
	To   V
	Cost int
}

// Expand returns the outgoing edges of a vertex. It must not return two
// edges to the same destination.
type Expand[V comparable] func(V) []Edge[V]

// Result holds single-source shortest paths: the least cost to every
// settled vertex, plus every tied predecessor, so that all equally short
// paths can be expanded afterwards.
type Result[V comparable] struct {
	source V
	dist   map[V]int
	prev   map[V][]V
}

// ShortestPaths runs uniform-cost search from source over the expansion
// function. Vertices the expansion never reaches are absent from the
// result: their distance is infinite.
func ShortestPaths[V comparable](source V, expand Expand[V]) Result[V] {
	r := Result[V]{
		source: source,
		dist:   map[V]int{source: 0},
		prev:   map[V][]V{},
	}

	pq := &queue[V]{{v: source, dist: 0}}
	for pq.Len() > 0 {
		it := heap.Pop(pq).(item[V])
		if it.dist > r.dist[it.v] {
			continue // stale entry, already settled shorter
		}
		for _, e := range expand(it.v) {
			nd := it.dist + e.Cost
			d, seen := r.dist[e.To]
			switch {
			case !seen || nd < d:
				r.dist[e.To] = nd
				r.prev[e.To] = []V{it.v}
				heap.Push(pq, item[V]{v: e.To, dist: nd})
			case nd == d:
				// An equally short way in; remember it, no re-expansion
				// needed.
				r.prev[e.To] = append(r.prev[e.To], it.v)
			}
		}
	}
	return r
}

// Distance returns the least cost from the source to v. ok is false when
// v was never reached.
func (r Result[V]) Distance(v V) (int, bool) {
	d, ok := r.dist[v]
	return d, ok
}

// Distances returns the full distance map. The map is the result's own;
// callers must not mutate it.
func (r Result[V]) Distances() map[V]int {
	return r.dist
}

// PathsTo expands every tied shortest path from the source to v, each as
// the sequence of vertices stepped onto, the source itself excluded. An
// unreachable v yields nil; the source yields one empty path.
func (r Result[V]) PathsTo(v V) [][]V {
	if _, ok := r.dist[v]; !ok {
		return nil
	}
	if v == r.source {
		return [][]V{{}}
	}
	var out [][]V
	for _, p := range r.prev[v] {
		for _, base := range r.PathsTo(p) {
			path := make([]V, 0, len(base)+1)
			path = append(path, base...)
			path = append(path, v)
			out = append(out, path)
		}
	}
	return out
}

type item[V comparable] struct {
	v    V
	dist int
}

type queue[V comparable] []item[V]

func (q queue[V]) Len() int           { return len(q) }
func (q queue[V]) Less(i, j int) bool { return q[i].dist < q[j].dist }
func (q queue[V]) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *queue[V]) Push(x any)        { *q = append(*q, x.(item[V])) }
func (q *queue[V]) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}
