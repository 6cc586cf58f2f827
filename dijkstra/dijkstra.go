// SPDX-License-Identifier: MIT
// File: dijkstra.go
// Role: Run/ShortestPath entry points, the per-run state and the min-heap.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is settled at most once: V extractions from the heap.
//   - Each successful relaxation pushes a new heap entry: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for the distance records.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - Unreached vertices hold +Inf, never a finite magic number. A path sum
//     that overflows to +Inf is flagged and reported as ErrCostOverflow.
//   - Ties are broken by store insertion order, so runs are reproducible.
//   - Costs are validated by core on insertion, so no negative-weight pre-scan is needed.

package dijkstra

import (
	"container/heap"
	"math"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/katalvlaran/graphz/core"
)

// Run computes least-cost distances from source to every vertex of g.
//
// Preconditions and validation (in order):
//  1. Options must be in range (ErrBadMaxIterations, ErrBadMaxDistance).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain source (ErrVertexNotFound).
//
// The run fails with ErrComputationLimit when MaxIterations is set and more
// vertices than that would have to be settled, and with ErrCostOverflow when
// a path sum exceeds the float64 range.
func Run[K comparable, V any](g *core.Graph[K, V], source K, opts ...Option) (*Result[K], error) {
	cfg, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, errors.Wrapf(ErrVertexNotFound, "source %v", source)
	}

	return execute(newRunner(g, source, cfg))
}

// ShortestPath returns the least total cost from source to target and the
// hops of one least-cost path, ordered from the target back to the source.
//
// Options and both endpoints are checked before any computation, in the
// same order as Run. source == target yields cost 0 and no hops. An
// unreachable target yields ErrNoPath.
//
// The search stops as soon as target is settled, so MaxIterations bounds
// the settlements needed to reach target, not the whole single-source run.
func ShortestPath[K comparable, V any](g *core.Graph[K, V], source, target K, opts ...Option) (float64, []Hop[K], error) {
	cfg, err := newOptions(opts)
	if err != nil {
		return 0, nil, err
	}
	if g == nil {
		return 0, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return 0, nil, errors.Wrapf(ErrVertexNotFound, "source %v", source)
	}
	if !g.HasVertex(target) {
		return 0, nil, errors.Wrapf(ErrVertexNotFound, "target %v", target)
	}

	r := newRunner(g, source, cfg)
	r.target, r.stopAtTarget = target, true
	res, err := execute(r)
	if err != nil {
		return 0, nil, err
	}
	hops, err := res.Path(target)
	if err != nil {
		return 0, nil, err
	}

	return res.records[target].dist, hops, nil
}

// execute drives r to completion and snapshots its records.
func execute[K comparable, V any](r *runner[K, V]) (*Result[K], error) {
	if err := r.process(); err != nil {
		return nil, err
	}
	r.options.Logger.Debug("dijkstra[%s]: settled %d of %d vertices", r.runID, r.settled, len(r.records))

	return &Result[K]{source: r.source, records: r.records, settled: r.settled}, nil
}

// record is the per-vertex state of one run.
type record[K comparable] struct {
	dist     float64
	pred     K
	order    int // position in store insertion order, the tie-breaker
	explored bool
	overflow bool // some candidate path to this vertex exceeded the float64 range
}

// runner holds the mutable state for a single execution.
type runner[K comparable, V any] struct {
	g       *core.Graph[K, V] // read-only within a run
	options Options
	source  K
	runID   string
	records map[K]*record[K]
	settled int
	pq      nodePQ[K]

	// target ends the run once settled; only set by ShortestPath.
	target       K
	stopAtTarget bool
}

// newRunner initialises every record to (+Inf, source) and the source to (0, source).
func newRunner[K comparable, V any](g *core.Graph[K, V], source K, cfg Options) *runner[K, V] {
	ids := g.VertexIDs()
	r := &runner[K, V]{
		g:       g,
		options: cfg,
		source:  source,
		runID:   uuid.NewString(),
		records: make(map[K]*record[K], len(ids)),
		pq:      make(nodePQ[K], 0, len(ids)),
	}
	for i, id := range ids {
		r.records[id] = &record[K]{dist: math.Inf(1), pred: source, order: i}
	}
	src := r.records[source]
	src.dist = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[K]{id: source, dist: 0, order: src.order})
	cfg.Logger.Debug("dijkstra[%s]: run from %v over %d vertices", r.runID, source, len(ids))

	return r
}

// process repeatedly settles the closest unexplored vertex until none is reachable.
func (r *runner[K, V]) process() error {
	var item *nodeItem[K]
	var rec *record[K]
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem[K])
		rec = r.records[item.id]

		// Stale entry from a later improvement.
		if rec.explored {
			continue
		}
		if r.options.MaxIterations > 0 && r.settled >= r.options.MaxIterations {
			r.options.Logger.Warn("dijkstra[%s]: limit %d reached", r.runID, r.options.MaxIterations)
			return errors.Wrapf(ErrComputationLimit, "settled %d vertices", r.settled)
		}

		rec.explored = true
		r.settled++
		if r.stopAtTarget && item.id == r.target {
			return nil
		}
		if err := r.relax(item.id, rec.dist); err != nil {
			return err
		}
	}

	return r.checkOverflow()
}

// checkOverflow fails the run if a vertex stayed unreached only because
// every path to it overflowed. A finite route found later wins.
func (r *runner[K, V]) checkOverflow() error {
	if r.stopAtTarget {
		if rec := r.records[r.target]; rec.overflow && math.IsInf(rec.dist, 1) {
			return errors.Wrapf(ErrCostOverflow, "path to %v", r.target)
		}
		return nil
	}
	for _, id := range r.g.VertexIDs() {
		if rec := r.records[id]; rec.overflow && math.IsInf(rec.dist, 1) {
			return errors.Wrapf(ErrCostOverflow, "path to %v", id)
		}
	}

	return nil
}

// relax tries to improve every neighbor of u through u.
func (r *runner[K, V]) relax(u K, du float64) error {
	neighbors, err := r.g.Adjacency(u)
	if err != nil {
		return errors.Wrapf(err, "dijkstra: neighbors of %v", u)
	}

	var rec *record[K]
	var alt float64
	for _, n := range neighbors {
		rec = r.records[n.ID]
		if rec.explored {
			continue
		}
		alt = du + n.Cost
		if alt > r.options.MaxDistance {
			continue
		}
		// +Inf is the unreached marker; a real path must never collide with it.
		if math.IsInf(alt, 1) {
			rec.overflow = true
			continue
		}
		// Strict improvement only; equal-cost alternatives keep the first predecessor.
		if alt >= rec.dist {
			continue
		}
		rec.dist = alt
		rec.pred = u
		heap.Push(&r.pq, &nodeItem[K]{id: n.ID, dist: alt, order: rec.order})
	}

	return nil
}

// nodeItem is a heap entry: a vertex with the distance it was pushed at.
type nodeItem[K comparable] struct {
	id    K
	dist  float64
	order int
}

// nodePQ is a min-heap ordered by (dist, order).
type nodePQ[K comparable] []*nodeItem[K]

func (pq nodePQ[K]) Len() int { return len(pq) }

func (pq nodePQ[K]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].order < pq[j].order
}

func (pq nodePQ[K]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[K]) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem[K])) }

func (pq *nodePQ[K]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
