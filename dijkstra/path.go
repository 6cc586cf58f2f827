// SPDX-License-Identifier: MIT

package dijkstra

import (
	"math"

	"github.com/pkg/errors"
)

// Result holds the distance records of one run. It is a snapshot: later
// mutations of the graph are not reflected.
type Result[K comparable] struct {
	source  K
	records map[K]*record[K]
	settled int
}

// Source returns the vertex the run started from.
func (res *Result[K]) Source() K { return res.source }

// Settled returns how many vertices the run settled.
func (res *Result[K]) Settled() int { return res.settled }

// Reachable reports whether id was reached from the source.
func (res *Result[K]) Reachable(id K) bool {
	rec, ok := res.records[id]
	return ok && !math.IsInf(rec.dist, 1)
}

// Distance returns the least cost from the source to id.
//
// Errors: ErrVertexNotFound for ids that were not in the graph,
// ErrNoPath for unreachable ones.
func (res *Result[K]) Distance(id K) (float64, error) {
	rec, err := res.reached(id)
	if err != nil {
		return 0, err
	}

	return rec.dist, nil
}

// Distances returns the least cost to every reachable vertex.
func (res *Result[K]) Distances() map[K]float64 {
	out := make(map[K]float64, res.settled)
	for id, rec := range res.records {
		if !math.IsInf(rec.dist, 1) {
			out[id] = rec.dist
		}
	}

	return out
}

// Path walks predecessors from target back to the source and returns the
// (vertex, predecessor) hops in walk order. The source itself yields an
// empty slice.
//
// Errors: ErrVertexNotFound, ErrNoPath.
// Complexity: O(path length).
func (res *Result[K]) Path(target K) ([]Hop[K], error) {
	if _, err := res.reached(target); err != nil {
		return nil, err
	}

	hops := make([]Hop[K], 0)
	cur := target
	// Predecessors form a tree rooted at the source; len(records) bounds any walk.
	for steps := 0; cur != res.source; steps++ {
		if steps >= len(res.records) {
			return nil, errors.Wrapf(ErrNoPath, "predecessor chain from %v does not reach %v", target, res.source)
		}
		pred := res.records[cur].pred
		hops = append(hops, Hop[K]{ID: cur, Predecessor: pred})
		cur = pred
	}

	return hops, nil
}

// Route returns the vertices of the least-cost path from the source to
// target, both included.
//
// Errors: ErrVertexNotFound, ErrNoPath.
func (res *Result[K]) Route(target K) ([]K, error) {
	hops, err := res.Path(target)
	if err != nil {
		return nil, err
	}

	route := make([]K, len(hops)+1)
	route[0] = res.source
	for i, h := range hops {
		route[len(hops)-i] = h.ID
	}

	return route, nil
}

// reached returns the record of id or the appropriate sentinel.
func (res *Result[K]) reached(id K) (*record[K], error) {
	rec, ok := res.records[id]
	if !ok {
		return nil, errors.Wrapf(ErrVertexNotFound, "vertex %v", id)
	}
	if math.IsInf(rec.dist, 1) {
		return nil, errors.Wrapf(ErrNoPath, "%v unreachable from %v", id, res.source)
	}

	return rec, nil
}
