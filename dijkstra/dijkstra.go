// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm on an undirected
// snapshot of a road network with positive edge lengths.
//
// The engine is built from copies of the caller's vertex and edge slices, so later
// changes to the caller's graph never leak into a query already in flight.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is settled at most once.
//   - Each successful relaxation pushes one heap entry (lazy decrease-key).
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - "Unreached" is an explicit flag per vertex, never a large finite number, so no
//     real route can ever be mistaken for infinity.
//   - Heap entries are ordered by (distance, snapshot index). Ties therefore resolve
//     to the vertex listed first in the snapshot, which makes routes reproducible.
//   - Relaxation uses strict "<": among equal-length alternatives the first one found
//     is kept.
//   - Unreached vertices are never pushed, so the loop ends as soon as every vertex
//     reachable from the source is settled.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"slices"
)

// noEdge marks a vertex without a predecessor edge (the source, or unreached).
const noEdge = -1

// Engine holds one completed single-source run over a private snapshot.
// An Engine is immutable after New returns and may answer any number of queries.
type Engine struct {
	options  Options
	vertices []string       // snapshot order; index doubles as tie-break rank
	index    map[string]int // vertex name → snapshot index
	edges    []Edge
	incident [][]int // vertex index → edge indices in snapshot order

	source   int
	dist     []float64 // valid only where reached[v]
	reached  []bool
	visited  []bool
	prevEdge []int // edge used to reach v, noEdge if none
	pq       nodePQ
}

// New copies the snapshot, validates it and runs Dijkstra from the configured Source.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. MaxDistance must be ≥ 0 and not NaN (ErrBadMaxDistance).
//  3. Vertex names must be unique (ErrDuplicateVertex).
//  4. Source must be a vertex (ErrUnknownVertex).
//  5. Every edge endpoint must be a vertex (ErrUnknownVertex) and every length
//     finite and > 0 (ErrBadLength).
//
// Complexity: O((V + E) log V).
func New(vertices []string, edges []Edge, opts ...Option) (*Engine, error) {
	// 1) Build Options: defaults first, then every option in order, so a later
	//    Source wins over an earlier one.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided.
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}

	// 3) Validate MaxDistance. +Inf (the default) means "no cap"; NaN would make
	//    every comparison false and is rejected.
	if math.IsNaN(cfg.MaxDistance) || cfg.MaxDistance < 0 {
		return nil, ErrBadMaxDistance
	}

	// 4) Copy vertices and index them. The index doubles as the tie-break rank.
	e := &Engine{
		options:  cfg,
		vertices: slices.Clone(vertices),
		index:    make(map[string]int, len(vertices)),
	}
	for i, v := range e.vertices {
		if _, dup := e.index[v]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVertex, v)
		}
		e.index[v] = i
	}
	// 5) Validate Source exists in the snapshot.
	src, ok := e.index[cfg.Source]
	if !ok {
		return nil, fmt.Errorf("%w: source %q", ErrUnknownVertex, cfg.Source)
	}
	e.source = src

	// 6) Copy edges, validate them and build incidence lists.
	//    Each edge is listed at both endpoints, in snapshot order.
	e.edges = slices.Clone(edges)
	e.incident = make([][]int, len(e.vertices))
	for i, edge := range e.edges {
		// 6a) Both endpoints must be snapshot vertices.
		from, okFrom := e.index[edge.From]
		to, okTo := e.index[edge.To]
		if !okFrom || !okTo {
			return nil, fmt.Errorf("%w: edge %s %s→%s", ErrUnknownVertex, edge.Name, edge.From, edge.To)
		}
		// 6b) Length must be finite and > 0; "!(x > 0)" also catches NaN.
		if !(edge.Length > 0) || math.IsInf(edge.Length, 0) {
			return nil, fmt.Errorf("%w: edge %s %s→%s length=%v", ErrBadLength, edge.Name, edge.From, edge.To, edge.Length)
		}
		// 6c) Register the edge at both ends; a loop is listed once.
		e.incident[from] = append(e.incident[from], i)
		if to != from {
			e.incident[to] = append(e.incident[to], i)
		}
	}

	// 7) Initialize state and run the main loop to completion.
	e.init()
	e.process()

	return e, nil
}

// init marks every vertex unreached and seeds the heap with the source at distance 0.
func (e *Engine) init() {
	// 1) Every vertex starts unreached and unvisited, with no predecessor.
	n := len(e.vertices)
	e.dist = make([]float64, n)
	e.reached = make([]bool, n)
	e.visited = make([]bool, n)
	e.prevEdge = make([]int, n)
	for v := range e.prevEdge {
		e.prevEdge[v] = noEdge
	}

	// 2) Distance to the source is zero, and the source counts as reached.
	e.dist[e.source] = 0
	e.reached[e.source] = true

	// 3) Initialize the heap and push the source.
	e.pq = make(nodePQ, 0, n)
	heap.Init(&e.pq)
	heap.Push(&e.pq, &nodeItem{idx: e.source, dist: 0})
}

// process settles vertices in (distance, index) order until the heap drains.
func (e *Engine) process() {
	for e.pq.Len() > 0 {
		// 1) Pop the (distance, index)-smallest entry.
		item := heap.Pop(&e.pq).(*nodeItem)
		u := item.idx

		// 2) Skip stale entries left behind by lazy decrease-key.
		if e.visited[u] {
			continue
		}

		// 3) Settle u: its distance is now final.
		e.visited[u] = true

		// 4) Relax every admissible edge of u.
		e.relax(u)
	}
}

// relax tries every admissible edge of u whose other endpoint is still unvisited.
func (e *Engine) relax(u int) {
	name := e.vertices[u]
	for _, ei := range e.incident[u] {
		edge := e.edges[ei]

		// 1) Edges rejected by the filter are impassable for this query.
		if e.options.EdgeFilter != nil && !e.options.EdgeFilter(edge) {
			continue
		}

		// 2) Settled neighbours cannot improve.
		v := e.index[edge.Other(name)]
		if e.visited[v] {
			continue
		}

		// 3) Candidates beyond MaxDistance leave v unreached through this edge.
		alt := e.dist[u] + edge.Length
		if alt > e.options.MaxDistance {
			continue
		}

		// 4) Strict improvement only: an equal-length alternative keeps the
		//    predecessor found first.
		if e.reached[v] && alt >= e.dist[v] {
			continue
		}

		// 5) Record the improvement and push a fresh heap entry.
		e.dist[v] = alt
		e.reached[v] = true
		e.prevEdge[v] = ei
		heap.Push(&e.pq, &nodeItem{idx: v, dist: alt})
	}
}

// Source returns the name of the vertex the engine ran from.
func (e *Engine) Source() string { return e.vertices[e.source] }

// Distance returns the shortest distance to v; ok is false if v is unreached or unknown.
func (e *Engine) Distance(v string) (float64, bool) {
	i, known := e.index[v]
	if !known || !e.reached[i] {
		return 0, false
	}

	return e.dist[i], true
}

// Reachable reports whether dest was reached from the source.
func (e *Engine) Reachable(dest string) bool {
	_, ok := e.Distance(dest)

	return ok
}

// ShortestRoute reconstructs the route to dest by following predecessor edges back
// to the source and reversing them.
//
// Returns:
//   - an empty Path with Total 0 when dest is the source;
//   - ErrUnknownVertex if dest is not in the snapshot;
//   - ErrNoRoute if dest was never reached (no predecessor walk is attempted).
func (e *Engine) ShortestRoute(dest string) (Path, error) {
	// 1) Validate the destination is a snapshot vertex.
	d, ok := e.index[dest]
	if !ok {
		return Path{}, fmt.Errorf("%w: destination %q", ErrUnknownVertex, dest)
	}

	// 2) Unreached means no predecessor chain exists; never walk it.
	if !e.reached[d] {
		return Path{}, fmt.Errorf("%w: %s → %s", ErrNoRoute, e.Source(), dest)
	}

	// 3) Walk predecessor edges back to the source, then reverse.
	var back []Edge
	for v := d; v != e.source; {
		edge := e.edges[e.prevEdge[v]]
		back = append(back, edge)
		v = e.index[edge.Other(e.vertices[v])]
	}
	slices.Reverse(back)

	// 4) Rebuild the vertex sequence by stepping across each edge in order.
	stops := make([]string, 0, len(back)+1)
	stops = append(stops, e.Source())
	for _, edge := range back {
		stops = append(stops, edge.Other(stops[len(stops)-1]))
	}

	return Path{
		Source:      e.Source(),
		Destination: dest,
		Edges:       back,
		Vertices:    stops,
		Total:       e.dist[d],
	}, nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	idx  int     // snapshot index
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, idx).
// Stale entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by snapshot index for deterministic ties.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
