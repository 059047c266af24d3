// SPDX-License-Identifier: MIT
//
// File: methods_route.go
// Role: Shortest-route queries. The Graph hands the engine a copied snapshot and
//       maps the resulting edge path back to road values.
// Determinism:
//   - The snapshot lists settlements and roads in insertion order, which is the
//     engine's tie-break order.

package core

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/roadnet/dijkstra"
)

// Route is an ordered sequence of roads from Source to Destination.
//
// Stops has len(Roads)+1 entries: Source, every intermediate settlement, Destination.
// Roads are copies; they stay valid whatever happens to the map afterwards.
type Route struct {
	Source      string
	Destination string
	Roads       []Road
	Stops       []string
	Total       float64
}

// Len returns the number of roads on the route.
func (r Route) Len() int { return len(r.Roads) }

// FindRoute returns the shortest route by total length from source to dest.
//
// Implementation:
//   - Stage 1: Copy settlements and roads into a dijkstra snapshot.
//   - Stage 2: Run the engine from source; opts are applied before the source, so they
//     cannot redirect the query.
//   - Stage 3: Map the engine's edge path back to Road values.
//
// Errors:
//   - dijkstra.ErrUnknownVertex: source or dest is not on the map.
//   - dijkstra.ErrNoRoute: dest is unreachable. This is an expected result.
//
// Complexity: O(V + E) snapshot + O((V + E) log V) search.
func (g *Graph) FindRoute(source, dest string, opts ...dijkstra.Option) (Route, error) {
	vertices, edges := g.snapshot()

	all := make([]dijkstra.Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, dijkstra.Source(source))
	eng, err := dijkstra.New(vertices, edges, all...)
	if err != nil {
		return Route{}, fmt.Errorf("core: route %s → %s: %w", source, dest, err)
	}

	path, err := eng.ShortestRoute(dest)
	if err != nil {
		return Route{}, fmt.Errorf("core: route %s → %s: %w", source, dest, err)
	}

	route := Route{
		Source:      path.Source,
		Destination: path.Destination,
		Roads:       make([]Road, 0, len(path.Edges)),
		Stops:       slices.Clone(path.Vertices),
		Total:       path.Total,
	}
	for _, e := range path.Edges {
		id := RoadID{Name: e.Name, Source: e.From, Destination: e.To}
		route.Roads = append(route.Roads, *g.roads[id])
	}

	return route, nil
}

// Avoid returns a route option that makes every road of the given classes impassable.
func Avoid(classes ...Classification) dijkstra.Option {
	banned := make(map[string]struct{}, len(classes))
	for _, c := range classes {
		banned[c.String()] = struct{}{}
	}

	return dijkstra.WithEdgeFilter(func(e dijkstra.Edge) bool {
		_, skip := banned[e.Label]
		return !skip
	})
}

// snapshot copies the current vertex and edge sets for a routing query.
func (g *Graph) snapshot() ([]string, []dijkstra.Edge) {
	vertices := slices.Clone(g.settlementOrder)
	edges := make([]dijkstra.Edge, 0, len(g.roadOrder))
	for _, id := range g.roadOrder {
		r := g.roads[id]
		edges = append(edges, dijkstra.Edge{
			Name:   id.Name,
			From:   id.Source,
			To:     id.Destination,
			Length: r.length,
			Label:  r.class.String(),
		})
	}

	return vertices, edges
}
