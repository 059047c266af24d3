// SPDX-License-Identifier: MIT

// Package dijkstra provides the shortest-route engine used by the road map.
//
// Overview:
//
//   - New(vertices, edges, Source(s), ...) copies the snapshot and computes shortest
//     distances and predecessor edges from s to every reachable vertex.
//   - ShortestRoute(dest) rebuilds the ordered edge path s → dest.
//   - Edges are undirected and must have finite, strictly positive lengths.
//
// Key features:
//
//   - Snapshot isolation: the engine never holds references into caller data.
//   - Explicit "unreached" state and a first-class ErrNoRoute result.
//   - Deterministic tie-breaking by snapshot vertex order.
//   - WithMaxDistance caps exploration; WithEdgeFilter makes chosen edges impassable.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Error handling (sentinel errors, wrapped with context; test with errors.Is):
//
//   - ErrEmptySource, ErrBadMaxDistance: bad configuration.
//   - ErrDuplicateVertex, ErrUnknownVertex, ErrBadLength: malformed snapshot or query.
//   - ErrNoRoute: destination unreachable. An expected outcome, not a failure.
//
// Example:
//
//	eng, err := dijkstra.New(
//	    []string{"A", "B", "C"},
//	    []dijkstra.Edge{
//	        {Name: "ab", From: "A", To: "B", Length: 10},
//	        {Name: "bc", From: "B", To: "C", Length: 5},
//	        {Name: "ac", From: "A", To: "C", Length: 20},
//	    },
//	    dijkstra.Source("A"),
//	)
//	if err != nil {
//	    return err
//	}
//	path, err := eng.ShortestRoute("C") // ab, bc; Total 15
package dijkstra
