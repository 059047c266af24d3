// SPDX-License-Identifier: MIT

// Package core provides the in-memory road map: settlements (vertices) joined by
// named, classified, undirected roads (edges) weighted by their length in miles.
//
// The Graph G = (S,R) owns two catalogs:
//
//   - settlements: name → *Settlement, plus insertion order for stable enumeration
//   - roads:       RoadID{Name, Source, Destination} → *Road, plus insertion order
//
// Roads hold settlement *names*, never pointers; settlements hold the RoadIDs of
// their incident roads. Both directions are maintained by the Graph alone, so an
// entity can never be observed half-linked.
//
// Invariants (enforced by Graph, not by the entities):
//
//  1. No two settlements share a name.
//  2. No two roads share the identity triple (name, source, destination).
//  3. At most one connecting road per unordered pair of settlements.
//  4. Every cataloged road appears in exactly the incident lists of its two
//     endpoints, and every incident entry refers to a cataloged road.
//
// Core Methods:
//
//	// Settlement lifecycle
//	AddSettlement(s *Settlement) error                 // O(1)
//	RemoveSettlement(name string) error                // O(deg·(deg+R))
//	Settlement(name string) (*Settlement, error)       // O(1)
//	SetPopulation(name string, n int) error            // O(1)
//	SetKind(name string, k Kind) error                 // O(1)
//
//	// Road lifecycle
//	AddRoad(name, c, source, dest, length) (*Road, error) // O(deg(source))
//	RemoveRoad(id RoadID) error                        // O(deg+R)
//	FindRoad(name, source, dest string) (*Road, error) // O(1)
//	RoadBetween(a, b string) (*Road, error)            // O(deg(a))
//
//	// Routing
//	FindRoute(source, dest string, opts ...dijkstra.Option) (Route, error)
//
//	// Maintenance
//	Clone() *Graph, Clear(), String()
//
// Errors:
//
// Every rejected mutation returns a *ValidationError (errors.Is(err, ErrValidation))
// wrapping one specific sentinel such as ErrDuplicateName or ErrConnectingRoadExists.
// Lookups on absent keys return a *NotFoundError (errors.Is(err, ErrNotFound)).
// A failed operation never changes the graph.
//
// Concurrency: a Graph is not safe for concurrent use. Route queries run on a
// copied snapshot, so the engine never observes later mutations.
package core
