// SPDX-License-Identifier: MIT

// Package roadnet is a small road-map toolkit: settlements joined by named,
// classified roads, shortest-route planning, and a plain-text file format.
//
// What is in the box?
//
//	core/      - the Graph: settlements, roads, validation and FindRoute
//	dijkstra/  - the shortest-route engine over a copied snapshot
//	textstore/ - settlements.txt / roads.txt load and save
//	cmd/roadnet - interactive editor and route planner
//
// Guarantees:
//
//   - Every rejected mutation leaves the map unchanged.
//   - At most one road joins any pair of settlements.
//   - Deleting a settlement deletes its roads from both ends.
//   - Routes are reproducible: ties resolve by settlement insertion order.
//   - Save → Load → Save produces identical files.
//
// Quick ASCII example:
//
//	    A ──10── B
//	     \       │
//	      20     5
//	        \    │
//	          ── C
//
//	g.FindRoute("A", "C") // A → B → C, 15 miles
//
//	go install github.com/katalvlaran/roadnet/cmd/roadnet@latest
package roadnet
