// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Whole-map operations: Clear and Clone.

package core

import "slices"

// Clear removes every settlement and road. Settlements that were on the map are
// detached and may be added to another map.
// Complexity: O(V).
func (g *Graph) Clear() {
	for _, s := range g.settlements {
		s.roads = nil
		s.owner = nil
	}
	clear(g.settlements)
	clear(g.roads)
	g.settlementOrder = g.settlementOrder[:0]
	g.roadOrder = g.roadOrder[:0]
}

// Clone returns a deep copy of the map. Settlements and roads are new values owned by
// the clone; both insertion orders are preserved, so the clone saves byte-identically.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		settlements:     make(map[string]*Settlement, len(g.settlements)),
		settlementOrder: slices.Clone(g.settlementOrder),
		roads:           make(map[RoadID]*Road, len(g.roads)),
		roadOrder:       slices.Clone(g.roadOrder),
	}
	for name, s := range g.settlements {
		c.settlements[name] = &Settlement{
			name:       s.name,
			population: s.population,
			kind:       s.kind,
			roads:      slices.Clone(s.roads),
			owner:      c,
		}
	}
	for id, r := range g.roads {
		cp := *r
		c.roads[id] = &cp
	}

	return c
}
