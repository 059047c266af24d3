// SPDX-License-Identifier: MIT
//
// File: methods_roads.go
// Role: Road lifecycle & queries, plus the attach/detach helpers that keep
//       incident lists and the road catalog in lock-step.
// Determinism:
//   - Roads() returns roads in insertion order.
//   - RoadsOf() returns roads in the settlement's attachment order.

package core

import "slices"

// AddRoad validates, constructs and attaches a road between source and dest.
//
// Implementation:
//   - Stage 1: Validate inputs: name (ErrBadName), classification (ErrUnknownClassification),
//     length (ErrBadLength), distinct endpoints (ErrLoopNotAllowed).
//   - Stage 2: Both endpoints must be on the map (ErrUnknownEndpoint).
//   - Stage 3: The unordered pair must not already be joined (ErrConnectingRoadExists).
//   - Stage 4: The identity triple must be new (ErrDuplicateRoad). Since loops are
//     rejected, a repeated triple always joins an already-joined pair and Stage 3
//     reports it first; this check only guards the catalog key.
//   - Stage 5: Only now construct the Road, catalog it and attach it to both endpoints.
//
// Nothing is mutated unless every check passes, so a rejected road is never visible
// from either settlement.
//
// Complexity: O(deg(source)) for the connecting-road scan.
func (g *Graph) AddRoad(name string, c Classification, source, dest string, length float64) (*Road, error) {
	const op = "add road"
	if err := checkName(op, name); err != nil {
		return nil, err
	}
	if !c.Valid() {
		return nil, invalid(op, name, ErrUnknownClassification)
	}
	if !validLength(length) {
		return nil, invalid(op, name, ErrBadLength)
	}
	if source == dest {
		return nil, invalid(op, name, ErrLoopNotAllowed)
	}

	src, okSrc := g.settlements[source]
	_, okDst := g.settlements[dest]
	if !okSrc || !okDst {
		return nil, invalid(op, name, ErrUnknownEndpoint)
	}
	if g.connectingRoad(src, dest) != nil {
		return nil, invalid(op, name, ErrConnectingRoadExists)
	}
	// Unreachable while Stage 3 holds; kept so the catalog key can never be overwritten.
	id := RoadID{Name: name, Source: source, Destination: dest}
	if _, exists := g.roads[id]; exists {
		return nil, invalid(op, name, ErrDuplicateRoad)
	}

	r := &Road{id: id, class: c, length: length}
	g.roads[id] = r
	g.roadOrder = append(g.roadOrder, id)
	g.attach(source, id)
	g.attach(dest, id)

	return r, nil
}

// RemoveRoad detaches the road from both endpoints and drops it from the catalog.
// Complexity: O(deg(source)+deg(dest)+R).
func (g *Graph) RemoveRoad(id RoadID) error {
	if _, ok := g.roads[id]; !ok {
		return notFound("remove road", id.String(), ErrRoadNotFound)
	}
	g.unlink(id.Source, id)
	g.unlink(id.Destination, id)
	g.forgetRoad(id)

	return nil
}

// FindRoad returns the road with exactly this identity. Source and destination are
// matched as given at creation; use RoadBetween for an orientation-free lookup.
// Complexity: O(1).
func (g *Graph) FindRoad(name, source, dest string) (*Road, error) {
	id := RoadID{Name: name, Source: source, Destination: dest}
	r, ok := g.roads[id]
	if !ok {
		return nil, notFound("find road", id.String(), ErrRoadNotFound)
	}

	return r, nil
}

// RoadBetween returns the connecting road of the unordered pair {a, b}.
// Complexity: O(deg(a)).
func (g *Graph) RoadBetween(a, b string) (*Road, error) {
	s, ok := g.settlements[a]
	if !ok {
		return nil, notFound("road between", a, ErrSettlementNotFound)
	}
	if r := g.connectingRoad(s, b); r != nil {
		return r, nil
	}

	return nil, notFound("road between", a+"-"+b, ErrRoadNotFound)
}

// RoadsOf returns the roads incident to the named settlement in attachment order.
func (g *Graph) RoadsOf(name string) ([]*Road, error) {
	s, ok := g.settlements[name]
	if !ok {
		return nil, notFound("roads of", name, ErrSettlementNotFound)
	}
	out := make([]*Road, 0, len(s.roads))
	for _, id := range s.roads {
		out = append(out, g.roads[id])
	}

	return out, nil
}

// RoadsNamed returns the roads incident to settlement whose name equals roadName.
// Names are compared by value.
func (g *Graph) RoadsNamed(settlement, roadName string) ([]*Road, error) {
	all, err := g.RoadsOf(settlement)
	if err != nil {
		return nil, err
	}

	return slices.DeleteFunc(all, func(r *Road) bool { return r.id.Name != roadName }), nil
}

// Roads returns all roads in insertion order.
func (g *Graph) Roads() []*Road {
	out := make([]*Road, 0, len(g.roadOrder))
	for _, id := range g.roadOrder {
		out = append(out, g.roads[id])
	}

	return out
}

// RoadCount returns the number of roads.
func (g *Graph) RoadCount() int { return len(g.roads) }

// connectingRoad scans s's incident list for a road whose other end is dest.
// The incident list holds roads of either orientation, which makes the check symmetric.
func (g *Graph) connectingRoad(s *Settlement, dest string) *Road {
	for _, id := range s.roads {
		r := g.roads[id]
		if other, _ := r.Other(s.name); other == dest {
			return r
		}
	}

	return nil
}

// attach appends id to the incident list of the named settlement.
func (g *Graph) attach(name string, id RoadID) {
	s := g.settlements[name]
	s.roads = append(s.roads, id)
}

// unlink removes id from the incident list of the named settlement, if present.
func (g *Graph) unlink(name string, id RoadID) {
	s, ok := g.settlements[name]
	if !ok {
		return
	}
	s.roads = slices.DeleteFunc(s.roads, func(x RoadID) bool { return x == id })
}

// forgetRoad drops id from the catalog and the insertion order.
func (g *Graph) forgetRoad(id RoadID) {
	delete(g.roads, id)
	g.roadOrder = slices.DeleteFunc(g.roadOrder, func(x RoadID) bool { return x == id })
}
