// SPDX-License-Identifier: MIT
//
// File: methods_settlements.go
// Role: Settlement lifecycle & queries.
// Determinism:
//   - Settlements() returns settlements in insertion order (the order they are saved in).

package core

import "slices"

// AddSettlement puts s on the map.
//
// Implementation:
//   - Stage 1: Reject nil and invalid settlements (ErrBadName, ErrUnknownKind).
//   - Stage 2: Reject a settlement already on some map (ErrAttached).
//   - Stage 3: Reject a name collision (ErrDuplicateName).
//   - Stage 4: Register s in the catalog and append its name to the insertion order.
//
// The graph keeps the pointer: later SetPopulation/SetKind calls on s are visible
// through the graph.
//
// Complexity: O(1) amortized.
func (g *Graph) AddSettlement(s *Settlement) error {
	const op = "add settlement"
	if s == nil {
		return invalid(op, "", ErrBadName)
	}
	if err := checkName(op, s.name); err != nil {
		return err
	}
	if !s.kind.Valid() {
		return invalid(op, s.name, ErrUnknownKind)
	}
	if s.owner != nil {
		return invalid(op, s.name, ErrAttached)
	}
	if _, exists := g.settlements[s.name]; exists {
		return invalid(op, s.name, ErrDuplicateName)
	}

	s.owner = g
	s.roads = nil
	g.settlements[s.name] = s
	g.settlementOrder = append(g.settlementOrder, s.name)

	return nil
}

// RemoveSettlement deletes the named settlement and every road incident to it.
//
// Implementation:
//   - Stage 1: Resolve the settlement (ErrSettlementNotFound).
//   - Stage 2: For each incident road: detach it from the other endpoint and drop it
//     from the road catalog.
//   - Stage 3: Remove the settlement from the catalog and the insertion order.
//
// Complexity: O(k·(k+R)) for k incident roads, dominated by order-slice compaction.
func (g *Graph) RemoveSettlement(name string) error {
	s, ok := g.settlements[name]
	if !ok {
		return notFound("remove settlement", name, ErrSettlementNotFound)
	}

	for _, id := range s.roads {
		r := g.roads[id]
		if other, ok := r.Other(name); ok {
			g.unlink(other, id)
		}
		g.forgetRoad(id)
	}

	s.roads = nil
	s.owner = nil
	delete(g.settlements, name)
	g.settlementOrder = slices.DeleteFunc(g.settlementOrder, func(n string) bool { return n == name })

	return nil
}

// Settlement returns the named settlement or a *NotFoundError.
// The returned pointer is live: its incident list reflects later graph mutations.
func (g *Graph) Settlement(name string) (*Settlement, error) {
	s, ok := g.settlements[name]
	if !ok {
		return nil, notFound("settlement", name, ErrSettlementNotFound)
	}

	return s, nil
}

// HasSettlement reports whether a settlement with that name is on the map.
func (g *Graph) HasSettlement(name string) bool {
	_, ok := g.settlements[name]

	return ok
}

// Settlements returns all settlements in insertion order.
func (g *Graph) Settlements() []*Settlement {
	out := make([]*Settlement, 0, len(g.settlementOrder))
	for _, name := range g.settlementOrder {
		out = append(out, g.settlements[name])
	}

	return out
}

// SettlementNames returns all settlement names in insertion order.
func (g *Graph) SettlementNames() []string {
	return slices.Clone(g.settlementOrder)
}

// SettlementCount returns the number of settlements.
func (g *Graph) SettlementCount() int { return len(g.settlements) }

// SetPopulation updates the population of the named settlement.
func (g *Graph) SetPopulation(name string, n int) error {
	s, err := g.Settlement(name)
	if err != nil {
		return err
	}

	return s.SetPopulation(n)
}

// SetKind updates the kind of the named settlement.
func (g *Graph) SetKind(name string, k Kind) error {
	s, err := g.Settlement(name)
	if err != nil {
		return err
	}

	return s.SetKind(k)
}
