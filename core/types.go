// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Settlement, Road, RoadID and Graph declarations plus their constructors.
// Ownership:
//   - Graph owns both catalogs. Roads refer to settlements by name; settlements list
//     the RoadIDs of their incident roads. Neither side owns the other.
//   - Incident lists change only through Graph.attach/detach.

package core

import (
	"math"
	"strings"
)

// fieldDelimiter separates fields in the persisted text format; names may not contain it.
const fieldDelimiter = ":"

// Settlement is a named vertex of the map.
//
// The name is immutable and is the settlement's identity: two settlements are the
// same iff their names are equal. Population and kind may change at any time.
type Settlement struct {
	name       string
	population int
	kind       Kind
	roads      []RoadID // incident roads, attachment order
	owner      *Graph   // set while the settlement is on a map
}

// NewSettlement constructs a detached settlement with no roads.
//
// Errors (as *ValidationError):
//   - ErrBadName: name is empty or contains ':' or a line break.
//   - ErrBadPopulation: population < 0.
//   - ErrUnknownKind: kind is not a declared Kind.
func NewSettlement(name string, population int, kind Kind) (*Settlement, error) {
	const op = "new settlement"
	if err := checkName(op, name); err != nil {
		return nil, err
	}
	if population < 0 {
		return nil, invalid(op, name, ErrBadPopulation)
	}
	if !kind.Valid() {
		return nil, invalid(op, name, ErrUnknownKind)
	}

	return &Settlement{name: name, population: population, kind: kind}, nil
}

// Name returns the settlement's immutable name.
func (s *Settlement) Name() string { return s.name }

// Population returns the current population.
func (s *Settlement) Population() int { return s.population }

// Kind returns the current settlement kind.
func (s *Settlement) Kind() Kind { return s.kind }

// SetPopulation changes the population size; negative sizes are rejected.
func (s *Settlement) SetPopulation(n int) error {
	if n < 0 {
		return invalid("set population", s.name, ErrBadPopulation)
	}
	s.population = n

	return nil
}

// SetKind records a change of status, e.g. a town granted city status.
func (s *Settlement) SetKind(k Kind) error {
	if !k.Valid() {
		return invalid("set kind", s.name, ErrUnknownKind)
	}
	s.kind = k

	return nil
}

// Roads returns a copy of the incident road identities in attachment order.
func (s *Settlement) Roads() []RoadID {
	out := make([]RoadID, len(s.roads))
	copy(out, s.roads)

	return out
}

// Degree returns the number of incident roads.
func (s *Settlement) Degree() int { return len(s.roads) }

// RoadID is the identity of a road. Length and classification are deliberately
// excluded: two roads with equal RoadIDs are duplicates whatever their lengths.
type RoadID struct {
	Name        string
	Source      string
	Destination string
}

// String formats the identity as "name(source-destination)".
func (id RoadID) String() string {
	return id.Name + "(" + id.Source + "-" + id.Destination + ")"
}

// Road is a named, classified, undirected edge between two distinct settlements.
// Roads are immutable once created; values returned by the Graph are safe to keep.
type Road struct {
	id     RoadID
	class  Classification
	length float64
}

// ID returns the road's identity triple.
func (r *Road) ID() RoadID { return r.id }

// Name returns the road name, e.g. "A487".
func (r *Road) Name() string { return r.id.Name }

// Classification returns the road class.
func (r *Road) Classification() Classification { return r.class }

// Source returns the name of the settlement passed as source at creation.
func (r *Road) Source() string { return r.id.Source }

// Destination returns the name of the settlement passed as destination at creation.
func (r *Road) Destination() string { return r.id.Destination }

// Length returns the road length in miles.
func (r *Road) Length() float64 { return r.length }

// Other returns the endpoint opposite to settlement, and false if settlement is
// not an endpoint of r.
func (r *Road) Other(settlement string) (string, bool) {
	switch settlement {
	case r.id.Source:
		return r.id.Destination, true
	case r.id.Destination:
		return r.id.Source, true
	default:
		return "", false
	}
}

// Connects reports whether r joins a and b, in either direction.
func (r *Road) Connects(a, b string) bool {
	return (r.id.Source == a && r.id.Destination == b) ||
		(r.id.Source == b && r.id.Destination == a)
}

// Graph is the road map: the settlement catalog, the road catalog and their
// insertion orders. The zero value is not usable; call NewGraph.
type Graph struct {
	settlements     map[string]*Settlement
	settlementOrder []string

	roads     map[RoadID]*Road
	roadOrder []RoadID
}

// NewGraph creates an empty map.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		settlements: make(map[string]*Settlement),
		roads:       make(map[RoadID]*Road),
	}
}

// checkName enforces the single-token name rule shared by settlements and roads.
func checkName(op, name string) error {
	if name == "" || strings.Contains(name, fieldDelimiter) || strings.ContainsAny(name, "\r\n") {
		return invalid(op, name, ErrBadName)
	}

	return nil
}

func validLength(l float64) bool {
	return l > 0 && !math.IsInf(l, 0) && !math.IsNaN(l)
}
