// SPDX-License-Identifier: MIT
//
// File: display.go
// Role: Human-readable dumps of settlements, roads and the whole map.

package core

import (
	"strconv"
	"strings"
)

// String describes the settlement and lists every connected road with its far end.
func (s *Settlement) String() string {
	var b strings.Builder
	b.WriteString("Settlement Name = " + s.name + "\n")
	b.WriteString("Population = " + strconv.Itoa(s.population) + "\n")
	b.WriteString("Kind = " + s.kind.String() + "\n")
	b.WriteString("Roads = \n")
	for _, id := range s.roads {
		other := id.Destination
		if other == s.name {
			other = id.Source
		}
		b.WriteString("  " + id.Name + " connected to " + other + "\n")
	}

	return b.String()
}

// String formats a road on one line.
func (r *Road) String() string {
	return "Road Name=" + r.id.Name +
		", Classification=" + r.class.String() +
		", length=" + FormatLength(r.length) +
		", Source Settlement=" + r.id.Source +
		", Destination Settlement=" + r.id.Destination
}

// String dumps the whole map: every settlement block, then every road line, both in
// insertion order.
func (g *Graph) String() string {
	var b strings.Builder
	if len(g.settlementOrder) == 0 {
		b.WriteString("There are no settlements.\n")
	} else {
		b.WriteString("Map Settlements: \n")
		for _, name := range g.settlementOrder {
			b.WriteString(g.settlements[name].String())
		}
	}

	if len(g.roadOrder) == 0 {
		b.WriteString("There are no roads.\n")
	} else {
		b.WriteString("Map Roads: \n")
		for _, id := range g.roadOrder {
			b.WriteString(g.roads[id].String() + "\n")
		}
	}

	return b.String()
}

// FormatLength renders a length in its shortest exact decimal form, e.g. "10", "2.5".
// It is the form used both for display and for the text files.
func FormatLength(l float64) string {
	return strconv.FormatFloat(l, 'f', -1, 64)
}
