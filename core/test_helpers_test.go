// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for roadnet/core.
//
// Purpose:
//   - Provide small, deterministic map fixtures shared by the core tests.
//   - Keep test bodies free of magic names and lengths.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/core"
)

// Common settlement names used across core tests.
const (
	TownA = "A"
	TownB = "B"
	TownC = "C"
	TownD = "D"

	Aberystwyth = "Aberystwyth"
	Borth       = "Borth"
	Machynlleth = "Machynlleth"
)

// Common road names used across core tests.
const (
	RoadAB = "A1"
	RoadBC = "B2"
	RoadAC = "A3"
	RoadX  = "X9"
)

// Common lengths used across core tests.
const (
	Len5  = 5.0
	Len10 = 10.0
	Len20 = 20.0
)

// MustSettlement constructs a settlement or fails the test.
func MustSettlement(t *testing.T, name string, population int, kind core.Kind) *core.Settlement {
	t.Helper()
	s, err := core.NewSettlement(name, population, kind)
	require.NoError(t, err, "NewSettlement(%q)", name)

	return s
}

// MustAddSettlements adds one Town-kind settlement per name.
func MustAddSettlements(t *testing.T, g *core.Graph, names ...string) {
	t.Helper()
	for i, name := range names {
		require.NoError(t, g.AddSettlement(MustSettlement(t, name, 1000*(i+1), core.Town)), "AddSettlement(%q)", name)
	}
}

// MustAddRoad adds a road or fails the test.
func MustAddRoad(t *testing.T, g *core.Graph, name string, c core.Classification, src, dst string, length float64) *core.Road {
	t.Helper()
	r, err := g.AddRoad(name, c, src, dst, length)
	require.NoError(t, err, "AddRoad(%s %s-%s)", name, src, dst)

	return r
}

// NewTriangle returns the map A-B(10), B-C(5), A-C(20) plus an isolated D.
//
// The shortest A → C route is A1 then B2 with total 15; D is unreachable from A.
func NewTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	MustAddSettlements(t, g, TownA, TownB, TownC, TownD)
	MustAddRoad(t, g, RoadAB, core.ARoad, TownA, TownB, Len10)
	MustAddRoad(t, g, RoadBC, core.BRoad, TownB, TownC, Len5)
	MustAddRoad(t, g, RoadAC, core.ARoad, TownA, TownC, Len20)

	return g
}
