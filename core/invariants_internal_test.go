// SPDX-License-Identifier: MIT

package core

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkConsistency asserts that catalogs, insertion orders and incident lists agree.
//
//   - every cataloged road appears exactly once in each endpoint's incident list;
//   - every incident RoadID is cataloged and names that settlement as an endpoint;
//   - order slices list exactly the catalog keys;
//   - every settlement on the map is owned by it.
func checkConsistency(t *testing.T, g *Graph) {
	t.Helper()
	require.Len(t, g.settlementOrder, len(g.settlements))
	require.Len(t, g.roadOrder, len(g.roads))

	for _, name := range g.settlementOrder {
		s, ok := g.settlements[name]
		require.True(t, ok, "ordered settlement %q missing from catalog", name)
		assert.Same(t, g, s.owner, "owner of %q", name)
		for _, id := range s.roads {
			r, ok := g.roads[id]
			require.True(t, ok, "%q lists uncataloged road %s", name, id)
			_, endpoint := r.Other(name)
			assert.True(t, endpoint, "%q lists road %s it is not an endpoint of", name, id)
		}
	}
	for _, id := range g.roadOrder {
		require.Contains(t, g.roads, id)
		for _, end := range []string{id.Source, id.Destination} {
			s, ok := g.settlements[end]
			require.True(t, ok, "road %s references missing settlement %q", id, end)
			n := 0
			for _, x := range s.roads {
				if x == id {
					n++
				}
			}
			assert.Equal(t, 1, n, "road %s listed %d times at %q", id, n, end)
		}
	}
}

func TestConsistency_Lifecycle(t *testing.T) {
	g := NewGraph()
	for _, name := range []string{"A", "B", "C", "D"} {
		s, err := NewSettlement(name, 10, Village)
		require.NoError(t, err)
		require.NoError(t, g.AddSettlement(s))
	}
	checkConsistency(t, g)

	_, err := g.AddRoad("r1", ARoad, "A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddRoad("r2", BRoad, "B", "C", 2)
	require.NoError(t, err)
	_, err = g.AddRoad("r3", Motorway, "C", "A", 3)
	require.NoError(t, err)
	_, err = g.AddRoad("r4", Unclassified, "D", "B", 4)
	require.NoError(t, err)
	checkConsistency(t, g)

	// Rejected roads leave no trace.
	_, err = g.AddRoad("r5", ARoad, "B", "A", 1)
	require.ErrorIs(t, err, ErrConnectingRoadExists)
	_, err = g.AddRoad("r6", ARoad, "A", "Z", 1)
	require.ErrorIs(t, err, ErrUnknownEndpoint)
	checkConsistency(t, g)
	assert.Len(t, g.roads, 4)

	require.NoError(t, g.RemoveRoad(RoadID{Name: "r3", Source: "C", Destination: "A"}))
	checkConsistency(t, g)

	require.NoError(t, g.RemoveSettlement("B"))
	checkConsistency(t, g)
	assert.Empty(t, g.roads)
	assert.Equal(t, []string{"A", "C", "D"}, g.settlementOrder)

	c := g.Clone()
	checkConsistency(t, c)

	g.Clear()
	checkConsistency(t, g)
	checkConsistency(t, c)
}

func TestClone_IsDeep(t *testing.T) {
	g := NewGraph()
	for _, name := range []string{"A", "B"} {
		s, err := NewSettlement(name, 10, Town)
		require.NoError(t, err)
		require.NoError(t, g.AddSettlement(s))
	}
	_, err := g.AddRoad("r1", ARoad, "A", "B", 1)
	require.NoError(t, err)

	c := g.Clone()
	require.NoError(t, c.RemoveSettlement("A"))
	require.NoError(t, c.SetPopulation("B", 99))

	checkConsistency(t, g)
	checkConsistency(t, c)
	assert.Equal(t, []string{"A", "B"}, g.settlementOrder)
	assert.Equal(t, 10, g.settlements["B"].population)
	assert.Len(t, g.roads, 1)
	assert.True(t, slices.Equal(g.settlements["B"].roads, []RoadID{{Name: "r1", Source: "A", Destination: "B"}}))
}
