// SPDX-License-Identifier: MIT
// Package core_test verifies Graph.FindRoute on top of the dijkstra engine.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/dijkstra"
)

func roadNames(r core.Route) []string {
	out := make([]string, 0, len(r.Roads))
	for _, road := range r.Roads {
		out = append(out, road.Name())
	}

	return out
}

func TestFindRoute_PrefersShorterTotal(t *testing.T) {
	g := NewTriangle(t)

	route, err := g.FindRoute(TownA, TownC)
	require.NoError(t, err)
	assert.Equal(t, []string{RoadAB, RoadBC}, roadNames(route))
	assert.Equal(t, []string{TownA, TownB, TownC}, route.Stops)
	assert.InDelta(t, 15.0, route.Total, 1e-9)
	assert.Equal(t, 2, route.Len())
	assert.Equal(t, TownA, route.Source)
	assert.Equal(t, TownC, route.Destination)
}

func TestFindRoute_Symmetric(t *testing.T) {
	g := NewTriangle(t)

	there, err := g.FindRoute(TownA, TownC)
	require.NoError(t, err)
	back, err := g.FindRoute(TownC, TownA)
	require.NoError(t, err)

	assert.InDelta(t, there.Total, back.Total, 1e-9)
	assert.Equal(t, []string{RoadBC, RoadAB}, roadNames(back))
	assert.Equal(t, []string{TownC, TownB, TownA}, back.Stops)
}

func TestFindRoute_Unreachable(t *testing.T) {
	g := NewTriangle(t)

	_, err := g.FindRoute(TownA, TownD)
	require.ErrorIs(t, err, dijkstra.ErrNoRoute)
	assert.False(t, core.IsNotFound(err))
}

func TestFindRoute_SameSettlement(t *testing.T) {
	g := NewTriangle(t)

	route, err := g.FindRoute(TownB, TownB)
	require.NoError(t, err)
	assert.Empty(t, route.Roads)
	assert.Equal(t, []string{TownB}, route.Stops)
	assert.Zero(t, route.Total)
}

func TestFindRoute_UnknownEndpoints(t *testing.T) {
	g := NewTriangle(t)

	_, err := g.FindRoute("Nowhere", TownA)
	require.ErrorIs(t, err, dijkstra.ErrUnknownVertex)
	_, err = g.FindRoute(TownA, "Nowhere")
	require.ErrorIs(t, err, dijkstra.ErrUnknownVertex)
}

func TestFindRoute_ResultOutlivesMutation(t *testing.T) {
	g := NewTriangle(t)

	route, err := g.FindRoute(TownA, TownC)
	require.NoError(t, err)
	require.NoError(t, g.RemoveSettlement(TownB))

	// Route values are copies.
	assert.Equal(t, []string{RoadAB, RoadBC}, roadNames(route))
	assert.InDelta(t, Len10, route.Roads[0].Length(), 0)

	// A new query sees the new map.
	route, err = g.FindRoute(TownA, TownC)
	require.NoError(t, err)
	assert.Equal(t, []string{RoadAC}, roadNames(route))
	assert.InDelta(t, Len20, route.Total, 1e-9)
}

func TestFindRoute_Avoid(t *testing.T) {
	g := NewTriangle(t)

	// Without B roads the only way is the direct A3.
	route, err := g.FindRoute(TownA, TownC, core.Avoid(core.BRoad))
	require.NoError(t, err)
	assert.Equal(t, []string{RoadAC}, roadNames(route))

	_, err = g.FindRoute(TownA, TownC, core.Avoid(core.ARoad, core.BRoad))
	require.ErrorIs(t, err, dijkstra.ErrNoRoute)
}

func TestFindRoute_SourceOptionCannotRedirect(t *testing.T) {
	g := NewTriangle(t)

	route, err := g.FindRoute(TownC, TownA, dijkstra.Source(TownD))
	require.NoError(t, err)
	assert.Equal(t, TownC, route.Source)
}

func TestFindRoute_MaxDistance(t *testing.T) {
	g := NewTriangle(t)

	_, err := g.FindRoute(TownA, TownC, dijkstra.WithMaxDistance(12))
	require.ErrorIs(t, err, dijkstra.ErrNoRoute)

	route, err := g.FindRoute(TownA, TownC, dijkstra.WithMaxDistance(15))
	require.NoError(t, err)
	assert.InDelta(t, 15.0, route.Total, 1e-9)
}
