// SPDX-License-Identifier: MIT

package menu

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/textstore"
)

// memStore records saves and serves a fixed map on load.
type memStore struct {
	saved   []string // g.String() at every save
	saveErr error
	source  *core.Graph
}

func (s *memStore) Save(g *core.Graph) error {
	s.saved = append(s.saved, g.String())
	return s.saveErr
}

func (s *memStore) Load(g *core.Graph) (textstore.Report, error) {
	g.Clear()
	var rep textstore.Report
	if s.source == nil {
		return rep, nil
	}
	for _, st := range s.source.Settlements() {
		cp, _ := core.NewSettlement(st.Name(), st.Population(), st.Kind())
		if g.AddSettlement(cp) == nil {
			rep.Settlements++
		}
	}
	for _, r := range s.source.Roads() {
		if _, err := g.AddRoad(r.Name(), r.Classification(), r.Source(), r.Destination(), r.Length()); err == nil {
			rep.Roads++
		}
	}

	return rep, nil
}

func session(t *testing.T, g *core.Graph, store *memStore, input ...string) string {
	t.Helper()
	var out bytes.Buffer
	m := New(strings.NewReader(strings.Join(input, "\n")+"\n"), &out, g, store)
	require.NoError(t, m.Run())

	return out.String()
}

func TestRun_CreateSettlementsAndRoad(t *testing.T) {
	g := core.NewGraph()
	store := &memStore{}

	out := session(t, g, store,
		"1", "Aberystwyth", "16000", "town",
		"1", "Borth", "lots", "1500", "SUBURB", "village",
		"3", "B4353", "x", "b", "Aberystwyth", "Borth", "-2", "8.5",
		"Q",
	)

	assert.Equal(t, []string{"Aberystwyth", "Borth"}, g.SettlementNames())
	r, err := g.RoadBetween("Borth", "Aberystwyth")
	require.NoError(t, err)
	assert.Equal(t, core.BRoad, r.Classification())
	assert.InDelta(t, 8.5, r.Length(), 0)

	assert.Contains(t, out, "lots is not a whole number")
	assert.Contains(t, out, "SUBURB is not a valid choice")
	assert.Contains(t, out, "x is not one of the options")
	assert.Contains(t, out, "-2 is not a positive number")
	assert.Equal(t, 2, strings.Count(out, "Settlement successfully added"))
	assert.Contains(t, out, "Road successfully added")
	require.Len(t, store.saved, 1)
	assert.Contains(t, out, "Map saved successfully.")
}

func TestRun_RejectedActionsKeepSessionAlive(t *testing.T) {
	g := core.NewGraph()
	out := session(t, g, &memStore{},
		"1", "A", "1", "HAMLET",
		"1", "A", "2", "CITY",
		"3", "A1", "A", "A", "B", "3",
		"2", "Nowhere",
		"4", "A1", "A", "B",
		"9",
		"q",
	)

	assert.Contains(t, out, "ERROR: add settlement \"A\": core: settlement already exists on map")
	assert.Contains(t, out, "ERROR: add road \"A1\": core: source or destination settlement not found")
	assert.Contains(t, out, "Settlement not found!")
	assert.Contains(t, out, "Road not found!")
	assert.Contains(t, out, "9 is not a valid choice. Try again.")
	assert.Equal(t, 1, g.SettlementCount())
}

func TestRun_FindRoute(t *testing.T) {
	g := core.NewGraph()
	for _, name := range []string{"A", "B", "C", "D"} {
		s, _ := core.NewSettlement(name, 1, core.Town)
		require.NoError(t, g.AddSettlement(s))
	}
	_, _ = g.AddRoad("A1", core.ARoad, "A", "B", 10)
	_, _ = g.AddRoad("B2", core.BRoad, "B", "C", 5)
	_, _ = g.AddRoad("A3", core.ARoad, "A", "C", 20)

	out := session(t, g, &memStore{},
		"7", "Z", "A", "C",
		"7", "A", "D",
		"Q",
	)

	assert.Contains(t, out, "ERROR: Settlement not found, try again!")
	assert.Contains(t, out, "Starting at A\n"+
		"Take the A1 for 10 miles until you reach B\n"+
		"Take the B2 for 5 miles until you reach C\n"+
		"The total mileage of the route is : 15.00 miles.\n")
	assert.Contains(t, out, "There is no route from A to D.")
}

func TestRun_DeleteAndDisplay(t *testing.T) {
	g := core.NewGraph()
	for _, name := range []string{"A", "B"} {
		s, _ := core.NewSettlement(name, 1, core.Town)
		require.NoError(t, g.AddSettlement(s))
	}
	_, _ = g.AddRoad("A1", core.ARoad, "A", "B", 10)

	out := session(t, g, &memStore{},
		"4", "A1", "A", "B",
		"2", "B",
		"5",
		"Q",
	)

	assert.Contains(t, out, "Road successfully removed")
	assert.Contains(t, out, "Settlement successfully removed")
	assert.Contains(t, out, "Settlement Name = A\n")
	assert.Contains(t, out, "There are no roads.")
	assert.Zero(t, g.RoadCount())
}

func TestRun_SaveAndLoad(t *testing.T) {
	source := core.NewGraph()
	s, _ := core.NewSettlement("Borth", 1500, core.Village)
	require.NoError(t, source.AddSettlement(s))
	store := &memStore{source: source}

	g := core.NewGraph()
	out := session(t, g, store, "6", "8", "Q")

	assert.Contains(t, out, "Loaded 1 settlements and 0 roads (0 records skipped).")
	assert.True(t, g.HasSettlement("Borth"))
	assert.Len(t, store.saved, 2)
}

func TestRun_RejectsInfiniteLengthAndLongLines(t *testing.T) {
	g := core.NewGraph()
	long := strings.Repeat("y", 100_000)

	out := session(t, g, &memStore{},
		"1", "A", "1", "TOWN",
		"1", long, "1", "TOWN",
		"3", "U1", "U", "A", long, "Inf", "+Inf", "7",
		"Q",
	)

	assert.Contains(t, out, "Inf is not a positive number. Try again.")
	assert.Contains(t, out, "+Inf is not a positive number. Try again.")
	r, err := g.RoadBetween("A", long)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, r.Length(), 0)
}

func TestRun_EOFSaves(t *testing.T) {
	g := core.NewGraph()
	store := &memStore{}

	// Input ends in the middle of a settlement.
	var out bytes.Buffer
	m := New(strings.NewReader("1\nAberystwyth\n"), &out, g, store)
	require.NoError(t, m.Run())

	assert.Zero(t, g.SettlementCount())
	assert.Len(t, store.saved, 1)
}

func TestRun_FinalSaveError(t *testing.T) {
	boom := errors.New("disk full")
	var out bytes.Buffer
	m := New(strings.NewReader("Q\n"), &out, core.NewGraph(), &memStore{saveErr: boom})

	require.ErrorIs(t, m.Run(), boom)
	assert.Contains(t, out.String(), "ERROR: disk full")
}

func TestNarrate_SameSettlement(t *testing.T) {
	var out bytes.Buffer
	Narrate(&out, core.Route{Source: "A", Destination: "A", Stops: []string{"A"}})
	assert.Equal(t, "Starting at A\nThe total mileage of the route is : 0.00 miles.\n", out.String())
}
