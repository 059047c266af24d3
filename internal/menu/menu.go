// SPDX-License-Identifier: MIT

// Package menu drives the interactive road map session over a line-oriented reader
// and writer: create and delete settlements and roads, display, save, load and plan
// routes.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/dijkstra"
	"github.com/katalvlaran/roadnet/textstore"
)

// Store is the persistence the menu saves to and loads from.
type Store interface {
	Load(g *core.Graph) (textstore.Report, error)
	Save(g *core.Graph) error
}

// Menu is one interactive session over a single map.
type Menu struct {
	in     *bufio.Scanner
	out    io.Writer
	graph  *core.Graph
	store  Store
	logger *slog.Logger
}

// Option configures a Menu.
type Option func(*Menu)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(m *Menu) {
		if l != nil {
			m.logger = l
		}
	}
}

// New returns a session that reads choices from in and writes to out.
func New(in io.Reader, out io.Writer, g *core.Graph, store Store, opts ...Option) *Menu {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 4096), math.MaxInt)
	m := &Menu{
		in:     sc,
		out:    out,
		graph:  g,
		store:  store,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// menuText is printed before every choice.
const menuText = `--* Menu *--
 1) Create Settlement
 2) Delete Settlement
 3) Create Road
 4) Delete Road
 5) Display Map
 6) Save Map
 7) Find Route
 8) Load Map
 Q) Quit
`

// Run shows the menu until the user quits or input ends, then saves the map.
// The returned error is the final save's error; failures of individual actions are
// reported to the user and the session continues.
func (m *Menu) Run() error {
	for {
		fmt.Fprint(m.out, menuText)
		choice, err := m.ask("Enter Choice")
		if err != nil {
			break
		}
		m.logger.Debug("menu choice", "choice", choice)

		switch strings.ToUpper(choice) {
		case "1":
			err = m.createSettlement()
		case "2":
			err = m.deleteSettlement()
		case "3":
			err = m.createRoad()
		case "4":
			err = m.deleteRoad()
		case "5":
			fmt.Fprint(m.out, m.graph.String())
		case "6":
			m.save()
		case "7":
			err = m.findRoute()
		case "8":
			m.load()
		case "Q":
			return m.save()
		default:
			fmt.Fprintf(m.out, "%s is not a valid choice. Try again.\n", choice)
		}
		if errors.Is(err, io.EOF) {
			break
		}
	}

	return m.save()
}

func (m *Menu) createSettlement() error {
	fmt.Fprintln(m.out, "New Settlement")
	name, err := m.ask("Name")
	if err != nil {
		return err
	}
	population, err := m.askInt("Population")
	if err != nil {
		return err
	}
	kind, err := m.askKind()
	if err != nil {
		return err
	}

	s, err := core.NewSettlement(name, population, kind)
	if err == nil {
		err = m.graph.AddSettlement(s)
	}
	if err != nil {
		m.fail(err)
		return nil
	}
	fmt.Fprintln(m.out, "Settlement successfully added")

	return nil
}

func (m *Menu) deleteSettlement() error {
	name, err := m.ask("Settlement name")
	if err != nil {
		return err
	}
	if err := m.graph.RemoveSettlement(name); err != nil {
		fmt.Fprintln(m.out, "Settlement not found!")
		return nil
	}
	fmt.Fprintln(m.out, "Settlement successfully removed")

	return nil
}

func (m *Menu) createRoad() error {
	fmt.Fprintln(m.out, "New Road")
	name, err := m.ask("Name")
	if err != nil {
		return err
	}
	class, err := m.askClassification()
	if err != nil {
		return err
	}
	source, err := m.ask("Source settlement")
	if err != nil {
		return err
	}
	dest, err := m.ask("Destination settlement")
	if err != nil {
		return err
	}
	length, err := m.askLength("Length (miles)")
	if err != nil {
		return err
	}

	if _, err := m.graph.AddRoad(name, class, source, dest, length); err != nil {
		m.fail(err)
		return nil
	}
	fmt.Fprintln(m.out, "Road successfully added")

	return nil
}

func (m *Menu) deleteRoad() error {
	name, err := m.ask("Road name")
	if err != nil {
		return err
	}
	source, err := m.ask("Source settlement")
	if err != nil {
		return err
	}
	dest, err := m.ask("Destination settlement")
	if err != nil {
		return err
	}

	id := core.RoadID{Name: name, Source: source, Destination: dest}
	if err := m.graph.RemoveRoad(id); err != nil {
		fmt.Fprintln(m.out, "Road not found!")
		return nil
	}
	fmt.Fprintln(m.out, "Road successfully removed")

	return nil
}

func (m *Menu) findRoute() error {
	fmt.Fprintln(m.out, "Please enter the information required to find your route.")
	source, err := m.askSettlement("Source")
	if err != nil {
		return err
	}
	dest, err := m.askSettlement("Destination")
	if err != nil {
		return err
	}

	route, err := m.graph.FindRoute(source, dest)
	switch {
	case errors.Is(err, dijkstra.ErrNoRoute):
		fmt.Fprintf(m.out, "There is no route from %s to %s.\n", source, dest)
	case err != nil:
		m.fail(err)
	default:
		Narrate(m.out, route)
	}

	return nil
}

// save writes the map and reports the outcome to the user.
func (m *Menu) save() error {
	if err := m.store.Save(m.graph); err != nil {
		m.fail(err)
		return err
	}
	fmt.Fprintln(m.out, "Map saved successfully.")

	return nil
}

// load replaces the map with the store's content and reports what was read.
func (m *Menu) load() {
	rep, err := m.store.Load(m.graph)
	if err != nil {
		m.fail(err)
	}
	fmt.Fprintf(m.out, "Loaded %d settlements and %d roads (%d records skipped).\n",
		rep.Settlements, rep.Roads, len(rep.Skipped))
}

// fail reports a rejected action to the user.
func (m *Menu) fail(err error) {
	m.logger.Warn("action failed", "error", err)
	fmt.Fprintf(m.out, "ERROR: %v\n", err)
}
