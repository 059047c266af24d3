// SPDX-License-Identifier: MIT

package textstore

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/roadnet/core"
)

const (
	settlementFields = 3 // name:population:kind
	roadFields       = 5 // name:classification:length:source:destination

	initialLineBuffer = 64 * 1024
)

// Report summarizes one Load.
type Report struct {
	Settlements int       // settlement records added to the graph
	Roads       int       // road records added to the graph
	Skipped     []Skipped // records that were read but not added, in file order
}

// Skipped describes one record that Load did not add to the graph.
type Skipped struct {
	Path   string
	Line   int
	Record string
	Err    error // parse error or the graph's *core.ValidationError
}

// Load clears g and fills it from the settlements file, then the roads file.
//
// Behavior highlights:
//   - Invalid records are skipped, logged at Warn and listed in Report.Skipped.
//   - A missing or unreadable file yields an *IOError; the other file is still read.
//   - A bad count line, or fewer records than the count declares, yields a
//     *FormatError; records read before the problem stay loaded.
//   - Lines after the declared records are ignored.
//
// Returns every file-level error joined with errors.Join, or nil.
func (s *Store) Load(g *core.Graph) (Report, error) {
	g.Clear()
	var rep Report

	errS := s.readFile(s.SettlementsPath(), settlementFields, &rep, func(f []string) error {
		if err := addSettlement(g, f); err != nil {
			return err
		}
		rep.Settlements++

		return nil
	})
	errR := s.readFile(s.RoadsPath(), roadFields, &rep, func(f []string) error {
		if err := addRoad(g, f); err != nil {
			return err
		}
		rep.Roads++

		return nil
	})

	s.logger.Info("map loaded",
		"dir", s.dir,
		"settlements", rep.Settlements,
		"roads", rep.Roads,
		"skipped", len(rep.Skipped),
	)

	return rep, errors.Join(errS, errR)
}

// readFile streams one file: a count line, then count records of exactly want fields.
func (s *Store) readFile(path string, want int, rep *Report, apply func([]string) error) error {
	f, err := os.Open(path)
	if err != nil {
		s.logger.Error("cannot open map file", "file", path, "error", err)
		return &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	// Names have no length cap, so neither do lines.
	sc.Buffer(make([]byte, 0, initialLineBuffer), math.MaxInt)
	line := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++

		return strings.TrimSuffix(sc.Text(), "\r"), true
	}

	header, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return &IOError{Op: "read", Path: path, Err: err}
		}
		return &FormatError{Path: path, Line: 1, Reason: "missing record count"}
	}
	count, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || count < 0 {
		return &FormatError{Path: path, Line: 1, Reason: fmt.Sprintf("invalid record count %q", header)}
	}

	for i := 0; i < count; i++ {
		record, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return &IOError{Op: "read", Path: path, Err: err}
			}
			return &FormatError{
				Path:   path,
				Line:   line + 1,
				Reason: fmt.Sprintf("expected %d records, found %d", count, i),
			}
		}

		fields := strings.Split(record, delimiter)
		if len(fields) != want {
			err = fmt.Errorf("expected %d fields, found %d", want, len(fields))
		} else {
			err = apply(fields)
		}
		if err != nil {
			s.logger.Warn("skipping record", "file", path, "line", line, "reason", err.Error())
			rep.Skipped = append(rep.Skipped, Skipped{Path: path, Line: line, Record: record, Err: err})
		}
	}

	return nil
}

func addSettlement(g *core.Graph, f []string) error {
	population, err := strconv.Atoi(f[1])
	if err != nil {
		return fmt.Errorf("population %q: %w", f[1], err)
	}
	kind, err := core.ParseKind(f[2])
	if err != nil {
		return err
	}
	st, err := core.NewSettlement(f[0], population, kind)
	if err != nil {
		return err
	}

	return g.AddSettlement(st)
}

func addRoad(g *core.Graph, f []string) error {
	class, err := core.ParseClassification(f[1])
	if err != nil {
		return err
	}
	length, err := strconv.ParseFloat(f[2], 64)
	if err != nil {
		return fmt.Errorf("length %q: %w", f[2], err)
	}
	_, err = g.AddRoad(f[0], class, f[3], f[4], length)

	return err
}
