// SPDX-License-Identifier: MIT

package textstore

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/roadnet/core"
)

// Save writes g to the settlements file and then the roads file, replacing both.
//
// Records follow the graph's insertion order. If the settlements file cannot be
// written the roads file is left untouched. Every error is an *IOError.
func (s *Store) Save(g *core.Graph) error {
	settlements := g.Settlements()
	err := s.writeFile(s.SettlementsPath(), len(settlements), func(w *bufio.Writer) {
		for _, st := range settlements {
			w.WriteString(SettlementRecord(st))
			w.WriteByte('\n')
		}
	})
	if err != nil {
		return err
	}

	roads := g.Roads()
	err = s.writeFile(s.RoadsPath(), len(roads), func(w *bufio.Writer) {
		for _, r := range roads {
			w.WriteString(RoadRecord(r))
			w.WriteByte('\n')
		}
	})
	if err != nil {
		return err
	}

	s.logger.Info("map saved", "dir", s.dir, "settlements", len(settlements), "roads", len(roads))

	return nil
}

// writeFile truncates path and writes the count line followed by body.
// bufio.Writer errors are sticky, so a single Flush check covers every write.
func (s *Store) writeFile(path string, count int, body func(*bufio.Writer)) (err error) {
	f, err := os.Create(path)
	if err != nil {
		s.logger.Error("cannot create map file", "file", path, "error", err)
		return &IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	w := bufio.NewWriter(f)
	w.WriteString(strconv.Itoa(count))
	w.WriteByte('\n')
	body(w)
	if ferr := w.Flush(); ferr != nil {
		return &IOError{Op: "write", Path: path, Err: ferr}
	}

	return nil
}

// SettlementRecord formats st as "name:population:KIND".
func SettlementRecord(st *core.Settlement) string {
	return strings.Join([]string{
		st.Name(),
		strconv.Itoa(st.Population()),
		st.Kind().String(),
	}, delimiter)
}

// RoadRecord formats r as "name:CLASS:length:source:destination".
func RoadRecord(r *core.Road) string {
	return strings.Join([]string{
		r.Name(),
		r.Classification().String(),
		core.FormatLength(r.Length()),
		r.Source(),
		r.Destination(),
	}, delimiter)
}
