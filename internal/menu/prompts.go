// SPDX-License-Identifier: MIT

package menu

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/roadnet/core"
)

// ask prints "query: " and returns the next trimmed input line, or io.EOF.
func (m *Menu) ask(query string) (string, error) {
	fmt.Fprint(m.out, query+": ")
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimSpace(m.in.Text()), nil
}

// askInt re-prompts until the answer is a non-negative integer.
func (m *Menu) askInt(query string) (int, error) {
	for {
		s, err := m.ask(query)
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			return n, nil
		}
		fmt.Fprintf(m.out, "%s is not a whole number of zero or more. Try again.\n", s)
	}
}

// askLength re-prompts until the answer is a positive number.
func (m *Menu) askLength(query string) (float64, error) {
	for {
		s, err := m.ask(query)
		if err != nil {
			return 0, err
		}
		if l, err := strconv.ParseFloat(s, 64); err == nil && l > 0 && !math.IsInf(l, 0) {
			return l, nil
		}
		fmt.Fprintf(m.out, "%s is not a positive number. Try again.\n", s)
	}
}

// askKind re-prompts until the answer names a settlement kind.
func (m *Menu) askKind() (core.Kind, error) {
	options := make([]string, 0, len(core.Kinds()))
	for _, k := range core.Kinds() {
		options = append(options, k.String())
	}
	for {
		s, err := m.ask("Kind (" + strings.Join(options, ", ") + ")")
		if err != nil {
			return 0, err
		}
		if k, err := core.ParseKind(s); err == nil {
			return k, nil
		}
		fmt.Fprintf(m.out, "%s is not a valid choice. Try again.\n", s)
	}
}

// askClassification re-prompts until the answer names a road classification.
func (m *Menu) askClassification() (core.Classification, error) {
	options := make([]string, 0, len(core.Classifications()))
	for _, c := range core.Classifications() {
		options = append(options, c.String())
	}
	for {
		s, err := m.ask("Classification (" + strings.Join(options, ", ") + ")")
		if err != nil {
			return 0, err
		}
		if c, err := core.ParseClassification(s); err == nil {
			return c, nil
		}
		fmt.Fprintf(m.out, "%s is not one of the options. Try again.\n", s)
	}
}

// askSettlement re-prompts until the answer names a settlement on the map.
func (m *Menu) askSettlement(query string) (string, error) {
	for {
		name, err := m.ask(query)
		if err != nil {
			return "", err
		}
		if m.graph.HasSettlement(name) {
			return name, nil
		}
		fmt.Fprintln(m.out, "ERROR: Settlement not found, try again!")
	}
}
