// SPDX-License-Identifier: MIT
//
// File: kinds.go
// Role: Fixed enumerations for settlement kinds and road classifications.
// Determinism:
//   - Kinds() and Classifications() return declaration order.
//   - String() yields the canonical upper-case literal used by the text format.
//   - Parsing folds case with Unicode case folding, so "town", "Town" and "TOWN" agree.

package core

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Kind is the category of a settlement. The zero value is not a valid Kind.
type Kind int

// Settlement kinds, smallest first.
const (
	Hamlet Kind = iota + 1
	Village
	Town
	City
)

var kindNames = [...]string{
	Hamlet:  "HAMLET",
	Village: "VILLAGE",
	Town:    "TOWN",
	City:    "CITY",
}

// Classification is the class of a road. The zero value is not a valid Classification.
type Classification int

// Road classifications, as signposted.
const (
	Motorway     Classification = iota + 1 // M
	ARoad                                  // A
	BRoad                                  // B
	Unclassified                           // U
)

var classificationNames = [...]string{
	Motorway:     "M",
	ARoad:        "A",
	BRoad:        "B",
	Unclassified: "U",
}

// folded lookups are built once; a cases.Caser is stateful and not shared.
var (
	kindByFold           = foldIndex(kindNames[:])
	classificationByFold = foldIndex(classificationNames[:])
)

func foldIndex(names []string) map[string]int {
	out := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			continue
		}
		out[cases.Fold().String(name)] = i
	}

	return out
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k >= Hamlet && k <= City }

// String returns the canonical literal, or "Kind(n)" for invalid values.
func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// Kinds returns every valid Kind in declaration order.
func Kinds() []Kind { return []Kind{Hamlet, Village, Town, City} }

// ParseKind matches s case-insensitively against the kind literals.
// Surrounding whitespace is ignored.
func ParseKind(s string) (Kind, error) {
	if i, ok := kindByFold[cases.Fold().String(strings.TrimSpace(s))]; ok {
		return Kind(i), nil
	}

	return 0, invalid("parse kind", s, ErrUnknownKind)
}

// Valid reports whether c is one of the declared classifications.
func (c Classification) Valid() bool { return c >= Motorway && c <= Unclassified }

// String returns the canonical literal, or "Classification(n)" for invalid values.
func (c Classification) String() string {
	if !c.Valid() {
		return "Classification(" + strconv.Itoa(int(c)) + ")"
	}

	return classificationNames[c]
}

// Classifications returns every valid Classification in declaration order.
func Classifications() []Classification {
	return []Classification{Motorway, ARoad, BRoad, Unclassified}
}

// ParseClassification matches s case-insensitively against the classification literals.
func ParseClassification(s string) (Classification, error) {
	if i, ok := classificationByFold[cases.Fold().String(strings.TrimSpace(s))]; ok {
		return Classification(i), nil
	}

	return 0, invalid("parse classification", s, ErrUnknownClassification)
}
