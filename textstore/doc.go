// SPDX-License-Identifier: MIT

// Package textstore persists a core.Graph as two colon-delimited text files.
//
// File layout (in the store directory, default extension "txt"):
//
//	settlements.txt
//	    <count>
//	    <name>:<population>:<kind>
//
//	roads.txt
//	    <count>
//	    <name>:<classification>:<length>:<source>:<destination>
//
// Records are written in the graph's insertion order, lengths in their shortest exact
// decimal form, and enum literals in canonical upper case, so Save → Load → Save is
// byte-identical.
//
// Loading is tolerant: a record that does not parse, or that the graph rejects, is
// skipped with a warning and listed in the returned Report. Structural problems (a bad
// count line, fewer records than declared) are a *FormatError for that file. A file that
// cannot be opened is an *IOError; the other file is still loaded and both errors are
// returned together via errors.Join.
//
// Example:
//
//	store := textstore.New("data", textstore.WithLogger(logger))
//	g := core.NewGraph()
//	report, err := store.Load(g)
//	...
//	err = store.Save(g)
package textstore
