// SPDX-License-Identifier: MIT

// Package dijkstra defines core types and configuration options
// for the single-source shortest-route engine over undirected road snapshots.
//
// Options:
//
//	– Source:         name of the starting vertex (required, must be in the snapshot).
//	– WithMaxDistance: cap on explored distance; vertices beyond it stay unreached.
//	– WithEdgeFilter:  predicate; edges it rejects are impassable for this query.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if no Source option was given.
//	– ErrUnknownVertex   if the source, a destination or an edge endpoint is not a vertex.
//	– ErrDuplicateVertex if the vertex list names a vertex twice.
//	– ErrBadLength       if an edge length is not finite and positive.
//	– ErrBadMaxDistance  if WithMaxDistance received a negative or NaN cap.
//	– ErrNoRoute         if the destination was never reached.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the engine.
var (
	// ErrEmptySource indicates that no source vertex was configured.
	ErrEmptySource = errors.New("dijkstra: source vertex is empty")

	// ErrUnknownVertex indicates a vertex that is not part of the snapshot.
	ErrUnknownVertex = errors.New("dijkstra: vertex not found in snapshot")

	// ErrDuplicateVertex indicates the snapshot lists the same vertex more than once.
	ErrDuplicateVertex = errors.New("dijkstra: duplicate vertex in snapshot")

	// ErrBadLength indicates an edge whose length is zero, negative, infinite or NaN.
	ErrBadLength = errors.New("dijkstra: edge length must be finite and positive")

	// ErrBadMaxDistance indicates a negative or NaN distance cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoRoute indicates the destination is unreachable from the source.
	// It is an expected outcome, not a failure of the engine.
	ErrNoRoute = errors.New("dijkstra: no route between vertices")
)

// Edge is one undirected, weighted edge of a snapshot.
//
// From/To keep the orientation the caller stored the edge with; the engine
// traverses it both ways. Label is opaque to the engine and only seen by filters.
type Edge struct {
	Name   string
	From   string
	To     string
	Length float64
	Label  string
}

// Other returns the endpoint opposite to v (From for To and vice versa).
func (e Edge) Other(v string) string {
	if v == e.From {
		return e.To
	}

	return e.From
}

// Path is a reconstructed shortest route.
//
// Edges are in source→destination order; Vertices has len(Edges)+1 entries and
// starts at Source. Total is the sum of edge lengths along the path.
type Path struct {
	Source      string
	Destination string
	Edges       []Edge
	Vertices    []string
	Total       float64
}

// Options configures one engine run.
type Options struct {
	Source      string          // starting vertex
	MaxDistance float64         // exploration cap, +Inf when unset
	EdgeFilter  func(Edge) bool // nil admits every edge
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// Source sets the starting vertex. Must be given.
func Source(name string) Option {
	return func(o *Options) {
		o.Source = name
	}
}

// WithMaxDistance sets a distance cap. Vertices whose shortest distance would
// exceed max are left unreached, so routes to them report ErrNoRoute.
// A negative or NaN cap makes New return ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithEdgeFilter admits only edges for which keep returns true.
// Rejected edges are treated as impassable, e.g. to avoid motorways.
func WithEdgeFilter(keep func(Edge) bool) Option {
	return func(o *Options) {
		o.EdgeFilter = keep
	}
}

// DefaultOptions returns Options with no cap and no filter for the given source.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: math.Inf(1),
	}
}
