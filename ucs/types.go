// Package ucs provides tunable options, the result record, and error
// definitions for uniform-cost search over a core.Graph.
package ucs

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("ucs: graph is nil")

	// ErrEmptyVertexID is returned when the start or goal ID is empty.
	ErrEmptyVertexID = errors.New("ucs: start or goal vertex ID is empty")

	// ErrNoPath is returned when the frontier empties before the goal
	// is reached. The graph is static, so retrying cannot help.
	ErrNoPath = errors.New("ucs: no path found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ucs: invalid option supplied")
)

// SearchResult is the immutable outcome of one successful search.
//
// Created exactly once, at termination; callers must not mutate it.
type SearchResult struct {
	// Path is the vertex sequence from start to goal, inclusive.
	// Length ≥ 1: a start == goal search yields just the start.
	Path []string

	// TotalCost is the sum of the traversed edge weights.
	TotalCost int64

	// NodesGenerated counts frontier insertions during the search,
	// excluding the start vertex. Each strict cost improvement of a
	// vertex counts once, at the moment of insertion — never at pop.
	NodesGenerated int
}

// Option configures search behavior via functional arguments.
// An invalid Option (e.g. negative cost cap) is recorded internally
// and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// MaxCost caps exploration: extensions whose accumulated cost
	// would exceed it are never inserted into the frontier.
	// Default math.MaxInt64 (no cap).
	MaxCost int64

	// OnExpand is called each time an entry is popped from the
	// frontier, with its vertex ID and accumulated cost.
	OnExpand func(id string, cost int64)

	// OnGenerate is called each time a vertex is inserted into the
	// frontier (the moment it is counted), with its ID and cost.
	OnGenerate func(id string, cost int64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no cost cap (MaxCost == math.MaxInt64)
//   - no-op hooks (OnExpand, OnGenerate)
func DefaultOptions() Options {
	return Options{
		MaxCost:    math.MaxInt64,
		OnExpand:   func(string, int64) {},
		OnGenerate: func(string, int64) {},
	}
}

// WithMaxCost caps the accumulated cost the search will explore.
// A goal beyond the cap is reported as ErrNoPath.
// Negative values are invalid and yield ErrOptionViolation.
func WithMaxCost(maxCost int64) Option {
	return func(o *Options) {
		if maxCost < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, maxCost)
			return
		}
		o.MaxCost = maxCost
	}
}

// WithOnExpand registers a callback to run on every frontier pop.
func WithOnExpand(fn func(id string, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnGenerate registers a callback to run on every frontier insertion.
func WithOnGenerate(fn func(id string, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGenerate = fn
		}
	}
}
