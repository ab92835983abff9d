// Package ucsearch computes the least-cost route between two named cities
// on a small, fixed, weighted road map using uniform-cost search.
//
// It is a single-run batch computation: build the hardcoded graph, search
// it once, write a plain-text report. Everything interesting lives in the
// search engine; the graph data and the report writer are its external
// collaborators.
//
// The module is organized under five subpackages plus one command:
//
//	core/    — weighted undirected Graph with insertion-ordered iteration
//	ucs/     — the uniform-cost search engine (frontier, best-cost pruning,
//	           FIFO tie-break, generated-node accounting)
//	citymap/ — the built-in New York / Pennsylvania road map
//	mapfile/ — optional HCL road-map loader
//	report/  — plain-text report rendering and file output
//	cmd/ucsroute — the batch entry point
//
// Quick ASCII example:
//
//	Elmira──60──Ithaca──80──Binghamton──95──Scranton── ... ──New York City
//
// The stock run answers exactly one question: the cheapest route from
// Elmira to New York City, in km, plus how many nodes the search generated
// along the way.
//
//	go get github.com/citymaps/ucsearch
package ucsearch
