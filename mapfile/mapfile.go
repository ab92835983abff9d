// Package mapfile loads a road map from an HCL file, as an alternative to
// the built-in citymap data source. The Search Engine contract is
// unaffected: a loaded map is the same core.Graph value a hardcoded one is.
//
// File format — one block per bidirectional road:
//
//	road "Elmira" "Ithaca" {
//	  km = 60
//	}
//
// Roads keep file order, so routes computed over a loaded map are as
// deterministic as over the built-in one.
package mapfile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/citymaps/ucsearch/core"
)

// mapFile is the top-level structure of a road-map file for decoding.
type mapFile struct {
	Roads []roadBlock `hcl:"road,block"`
}

// roadBlock is one road "<from>" "<to>" { km = <n> } block.
type roadBlock struct {
	From string `hcl:"from,label"`
	To   string `hcl:"to,label"`
	Km   int64  `hcl:"km"`
}

// Load parses the HCL file at path and builds a weighted undirected graph
// from its road blocks. Malformed syntax, unknown attributes, and roads
// that violate graph invariants (negative km, self-loops, empty city
// names) all fail loading.
func Load(path string) (*core.Graph, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("mapfile: failed to parse %s: %w", path, diags)
	}

	var parsed mapFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("mapfile: failed to decode %s: %w", path, diags)
	}

	g := core.NewGraph()
	for _, r := range parsed.Roads {
		if err := g.AddEdge(r.From, r.To, r.Km); err != nil {
			return nil, fmt.Errorf("mapfile: road %q—%q in %s: %w", r.From, r.To, path, err)
		}
	}

	return g, nil
}
