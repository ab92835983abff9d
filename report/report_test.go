// Package report_test checks report rendering content, ordering, option
// overrides, and the file-writing path.
package report_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citymaps/ucsearch/report"
	"github.com/citymaps/ucsearch/ucs"
)

func sampleResult() *ucs.SearchResult {
	return &ucs.SearchResult{
		Path:           []string{"Elmira", "Ithaca", "Binghamton"},
		TotalCost:      140,
		NodesGenerated: 7,
	}
}

func TestRender_DefaultLayout(t *testing.T) {
	text, err := report.Render(sampleResult())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	require.Len(t, lines, 4, "header, route, cost, count")
	assert.Equal(t, "Best route (uniform-cost search):", lines[0])
	assert.Equal(t, "Elmira -> Ithaca -> Binghamton", lines[1])
	assert.Equal(t, "Total cost: 140 km", lines[2])
	assert.Equal(t, "Nodes generated (start node excluded): 7", lines[3])
}

func TestRender_Overrides(t *testing.T) {
	text, err := report.Render(sampleResult(),
		report.WithHeader("Mejor ruta (UCS):"),
		report.WithSeparator(" => "),
		report.WithUnit("mi"),
		report.WithCountLabel("Nodos generados (sin contar el nodo inicial)"),
	)
	require.NoError(t, err)

	assert.Contains(t, text, "Mejor ruta (UCS):\n")
	assert.Contains(t, text, "Elmira => Ithaca => Binghamton\n")
	assert.Contains(t, text, "Total cost: 140 mi\n")
	assert.Contains(t, text, "Nodos generados (sin contar el nodo inicial): 7\n")
}

func TestRender_SingleNodePath(t *testing.T) {
	res := &ucs.SearchResult{Path: []string{"Elmira"}, TotalCost: 0, NodesGenerated: 0}
	text, err := report.Render(res)
	require.NoError(t, err)

	assert.Contains(t, text, "\nElmira\n", "a one-stop route has no separator")
	assert.Contains(t, text, "Total cost: 0 km")
}

func TestRender_NilResult(t *testing.T) {
	_, err := report.Render(nil)
	assert.ErrorIs(t, err, report.ErrNilResult)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ucs_output.txt")

	require.NoError(t, report.WriteFile(sampleResult(), path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	want, err := report.Render(sampleResult())
	require.NoError(t, err)
	assert.Equal(t, want, string(raw))
}

func TestWriteFile_ReplacesPreviousReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ucs_output.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale contents"), 0o644))

	require.NoError(t, report.WriteFile(sampleResult(), path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "stale")
}

func TestWriteFile_NilResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ucs_output.txt")
	err := report.WriteFile(nil, path)
	assert.ErrorIs(t, err, report.ErrNilResult)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file must be written on error")
}
