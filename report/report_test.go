package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/report"
	"github.com/katalvlaran/gridpath/search"
)

const (
	openMap = `
S.#
..#
..G
`
	walledMap = "S#G\n"
)

// run parses m and searches it with exploration order recorded.
func run(t *testing.T, m string, algo search.Algorithm) (*gridgraph.GridGraph, search.GridResult) {
	t.Helper()
	gg, start, goal, err := gridgraph.Parse(strings.NewReader(m), gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	res, err := search.Grid(gg, start, goal, algo, search.WithOrder())
	require.NoError(t, err)
	return gg, res
}

func TestSummary(t *testing.T) {
	_, res := run(t, openMap, search.AStar)
	require.True(t, res.Found)

	var buf bytes.Buffer
	require.NoError(t, report.Summary(&buf, res))
	out := buf.String()
	assert.Contains(t, out, "A*")
	assert.Regexp(t, `Total cost:\s+4\n`, out)
	assert.Regexp(t, `Path length:\s+5\n`, out)
	assert.Contains(t, out, "(0,0) → ")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "(2,2)"), out)
}

func TestSummary_NoPath(t *testing.T) {
	_, res := run(t, walledMap, search.Dijkstra)
	require.False(t, res.Found)

	var buf bytes.Buffer
	require.NoError(t, report.Summary(&buf, res))
	out := buf.String()
	assert.Regexp(t, `Success:\s+false\n`, out)
	assert.Regexp(t, `Total cost:\s+∞\n`, out)
	assert.Regexp(t, `Path:\s+-\n`, out)
}

func TestGraphSummary(t *testing.T) {
	g, err := core.NewGraph(3, []core.Edge{{From: 0, To: 1, Weight: 2}, {From: 1, To: 2, Weight: 3}})
	require.NoError(t, err)
	res, err := search.Search(g, 0, 2, search.Zero)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.GraphSummary(&buf, "Dijkstra", res))
	assert.Regexp(t, `Total cost:\s+5\n`, buf.String())
	assert.Contains(t, buf.String(), "0 → 1 → 2")
}

func TestRenderASCII(t *testing.T) {
	gg, res := run(t, openMap, search.Dijkstra)

	var buf bytes.Buffer
	require.NoError(t, report.RenderASCII(&buf, gg, res))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, gg.Rows+1)
	assert.Equal(t, report.Legend, lines[gg.Rows])

	for _, l := range lines[:gg.Rows] {
		assert.Len(t, l, 2*gg.Cols-1)
	}
	assert.Equal(t, byte('S'), lines[0][0])
	assert.Equal(t, byte('#'), lines[0][4])
	assert.Equal(t, byte('#'), lines[1][4])
	assert.Equal(t, byte('G'), lines[2][4])

	grid := strings.Join(lines[:gg.Rows], "")
	assert.Equal(t, len(res.Cells)-2, strings.Count(grid, "*"))
	// Dijkstra settles every free cell before the goal on this map.
	assert.Zero(t, strings.Count(grid, "."))
}

func TestRenderASCII_WithoutOrder(t *testing.T) {
	gg, start, goal, err := gridgraph.Parse(strings.NewReader(openMap), gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	res, err := search.Grid(gg, start, goal, search.AStar)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.RenderASCII(&buf, gg, res))
	assert.NotContains(t, strings.TrimSuffix(buf.String(), report.Legend+"\n"), "+")
}

func TestJSON_GridRecord(t *testing.T) {
	_, res := run(t, openMap, search.AStar)

	var buf bytes.Buffer
	require.NoError(t, report.JSON(&buf, report.GridRecord(res)))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "A*", got["algorithm"])
	assert.Equal(t, true, got["success"])
	assert.EqualValues(t, 4, got["cost"])
	assert.EqualValues(t, 5, got["path_length"])
	assert.EqualValues(t, res.Explored, got["nodes_explored"])

	path, ok := got["path"].([]interface{})
	require.True(t, ok)
	require.Len(t, path, 5)
	assert.Equal(t, []interface{}{0.0, 0.0}, path[0])
	assert.Equal(t, []interface{}{2.0, 2.0}, path[4])
	assert.Len(t, got["explored_nodes"], res.Explored)
}

func TestJSON_NoPath(t *testing.T) {
	_, res := run(t, walledMap, search.AStar)

	var buf bytes.Buffer
	require.NoError(t, report.JSON(&buf, report.GridRecord(res)))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, false, got["success"])
	assert.Nil(t, got["cost"])
	assert.Equal(t, []interface{}{}, got["path"])
	assert.EqualValues(t, 0, got["path_length"])
}

func TestJSON_Several(t *testing.T) {
	_, d := run(t, openMap, search.Dijkstra)
	_, a := run(t, openMap, search.AStar)

	var buf bytes.Buffer
	require.NoError(t, report.JSON(&buf, report.GridRecord(d), report.GridRecord(a)))

	var got []report.Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Dijkstra", got[0].Algorithm)
	assert.Equal(t, "A*", got[1].Algorithm)
	require.NotNil(t, got[0].Cost)
	require.NotNil(t, got[1].Cost)
	assert.Equal(t, *got[0].Cost, *got[1].Cost)
}

func TestGraphRecord(t *testing.T) {
	g, err := core.NewGraph(2, []core.Edge{{From: 0, To: 1, Weight: 7}})
	require.NoError(t, err)
	res, err := search.Search(g, 1, 0, search.Zero)
	require.NoError(t, err)

	rec := report.GraphRecord("Dijkstra", res)
	assert.Equal(t, []int{1, 0}, rec.Path)
	require.NotNil(t, rec.Cost)
	assert.Equal(t, int64(7), *rec.Cost)
}

func TestGeoJSON(t *testing.T) {
	_, res := run(t, openMap, search.AStar)

	var buf bytes.Buffer
	require.NoError(t, report.GeoJSON(&buf, res))

	fc, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 3)

	path := fc.Features[0]
	assert.Equal(t, "path", path.Properties["role"])
	assert.Equal(t, true, path.Properties["success"])
	assert.EqualValues(t, 4, path.Properties["cost"])
	ls, ok := path.Geometry.(orb.LineString)
	require.True(t, ok, "path geometry is %T", path.Geometry)
	require.Len(t, ls, 5)
	assert.Equal(t, orb.Point{0, 0}, ls[0])
	assert.Equal(t, orb.Point{2, 2}, ls[4])

	assert.Equal(t, "start", fc.Features[1].Properties["role"])
	assert.Equal(t, orb.Point{0, 0}, fc.Features[1].Geometry)
	assert.Equal(t, "goal", fc.Features[2].Properties["role"])
	assert.Equal(t, orb.Point{2, 2}, fc.Features[2].Geometry)
}

func TestGeoJSON_NoPath(t *testing.T) {
	_, res := run(t, walledMap, search.Dijkstra)

	var buf bytes.Buffer
	require.NoError(t, report.GeoJSON(&buf, res))

	fc, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 3)
	assert.Equal(t, false, fc.Features[0].Properties["success"])
	_, hasCost := fc.Features[0].Properties["cost"]
	assert.False(t, hasCost)
	// Goal sits at x = col = 2.
	assert.Equal(t, orb.Point{2, 0}, fc.Features[2].Geometry)
}

// TestGeoJSON_Several puts both algorithms in one valid collection.
func TestGeoJSON_Several(t *testing.T) {
	_, d := run(t, openMap, search.Dijkstra)
	_, a := run(t, openMap, search.AStar)

	var buf bytes.Buffer
	require.NoError(t, report.GeoJSON(&buf, d, a))

	fc, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 4)
	assert.Equal(t, "Dijkstra", fc.Features[0].Properties["algorithm"])
	assert.Equal(t, "A*", fc.Features[1].Properties["algorithm"])
	assert.Equal(t, "path", fc.Features[1].Properties["role"])
	assert.Equal(t, "start", fc.Features[2].Properties["role"])
	assert.Equal(t, "goal", fc.Features[3].Properties["role"])
}

func TestGeoJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.GeoJSON(&buf))
	fc, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	assert.Empty(t, fc.Features)
}

func TestCompare(t *testing.T) {
	_, d := run(t, openMap, search.Dijkstra)
	_, a := run(t, openMap, search.AStar)

	var buf bytes.Buffer
	require.NoError(t, report.Compare(&buf, d, a))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "explored")
	assert.Contains(t, lines[1], "Dijkstra")
	assert.Contains(t, lines[2], "A*")
}
