package report

import (
	"encoding/json"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Record is the machine-readable form of a result. Path holds [row, col]
// pairs for grid searches and vertex ids for graph searches; it is an empty
// list when no path exists. Cost is null in that case.
type Record struct {
	Algorithm       string      `json:"algorithm"`
	Success         bool        `json:"success"`
	Path            interface{} `json:"path"`
	PathLength      int         `json:"path_length"`
	Cost            *int64      `json:"cost"`
	NodesExplored   int         `json:"nodes_explored"`
	ExecutionTimeMs float64     `json:"execution_time_ms"`
	ExploredNodes   [][2]int    `json:"explored_nodes,omitempty"`
}

// GridRecord converts a grid search result.
func GridRecord(res search.GridResult) Record {
	path := make([][2]int, len(res.Cells))
	for i, c := range res.Cells {
		path[i] = [2]int{c.Row, c.Col}
	}
	rec := newRecord(res.Algorithm.String(), res.Result)
	rec.Path = path
	if res.Visited != nil {
		rec.ExploredNodes = make([][2]int, len(res.Visited))
		for i, c := range res.Visited {
			rec.ExploredNodes[i] = [2]int{c.Row, c.Col}
		}
	}
	return rec
}

// GraphRecord converts a search over an edge-list graph.
func GraphRecord(algo string, res search.Result) Record {
	rec := newRecord(algo, res)
	path := make([]int, len(res.Path))
	copy(path, res.Path)
	rec.Path = path
	return rec
}

func newRecord(algo string, res search.Result) Record {
	rec := Record{
		Algorithm:       algo,
		Success:         res.Found,
		PathLength:      res.Len(),
		NodesExplored:   res.Explored,
		ExecutionTimeMs: res.ElapsedMillis(),
	}
	if res.Found {
		cost := res.Cost
		rec.Cost = &cost
	}
	return rec
}

// JSON writes records as an indented JSON document: a single object for one
// record, an array for several.
func JSON(w io.Writer, recs ...Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(recs) == 1 {
		return enc.Encode(recs[0])
	}
	if recs == nil {
		recs = []Record{}
	}
	return enc.Encode(recs)
}

// GeoJSON writes one FeatureCollection in grid space (x = col, y = row)
// for results that answer the same query:
//
//   - one "path" feature per result, tagged with its algorithm: a LineString
//     through the path cells, or a MultiPoint when fewer than two cells are
//     on the path, carrying the statistics as properties;
//   - "start" and "goal" Point features, taken from the first result.
func GeoJSON(w io.Writer, results ...search.GridResult) error {
	fc := geojson.NewFeatureCollection()

	for _, res := range results {
		fc.Append(pathFeature(res))
	}
	if len(results) > 0 {
		endpoints := []struct {
			role string
			cell gridgraph.Cell
		}{{"start", results[0].Start}, {"goal", results[0].Goal}}
		for _, ep := range endpoints {
			f := geojson.NewFeature(cellPoint(ep.cell))
			f.Properties["role"] = ep.role
			f.Properties["row"] = ep.cell.Row
			f.Properties["col"] = ep.cell.Col
			fc.Append(f)
		}
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func pathFeature(res search.GridResult) *geojson.Feature {
	pts := make([]orb.Point, len(res.Cells))
	for i, c := range res.Cells {
		pts[i] = cellPoint(c)
	}
	var geom orb.Geometry = orb.MultiPoint(pts)
	if len(pts) >= 2 {
		geom = orb.LineString(pts)
	}
	f := geojson.NewFeature(geom)
	f.Properties["role"] = "path"
	f.Properties["algorithm"] = res.Algorithm.String()
	f.Properties["success"] = res.Found
	f.Properties["path_length"] = res.Len()
	f.Properties["nodes_explored"] = res.Explored
	f.Properties["execution_time_ms"] = res.ElapsedMillis()
	if res.Found {
		f.Properties["cost"] = res.Cost
	}
	return f
}

func cellPoint(c gridgraph.Cell) orb.Point {
	return orb.Point{float64(c.Col), float64(c.Row)}
}
