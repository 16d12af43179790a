// Package report turns search results into something a person or another
// program can read: a text summary, an ASCII drawing of the grid, a JSON
// record, or GeoJSON for map viewers.
//
// Nothing in this package searches; it only formats search.Result and
// search.GridResult values.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Summary writes a labelled text report of a grid search.
func Summary(w io.Writer, res search.GridResult) error {
	path := "-"
	if res.Found {
		path = joinCells(res.Cells)
	}
	return summary(w, res.Algorithm.String(), res.Result, path)
}

// GraphSummary writes the same report for a search over an edge-list graph.
func GraphSummary(w io.Writer, algo string, res search.Result) error {
	path := "-"
	if res.Found {
		parts := make([]string, len(res.Path))
		for i, v := range res.Path {
			parts[i] = fmt.Sprint(v)
		}
		path = strings.Join(parts, " → ")
	}
	return summary(w, algo, res, path)
}

func summary(w io.Writer, algo string, res search.Result, path string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Algorithm:\t%s\n", algo)
	fmt.Fprintf(tw, "Success:\t%v\n", res.Found)
	fmt.Fprintf(tw, "Path length:\t%d\n", res.Len())
	fmt.Fprintf(tw, "Total cost:\t%s\n", costString(res))
	fmt.Fprintf(tw, "Nodes explored:\t%d\n", res.Explored)
	fmt.Fprintf(tw, "Execution time:\t%.3f ms\n", res.ElapsedMillis())
	fmt.Fprintf(tw, "Path:\t%s\n", path)
	return tw.Flush()
}

// Compare writes one table row per result, for side-by-side runs of
// Dijkstra and A* on the same query.
func Compare(w io.Writer, results ...search.GridResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "algorithm\tsuccess\tpath length\tcost\texplored\ttime (ms)\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%v\t%d\t%s\t%d\t%.3f\t\n",
			r.Algorithm, r.Found, r.Len(), costString(r.Result), r.Explored, r.ElapsedMillis())
	}
	return tw.Flush()
}

// Legend describes the characters used by RenderASCII.
const Legend = "Legend: S=start G=goal #=obstacle *=path +=explored .=free"

// RenderASCII draws gg with the result overlaid, one character per cell,
// separated by spaces. Explored cells are only shown when the search ran with
// search.WithOrder. The Legend line closes the drawing.
func RenderASCII(w io.Writer, gg *gridgraph.GridGraph, res search.GridResult) error {
	marks := make([]byte, gg.VertexCount())
	for i := range marks {
		marks[i] = gridgraph.MapFree
		if gg.Blocked(gg.CellAt(i)) {
			marks[i] = gridgraph.MapObstacle
		}
	}
	for _, c := range res.Visited {
		marks[gg.Index(c)] = '+'
	}
	for _, c := range res.Cells {
		marks[gg.Index(c)] = '*'
	}
	marks[gg.Index(res.Start)] = gridgraph.MapStart
	marks[gg.Index(res.Goal)] = gridgraph.MapGoal

	var sb strings.Builder
	for r := 0; r < gg.Rows; r++ {
		for c := 0; c < gg.Cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(marks[r*gg.Cols+c])
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(Legend)
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

func costString(res search.Result) string {
	if !res.Found {
		return "∞"
	}
	return fmt.Sprint(res.Cost)
}

func joinCells(cells []gridgraph.Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}
	return strings.Join(parts, " → ")
}
