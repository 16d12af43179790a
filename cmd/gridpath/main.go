// Command gridpath finds shortest paths on an obstacle grid or on a weighted
// undirected graph read from an edge list.
//
// Grid mode (default):
//
//	gridpath -map maze.txt -algo both -format ascii
//	gridpath -rows 10 -cols 10 -obstacles "1,1;2,2" -start 0,0 -goal 9,9
//	gridpath -rows 10 -cols 10 -random 20 -seed 42 -algo both
//
// Graph mode:
//
//	gridpath -edges graph.txt -source 0            # all distances
//	gridpath -edges graph.txt -source 0 -target 4  # single pair
//
// Graph vertices have no coordinates, so graph mode only runs Dijkstra.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/report"
	"github.com/katalvlaran/gridpath/search"
)

var (
	mapFile   = flag.String("map", "", "ASCII map file with S and G markers ('-' for stdin)")
	rows      = flag.Int("rows", 10, "grid rows when no -map is given")
	cols      = flag.Int("cols", 10, "grid columns when no -map is given")
	obstacles = flag.String("obstacles", "", `obstacle cells as "r,c;r,c;..."`)
	random    = flag.Int("random", -1, "scatter at least N random obstacles, keeping goal reachable (-1 disables)")
	seed      = flag.Int64("seed", 0, "seed for -random (0 picks one from the clock)")
	startFlag = flag.String("start", "", "start cell r,c (overrides S)")
	goalFlag  = flag.String("goal", "", "goal cell r,c (overrides G)")
	conn      = flag.Int("conn", 4, "grid connectivity: 4 or 8")

	edgesFile = flag.String("edges", "", "edge list file: V on the first line, then 'u v w' lines")
	source    = flag.Int("source", 0, "graph source vertex")
	target    = flag.Int("target", -1, "graph target vertex (-1 prints all distances)")

	algoFlag = flag.String("algo", "", "dijkstra, astar or both (default astar on grids, dijkstra on graphs)")
	format   = flag.String("format", "text", "text, ascii, json or geojson")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gridpath: ")
	flag.Parse()

	var err error
	if *edgesFile != "" {
		err = runGraph(os.Stdout)
	} else {
		err = runGrid(os.Stdout)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runGrid(w io.Writer) error {
	gg, start, goal, err := loadGrid()
	if err != nil {
		return err
	}

	name := *algoFlag
	if name == "" {
		name = "astar"
	}
	algos, err := algorithms(name)
	if err != nil {
		return err
	}

	opts := []search.Option{}
	if *format == "ascii" || *format == "json" {
		opts = append(opts, search.WithOrder())
	}

	results := make([]search.GridResult, 0, len(algos))
	for _, a := range algos {
		res, err := search.Grid(gg, start, goal, a, opts...)
		if err != nil {
			return err
		}
		log.Printf("%s: state=%s explored=%d", a, res.State, res.Explored)
		results = append(results, res)
	}

	switch *format {
	case "text":
		for i, res := range results {
			if i > 0 {
				fmt.Fprintln(w)
			}
			if err := report.Summary(w, res); err != nil {
				return err
			}
		}
		if len(results) > 1 {
			fmt.Fprintln(w)
			if err := report.Compare(w, results...); err != nil {
				return err
			}
		}
		if !results[0].Found {
			return reportClearance(w, gg, start, goal)
		}
		return nil
	case "ascii":
		for i, res := range results {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s:\n", res.Algorithm)
			if err := report.RenderASCII(w, gg, res); err != nil {
				return err
			}
		}
		return nil
	case "json":
		recs := make([]report.Record, len(results))
		for i, res := range results {
			recs[i] = report.GridRecord(res)
		}
		return report.JSON(w, recs...)
	case "geojson":
		return report.GeoJSON(w, results...)
	}
	return fmt.Errorf("unknown format %q", *format)
}

// reportClearance prints how few obstacles would have to go for goal to
// become reachable.
func reportClearance(w io.Writer, gg *gridgraph.GridGraph, start, goal gridgraph.Cell) error {
	_, cleared, err := gg.MinClearance(start, goal)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "\nNo path. Removing %d obstacle(s) would open one.\n", cleared)
	return err
}

func loadGrid() (*gridgraph.GridGraph, gridgraph.Cell, gridgraph.Cell, error) {
	var (
		gg          *gridgraph.GridGraph
		start, goal gridgraph.Cell
		err         error
	)
	opts := gridgraph.GridOptions{Conn: gridgraph.Conn4}
	switch *conn {
	case 4:
	case 8:
		opts.Conn = gridgraph.Conn8
	default:
		return nil, start, goal, fmt.Errorf("connectivity must be 4 or 8, got %d", *conn)
	}
	if *random >= 0 && (*mapFile != "" || *obstacles != "") {
		return nil, start, goal, fmt.Errorf("-random cannot be combined with -map or -obstacles")
	}

	if *mapFile != "" {
		var r io.Reader = os.Stdin
		if *mapFile != "-" {
			f, err := os.Open(*mapFile)
			if err != nil {
				return nil, start, goal, err
			}
			defer f.Close()
			r = f
		}
		gg, start, goal, err = gridgraph.Parse(r, opts)
		if err != nil {
			return nil, start, goal, err
		}
	} else {
		goal = gridgraph.Cell{Row: *rows - 1, Col: *cols - 1}
	}

	if *startFlag != "" {
		if start, err = parseCell(*startFlag); err != nil {
			return nil, start, goal, fmt.Errorf("-start: %w", err)
		}
	}
	if *goalFlag != "" {
		if goal, err = parseCell(*goalFlag); err != nil {
			return nil, start, goal, fmt.Errorf("-goal: %w", err)
		}
	}
	if gg != nil {
		return gg, start, goal, nil
	}

	if *random >= 0 {
		s := *seed
		if s == 0 {
			s = time.Now().UnixNano()
		}
		log.Printf("random obstacles: min=%d seed=%d", *random, s)
		gg, err = gridgraph.RandomObstacles(*rows, *cols, start, goal, *random, opts, gridgraph.WithSeed(s))
		if err != nil {
			return nil, start, goal, err
		}
		return gg, start, goal, nil
	}

	obs, err := parseCells(*obstacles)
	if err != nil {
		return nil, start, goal, fmt.Errorf("-obstacles: %w", err)
	}
	gg, err = gridgraph.NewGridGraph(*rows, *cols, obs, opts)
	if err != nil {
		return nil, start, goal, err
	}
	return gg, start, goal, nil
}

func runGraph(w io.Writer) error {
	if err := graphAlgorithm(*algoFlag); err != nil {
		return err
	}
	f, err := os.Open(*edgesFile)
	if err != nil {
		return err
	}
	defer f.Close()

	n, edges, err := core.ParseEdges(f)
	if err != nil {
		return err
	}
	g, err := core.NewGraph(n, edges)
	if err != nil {
		return err
	}
	log.Printf("graph: %d vertices, %d edges", g.VertexCount(), len(edges))

	if *target < 0 {
		dist, _, err := search.Distances(g, *source)
		if err != nil {
			return err
		}
		for v, d := range dist {
			if d == search.Infinity {
				fmt.Fprintf(w, "%d\tINF\n", v)
				continue
			}
			fmt.Fprintf(w, "%d\t%d\n", v, d)
		}
		return nil
	}

	res, err := search.Search(g, *source, *target, search.Zero)
	if err != nil {
		return err
	}
	switch *format {
	case "json":
		return report.JSON(w, report.GraphRecord(search.Dijkstra.String(), res))
	case "text":
		return report.GraphSummary(w, search.Dijkstra.String(), res)
	}
	return fmt.Errorf("format %q is not available for graphs", *format)
}

// graphAlgorithm accepts an empty -algo or dijkstra. A* needs cell
// coordinates for its heuristic, which edge lists do not have.
func graphAlgorithm(s string) error {
	if s == "" {
		return nil
	}
	algos, err := algorithms(s)
	if err != nil {
		return err
	}
	if len(algos) != 1 || algos[0] != search.Dijkstra {
		return fmt.Errorf("-algo %s: graph mode only runs dijkstra", s)
	}
	return nil
}

func algorithms(s string) ([]search.Algorithm, error) {
	if strings.EqualFold(s, "both") {
		return []search.Algorithm{search.Dijkstra, search.AStar}, nil
	}
	a, err := search.ParseAlgorithm(s)
	if err != nil {
		return nil, err
	}
	return []search.Algorithm{a}, nil
}

// parseCells reads "r,c;r,c;...". An empty string is no cells.
func parseCells(s string) ([]gridgraph.Cell, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ";")
	cells := make([]gridgraph.Cell, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		c, err := parseCell(p)
		if err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
	return cells, nil
}

func parseCell(s string) (gridgraph.Cell, error) {
	r, c, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return gridgraph.Cell{}, fmt.Errorf("cell %q: want r,c", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("cell %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("cell %q: %w", s, err)
	}
	return gridgraph.Cell{Row: row, Col: col}, nil
}
