package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Map legend understood by Parse.
const (
	MapFree     = '.'
	MapObstacle = '#'
	MapStart    = 'S'
	MapGoal     = 'G'
)

// Parse reads an ASCII map, one grid row per line:
//
//	S..#
//	.#..
//	...G
//
// '.' is free, '#' is an obstacle, 'S' and 'G' mark free start and goal cells.
// Blank lines and lines starting with ';' are skipped. Exactly one 'S' and one
// 'G' are required. Rows must all have the same width.
func Parse(r io.Reader, opts GridOptions) (*GridGraph, Cell, Cell, error) {
	var (
		mask        [][]bool
		start, goal Cell
		haveS       bool
		haveG       bool
	)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" || line[0] == ';' {
			continue
		}
		row := make([]bool, 0, len(line))
		for col, ch := range []byte(line) {
			cell := Cell{Row: len(mask), Col: col}
			switch ch {
			case MapFree:
			case MapObstacle:
				row = append(row, true)
				continue
			case MapStart:
				if haveS {
					return nil, Cell{}, Cell{}, fmt.Errorf("%w: line %d: second start marker", ErrMalformedMap, lineNo)
				}
				start, haveS = cell, true
			case MapGoal:
				if haveG {
					return nil, Cell{}, Cell{}, fmt.Errorf("%w: line %d: second goal marker", ErrMalformedMap, lineNo)
				}
				goal, haveG = cell, true
			default:
				return nil, Cell{}, Cell{}, fmt.Errorf("%w: line %d: unexpected %q", ErrMalformedMap, lineNo, ch)
			}
			row = append(row, false)
		}
		mask = append(mask, row)
	}
	if err := sc.Err(); err != nil {
		return nil, Cell{}, Cell{}, err
	}
	if !haveS || !haveG {
		return nil, Cell{}, Cell{}, fmt.Errorf("%w: map needs one %c and one %c", ErrMalformedMap, MapStart, MapGoal)
	}

	gg, err := FromMask(mask, opts)
	if err != nil {
		return nil, Cell{}, Cell{}, err
	}

	return gg, start, goal, nil
}

// Format writes the grid back in the Parse format with start and goal marked.
func (gg *GridGraph) Format(w io.Writer, start, goal Cell) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < gg.Rows; r++ {
		for c := 0; c < gg.Cols; c++ {
			cell := Cell{Row: r, Col: c}
			ch := byte(MapFree)
			switch {
			case cell == start:
				ch = MapStart
			case cell == goal:
				ch = MapGoal
			case gg.blocked[gg.Index(cell)]:
				ch = MapObstacle
			}
			_ = bw.WriteByte(ch)
		}
		_ = bw.WriteByte('\n')
	}
	return bw.Flush()
}
