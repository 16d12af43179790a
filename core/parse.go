package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseEdges reads an edge list in the plain text format
//
//	V
//	u v w
//	u v w
//	...
//
// Blank lines and lines starting with '#' are ignored. Fields may be separated
// by spaces, tabs or commas. The result can be passed straight to NewGraph;
// range checks on the endpoints are left to NewGraph.
func ParseEdges(r io.Reader) (int, []Edge, error) {
	sc := bufio.NewScanner(r)
	vertexCount := -1
	var edges []Edge
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ','
		})

		if vertexCount < 0 {
			if len(fields) != 1 {
				return 0, nil, fmt.Errorf("%w: line %d: want vertex count, got %q", ErrMalformedInput, lineNo, line)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return 0, nil, fmt.Errorf("%w: line %d: %v", ErrMalformedInput, lineNo, err)
			}
			if n < 0 {
				return 0, nil, fmt.Errorf("%w: line %d: negative vertex count %d", ErrMalformedInput, lineNo, n)
			}
			vertexCount = n
			continue
		}

		if len(fields) != 3 {
			return 0, nil, fmt.Errorf("%w: line %d: want \"u v w\", got %q", ErrMalformedInput, lineNo, line)
		}
		var nums [3]int64
		for i, f := range fields {
			n, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return 0, nil, fmt.Errorf("%w: line %d: %v", ErrMalformedInput, lineNo, err)
			}
			nums[i] = n
		}
		edges = append(edges, Edge{From: int(nums[0]), To: int(nums[1]), Weight: nums[2]})
	}
	if err := sc.Err(); err != nil {
		return 0, nil, err
	}
	if vertexCount < 0 {
		return 0, nil, fmt.Errorf("%w: missing vertex count", ErrMalformedInput)
	}

	return vertexCount, edges, nil
}
