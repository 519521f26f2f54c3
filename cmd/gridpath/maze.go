package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/gridfile"
)

// loadMaze reads the maze named by args, or the reference maze when
// args is empty, then applies --start and --goal overrides.
func loadMaze(args []string, start, goal string) (gridfile.Maze, error) {
	m := gridfile.Reference()
	if len(args) > 0 {
		var err error
		if m, err = gridfile.Load(args[0]); err != nil {
			return gridfile.Maze{}, err
		}
	}

	for _, o := range []struct {
		flag, value string
		dst         *gridgraph.Position
	}{
		{"start", start, &m.Start},
		{"goal", goal, &m.Goal},
	} {
		if o.value == "" {
			continue
		}
		p, err := parsePosition(o.value)
		if err != nil {
			return gridfile.Maze{}, fmt.Errorf("--%s: %w", o.flag, err)
		}
		*o.dst = p
	}

	return m, nil
}

// parsePosition parses "row,col".
func parsePosition(s string) (gridgraph.Position, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Position{}, fmt.Errorf("want row,col, got %q", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return gridgraph.Position{}, fmt.Errorf("row: %w", err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return gridgraph.Position{}, fmt.Errorf("col: %w", err)
	}
	return gridgraph.Position{Row: r, Col: c}, nil
}
