package gridfile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/fixture"
	"github.com/katalvlaran/gridpath/internal/gridfile"
)

func TestParse_Layout(t *testing.T) {
	m, err := gridfile.Parse([]byte(`
layout:
  - "S.#"
  - ".  "
  - "#.G"
`))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 1, 0}, {1, 1, 1}, {0, 1, 1}}, m.Grid.Values())
	assert.Equal(t, fixture.P(0, 0), m.Start)
	assert.Equal(t, fixture.P(2, 2), m.Goal)
}

func TestParse_CellsAndDefaults(t *testing.T) {
	m, err := gridfile.Parse([]byte(`
cells:
  - [3, 1, 0]
  - [0, 2, 5]
threshold: 2
`))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 0, 0}, {0, 1, 1}}, m.Grid.Values())
	assert.Equal(t, fixture.P(0, 0), m.Start)
	assert.Equal(t, fixture.P(1, 2), m.Goal)
}

func TestParse_FieldsOverrideMarkers(t *testing.T) {
	m, err := gridfile.Parse([]byte(`
layout: ["S..", "..G"]
start: [1, 0]
goal: [0, 2]
`))
	require.NoError(t, err)
	assert.Equal(t, fixture.P(1, 0), m.Start)
	assert.Equal(t, fixture.P(0, 2), m.Goal)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"Empty", `threshold: 1`, gridfile.ErrNoGrid},
		{"BothForms", "cells: [[1]]\nlayout: [\".\"]", gridfile.ErrBothForms},
		{"BadRune", `layout: ["..x"]`, gridfile.ErrLayoutRune},
		{"TwoStarts", `layout: ["S.S"]`, gridfile.ErrDuplicateMarker},
		{"TwoGoals", `layout: ["G", "G"]`, gridfile.ErrDuplicateMarker},
		{"Ragged", `layout: ["...", ".."]`, gridgraph.ErrNonRectangular},
		{"RaggedCells", `cells: [[1, 1], [1]]`, gridgraph.ErrNonRectangular},
		{"EmptyRow", `layout: [""]`, gridgraph.ErrEmptyGrid},
		{"ShortStart", "layout: [\"..\"]\nstart: [1]", gridfile.ErrCoordinate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridfile.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := gridfile.Parse([]byte("layout: [unclosed"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yml := filepath.Join(dir, "maze.yaml")
	require.NoError(t, os.WriteFile(yml, []byte("layout: [\"S#\", \".G\"]\n"), 0o644))
	m, err := gridfile.Load(yml)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Grid.FreeCount())

	js := filepath.Join(dir, "maze.json")
	require.NoError(t, os.WriteFile(js, []byte(`{"cells": [[1, 1], [0, 1]], "goal": [0, 1]}`), 0o644))
	m, err = gridfile.Load(js)
	require.NoError(t, err)
	assert.Equal(t, fixture.P(0, 1), m.Goal)

	_, err = gridfile.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncode(t *testing.T) {
	in := gridfile.Maze{
		Grid:  fixture.Grid(fixture.ReferenceMaze),
		Start: fixture.P(0, 0),
		Goal:  fixture.P(5, 5),
	}
	var buf bytes.Buffer
	require.NoError(t, gridfile.Encode(&buf, in))
	assert.Contains(t, buf.String(), "start: [0, 0]")

	out, err := gridfile.Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, in.Grid.Values(), out.Grid.Values())
	assert.Equal(t, in.Start, out.Start)
	assert.Equal(t, in.Goal, out.Goal)

	assert.Equal(t, []string{"......", ".###..", "......", "#.#...", "..#...", "....#."}, gridfile.Layout(in.Grid))
}

func TestReference(t *testing.T) {
	m := gridfile.Reference()
	assert.Equal(t, fixture.ReferenceMaze, m.Grid.Values())
	assert.Equal(t, fixture.P(0, 0), m.Start)
	assert.Equal(t, fixture.P(5, 5), m.Goal)
}
