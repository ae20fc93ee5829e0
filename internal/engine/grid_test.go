package engine

import (
	"testing"

	"github.com/piwi3910/OpenSpot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGrid_EdgesContainScreenAndWindowEdges(t *testing.T) {
	screen := model.NewRectangle(0, 0, 100, 100)
	windows := []model.Rectangle{
		model.NewRectangle(10, 20, 30, 30),
		model.NewRectangle(50, 60, 20, 10),
	}

	g := BuildGrid(screen, windows)

	xs := g.XS()
	ys := g.YS()
	assert.Contains(t, xs, 0)
	assert.Contains(t, xs, 100)
	assert.Contains(t, ys, 0)
	assert.Contains(t, ys, 100)
	for _, w := range windows {
		assert.Contains(t, xs, w.X)
		assert.Contains(t, xs, w.Right())
		assert.Contains(t, ys, w.Y)
		assert.Contains(t, ys, w.Bottom())
	}
}

func TestBuildGrid_CellsTileTheScreen(t *testing.T) {
	// The cells must partition the screen exactly: their areas sum to the
	// screen area and none of them overlap.
	screen := model.NewRectangle(0, 0, 1600, 900)
	windows := []model.Rectangle{
		model.NewRectangle(634, 672, 534, 124),
		model.NewRectangle(557, 530, 332, 288),
		model.NewRectangle(71, 90, 136, 323),
		model.NewRectangle(359, 387, 241, 442),
	}

	g := BuildGrid(screen, windows)

	var cells []model.Rectangle
	total := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			r := g.RectAt(x, y, 1, 1)
			assert.True(t, screen.ContainsRect(r))
			total += r.Area()
			cells = append(cells, r)
		}
	}
	assert.Equal(t, screen.Area(), total)

	for i, a := range cells {
		for _, b := range cells[i+1:] {
			assert.False(t, a.Overlaps(b), "cells %v and %v overlap", a, b)
		}
	}
}

func TestBuildGrid_OccupancySampling(t *testing.T) {
	screen := model.NewRectangle(0, 0, 100, 100)
	windows := []model.Rectangle{model.NewRectangle(10, 10, 30, 30)}

	g := BuildGrid(screen, windows)

	// Edges are {0, 10, 40, 100} on both axes: a 3x3 cell grid with only
	// the middle cell occupied.
	require.Equal(t, 3, g.Width())
	require.Equal(t, 3, g.Height())

	occ := g.Occupancy()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := x == 1 && y == 1
			assert.Equal(t, want, occ[y][x], "cell (%d,%d)", x, y)
		}
	}

	assert.False(t, g.Check(1, 1, 1, 1))
	assert.False(t, g.Check(0, 0, 3, 3))
	assert.True(t, g.Check(0, 0, 3, 1))
	assert.True(t, g.Check(0, 0, 1, 3))

	// Out of bounds is never free.
	assert.False(t, g.Check(2, 2, 2, 1))
	assert.False(t, g.Check(0, 0, 4, 1))
}

func TestGrid_RectAt(t *testing.T) {
	screen := model.NewRectangle(0, 0, 100, 100)
	windows := []model.Rectangle{model.NewRectangle(10, 10, 30, 30)}

	g := BuildGrid(screen, windows)

	assert.Equal(t, model.NewRectangle(0, 0, 10, 10), g.RectAt(0, 0, 1, 1))
	assert.Equal(t, model.NewRectangle(10, 10, 30, 30), g.RectAt(1, 1, 1, 1))
	assert.Equal(t, screen, g.RectAt(0, 0, 3, 3))
}

func TestGrid_NoWindowsSingleFreeCell(t *testing.T) {
	screen := model.NewRectangle(0, 0, 1920, 1080)

	g := BuildGrid(screen, nil)

	require.Equal(t, 1, g.Width())
	require.Equal(t, 1, g.Height())
	assert.Equal(t, screen, g.RectAt(0, 0, 1, 1))
	assert.True(t, g.Check(0, 0, 1, 1))
}

func TestOriginIterator_RowMajorFreeCells(t *testing.T) {
	screen := model.NewRectangle(0, 0, 100, 100)
	windows := []model.Rectangle{model.NewRectangle(10, 10, 30, 30)}

	g := BuildGrid(screen, windows)

	var got [][2]int
	it := g.Origins()
	for {
		x, y, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, [2]int{x, y})
	}

	want := [][2]int{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {2, 1},
		{0, 2}, {1, 2}, {2, 2},
	}
	assert.Equal(t, want, got)

	// A fresh iterator restarts from the beginning.
	x, y, ok := g.Origins().Next()
	require.True(t, ok)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestOriginIterator_FullyCoveredScreen(t *testing.T) {
	screen := model.NewRectangle(0, 0, 100, 100)
	windows := []model.Rectangle{screen}

	g := BuildGrid(screen, windows)

	_, _, ok := g.Origins().Next()
	assert.False(t, ok)
}
