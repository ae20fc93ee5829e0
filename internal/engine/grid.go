// Package engine implements the open-space search: it partitions the screen
// into a non-uniform grid along window edges, grows maximal free rectangles
// out of the grid, and selects the best spot for a new window.
package engine

import (
	"sort"

	"github.com/piwi3910/OpenSpot/internal/model"
)

// cell is one grid cell sample. x and y are the screen coordinates of the
// cell's top-left corner; occupied is true when that corner falls inside a
// window.
type cell struct {
	x, y     int
	occupied bool
}

// Grid partitions the screen into basic rectangles whose boundaries align
// with every window edge, so any region bounded by window edges is a
// contiguous block of cells. This is what keeps the search cheap: the
// grid has O(windows^2) cells instead of one per pixel.
type Grid struct {
	cells  []cell
	stride int // columns of samples per row, one more than width
	width  int // cells per row
	height int // cells per column
	xs     []int
	ys     []int
}

// BuildGrid constructs the occupancy grid for a screen and its windows.
// The grid edge coordinates are the screen edges plus every window edge,
// sorted and deduplicated.
func BuildGrid(screen model.Rectangle, windows []model.Rectangle) *Grid {
	xs := []int{screen.X, screen.Right()}
	ys := []int{screen.Y, screen.Bottom()}
	for _, w := range windows {
		xs = append(xs, w.X, w.Right())
		ys = append(ys, w.Y, w.Bottom())
	}
	xs = sortedUnique(xs)
	ys = sortedUnique(ys)

	g := &Grid{
		cells:  make([]cell, 0, len(xs)*len(ys)),
		stride: len(xs),
		width:  len(xs) - 1,
		height: len(ys) - 1,
		xs:     xs,
		ys:     ys,
	}
	for _, y := range ys {
		for _, x := range xs {
			occupied := false
			for _, w := range windows {
				if w.Contains(model.Point{X: x, Y: y}) {
					occupied = true
					break
				}
			}
			g.cells = append(g.cells, cell{x: x, y: y, occupied: occupied})
		}
	}
	return g
}

func (g *Grid) at(x, y int) cell {
	return g.cells[y*g.stride+x]
}

// Width returns the number of cells per row.
func (g *Grid) Width() int { return g.width }

// Height returns the number of cells per column.
func (g *Grid) Height() int { return g.height }

// XS returns a copy of the sorted x edge coordinates.
func (g *Grid) XS() []int {
	return append([]int(nil), g.xs...)
}

// YS returns a copy of the sorted y edge coordinates.
func (g *Grid) YS() []int {
	return append([]int(nil), g.ys...)
}

// Occupancy returns the occupancy map indexed [row][col].
func (g *Grid) Occupancy() [][]bool {
	rows := make([][]bool, g.height)
	for y := 0; y < g.height; y++ {
		rows[y] = make([]bool, g.width)
		for x := 0; x < g.width; x++ {
			rows[y][x] = g.at(x, y).occupied
		}
	}
	return rows
}

// Check reports whether the w x h block of cells at (x, y) stays inside the
// grid and covers no occupied cell.
func (g *Grid) Check(x, y, w, h int) bool {
	if x+w > g.width || y+h > g.height {
		return false
	}
	for cy := y; cy < y+h; cy++ {
		rowOffset := cy * g.stride
		for cx := x; cx < x+w; cx++ {
			if g.cells[rowOffset+cx].occupied {
				return false
			}
		}
	}
	return true
}

// RectAt converts a block of cells into its screen-coordinate rectangle,
// using the corner cell and the sample diagonally opposite.
func (g *Grid) RectAt(x, y, w, h int) model.Rectangle {
	topLeft := g.at(x, y)
	bottomRight := g.at(x+w, y+h)
	return model.Rectangle{
		X:      topLeft.x,
		Y:      topLeft.y,
		Width:  bottomRight.x - topLeft.x,
		Height: bottomRight.y - topLeft.y,
	}
}

// Origins returns a fresh iterator over the coordinates of all free cells
// in row-major order (y outer, x inner).
func (g *Grid) Origins() *OriginIterator {
	return &OriginIterator{grid: g}
}

// OriginIterator walks the free cells of a grid. A new iterator restarts
// from the first cell.
type OriginIterator struct {
	grid *Grid
	x, y int
}

// Next returns the next free cell coordinates, or ok=false when the grid
// is exhausted.
func (it *OriginIterator) Next() (x, y int, ok bool) {
	for it.y < it.grid.height {
		cx, cy := it.x, it.y
		it.x++
		if it.x == it.grid.width {
			it.x = 0
			it.y++
		}
		if !it.grid.at(cx, cy).occupied {
			return cx, cy, true
		}
	}
	return 0, 0, false
}

func sortedUnique(vals []int) []int {
	sort.Ints(vals)
	out := vals[:1]
	for _, v := range vals[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
