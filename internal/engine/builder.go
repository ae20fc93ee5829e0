package engine

import (
	"math"

	"github.com/piwi3910/OpenSpot/internal/model"
)

// builder grows a rectangle of free grid cells from an origin cell, one
// cell at a time, until the growth direction is blocked by a window or the
// grid edge.
type builder interface {
	// swapDirection picks the direction of the next growth attempt.
	swapDirection()
	// tryGrow extends the rectangle one cell in the current direction.
	// It reports false and leaves the rectangle unchanged when the
	// extension would cover an occupied cell or leave the grid.
	tryGrow() bool
	// get returns the rectangle in screen coordinates.
	get() model.Rectangle
}

// alternatingBuilder grows with no bias: swapDirection simply flips
// between growing taller and growing wider.
type alternatingBuilder struct {
	grid   *Grid
	x, y   int
	width  int
	height int
	down   bool // grow height next when true, width otherwise

	// Optional growth cutoff in screen units; zero means unbounded.
	// When set, growth stops once the rectangle already spans the
	// requested size, keeping candidate spaces close to it.
	maxWidth  int
	maxHeight int
}

func newAlternatingBuilder(grid *Grid, x, y int, down bool) *alternatingBuilder {
	return &alternatingBuilder{grid: grid, x: x, y: y, width: 1, height: 1, down: down}
}

func (b *alternatingBuilder) swapDirection() {
	b.down = !b.down
}

func (b *alternatingBuilder) tryGrow() bool {
	if b.down {
		b.height++
	} else {
		b.width++
	}
	if !b.grid.Check(b.x, b.y, b.width, b.height) {
		if b.down {
			b.height--
		} else {
			b.width--
		}
		return false
	}
	if b.maxWidth > 0 {
		// The growth is kept, but the rectangle is big enough already.
		r := b.get()
		if r.Width >= b.maxWidth || r.Height >= b.maxHeight {
			return false
		}
	}
	return true
}

func (b *alternatingBuilder) get() model.Rectangle {
	return b.grid.RectAt(b.x, b.y, b.width, b.height)
}

// aspectBuilder grows like alternatingBuilder but steers the rectangle
// toward a target width/height ratio: before each step it compares which
// growth direction keeps the ratio closer to the target.
type aspectBuilder struct {
	alternatingBuilder
	target float64
}

func newAspectBuilder(grid *Grid, x, y int, target float64) *aspectBuilder {
	return &aspectBuilder{
		alternatingBuilder: *newAlternatingBuilder(grid, x, y, true),
		target:             target,
	}
}

func (b *aspectBuilder) swapDirection() {
	downRatio := float64(b.width) / float64(b.height+1)
	rightRatio := float64(b.width+1) / float64(b.height)
	// Strict less-than: growing height wins only when it is strictly
	// closer to the target.
	b.down = math.Abs(downRatio-b.target) < math.Abs(rightRatio-b.target)
}
