package engine

import "github.com/piwi3910/OpenSpot/internal/model"

// spaceSet collects candidate rectangles, collapsing duplicates by exact
// value equality while preserving first-insertion order.
type spaceSet struct {
	seen  map[model.Rectangle]bool
	order []model.Rectangle
}

func newSpaceSet() *spaceSet {
	return &spaceSet{seen: make(map[model.Rectangle]bool)}
}

func (s *spaceSet) add(r model.Rectangle) {
	if s.seen[r] {
		return
	}
	s.seen[r] = true
	s.order = append(s.order, r)
}

// searchOptions controls the growth passes run per origin cell.
type searchOptions struct {
	strategy model.Strategy
	ratio    float64
	// Growth cutoff in screen units; zero disables it.
	maxWidth  int
	maxHeight int
	// thorough adds two extra single-direction passes per origin.
	thorough bool
}

// FindOpenSpaces returns the maximal free rectangles of the screen not
// covered by any window, grown with an aspect-ratio bias toward the given
// width/height ratio. The result is a set: duplicates from different
// origins are collapsed, and order is not significant.
func FindOpenSpaces(screen model.Rectangle, windows []model.Rectangle, aspectRatio float64) []model.Rectangle {
	grid := BuildGrid(screen, windows)
	return searchGrid(grid, searchOptions{strategy: model.StrategyAspect, ratio: aspectRatio})
}

// searchGrid runs the configured growth passes from every free origin and
// collects the resulting rectangles.
func searchGrid(grid *Grid, opts searchOptions) []model.Rectangle {
	spaces := newSpaceSet()
	origins := grid.Origins()
	for {
		x, y, ok := origins.Next()
		if !ok {
			break
		}

		b := newOriginBuilder(grid, x, y, opts)
		// Pick a real first direction, then alternate: recompute the
		// direction before every step, and finish with one last pass
		// in the other direction.
		b.swapDirection()
		for b.tryGrow() {
			b.swapDirection()
		}
		b.swapDirection()
		for b.tryGrow() {
		}
		spaces.add(b.get())

		if opts.thorough {
			// Grow fully in one direction, then the other, in both
			// orders. Catches long thin spaces the alternating pass
			// walks past.
			for _, down := range []bool{false, true} {
				b := newAlternatingBuilder(grid, x, y, down)
				b.maxWidth, b.maxHeight = opts.maxWidth, opts.maxHeight
				for b.tryGrow() {
				}
				b.swapDirection()
				for b.tryGrow() {
				}
				spaces.add(b.get())
			}
		}
	}
	return spaces.order
}

// newOriginBuilder constructs the primary builder for an origin according
// to the configured strategy.
func newOriginBuilder(grid *Grid, x, y int, opts searchOptions) builder {
	if opts.strategy == model.StrategyAlternate {
		b := newAlternatingBuilder(grid, x, y, true)
		b.maxWidth, b.maxHeight = opts.maxWidth, opts.maxHeight
		return b
	}
	b := newAspectBuilder(grid, x, y, opts.ratio)
	b.maxWidth, b.maxHeight = opts.maxWidth, opts.maxHeight
	return b
}
