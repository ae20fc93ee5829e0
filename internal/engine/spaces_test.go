package engine

import (
	"testing"

	"github.com/piwi3910/OpenSpot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOpenSpaces_EmptyScreenIsOneSpace(t *testing.T) {
	screen := model.NewRectangle(0, 0, 1600, 900)

	spaces := FindOpenSpaces(screen, nil, 1.5)

	require.Len(t, spaces, 1)
	assert.Equal(t, screen, spaces[0])
}

func TestFindOpenSpaces_FullyCoveredScreenIsEmpty(t *testing.T) {
	screen := model.NewRectangle(0, 0, 800, 600)

	spaces := FindOpenSpaces(screen, []model.Rectangle{screen}, 1.0)

	assert.Empty(t, spaces)
}

func TestFindOpenSpaces_HalfCoveredScreen(t *testing.T) {
	// Left half occupied: the only free cell is the right half.
	screen := model.NewRectangle(0, 0, 100, 100)
	windows := []model.Rectangle{model.NewRectangle(0, 0, 50, 100)}

	spaces := FindOpenSpaces(screen, windows, 1.0)

	require.Len(t, spaces, 1)
	assert.Equal(t, model.NewRectangle(50, 0, 50, 100), spaces[0])
}

func TestFindOpenSpaces_DuplicatesCollapse(t *testing.T) {
	// Two windows cover the top half side by side. The bottom half is two
	// free cells; with a wide target ratio both origins grow into the
	// same full-width space, which must appear once.
	screen := model.NewRectangle(0, 0, 100, 100)
	windows := []model.Rectangle{
		model.NewRectangle(0, 0, 40, 50),
		model.NewRectangle(40, 0, 60, 50),
	}

	spaces := FindOpenSpaces(screen, windows, 2.0)

	assert.Contains(t, spaces, model.NewRectangle(0, 50, 100, 50))
	counts := map[model.Rectangle]int{}
	for _, s := range spaces {
		counts[s]++
	}
	for r, n := range counts {
		assert.Equal(t, 1, n, "space %v returned more than once", r)
	}
}

func TestFindOpenSpaces_NoSpaceOverlapsAWindow(t *testing.T) {
	// Window edges align with cell boundaries, so a free cell is entirely
	// outside every window and no returned space may overlap one.
	screen := model.NewRectangle(0, 0, 1600, 900)
	windows := []model.Rectangle{
		model.NewRectangle(634, 672, 534, 124),
		model.NewRectangle(557, 530, 332, 288),
		model.NewRectangle(71, 90, 136, 323),
		model.NewRectangle(359, 387, 241, 442),
	}

	spaces := FindOpenSpaces(screen, windows, 1.5)

	require.NotEmpty(t, spaces)
	for _, s := range spaces {
		assert.True(t, screen.ContainsRect(s), "space %v leaves the screen", s)
		for _, w := range windows {
			assert.False(t, s.Overlaps(w), "space %v overlaps window %v", s, w)
		}
	}
}

func TestFindOpenSpaces_SpacesCannotGrowInLastDirection(t *testing.T) {
	// Path-specific maximality: every space, widened and heightened by
	// one screen unit simultaneously, must hit a window or leave the
	// screen. (Single-direction growth can remain possible for origins
	// that sit inside a larger space grown from an earlier origin.)
	screen := model.NewRectangle(0, 0, 1600, 900)
	windows := []model.Rectangle{
		model.NewRectangle(634, 672, 534, 124),
		model.NewRectangle(557, 530, 332, 288),
		model.NewRectangle(71, 90, 136, 323),
		model.NewRectangle(359, 387, 241, 442),
	}

	spaces := FindOpenSpaces(screen, windows, 1.5)

	for _, s := range spaces {
		grown := model.NewRectangle(s.X, s.Y, s.Width+1, s.Height+1)
		blocked := !screen.ContainsRect(grown)
		for _, w := range windows {
			if grown.Overlaps(w) {
				blocked = true
			}
		}
		assert.True(t, blocked, "space %v can still grow", s)
	}
}

func TestSearchGrid_ThoroughFindsExtraSpaces(t *testing.T) {
	// With a square target ratio the aspect pass stops the bottom-half
	// origins after the blocked downward growth, leaving two partial
	// spaces. The thorough single-direction passes recover the full
	// bottom half.
	screen := model.NewRectangle(0, 0, 100, 100)
	windows := []model.Rectangle{
		model.NewRectangle(0, 0, 40, 50),
		model.NewRectangle(40, 0, 60, 50),
	}
	grid := BuildGrid(screen, windows)

	plain := searchGrid(grid, searchOptions{strategy: model.StrategyAspect, ratio: 1.0})
	assert.NotContains(t, plain, model.NewRectangle(0, 50, 100, 50))

	thorough := searchGrid(grid, searchOptions{strategy: model.StrategyAspect, ratio: 1.0, thorough: true})
	assert.Contains(t, thorough, model.NewRectangle(0, 50, 100, 50))
	assert.GreaterOrEqual(t, len(thorough), len(plain))
}

func TestSearchGrid_AlternateStrategy(t *testing.T) {
	// The unbiased strategy alternates growth regardless of ratio; on an
	// empty screen it still yields the whole screen.
	screen := model.NewRectangle(0, 0, 640, 480)
	grid := BuildGrid(screen, nil)

	spaces := searchGrid(grid, searchOptions{strategy: model.StrategyAlternate})

	require.Len(t, spaces, 1)
	assert.Equal(t, screen, spaces[0])
}

func TestSearchGrid_GrowthCutoffLimitsSpaces(t *testing.T) {
	// With the cutoff at the requested size, spaces stop growing once
	// they span it instead of filling the whole free area.
	screen := model.NewRectangle(0, 0, 100, 100)
	windows := []model.Rectangle{
		model.NewRectangle(90, 0, 10, 30),
		model.NewRectangle(90, 30, 10, 30),
		model.NewRectangle(90, 60, 10, 30),
	}
	grid := BuildGrid(screen, windows)

	spaces := searchGrid(grid, searchOptions{
		strategy:  model.StrategyAlternate,
		maxWidth:  50,
		maxHeight: 50,
	})

	for _, s := range spaces {
		assert.LessOrEqual(t, s.Height, 60, "space %v grew past the cutoff", s)
	}
}
