package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/piwi3910/OpenSpot/internal/model"
)

// ErrInvalidSize is returned when a requested window or screen size is not
// strictly positive.
var ErrInvalidSize = errors.New("invalid size")

// Placer selects the best position for a new window.
//
// Every call is a pure function of its inputs: the placer keeps no state
// between queries and never mutates the rectangles passed in, so a single
// Placer is safe to share as long as each call gets its own input snapshot.
type Placer struct {
	Settings model.PlacerSettings
}

func New(settings model.PlacerSettings) *Placer {
	return &Placer{Settings: settings}
}

// spaceInfo pairs an open space with the position the new window would
// take inside it.
type spaceInfo struct {
	space model.Rectangle
	rect  model.Rectangle
}

// newSpaceInfo computes the candidate rectangle for a space: pulled toward
// the screen center, re-centered inside the space on any axis where the
// window is larger than the space, and clamped to the screen.
func newSpaceInfo(space, rect, screen model.Rectangle) spaceInfo {
	pos := model.MoveToward(rect, space, screen.Center())
	cand := model.Rectangle{X: pos.X, Y: pos.Y, Width: rect.Width, Height: rect.Height}
	if cand.Width > space.Width {
		cand.X = space.X + (space.Width-cand.Width)/2
	}
	if cand.Height > space.Height {
		cand.Y = space.Y + (space.Height-cand.Height)/2
	}
	cand = cand.ClampInside(screen)
	return spaceInfo{space: space, rect: cand}
}

func (si spaceInfo) position() model.Point {
	return model.Point{X: si.rect.X, Y: si.rect.Y}
}

// FindPosition returns the top-left corner at which to place a window of
// rect's size. Only the size of rect is used; its position is ignored.
func (p *Placer) FindPosition(rect, screen model.Rectangle, windows []model.Rectangle) (model.Point, error) {
	result, err := p.Place(rect, screen, windows)
	if err != nil {
		return model.Point{}, err
	}
	return result.Position, nil
}

// Place runs the full search and returns the chosen position along with
// the grid and open-space state it was derived from.
//
// When no open space can host the window, the returned position is the
// screen center (and may overlap existing windows).
func (p *Placer) Place(rect, screen model.Rectangle, windows []model.Rectangle) (model.PlacementResult, error) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return model.PlacementResult{}, fmt.Errorf("%w: window %dx%d", ErrInvalidSize, rect.Width, rect.Height)
	}
	if screen.Width <= 0 || screen.Height <= 0 {
		return model.PlacementResult{}, fmt.Errorf("%w: screen %dx%d", ErrInvalidSize, screen.Width, screen.Height)
	}

	centered := model.Point{
		X: screen.X + (screen.Width-rect.Width)/2,
		Y: screen.Y + (screen.Height-rect.Height)/2,
	}

	// With many windows or a near-screen-sized window the search is not
	// worth running; just center.
	if len(windows) > p.Settings.MaxWindows ||
		float64(rect.Width) >= float64(screen.Width)*p.Settings.MaxSizeFraction ||
		float64(rect.Height) >= float64(screen.Height)*p.Settings.MaxSizeFraction {
		return model.PlacementResult{Position: centered, Fallback: true}, nil
	}

	grid := BuildGrid(screen, windows)
	opts := searchOptions{
		strategy: p.Settings.Strategy,
		ratio:    float64(rect.Width) / float64(rect.Height),
		thorough: p.Settings.Thorough,
	}
	if p.Settings.LimitGrowth {
		opts.maxWidth, opts.maxHeight = rect.Width, rect.Height
	}
	spaces := searchGrid(grid, opts)

	result := model.PlacementResult{
		Spaces:   spaces,
		GridXS:   grid.XS(),
		GridYS:   grid.YS(),
		Occupied: grid.Occupancy(),
	}

	if len(spaces) == 0 {
		result.Position = centered
		result.Fallback = true
		return result, nil
	}

	infos := make([]spaceInfo, len(spaces))
	for i, s := range spaces {
		infos[i] = newSpaceInfo(s, rect, screen)
	}

	// Nearest candidate to the screen center first. Stable sort keeps
	// insertion order on equal distances so selection is deterministic.
	screenCenter := screen.Center()
	sort.SliceStable(infos, func(i, j int) bool {
		return model.CenterDistance(infos[i].rect.Center(), screenCenter) <
			model.CenterDistance(infos[j].rect.Center(), screenCenter)
	})

	chosen := -1
	for i, si := range infos {
		if si.space.Width >= rect.Width && si.space.Height >= rect.Height {
			chosen = i
			break
		}
	}
	if chosen == -1 {
		// Nothing fits; take the largest space to minimize overlap.
		// Strict greater-than keeps the earliest on ties.
		bestArea := -1
		for i, si := range infos {
			if si.space.Area() > bestArea {
				bestArea = si.space.Area()
				chosen = i
			}
		}
	}

	result.Position = infos[chosen].position()
	result.Space = infos[chosen].space
	return result, nil
}
