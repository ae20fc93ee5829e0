package model

import "github.com/google/uuid"

// Window represents an existing occupied region on the screen that a new
// window must avoid.
type Window struct {
	ID    string    `json:"id"`
	Label string    `json:"label"`
	Rect  Rectangle `json:"rect"`
}

func NewWindow(label string, rect Rectangle) Window {
	return Window{
		ID:    uuid.New().String()[:8],
		Label: label,
		Rect:  rect,
	}
}

// Rects extracts the plain rectangles from a window list.
func Rects(windows []Window) []Rectangle {
	rects := make([]Rectangle, len(windows))
	for i, w := range windows {
		rects[i] = w.Rect
	}
	return rects
}

// Strategy selects the rectangle growth policy used when enumerating
// open spaces.
type Strategy string

const (
	// StrategyAspect biases growth toward the new window's aspect ratio.
	StrategyAspect Strategy = "aspect"
	// StrategyAlternate grows one step down, one step right, with no bias.
	StrategyAlternate Strategy = "alternate"
)

// PlacerSettings holds the tunables of the placement selector.
type PlacerSettings struct {
	Strategy Strategy `json:"strategy"`
	// MaxWindows is the window count above which the placer skips the
	// open-space search and just centers the new window.
	MaxWindows int `json:"max_windows"`
	// MaxSizeFraction is the fraction of the screen width or height at
	// which a new window is considered too large for space search.
	MaxSizeFraction float64 `json:"max_size_fraction"`
	// Thorough runs extra growth passes per origin for better space
	// coverage at the cost of more work.
	Thorough bool `json:"thorough"`
	// LimitGrowth stops growing a space once it already spans the
	// requested window size. Candidates fit the window more tightly but
	// are no longer maximal.
	LimitGrowth bool `json:"limit_growth"`
}

func DefaultSettings() PlacerSettings {
	return PlacerSettings{
		Strategy:        StrategyAspect,
		MaxWindows:      9,
		MaxSizeFraction: 0.8,
		Thorough:        false,
	}
}

// PlacementResult carries the chosen position together with the full
// intermediate state of the search, so callers can render or assert on the
// grid and candidate spaces without re-deriving them.
type PlacementResult struct {
	// Position is the top-left corner chosen for the new window.
	Position Point `json:"position"`
	// Space is the open space the window was placed into. Zero when the
	// placer fell back to centering.
	Space Rectangle `json:"space,omitempty"`
	// Fallback is true when the centered fallback was used instead of an
	// open space.
	Fallback bool `json:"fallback"`
	// Spaces holds every deduplicated open space that was considered.
	Spaces []Rectangle `json:"spaces,omitempty"`
	// GridXS and GridYS are the sorted edge coordinates the grid was
	// built from.
	GridXS []int `json:"grid_xs,omitempty"`
	GridYS []int `json:"grid_ys,omitempty"`
	// Occupied is the occupancy map, indexed [row][col] in grid cells.
	Occupied [][]bool `json:"occupied,omitempty"`
}

// Rect returns the placed window rectangle for a request of the given size.
func (pr PlacementResult) Rect(width, height int) Rectangle {
	return Rectangle{X: pr.Position.X, Y: pr.Position.Y, Width: width, Height: height}
}

// Scenario ties a screen and its windows together for save/load.
type Scenario struct {
	Name     string         `json:"name"`
	Screen   Rectangle      `json:"screen"`
	Windows  []Window       `json:"windows"`
	Settings PlacerSettings `json:"settings"`
}

func NewScenario() Scenario {
	return Scenario{
		Name:     "Untitled",
		Screen:   Rectangle{Width: 1920, Height: 1080},
		Windows:  []Window{},
		Settings: DefaultSettings(),
	}
}
