package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWindow(t *testing.T) {
	w := NewWindow("editor", NewRectangle(10, 20, 800, 600))

	assert.Len(t, w.ID, 8)
	assert.Equal(t, "editor", w.Label)
	assert.Equal(t, NewRectangle(10, 20, 800, 600), w.Rect)

	other := NewWindow("editor", w.Rect)
	assert.NotEqual(t, w.ID, other.ID, "IDs must be unique")
}

func TestRects(t *testing.T) {
	windows := []Window{
		NewWindow("a", NewRectangle(0, 0, 10, 10)),
		NewWindow("b", NewRectangle(20, 20, 30, 30)),
	}

	rects := Rects(windows)

	require.Len(t, rects, 2)
	assert.Equal(t, windows[0].Rect, rects[0])
	assert.Equal(t, windows[1].Rect, rects[1])

	assert.Empty(t, Rects(nil))
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, StrategyAspect, s.Strategy)
	assert.Equal(t, 9, s.MaxWindows)
	assert.Equal(t, 0.8, s.MaxSizeFraction)
	assert.False(t, s.Thorough)
	assert.False(t, s.LimitGrowth)
}

func TestScenario_JSONRoundTrip(t *testing.T) {
	sc := NewScenario()
	sc.Name = "dual"
	sc.Screen = NewRectangle(0, 0, 2560, 1440)
	sc.Windows = append(sc.Windows, NewWindow("terminal", NewRectangle(100, 100, 900, 500)))

	data, err := json.Marshal(sc)
	require.NoError(t, err)

	var back Scenario
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, sc, back)
}

func TestPlacementResult_Rect(t *testing.T) {
	pr := PlacementResult{Position: Point{X: 500, Y: 250}}
	assert.Equal(t, NewRectangle(500, 250, 600, 400), pr.Rect(600, 400))
}
