package ui

import "snake-arcade/game/types"

const (
	borderPadding = 10 // gap around the board
	hudHeight     = 36 // score line above the board
	minStatsPanel = 160
)

// Layout places the board inside the window. All values are pixels.
type Layout struct {
	Cell       int32
	OffsetX    int32
	OffsetY    int32
	BoardW     int32
	BoardH     int32
	StatsX     int32
	StatsWidth int32
}

// ComputeLayout fits grid into a window of the given size, leaving a stats
// panel on the right and the HUD line above the board. Cells never shrink
// below one pixel.
func ComputeLayout(screenW, screenH int32, grid types.Grid) Layout {
	stats := max(screenW/7, minStatsPanel)
	gameW := screenW - stats

	availableW := gameW - borderPadding*2
	availableH := screenH - borderPadding*2 - hudHeight

	cell := max(min(availableW/int32(grid.Width), availableH/int32(grid.Height)), 1)

	l := Layout{
		Cell:       cell,
		BoardW:     cell * int32(grid.Width),
		BoardH:     cell * int32(grid.Height),
		StatsX:     gameW + 5,
		StatsWidth: stats - 5,
	}
	l.OffsetX = (gameW - l.BoardW) / 2
	l.OffsetY = hudHeight + (screenH-hudHeight-l.BoardH)/2
	return l
}

// ToScreen converts a position in cell units to the pixel position of its
// top-left corner.
func (l Layout) ToScreen(x, y float64) (float32, float32) {
	return float32(l.OffsetX) + float32(x)*float32(l.Cell),
		float32(l.OffsetY) + float32(y)*float32(l.Cell)
}

// WindowSize is the window that shows grid at cellSize pixels per cell.
func WindowSize(grid types.Grid, cellSize int) (int32, int32) {
	gameW := int32(grid.Width*cellSize) + borderPadding*2
	h := int32(grid.Height*cellSize) + borderPadding*2 + hudHeight
	// stats panel is a seventh of the window
	w := gameW + max(gameW/6, minStatsPanel)
	return w, h
}
