package ui

import (
	"testing"

	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/input"
)

func TestComputeLayoutFitsBoard(t *testing.T) {
	grid := types.Grid{Width: 20, Height: 20}
	w, h := WindowSize(grid, 24)
	l := ComputeLayout(w, h, grid)

	if l.Cell != 24 {
		t.Fatalf("cell = %d, want 24 at the suggested window size", l.Cell)
	}
	if l.OffsetX < 0 || l.OffsetX+l.BoardW > l.StatsX {
		t.Fatalf("board [%d,%d] overlaps stats panel at %d", l.OffsetX, l.OffsetX+l.BoardW, l.StatsX)
	}
	if l.OffsetY < hudHeight || l.OffsetY+l.BoardH > h {
		t.Fatalf("board rows [%d,%d] outside window height %d", l.OffsetY, l.OffsetY+l.BoardH, h)
	}
}

func TestComputeLayoutTinyWindow(t *testing.T) {
	l := ComputeLayout(100, 50, types.Grid{Width: 200, Height: 200})
	if l.Cell != 1 {
		t.Fatalf("cell = %d, want 1 when the grid does not fit", l.Cell)
	}
}

func TestToScreen(t *testing.T) {
	l := Layout{Cell: 10, OffsetX: 5, OffsetY: 40}
	x, y := l.ToScreen(2.5, 1)
	if x != 30 || y != 50 {
		t.Fatalf("ToScreen = (%v,%v), want (30,50)", x, y)
	}
}

func TestGesture(t *testing.T) {
	in := NewInput(0)
	tests := []struct {
		dx, dy float64
		want   input.Command
	}{
		{80, 5, input.Right},
		{-3, -90, input.Up},
		{2, 1, input.Confirm},
		{20, 0, input.None}, // too long for a tap, too short for a swipe
	}
	for _, tt := range tests {
		if got := in.gesture(tt.dx, tt.dy); got != tt.want {
			t.Errorf("gesture(%v,%v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestOverlayText(t *testing.T) {
	if title, _ := overlayText(game.PhaseRunning); title != "" {
		t.Fatalf("running phase shows overlay %q", title)
	}
	if title, _ := overlayText(game.PhaseGameOver); title != "GAME OVER" {
		t.Fatalf("game over title = %q", title)
	}
}
