package ui

import (
	"snake-arcade/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyCommands = []struct {
	key int32
	cmd input.Command
}{
	{rl.KeyUp, input.Up},
	{rl.KeyDown, input.Down},
	{rl.KeyLeft, input.Left},
	{rl.KeyRight, input.Right},
	{rl.KeyW, input.Up},
	{rl.KeyS, input.Down},
	{rl.KeyA, input.Left},
	{rl.KeyD, input.Right},
	{rl.KeyEnter, input.Confirm},
	{rl.KeySpace, input.Confirm},
	{rl.KeyP, input.Pause},
	{rl.KeyEscape, input.Pause},
	{rl.KeyR, input.Restart},
	{rl.KeyQ, input.Quit},
}

// Input polls the keyboard and the pointer once per frame. A mouse drag or
// touch swipe longer than the threshold steers; a short press is a tap.
type Input struct {
	threshold float64
	dragging  bool
	start     rl.Vector2
}

func NewInput(threshold float64) *Input {
	if threshold <= 0 {
		threshold = input.DefaultSwipeThreshold
	}
	return &Input{threshold: threshold}
}

// Poll returns the commands issued since the last frame, in key order.
func (in *Input) Poll() []input.Command {
	var cmds []input.Command
	for _, kc := range keyCommands {
		if rl.IsKeyPressed(kc.key) {
			cmds = append(cmds, kc.cmd)
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		in.dragging = true
		in.start = rl.GetMousePosition()
	}
	if in.dragging && rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		in.dragging = false
		end := rl.GetMousePosition()
		if cmd := in.gesture(float64(end.X-in.start.X), float64(end.Y-in.start.Y)); cmd != input.None {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// gesture turns a finished drag into a command. Taps confirm.
func (in *Input) gesture(dx, dy float64) input.Command {
	if cmd := input.ClassifySwipe(dx, dy, in.threshold); cmd != input.None {
		return cmd
	}
	if input.IsTap(dx, dy, in.threshold) {
		return input.Confirm
	}
	return input.None
}

