package ui

import (
	"fmt"
	"image/color"

	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/stats"
	"snake-arcade/view"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const maxScores = 50 // rounds shown in the graph

var (
	snakeColor  = rl.Color{R: 46, G: 204, B: 113, A: 255}
	foodColor   = rl.Color{R: 231, G: 76, B: 60, A: 255}
	crashColor  = rl.Color{R: 255, G: 140, B: 40, A: 255}
	boardColor  = rl.Color{R: 20, G: 20, B: 24, A: 255}
	gridColor   = rl.Color{R: 36, G: 36, B: 42, A: 255}
	overlayTint = rl.Color{R: 0, G: 0, B: 0, A: 160}
)

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	layout       Layout
	stats        *stats.GameStats
}

func NewRenderer(gameStats *stats.GameStats) *Renderer {
	r := &Renderer{stats: gameStats}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func (r *Renderer) Draw(s *game.Session, m *view.Model) {
	st := s.State()
	r.layout = ComputeLayout(r.screenWidth, r.screenHeight, st.Grid)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := min(r.screenHeight/30, r.layout.StatsWidth/10)
	lineHeight := fontSize + fontSize/2

	r.drawBoard(st.Grid)
	r.drawFood(st.Food)
	r.drawSnake(m.Segments(), st.Snake.Direction)
	r.drawParticles(m.Particles())
	r.drawHUD(s, fontSize)
	r.drawStatsPanel(s, fontSize, lineHeight)

	if f := m.Flash(); f > 0 {
		rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, rl.Fade(rl.Red, float32(f)*0.35))
	}
	r.drawOverlay(st, fontSize*2)

	rl.EndDrawing()
}

func (r *Renderer) drawBoard(grid types.Grid) {
	l := r.layout
	rl.DrawRectangle(l.OffsetX-1, l.OffsetY-1, l.BoardW+2, l.BoardH+2, rl.DarkGray)
	rl.DrawRectangle(l.OffsetX, l.OffsetY, l.BoardW, l.BoardH, boardColor)

	if l.Cell < 6 {
		return
	}
	for x := 1; x < grid.Width; x++ {
		px := l.OffsetX + int32(x)*l.Cell
		rl.DrawLine(px, l.OffsetY, px, l.OffsetY+l.BoardH, gridColor)
	}
	for y := 1; y < grid.Height; y++ {
		py := l.OffsetY + int32(y)*l.Cell
		rl.DrawLine(l.OffsetX, py, l.OffsetX+l.BoardW, py, gridColor)
	}
}

func (r *Renderer) drawFood(p types.Point) {
	x, y := r.layout.ToScreen(float64(p.X)+0.5, float64(p.Y)+0.5)
	radius := float32(r.layout.Cell) * 0.4
	rl.DrawCircleV(rl.Vector2{X: x, Y: y}, radius, foodColor)
	rl.DrawCircleV(rl.Vector2{X: x - radius/3, Y: y - radius/3}, radius/4, rl.Fade(rl.White, 0.6))
}

// drawSnake draws tail to head so the head ends up on top. Segments fade
// from the body colour towards a darker tail.
func (r *Renderer) drawSnake(segs []view.Segment, dir types.Direction) {
	cell := float32(r.layout.Cell)
	inset := cell * 0.08
	size := rl.Vector2{X: cell - 2*inset, Y: cell - 2*inset}

	for i := len(segs) - 1; i >= 0; i-- {
		x, y := r.layout.ToScreen(segs[i].X, segs[i].Y)
		c := shade(snakeColor, 1-0.5*float32(i)/float32(max(len(segs), 2)))
		if i == 0 {
			c = shade(snakeColor, 1.3)
		}
		rl.DrawRectangleV(rl.Vector2{X: x + inset, Y: y + inset}, size, c)
	}
	if len(segs) > 0 {
		x, y := r.layout.ToScreen(segs[0].X, segs[0].Y)
		r.drawHeadMarker(x, y, cell, dir)
	}
}

// drawHeadMarker draws the direction triangle inside the head cell.
func (r *Renderer) drawHeadMarker(x, y, cell float32, dir types.Direction) {
	half := cell / 2
	var a, b, c rl.Vector2
	switch dir {
	case types.Right:
		a = rl.Vector2{X: x + cell, Y: y + half}
		b = rl.Vector2{X: x + half, Y: y}
		c = rl.Vector2{X: x + half, Y: y + cell}
	case types.Left:
		a = rl.Vector2{X: x, Y: y + half}
		b = rl.Vector2{X: x + half, Y: y + cell}
		c = rl.Vector2{X: x + half, Y: y}
	case types.Down:
		a = rl.Vector2{X: x + half, Y: y + cell}
		b = rl.Vector2{X: x + cell, Y: y + half}
		c = rl.Vector2{X: x, Y: y + half}
	default:
		a = rl.Vector2{X: x + half, Y: y}
		b = rl.Vector2{X: x, Y: y + half}
		c = rl.Vector2{X: x + cell, Y: y + half}
	}
	// raylib wants counter-clockwise vertices
	rl.DrawTriangle(a, b, c, rl.Fade(rl.Yellow, 0.8))
}

func (r *Renderer) drawParticles(ps []view.Particle) {
	radius := max(float32(r.layout.Cell)/8, 1)
	for _, p := range ps {
		x, y := r.layout.ToScreen(p.Pos.X, p.Pos.Y)
		c := foodColor
		if p.Kind == view.CrashParticle {
			c = crashColor
		}
		rl.DrawCircleV(rl.Vector2{X: x, Y: y}, radius, rl.Fade(c, float32(p.Alpha)))
	}
}

func (r *Renderer) drawHUD(s *game.Session, fontSize int32) {
	l := r.layout
	y := l.OffsetY - fontSize - 8
	rl.DrawText(fmt.Sprintf("Score: %d", s.Score()), l.OffsetX, y, fontSize, rl.White)

	high := fmt.Sprintf("Best: %d", s.HighScore())
	w := rl.MeasureText(high, fontSize)
	rl.DrawText(high, l.OffsetX+l.BoardW-w, y, fontSize, rl.Gold)
}

func (r *Renderer) drawStatsPanel(s *game.Session, fontSize, lineHeight int32) {
	l := r.layout
	x := l.StatsX
	y := int32(10)

	rl.DrawRectangle(x-5, 0, r.screenWidth-x+5, r.screenHeight, rl.DarkGray)

	lines := []string{
		fmt.Sprintf("Best: %d", s.HighScore()),
		fmt.Sprintf("Games: %d", r.stats.GetGamesPlayed()),
		fmt.Sprintf("Avg: %.1f", r.stats.GetAverageScore()),
		fmt.Sprintf("Avg time: %.0fs", r.stats.GetAverageDuration()),
		fmt.Sprintf("Speed: %dms", s.Interval().Milliseconds()),
		fmt.Sprintf("Length: %d", s.State().Snake.Len()),
	}
	for _, line := range lines {
		rl.DrawText(line, x, y, fontSize, rl.White)
		y += lineHeight
	}

	r.drawScoreGraph(x, fontSize)
}

// drawScoreGraph plots the most recent rounds with a dashed average line.
func (r *Renderer) drawScoreGraph(x, fontSize int32) {
	graphW := r.layout.StatsWidth - 10
	graphH := r.screenHeight / 5
	graphY := r.screenHeight - graphH - fontSize*2

	rl.DrawRectangleLines(x, graphY, graphW, graphH, rl.White)
	rl.DrawText("Scores", x, graphY-fontSize-5, fontSize, rl.White)

	games := r.stats.GetStats()
	if len(games) > maxScores {
		games = games[len(games)-maxScores:]
	}
	if len(games) < 2 {
		return
	}

	maxScore := max(r.stats.GetMaxScore(), 1)
	px := func(i int) int32 { return x + int32(float32(graphW)*float32(i)/float32(maxScores-1)) }
	py := func(score float64) int32 {
		return graphY + graphH - int32(float32(graphH)*float32(score)/float32(maxScore))
	}
	for i := 1; i < len(games); i++ {
		rl.DrawLine(px(i-1), py(float64(games[i-1].Score)), px(i), py(float64(games[i].Score)), snakeColor)
	}

	avgY := py(r.stats.GetAverageScore())
	for dx := x; dx < x+graphW; dx += 5 {
		rl.DrawLine(dx, avgY, dx+2, avgY, rl.Gold)
	}
}

func (r *Renderer) drawOverlay(st game.State, fontSize int32) {
	title, hint := overlayText(st.Phase)
	if title == "" {
		return
	}
	l := r.layout
	rl.DrawRectangle(l.OffsetX, l.OffsetY, l.BoardW, l.BoardH, overlayTint)

	cx := l.OffsetX + l.BoardW/2
	cy := l.OffsetY + l.BoardH/2
	tw := rl.MeasureText(title, fontSize)
	rl.DrawText(title, cx-tw/2, cy-fontSize, fontSize, rl.White)

	small := fontSize / 2
	hw := rl.MeasureText(hint, small)
	rl.DrawText(hint, cx-hw/2, cy+small, small, rl.LightGray)

	if st.Phase == game.PhaseGameOver || st.Phase == game.PhaseWon {
		score := fmt.Sprintf("Score: %d", st.Score)
		sw := rl.MeasureText(score, small)
		rl.DrawText(score, cx-sw/2, cy+small*3, small, rl.Gold)
	}
}

// overlayText is the banner shown over the board in phase p.
func overlayText(p game.Phase) (title, hint string) {
	switch p {
	case game.PhaseStart:
		return "SNAKE", "Enter / tap to start"
	case game.PhasePaused:
		return "PAUSED", "P / tap to resume"
	case game.PhaseGameOver:
		return "GAME OVER", "Enter / tap to play again"
	case game.PhaseWon:
		return "YOU WIN", "Enter / tap to play again"
	}
	return "", ""
}

// shade scales the rgb channels of c by f, clamped to 255.
func shade(c color.RGBA, f float32) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(min(float32(v)*f, 255))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}
