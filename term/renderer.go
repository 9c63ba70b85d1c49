// Package term is the terminal frontend, drawn with tcell. Every grid cell
// is two columns wide so the board looks square in most fonts.
package term

import (
	"fmt"
	"math"

	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/stats"
	"snake-arcade/view"

	"github.com/gdamore/tcell/v2"
)

const cellCols = 2

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFlash  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHead   = tcell.StyleDefault.Background(tcell.NewRGBColor(50, 255, 50))
	styleBody   = tcell.StyleDefault.Background(tcell.NewRGBColor(0, 170, 0))
	styleFood   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 80, 80)).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBest   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 255, 0))
	styleBanner = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true).Reverse(true)
)

type Renderer struct {
	screen tcell.Screen
	stats  *stats.GameStats
	ox, oy int // top-left corner of the border
}

func NewRenderer(screen tcell.Screen, gameStats *stats.GameStats) *Renderer {
	if gameStats == nil {
		gameStats = stats.NewGameStats()
	}
	return &Renderer{screen: screen, stats: gameStats}
}

// cellOrigin returns the screen position of grid cell (x, y).
func (r *Renderer) cellOrigin(x, y int) (int, int) {
	return r.ox + 1 + x*cellCols, r.oy + 1 + y
}

func (r *Renderer) Draw(s *game.Session, m *view.Model) {
	st := s.State()
	sw, sh := r.screen.Size()
	boardW := st.Grid.Width*cellCols + 2
	boardH := st.Grid.Height + 2
	r.ox = max((sw-boardW)/2, 0)
	r.oy = max((sh-boardH-1)/2, 0)

	r.screen.Clear()

	border := styleBorder
	if m.Flash() > 0.2 {
		border = styleFlash
	}
	r.drawBorder(boardW, boardH, border)

	fx, fy := r.cellOrigin(st.Food.X, st.Food.Y)
	r.putString(fx, fy, "()", styleFood)

	segs := m.Segments()
	for i := len(segs) - 1; i >= 0; i-- {
		x, y := int(math.Round(segs[i].X)), int(math.Round(segs[i].Y))
		if !st.Grid.Contains(types.Point{X: x, Y: y}) {
			continue
		}
		style := styleBody
		if i == 0 {
			style = styleHead
		}
		cx, cy := r.cellOrigin(x, y)
		r.putString(cx, cy, "  ", style)
	}

	for _, p := range m.Particles() {
		x, y := int(math.Floor(p.Pos.X)), int(math.Floor(p.Pos.Y))
		if !st.Grid.Contains(types.Point{X: x, Y: y}) {
			continue
		}
		cx, cy := r.cellOrigin(x, y)
		r.screen.SetContent(cx, cy, particleRune(p), nil, particleStyle(p))
	}

	r.drawStatus(s, r.oy+boardH)
	if title, hint := bannerText(st.Phase); title != "" {
		r.drawBanner(title, hint, st.Score, boardW, boardH, st.Phase.Terminal())
	}

	r.screen.Show()
}

func (r *Renderer) drawBorder(w, h int, style tcell.Style) {
	for x := 1; x < w-1; x++ {
		r.screen.SetContent(r.ox+x, r.oy, tcell.RuneHLine, nil, style)
		r.screen.SetContent(r.ox+x, r.oy+h-1, tcell.RuneHLine, nil, style)
	}
	for y := 1; y < h-1; y++ {
		r.screen.SetContent(r.ox, r.oy+y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(r.ox+w-1, r.oy+y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(r.ox, r.oy, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(r.ox+w-1, r.oy, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(r.ox, r.oy+h-1, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(r.ox+w-1, r.oy+h-1, tcell.RuneLRCorner, nil, style)
}

func (r *Renderer) drawStatus(s *game.Session, y int) {
	left := fmt.Sprintf("Score %d  Speed %dms", s.Score(), s.Interval().Milliseconds())
	r.putString(r.ox, y, left, styleStatus)

	right := fmt.Sprintf("Best %d  Games %d", s.HighScore(), r.stats.GetGamesPlayed())
	r.putString(r.ox+len(left)+3, y, right, styleBest)
}

func (r *Renderer) drawBanner(title, hint string, score, w, h int, finished bool) {
	cy := r.oy + h/2 - 1
	center := func(text string) int { return r.ox + (w-len(text))/2 }

	r.putString(center(title), cy, title, styleBanner)
	r.putString(center(hint), cy+1, hint, styleStatus)
	if finished {
		line := fmt.Sprintf("score %d", score)
		r.putString(center(line), cy+2, line, styleBest)
	}
}

func (r *Renderer) putString(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func bannerText(p game.Phase) (title, hint string) {
	switch p {
	case game.PhaseStart:
		return " SNAKE ", "enter to start"
	case game.PhasePaused:
		return " PAUSED ", "p to resume"
	case game.PhaseGameOver:
		return " GAME OVER ", "enter to play again"
	case game.PhaseWon:
		return " YOU WIN ", "enter to play again"
	}
	return "", ""
}

func particleRune(p view.Particle) rune {
	if p.Alpha > 0.5 {
		return '*'
	}
	return '.'
}

// particleStyle fades the particle's colour with its alpha.
func particleStyle(p view.Particle) tcell.Style {
	a := math.Max(0, math.Min(1, p.Alpha))
	if p.Kind == view.CrashParticle {
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(255*a), int32(140*a), int32(40*a)))
	}
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(255*a), int32(80*a), int32(80*a)))
}
