package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flappyboi/internal/core"
)

// Visual elements.
const (
	GroundChar = '═'
	PipeChar   = '█'
	PipeCap    = '▀'
	BirdBody   = '●'
	BirdLevel  = '>'
	BirdUp     = '^'
	BirdDown   = 'v'
	Title      = "FLAPPY BOI"
)

// viewport maps world units onto screen cells. The bottom row is ground.
type viewport struct {
	cols, rows     int // Playfield size in cells
	worldW, worldH float64
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	return viewport{
		cols:   dst.Width(),
		rows:   core.Max(dst.Height()-1, 0),
		worldW: worldW,
		worldH: worldH,
	}
}

// col returns the column containing world x.
func (v viewport) col(x float64) int {
	if v.worldW <= 0 {
		return 0
	}
	return int(math.Floor(x / v.worldW * float64(v.cols)))
}

// row returns the row containing world y. y grows up, rows grow down.
func (v viewport) row(y float64) int {
	if v.worldH <= 0 {
		return 0
	}
	return v.rows - 1 - int(math.Floor(y/v.worldH*float64(v.rows)))
}

// Render draws the current frame. The bird is only visible while Playing.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	vp := newViewport(dst, g.cfg.World.Width, g.cfg.World.Height)
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorGray)

	if g.phase == PhaseSplash {
		g.drawTitleCard(dst)
		return
	}

	for _, p := range g.pipes.Pipes() {
		g.drawPipe(dst, vp, p)
	}
	if g.phase == PhasePlaying {
		g.drawBird(dst, vp)
	}
	g.drawHUD(dst)
}

func (g *Game) drawPipe(dst *core.Screen, vp viewport, p Pipe) {
	box := p.Bounds(g.cfg.Pipes)
	lo, hi := box.Min(), box.Max()
	if vp.col(hi.X) < 0 || vp.col(lo.X) >= vp.cols || vp.row(lo.Y) < 0 || vp.row(hi.Y) >= vp.rows {
		return
	}

	left := core.Clamp(vp.col(lo.X), 0, vp.cols-1)
	right := core.Clamp(vp.col(hi.X), 0, vp.cols-1)
	top := core.Clamp(vp.row(hi.Y), 0, vp.rows-1)
	bottom := core.Clamp(vp.row(lo.Y), 0, vp.rows-1)

	// The cap sits on the row next to the gap.
	capRow := top
	if p.Flipped {
		capRow = bottom
	}
	for y := top; y <= bottom; y++ {
		ch := rune(PipeChar)
		if y == capRow {
			ch = PipeCap
		}
		for x := left; x <= right; x++ {
			dst.SetColored(x, y, ch, core.ColorGreen)
		}
	}
}

func (g *Game) drawBird(dst *core.Screen, vp viewport) {
	x := vp.col(g.bird.Pos.X)
	y := core.Clamp(vp.row(g.bird.Pos.Y), 0, core.Max(vp.rows-1, 0))

	beak := rune(BirdLevel)
	switch {
	case g.bird.Angle > 10:
		beak = BirdUp
	case g.bird.Angle < -30:
		beak = BirdDown
	}
	dst.SetColored(x-1, y, BirdBody, core.ColorYellow)
	dst.SetColored(x, y, beak, core.ColorYellow)
}

func (g *Game) drawHUD(dst *core.Screen) {
	switch g.phase {
	case PhaseMenu:
		dst.DrawTextCentered(dst.Height()/2, "Press space to play", core.ColorBrightWhite)
	case PhasePlaying:
		drawCounter(dst, 2, 0, "Score", g.board.Score)
	case PhaseDeathScreen:
		mid := dst.Height() / 2
		score := fmt.Sprintf("Score: %d", g.board.Score)
		best := fmt.Sprintf("Highscore: %d", g.board.Highscore)
		drawCounter(dst, (dst.Width()-len(score))/2, mid-2, "Score", g.board.Score)
		drawCounter(dst, (dst.Width()-len(best))/2, mid-1, "Highscore", g.board.Highscore)
		dst.DrawTextCentered(mid+1, "Press space to retry", core.ColorBrightWhite)
	}
}

// drawCounter writes "label: n" with the number highlighted.
func drawCounter(dst *core.Screen, x, y int, label string, n int) {
	prefix := label + ": "
	dst.DrawText(x, y, prefix, core.ColorBrightWhite)
	dst.DrawText(x+len(prefix), y, fmt.Sprint(n), core.ColorOrange)
}

func (g *Game) drawTitleCard(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	boxW := len(Title) + 6
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorCyan)
	dst.DrawTextCentered(box.Y+2, Title, core.ColorYellow)
}
