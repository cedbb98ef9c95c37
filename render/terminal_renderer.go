package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/game"
	"github.com/lixenwraith/vi-pong/physics"
	"github.com/lixenwraith/vi-pong/system"
)

// Glyphs
const (
	GlyphBall   = '●'
	GlyphPaddle = '█'
	GlyphWall   = '░'
)

// Styles
var (
	StyleBackground = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	StyleWall       = StyleBackground.Foreground(tcell.ColorGray)
	StylePaddle     = StyleBackground.Foreground(tcell.ColorAqua)
	StyleBall       = StyleBackground.Foreground(tcell.ColorYellow)
	StyleHUD        = StyleBackground.Foreground(tcell.ColorWhite).Bold(true)
)

// TerminalRenderer draws a scene onto a tcell screen
// The score text is rebuilt only when the score changes
type TerminalRenderer struct {
	screen tcell.Screen

	score      system.Score
	scoreText  string
	hasScore   bool
	textBuilds int
}

// NewTerminalRenderer creates a renderer for the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// Projection returns the projection for the scene on the current screen size
func (r *TerminalRenderer) Projection(s game.Scene) Projection {
	cols, rows := r.screen.Size()
	return Projection{Width: s.Width, Height: s.Height, Cols: cols, Rows: max(rows-HUDRows, 1)}
}

// RenderFrame draws the entire frame and shows it
func (r *TerminalRenderer) RenderFrame(s game.Scene) {
	r.screen.SetStyle(StyleBackground)
	r.screen.Clear()

	proj := r.Projection(s)
	for _, w := range s.Walls {
		r.fill(proj, w, GlyphWall, StyleWall)
	}
	for _, p := range s.Paddles {
		r.fill(proj, p, GlyphPaddle, StylePaddle)
	}
	if s.HasBall {
		if col, row, ok := proj.Cell(s.Ball.Position); ok {
			r.screen.SetContent(col, row, GlyphBall, nil, StyleBall)
		}
	}

	r.drawHUD(s)
	r.screen.Show()
}

func (r *TerminalRenderer) fill(proj Projection, b physics.Body, glyph rune, style tcell.Style) {
	if b.Shape.Kind != physics.ShapeRect {
		return
	}
	c0, r0, c1, r1, ok := proj.Span(b.Position, b.Shape.Half)
	if !ok {
		return
	}
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawHUD(s game.Scene) {
	if !r.hasScore || s.Score != r.score {
		r.score = s.Score
		r.scoreText = fmt.Sprintf("%d : %d", s.Score.Of(core.Left), s.Score.Of(core.Right))
		r.hasScore = true
		r.textBuilds++
	}

	cols, _ := r.screen.Size()
	text := r.scoreText
	if s.Paused {
		text += "  PAUSED"
	}
	r.drawText((cols-len([]rune(text)))/2, 0, text, StyleHUD)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
