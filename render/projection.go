package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-pong/parameter"
)

// HUDRows is the number of terminal rows above the arena
const HUDRows = 1

// Viewport returns the arena size in world units for a terminal size
func Viewport(cols, rows int) (width, height float64) {
	return float64(cols) * parameter.UnitsPerColumn, float64(max(rows-HUDRows, 1)) * parameter.UnitsPerRow
}

// Projection maps world coordinates (origin at center, y up) to terminal cells
type Projection struct {
	Width, Height float64 // World viewport
	Cols, Rows    int     // Arena cells, excluding the HUD
}

// Cell returns the column and row of a world point; ok is false outside the arena
func (p Projection) Cell(v mgl64.Vec2) (col, row int, ok bool) {
	col = int(math.Floor((v[0] + p.Width/2) / p.Width * float64(p.Cols)))
	row = int(math.Floor((p.Height/2 - v[1]) / p.Height * float64(p.Rows)))
	ok = col >= 0 && col < p.Cols && row >= 0 && row < p.Rows
	return col, row + HUDRows, ok
}

// Span returns the clamped cell range [c0,c1]x[r0,r1] covering a rectangle
func (p Projection) Span(center, half mgl64.Vec2) (c0, r0, c1, r1 int, ok bool) {
	sx := float64(p.Cols) / p.Width
	sy := float64(p.Rows) / p.Height
	c0 = int(math.Floor((center[0] - half[0] + p.Width/2) * sx))
	c1 = int(math.Ceil((center[0]+half[0]+p.Width/2)*sx)) - 1
	r0 = int(math.Floor((p.Height/2 - center[1] - half[1]) * sy))
	r1 = int(math.Ceil((p.Height/2-center[1]+half[1])*sy)) - 1

	c0, c1 = max(c0, 0), min(c1, p.Cols-1)
	r0, r1 = max(r0, 0), min(r1, p.Rows-1)
	if c0 > c1 || r0 > r1 {
		return 0, 0, 0, 0, false
	}
	return c0, r0 + HUDRows, c1, r1 + HUDRows, true
}
