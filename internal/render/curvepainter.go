//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"rankfield/internal/field"
	"rankfield/internal/spectral"
)

// CurvePainter draws the spectral density curve as an area fill plus a
// stroked line against the fixed [0, Ceiling] vertical domain, so
// exploding-regime values visibly clip off the top.
type CurvePainter struct {
	w, h  int
	panel *ebiten.Image
}

// NewCurvePainter allocates a chart panel of the given pixel size.
func NewCurvePainter(w, h int) *CurvePainter {
	return &CurvePainter{w: w, h: h, panel: ebiten.NewImage(w, h)}
}

// Paint renders the curve and blits the panel onto dst at (x, y).
func (cp *CurvePainter) Paint(dst *ebiten.Image, pts []spectral.Point, rank int, x, y float64) {
	cp.panel.Fill(color.RGBA{R: 8, G: 9, B: 14, A: 220})

	if len(pts) > 0 {
		tint := field.Tint(rank)
		area := dim(tint, 0.35)
		colW := float64(cp.w) / float64(len(pts))
		var prevX, prevY float32
		for i, p := range pts {
			frac := p.Magnitude / spectral.Ceiling
			if frac > 1 {
				frac = 1
			}
			barH := frac * float64(cp.h)
			bx := float64(i) * colW
			vector.DrawFilledRect(cp.panel, float32(bx), float32(float64(cp.h)-barH), float32(colW), float32(barH), area, false)

			cx := float32(bx + colW/2)
			cy := float32(float64(cp.h) - barH)
			if i > 0 {
				vector.StrokeLine(cp.panel, prevX, prevY, cx, cy, 1.5, tint, true)
			}
			prevX, prevY = cx, cy
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(cp.panel, op)
}
