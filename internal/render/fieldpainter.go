//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"rankfield/internal/field"
)

var (
	background = color.RGBA{R: 10, G: 12, B: 18, A: 255}

	// trailFade is painted over the canvas before each frame instead of a
	// hard clear, so previous frames bleed through as motion trails.
	trailFade = color.RGBA{R: 2, G: 2, B: 3, A: 46}
)

// FieldPainter composites the particle field onto a persistent canvas:
// fade overlay first, then proximity links, then particles on top.
type FieldPainter struct {
	w, h   int
	canvas *ebiten.Image
}

// Paint draws one frame of the field onto dst. A dimension change resets
// the canvas, discarding accumulated trails.
func (fp *FieldPainter) Paint(dst *ebiten.Image, f *field.Field, rank int) {
	w, h := f.Size()
	if w <= 0 || h <= 0 {
		return
	}
	iw, ih := int(w), int(h)
	if fp.canvas == nil || fp.w != iw || fp.h != ih {
		fp.canvas = ebiten.NewImage(iw, ih)
		fp.canvas.Fill(background)
		fp.w, fp.h = iw, ih
	}

	vector.DrawFilledRect(fp.canvas, 0, 0, float32(iw), float32(ih), trailFade, false)

	tint := field.Tint(rank)
	linkTint := dim(tint, 0.25)
	for _, l := range field.Links(f.Particles(), rank) {
		vector.StrokeLine(fp.canvas, float32(l.X1), float32(l.Y1), float32(l.X2), float32(l.Y2), 1, linkTint, true)
	}
	for _, p := range f.Particles() {
		r := p.Radius(rank)
		if r <= 0 {
			continue
		}
		vector.DrawFilledCircle(fp.canvas, float32(p.X), float32(p.Y), float32(r), tint, true)
	}

	dst.DrawImage(fp.canvas, nil)
}

// dim scales an alpha-premultiplied color by s.
func dim(c color.RGBA, s float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * s),
		G: uint8(float64(c.G) * s),
		B: uint8(float64(c.B) * s),
		A: uint8(float64(c.A) * s),
	}
}
