//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"rankfield/internal/core"
)

// HUD renders the derived-metrics panel to the right of the field view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
}

// NewHUD constructs a HUD with the provided panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Draw paints the panel anchored at offsetX. Every value shown here is
// recomputed upstream whenever the rank changes; the HUD itself holds no
// derived state.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int, rank int, status core.Status, m core.Metrics, advice string) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	label := color.RGBA{R: 150, G: 152, B: 162, A: 255}
	value := color.RGBA{R: 222, G: 224, B: 232, A: 255}

	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Rank Dynamics", face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += sectionGap

	text.Draw(h.panel, fmt.Sprintf("rank   %d", rank), face, panelPadding, y, value)
	y += lineHeight
	text.Draw(h.panel, "state  "+status.String(), face, panelPadding, y, statusColor(status))
	y += sectionGap

	rows := []struct {
		label string
		value string
	}{
		{"loss", FormatLoss(m.Loss)},
		{"memory", FormatMemory(m.Memory)},
		{"score", FormatScore(m.Capability)},
		{"grad", FormatGradient(m.Gradient)},
	}
	for _, row := range rows {
		text.Draw(h.panel, row.label, face, panelPadding, y, label)
		text.Draw(h.panel, row.value, face, panelPadding+valueIndent, y, value)
		y += lineHeight
	}

	y += sectionGap - lineHeight
	for _, line := range wrapText(advice, adviceWidth) {
		y += lineHeight
		text.Draw(h.panel, line, face, panelPadding, y, label)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func statusColor(status core.Status) color.RGBA {
	switch status {
	case core.StatusCollapsed:
		return color.RGBA{R: 148, G: 152, B: 168, A: 255}
	case core.StatusExploding:
		return color.RGBA{R: 235, G: 90, B: 72, A: 255}
	}
	return color.RGBA{R: 92, G: 210, B: 180, A: 255}
}

const (
	panelPadding   = 12
	lineHeight     = 18
	sectionGap     = 28
	headerBaseline = 18
	valueIndent    = 64
	adviceWidth    = 30
)
