//go:build ebiten

package app

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	opensimplex "github.com/ojrac/opensimplex-go"

	"rankfield/internal/advisory"
	"rankfield/internal/core"
	"rankfield/internal/driver"
	"rankfield/internal/field"
	"rankfield/internal/render"
	"rankfield/internal/spectral"
	"rankfield/internal/ui"
	prng "rankfield/pkg/core"
)

// Panel and chart layout.
const (
	hudWidth    = 240
	chartWidth  = 300
	chartHeight = 120
	chartMargin = 12

	driverTPS = 20
)

// Game wires the particle field, spectral curve, HUD and driver into the
// ebiten frame loop. The live rank is the only state the render loop and
// the drive loop share; writes to it are last-write-wins.
type Game struct {
	clock   core.Clock
	rng     *rand.Rand
	fld     *field.Field
	painter render.FieldPainter
	curve   *render.CurvePainter
	hud     *ui.HUD
	overlay *ui.Overlay
	drv     *driver.Driver
	drvStep *core.FixedStep
	advisor *advisory.Client
	lang    string

	rank     int
	status   core.Status
	metrics  core.Metrics
	spectrum []spectral.Point
	noise    opensimplex.Noise

	advice   string
	adviceCh chan string

	fieldW, fieldH int
}

// New constructs the game from config.
func New(cfg *Config) *Game {
	rng := prng.NewRNG(cfg.Seed).Source()
	clock := core.Clock(core.SystemClock)
	g := &Game{
		clock:    clock,
		rng:      rng,
		fld:      field.New(rng),
		curve:    render.NewCurvePainter(chartWidth, chartHeight),
		hud:      ui.NewHUD(hudWidth),
		overlay:  ui.NewOverlay(),
		drv:      driver.New(clock, perlin.NewPerlin(2, 2, 2, cfg.Seed)),
		drvStep:  core.NewFixedStep(driverTPS, clock),
		advisor:  advisory.New(cfg.AdvisoryURL, cfg.AdvisoryKey),
		lang:     cfg.Lang,
		noise:    opensimplex.NewNormalized(cfg.Seed),
		adviceCh: make(chan string, 1),
		rank:     -1,
	}
	if cfg.Auto {
		g.drv.Start()
	}
	g.applyRank(cfg.Rank)
	return g
}

// applyRank reclassifies and regenerates everything derived from rank.
// Reclassification happens on the very frame the rank changes; there is
// no transition lag between physics, chart and metrics.
func (g *Game) applyRank(rank int) {
	rank = core.ClampRank(rank)
	if rank == g.rank {
		return
	}
	prev := g.status
	g.rank = rank
	g.status = core.Classify(rank)
	g.metrics = core.ComputeMetrics(rank, g.rng)
	g.spectrum = spectral.Synthesize(rank, g.noise)
	if g.status != prev || g.advice == "" {
		g.refreshAdvice(g.status)
	}
}

// refreshAdvice swaps in the static fallback immediately and asks the
// remote collaborator in the background; the frame loop never blocks on
// the network and a late reply lands on a later frame.
func (g *Game) refreshAdvice(status core.Status) {
	g.advice = advisory.Fallback(status, g.lang)
	rank, lang := g.rank, g.lang
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		text := g.advisor.Advise(ctx, rank, status, lang)
		select {
		case g.adviceCh <- text:
		default:
		}
	}()
}

// Update handles input, the driver tick and one simulation frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		if g.drv.Running() {
			g.drv.Stop()
		} else {
			g.drvStep.Reset()
			g.drv.Start()
		}
	}

	if d := manualAdjust(); d != 0 {
		// Manual override: direct rank input stops the driver.
		g.drv.Stop()
		g.applyRank(g.rank + d)
	}

	if g.drv.Running() && g.drvStep.ShouldStep() {
		g.applyRank(g.drv.Tick(g.rank))
	}

	select {
	case text := <-g.adviceCh:
		g.advice = text
	default:
	}

	g.overlay.Update()
	g.fld.Step(g.rank, g.clock.Seconds())
	return nil
}

func manualAdjust() int {
	d := 0
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		d++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		d--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		d += 10
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		d -= 10
	}
	return d
}

// Draw renders field, chart and HUD. Particle update has already run this
// frame, so links are computed against current positions.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Paint(screen, g.fld, g.rank)
	g.overlay.Draw(screen, g.fld)

	if g.fieldH > chartHeight+2*chartMargin && g.fieldW > chartWidth+2*chartMargin {
		cy := float64(g.fieldH - chartHeight - chartMargin)
		g.curve.Paint(screen, g.spectrum, g.rank, chartMargin, cy)
	}

	g.hud.Draw(screen, g.fieldW, g.fieldH, g.rank, g.status, g.metrics, g.advice)
}

// Layout tracks the window size; a dimension change reseeds the particle
// population for the new field bounds.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	fw := outsideWidth - hudWidth
	if fw < 0 {
		fw = 0
	}
	fh := outsideHeight
	if fw != g.fieldW || fh != g.fieldH {
		g.fieldW, g.fieldH = fw, fh
		g.fld.Resize(float64(fw), float64(fh))
	}
	return outsideWidth, outsideHeight
}
