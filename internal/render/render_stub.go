//go:build !ebiten

package render

// FieldPainter is a no-op placeholder for headless builds.
type FieldPainter struct{}

// Paint is a no-op in the headless build.
func (*FieldPainter) Paint(any, any, int) {}

// CurvePainter is a no-op placeholder for headless builds.
type CurvePainter struct{}

// NewCurvePainter returns nil in the headless build.
func NewCurvePainter(int, int) *CurvePainter { return nil }

// Paint is a no-op in the headless build.
func (*CurvePainter) Paint(any, any, int, float64, float64) {}
