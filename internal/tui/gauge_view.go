package tui

import (
	"github.com/rs/zerolog"

	"github.com/econum/cableviz/internal/canvas"
	"github.com/econum/cableviz/internal/gauge"
	"github.com/econum/cableviz/internal/impact"
)

// Logical size of the gauge raster, the reference canvas of the dashboard.
const (
	gaugeLogicalWidth  = 300
	gaugeLogicalHeight = 150
)

// gaugeView owns a raster and the renderer drawing on it.
type gaugeView struct {
	raster   *canvas.Raster
	mount    *canvas.Mount
	renderer *gauge.Renderer
}

func newGaugeView(cols, rows int, spec gauge.Spec, classifier *impact.TemperatureClassifier,
	logger zerolog.Logger,
) (*gaugeView, error) {
	raster := canvas.NewRaster(cols, rows, gaugeLogicalWidth, gaugeLogicalHeight)
	mount := canvas.NewMount(raster)
	opts := []gauge.Option{gauge.WithLayout(gauge.FitOutsideLabels), gauge.WithLogger(logger)}
	if classifier != nil {
		opts = append(opts, gauge.WithClassifier(classifier))
	}
	r, err := gauge.NewRenderer(mount, spec, opts...)
	if err != nil {
		return nil, err
	}
	return &gaugeView{raster: raster, mount: mount, renderer: r}, nil
}

// draw renders v and returns the plan with the raster text. ok is false
// when the surface could not be acquired.
func (g *gaugeView) draw(v float64, colorize bool) (gauge.Plan, string, bool) {
	plan, ok := g.renderer.Render(v)
	if !ok {
		return plan, "", false
	}
	return plan, g.raster.Render(colorize), true
}

func (g *gaugeView) close() {
	g.renderer.Close()
}
