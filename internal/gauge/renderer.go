package gauge

import (
	"github.com/rs/zerolog"

	"github.com/econum/cableviz/internal/impact"
)

// State is the position of a Renderer in its draw cycle.
type State int

// Draw cycle states, in the only order a cycle may visit them.
const (
	StateIdle State = iota
	StateCleared
	StateBackgroundArcDrawn
	StateValueArcDrawn
	StateTicksDrawn
	StateLabelDrawn
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCleared:
		return "cleared"
	case StateBackgroundArcDrawn:
		return "background-arc-drawn"
	case StateValueArcDrawn:
		return "value-arc-drawn"
	case StateTicksDrawn:
		return "ticks-drawn"
	case StateLabelDrawn:
		return "label-drawn"
	default:
		return "unknown"
	}
}

// Surface is a 2D drawing target sized in its own units.
type Surface interface {
	Clear()
	Arc(cx, cy, radius, start, end, width float64, color string)
	Line(x1, y1, x2, y2, width float64, color string)
	Text(x, y float64, text, font, color string)
	Size() (width, height float64)
}

// SurfaceSource hands out a Surface for exclusive use during one draw cycle.
// Acquire reports false when no surface is available yet.
type SurfaceSource interface {
	Acquire() (Surface, bool)
	Release(Surface)
}

// Detacher is implemented by sources that must be told the gauge is gone.
type Detacher interface {
	Detach()
}

// Layout computes a Geometry for a surface size.
type Layout func(width, height float64) Geometry

// Option configures a Renderer.
type Option func(*Renderer)

// WithClassifier overrides the temperature thresholds.
func WithClassifier(c *impact.TemperatureClassifier) Option {
	return func(r *Renderer) { r.planner.Classifier = c }
}

// WithLayout overrides Fit.
func WithLayout(l Layout) Option {
	return func(r *Renderer) { r.layout = l }
}

// WithLogger sets the logger for skipped or completed cycles.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// Renderer draws plans on surfaces obtained from a SurfaceSource. It is not
// safe for concurrent use; callers serialise renders on the UI loop.
type Renderer struct {
	planner Planner
	source  SurfaceSource
	layout  Layout
	logger  zerolog.Logger

	state  State
	cycle  []State
	closed bool
}

// NewRenderer returns a Renderer for spec drawing on surfaces from source.
func NewRenderer(source SurfaceSource, spec Spec, opts ...Option) (*Renderer, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	r := &Renderer{
		planner: Planner{Spec: spec},
		source:  source,
		layout:  Fit,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// State returns the current state. Outside Render it is always StateIdle.
func (r *Renderer) State() State { return r.state }

// LastCycle returns the states visited by the last completed Render,
// starting and ending with StateIdle. It is nil if no render has drawn.
func (r *Renderer) LastCycle() []State {
	out := make([]State, len(r.cycle))
	copy(out, r.cycle)
	if len(out) == 0 {
		return nil
	}
	return out
}

// Render purges the surface and draws v. It returns false without drawing
// when the renderer is closed or the source has no surface to give.
func (r *Renderer) Render(v float64) (Plan, bool) {
	if r.closed || r.source == nil {
		return Plan{}, false
	}
	surface, ok := r.source.Acquire()
	if !ok || surface == nil {
		r.logger.Debug().
			Str("component", "gauge").
			Str("operation", "render").
			Msg("surface unavailable, skipping draw")
		return Plan{}, false
	}
	defer r.source.Release(surface)

	plan := r.planner.Plan(v, r.layout(surface.Size()))

	r.cycle = append(r.cycle[:0], StateIdle)
	i := 0
	for phase := StateCleared; phase <= StateLabelDrawn; phase++ {
		r.state = phase
		r.cycle = append(r.cycle, phase)
		for ; i < len(plan.Commands) && plan.Commands[i].Phase == phase; i++ {
			Execute(surface, plan.Commands[i])
		}
	}
	r.state = StateIdle
	r.cycle = append(r.cycle, StateIdle)

	r.logger.Debug().
		Str("component", "gauge").
		Str("operation", "render").
		Float64("value", v).
		Str("status", plan.Status.String()).
		Int("commands", len(plan.Commands)).
		Msg("gauge drawn")

	return plan, true
}

// Close detaches the renderer from its source. Later renders are no-ops.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.closed = true
	if d, ok := r.source.(Detacher); ok {
		d.Detach()
	}
}

// Execute issues one command on s.
func Execute(s Surface, c Command) {
	switch c.Op {
	case OpClear:
		s.Clear()
	case OpArc:
		s.Arc(c.X, c.Y, c.Radius, c.Start, c.End, c.Width, c.Color)
	case OpLine:
		s.Line(c.X, c.Y, c.X2, c.Y2, c.Width, c.Color)
	case OpText:
		s.Text(c.X, c.Y, c.Text, c.Font, c.Color)
	}
}
