package gauge

import (
	"math"

	"github.com/econum/cableviz/internal/impact"
	"github.com/econum/cableviz/internal/units"
)

// Gauge colours.
const (
	ColorBackground = "#e5e7eb"
	ColorDanger     = "#ef4444"
	ColorWarning    = "#f97316"
	ColorSafe       = "#22c55e"
	ColorTick       = "#6b7280"
	ColorLabel      = "#1f2937"
)

// Fonts passed to Surface.Text. Surfaces that cannot honour them ignore them.
const (
	FontValue = "bold 24px Arial"
	FontTick  = "12px Arial"
)

// LabelDecimals is the precision of the centre label.
const LabelDecimals = 1

// Op is the kind of a drawing command.
type Op int

// Drawing operations.
const (
	OpClear Op = iota
	OpArc
	OpLine
	OpText
)

func (o Op) String() string {
	switch o {
	case OpClear:
		return "clear"
	case OpArc:
		return "arc"
	case OpLine:
		return "line"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Command is one drawing primitive. Which fields are meaningful depends on Op:
//
//	OpArc:  X, Y centre; Radius; Start, End angles; Width; Color
//	OpLine: X, Y to X2, Y2; Width; Color
//	OpText: X, Y anchor (centred); Text; Font; Color
//
// Arc angles follow Geometry.Point. The stroke covers every angle between
// Start and End, whichever is larger.
type Command struct {
	Op    Op
	Phase State

	X, Y   float64
	X2, Y2 float64

	Radius     float64
	Start, End float64

	Width float64
	Color string
	Text  string
	Font  string
}

// Plan is the full drawing of one value.
type Plan struct {
	Value    float64
	Angle    float64
	Status   impact.TemperatureStatus
	Color    string
	Label    string
	Commands []Command
}

// StatusColor returns the value arc colour for a status.
func StatusColor(s impact.TemperatureStatus) string {
	switch s {
	case impact.StatusDanger:
		return ColorDanger
	case impact.StatusWarning:
		return ColorWarning
	default:
		return ColorSafe
	}
}

// Planner computes gauge plans. The zero value uses DefaultSpec and the
// default temperature thresholds.
type Planner struct {
	Spec       Spec
	Classifier *impact.TemperatureClassifier
}

// Plan computes the drawing commands for v on geo.
//
// A NaN value produces a zero-length value arc at π and an "N/A" label.
func (p Planner) Plan(v float64, geo Geometry) Plan {
	spec := p.Spec
	if spec.DomainMax == 0 {
		spec = DefaultSpec()
	}
	classifier := p.Classifier
	if classifier == nil {
		classifier = impact.DefaultTemperatureClassifier()
	}

	status := classifier.Classify(v)
	color := StatusColor(status)

	mapped := v
	if math.IsNaN(mapped) {
		mapped = 0
	} else if spec.Clamp {
		mapped = math.Max(0, math.Min(spec.DomainMax, mapped))
	}
	theta := Angle(mapped, spec.DomainMax)

	label := units.FormatTemperature(v, LabelDecimals)

	cmds := make([]Command, 0, 4+2*len(spec.Ticks))
	cmds = append(cmds,
		Command{Op: OpClear, Phase: StateCleared},
		Command{
			Op: OpArc, Phase: StateBackgroundArcDrawn,
			X: geo.CenterX, Y: geo.CenterY, Radius: geo.Radius,
			Start: math.Pi, End: 0,
			Width: geo.LineWidth, Color: ColorBackground,
		},
		Command{
			Op: OpArc, Phase: StateValueArcDrawn,
			X: geo.CenterX, Y: geo.CenterY, Radius: geo.Radius,
			Start: math.Pi, End: theta,
			Width: geo.LineWidth, Color: color,
		},
	)

	for _, t := range spec.Ticks {
		a := Angle(t.Value, spec.DomainMax)
		length, width := geo.MinorLength, geo.MinorWidth
		if t.Major {
			length, width = geo.MajorLength, geo.MajorWidth
		}
		x1, y1 := geo.Point(geo.TickInner, a)
		x2, y2 := geo.Point(geo.TickInner-length, a)
		cmds = append(cmds, Command{
			Op: OpLine, Phase: StateTicksDrawn,
			X: x1, Y: y1, X2: x2, Y2: y2,
			Width: width, Color: ColorTick,
		})
		if t.Label != "" {
			tx, ty := geo.Point(geo.LabelRadius, a)
			cmds = append(cmds, Command{
				Op: OpText, Phase: StateTicksDrawn,
				X: tx, Y: ty, Text: t.Label, Font: FontTick, Color: ColorTick,
			})
		}
	}

	cmds = append(cmds, Command{
		Op: OpText, Phase: StateLabelDrawn,
		X: geo.CenterX, Y: geo.CenterY - geo.Radius/2,
		Text: label, Font: FontValue, Color: ColorLabel,
	})

	return Plan{
		Value:    v,
		Angle:    theta,
		Status:   status,
		Color:    color,
		Label:    label,
		Commands: cmds,
	}
}

// Compute plans v with spec and the default thresholds.
func Compute(v float64, spec Spec, geo Geometry) Plan {
	return Planner{Spec: spec}.Plan(v, geo)
}
