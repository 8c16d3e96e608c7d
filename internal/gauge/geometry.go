package gauge

import "math"

// Reference canvas the stroke sizes are expressed against.
const (
	referenceSize      = 150.0
	radiusRatio        = 0.8
	referenceLineWidth = 20.0
	referenceTickInset = 10.0
	referenceMajorLen  = 15.0
	referenceMinorLen  = 10.0
	referenceMajorW    = 2.0
	referenceMinorW    = 1.0
	referenceLabelGap  = 15.0
)

// Geometry is the layout of a gauge on a surface, in surface units.
// The centre sits on the bottom edge so the half circle fills the surface.
type Geometry struct {
	Width, Height    float64
	CenterX, CenterY float64
	Radius           float64
	LineWidth        float64

	// TickInner is the radius ticks start from; ticks extend inwards.
	TickInner   float64
	MajorLength float64
	MinorLength float64
	MajorWidth  float64
	MinorWidth  float64

	// LabelRadius is the distance from the centre to tick label anchors.
	LabelRadius float64
}

// Fit lays a gauge out on a width x height surface: radius is 80% of half
// the smaller side and strokes scale with the 300x150 reference canvas.
func Fit(width, height float64) Geometry {
	side := math.Min(width, height)
	scale := side / referenceSize
	radius := side / 2 * radiusRatio

	g := Geometry{
		Width:       width,
		Height:      height,
		CenterX:     width / 2,
		CenterY:     height,
		Radius:      radius,
		LineWidth:   referenceLineWidth * scale,
		TickInner:   radius - referenceTickInset*scale,
		MajorLength: referenceMajorLen * scale,
		MinorLength: referenceMinorLen * scale,
		MajorWidth:  referenceMajorW * scale,
		MinorWidth:  referenceMinorW * scale,
	}
	g.LabelRadius = g.TickInner - g.MajorLength - referenceLabelGap*scale
	return g
}

// FitOutsideLabels is Fit with tick labels moved outside the arc, for
// surfaces whose glyphs are large relative to the gauge (terminal cells).
func FitOutsideLabels(width, height float64) Geometry {
	g := Fit(width, height)
	g.LabelRadius = g.Radius + g.LineWidth/2 + referenceLabelGap*g.LineWidth/referenceLineWidth
	return g
}

// Point returns the surface coordinates of polar (radius, theta) around the
// centre. Angles use mathematical orientation and the surface y axis grows
// downwards, so θ = π/2 is straight above the centre.
func (g Geometry) Point(radius, theta float64) (x, y float64) {
	return g.CenterX + radius*math.Cos(theta), g.CenterY - radius*math.Sin(theta)
}
