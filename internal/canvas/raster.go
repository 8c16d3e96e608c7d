// Package canvas provides a terminal drawing surface for the gauge: a
// braille dot raster (2x4 dots per cell) with a text overlay, colourised
// with lipgloss when printed.
package canvas

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	dotsPerCol  = 2
	dotsPerRow  = 4
	brailleBase = 0x2800
)

// braille bit for the dot at (dx, dy) inside a cell.
var brailleBits = [dotsPerCol][dotsPerRow]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

type glyph struct {
	r     rune
	color string
}

// Raster is a cols x rows terminal surface addressed in logical units.
// Logical coordinates are scaled onto dots independently on each axis, so a
// 300x150 logical raster matches the reference gauge canvas.
type Raster struct {
	cols, rows         int
	logicalW, logicalH float64
	sx, sy             float64 // dots per logical unit

	bits       [][]rune
	colors     [][]string
	text       [][]glyph
	primitives int
}

// NewRaster returns a blank raster. Non-positive sizes are raised to 1.
func NewRaster(cols, rows int, logicalW, logicalH float64) *Raster {
	cols = max(cols, 1)
	rows = max(rows, 1)
	if !(logicalW > 0) {
		logicalW = float64(cols * dotsPerCol)
	}
	if !(logicalH > 0) {
		logicalH = float64(rows * dotsPerRow)
	}
	r := &Raster{
		cols:     cols,
		rows:     rows,
		logicalW: logicalW,
		logicalH: logicalH,
		sx:       float64(cols*dotsPerCol) / logicalW,
		sy:       float64(rows*dotsPerRow) / logicalH,
	}
	r.Clear()
	return r
}

// Size returns the logical size.
func (r *Raster) Size() (float64, float64) { return r.logicalW, r.logicalH }

// Cells returns the terminal size in cells.
func (r *Raster) Cells() (cols, rows int) { return r.cols, r.rows }

// Primitives returns how many primitives were drawn since the last Clear.
func (r *Raster) Primitives() int { return r.primitives }

// Clear drops every dot and glyph.
func (r *Raster) Clear() {
	r.bits = make([][]rune, r.rows)
	r.colors = make([][]string, r.rows)
	r.text = make([][]glyph, r.rows)
	for i := range r.rows {
		r.bits[i] = make([]rune, r.cols)
		r.colors[i] = make([]string, r.cols)
		r.text[i] = make([]glyph, r.cols)
	}
	r.primitives = 0
}

// Arc strokes the circular arc between start and end (radians, y up) with
// the given stroke width.
func (r *Raster) Arc(cx, cy, radius, start, end, width float64, color string) {
	r.primitives++
	lo, hi := math.Min(start, end), math.Max(start, end)
	if hi-lo < 1e-12 || !(radius > 0) {
		return
	}
	unit := r.logicalPerDot()
	half := math.Max(width/2, 0)
	for rr := radius - half; rr <= radius+half+1e-9; rr += unit / 2 {
		if rr <= 0 {
			continue
		}
		step := unit / 2 / rr
		for a := lo; a <= hi+1e-12; a += step {
			r.plot(cx+rr*math.Cos(a), cy-rr*math.Sin(a), color)
		}
		r.plot(cx+rr*math.Cos(hi), cy-rr*math.Sin(hi), color)
	}
}

// Line strokes a segment. Widths of more than a dot are drawn as parallel
// segments spread along the normal.
func (r *Raster) Line(x1, y1, x2, y2, width float64, color string) {
	r.primitives++
	unit := r.logicalPerDot()
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)

	var nx, ny float64
	if length > 0 {
		nx, ny = -dy/length, dx/length
	}
	passes := max(1, int(math.Round(width/unit)))
	steps := int(math.Ceil(length/unit*2)) + 1

	for p := range passes {
		off := (float64(p) - float64(passes-1)/2) * unit
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			r.plot(x1+dx*t+nx*off, y1+dy*t+ny*off, color)
		}
	}
}

// Text writes s centred on (x, y). Glyphs replace dots in their cells and
// are kept inside the raster.
func (r *Raster) Text(x, y float64, s, _, color string) {
	r.primitives++
	runes := []rune(s)
	if len(runes) == 0 {
		return
	}
	row := clamp(int(math.Floor(y*r.sy/dotsPerRow)), 0, r.rows-1)
	col := int(math.Floor(x*r.sx/dotsPerCol)) - len(runes)/2
	col = clamp(col, 0, max(r.cols-len(runes), 0))
	for i, c := range runes {
		if col+i >= r.cols {
			break
		}
		r.text[row][col+i] = glyph{r: c, color: color}
	}
}

// String returns the raster without colour.
func (r *Raster) String() string {
	return r.render(false)
}

// Render returns the raster, colourised with lipgloss when colorize is set.
func (r *Raster) Render(colorize bool) string {
	return r.render(colorize)
}

func (r *Raster) render(colorize bool) string {
	var b strings.Builder
	for row := range r.rows {
		var run strings.Builder
		runColor := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if colorize && runColor != "" {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runColor)).Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for col := range r.cols {
			ch, color := r.cell(row, col)
			if color != runColor {
				flush()
				runColor = color
			}
			run.WriteRune(ch)
		}
		flush()
		if row < r.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (r *Raster) cell(row, col int) (rune, string) {
	if g := r.text[row][col]; g.r != 0 {
		return g.r, g.color
	}
	if bits := r.bits[row][col]; bits != 0 {
		return brailleBase + bits, r.colors[row][col]
	}
	return ' ', ""
}

func (r *Raster) plot(x, y float64, color string) {
	dx := int(math.Floor(x * r.sx))
	dy := int(math.Floor(y * r.sy))
	if dx < 0 || dy < 0 || dx >= r.cols*dotsPerCol || dy >= r.rows*dotsPerRow {
		return
	}
	row, col := dy/dotsPerRow, dx/dotsPerCol
	r.bits[row][col] |= brailleBits[dx%dotsPerCol][dy%dotsPerRow]
	r.colors[row][col] = color
}

func (r *Raster) logicalPerDot() float64 {
	return 1 / math.Max(r.sx, r.sy)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
