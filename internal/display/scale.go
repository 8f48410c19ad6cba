package display

import (
	"image"
	"math"
	"strconv"
)

const (
	// MinTicDistance is the smallest distance between major tics, in pixels.
	MinTicDistance = 50
	// MinLogTicDistance is the smallest distance between labelled major
	// tics and between minor tics on a log scale, in pixels.
	MinLogTicDistance   = 15
	minMinorTicDistance = 5

	majorTicLength = 9
	minorTicLength = 5
	labelGap       = 3

	// xScaleHeight is the height of the strip below the plot that holds
	// the X axis and its labels.
	xScaleHeight = 28
	// xScaleOverhang is how far labels may reach beyond the plot edges.
	xScaleOverhang = 40

	maxTicIndex = 1 << 52
)

// TicDistance returns the smallest spacing of the form {1, 2, 5} * 10^n
// that is at least raw, together with the minor tic spacing and the
// number of minor intervals per major one.
func TicDistance(raw float64) (major, minor float64, n int) {
	if !(raw > 0) || math.IsInf(raw, 1) {
		return 1, 0.2, 5
	}
	exp := math.Pow(10, math.Floor(math.Log10(raw)))
	// Log10 rounding can leave exp one decade off
	if exp > raw {
		exp /= 10
	} else if exp*10 <= raw {
		exp *= 10
	}

	switch {
	case raw <= exp:
		return exp, exp / 5, 5
	case raw <= 2*exp:
		return 2 * exp, exp / 2, 4
	case raw <= 5*exp:
		return 5 * exp, exp, 5
	default:
		return 10 * exp, 2 * exp, 5
	}
}

// ticRange returns the indices of the first and last multiple of step
// inside [a, b]. It fails when the multiples cannot be counted in int64,
// which happens when the region is tiny compared to its offset.
func ticRange(a, b, step float64) (int64, int64, bool) {
	lo, hi := math.Ceil(a/step), math.Floor(b/step)
	if math.IsNaN(lo) || math.IsNaN(hi) || math.Abs(lo) > maxTicIndex || math.Abs(hi) > maxTicIndex {
		return 0, 0, false
	}
	return int64(lo), int64(hi), true
}

func formatTic(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// DrawXScale draws the energy axis below the plot for columns x1 to x2.
func (p *Painter) DrawXScale(x1, x2 int) {
	if p.canvas == nil {
		return
	}
	y := p.yBase + 2
	p.canvas.DrawLine(x1, y, x2, y, p.axisColor)

	_, minor, n := TicDistance(MinTicDistance / p.xZoom)
	i1, i2, ok := ticRange(p.PixelToE(x1), p.PixelToE(x2), minor)
	if !ok {
		return
	}
	for i := i1; i <= i2; i++ {
		e := float64(i) * minor
		x := p.EtoX(e)
		if i%int64(n) == 0 {
			p.canvas.DrawLine(x, y, x, y+majorTicLength, p.axisColor)
			p.canvas.DrawString(x, y+majorTicLength+labelGap, formatTic(e), AlignCenter, AlignTop, p.axisColor)
		} else {
			p.canvas.DrawLine(x, y, x, y+minorTicLength, p.axisColor)
		}
	}
}

// ClearXScale clears the strip holding the energy axis.
func (p *Painter) ClearXScale() {
	if p.canvas == nil {
		return
	}
	p.canvas.Clear(image.Rect(
		p.xBase-xScaleOverhang, p.yBase+1,
		p.xBase+p.width+xScaleOverhang+1, p.yBase+1+xScaleHeight))
}

// DrawYScale draws the count axis left of the plot.
func (p *Painter) DrawYScale() {
	if p.canvas == nil {
		return
	}
	x := p.xBase - 2
	p.canvas.DrawLine(x, p.yBase, x, p.yBase-p.height, p.axisColor)
	if p.logScale {
		p.drawYLogScale(x)
	} else {
		p.drawYLinearScale(x)
	}
}

func (p *Painter) drawYLinearScale(x int) {
	_, minor, n := TicDistance(MinTicDistance / p.yZoom)
	i1, i2, ok := ticRange(p.YtoC(p.yBase), p.YtoC(p.yBase-p.height), minor)
	if !ok {
		return
	}
	for i := i1; i <= i2; i++ {
		c := float64(i) * minor
		if i%int64(n) == 0 {
			p.drawYMajorTic(x, c, true)
		} else {
			p.drawYMinorTic(x, c)
		}
	}
}

// drawYLogScale puts major tics at 0 and every power of ten, with minor
// tics at its multiples where there is room for them.
func (p *Painter) drawYLogScale(x int) {
	cMin := p.YtoC(p.yBase)
	cMax := p.YtoC(p.yBase - p.height)

	lastLabel := -2 * pixelLimit
	if cMin <= 0 && cMax >= 0 {
		p.drawYMajorTic(x, 0, true)
		lastLabel = p.CtoY(0)
	}
	if cMax > 0 {
		p.drawYLogDecades(x, 1, math.Max(cMin, 0), cMax, lastLabel)
	}
	if cMin < 0 {
		p.drawYLogDecades(x, -1, math.Max(-cMax, 0), -cMin, lastLabel)
	}
}

func (p *Painter) drawYLogDecades(x int, sign, lo, hi float64, lastLabel int) {
	for k := 0; k <= 308; k++ {
		d := math.Pow(10, float64(k))
		if d > hi {
			break
		}
		if d >= lo {
			y := p.CtoY(sign * d)
			label := abs(y-lastLabel) >= MinLogTicDistance
			p.drawYMajorTic(x, sign*d, label)
			if label {
				lastLabel = y
			}
		}
		if abs(p.CtoY(2*d)-p.CtoY(d)) < minMinorTicDistance {
			continue
		}
		for m := 2; m <= 9; m++ {
			v := float64(m) * d
			if v > hi {
				break
			}
			if v >= lo {
				p.drawYMinorTic(x, sign*v)
			}
		}
	}
}

func (p *Painter) drawYMajorTic(x int, c float64, label bool) {
	y := p.CtoY(c)
	p.canvas.DrawLine(x-majorTicLength, y, x, y, p.axisColor)
	if label {
		p.canvas.DrawString(x-majorTicLength-labelGap, y, formatTic(c), AlignRight, AlignMiddle, p.axisColor)
	}
}

func (p *Painter) drawYMinorTic(x int, c float64) {
	y := p.CtoY(c)
	p.canvas.DrawLine(x-minorTicLength, y, x, y, p.axisColor)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
