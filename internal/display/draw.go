package display

import (
	"math"
)

// labelPad is the distance between a marker line and its label.
const labelPad = 3

// visibleColumns clips [x1, x2] to the plot area and to the pixel columns
// showing the energy interval [minE, maxE].
func (p *Painter) visibleColumns(x1, x2 int, minE, maxE float64) (int, int) {
	x1 = max(x1, p.xBase)
	x2 = min(x2, p.xBase+p.width)
	if !math.IsInf(minE, -1) {
		x1 = max(x1, p.EtoX(minE))
	}
	if !math.IsInf(maxE, 1) {
		x2 = min(x2, p.EtoX(maxE))
	}
	return x1, x2
}

// countsAtPixel returns the counts shown in pixel column x.
func (p *Painter) countsAtPixel(ds *DisplaySpec, x int) float64 {
	return ds.CountsAt(p.PixelToE(x))
}

// DrawSpectrum draws the columns x1 to x2 of ds in the current view mode.
func (p *Painter) DrawSpectrum(ds *DisplaySpec, x1, x2 int) {
	if p.canvas == nil || ds.Histogram().NBins() == 0 {
		return
	}
	x1, x2 = p.visibleColumns(x1, x2, ds.MinE(), ds.MaxE())
	if x1 > x2 {
		return
	}

	top := p.yBase - p.height
	bottom := p.yBase
	c := ds.Color()

	switch p.viewMode {
	case ViewSolid:
		for x := x1; x <= x2; x++ {
			y := max(p.CtoY(p.countsAtPixel(ds, x)), top)
			if y <= bottom {
				p.canvas.DrawLine(x, bottom, x, y, c)
			}
		}
	case ViewDotted:
		for x := x1; x <= x2; x++ {
			y := p.CtoY(p.countsAtPixel(ds, x))
			if y >= top && y <= bottom {
				p.canvas.DrawPoint(x, y, c)
			}
		}
	default:
		// a partial repaint continues the outline from the column before
		prev := x1
		if lo, _ := p.visibleColumns(p.xBase, x1, ds.MinE(), ds.MaxE()); lo < x1 {
			prev = x1 - 1
		}
		last := clampInt(p.CtoY(p.countsAtPixel(ds, prev)), top, bottom)
		for x := x1; x <= x2; x++ {
			y := clampInt(p.CtoY(p.countsAtPixel(ds, x)), top, bottom)
			p.canvas.DrawLine(x, last, x, y, c)
			last = y
		}
	}
}

// DrawFunction samples df at every column from x1 to x2 and joins the
// samples with straight lines.
func (p *Painter) DrawFunction(df *DisplayFunc, x1, x2 int) {
	if p.canvas == nil {
		return
	}
	x1, x2 = p.visibleColumns(x1, x2, df.MinE(), df.MaxE())
	if x1 > x2 {
		return
	}

	top := p.yBase - p.height
	bottom := p.yBase
	c := df.Color()

	lastY, lastOK := 0, false
	if lo, _ := p.visibleColumns(p.xBase, x1, df.MinE(), df.MaxE()); lo < x1 {
		if v := df.Value(p.PixelToE(x1 - 1)); !math.IsNaN(v) && !math.IsInf(v, 0) {
			lastY, lastOK = p.CtoY(v), true
		}
	}
	for x := x1; x <= x2; x++ {
		v := df.Value(p.PixelToE(x))
		if math.IsNaN(v) || math.IsInf(v, 0) {
			lastOK = false
			continue
		}
		y := p.CtoY(v)
		switch {
		case !lastOK:
			if y >= top && y <= bottom {
				p.canvas.DrawPoint(x, y, c)
			}
		case (lastY < top && y < top) || (lastY > bottom && y > bottom):
			// segment entirely outside
		default:
			p.canvas.DrawLine(x-1, clampInt(lastY, top, bottom), x, clampInt(y, top, bottom), c)
		}
		lastY, lastOK = y, true
	}
}

// DrawXMarker draws m if its position falls within columns x1 to x2.
func (p *Painter) DrawXMarker(m *XMarker, x1, x2 int) {
	if p.canvas == nil {
		return
	}
	x := p.EtoX(m.E)
	if x < x1 || x > x2 || x < p.xBase || x > p.xBase+p.width {
		return
	}
	top := p.yBase - p.height
	p.canvas.DrawLine(x, p.yBase, x, top, m.Color)
	if m.Label != "" {
		p.canvas.DrawString(x+labelPad, top+labelPad, m.Label, AlignLeft, AlignTop, m.Color)
	}
}

// DrawYMarker draws the part of m that falls within columns x1 to x2.
func (p *Painter) DrawYMarker(m *YMarker, x1, x2 int) {
	if p.canvas == nil {
		return
	}
	y := p.CtoY(m.C)
	if y < p.yBase-p.height || y > p.yBase {
		return
	}
	x1 = max(x1, p.xBase)
	x2 = min(x2, p.xBase+p.width)
	if x1 > x2 {
		return
	}
	p.canvas.DrawLine(x1, y, x2, y, m.Color)
	if lx := p.xBase + labelPad; m.Label != "" && lx >= x1 && lx <= x2 {
		p.canvas.DrawString(lx, y-labelPad, m.Label, AlignLeft, AlignBottom, m.Color)
	}
}

// YAutoZoom returns the visible count region that shows the tallest bin
// of ds inside the current x window with the configured headroom above
// it. The result is not positive when nothing of ds is visible above
// yOffset.
func (p *Painter) YAutoZoom(ds *DisplaySpec) float64 {
	if ds.Histogram().NBins() == 0 {
		return 0
	}
	x1, x2 := p.visibleColumns(p.xBase, p.xBase+p.width, ds.MinE(), ds.MaxE())
	if x1 > x2 {
		return 0
	}
	b1, b2 := ds.binRange(p.PixelToE(x1), p.PixelToE(x2))
	ymax := ds.Histogram().MaxInRange(b1, b2)

	var top float64
	if p.logScale {
		top = InvModLog(ModLog(ymax) * p.headroom)
	} else {
		top = ymax * p.headroom
	}
	return top - p.yOffset
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
