package display

import (
	"fmt"
	"image/color"
	"math"
)

// ViewMode selects how spectra are drawn.
type ViewMode int

const (
	ViewSolid ViewMode = iota + 1
	ViewHollow
	ViewDotted
)

func (m ViewMode) String() string {
	switch m {
	case ViewSolid:
		return "solid"
	case ViewHollow:
		return "hollow"
	case ViewDotted:
		return "dotted"
	default:
		return "unknown"
	}
}

// ParseViewMode returns the mode named s.
func ParseViewMode(s string) (ViewMode, error) {
	for _, m := range []ViewMode{ViewSolid, ViewHollow, ViewDotted} {
		if m.String() == s {
			return m, nil
		}
	}
	return ViewHollow, fmt.Errorf("unknown view mode %q", s)
}

// DefaultAutoZoomHeadroom is the factor by which YAutoZoom raises the
// tallest visible count. On a log scale it is applied in ModLog space.
const DefaultAutoZoomHeadroom = 1.05

// pixelLimit bounds pixel coordinates before conversion to int.
const pixelLimit = 1 << 24

// Painter converts between energy/count space and pixel space and draws
// single display objects. It knows nothing about ids or collections; the
// Viewport keeps xVisibleRegion and the plot height positive.
type Painter struct {
	canvas    Canvas
	axisColor color.NRGBA

	xBase, yBase  int
	width, height int

	xZoom, yZoom                   float64
	xOffset, yOffset               float64
	xVisibleRegion, yVisibleRegion float64

	logScale bool
	viewMode ViewMode
	headroom float64
}

// NewPainter returns a Painter with a 1x1 plot area showing
// [0, 100] in both directions.
func NewPainter() *Painter {
	p := &Painter{
		axisColor:      color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		width:          1,
		height:         1,
		xVisibleRegion: 100,
		yVisibleRegion: 100,
		viewMode:       ViewHollow,
		headroom:       DefaultAutoZoomHeadroom,
	}
	p.updateXZoom()
	p.UpdateYZoom()
	return p
}

func (p *Painter) SetCanvas(c Canvas) { p.canvas = c }
func (p *Painter) SetAxisColor(c color.NRGBA) { p.axisColor = c }
func (p *Painter) AxisColor() color.NRGBA { return p.axisColor }
func (p *Painter) SetViewMode(m ViewMode) { p.viewMode = m }
func (p *Painter) ViewMode() ViewMode { return p.viewMode }
func (p *Painter) SetAutoZoomHeadroom(h float64) { p.headroom = h }

// SetBasePoint sets the pixel position of (xOffset, yOffset), which is the
// bottom-left corner of the plot area.
func (p *Painter) SetBasePoint(x, y int) {
	p.xBase = x
	p.yBase = y
}

func (p *Painter) BaseX() int { return p.xBase }
func (p *Painter) BaseY() int { return p.yBase }

// SetSize sets the plot area size. The visible regions are kept, so both
// zoom factors change.
func (p *Painter) SetSize(w, h int) {
	p.width = w
	p.height = h
	p.updateXZoom()
	p.UpdateYZoom()
}

func (p *Painter) Width() int { return p.width }
func (p *Painter) Height() int { return p.height }

func (p *Painter) SetXVisibleRegion(r float64) {
	p.xVisibleRegion = r
	p.updateXZoom()
}

func (p *Painter) SetYVisibleRegion(r float64) {
	p.yVisibleRegion = r
	p.UpdateYZoom()
}

func (p *Painter) XVisibleRegion() float64 { return p.xVisibleRegion }
func (p *Painter) YVisibleRegion() float64 { return p.yVisibleRegion }

func (p *Painter) SetXOffset(o float64) { p.xOffset = o }

func (p *Painter) SetYOffset(o float64) {
	p.yOffset = o
	p.UpdateYZoom()
}

func (p *Painter) XOffset() float64 { return p.xOffset }
func (p *Painter) YOffset() float64 { return p.yOffset }

func (p *Painter) SetLogScale(l bool) {
	p.logScale = l
	p.UpdateYZoom()
}

func (p *Painter) LogScale() bool { return p.logScale }

func (p *Painter) XZoom() float64 { return p.xZoom }
func (p *Painter) YZoom() float64 { return p.yZoom }

func (p *Painter) updateXZoom() {
	p.xZoom = float64(p.width) / p.xVisibleRegion
}

// UpdateYZoom recomputes yZoom from the visible count region, the count
// offset, the scale mode and the plot height.
func (p *Painter) UpdateYZoom() {
	span := p.yVisibleRegion
	if p.logScale {
		span = ModLog(p.yOffset+p.yVisibleRegion) - ModLog(p.yOffset)
		if span <= 0 {
			// the region vanished in ModLog rounding
			span = p.yVisibleRegion
		}
	}
	p.yZoom = float64(p.height) / span
}

// IsWithin reports whether pixel (x, y) lies inside the plot area.
func (p *Painter) IsWithin(x, y int) bool {
	return x >= p.xBase && x <= p.xBase+p.width &&
		y >= p.yBase-p.height && y <= p.yBase
}

// XtoE converts a pixel column to energy.
func (p *Painter) XtoE(x float64) float64 {
	return (x-float64(p.xBase))/p.xZoom + p.xOffset
}

// PixelToE is XtoE for an integer pixel column.
func (p *Painter) PixelToE(x int) float64 {
	return p.XtoE(float64(x))
}

// EtoX converts an energy to the pixel column showing it.
func (p *Painter) EtoX(e float64) int {
	return roundPixel((e-p.xOffset)*p.xZoom + float64(p.xBase))
}

func (p *Painter) DXtoDE(dx float64) float64 { return dx / p.xZoom }
func (p *Painter) DEtoDX(de float64) float64 { return de * p.xZoom }

// CtoY converts a count value to the pixel row showing it.
func (p *Painter) CtoY(c float64) int {
	if math.IsNaN(c) {
		return p.yBase + 1
	}
	var v float64
	if p.logScale {
		v = ModLog(c) - ModLog(p.yOffset)
	} else {
		v = c - p.yOffset
	}
	return roundPixel(float64(p.yBase) - v*p.yZoom)
}

// YtoC converts a pixel row to a count value.
func (p *Painter) YtoC(y int) float64 {
	v := float64(p.yBase-y) / p.yZoom
	if p.logScale {
		return InvModLog(v + ModLog(p.yOffset))
	}
	return v + p.yOffset
}

// XOffsetDelta returns the change of xOffset that keeps the energy under
// pixel x in place when the visible region is divided by f.
func (p *Painter) XOffsetDelta(x int, f float64) float64 {
	return (p.PixelToE(x) - p.xOffset) * (1 - 1/f)
}

// YOffsetDelta is XOffsetDelta for the count axis. On a log scale the
// zoom happens in ModLog space.
func (p *Painter) YOffsetDelta(y int, f float64) float64 {
	if !p.logScale {
		return (p.YtoC(y) - p.yOffset) * (1 - 1/f)
	}
	l0 := ModLog(p.yOffset)
	lc := ModLog(p.YtoC(y))
	return InvModLog(lc-(lc-l0)/f) - p.yOffset
}

// YZoomRegion returns the visible count region that results from dividing
// the current one by f around pixel row y. Together with YOffsetDelta it
// keeps the count under y fixed on both scales.
func (p *Painter) YZoomRegion(y int, f float64) float64 {
	if !p.logScale {
		return p.yVisibleRegion / f
	}
	l0 := ModLog(p.yOffset)
	l1 := ModLog(p.yOffset + p.yVisibleRegion)
	lc := ModLog(p.YtoC(y))
	n0 := lc - (lc-l0)/f
	n1 := n0 + (l1-l0)/f
	return InvModLog(n1) - InvModLog(n0)
}

func roundPixel(v float64) int {
	v = math.Ceil(v - 0.5)
	switch {
	case v > pixelLimit:
		return pixelLimit
	case v < -pixelLimit:
		return -pixelLimit
	}
	return int(v)
}
