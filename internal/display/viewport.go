package display

import (
	"fmt"
	"image"
	"math"
	"strings"
)

const (
	// MinVisibleRegion is the smallest visible region on either axis.
	MinVisibleRegion = 1e-9
	maxVisibleRegion = 1e15

	// DefaultYMinVisibleRegion is the smallest count region auto-scaling
	// will produce.
	DefaultYMinVisibleRegion = 20

	// NotFound is returned by lookups that match nothing.
	NotFound = -1

	defaultMinEnergy = 0
	defaultMaxEnergy = 1000
)

// Status bar parts.
const (
	StatusPosition = 0
	StatusScale    = 1
)

// Viewport owns the displayed spectra, functions and markers together
// with the view state, and redraws them onto a Surface through its
// Painter. Every mutating method takes an update flag; passing false
// batches changes until the next Update.
type Viewport struct {
	painter   *Painter
	surface   Surface
	scrollbar Scrollbar
	statusBar StatusBar
	logf      func(format string, args ...any)

	width, height int

	leftBorder, rightBorder int
	topBorder, bottomBorder int

	xOffset, yOffset               float64
	xVisibleRegion, yVisibleRegion float64
	yMinVisibleRegion              float64
	yAutoScale                     bool

	minEnergy, maxEnergy float64
	scrollMinE           float64

	// stale is set while object changes wait for the next Update
	stale bool

	spectra   Arena[*DisplaySpec]
	functions Arena[*DisplayFunc]
	xMarkers  Arena[*XMarker]
	yMarkers  Arena[*YMarker]

	cursorX, cursorY int
	cursorVisible    bool
	markerTolerance  int

	dragging        bool
	dragStartX      int
	dragStartOffset float64
}

// NewViewport returns a Viewport drawing on s, which may be nil for a
// viewport that only tracks state.
func NewViewport(s Surface) *Viewport {
	v := &Viewport{
		painter:           NewPainter(),
		surface:           s,
		width:             1,
		height:            1,
		leftBorder:        60,
		rightBorder:       3,
		topBorder:         4,
		bottomBorder:      30,
		xVisibleRegion:    100,
		yVisibleRegion:    100,
		yMinVisibleRegion: DefaultYMinVisibleRegion,
		yAutoScale:        true,
		markerTolerance:   DefaultMarkerTolerance,
		minEnergy:         defaultMinEnergy,
		maxEnergy:         defaultMaxEnergy,
	}
	if s != nil {
		v.painter.SetCanvas(s)
		size := s.Size()
		v.width, v.height = max(size.X, 1), max(size.Y, 1)
	}
	v.Layout()
	v.pushGeometry()
	return v
}

// Painter exposes the transforms of the current view.
func (v *Viewport) Painter() *Painter { return v.painter }

func (v *Viewport) SetScrollbar(s Scrollbar) {
	v.scrollbar = s
	v.UpdateScrollbarRange()
}

func (v *Viewport) SetStatusBar(s StatusBar) {
	v.statusBar = s
	v.updateStatusPos()
	v.updateStatusScale()
}

// SetLogf installs the function used for diagnostic messages.
func (v *Viewport) SetLogf(f func(format string, args ...any)) { v.logf = f }

func (v *Viewport) log(format string, args ...any) {
	if v.logf != nil {
		v.logf(format, args...)
	}
}

// SetBorders sets the insets between the surface edge and the plot area.
func (v *Viewport) SetBorders(left, right, top, bottom int) {
	v.leftBorder, v.rightBorder = left, right
	v.topBorder, v.bottomBorder = top, bottom
	v.Layout()
	v.Update(true)
}

// SetSize resizes the viewport to w x h pixels and redraws.
func (v *Viewport) SetSize(w, h int) {
	v.width, v.height = max(w, 1), max(h, 1)
	v.Layout()
	v.Update(true)
}

func (v *Viewport) Size() image.Point { return image.Pt(v.width, v.height) }

// Layout places the plot area inside the borders.
func (v *Viewport) Layout() {
	w := max(v.width-v.leftBorder-v.rightBorder, 1)
	h := max(v.height-v.topBorder-v.bottomBorder, 1)
	v.painter.SetBasePoint(v.leftBorder, v.topBorder+h)
	v.painter.SetSize(w, h)
}

// PlotArea returns the pixel rectangle of the plot area.
func (v *Viewport) PlotArea() image.Rectangle {
	p := v.painter
	return image.Rect(p.BaseX(), p.BaseY()-p.Height(), p.BaseX()+p.Width()+1, p.BaseY()+1)
}

func clampRegion(r float64) float64 {
	switch {
	case !(r >= MinVisibleRegion):
		return MinVisibleRegion
	case r > maxVisibleRegion:
		return maxVisibleRegion
	}
	return r
}

func (v *Viewport) XOffset() float64 { return v.xOffset }
func (v *Viewport) YOffset() float64 { return v.yOffset }
func (v *Viewport) XVisibleRegion() float64 { return v.xVisibleRegion }
func (v *Viewport) YVisibleRegion() float64 { return v.yVisibleRegion }
func (v *Viewport) YAutoScale() bool { return v.yAutoScale }
func (v *Viewport) LogScale() bool { return v.painter.LogScale() }
func (v *Viewport) ViewMode() ViewMode { return v.painter.ViewMode() }

func (v *Viewport) SetXOffset(offset float64, update bool) {
	v.xOffset = offset
	if update {
		v.Update(false)
	}
}

func (v *Viewport) SetYOffset(offset float64, update bool) {
	v.yOffset = offset
	if update {
		v.Update(false)
	}
}

// ShiftXOffset moves the view by f times the visible energy region.
func (v *Viewport) ShiftXOffset(f float64, update bool) {
	v.SetXOffset(v.xOffset+f*v.xVisibleRegion, update)
}

// ShiftYOffset moves the view by f times the visible count region.
func (v *Viewport) ShiftYOffset(f float64, update bool) {
	v.SetYOffset(v.yOffset+f*v.yVisibleRegion, update)
}

// SetXVisibleRegion changes the visible energy region, keeping the centre
// of the view in place.
func (v *Viewport) SetXVisibleRegion(region float64, update bool) {
	region = clampRegion(region)
	v.xOffset += (v.xVisibleRegion - region) / 2
	v.xVisibleRegion = region
	if update {
		v.Update(false)
	}
}

// SetYVisibleRegion changes the visible count region and switches
// auto-scaling off.
func (v *Viewport) SetYVisibleRegion(region float64, update bool) {
	v.yVisibleRegion = clampRegion(region)
	v.yAutoScale = false
	if update {
		v.Update(false)
	}
}

// SetAutoZoomHeadroom sets the top margin used by auto-scaling.
func (v *Viewport) SetAutoZoomHeadroom(h float64) {
	if h >= 1 {
		v.painter.SetAutoZoomHeadroom(h)
	}
}

// SetMarkerTolerance sets the pixel distance used when deleting the marker
// nearest to the cursor from the keyboard.
func (v *Viewport) SetMarkerTolerance(tol int) {
	if tol >= 0 {
		v.markerTolerance = tol
	}
}

// zoomPixel returns the cursor position, or the plot centre when the
// cursor is elsewhere.
func (v *Viewport) zoomPixel() (int, int) {
	if v.cursorVisible {
		return v.cursorX, v.cursorY
	}
	p := v.painter
	return p.BaseX() + p.Width()/2, p.BaseY() - p.Height()/2
}

// XZoomAroundCursor divides the visible energy region by f while keeping
// the energy under the cursor at the same column.
func (v *Viewport) XZoomAroundCursor(f float64) {
	if !(f > 0) {
		return
	}
	v.pushGeometry()
	p := v.painter
	x, _ := v.zoomPixel()
	e := p.PixelToE(x)
	region := clampRegion(v.xVisibleRegion / f)
	v.xOffset = e - float64(x-p.BaseX())*region/float64(p.Width())
	v.xVisibleRegion = region
	v.log("[VIEWPORT] x zoom %.3g around %.4g", f, e)
	v.Update(false)
}

// YZoomAroundCursor divides the visible count region by f while keeping
// the count under the cursor at the same row. Auto-scaling is switched
// off.
func (v *Viewport) YZoomAroundCursor(f float64) {
	if !(f > 0) {
		return
	}
	v.pushGeometry()
	p := v.painter
	_, y := v.zoomPixel()
	region := p.YZoomRegion(y, f)
	if region < MinVisibleRegion {
		return
	}
	v.yOffset += p.YOffsetDelta(y, f)
	v.yVisibleRegion = clampRegion(region)
	v.yAutoScale = false
	v.Update(false)
}

// ToBegin moves the left edge of the view to the lowest displayed energy.
func (v *Viewport) ToBegin() {
	v.updateEnergyRange()
	v.SetXOffset(v.minEnergy, true)
}

// ShowAll fits the energy range spanned by all spectra and functions into
// the view and switches auto-scaling back on.
func (v *Viewport) ShowAll() {
	v.updateEnergyRange()
	v.xOffset = v.minEnergy
	v.xVisibleRegion = clampRegion(v.maxEnergy - v.minEnergy)
	v.yOffset = 0
	v.yAutoScale = true
	v.Update(false)
}

// SetYAutoScale switches auto-scaling of the count axis on or off.
func (v *Viewport) SetYAutoScale(auto, update bool) {
	v.yAutoScale = auto
	if update {
		v.Update(false)
	}
	v.updateStatusScale()
}

// YAutoScaleOnce fits the count axis to the visible data without leaving
// auto-scaling on.
func (v *Viewport) YAutoScaleOnce(update bool) {
	v.pushGeometry()
	v.yVisibleRegion = v.autoYRegion()
	v.yAutoScale = false
	if update {
		v.Update(true)
	}
	v.updateStatusScale()
}

func (v *Viewport) SetViewMode(m ViewMode) {
	if m == v.painter.ViewMode() {
		return
	}
	v.painter.SetViewMode(m)
	v.Update(true)
}

func (v *Viewport) SetLogScale(l bool) {
	if l == v.painter.LogScale() {
		return
	}
	v.painter.SetLogScale(l)
	v.Update(true)
}

func (v *Viewport) ToggleLogScale() {
	v.SetLogScale(!v.painter.LogScale())
}

// autoYRegion returns the count region that fits the tallest visible
// spectrum, never less than the minimum auto-scale region.
func (v *Viewport) autoYRegion() float64 {
	region := v.yMinVisibleRegion
	for _, ds := range v.spectra.All() {
		region = math.Max(region, v.painter.YAutoZoom(ds))
	}
	return region
}

// updateEnergyRange recomputes the energy interval spanned by spectra and
// bounded functions, falling back to [0, 1000].
func (v *Viewport) updateEnergyRange() {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, ds := range v.spectra.All() {
		lo = math.Min(lo, ds.MinE())
		hi = math.Max(hi, ds.MaxE())
	}
	for _, df := range v.functions.All() {
		if e := df.MinE(); !math.IsInf(e, 0) {
			lo = math.Min(lo, e)
		}
		if e := df.MaxE(); !math.IsInf(e, 0) {
			hi = math.Max(hi, e)
		}
	}
	if lo > hi {
		lo, hi = defaultMinEnergy, defaultMaxEnergy
	}
	if hi-lo < MinVisibleRegion {
		hi = lo + 1
	}
	v.minEnergy, v.maxEnergy = lo, hi
}

// pushGeometry hands the view state to the painter and reports whether
// anything changed.
func (v *Viewport) pushGeometry() bool {
	p := v.painter
	changed := p.XOffset() != v.xOffset || p.XVisibleRegion() != v.xVisibleRegion
	p.SetXOffset(v.xOffset)
	p.SetXVisibleRegion(v.xVisibleRegion)

	if p.YOffset() != v.yOffset {
		changed = true
		p.SetYOffset(v.yOffset)
	}
	if v.yAutoScale {
		v.yVisibleRegion = v.autoYRegion()
	}
	if p.YVisibleRegion() != v.yVisibleRegion {
		changed = true
		p.SetYVisibleRegion(v.yVisibleRegion)
	}
	return changed
}

// Update applies pending changes. The view is redrawn when redraw is set
// or when the visible region changed.
func (v *Viewport) Update(redraw bool) {
	v.stale = false
	v.updateEnergyRange()
	if v.pushGeometry() || redraw {
		v.DoRedraw()
	}
	v.UpdateScrollbarRange()
	v.updateStatusPos()
	v.updateStatusScale()
}

// DoRedraw repaints the whole surface.
func (v *Viewport) DoRedraw() {
	if v.surface == nil {
		return
	}
	p := v.painter
	all := image.Rect(0, 0, v.width, v.height)
	v.surface.Clear(all)
	v.drawObjects(p.BaseX(), p.BaseX()+p.Width())
	p.ClearXScale()
	p.DrawXScale(p.BaseX(), p.BaseX()+p.Width())
	p.DrawYScale()
	v.surface.Invalidate(all)
	v.drawCursor()
}

// DrawRegion repaints pixel columns x1 to x2 of the plot area.
func (v *Viewport) DrawRegion(x1, x2 int) {
	if v.surface == nil {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	p := v.painter
	r := image.Rect(x1, p.BaseY()-p.Height(), x2+1, p.BaseY()+1).Intersect(v.PlotArea())
	if r.Empty() {
		return
	}
	v.surface.Clear(r)
	v.drawObjects(r.Min.X, r.Max.X-1)
	v.surface.Invalidate(r)
	v.drawCursor()
}

func (v *Viewport) drawObjects(x1, x2 int) {
	p := v.painter
	for _, ds := range v.spectra.All() {
		p.DrawSpectrum(ds, x1, x2)
	}
	for _, df := range v.functions.All() {
		p.DrawFunction(df, x1, x2)
	}
	for _, m := range v.xMarkers.All() {
		p.DrawXMarker(m, x1, x2)
	}
	for _, m := range v.yMarkers.All() {
		p.DrawYMarker(m, x1, x2)
	}
}

func (v *Viewport) drawCursor() {
	if v.surface == nil {
		return
	}
	if v.cursorVisible {
		v.surface.ShowCursor(image.Pt(v.cursorX, v.cursorY), v.PlotArea())
	} else {
		v.surface.HideCursor()
	}
}

// UpdateScrollbarRange sizes the scrollbar to the union of the energy
// range and the visible region.
func (v *Viewport) UpdateScrollbarRange() {
	if v.scrollbar == nil {
		return
	}
	p := v.painter
	lo := math.Min(v.minEnergy, v.xOffset)
	hi := math.Max(v.maxEnergy, v.xOffset+v.xVisibleRegion)
	v.scrollMinE = lo
	size := math.Min(math.Ceil(p.DEtoDX(hi-lo)), pixelLimit)
	pos := math.Min(math.Round(p.DEtoDX(v.xOffset-lo)), pixelLimit)
	v.scrollbar.SetRange(int(size), p.Width())
	v.scrollbar.SetPosition(int(pos))
}

// HandleScrollbar moves the view to scrollbar position pos.
func (v *Viewport) HandleScrollbar(pos int) {
	v.SetXOffset(v.scrollMinE+v.painter.DXtoDE(float64(pos)), true)
}

// CursorX returns the energy under the cursor.
func (v *Viewport) CursorX() float64 { return v.painter.PixelToE(v.cursorX) }

// CursorY returns the count value under the cursor.
func (v *Viewport) CursorY() float64 { return v.painter.YtoC(v.cursorY) }

func (v *Viewport) CursorVisible() bool { return v.cursorVisible }

func (v *Viewport) updateStatusPos() {
	if v.statusBar == nil {
		return
	}
	text := ""
	if v.cursorVisible {
		text = fmt.Sprintf("%.2f %.2f", v.CursorX(), v.CursorY())
	}
	v.statusBar.SetText(text, StatusPosition)
}

func (v *Viewport) updateStatusScale() {
	if v.statusBar == nil {
		return
	}
	var flags []string
	if v.yAutoScale {
		flags = append(flags, "AUTO")
	}
	if v.painter.LogScale() {
		flags = append(flags, "LOG")
	}
	v.statusBar.SetText(strings.Join(flags, " "), StatusScale)
}
