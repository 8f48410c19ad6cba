package display

import (
	"image/color"
	"math"

	"github.com/hdtv/hdtv/pkg/spectrum"
)

// DefaultMarkerTolerance is the pixel distance within which
// FindMarkerNearestCursor matches.
const DefaultMarkerTolerance = 3

func (v *Viewport) redrawIf(update bool) {
	if update {
		v.Update(true)
	} else {
		v.stale = true
	}
}

// redrawXMarker repaints the columns around m after it was added or
// removed. Labels and pending changes need a full update.
func (v *Viewport) redrawXMarker(m *XMarker, update bool) {
	if !update || v.stale || m.Label != "" || v.pushGeometry() {
		v.redrawIf(update)
		return
	}
	x := v.painter.EtoX(m.E)
	v.DrawRegion(x-1, x+1)
}

// AddSpec displays h in color c and returns its id.
func (v *Viewport) AddSpec(h *spectrum.Histogram, c color.NRGBA, update bool) int {
	id := v.spectra.Add(NewDisplaySpec(h, c))
	v.log("[VIEWPORT] added spectrum %d (%s, %d bins)", id, h.Name, h.NBins())
	v.redrawIf(update)
	return id
}

// GetSpec returns the spectrum with the given id, or nil.
func (v *Viewport) GetSpec(id int) *DisplaySpec {
	ds, _ := v.spectra.Get(id)
	return ds
}

// SetSpecCal sets the energy calibration of spectrum id.
func (v *Viewport) SetSpecCal(id int, cal spectrum.Calibration, update bool) bool {
	ds := v.GetSpec(id)
	if ds == nil {
		return false
	}
	ds.SetCalibration(cal)
	v.redrawIf(update)
	return true
}

func (v *Viewport) DeleteSpec(id int, update bool) bool {
	if !v.spectra.Delete(id) {
		return false
	}
	v.log("[VIEWPORT] deleted spectrum %d", id)
	v.redrawIf(update)
	return true
}

func (v *Viewport) DeleteAllSpecs(update bool) {
	v.spectra.Clear()
	v.redrawIf(update)
}

// SpecIDs returns the spectrum ids in drawing order.
func (v *Viewport) SpecIDs() []int { return v.spectra.IDs() }

// AddFunc displays f in color c and returns its id.
func (v *Viewport) AddFunc(f spectrum.Func, c color.NRGBA, update bool) int {
	id := v.functions.Add(NewDisplayFunc(f, c))
	v.log("[VIEWPORT] added function %d", id)
	v.redrawIf(update)
	return id
}

func (v *Viewport) GetFunc(id int) *DisplayFunc {
	df, _ := v.functions.Get(id)
	return df
}

func (v *Viewport) SetFuncCal(id int, cal spectrum.Calibration, update bool) bool {
	df := v.GetFunc(id)
	if df == nil {
		return false
	}
	df.SetCalibration(cal)
	v.redrawIf(update)
	return true
}

func (v *Viewport) DeleteFunc(id int, update bool) bool {
	if !v.functions.Delete(id) {
		return false
	}
	v.log("[VIEWPORT] deleted function %d", id)
	v.redrawIf(update)
	return true
}

func (v *Viewport) DeleteAllFuncs(update bool) {
	v.functions.Clear()
	v.redrawIf(update)
}

func (v *Viewport) FuncIDs() []int { return v.functions.IDs() }

// AddXMarker places a vertical marker at energy e and returns its id.
func (v *Viewport) AddXMarker(e float64, c color.NRGBA, update bool) int {
	m := &XMarker{E: e, Color: c}
	id := v.xMarkers.Add(m)
	v.redrawXMarker(m, update)
	return id
}

func (v *Viewport) GetXMarker(id int) *XMarker {
	m, _ := v.xMarkers.Get(id)
	return m
}

func (v *Viewport) DeleteXMarker(id int, update bool) bool {
	m, ok := v.xMarkers.Get(id)
	if !ok {
		return false
	}
	v.xMarkers.Delete(id)
	v.redrawXMarker(m, update)
	return true
}

func (v *Viewport) DeleteAllXMarkers(update bool) {
	v.xMarkers.Clear()
	v.redrawIf(update)
}

func (v *Viewport) XMarkerIDs() []int { return v.xMarkers.IDs() }

// AddYMarker places a horizontal marker at count value c and returns its id.
func (v *Viewport) AddYMarker(c float64, col color.NRGBA, update bool) int {
	id := v.yMarkers.Add(&YMarker{C: c, Color: col})
	v.redrawIf(update)
	return id
}

func (v *Viewport) GetYMarker(id int) *YMarker {
	m, _ := v.yMarkers.Get(id)
	return m
}

func (v *Viewport) DeleteYMarker(id int, update bool) bool {
	if !v.yMarkers.Delete(id) {
		return false
	}
	v.redrawIf(update)
	return true
}

func (v *Viewport) DeleteAllYMarkers(update bool) {
	v.yMarkers.Clear()
	v.redrawIf(update)
}

func (v *Viewport) YMarkerIDs() []int { return v.yMarkers.IDs() }

// FindMarkerNearestCursor returns the X marker closest to the cursor
// column if it is at most tol pixels away, or NotFound.
func (v *Viewport) FindMarkerNearestCursor(tol int) int {
	return v.FindNearestXMarker(v.CursorX(), v.painter.DXtoDE(float64(tol)))
}

// FindNearestXMarker returns the X marker closest to energy e. A negative
// tol accepts any distance. Ties go to the marker added first.
func (v *Viewport) FindNearestXMarker(e, tol float64) int {
	best, bestDist := NotFound, math.Inf(1)
	for id, m := range v.xMarkers.All() {
		d := math.Abs(m.E - e)
		if tol >= 0 && d > tol {
			continue
		}
		if d < bestDist {
			best, bestDist = id, d
		}
	}
	return best
}
