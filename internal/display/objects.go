package display

import (
	"image/color"
	"math"

	"github.com/hdtv/hdtv/pkg/spectrum"
)

// Palette holds the colors handed out to new objects by index.
var Palette = []color.NRGBA{
	{R: 0x3f, G: 0x8f, B: 0xff, A: 0xff},
	{R: 0xff, G: 0x4f, B: 0x4f, A: 0xff},
	{R: 0x4f, G: 0xdf, B: 0x4f, A: 0xff},
	{R: 0xff, G: 0xdf, B: 0x2f, A: 0xff},
	{R: 0xdf, G: 0x5f, B: 0xff, A: 0xff},
	{R: 0x2f, G: 0xdf, B: 0xdf, A: 0xff},
	{R: 0xff, G: 0x9f, B: 0x2f, A: 0xff},
	{R: 0xbf, G: 0xbf, B: 0xbf, A: 0xff},
}

// DefaultColor is used when no color is given.
var DefaultColor = Palette[0]

// PaletteColor returns the palette entry for n, wrapping around.
func PaletteColor(n int) color.NRGBA {
	if n < 0 {
		n = -n
	}
	return Palette[n%len(Palette)]
}

// DisplaySpec is a histogram placed on the energy axis through a
// calibration. The histogram is shared, not owned.
type DisplaySpec struct {
	hist  *spectrum.Histogram
	cal   spectrum.Calibration
	color color.NRGBA
}

func NewDisplaySpec(h *spectrum.Histogram, c color.NRGBA) *DisplaySpec {
	return &DisplaySpec{hist: h, color: c}
}

func (d *DisplaySpec) Histogram() *spectrum.Histogram { return d.hist }
func (d *DisplaySpec) Color() color.NRGBA { return d.color }
func (d *DisplaySpec) SetColor(c color.NRGBA) { d.color = c }
func (d *DisplaySpec) Calibration() spectrum.Calibration { return d.cal }
func (d *DisplaySpec) SetCalibration(c spectrum.Calibration) { d.cal = c }

func (d *DisplaySpec) Ch2E(ch float64) float64 { return d.cal.Ch2E(ch) }
func (d *DisplaySpec) E2Ch(e float64) float64 { return d.cal.E2Ch(e) }

// MinE and MaxE return the energy range covered by the histogram.
func (d *DisplaySpec) MinE() float64 {
	lo, hi := d.hist.Range()
	return math.Min(d.Ch2E(lo), d.Ch2E(hi))
}

func (d *DisplaySpec) MaxE() float64 {
	lo, hi := d.hist.Range()
	return math.Max(d.Ch2E(lo), d.Ch2E(hi))
}

// CountsAt returns the content of the bin nearest to energy e, or 0
// outside the histogram.
func (d *DisplaySpec) CountsAt(e float64) float64 {
	return d.hist.Content(d.hist.FindBin(d.E2Ch(e)))
}

// binRange returns the bins covering the energy interval [e1, e2],
// clamped to the histogram.
func (d *DisplaySpec) binRange(e1, e2 float64) (int, int) {
	b1 := d.clampBin(d.E2Ch(e1))
	b2 := d.clampBin(d.E2Ch(e2))
	if b1 > b2 {
		b1, b2 = b2, b1
	}
	return b1, b2
}

func (d *DisplaySpec) clampBin(ch float64) int {
	n := d.hist.NBins()
	b := math.Floor((ch - d.hist.Low) / d.hist.BinWidth)
	switch {
	case math.IsNaN(b) || b < 0:
		return 0
	case b >= float64(n):
		return n - 1
	}
	return int(b)
}

// DisplayFunc is an analytic function of the channel number placed on the
// energy axis through a calibration.
type DisplayFunc struct {
	fn    spectrum.Func
	cal   spectrum.Calibration
	color color.NRGBA
}

func NewDisplayFunc(f spectrum.Func, c color.NRGBA) *DisplayFunc {
	return &DisplayFunc{fn: f, color: c}
}

func (d *DisplayFunc) Func() spectrum.Func { return d.fn }
func (d *DisplayFunc) Color() color.NRGBA { return d.color }
func (d *DisplayFunc) SetColor(c color.NRGBA) { d.color = c }
func (d *DisplayFunc) Calibration() spectrum.Calibration { return d.cal }
func (d *DisplayFunc) SetCalibration(c spectrum.Calibration) { d.cal = c }

// Value evaluates the function at energy e.
func (d *DisplayFunc) Value(e float64) float64 {
	return d.fn.Eval(d.cal.E2Ch(e))
}

// MinE and MaxE return the energy range the function is drawn over.
// Unbounded ends stay infinite.
func (d *DisplayFunc) MinE() float64 {
	lo, _ := d.energyRange()
	return lo
}

func (d *DisplayFunc) MaxE() float64 {
	_, hi := d.energyRange()
	return hi
}

func (d *DisplayFunc) energyRange() (float64, float64) {
	lo, hi := d.fn.Range()
	if d.cal.IsIdentity() {
		return lo, hi
	}
	// a calibration polynomial is not defined at infinity
	if !math.IsInf(lo, 0) {
		lo = d.cal.Ch2E(lo)
	}
	if !math.IsInf(hi, 0) {
		hi = d.cal.Ch2E(hi)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// XMarker is a vertical line at an energy.
type XMarker struct {
	E     float64
	Color color.NRGBA
	Label string
}

// YMarker is a horizontal line at a count value.
type YMarker struct {
	C     float64
	Color color.NRGBA
	Label string
}
