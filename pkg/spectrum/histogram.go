package spectrum

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Histogram is a one-dimensional counts histogram with uniform bins.
// Bin i covers channels [Low + i*BinWidth, Low + (i+1)*BinWidth).
type Histogram struct {
	Name     string
	Low      float64 // lower edge of bin 0, in channels
	BinWidth float64
	Counts   []float64
}

// NewHistogram creates a histogram with unit-width bins starting at channel 0.
func NewHistogram(name string, counts []float64) *Histogram {
	return &Histogram{
		Name:     name,
		BinWidth: 1.0,
		Counts:   counts,
	}
}

// NBins returns the number of bins.
func (h *Histogram) NBins() int {
	return len(h.Counts)
}

// BinLowEdge returns the lower edge of bin i in channels.
func (h *Histogram) BinLowEdge(i int) float64 {
	return h.Low + float64(i)*h.BinWidth
}

// BinCenter returns the center of bin i in channels.
func (h *Histogram) BinCenter(i int) float64 {
	return h.Low + (float64(i)+0.5)*h.BinWidth
}

// FindBin returns the bin containing channel ch, or -1 if ch lies outside
// the histogram. With uniform bins this is also the bin whose center is
// nearest to ch.
func (h *Histogram) FindBin(ch float64) int {
	if h.BinWidth <= 0 || math.IsNaN(ch) {
		return -1
	}
	i := math.Floor((ch - h.Low) / h.BinWidth)
	if i < 0 || i >= float64(len(h.Counts)) {
		return -1
	}
	return int(i)
}

// Content returns the counts in bin i, or 0 for bins outside the histogram.
func (h *Histogram) Content(i int) float64 {
	if i < 0 || i >= len(h.Counts) {
		return 0
	}
	return h.Counts[i]
}

// Range returns the lower edge of the first bin and the upper edge of the
// last bin, in channels.
func (h *Histogram) Range() (lo, hi float64) {
	return h.Low, h.BinLowEdge(len(h.Counts))
}

// MaxInRange returns the largest bin content among bins b1..b2 inclusive.
// Bins outside the histogram are ignored; an empty selection yields 0.
func (h *Histogram) MaxInRange(b1, b2 int) float64 {
	if b1 > b2 {
		b1, b2 = b2, b1
	}
	if b1 < 0 {
		b1 = 0
	}
	if b2 >= len(h.Counts) {
		b2 = len(h.Counts) - 1
	}
	if b1 > b2 {
		return 0
	}
	return floats.Max(h.Counts[b1 : b2+1])
}

// Total returns the sum of all bin contents.
func (h *Histogram) Total() float64 {
	return floats.Sum(h.Counts)
}

// MaxBin returns the index and content of the fullest bin, or -1 and 0 for
// an empty histogram.
func (h *Histogram) MaxBin() (int, float64) {
	if len(h.Counts) == 0 {
		return -1, 0
	}
	i := floats.MaxIdx(h.Counts)
	return i, h.Counts[i]
}
