package spectrum

import "math"

// Func is an analytic function of the channel number.
type Func interface {
	// Eval returns the function value at channel ch.
	Eval(ch float64) float64
	// Range returns the channel interval the function is defined on.
	// Unbounded ends are reported as infinities.
	Range() (lo, hi float64)
}

// Gaussian is a peak shape Amp * exp(-(ch-Mean)^2 / (2*Sigma^2)).
// It is drawn over Mean +- Width sigmas.
type Gaussian struct {
	Amp, Mean, Sigma float64
	Width            float64 // in sigmas; 0 means 5
}

func (g Gaussian) Eval(ch float64) float64 {
	if g.Sigma == 0 {
		return 0
	}
	d := (ch - g.Mean) / g.Sigma
	return g.Amp * math.Exp(-0.5*d*d)
}

func (g Gaussian) Range() (lo, hi float64) {
	w := g.Width
	if w <= 0 {
		w = 5
	}
	s := math.Abs(g.Sigma) * w
	return g.Mean - s, g.Mean + s
}

// Polynomial is c0 + c1*ch + c2*ch^2 + ... over [Lo, Hi].
// A zero-width interval means unbounded.
type Polynomial struct {
	Coeffs []float64
	Lo, Hi float64
}

func (p Polynomial) Eval(ch float64) float64 {
	v := 0.0
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		v = v*ch + p.Coeffs[i]
	}
	return v
}

func (p Polynomial) Range() (lo, hi float64) {
	if p.Lo == p.Hi {
		return math.Inf(-1), math.Inf(1)
	}
	return p.Lo, p.Hi
}

// Sum adds several functions, e.g. peaks on top of a background.
// Its range is the union of the member ranges.
type Sum []Func

func (s Sum) Eval(ch float64) float64 {
	v := 0.0
	for _, f := range s {
		v += f.Eval(ch)
	}
	return v
}

func (s Sum) Range() (lo, hi float64) {
	if len(s) == 0 {
		return 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, f := range s {
		l, h := f.Range()
		lo = math.Min(lo, l)
		hi = math.Max(hi, h)
	}
	return lo, hi
}
