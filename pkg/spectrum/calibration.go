package spectrum

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadCalibration is returned for calibrations that cannot be inverted.
var ErrBadCalibration = errors.New("calibration has zero slope")

// Calibration maps channels to energies with a polynomial of degree <= 3:
//
//	E(ch) = c0 + c1*ch + c2*ch^2 + c3*ch^3
//
// The zero value is the identity (E == ch).
type Calibration struct {
	coeffs []float64
}

// NewCalibration returns a calibration with the given coefficients, lowest
// order first. At most four coefficients are accepted.
func NewCalibration(coeffs ...float64) (Calibration, error) {
	if len(coeffs) > 4 {
		return Calibration{}, fmt.Errorf("calibration: %d coefficients, at most 4 allowed", len(coeffs))
	}
	for len(coeffs) > 0 && coeffs[len(coeffs)-1] == 0 {
		coeffs = coeffs[:len(coeffs)-1]
	}
	if len(coeffs) < 2 || coeffs[1] == 0 {
		return Calibration{}, ErrBadCalibration
	}
	c := Calibration{coeffs: append([]float64(nil), coeffs...)}
	return c, nil
}

// IsIdentity reports whether this calibration leaves channels unchanged.
func (c Calibration) IsIdentity() bool {
	return len(c.coeffs) == 0
}

// Coeffs returns a copy of the coefficients, lowest order first.
func (c Calibration) Coeffs() []float64 {
	if c.IsIdentity() {
		return []float64{0, 1}
	}
	return append([]float64(nil), c.coeffs...)
}

// Ch2E converts a channel to an energy.
func (c Calibration) Ch2E(ch float64) float64 {
	if c.IsIdentity() {
		return ch
	}
	e := 0.0
	for i := len(c.coeffs) - 1; i >= 0; i-- {
		e = e*ch + c.coeffs[i]
	}
	return e
}

// slope returns dE/dch at ch.
func (c Calibration) slope(ch float64) float64 {
	d := 0.0
	for i := len(c.coeffs) - 1; i >= 1; i-- {
		d = d*ch + float64(i)*c.coeffs[i]
	}
	return d
}

// E2Ch converts an energy to a channel. Non-linear calibrations are
// inverted with Newton's method, seeded from the linear part.
func (c Calibration) E2Ch(e float64) float64 {
	if c.IsIdentity() {
		return e
	}
	ch := (e - c.coeffs[0]) / c.coeffs[1]
	if len(c.coeffs) == 2 {
		return ch
	}
	for i := 0; i < 50; i++ {
		d := c.slope(ch)
		if d == 0 {
			break
		}
		step := (c.Ch2E(ch) - e) / d
		ch -= step
		if math.Abs(step) <= 1e-12*math.Max(1, math.Abs(ch)) {
			break
		}
	}
	return ch
}
