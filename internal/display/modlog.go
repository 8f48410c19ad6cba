package display

import "math"

// ModLog is the count transform used on a logarithmic scale. It is linear
// on [-1, 1] and sign(x)*(1+ln|x|) beyond, which keeps it odd, strictly
// increasing and smooth at +-1, and lets zero and negative counts be shown.
func ModLog(x float64) float64 {
	switch {
	case x > 1:
		return 1 + math.Log(x)
	case x < -1:
		return -1 - math.Log(-x)
	default:
		return x
	}
}

// InvModLog is the inverse of ModLog. For every c, ModLog(InvModLog(ModLog(c)))
// equals ModLog(c), and InvModLog(ModLog(c)) is c itself for integers and
// short binary fractions.
func InvModLog(x float64) float64 {
	switch {
	case x > 1:
		return invLogBranch(x)
	case x < -1:
		return -invLogBranch(-x)
	default:
		return x
	}
}

// maxInvSteps bounds the ulp search in invLogBranch.
const maxInvSteps = 64

// invLogBranch inverts 1+ln(c) for x > 1. exp(x-1) is off by a few ulps,
// so the result is snapped to a value that ModLog maps back to x exactly,
// preferring the coarsest binary fraction that does.
func invLogBranch(x float64) float64 {
	r := math.Exp(x - 1)

	for scale := 1.0; scale < math.MaxFloat64; scale *= 2 {
		s := r * scale
		c := math.Round(s) / scale
		if ModLog(c) == x {
			return c
		}
		if s == math.Round(s) {
			break
		}
	}

	up, down := r, r
	for range maxInvSteps {
		up = math.Nextafter(up, math.Inf(1))
		if ModLog(up) == x {
			return up
		}
		down = math.Nextafter(down, math.Inf(-1))
		if ModLog(down) == x {
			return down
		}
	}
	return r
}
