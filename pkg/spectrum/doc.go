// Package spectrum holds the data the display core draws: binned
// histograms, channel/energy calibrations and analytic functions.
//
// The display layer only ever reads from these types. A Histogram is the
// equivalent of a one-dimensional counts histogram indexed by channel; a
// Calibration turns channels into energies; a Func is anything that can be
// evaluated at an arbitrary channel, such as a fitted peak shape.
//
// # Spectrum files
//
// Load reads plain ASCII spectra in either of two layouts:
//
//	# one count per line, channel implied by line order
//	12
//	17
//	9
//
//	# channel/count pairs
//	0  12
//	1  17
//	2  9
//
// Lines starting with '#' and blank lines are ignored.
package spectrum
