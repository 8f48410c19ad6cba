// Package display implements the drawing core of the spectrum viewer.
//
// # Coordinate system
//
// The Painter maps between energy/count space and pixel space. xBase is
// the pixel column that shows energy xOffset, yBase the pixel row that
// shows yOffset counts:
//
//	x = ceil((e - xOffset) * xZoom + xBase - 0.5)
//	e = (x - xBase) / xZoom + xOffset
//
// xZoom is in pixels per energy unit and always equals
// width / xVisibleRegion. yZoom is in pixels per count (or per ModLog unit
// on a logarithmic scale) and is recomputed whenever the visible count
// region, the count offset, the scale mode or the plot height change.
//
// # Objects
//
// A Viewport owns four collections (spectra, functions, X markers and Y
// markers). Each is an Arena: ids are small integers, and a deleted id is
// handed out again before any new one. Objects are drawn in insertion
// order, so later additions paint over earlier ones.
//
// # Toolkit boundary
//
// Nothing in this package depends on a GUI toolkit. Drawing goes through
// Canvas, window services through Surface, Scrollbar and StatusBar, and
// input arrives as plain Event values. internal/render and internal/ui
// supply the concrete implementations.
package display
