package display

import (
	"image"
	"image/color"
)

// HTextAlign positions a string horizontally relative to its anchor.
type HTextAlign int

const (
	AlignLeft HTextAlign = iota + 1
	AlignCenter
	AlignRight
)

// VTextAlign positions a string vertically relative to its anchor.
type VTextAlign int

const (
	AlignBottom VTextAlign = iota + 1
	AlignBaseline
	AlignMiddle
	AlignTop
)

// Canvas is the drawable the Painter renders into. Coordinates are pixels
// with the origin in the top-left corner; lines include both end points.
type Canvas interface {
	// Clear fills r with the background color.
	Clear(r image.Rectangle)
	DrawLine(x1, y1, x2, y2 int, c color.NRGBA)
	DrawPoint(x, y int, c color.NRGBA)
	// DrawString draws s anchored at (x, y) using the canvas font metrics.
	DrawString(x, y int, s string, h HTextAlign, v VTextAlign, c color.NRGBA)
}

// Surface is the window area a Viewport draws on.
type Surface interface {
	Canvas
	Size() image.Point
	// Invalidate asks the toolkit to present the pixels in r.
	Invalidate(r image.Rectangle)
	// ShowCursor overlays a crosshair through p, limited to area, without
	// touching the drawn content.
	ShowCursor(p image.Point, area image.Rectangle)
	HideCursor()
}

// Scrollbar is the horizontal scrollbar attached to a Viewport.
// Sizes and positions are in pixels.
type Scrollbar interface {
	SetRange(size, page int)
	SetPosition(pos int)
}

// StatusBar shows cursor position and scale information.
type StatusBar interface {
	SetText(text string, part int)
}
