// Package render provides a software raster display.Surface backed by
// gg. The window draws it to screen; the render command writes it to PNG.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/hdtv/hdtv/internal/display"
)

// DefaultFontSize is the label size in points.
const DefaultFontSize = 11

// Raster is an in-memory display.Surface. Lines and points are set pixel
// by pixel so that axis-aligned strokes stay crisp; text and area fills go
// through gg.
type Raster struct {
	ctx        *gg.Context
	face       text.Face
	background color.NRGBA

	dirty image.Rectangle

	cursor      image.Point
	cursorArea  image.Rectangle
	cursorShown bool
}

// Option configures a Raster.
type Option func(*Raster)

// WithBackground sets the color Clear fills with.
func WithBackground(c color.NRGBA) Option {
	return func(r *Raster) { r.background = c }
}

// WithFontSize sets the label size in points.
func WithFontSize(size float64) Option {
	return func(r *Raster) {
		if src, err := text.NewFontSource(goregular.TTF); err == nil {
			r.face = src.Face(size)
		}
	}
}

// New returns a w x h raster cleared to the background color.
func New(w, h int, opts ...Option) (*Raster, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	r := &Raster{
		face:       src.Face(DefaultFontSize),
		background: color.NRGBA{A: 0xff},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.ctx = gg.NewContext(max(w, 1), max(h, 1))
	r.ctx.SetFont(r.face)
	r.ctx.ClearWithColor(toRGBA(r.background))
	r.dirty = r.Bounds()
	return r, nil
}

// Resize replaces the backing store with a cleared w x h one.
func (r *Raster) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if w == r.ctx.Width() && h == r.ctx.Height() {
		return
	}
	if err := r.ctx.Resize(w, h); err != nil {
		return
	}
	r.ctx.ClearWithColor(toRGBA(r.background))
	r.dirty = r.Bounds()
}

// Close releases the backing store.
func (r *Raster) Close() error {
	return r.ctx.Close()
}

func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.ctx.Width(), r.ctx.Height())
}

func (r *Raster) Background() color.NRGBA { return r.background }

// Size implements display.Surface.
func (r *Raster) Size() image.Point {
	return r.Bounds().Size()
}

// Clear implements display.Canvas.
func (r *Raster) Clear(rect image.Rectangle) {
	rect = rect.Intersect(r.Bounds())
	if rect.Empty() {
		return
	}
	r.ctx.FillRectCPU(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()), toRGBA(r.background))
}

// DrawLine implements display.Canvas with Bresenham's algorithm. Both end
// points are drawn.
func (r *Raster) DrawLine(x1, y1, x2, y2 int, c color.NRGBA) {
	col := toRGBA(c)
	if x1 == x2 {
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		for y := y1; y <= y2; y++ {
			r.ctx.SetPixel(x1, y, col)
		}
		return
	}
	if y1 == y2 {
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		for x := x1; x <= x2; x++ {
			r.ctx.SetPixel(x, y1, col)
		}
		return
	}

	dx, dy := abs(x2-x1), -abs(y2-y1)
	sx, sy := sign(x2-x1), sign(y2-y1)
	e := dx + dy
	for {
		r.ctx.SetPixel(x1, y1, col)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x1 += sx
		}
		if e2 <= dx {
			e += dx
			y1 += sy
		}
	}
}

// DrawPoint implements display.Canvas.
func (r *Raster) DrawPoint(x, y int, c color.NRGBA) {
	r.ctx.SetPixel(x, y, toRGBA(c))
}

// DrawString implements display.Canvas.
func (r *Raster) DrawString(x, y int, s string, h display.HTextAlign, v display.VTextAlign, c color.NRGBA) {
	if s == "" {
		return
	}
	w, _ := r.ctx.MeasureString(s)
	m := r.face.Metrics()

	fx := float64(x)
	switch h {
	case display.AlignCenter:
		fx -= w / 2
	case display.AlignRight:
		fx -= w
	}

	fy := float64(y)
	switch v {
	case display.AlignTop:
		fy += m.Ascent
	case display.AlignMiddle:
		fy += (m.Ascent - m.Descent) / 2
	case display.AlignBottom:
		fy -= m.Descent
	}

	r.ctx.SetColor(c)
	r.ctx.DrawString(s, fx, fy)
}

// TextExtent returns the advance width and the ascent and descent of s.
func (r *Raster) TextExtent(s string) (w, ascent, descent float64) {
	w, _ = r.ctx.MeasureString(s)
	m := r.face.Metrics()
	return w, m.Ascent, m.Descent
}

// Invalidate implements display.Surface by growing the dirty rectangle.
func (r *Raster) Invalidate(rect image.Rectangle) {
	r.dirty = r.dirty.Union(rect.Intersect(r.Bounds()))
}

// TakeDirty returns the area changed since the last call and resets it.
func (r *Raster) TakeDirty() image.Rectangle {
	d := r.dirty
	r.dirty = image.Rectangle{}
	return d
}

// ShowCursor implements display.Surface. The crosshair is not drawn into
// the raster; the window paints it on top.
func (r *Raster) ShowCursor(p image.Point, area image.Rectangle) {
	r.cursor, r.cursorArea, r.cursorShown = p, area, true
}

func (r *Raster) HideCursor() { r.cursorShown = false }

// Cursor returns the crosshair position and the area it spans.
func (r *Raster) Cursor() (p image.Point, area image.Rectangle, shown bool) {
	return r.cursor, r.cursorArea, r.cursorShown
}

// Image returns a copy of the current pixels.
func (r *Raster) Image() image.Image {
	_ = r.ctx.FlushGPU()
	return r.ctx.Image()
}

// EncodePNG writes the raster as PNG to w.
func (r *Raster) EncodePNG(w io.Writer) error {
	_ = r.ctx.FlushGPU()
	if err := r.ctx.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG writes the raster as PNG to path.
func (r *Raster) SavePNG(path string) error {
	if err := r.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
