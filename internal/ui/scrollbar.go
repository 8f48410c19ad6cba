package ui

import (
	"image"
	"image/color"

	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

// scrollbar is a horizontal scrollbar. Range and position are in plot
// pixels, as handed out by display.Viewport.
type scrollbar struct {
	size, page, pos int

	drag      gesture.Drag
	dragging  bool
	dragStart float32
	dragPos   int
	length    int // track length in screen pixels from the last layout
}

// SetRange implements display.Scrollbar.
func (s *scrollbar) SetRange(size, page int) {
	s.size, s.page = max(size, 0), max(page, 1)
	s.pos = s.clamp(s.pos)
}

// SetPosition implements display.Scrollbar.
func (s *scrollbar) SetPosition(pos int) {
	if !s.dragging {
		s.pos = s.clamp(pos)
	}
}

func (s *scrollbar) clamp(pos int) int {
	return max(0, min(pos, s.size-s.page))
}

// thumb returns the thumb's start and length on a track of the given
// length.
func (s *scrollbar) thumb(track int) (start, length int) {
	if s.size <= s.page || track <= 0 {
		return 0, track
	}
	length = max(track*s.page/s.size, min(track, 12))
	start = (track - length) * s.pos / max(s.size-s.page, 1)
	return start, length
}

// trackToPos converts a thumb movement of d track pixels to a position
// delta.
func (s *scrollbar) trackToPos(d float32) int {
	_, length := s.thumb(s.length)
	free := s.length - length
	if free <= 0 {
		return 0
	}
	return int(d * float32(s.size-s.page) / float32(free))
}

// Update processes drag events and reports the new position if the user
// moved the thumb.
func (s *scrollbar) Update(gtx layout.Context) (int, bool) {
	moved := false
	for {
		ev, ok := s.drag.Update(gtx.Metric, gtx.Source, gesture.Horizontal)
		if !ok {
			break
		}
		switch ev.Kind {
		case pointer.Press:
			s.dragging = true
			s.dragStart = ev.Position.X
			s.dragPos = s.pos
		case pointer.Drag:
			if s.dragging {
				pos := s.clamp(s.dragPos + s.trackToPos(ev.Position.X-s.dragStart))
				if pos != s.pos {
					s.pos = pos
					moved = true
				}
			}
		case pointer.Release, pointer.Cancel:
			s.dragging = false
		}
	}
	return s.pos, moved
}

func (s *scrollbar) Layout(gtx layout.Context, track, thumb color.NRGBA) layout.Dimensions {
	height := gtx.Dp(unit.Dp(12))
	size := image.Pt(gtx.Constraints.Max.X, height)
	s.length = size.X

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, track)
	s.drag.Add(gtx.Ops)

	start, length := s.thumb(size.X)
	r := image.Rect(start, 2, start+length, height-2)
	paint.FillShape(gtx.Ops, thumb, clip.UniformRRect(r, (height-4)/2).Op(gtx.Ops))

	return layout.Dimensions{Size: size}
}
