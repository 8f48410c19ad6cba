package ui

import (
	"testing"

	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/unit"

	"github.com/hdtv/hdtv/internal/display"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		ev   key.Event
		want string
		ok   bool
	}{
		{key.Event{Name: "Z"}, "z", true},
		{key.Event{Name: "Z", Modifiers: key.ModShift}, "Z", true},
		{key.Event{Name: "M", Modifiers: key.ModShift}, "M", true},
		{key.Event{Name: "1"}, "1", true},
		{key.Event{Name: key.NameLeftArrow}, display.KeyLeft, true},
		{key.Event{Name: key.NameDownArrow}, display.KeyDown, true},
		{key.Event{Name: key.NameF1}, "", false},
		{key.Event{Name: key.NameReturn}, "", false},
	}
	for _, tt := range tests {
		got, ok := translateKey(tt.ev)
		if ok != tt.ok || got.Name != tt.want {
			t.Errorf("translateKey(%q, %v) = %q, %v; want %q, %v",
				tt.ev.Name, tt.ev.Modifiers, got.Name, ok, tt.want, tt.ok)
		}
	}
}

func TestIsQuit(t *testing.T) {
	if !isQuit(key.Event{Name: key.NameEscape}) {
		t.Errorf("Escape does not quit")
	}
	if !isQuit(key.Event{Name: "Q"}) {
		t.Errorf("q does not quit")
	}
	if isQuit(key.Event{Name: "Q", Modifiers: key.ModShift}) {
		t.Errorf("Q quits")
	}
}

func TestTranslatePointer(t *testing.T) {
	var pressed display.Button

	evs := translatePointer(pointer.Event{Kind: pointer.Press, Position: f32.Pt(10.6, 20), Buttons: pointer.ButtonPrimary}, &pressed)
	want := display.ButtonEvent{X: 10, Y: 20, Button: display.ButtonPrimary, Press: true}
	if len(evs) != 1 || evs[0] != want {
		t.Fatalf("press = %v, want %v", evs, want)
	}
	if pressed != display.ButtonPrimary {
		t.Errorf("pressed = %v", pressed)
	}

	if evs := translatePointer(pointer.Event{Kind: pointer.Leave, Position: f32.Pt(-5, 20)}, &pressed); len(evs) != 0 {
		t.Errorf("leave during a drag gave %v", evs)
	}

	evs = translatePointer(pointer.Event{Kind: pointer.Drag, Position: f32.Pt(30, 20), Buttons: pointer.ButtonPrimary}, &pressed)
	if len(evs) != 1 || evs[0] != (display.MotionEvent{X: 30, Y: 20}) {
		t.Errorf("drag = %v", evs)
	}

	evs = translatePointer(pointer.Event{Kind: pointer.Release, Position: f32.Pt(30, 20)}, &pressed)
	if len(evs) != 1 || evs[0] != (display.ButtonEvent{X: 30, Y: 20, Button: display.ButtonPrimary}) {
		t.Errorf("release = %v", evs)
	}
	if pressed != 0 {
		t.Errorf("pressed after release = %v", pressed)
	}

	evs = translatePointer(pointer.Event{Kind: pointer.Scroll, Position: f32.Pt(1, 2), Scroll: f32.Pt(0, -3)}, &pressed)
	if len(evs) != 2 || evs[0] != (display.ButtonEvent{X: 1, Y: 2, Button: display.ButtonWheelUp, Press: true}) {
		t.Errorf("scroll up = %v", evs)
	}
	evs = translatePointer(pointer.Event{Kind: pointer.Scroll, Scroll: f32.Pt(0, 2)}, &pressed)
	if len(evs) != 2 || evs[0].(display.ButtonEvent).Button != display.ButtonWheelDown {
		t.Errorf("scroll down = %v", evs)
	}

	if evs := translatePointer(pointer.Event{Kind: pointer.Leave, Position: f32.Pt(0, 0)}, &pressed); len(evs) != 1 {
		t.Errorf("leave = %v", evs)
	}
}

func TestScrollbarGeometry(t *testing.T) {
	var s scrollbar
	s.SetRange(1000, 100)
	s.SetPosition(5000)
	if s.pos != 900 {
		t.Errorf("pos = %d, want clamped 900", s.pos)
	}

	start, length := s.thumb(200)
	if start != 180 || length != 20 {
		t.Errorf("thumb = %d, %d; want 180, 20", start, length)
	}

	s.length = 200
	if got := s.trackToPos(18); got != 90 {
		t.Errorf("trackToPos(18) = %d, want 90", got)
	}

	s.SetRange(50, 100)
	if start, length := s.thumb(200); start != 0 || length != 200 {
		t.Errorf("thumb with everything visible = %d, %d", start, length)
	}
	if s.pos != 0 {
		t.Errorf("pos = %d", s.pos)
	}
}

func TestScrollbarFollowsViewport(t *testing.T) {
	var s scrollbar
	v := display.NewViewport(nil)
	v.SetScrollbar(&s)
	if s.size == 0 || s.page == 0 {
		t.Errorf("viewport left scrollbar range at %d, %d", s.size, s.page)
	}
}

func TestStatusBar(t *testing.T) {
	var s statusBar
	s.SetText("1.00 2.00", display.StatusPosition)
	s.SetText("AUTO", display.StatusScale)
	s.SetText("ignored", 7)
	if s.Text(display.StatusPosition) != "1.00 2.00" || s.Text(display.StatusScale) != "AUTO" {
		t.Errorf("parts = %q", s.parts)
	}
	if s.Text(7) != "" || s.Text(statusMessage) != "" {
		t.Errorf("unexpected text in parts %q", s.parts)
	}
}

func TestScaleBorders(t *testing.T) {
	if got := scaleBorders(unit.Metric{PxPerDp: 1}); got != [4]int{60, 3, 4, 30} {
		t.Errorf("borders at 1x = %v", got)
	}
	if got := scaleBorders(unit.Metric{PxPerDp: 2}); got != [4]int{120, 6, 8, 60} {
		t.Errorf("borders at 2x = %v", got)
	}
}
