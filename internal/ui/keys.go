package ui

import (
	"strings"

	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"

	"github.com/hdtv/hdtv/internal/display"
)

// translateKey maps a gio key press to the name the viewport binds.
// Letters are lower case unless shift is held.
func translateKey(e key.Event) (display.KeyEvent, bool) {
	switch e.Name {
	case key.NameLeftArrow:
		return display.KeyEvent{Name: display.KeyLeft}, true
	case key.NameRightArrow:
		return display.KeyEvent{Name: display.KeyRight}, true
	case key.NameUpArrow:
		return display.KeyEvent{Name: display.KeyUp}, true
	case key.NameDownArrow:
		return display.KeyEvent{Name: display.KeyDown}, true
	}

	name := string(e.Name)
	if len(name) != 1 {
		return display.KeyEvent{}, false
	}
	if e.Modifiers.Contain(key.ModShift) {
		name = strings.ToUpper(name)
	} else {
		name = strings.ToLower(name)
	}
	return display.KeyEvent{Name: name}, true
}

// isQuit reports whether e closes the window.
func isQuit(e key.Event) bool {
	return e.Name == key.NameEscape || (e.Name == "Q" && e.Modifiers == 0)
}

// pressedButton returns the viewport button for a press. Only one button
// is reported when several are down.
func pressedButton(b pointer.Buttons) (display.Button, bool) {
	switch {
	case b.Contain(pointer.ButtonPrimary):
		return display.ButtonPrimary, true
	case b.Contain(pointer.ButtonTertiary):
		return display.ButtonMiddle, true
	case b.Contain(pointer.ButtonSecondary):
		return display.ButtonSecondary, true
	}
	return 0, false
}

// wheelButton maps a scroll amount to a wheel notch. Scrolling up zooms in.
func wheelButton(scroll f32.Point) (display.Button, bool) {
	switch {
	case scroll.Y < 0:
		return display.ButtonWheelUp, true
	case scroll.Y > 0:
		return display.ButtonWheelDown, true
	}
	return 0, false
}

// translatePointer converts a gio pointer event into viewport events.
// pressed holds the button of the press in progress and is updated.
func translatePointer(e pointer.Event, pressed *display.Button) []display.Event {
	x, y := int(e.Position.X), int(e.Position.Y)
	switch e.Kind {
	case pointer.Press:
		b, ok := pressedButton(e.Buttons)
		if !ok {
			return nil
		}
		*pressed = b
		return []display.Event{display.ButtonEvent{X: x, Y: y, Button: b, Press: true}}
	case pointer.Release, pointer.Cancel:
		b := *pressed
		*pressed = 0
		if b == 0 {
			return nil
		}
		return []display.Event{display.ButtonEvent{X: x, Y: y, Button: b}}
	case pointer.Move, pointer.Drag:
		return []display.Event{display.MotionEvent{X: x, Y: y}}
	case pointer.Enter:
		return []display.Event{display.CrossingEvent{X: x, Y: y, Enter: true}}
	case pointer.Leave:
		if *pressed != 0 {
			// a drag keeps the grab after leaving the area
			return nil
		}
		return []display.Event{display.CrossingEvent{X: x, Y: y}}
	case pointer.Scroll:
		b, ok := wheelButton(e.Scroll)
		if !ok {
			return nil
		}
		return []display.Event{
			display.ButtonEvent{X: x, Y: y, Button: b, Press: true},
			display.ButtonEvent{X: x, Y: y, Button: b},
		}
	}
	return nil
}
