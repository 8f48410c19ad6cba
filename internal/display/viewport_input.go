package display

// Event is an input event delivered to a Viewport in surface pixels.
type Event interface {
	isEvent()
}

// Button numbers follow the X11 convention, with the wheel reported as
// buttons 4 and 5.
type Button int

const (
	ButtonPrimary   Button = 1
	ButtonMiddle    Button = 2
	ButtonSecondary Button = 3
	ButtonWheelUp   Button = 4
	ButtonWheelDown Button = 5
)

type ButtonEvent struct {
	X, Y   int
	Button Button
	Press  bool
}

type MotionEvent struct {
	X, Y int
}

type CrossingEvent struct {
	X, Y  int
	Enter bool
}

// KeyEvent carries a key name: a printable character such as "z" or "Z",
// or one of the Key constants.
type KeyEvent struct {
	Name string
}

func (ButtonEvent) isEvent()   {}
func (MotionEvent) isEvent()   {}
func (CrossingEvent) isEvent() {}
func (KeyEvent) isEvent()      {}

// Names of the non-printable keys a Viewport reacts to.
const (
	KeyLeft  = "Left"
	KeyRight = "Right"
	KeyUp    = "Up"
	KeyDown  = "Down"
)

const (
	// ShiftFraction is the part of the visible region an arrow key
	// scrolls by.
	ShiftFraction = 0.1
	// KeyZoomFactor is the zoom step of the zoom keys.
	KeyZoomFactor = 2.0
	// WheelZoomFactor is the zoom step of one wheel notch.
	WheelZoomFactor = 1.25
)

// HandleEvent dispatches ev and reports whether it was consumed.
func (v *Viewport) HandleEvent(ev Event) bool {
	switch e := ev.(type) {
	case ButtonEvent:
		return v.HandleButton(e)
	case MotionEvent:
		return v.HandleMotion(e)
	case CrossingEvent:
		return v.HandleCrossing(e)
	case KeyEvent:
		return v.HandleKey(e)
	}
	return false
}

// HandleButton starts and ends drags and zooms on wheel notches.
func (v *Viewport) HandleButton(ev ButtonEvent) bool {
	if !ev.Press {
		if ev.Button == ButtonPrimary && v.dragging {
			v.dragging = false
			v.log("[VIEWPORT] drag ended at offset %.4g", v.xOffset)
		}
		return true
	}

	v.moveCursor(ev.X, ev.Y)
	switch ev.Button {
	case ButtonPrimary:
		if v.painter.IsWithin(ev.X, ev.Y) {
			v.dragging = true
			v.dragStartX = ev.X
			v.dragStartOffset = v.xOffset
		}
	case ButtonWheelUp:
		v.XZoomAroundCursor(WheelZoomFactor)
	case ButtonWheelDown:
		v.XZoomAroundCursor(1 / WheelZoomFactor)
	default:
		return false
	}
	return true
}

// HandleMotion tracks the cursor and scrolls while dragging.
func (v *Viewport) HandleMotion(ev MotionEvent) bool {
	if v.dragging {
		offset := v.dragStartOffset + float64(v.dragStartX-ev.X)/v.painter.XZoom()
		v.SetXOffset(offset, true)
	}
	v.moveCursor(ev.X, ev.Y)
	return true
}

// HandleCrossing shows or hides the cursor when the pointer enters or
// leaves the surface.
func (v *Viewport) HandleCrossing(ev CrossingEvent) bool {
	if ev.Enter {
		v.moveCursor(ev.X, ev.Y)
		return true
	}
	v.cursorVisible = false
	v.drawCursor()
	v.updateStatusPos()
	return true
}

func (v *Viewport) moveCursor(x, y int) {
	v.cursorX, v.cursorY = x, y
	v.cursorVisible = v.painter.IsWithin(x, y)
	v.drawCursor()
	v.updateStatusPos()
}

// Dragging reports whether a drag is in progress.
func (v *Viewport) Dragging() bool { return v.dragging }

// HandleKey applies the viewer key bindings and reports whether the key
// is bound.
func (v *Viewport) HandleKey(ev KeyEvent) bool {
	switch ev.Name {
	case KeyLeft:
		v.ShiftXOffset(-ShiftFraction, true)
	case KeyRight:
		v.ShiftXOffset(ShiftFraction, true)
	case KeyUp:
		v.ShiftYOffset(ShiftFraction, true)
	case KeyDown:
		v.ShiftYOffset(-ShiftFraction, true)
	case "z":
		v.XZoomAroundCursor(KeyZoomFactor)
	case "x":
		v.XZoomAroundCursor(1 / KeyZoomFactor)
	case "Z":
		v.YZoomAroundCursor(KeyZoomFactor)
	case "X":
		v.YZoomAroundCursor(1 / KeyZoomFactor)
	case "l":
		v.ToggleLogScale()
	case "a":
		v.SetYAutoScale(!v.yAutoScale, true)
	case "y":
		v.YAutoScaleOnce(true)
	case "f":
		v.ShowAll()
	case "b":
		v.ToBegin()
	case "1":
		v.SetViewMode(ViewSolid)
	case "2":
		v.SetViewMode(ViewHollow)
	case "3":
		v.SetViewMode(ViewDotted)
	case "m":
		if v.cursorVisible {
			v.AddXMarker(v.CursorX(), DefaultColor, true)
		}
	case "M":
		if id := v.FindMarkerNearestCursor(v.markerTolerance); id != NotFound {
			v.DeleteXMarker(id, true)
		}
	default:
		return false
	}
	return true
}
