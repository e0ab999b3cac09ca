package input

// ClickSlop is the travel in points beyond which a press becomes a drag.
const ClickSlop = 4

// Gesture tracks a single pressed button to tell clicks from drags.
type Gesture struct {
	pressed      uint8 // 0 when no button is held
	downX, downY int
	lastX, lastY int
	dragging     bool
}

// Down records a press.
func (g *Gesture) Down(out []Event, x, y int, button uint8) []Event {
	if g.pressed == 0 {
		g.pressed = button
		g.downX, g.downY = x, y
		g.lastX, g.lastY = x, y
		g.dragging = false
	}
	return append(out, Event{Type: EventPointerDown, X: x, Y: y, Button: button})
}

// Move emits a pointer move, plus a drag while a button is held and the
// pointer has left the click slop.
func (g *Gesture) Move(out []Event, x, y int) []Event {
	out = append(out, Event{Type: EventPointerMove, X: x, Y: y})
	if g.pressed == 0 {
		return out
	}
	if !g.dragging {
		dx, dy := x-g.downX, y-g.downY
		if dx*dx+dy*dy < ClickSlop*ClickSlop {
			return out
		}
		g.dragging = true
	}
	out = append(out, Event{
		Type:   EventDrag,
		X:      x,
		Y:      y,
		DX:     float32(x - g.lastX),
		DY:     float32(y - g.lastY),
		Button: g.pressed,
	})
	g.lastX, g.lastY = x, y
	return out
}

// Up records a release and emits a click when the press never became a drag.
func (g *Gesture) Up(out []Event, x, y int, button uint8) []Event {
	out = append(out, Event{Type: EventPointerUp, X: x, Y: y, Button: button})
	if button != g.pressed {
		return out
	}
	dx, dy := x-g.downX, y-g.downY
	if !g.dragging && dx*dx+dy*dy < ClickSlop*ClickSlop {
		out = append(out, Event{Type: EventClick, X: x, Y: y, Button: button})
	}
	g.pressed = 0
	g.dragging = false
	return out
}
