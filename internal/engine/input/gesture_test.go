package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func types(events []Event) []EventType {
	out := make([]EventType, len(events))
	for i, e := range events {
		out[i] = e.Type
	}
	return out
}

func TestClick(t *testing.T) {
	var g Gesture
	var ev []Event
	ev = g.Down(ev, 100, 100, ButtonLeft)
	ev = g.Move(ev, 102, 101)
	ev = g.Up(ev, 102, 101, ButtonLeft)

	assert.Equal(t, []EventType{EventPointerDown, EventPointerMove, EventPointerUp, EventClick}, types(ev))
	click := ev[len(ev)-1]
	assert.Equal(t, 102, click.X)
	assert.Equal(t, ButtonLeft, click.Button)
}

func TestDragSuppressesClick(t *testing.T) {
	var g Gesture
	var ev []Event
	ev = g.Down(ev, 10, 10, ButtonLeft)
	ev = g.Move(ev, 20, 10)
	ev = g.Move(ev, 25, 13)
	// Back inside the slop still counts as a drag
	ev = g.Up(ev, 11, 10, ButtonLeft)

	assert.Equal(t, []EventType{
		EventPointerDown,
		EventPointerMove, EventDrag,
		EventPointerMove, EventDrag,
		EventPointerUp,
	}, types(ev))

	assert.Equal(t, float32(10), ev[2].DX)
	assert.Equal(t, float32(0), ev[2].DY)
	assert.Equal(t, float32(5), ev[4].DX)
	assert.Equal(t, float32(3), ev[4].DY)
}

func TestHoverWithoutButton(t *testing.T) {
	var g Gesture
	ev := g.Move(nil, 50, 60)
	ev = g.Move(ev, 90, 60)
	assert.Equal(t, []EventType{EventPointerMove, EventPointerMove}, types(ev))
}

func TestSecondButtonIgnoredForClick(t *testing.T) {
	var g Gesture
	var ev []Event
	ev = g.Down(ev, 0, 0, ButtonLeft)
	ev = g.Down(ev, 0, 0, ButtonRight)
	ev = g.Up(ev, 0, 0, ButtonRight)
	assert.NotContains(t, types(ev), EventClick)

	ev = g.Up(ev, 1, 1, ButtonLeft)
	assert.Equal(t, EventClick, ev[len(ev)-1].Type)
}

func TestRightDragCarriesButton(t *testing.T) {
	var g Gesture
	ev := g.Down(nil, 0, 0, ButtonRight)
	ev = g.Move(ev, 0, 30)
	assert.Equal(t, EventDrag, ev[len(ev)-1].Type)
	assert.Equal(t, ButtonRight, ev[len(ev)-1].Button)
}
