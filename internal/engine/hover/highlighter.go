// Package hover drives the pointer highlight state machine.
package hover

import (
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/globe-scene/internal/logger"
)

// Styler applies or removes the highlight look of a named object.
type Styler interface {
	Highlight(name string)
	Unhighlight(name string)
}

// Transition records what one pointer event changed.
type Transition struct {
	// Unhighlighted is the previously highlighted name, empty if untouched.
	Unhighlighted string
	// Highlighted is the name highlighted by this event, empty on a miss.
	Highlighted string
}

// Highlighter tracks the single currently highlighted object name.
type Highlighter struct {
	mu      sync.Mutex
	styler  Styler
	current string
}

// NewHighlighter creates a highlighter with nothing highlighted.
func NewHighlighter(styler Styler) *Highlighter {
	return &Highlighter{styler: styler}
}

// Current returns the highlighted name, or "" when none.
func (h *Highlighter) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// Update runs one transition for a pointer-move event. ok reports whether the
// pointer hit an object; name is the nearest hit's name.
//
//   - miss with a previous highlight: unhighlight it and clear
//   - hit on a new name: unhighlight the previous one (if any), highlight the new one
//   - hit on the same name: re-assert the highlight without unhighlighting
func (h *Highlighter) Update(name string, ok bool) Transition {
	h.mu.Lock()
	defer h.mu.Unlock()

	var tr Transition
	switch {
	case !ok:
		if h.current != "" {
			h.styler.Unhighlight(h.current)
			tr.Unhighlighted = h.current
			h.current = ""
		}
	case name != h.current:
		if h.current != "" {
			h.styler.Unhighlight(h.current)
			tr.Unhighlighted = h.current
		}
		h.styler.Highlight(name)
		tr.Highlighted = name
		h.current = name
	default:
		h.styler.Highlight(name)
		tr.Highlighted = name
	}

	if tr.Unhighlighted != "" || tr.Highlighted != "" {
		logger.Debug("hover transition",
			zap.String("from", tr.Unhighlighted),
			zap.String("to", tr.Highlighted),
		)
	}
	return tr
}

// Reset clears any highlight, e.g. when the pointer leaves the window.
func (h *Highlighter) Reset() Transition {
	return h.Update("", false)
}
