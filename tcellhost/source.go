// Package tcellhost adapts a tcell screen to anchor. Mouse events become
// pointer events, the screen is the bounding container, and Popup is a
// text-measured floating element. Coordinates are cells.
package tcellhost

import (
	"github.com/gdamore/tcell/v2"
	"github.com/inkwell-notes/anchor"
)

// Source is an anchor.PointerSource fed from a tcell event loop.
type Source struct {
	events anchor.Events[anchor.PointerEvent]
}

var _ anchor.PointerSource = (*Source)(nil)

// NewSource creates a Source. Call Dispatch for every polled event.
func NewSource() *Source {
	return &Source{}
}

// Subscribe implements anchor.PointerSource.
func (s *Source) Subscribe(fn func(anchor.PointerEvent)) func() {
	return s.events.Subscribe(fn)
}

// Dispatch forwards ev to subscribers if it is a mouse event and reports
// whether it was one.
func (s *Source) Dispatch(ev tcell.Event) bool {
	m, ok := ev.(*tcell.EventMouse)
	if !ok {
		return false
	}
	x, y := m.Position()
	fx, fy := float64(x), float64(y)
	s.events.Emit(anchor.PointerEvent{PageX: fx, PageY: fy, ClientX: fx, ClientY: fy})
	return true
}

// Screen is a tcell.Screen as an anchor.Container.
type Screen struct {
	tcell.Screen
}

var _ anchor.Container = Screen{}

// ClientSize implements anchor.Container.
func (s Screen) ClientSize() (float64, float64) {
	w, h := s.Size()
	return float64(w), float64(h)
}
