package anchor

// Pointer is a tracked pointer position.
// X and Y are document-relative (scroll-adjusted); ActualX and ActualY are
// viewport-relative.
type Pointer struct {
	X, Y             float64
	ActualX, ActualY float64
}

// Box returns the pointer as a zero-size placement target.
func (p Pointer) Box() Box {
	return Box{X: p.X, Y: p.Y, ActualX: p.ActualX, ActualY: p.ActualY}
}

// PointerEvent is a raw pointer-move report from a host.
//
// Hosts fill whatever they know: page coordinates are document-relative,
// client coordinates are viewport-relative, and the scroll offset relates the
// two. Sources without scrolling (terminals) report the same value for both.
type PointerEvent struct {
	PageX, PageY     float64
	ClientX, ClientY float64
	ScrollX, ScrollY float64
}

// PointerFromEvent converts a pointer-move report into a Pointer.
//
// Page coordinates win when either is non-zero. Otherwise client coordinates
// plus the scroll offset are used, and an event with neither yields the
// origin.
func PointerFromEvent(ev PointerEvent) Pointer {
	var p Pointer
	switch {
	case ev.PageX != 0 || ev.PageY != 0:
		p.X, p.Y = ev.PageX, ev.PageY
	case ev.ClientX != 0 || ev.ClientY != 0:
		p.X = ev.ClientX + ev.ScrollX
		p.Y = ev.ClientY + ev.ScrollY
	}

	if ev.ClientX != 0 || ev.ClientY != 0 {
		p.ActualX, p.ActualY = ev.ClientX, ev.ClientY
	} else {
		p.ActualX = p.X - ev.ScrollX
		p.ActualY = p.Y - ev.ScrollY
	}
	return p
}

// PointerSource delivers pointer-move events.
// Subscribe registers fn and returns a function that removes it.
type PointerSource interface {
	Subscribe(fn func(PointerEvent)) (unsubscribe func())
}
