package anchor

import (
	"fmt"

	"go.uber.org/zap"
)

// Option configures a single placement made through a Positioner.
type Option func(*Request)

// WithTarget anchors to el instead of the pointer. A nil el targets the pointer.
func WithTarget(el Element) Option {
	return func(r *Request) {
		r.Target = el
	}
}

// WithPointerTarget targets the tracked pointer. This is the default.
func WithPointerTarget() Option {
	return func(r *Request) {
		r.Target = nil
	}
}

// WithAbsolute uses viewport-relative target coordinates and clamps negative
// results to zero.
func WithAbsolute(absolute bool) Option {
	return func(r *Request) {
		r.Absolute = absolute
	}
}

// WithLocation sets the side of the target to place on.
func WithLocation(l Location) Option {
	return func(r *Request) {
		r.Location = l
	}
}

// WithAlign sets the horizontal alignment against an element target.
func WithAlign(a Align) Option {
	return func(r *Request) {
		r.Align = a
	}
}

// WithOffset nudges the result. The y offset moves the element down for
// LocationBelow and up otherwise.
func WithOffset(x, y float64) Option {
	return func(r *Request) {
		r.XOffset = x
		r.YOffset = y
	}
}

// WithYAnchor pins the result directly above el's top edge.
func WithYAnchor(el Element) Option {
	return func(r *Request) {
		r.YAnchor = el
	}
}

// WithParent overrides the Positioner's bounding container.
func WithParent(c Container) Option {
	return func(r *Request) {
		r.Parent = c
	}
}

// PositionerOption is a functional option for configuring a Positioner.
type PositionerOption func(*Positioner) error

// WithTracker sets the pointer tracker used for pointer targets.
// Without one, pointer targets resolve to the origin.
func WithTracker(t *Tracker) PositionerOption {
	return func(p *Positioner) error {
		p.tracker = t
		return nil
	}
}

// WithContainer sets the default bounding container.
func WithContainer(c Container) PositionerOption {
	return func(p *Positioner) error {
		p.container = c
		return nil
	}
}

// WithMaxHeightMargin sets the space left below a height-limited element.
// Default is DefaultMaxHeightMargin. Must not be negative.
func WithMaxHeightMargin(margin float64) PositionerOption {
	return func(p *Positioner) error {
		if margin < 0 {
			return fmt.Errorf("max height margin must not be negative, got %v", margin)
		}
		p.margin = margin
		return nil
	}
}

// WithLogger sets the logger. Default is a no-op logger.
func WithLogger(l *zap.Logger) PositionerOption {
	return func(p *Positioner) error {
		if l == nil {
			return fmt.Errorf("logger must not be nil")
		}
		p.logger = l
		return nil
	}
}
