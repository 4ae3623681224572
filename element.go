package anchor

// Element is anything with a measurable layout box.
//
// OffsetRect is the element's position relative to its offset parent together
// with its outer size. BoundingRect is the element's box in viewport
// coordinates. Hosts without a separate offset parent can return the same
// rectangle from both.
type Element interface {
	OffsetRect() Rect
	BoundingRect() Rect
}

// Container is a bounding region whose client size constrains placement.
type Container interface {
	ClientSize() (width, height float64)
}

// MaxHeightSetter is implemented by floating elements that accept a height
// limit when they would overflow the bottom of their container.
type MaxHeightSetter interface {
	SetMaxHeight(h float64)
}

// MeasureBox takes a fresh snapshot of el's layout box.
// When absolute is true the box's X and Y are viewport-relative instead of
// offset-parent-relative. A nil element measures as a zero box.
func MeasureBox(el Element, absolute bool) Box {
	if el == nil {
		return Box{}
	}
	offset := el.OffsetRect()
	bounds := el.BoundingRect()
	b := Box{
		X:       offset.X,
		Y:       offset.Y,
		Width:   bounds.Width,
		Height:  bounds.Height,
		ActualX: bounds.X,
		ActualY: bounds.Y,
	}
	if absolute {
		b.X = b.ActualX
		b.Y = b.ActualY
	}
	return b
}

// StaticElement is an Element with fixed geometry.
type StaticElement struct {
	Offset Rect
	Bounds Rect
}

var _ Element = StaticElement{}

// ElementAt returns a StaticElement whose offset and bounding rects are both r.
func ElementAt(r Rect) StaticElement {
	return StaticElement{Offset: r, Bounds: r}
}

// OffsetRect implements Element.
func (e StaticElement) OffsetRect() Rect { return e.Offset }

// BoundingRect implements Element.
func (e StaticElement) BoundingRect() Rect { return e.Bounds }

// Size is a Container with a fixed client size.
type Size struct {
	Width, Height float64
}

var _ Container = Size{}

// ClientSize implements Container.
func (s Size) ClientSize() (float64, float64) {
	return s.Width, s.Height
}

// containerSize reads c's client size, treating nil as zero.
func containerSize(c Container) (float64, float64) {
	if c == nil {
		return 0, 0
	}
	return c.ClientSize()
}

// outerSize is the floating element's own width and height.
func outerSize(el Element) (float64, float64) {
	if el == nil {
		return 0, 0
	}
	r := el.OffsetRect()
	return r.Width, r.Height
}
