package anchor

// DefaultMaxHeightMargin is the space left below a floating element whose
// height has been limited to fit its container.
const DefaultMaxHeightMargin = 20

// Request describes one placement.
type Request struct {
	// Target is the anchor element. Nil targets the pointer.
	Target Element
	// Pointer is the pointer snapshot used when Target is nil.
	Pointer Pointer
	// Absolute selects viewport-relative target coordinates and clamps
	// negative results to zero.
	Absolute bool
	Location Location
	// Align only applies to element targets that report a width.
	Align            Align
	XOffset, YOffset float64
	// YAnchor, when set, pins the result directly above its top edge and
	// overrides every other vertical rule.
	YAnchor Element
	// Parent is the bounding container. Nil is treated as zero-size.
	Parent Container
}

// Result is a computed placement.
type Result struct {
	Position
	// ClampHeight reports that the element is taller than the space left
	// below Top; MaxHeight is then the suggested height limit.
	ClampHeight bool    `json:"clampHeight,omitempty"`
	MaxHeight   float64 `json:"maxHeight,omitempty"`
}

// Apply sets the suggested max height on el if the result asks for one and
// el accepts it. It reports whether el was changed.
func (r Result) Apply(el Element) bool {
	if !r.ClampHeight {
		return false
	}
	s, ok := el.(MaxHeightSetter)
	if !ok {
		return false
	}
	s.SetMaxHeight(r.MaxHeight)
	return true
}

// Compute places floating according to req.
//
// It never fails: missing inputs participate as zero, which can produce a
// poor but valid position.
func Compute(floating Element, req Request) Result {
	return compute(floating, req, DefaultMaxHeightMargin)
}

func compute(floating Element, req Request, margin float64) Result {
	var target Box
	if req.Target == nil {
		target = req.Pointer.Box()
	} else {
		target = MeasureBox(req.Target, req.Absolute)
	}

	elementWidth, elementHeight := outerSize(floating)
	windowWidth, windowHeight := containerSize(req.Parent)

	var res Result

	if windowWidth-target.ActualX < elementWidth {
		// Right-align to the container, correcting for the switch from
		// viewport to positioning coordinates.
		res.Left = windowWidth - elementWidth - (target.ActualX - target.X)
	} else {
		res.Left = target.X
	}

	if target.Width != 0 && req.Location == LocationRight {
		res.Left += target.Width
	} else if req.Location == LocationLeft {
		res.Left -= elementWidth
	}

	if target.ActualY+elementHeight > windowHeight {
		res.Top = windowHeight - elementHeight
	} else {
		res.Top = target.Y
	}

	if target.Height != 0 {
		switch req.Location {
		case LocationBelow:
			res.Top += target.Height
		case LocationTop:
			res.Top = target.Y - elementHeight
		}
	}

	if target.Width != 0 && req.Target != nil && elementWidth > 0 {
		switch req.Align {
		case AlignCenter:
			res.Left -= (elementWidth - target.Width) / 2
		case AlignEnd:
			res.Left -= elementWidth - target.Width
		}
	}

	if elementHeight > windowHeight-res.Top {
		res.ClampHeight = true
		res.MaxHeight = windowHeight - margin
	}

	if req.YAnchor != nil {
		res.Top = MeasureBox(req.YAnchor, req.Absolute).Y - elementHeight
	}

	if req.Absolute {
		res.Top = max(res.Top, 0)
		res.Left = max(res.Left, 0)
	}

	if req.Location == LocationBelow {
		res.Top += req.YOffset
	} else {
		res.Top -= req.YOffset
	}
	res.Left += req.XOffset

	return res
}
