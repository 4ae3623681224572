package tcellhost

import (
	"github.com/gdamore/tcell/v2"
	"github.com/inkwell-notes/anchor"
	"github.com/mattn/go-runewidth"
)

// Region is a fixed cell rectangle, such as a button, usable as an anchor.
// Terminals have no offset parents, so both rects are the same.
type Region struct {
	X, Y, Width, Height int
	Label               string
}

var _ anchor.Element = Region{}

// NewButton creates a one-row Region sized to its label plus one cell of
// padding on each side.
func NewButton(x, y int, label string) Region {
	return Region{X: x, Y: y, Width: runewidth.StringWidth(label) + 2, Height: 1, Label: label}
}

// OffsetRect implements anchor.Element.
func (r Region) OffsetRect() anchor.Rect {
	return anchor.NewRect(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
}

// BoundingRect implements anchor.Element.
func (r Region) BoundingRect() anchor.Rect {
	return r.OffsetRect()
}

// Contains reports whether the cell (x, y) is inside the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Draw fills the region with style and centers the label in its first row.
func (r Region) Draw(s tcell.Screen, style tcell.Style) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
	pad := (r.Width - runewidth.StringWidth(r.Label)) / 2
	drawString(s, r.X+max(pad, 0), r.Y, r.Width, r.Label, style)
}

// drawString draws text at (x, y), clipped to width cells.
func drawString(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	used := 0
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if used+w > width {
			return
		}
		s.SetContent(x+used, y, ch, nil, style)
		used += w
	}
}
