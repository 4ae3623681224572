package tcellhost

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/inkwell-notes/anchor"
	"github.com/mattn/go-runewidth"
)

// Popup is a bordered block of text used as a floating element.
// Its outer size is measured from the text with display widths, so wide
// characters are accounted for.
type Popup struct {
	lines     []string
	width     int
	height    int
	maxHeight int // 0 means unlimited
}

var (
	_ anchor.Element         = (*Popup)(nil)
	_ anchor.MaxHeightSetter = (*Popup)(nil)
)

// NewPopup creates a Popup showing lines.
func NewPopup(lines ...string) *Popup {
	p := &Popup{}
	p.SetLines(lines...)
	return p
}

// SetLines replaces the content and re-measures. Any height limit is kept.
func (p *Popup) SetLines(lines ...string) {
	p.lines = append([]string(nil), lines...)
	inner := 0
	for _, l := range p.lines {
		inner = max(inner, runewidth.StringWidth(l))
	}
	p.width = inner + 2
	p.height = len(p.lines) + 2
}

// Size returns the outer size in cells, before any height limit.
func (p *Popup) Size() (width, height int) {
	return p.width, p.height
}

// OffsetRect implements anchor.Element. Only the size is meaningful.
func (p *Popup) OffsetRect() anchor.Rect {
	return anchor.NewRect(0, 0, float64(p.width), float64(p.height))
}

// BoundingRect implements anchor.Element.
func (p *Popup) BoundingRect() anchor.Rect {
	return p.OffsetRect()
}

// SetMaxHeight implements anchor.MaxHeightSetter. Fractional limits round
// down; non-positive limits leave only the border.
func (p *Popup) SetMaxHeight(h float64) {
	p.maxHeight = max(int(math.Floor(h)), 2)
}

// ClearMaxHeight removes any height limit.
func (p *Popup) ClearMaxHeight() {
	p.maxHeight = 0
}

// MaxHeight returns the current height limit, or 0 if unlimited.
func (p *Popup) MaxHeight() int {
	return p.maxHeight
}

// drawnHeight is the number of rows Draw uses.
func (p *Popup) drawnHeight() int {
	if p.maxHeight > 0 && p.maxHeight < p.height {
		return p.maxHeight
	}
	return p.height
}

// Draw renders the popup with its top-left corner at pos. Cells outside the
// screen are skipped by tcell; lines beyond the height limit are cut.
func (p *Popup) Draw(s tcell.Screen, pos anchor.Position, style tcell.Style) {
	left := int(math.Round(pos.Left))
	top := int(math.Round(pos.Top))
	height := p.drawnHeight()
	right := left + p.width - 1
	bottom := top + height - 1

	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			ch := ' '
			switch {
			case (y == top || y == bottom) && (x == left || x == right):
				ch = cornerRune(x == left, y == top)
			case y == top || y == bottom:
				ch = tcell.RuneHLine
			case x == left || x == right:
				ch = tcell.RuneVLine
			}
			s.SetContent(x, y, ch, nil, style)
		}
	}

	for i, line := range p.lines {
		row := top + 1 + i
		if row >= bottom {
			break
		}
		drawString(s, left+1, row, p.width-2, line, style)
	}
}

func cornerRune(left, top bool) rune {
	switch {
	case left && top:
		return tcell.RuneULCorner
	case top:
		return tcell.RuneURCorner
	case left:
		return tcell.RuneLLCorner
	default:
		return tcell.RuneLRCorner
	}
}
