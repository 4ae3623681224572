package anchor

import (
	"fmt"
	"strings"
)

// Location is the side of the target the floating element is placed on.
type Location int

const (
	// LocationUnset applies no directional shift.
	LocationUnset Location = iota
	// LocationRight places the element beside the target, to its right.
	LocationRight
	// LocationLeft places the element beside the target, to its left.
	LocationLeft
	// LocationBelow places the element underneath the target.
	LocationBelow
	// LocationTop places the element fully above the target.
	LocationTop
)

// String returns the lowercase name used in options and on the command line.
func (l Location) String() string {
	switch l {
	case LocationRight:
		return "right"
	case LocationLeft:
		return "left"
	case LocationBelow:
		return "below"
	case LocationTop:
		return "top"
	default:
		return ""
	}
}

// ParseLocation parses a location name. The empty string and "unset" map to
// LocationUnset.
func ParseLocation(s string) (Location, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unset":
		return LocationUnset, nil
	case "right":
		return LocationRight, nil
	case "left":
		return LocationLeft, nil
	case "below":
		return LocationBelow, nil
	case "top":
		return LocationTop, nil
	}
	return LocationUnset, fmt.Errorf("unknown location %q", s)
}

// Align controls horizontal alignment against an anchor element.
type Align int

const (
	// AlignStart lines up the left edges.
	AlignStart Align = iota
	// AlignCenter centers the element over the anchor.
	AlignCenter
	// AlignEnd lines up the right edges.
	AlignEnd
)

// String returns the lowercase name used in options and on the command line.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "start"
	}
}

// ParseAlign parses an alignment name. The empty string maps to AlignStart.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "start":
		return AlignStart, nil
	case "center":
		return AlignCenter, nil
	case "end":
		return AlignEnd, nil
	}
	return AlignStart, fmt.Errorf("unknown align %q", s)
}
