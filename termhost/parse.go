package termhost

// input is one decoded unit of terminal input.
type input struct {
	kind inputKind
	x, y int // 0-indexed cell, for inputMouse
}

type inputKind int

const (
	inputMouse inputKind = iota
	inputQuit
)

// Terminal control sequences for SGR-1006 mouse reporting with any-motion
// tracking, so plain moves are reported and not only drags.
const (
	enableMouse  = "\x1b[?1003h\x1b[?1006h"
	disableMouse = "\x1b[?1006l\x1b[?1003l"
)

// parseInput decodes mouse reports and quit keys (Ctrl-C, q) from data.
// Other input is skipped. An incomplete trailing escape sequence is returned
// as the remainder so it can be completed by the next read.
func parseInput(data []byte) ([]input, []byte) {
	var out []input
	i := 0

	for i < len(data) {
		b := data[i]

		switch {
		case b == 0x03 || b == 'q':
			out = append(out, input{kind: inputQuit})
			i++
		case b == 0x1b:
			if i+2 < len(data) && data[i+1] == '[' && data[i+2] == '<' {
				x, y, consumed, complete := parseMouseSGR(data[i:])
				if !complete {
					return out, data[i:]
				}
				if consumed > 0 {
					out = append(out, input{kind: inputMouse, x: x, y: y})
					i += consumed
					continue
				}
			} else if i+2 >= len(data) && isPrefixOf(data[i:], "\x1b[<") {
				return out, data[i:]
			}
			i++
		default:
			i++
		}
	}

	return out, nil
}

func isPrefixOf(b []byte, s string) bool {
	if len(b) > len(s) {
		return false
	}
	return string(b) == s[:len(b)]
}

// parseMouseSGR parses an SGR-1006 mouse sequence.
// Format: ESC [ < button ; x ; y M (press/motion) or ESC [ < button ; x ; y m (release)
// The button field encodes button, modifier and motion bits; only the
// position matters here.
//
// Returns the 0-indexed position and the bytes consumed. complete is false
// when data ends before the final byte; consumed is 0 for a malformed sequence.
func parseMouseSGR(data []byte) (x, y, consumed int, complete bool) {
	if len(data) < 3 || data[0] != 0x1b || data[1] != '[' || data[2] != '<' {
		return 0, 0, 0, true
	}

	// Parse: button ; x ; y
	i := 3
	stage := 0 // 0=button, 1=x, 2=y

	for i < len(data) {
		b := data[i]

		if b >= '0' && b <= '9' {
			switch stage {
			case 1:
				x = x*10 + int(b-'0')
			case 2:
				y = y*10 + int(b-'0')
			}
			i++
			continue
		}

		if b == ';' {
			stage++
			if stage > 2 {
				// Too many semicolons
				return 0, 0, 0, true
			}
			i++
			continue
		}

		// Final byte: 'M' for press/motion, 'm' for release
		if b == 'M' || b == 'm' {
			if stage != 2 || x < 1 || y < 1 {
				return 0, 0, 0, true
			}
			// Convert from 1-indexed to 0-indexed
			return x - 1, y - 1, i + 1, true
		}

		// Unexpected character
		return 0, 0, 0, true
	}

	// Incomplete sequence
	return 0, 0, 0, false
}
