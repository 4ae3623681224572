package termhost

import (
	"reflect"
	"testing"
)

func TestParseMouseSGR(t *testing.T) {
	type tc struct {
		input    string
		x, y     int
		consumed int
		complete bool
	}

	tests := map[string]tc{
		"left press at 1,1":    {input: "\x1b[<0;1;1M", x: 0, y: 0, consumed: 9, complete: true},
		"release at 10,20":     {input: "\x1b[<0;10;20m", x: 9, y: 19, consumed: 11, complete: true},
		"motion without button": {input: "\x1b[<35;15;25M", x: 14, y: 24, consumed: 12, complete: true},
		"wheel up":             {input: "\x1b[<64;10;10M", x: 9, y: 9, consumed: 12, complete: true},
		"large coordinates":    {input: "\x1b[<0;200;100M", x: 199, y: 99, consumed: 13, complete: true},
		"trailing bytes":       {input: "\x1b[<0;2;3Mabc", x: 1, y: 2, consumed: 9, complete: true},
		"incomplete":           {input: "\x1b[<35;15", complete: false},
		"too many fields":      {input: "\x1b[<0;1;1;1M", complete: true},
		"missing field":        {input: "\x1b[<0;1M", complete: true},
		"zero coordinate":      {input: "\x1b[<0;0;5M", complete: true},
		"unexpected character": {input: "\x1b[<0;1xM", complete: true},
		"not sgr":              {input: "\x1b[A", complete: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			x, y, consumed, complete := parseMouseSGR([]byte(tt.input))
			if complete != tt.complete {
				t.Fatalf("parseMouseSGR(%q) complete = %v, want %v", tt.input, complete, tt.complete)
			}
			if consumed != tt.consumed {
				t.Errorf("parseMouseSGR(%q) consumed %d bytes, want %d", tt.input, consumed, tt.consumed)
			}
			if x != tt.x || y != tt.y {
				t.Errorf("parseMouseSGR(%q) = (%d, %d), want (%d, %d)", tt.input, x, y, tt.x, tt.y)
			}
		})
	}
}

func TestParseInput(t *testing.T) {
	type tc struct {
		input     string
		inputs    []input
		remaining string
	}

	tests := map[string]tc{
		"two moves": {
			input:  "\x1b[<35;1;1M\x1b[<35;5;6M",
			inputs: []input{{kind: inputMouse, x: 0, y: 0}, {kind: inputMouse, x: 4, y: 5}},
		},
		"keys are skipped": {
			input:  "abc\x1b[A\x1b[<35;3;4M",
			inputs: []input{{kind: inputMouse, x: 2, y: 3}},
		},
		"quit keys": {
			input:  "\x03q",
			inputs: []input{{kind: inputQuit}, {kind: inputQuit}},
		},
		"split sequence keeps remainder": {
			input:     "\x1b[<35;1;1M\x1b[<35;1",
			inputs:    []input{{kind: inputMouse, x: 0, y: 0}},
			remaining: "\x1b[<35;1",
		},
		"lone escape prefix at end": {
			input:     "\x1b[",
			remaining: "\x1b[",
		},
		"malformed sequence is skipped": {
			input:  "\x1b[<0;1;1;1M\x1b[<35;2;2M",
			inputs: []input{{kind: inputMouse, x: 1, y: 1}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			inputs, remaining := parseInput([]byte(tt.input))
			if !reflect.DeepEqual(inputs, tt.inputs) {
				t.Errorf("parseInput(%q) = %+v, want %+v", tt.input, inputs, tt.inputs)
			}
			if string(remaining) != tt.remaining {
				t.Errorf("parseInput(%q) remaining = %q, want %q", tt.input, remaining, tt.remaining)
			}
		})
	}
}
