package anchor

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Options(t *testing.T) {
	type tc struct {
		opts    []PositionerOption
		wantErr bool
	}

	tests := map[string]tc{
		"defaults":         {},
		"negative margin":  {opts: []PositionerOption{WithMaxHeightMargin(-1)}, wantErr: true},
		"zero margin":      {opts: []PositionerOption{WithMaxHeightMargin(0)}},
		"nil logger":       {opts: []PositionerOption{WithLogger(nil)}, wantErr: true},
		"container set":    {opts: []PositionerOption{WithContainer(screen)}},
		"tracker set":      {opts: []PositionerOption{WithTracker(NewTracker(NewSyntheticSource()))}},
		"logger set":       {opts: []PositionerOption{WithLogger(zap.NewNop())}},
		"several together": {opts: []PositionerOption{WithContainer(screen), WithMaxHeightMargin(4)}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p, err := New(tt.opts...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && p == nil {
				t.Fatal("New() returned nil Positioner")
			}
		})
	}
}

func TestPositioner_PointerTarget(t *testing.T) {
	src := NewSyntheticSource()
	tr := NewTracker(src)
	if err := tr.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer tr.Stop()

	p, err := New(WithTracker(tr), WithContainer(screen))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	src.MoveTo(30, 40)
	got := p.Position(newMenu(100, 50))
	if got.Position != (Position{Top: 40, Left: 30}) {
		t.Errorf("Position() = %+v, want top 40 left 30", got.Position)
	}

	src.MoveTo(790, 40)
	got = p.Position(newMenu(100, 50))
	if got.Left != 700 {
		t.Errorf("Position().Left near right edge = %v, want 700", got.Left)
	}
}

func TestPositioner_WithoutTracker(t *testing.T) {
	p, err := New(WithContainer(screen))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	got := p.Position(newMenu(10, 10))
	if got.Position != (Position{}) {
		t.Errorf("Position() = %+v, want origin", got.Position)
	}
}

func TestPositioner_ParentOverride(t *testing.T) {
	p, err := New(WithContainer(screen))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	target := ElementAt(NewRect(150, 10, 20, 10))

	got := p.Position(newMenu(100, 50), WithTarget(target), WithParent(Size{Width: 200, Height: 100}))
	if got.Left != 100 {
		t.Errorf("Position().Left inside small parent = %v, want 100", got.Left)
	}

	got = p.Position(newMenu(100, 50), WithTarget(target), WithParent(nil))
	if got.Left != 150 {
		t.Errorf("Position().Left with nil parent override = %v, want 150", got.Left)
	}
}

func TestPositioner_PlaceAppliesMaxHeight(t *testing.T) {
	p, err := New(WithContainer(screen), WithMaxHeightMargin(5))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	m := newMenu(100, 90)
	target := ElementAt(NewRect(0, 500, 40, 20))

	res := p.Position(m, WithTarget(target), WithLocation(LocationBelow))
	if !res.ClampHeight || res.MaxHeight != 595 {
		t.Errorf("Position() = %+v, want clamp with max height 595", res)
	}
	if m.limited {
		t.Error("Position() modified the floating element")
	}

	p.Place(m, WithTarget(target), WithLocation(LocationBelow))
	if !m.limited || m.maxHeight != 595 {
		t.Errorf("Place() max height = %v (limited %v), want 595", m.maxHeight, m.limited)
	}
}

func TestPositioner_OptionsMatchRequest(t *testing.T) {
	p, err := New(WithContainer(screen))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	target := ElementAt(NewRect(100, 100, 40, 20))
	yAnchor := ElementAt(NewRect(0, 300, 10, 10))

	got := p.Position(newMenu(100, 50),
		WithTarget(target),
		WithAbsolute(true),
		WithLocation(LocationRight),
		WithAlign(AlignEnd),
		WithOffset(2, 3),
		WithYAnchor(yAnchor),
	)
	want := Compute(newMenu(100, 50), Request{
		Target:   target,
		Absolute: true,
		Location: LocationRight,
		Align:    AlignEnd,
		XOffset:  2,
		YOffset:  3,
		YAnchor:  yAnchor,
		Parent:   screen,
	})
	if got != want {
		t.Errorf("Position() = %+v, want %+v", got, want)
	}

	got = p.Position(newMenu(100, 50), WithTarget(target), WithPointerTarget())
	if got.Position != (Position{}) {
		t.Errorf("Position() after WithPointerTarget = %+v, want origin", got.Position)
	}
}

func TestPositioner_LogsPlacements(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	p, err := New(WithContainer(screen), WithLogger(zap.New(core)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	p.Place(newMenu(100, 90), WithTarget(ElementAt(NewRect(0, 500, 40, 20))), WithLocation(LocationBelow))

	if n := logs.FilterMessage("position").Len(); n != 1 {
		t.Errorf("position log entries = %d, want 1", n)
	}
	if n := logs.FilterMessage("limited height").Len(); n != 1 {
		t.Errorf("limited height log entries = %d, want 1", n)
	}
	entry := logs.FilterMessage("position").All()[0]
	if entry.LoggerName != "positioner" {
		t.Errorf("logger name = %q, want positioner", entry.LoggerName)
	}
	if got := entry.ContextMap()["location"]; got != "below" {
		t.Errorf("logged location = %v, want below", got)
	}
}
