package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/inkwell-notes/anchor"
	"github.com/inkwell-notes/anchor/internal/debug"
	"github.com/inkwell-notes/anchor/tcellhost"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var errDemoQuit = errors.New("demo: quit")

var (
	demoLocations = []anchor.Location{anchor.LocationBelow, anchor.LocationRight, anchor.LocationTop, anchor.LocationLeft, anchor.LocationUnset}
	demoAligns    = []anchor.Align{anchor.AlignStart, anchor.AlignCenter, anchor.AlignEnd}
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Interactive preview: a tooltip follows the mouse, a menu anchors to a button",
		Long: `Open a full-screen preview. Click the button to toggle its menu.
Keys: l cycles the menu location, a cycles its alignment, q or Esc quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := s.Init(); err != nil {
				return err
			}
			s.EnableMouse(tcell.MouseMotionEvents)
			return runDemo(cmd.Context(), s, debug.Logger())
		},
	}
}

// demo holds the preview state. All fields are owned by the render goroutine.
type demo struct {
	screen     tcell.Screen
	source     *tcellhost.Source
	tracker    *anchor.Tracker
	positioner *anchor.Positioner
	logger     *zap.Logger

	button   tcellhost.Region
	menu     *tcellhost.Popup
	tooltip  *tcellhost.Popup
	menuOpen bool
	location int
	align    int
}

func newDemo(s tcell.Screen, logger *zap.Logger) (*demo, error) {
	src := tcellhost.NewSource()
	tracker := anchor.NewTracker(src, anchor.WithTrackerLogger(logger))
	if err := tracker.Start(); err != nil {
		return nil, err
	}

	p, err := anchor.New(
		anchor.WithTracker(tracker),
		anchor.WithContainer(tcellhost.Screen{Screen: s}),
		anchor.WithMaxHeightMargin(1),
		anchor.WithLogger(logger),
	)
	if err != nil {
		tracker.Stop()
		return nil, err
	}

	return &demo{
		screen:     s,
		source:     src,
		tracker:    tracker,
		positioner: p,
		logger:     logger.Named("demo"),
		button:     tcellhost.NewButton(2, 1, "Menu"),
		menu:       tcellhost.NewPopup("New topic", "Rename", "Duplicate", "Move to notebook", "Delete"),
		tooltip:    tcellhost.NewPopup(""),
	}, nil
}

// runDemo drives s until the user quits or ctx is done. It finalizes s.
func runDemo(ctx context.Context, s tcell.Screen, logger *zap.Logger) error {
	d, err := newDemo(s, logger)
	if err != nil {
		s.Fini()
		return err
	}
	defer d.tracker.Stop()

	events := make(chan tcell.Event)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			ev := s.PollEvent()
			if ev == nil {
				// Screen finalized.
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer s.Fini()
		d.draw()
		for {
			select {
			case <-gctx.Done():
				return nil
			case ev := <-events:
				if err := d.handle(ev); err != nil {
					return err
				}
				d.draw()
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errDemoQuit) {
		return err
	}
	return nil
}

func (d *demo) handle(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
			return errDemoQuit
		case ev.Rune() == 'l':
			d.location = (d.location + 1) % len(demoLocations)
		case ev.Rune() == 'a':
			d.align = (d.align + 1) % len(demoAligns)
		}
	case *tcell.EventMouse:
		d.source.Dispatch(ev)
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			if d.button.Contains(x, y) {
				d.menuOpen = !d.menuOpen
				d.logger.Debug("menu toggled", zap.Bool("open", d.menuOpen))
			}
		}
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return nil
}

func (d *demo) draw() {
	s := d.screen
	s.Clear()

	base := tcell.StyleDefault
	d.button.Draw(s, base.Reverse(true))

	loc, align := demoLocations[d.location], demoAligns[d.align]
	status := fmt.Sprintf("location=%-5s align=%-6s  [l] location  [a] align  [q] quit", loc, align)
	_, h := s.Size()
	for i, ch := range status {
		s.SetContent(i, h-1, ch, nil, base.Dim(true))
	}

	if d.menuOpen {
		d.menu.ClearMaxHeight()
		res := d.positioner.Place(d.menu,
			anchor.WithTarget(d.button),
			anchor.WithAbsolute(true),
			anchor.WithLocation(loc),
			anchor.WithAlign(align),
		)
		d.menu.Draw(s, res.Position, base)
	}

	ptr := d.tracker.Pointer()
	d.tooltip.SetLines(fmt.Sprintf("%.0f,%.0f", ptr.X, ptr.Y))
	res := d.positioner.Position(d.tooltip, anchor.WithOffset(1, -1))
	d.tooltip.Draw(s, res.Position, base.Bold(true))

	s.Show()
}
