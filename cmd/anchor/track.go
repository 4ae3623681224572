package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/inkwell-notes/anchor"
	"github.com/inkwell-notes/anchor/internal/debug"
	"github.com/inkwell-notes/anchor/termhost"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newTrackCmd() *cobra.Command {
	var width, height float64

	cmd := &cobra.Command{
		Use:   "track",
		Short: "Print the tracked pointer and a tooltip placement as the mouse moves",
		Long: `Put the terminal in raw mode with mouse reporting and print the tracked
pointer together with where a tooltip of the given size would be placed.
Press q or Ctrl-C to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrack(cmd.Context(), width, height)
		},
	}
	cmd.Flags().Float64Var(&width, "width", 20, "tooltip width in cells")
	cmd.Flags().Float64Var(&height, "height", 5, "tooltip height in cells")
	return cmd
}

func runTrack(ctx context.Context, width, height float64) error {
	logger := debug.Logger()

	session, err := termhost.OpenSession(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer session.Close()

	src, err := termhost.NewSource(session.Reader(), termhost.WithLogger(logger))
	if err != nil {
		return err
	}
	window := termhost.NewWindow(os.Stdout)

	tracker := anchor.NewTracker(src, anchor.WithTrackerLogger(logger))
	if err := tracker.Start(); err != nil {
		return err
	}
	defer tracker.Stop()

	p, err := anchor.New(anchor.WithTracker(tracker), anchor.WithContainer(window), anchor.WithLogger(logger))
	if err != nil {
		return err
	}

	tooltip := anchor.ElementAt(anchor.NewRect(0, 0, width, height))
	// Registered after the tracker, so the tracker has already updated when this runs.
	src.Subscribe(func(anchor.PointerEvent) {
		ptr := tracker.Pointer()
		res := p.Position(tooltip)
		fmt.Fprintf(os.Stdout, "\rpointer %3.0f,%-3.0f tooltip top %3.0f left %3.0f\x1b[K", ptr.X, ptr.Y, res.Top, res.Left)
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return src.Run(gctx)
	})
	g.Go(func() error {
		return window.Watch(gctx)
	})

	err = g.Wait()
	fmt.Fprint(os.Stdout, "\r\n")
	if errors.Is(err, termhost.ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
