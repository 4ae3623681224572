package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/inkwell-notes/anchor"
	"github.com/inkwell-notes/anchor/internal/debug"
	"github.com/inkwell-notes/anchor/scene"
	"github.com/spf13/cobra"
)

type placeFlags struct {
	scene    string
	float    string
	target   string
	pointer  string
	location string
	align    string
	xOffset  float64
	yOffset  float64
	yAnchor  string
	parent   string
	absolute bool
}

func newPlaceCmd() *cobra.Command {
	var f placeFlags

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Compute the position of an element in a scene fixture",
		Long: `Compute the position of an element in an HTML scene fixture and print it as JSON.

Without --target the element is placed at the pointer given by --pointer X,Y
(page coordinates; the viewport position is derived from the scene scroll).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runPlace(f)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			return enc.Encode(res)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.scene, "scene", "", "HTML scene fixture (required)")
	flags.StringVar(&f.float, "float", "", "id of the floating element (required)")
	flags.StringVar(&f.target, "target", "", "id of the anchor element; empty targets the pointer")
	flags.StringVar(&f.pointer, "pointer", "0,0", "pointer page position as X,Y")
	flags.StringVar(&f.location, "location", "", "right, left, below or top")
	flags.StringVar(&f.align, "align", "start", "start, center or end")
	flags.Float64Var(&f.xOffset, "x-offset", 0, "horizontal nudge")
	flags.Float64Var(&f.yOffset, "y-offset", 0, "vertical nudge (down for below, up otherwise)")
	flags.StringVar(&f.yAnchor, "y-anchor", "", "id of an element to pin the result above")
	flags.StringVar(&f.parent, "parent", "", "id of the bounding container; default the body")
	flags.BoolVar(&f.absolute, "absolute", false, "use viewport coordinates and clamp negatives")
	_ = cmd.MarkFlagRequired("scene")
	_ = cmd.MarkFlagRequired("float")
	return cmd
}

func runPlace(f placeFlags) (anchor.Result, error) {
	doc, err := scene.Load(f.scene)
	if err != nil {
		return anchor.Result{}, err
	}
	floating, err := doc.Element(f.float)
	if err != nil {
		return anchor.Result{}, err
	}

	loc, err := anchor.ParseLocation(f.location)
	if err != nil {
		return anchor.Result{}, err
	}
	align, err := anchor.ParseAlign(f.align)
	if err != nil {
		return anchor.Result{}, err
	}

	opts := []anchor.Option{
		anchor.WithAbsolute(f.absolute),
		anchor.WithLocation(loc),
		anchor.WithAlign(align),
		anchor.WithOffset(f.xOffset, f.yOffset),
	}
	for _, ref := range []struct {
		id  string
		opt func(*scene.Node) anchor.Option
	}{
		{f.target, func(n *scene.Node) anchor.Option { return anchor.WithTarget(n) }},
		{f.yAnchor, func(n *scene.Node) anchor.Option { return anchor.WithYAnchor(n) }},
		{f.parent, func(n *scene.Node) anchor.Option { return anchor.WithParent(n) }},
	} {
		if ref.id == "" {
			continue
		}
		n, err := doc.Element(ref.id)
		if err != nil {
			return anchor.Result{}, err
		}
		opts = append(opts, ref.opt(n))
	}

	src := anchor.NewSyntheticSource()
	tracker := anchor.NewTracker(src)
	if err := tracker.Start(); err != nil {
		return anchor.Result{}, err
	}
	defer tracker.Stop()

	x, y, err := parsePoint(f.pointer)
	if err != nil {
		return anchor.Result{}, err
	}
	sx, sy := doc.Scroll()
	src.Emit(anchor.PointerEvent{PageX: x, PageY: y, ScrollX: sx, ScrollY: sy})

	p, err := anchor.New(
		anchor.WithTracker(tracker),
		anchor.WithContainer(doc),
		anchor.WithLogger(debug.Logger()),
	)
	if err != nil {
		return anchor.Result{}, err
	}

	return p.Position(floating, opts...), nil
}

func parsePoint(s string) (float64, float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("pointer %q: want X,Y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("pointer x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("pointer y: %w", err)
	}
	return x, y, nil
}
