// Package anchor places floating UI (menus, tooltips, popovers) next to a
// trigger point or an anchor element while keeping it inside a bounding
// container.
//
// The computation only consumes geometry: hosts adapt their own widgets to
// the Element and Container interfaces and feed pointer movement through a
// PointerSource. Compute is pure; a Positioner bundles it with an owned
// pointer Tracker and a default container.
//
//	tracker := anchor.NewTracker(source)
//	if err := tracker.Start(); err != nil {
//		return err
//	}
//	defer tracker.Stop()
//
//	p, err := anchor.New(anchor.WithTracker(tracker), anchor.WithContainer(window))
//	if err != nil {
//		return err
//	}
//	pos := p.Place(menu, anchor.WithTarget(button), anchor.WithLocation(anchor.LocationBelow))
package anchor
