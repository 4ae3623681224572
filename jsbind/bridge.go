// Package jsbind exposes anchor placement to JavaScript running in goja
// against a scene document, with the same call shape as the browser helpers:
//
//	const pos = getPosition(menu, { target: button, location: "below", align: "center" });
//	menu.style.top = pos.top + "px";
package jsbind

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/dop251/goja"
	"github.com/inkwell-notes/anchor"
	"github.com/inkwell-notes/anchor/scene"
	"go.uber.org/zap"
)

// Bridge connects a goja runtime to a scene document.
type Bridge struct {
	vm     *goja.Runtime
	doc    *scene.Document
	logger *zap.Logger

	source     *anchor.SyntheticSource
	tracker    *anchor.Tracker
	positioner *anchor.Positioner

	wrappers map[*scene.Node]*goja.Object
	nodes    map[*goja.Object]*scene.Node
	styles   map[*scene.Node]*goja.Object
}

// NewBridge installs document, getPosition, getElementPosition,
// dispatchPointer and console into vm.
func NewBridge(vm *goja.Runtime, doc *scene.Document, logger *zap.Logger) (*Bridge, error) {
	if vm == nil || doc == nil {
		return nil, fmt.Errorf("jsbind: runtime and document are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	b := &Bridge{
		vm:       vm,
		doc:      doc,
		logger:   logger.Named("jsbind"),
		source:   anchor.NewSyntheticSource(),
		wrappers: make(map[*scene.Node]*goja.Object),
		nodes:    make(map[*goja.Object]*scene.Node),
		styles:   make(map[*scene.Node]*goja.Object),
	}

	b.tracker = anchor.NewTracker(b.source, anchor.WithTrackerLogger(logger))
	if err := b.tracker.Start(); err != nil {
		return nil, err
	}

	p, err := anchor.New(
		anchor.WithTracker(b.tracker),
		anchor.WithContainer(doc),
		anchor.WithLogger(logger),
	)
	if err != nil {
		b.tracker.Stop()
		return nil, err
	}
	b.positioner = p

	if err := b.initializeRuntime(); err != nil {
		b.tracker.Stop()
		return nil, err
	}
	return b, nil
}

// Close stops pointer tracking.
func (b *Bridge) Close() {
	b.tracker.Stop()
}

// Tracker returns the tracker fed by dispatchPointer.
func (b *Bridge) Tracker() *anchor.Tracker {
	return b.tracker
}

// Run evaluates src.
func (b *Bridge) Run(src string) (goja.Value, error) {
	return b.vm.RunString(src)
}

// RunFile evaluates the script at path.
func (b *Bridge) RunFile(path string) (goja.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	v, err := b.vm.RunScript(path, string(data))
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", path, err)
	}
	return v, nil
}

func (b *Bridge) initializeRuntime() error {
	document := b.vm.NewObject()
	if err := document.Set("body", b.wrap(b.doc.Body)); err != nil {
		return err
	}
	if err := document.Set("getElementById", b.getElementByID); err != nil {
		return err
	}

	globals := map[string]any{
		"document":           document,
		"getPosition":        b.getPosition,
		"getElementPosition": b.getElementPosition,
		"dispatchPointer":    b.dispatchPointer,
		"console":            b.newConsole(),
	}
	for name, v := range globals {
		if err := b.vm.Set(name, v); err != nil {
			return fmt.Errorf("set global %s: %w", name, err)
		}
	}
	return nil
}

// wrap returns the script object for n, creating it on first use so the same
// node always maps to the same object.
func (b *Bridge) wrap(n *scene.Node) *goja.Object {
	if obj, ok := b.wrappers[n]; ok {
		return obj
	}

	obj := b.vm.NewObject()
	style := b.vm.NewObject()
	_ = style.Set("maxHeight", "")

	_ = obj.Set("id", n.ID)
	_ = obj.Set("tagName", strings.ToUpper(n.Tag))
	_ = obj.Set("offsetLeft", n.Left)
	_ = obj.Set("offsetTop", n.Top)
	_ = obj.Set("offsetWidth", n.Width)
	_ = obj.Set("offsetHeight", n.Height)
	_ = obj.Set("clientWidth", n.Width)
	_ = obj.Set("clientHeight", n.Height)
	_ = obj.Set("style", style)
	_ = obj.Set("getBoundingClientRect", func(goja.FunctionCall) goja.Value {
		r := n.BoundingRect()
		return b.vm.ToValue(map[string]any{
			"x": r.X, "y": r.Y, "width": r.Width, "height": r.Height,
			"left": r.X, "top": r.Y, "right": r.Right(), "bottom": r.Bottom(),
		})
	})

	b.wrappers[n] = obj
	b.nodes[obj] = n
	b.styles[n] = style
	return obj
}

// node resolves a script value to the scene node it wraps.
func (b *Bridge) node(v goja.Value) (*scene.Node, bool) {
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil, false
	}
	n, ok := b.nodes[obj]
	return n, ok
}

func (b *Bridge) getElementByID(call goja.FunctionCall) goja.Value {
	n, err := b.doc.Element(call.Argument(0).String())
	if err != nil {
		return goja.Null()
	}
	return b.wrap(n)
}

func (b *Bridge) getPosition(call goja.FunctionCall) goja.Value {
	floating, _ := b.node(call.Argument(0))

	opts := b.parseOptions(call.Argument(1))
	var res anchor.Result
	if floating == nil {
		res = b.positioner.Position(nil, opts...)
	} else {
		res = b.positioner.Position(floating, opts...)
		if res.Apply(floating) {
			_ = b.styles[floating].Set("maxHeight", fmt.Sprintf("%gpx", res.MaxHeight))
		}
	}

	return b.vm.ToValue(map[string]any{"top": res.Top, "left": res.Left})
}

func (b *Bridge) getElementPosition(call goja.FunctionCall) goja.Value {
	n, ok := b.node(call.Argument(0))
	if !ok {
		return goja.Null()
	}
	box := anchor.MeasureBox(n, call.Argument(1).ToBoolean())
	return b.vm.ToValue(map[string]any{
		"x": box.X, "y": box.Y,
		"width": box.Width, "height": box.Height,
		"actualX": box.ActualX, "actualY": box.ActualY,
	})
}

// dispatchPointer feeds a pointer-move event. Missing scroll offsets default
// to the document scroll.
func (b *Bridge) dispatchPointer(call goja.FunctionCall) goja.Value {
	obj, ok := call.Argument(0).(*goja.Object)
	if !ok {
		return goja.Undefined()
	}
	sx, sy := b.doc.Scroll()
	b.source.Emit(anchor.PointerEvent{
		PageX:   number(obj, "pageX", 0),
		PageY:   number(obj, "pageY", 0),
		ClientX: number(obj, "clientX", 0),
		ClientY: number(obj, "clientY", 0),
		ScrollX: number(obj, "scrollX", sx),
		ScrollY: number(obj, "scrollY", sy),
	})
	return goja.Undefined()
}

// parseOptions converts a script options object. Unknown values fall back to
// defaults and are logged rather than thrown.
func (b *Bridge) parseOptions(v goja.Value) []anchor.Option {
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil
	}

	var opts []anchor.Option

	if t := get(obj, "target"); t != nil {
		if n, ok := b.node(t); ok {
			opts = append(opts, anchor.WithTarget(n))
		} else if t.String() != "mouse" {
			b.logger.Warn("unknown target, using pointer", zap.String("target", t.String()))
		}
	}
	if a := get(obj, "isTargetAbsolute"); a != nil {
		opts = append(opts, anchor.WithAbsolute(a.ToBoolean()))
	}
	if l := get(obj, "location"); l != nil {
		loc, err := anchor.ParseLocation(l.String())
		if err != nil {
			b.logger.Warn("ignoring location", zap.Error(err))
		}
		opts = append(opts, anchor.WithLocation(loc))
	}
	if a := get(obj, "align"); a != nil {
		align, err := anchor.ParseAlign(a.String())
		if err != nil {
			b.logger.Warn("ignoring align", zap.Error(err))
		}
		opts = append(opts, anchor.WithAlign(align))
	}
	opts = append(opts, anchor.WithOffset(number(obj, "xOffset", 0), number(obj, "yOffset", 0)))
	if y := get(obj, "yAnchor"); y != nil {
		if n, ok := b.node(y); ok {
			opts = append(opts, anchor.WithYAnchor(n))
		}
	}
	if p := get(obj, "parent"); p != nil {
		if n, ok := b.node(p); ok {
			opts = append(opts, anchor.WithParent(n))
		}
	}
	return opts
}

// get returns obj[key], or nil when it is missing, undefined or null.
func get(obj *goja.Object, key string) goja.Value {
	v := obj.Get(key)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	return v
}

// number returns obj[key] as a float, or def when missing or not a number.
func number(obj *goja.Object, key string, def float64) float64 {
	v := get(obj, key)
	if v == nil {
		return def
	}
	f := v.ToFloat()
	if math.IsNaN(f) {
		return def
	}
	return f
}
