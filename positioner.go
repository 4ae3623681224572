package anchor

import (
	"go.uber.org/zap"
)

// Positioner places floating elements using an owned pointer tracker and a
// default bounding container.
type Positioner struct {
	tracker   *Tracker
	container Container
	margin    float64
	logger    *zap.Logger
}

// New creates a Positioner with the given options.
func New(opts ...PositionerOption) (*Positioner, error) {
	p := &Positioner{
		margin: DefaultMaxHeightMargin,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	p.logger = p.logger.Named("positioner")
	return p, nil
}

// Tracker returns the pointer tracker, or nil if none was configured.
func (p *Positioner) Tracker() *Tracker {
	return p.tracker
}

// Request resolves opts against the Positioner's defaults.
func (p *Positioner) Request(opts ...Option) Request {
	req := Request{Parent: p.container}
	for _, opt := range opts {
		opt(&req)
	}
	if req.Target == nil && p.tracker != nil {
		req.Pointer = p.tracker.Pointer()
	}
	if req.Parent == nil {
		req.Parent = p.container
	}
	return req
}

// Position computes where floating goes without touching it.
func (p *Positioner) Position(floating Element, opts ...Option) Result {
	req := p.Request(opts...)
	res := compute(floating, req, p.margin)
	if ce := p.logger.Check(zap.DebugLevel, "position"); ce != nil {
		ce.Write(
			zap.Bool("pointer", req.Target == nil),
			zap.Stringer("location", req.Location),
			zap.Stringer("align", req.Align),
			zap.Float64("top", res.Top),
			zap.Float64("left", res.Left),
			zap.Bool("clampHeight", res.ClampHeight),
		)
	}
	return res
}

// Place computes where floating goes and applies the suggested max height to
// it when it implements MaxHeightSetter.
func (p *Positioner) Place(floating Element, opts ...Option) Result {
	res := p.Position(floating, opts...)
	if res.Apply(floating) {
		p.logger.Debug("limited height", zap.Float64("maxHeight", res.MaxHeight))
	}
	return res
}
