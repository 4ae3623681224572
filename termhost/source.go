// Package termhost adapts a raw terminal to anchor: mouse reports become
// pointer events and the terminal window is the bounding container.
// Coordinates are 0-indexed cells.
package termhost

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/inkwell-notes/anchor"
	"go.uber.org/zap"
)

// ErrQuit is returned by Run when the user presses Ctrl-C or q.
var ErrQuit = errors.New("termhost: quit requested")

// DefaultPollTimeout is how long Run waits for input before checking its context.
const DefaultPollTimeout = 50 * time.Millisecond

// Source is an anchor.PointerSource fed by terminal mouse reports.
type Source struct {
	reader      Reader
	pollTimeout time.Duration
	logger      *zap.Logger

	events  anchor.Events[anchor.PointerEvent]
	pending []byte
}

var _ anchor.PointerSource = (*Source)(nil)

// Option is a functional option for configuring a Source.
type Option func(*Source) error

// WithPollTimeout sets how long each read waits before Run rechecks its context.
// Must be positive.
func WithPollTimeout(d time.Duration) Option {
	return func(s *Source) error {
		if d <= 0 {
			return fmt.Errorf("poll timeout must be positive, got %v", d)
		}
		s.pollTimeout = d
		return nil
	}
}

// WithLogger sets the logger. Default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Source) error {
		if l == nil {
			return fmt.Errorf("logger must not be nil")
		}
		s.logger = l
		return nil
	}
}

// NewSource creates a Source reading from r.
func NewSource(r Reader, opts ...Option) (*Source, error) {
	if r == nil {
		return nil, fmt.Errorf("termhost: nil reader")
	}
	s := &Source{
		reader:      r,
		pollTimeout: DefaultPollTimeout,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.logger = s.logger.Named("termhost")
	return s, nil
}

// Subscribe implements anchor.PointerSource.
func (s *Source) Subscribe(fn func(anchor.PointerEvent)) func() {
	return s.events.Subscribe(fn)
}

// Run reads input and dispatches pointer events until ctx is done, the user
// quits, or the reader fails. Subscribers are called on Run's goroutine.
func (s *Source) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		data, err := s.reader.ReadInput(s.pollTimeout)
		if err != nil {
			return fmt.Errorf("read terminal input: %w", err)
		}
		if len(data) == 0 {
			continue
		}

		if len(s.pending) > 0 {
			data = append(s.pending, data...)
			s.pending = nil
		}

		inputs, remaining := parseInput(data)
		if len(remaining) > 0 {
			s.pending = append([]byte(nil), remaining...)
		}

		for _, in := range inputs {
			switch in.kind {
			case inputQuit:
				s.logger.Debug("quit")
				return ErrQuit
			case inputMouse:
				x, y := float64(in.x), float64(in.y)
				s.events.Emit(anchor.PointerEvent{PageX: x, PageY: y, ClientX: x, ClientY: y})
			}
		}
	}
}
