package camera

import (
	"context"
	"errors"
	"log/slog"
)

// State is the session lifecycle state.
type State uint8

const (
	// StateIdle means no capture attempt is open.
	StateIdle State = iota

	// StateRequesting means device acquisition is in flight. The session
	// is already active so the UI can show a loading affordance.
	StateRequesting

	// StateLive means a stream is open and bound to the preview.
	StateLive

	// StateCapturing means a frame is being rasterized. Capture runs
	// synchronously within one event-loop turn and cannot be cancelled.
	StateCapturing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRequesting:
		return "Requesting"
	case StateLive:
		return "Live"
	case StateCapturing:
		return "Capturing"
	default:
		return "Unknown"
	}
}

// Options configure a Session.
type Options struct {
	// Post delivers asynchronous acquisition results back onto the
	// owner's event loop. Required whenever the Device resolves off-loop;
	// when nil, completions run inline on the acquiring goroutine.
	Post func(func())

	// Sink receives the photo produced by a successful capture.
	Sink func(Photo)

	// OnError is signaled for every surfaced failure (acquisition,
	// capture-not-ready, no surface). Failures are terminal for the
	// operation but never fatal to the session owner.
	OnError func(error)

	// OnState observes every state transition, for re-rendering.
	OnState func(State)

	// Logger is used for debug logging. Default: slog.Default().
	Logger *slog.Logger
}

// Session drives a single camera capture attempt. At most one attempt is
// open at a time; Start while active is a no-op. Not safe for concurrent
// use: all methods must be called on the owning event loop, and async
// completions re-enter through Options.Post.
type Session struct {
	device Device
	opts   Options
	logger *slog.Logger

	state  State
	stream Stream
	cancel context.CancelFunc

	// gen invalidates in-flight acquisitions. Bumped on every
	// deactivation so a stream resolving after cancel is closed instead
	// of bound.
	gen uint64
}

// New creates a Session over the given device.
func New(device Device, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{device: device, opts: opts, logger: logger}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Active reports whether a capture attempt is open (any state but Idle).
func (s *Session) Active() bool {
	return s.state != StateIdle
}

// Start opens a capture attempt. If the host has no camera capability the
// session signals ErrUnsupported and stays Idle. Otherwise it becomes
// active immediately and begins asynchronous acquisition with the
// preferred constraints.
func (s *Session) Start() {
	if s.state != StateIdle {
		return
	}
	if s.device == nil || !s.device.Available() {
		s.fail(ErrUnsupported)
		return
	}
	s.setState(StateRequesting)
	s.acquire(Preferred(), true)
}

func (s *Session) acquire(c Constraints, allowFallback bool) {
	gen := s.gen
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go func() {
		stream, err := s.device.Acquire(ctx, c)
		s.post(func() { s.resolved(gen, stream, err, allowFallback) })
	}()
}

// resolved runs on the owner's event loop when an acquisition completes.
func (s *Session) resolved(gen uint64, stream Stream, err error, allowFallback bool) {
	if gen != s.gen || s.state != StateRequesting {
		// The attempt was cancelled while acquisition was in flight. A
		// late stream must be stopped, never bound.
		if stream != nil {
			stream.Close()
		}
		return
	}

	if err != nil {
		if errors.Is(err, ErrOverconstrained) && allowFallback {
			s.logger.Debug("camera overconstrained, retrying relaxed")
			s.acquire(Relaxed(), false)
			return
		}
		s.deactivate()
		s.fail(err)
		return
	}

	s.stream = stream
	s.setState(StateLive)
	w, h := stream.FrameSize()
	s.logger.Debug("camera stream live", "width", w, "height", h)
}

// Capture rasterizes the current frame, hands the encoded photo to the
// sink, and closes the attempt. If the stream has no dimensions yet or no
// rasterization surface is available, the failure is signaled and the
// session stays Live so the user can retry.
func (s *Session) Capture() {
	if s.state != StateLive {
		return
	}
	w, h := s.stream.FrameSize()
	if w == 0 || h == 0 {
		s.fail(ErrNotReady)
		return
	}

	s.setState(StateCapturing)
	img, err := s.stream.Frame()
	if err != nil {
		s.setState(StateLive)
		s.fail(err)
		return
	}
	photo, err := EncodePhoto(img, nowFunc())
	if err != nil {
		s.setState(StateLive)
		s.fail(err)
		return
	}

	if s.opts.Sink != nil {
		s.opts.Sink(photo)
	}
	s.deactivate()
}

// Cancel closes any open attempt unconditionally: the in-flight
// acquisition is invalidated, the stream (if any) is stopped, and the
// session returns to Idle. Safe to call in any state.
func (s *Session) Cancel() {
	if s.state == StateIdle {
		return
	}
	s.deactivate()
}

// Teardown is Cancel, named for the owner's lifecycle end.
func (s *Session) Teardown() {
	s.Cancel()
}

// deactivate is the single exit path back to Idle. It must leave no stream
// reference retained, on every caller.
func (s *Session) deactivate() {
	s.gen++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.stream != nil {
		s.stream.Close()
		s.stream = nil
	}
	s.setState(StateIdle)
}

func (s *Session) setState(state State) {
	if s.state == state {
		return
	}
	s.state = state
	if s.opts.OnState != nil {
		s.opts.OnState(state)
	}
}

func (s *Session) fail(err error) {
	s.logger.Debug("camera failure", "state", s.state.String(), "error", err)
	if s.opts.OnError != nil {
		s.opts.OnError(err)
	}
}

func (s *Session) post(f func()) {
	if s.opts.Post != nil {
		s.opts.Post(f)
		return
	}
	f()
}
