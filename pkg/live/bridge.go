package live

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"sync"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"github.com/dropkit-ui/dropkit/pkg/camera"
	"github.com/dropkit-ui/dropkit/pkg/protocol"
)

// frameTimeout bounds how long a capture waits for the client to rasterize
// and send a frame.
const frameTimeout = 10 * time.Second

// bridge implements camera.Device over the live connection: acquisition and
// rasterization happen in the browser, the session state machine runs here.
// One bridge serves one connection; at most one stream is open at a time.
type bridge struct {
	send func(protocol.CameraControl) error

	mu      sync.Mutex
	acquire chan protocol.CameraControl
	frames  chan protocol.CameraControl
}

func newBridge(send func(protocol.CameraControl) error) *bridge {
	return &bridge{send: send}
}

// Available implements camera.Device. Whether the browser actually has
// camera capability is only knowable after an acquire round-trip, so the
// bridge always reports available and lets acquisition fail with a code.
func (b *bridge) Available() bool {
	return true
}

// Acquire implements camera.Device. It asks the client to open a stream
// with the given constraints and waits for the ready or error control.
func (b *bridge) Acquire(ctx context.Context, c camera.Constraints) (camera.Stream, error) {
	acquired := make(chan protocol.CameraControl, 1)
	b.mu.Lock()
	b.acquire = acquired
	b.mu.Unlock()

	err := b.send(protocol.CameraControl{
		Op:          protocol.CameraAcquire,
		Facing:      string(c.Facing),
		IdealWidth:  c.IdealWidth,
		IdealHeight: c.IdealHeight,
		MaxWidth:    c.MaxWidth,
		MaxHeight:   c.MaxHeight,
	})
	if err != nil {
		return nil, fmt.Errorf("live: send acquire: %w", err)
	}

	select {
	case ctrl := <-acquired:
		if ctrl.Op == protocol.CameraError {
			b.mu.Lock()
			b.acquire = nil
			b.mu.Unlock()
			return nil, codeToErr(ctrl.Code)
		}
		frames := make(chan protocol.CameraControl, 1)
		b.mu.Lock()
		b.acquire = nil
		b.frames = frames
		b.mu.Unlock()
		return &remoteStream{bridge: b, frames: frames, w: ctrl.Width, h: ctrl.Height}, nil

	case <-ctx.Done():
		// The attempt was cancelled while the client was still granting.
		// Tell it to stop any tracks it ends up opening.
		b.mu.Lock()
		b.acquire = nil
		b.mu.Unlock()
		b.send(protocol.CameraControl{Op: protocol.CameraStop})
		return nil, ctx.Err()
	}
}

// deliver routes a client camera control to whichever wait is open.
// Called from the connection read loop.
func (b *bridge) deliver(ctrl protocol.CameraControl) {
	b.mu.Lock()
	acquired, frames := b.acquire, b.frames
	b.mu.Unlock()

	switch ctrl.Op {
	case protocol.CameraReady:
		offer(acquired, ctrl)
	case protocol.CameraFrame:
		offer(frames, ctrl)
	case protocol.CameraError:
		// An error answers whichever round-trip is open: acquisition
		// before a stream is granted, rasterization after.
		if acquired != nil {
			offer(acquired, ctrl)
		} else {
			offer(frames, ctrl)
		}
	}
}

func offer(ch chan protocol.CameraControl, ctrl protocol.CameraControl) {
	if ch == nil {
		return
	}
	select {
	case ch <- ctrl:
	default:
	}
}

// remoteStream implements camera.Stream for a granted client stream.
type remoteStream struct {
	bridge *bridge
	frames chan protocol.CameraControl
	w, h   int

	closeOnce sync.Once
}

func (s *remoteStream) FrameSize() (int, int) {
	return s.w, s.h
}

// Frame asks the client to rasterize the current video frame and decodes
// the returned PNG.
func (s *remoteStream) Frame() (image.Image, error) {
	if err := s.bridge.send(protocol.CameraControl{Op: protocol.CameraFrameRequest}); err != nil {
		return nil, fmt.Errorf("live: send frame request: %w", err)
	}

	select {
	case ctrl := <-s.frames:
		if ctrl.Op == protocol.CameraError {
			return nil, codeToErr(ctrl.Code)
		}
		img, _, err := image.Decode(bytes.NewReader(ctrl.Data))
		if err != nil {
			return nil, fmt.Errorf("live: decode frame: %w", err)
		}
		return img, nil

	case <-time.After(frameTimeout):
		return nil, camera.ErrNoSurface
	}
}

// Close tells the client to stop the stream tracks. Idempotent.
func (s *remoteStream) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.bridge.send(protocol.CameraControl{Op: protocol.CameraStop})
	})
	return err
}

// codeToErr maps client failure codes onto the camera sentinel errors.
func codeToErr(code string) error {
	switch code {
	case protocol.CameraCodePermissionDenied:
		return camera.ErrPermissionDenied
	case protocol.CameraCodeNoDevice:
		return camera.ErrNoDevice
	case protocol.CameraCodeOverconstrained:
		return camera.ErrOverconstrained
	case protocol.CameraCodeUnsupported:
		return camera.ErrUnsupported
	case protocol.CameraCodeNoSurface:
		return camera.ErrNoSurface
	default:
		return fmt.Errorf("live: camera failure %q", code)
	}
}
