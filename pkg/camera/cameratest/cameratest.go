// Package cameratest provides fake camera devices and streams for tests.
package cameratest

import (
	"context"
	"image"

	"github.com/dropkit-ui/dropkit/pkg/camera"
)

// Stream is a fake camera.Stream. It records how many times it was closed
// so tests can assert the close-exactly-once invariant.
type Stream struct {
	W, H     int
	Img      image.Image
	FrameErr error
	Closes   int
}

// FrameSize implements camera.Stream.
func (s *Stream) FrameSize() (int, int) {
	return s.W, s.H
}

// Frame implements camera.Stream. It returns FrameErr when set, then Img,
// then a solid W x H image when Img is nil.
func (s *Stream) Frame() (image.Image, error) {
	if s.FrameErr != nil {
		return nil, s.FrameErr
	}
	if s.Img != nil {
		return s.Img, nil
	}
	return image.NewRGBA(image.Rect(0, 0, s.W, s.H)), nil
}

// Close implements camera.Stream.
func (s *Stream) Close() error {
	s.Closes++
	return nil
}

// acquisition scripts one Acquire outcome.
type acquisition struct {
	stream *Stream
	err    error
}

// Device is a scripted fake camera.Device. Each Acquire consumes the next
// scripted outcome; when Block is set, Acquire waits for a signal (or ctx
// cancellation) before resolving, letting tests interleave a cancel with an
// in-flight acquisition.
type Device struct {
	Unavailable bool

	// Block, when non-nil, gates every Acquire. Send on it (or close it)
	// to let the pending acquisition resolve.
	Block chan struct{}

	// IgnoreCtx makes a blocked Acquire ignore ctx cancellation and
	// resolve with its scripted outcome anyway, simulating a host that
	// grants the stream after the caller has already cancelled.
	IgnoreCtx bool

	// Acquired records the constraints of every Acquire call.
	Acquired []camera.Constraints

	script []acquisition
}

// Grant scripts the next Acquire to succeed with the given stream.
func (d *Device) Grant(s *Stream) *Device {
	d.script = append(d.script, acquisition{stream: s})
	return d
}

// Fail scripts the next Acquire to fail with err.
func (d *Device) Fail(err error) *Device {
	d.script = append(d.script, acquisition{err: err})
	return d
}

// Available implements camera.Device.
func (d *Device) Available() bool {
	return !d.Unavailable
}

// Acquire implements camera.Device.
func (d *Device) Acquire(ctx context.Context, c camera.Constraints) (camera.Stream, error) {
	d.Acquired = append(d.Acquired, c)

	if d.Block != nil {
		if d.IgnoreCtx {
			<-d.Block
		} else {
			select {
			case <-d.Block:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	if len(d.script) == 0 {
		return nil, camera.ErrNoDevice
	}
	next := d.script[0]
	d.script = d.script[1:]
	if next.err != nil {
		return nil, next.err
	}
	return next.stream, nil
}
