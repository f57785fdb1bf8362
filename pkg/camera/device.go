package camera

import (
	"context"
	"image"
)

// Facing selects which camera a constraint set prefers. Values mirror the
// facingMode strings used by browser media APIs.
type Facing string

const (
	// FacingAny expresses no preference.
	FacingAny Facing = ""

	// FacingUser prefers the front (selfie) camera.
	FacingUser Facing = "user"

	// FacingEnvironment prefers the rear camera.
	FacingEnvironment Facing = "environment"
)

// Constraints describe the stream a session asks a Device for. The zero
// value means "any camera, no resolution preference, no audio".
type Constraints struct {
	Facing      Facing
	IdealWidth  int
	IdealHeight int
	MaxWidth    int
	MaxHeight   int
	Audio       bool
}

// Preferred returns the constraint set tried first: rear-facing camera,
// ideal 1280x720, capped at 1920x1080, no audio.
func Preferred() Constraints {
	return Constraints{
		Facing:      FacingEnvironment,
		IdealWidth:  1280,
		IdealHeight: 720,
		MaxWidth:    1920,
		MaxHeight:   1080,
	}
}

// Relaxed returns the fallback constraint set used after an
// overconstrained failure: any camera, no preferences.
func Relaxed() Constraints {
	return Constraints{}
}

// Device is a camera capability on some host. Implementations include the
// browser bridge in pkg/live and the fakes in cameratest.
type Device interface {
	// Available reports whether capture hardware is reachable at all.
	Available() bool

	// Acquire opens a stream satisfying the constraints. It blocks until
	// the stream is granted or acquisition fails, and should honor ctx
	// cancellation by releasing any partially acquired resources and
	// returning ctx.Err(). Failures are reported with the sentinel errors
	// in this package where they apply.
	Acquire(ctx context.Context, c Constraints) (Stream, error)
}

// Stream is an open device stream owning the underlying hardware tracks.
type Stream interface {
	// FrameSize returns the native frame dimensions, or zeros while the
	// stream is not ready yet.
	FrameSize() (w, h int)

	// Frame rasterizes the current video frame at native resolution.
	// Returns ErrNoSurface when no rasterization surface is available.
	Frame() (image.Image, error)

	// Close stops and releases all tracks. The session guarantees it is
	// called exactly once per stream.
	Close() error
}
