package camera

import "errors"

// Acquisition and capture failures. Each maps to a distinct user-facing
// message via Message.
var (
	// ErrUnsupported means the host has no camera capability at all.
	ErrUnsupported = errors.New("camera: capture not supported on this device")

	// ErrPermissionDenied means the user refused camera access.
	ErrPermissionDenied = errors.New("camera: permission denied")

	// ErrNoDevice means no camera device was found.
	ErrNoDevice = errors.New("camera: no camera device found")

	// ErrOverconstrained means the requested constraints cannot be
	// satisfied. The session retries once with relaxed constraints before
	// surfacing this.
	ErrOverconstrained = errors.New("camera: constraints cannot be satisfied")

	// ErrNotReady means the stream has no frame dimensions yet; the
	// session stays Live so the capture can be retried.
	ErrNotReady = errors.New("camera: stream is not ready yet")

	// ErrNoSurface means no rasterization surface is available for the
	// capture; the session stays Live.
	ErrNoSurface = errors.New("camera: no rasterization surface available")
)

// Message returns the user-facing text for a session error. Unknown errors
// fall back to a generic acquisition-failure message.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrUnsupported):
		return "Camera is not supported on this device"
	case errors.Is(err, ErrPermissionDenied):
		return "Camera permission was denied"
	case errors.Is(err, ErrNoDevice):
		return "No camera device was found"
	case errors.Is(err, ErrOverconstrained):
		return "The camera does not support the requested settings"
	case errors.Is(err, ErrNotReady):
		return "Camera is still starting, try again"
	case errors.Is(err, ErrNoSurface):
		return "Could not capture a frame"
	default:
		return "Could not access the camera"
	}
}
