// Package camera manages the live-capture session lifecycle.
//
// A Session is a state machine (Idle -> Requesting -> Live -> Capturing ->
// Idle) over an abstract Device. Acquisition is asynchronous: Start returns
// immediately and the result is delivered back onto the owner's event loop
// via the configured post function, so a cancel arriving while acquisition
// is in flight still results in any late stream being stopped instead of
// bound. Whenever the session is not Live or Capturing, no stream reference
// is retained; every stream is closed exactly once on every exit path.
//
// A capture rasterizes the current frame at the stream's native resolution,
// encodes it as a JPEG, and hands it to the configured sink as a timestamp-
// named photo.
package camera
