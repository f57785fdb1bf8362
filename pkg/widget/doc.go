// Package widget is the parent controller of the upload widget. It owns
// the pending file set (pkg/intake) and the single camera session
// (pkg/camera), routes render-surface gestures to them, renders the widget
// markup, and reports outcomes through the notification sink.
//
// A Widget is single-threaded: every method must be called on the owning
// event loop (pkg/live provides one per connection). Teardown releases all
// preview handles and closes any open camera stream.
package widget
