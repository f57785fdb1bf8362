// Package live is the server side of the widget transport. Each WebSocket
// connection gets a Session owning one widget controller and an event loop;
// gestures come in as JSON frames, markup patches and toasts go out, and
// the camera bridge runs the capture state machine against the browser's
// devices.
//
// Files never travel over the socket. The thin client POSTs them to the
// temp upload endpoint and claims the returned temp IDs with a
// files-selected gesture, keeping the socket free for control traffic.
package live
