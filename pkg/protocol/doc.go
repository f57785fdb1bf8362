// Package protocol defines the JSON frames exchanged between the thin
// client and a live widget session.
//
// The client sends gesture events and camera control replies; the server
// sends render patches, toasts, errors, and camera control requests. Every
// message is one Frame: a type tag plus a raw payload decoded by the
// receiver according to the type.
package protocol
