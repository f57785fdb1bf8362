// Package upload provides the storage backends behind the widget.
//
// WebSocket connections handle large binary uploads poorly (they block the
// heartbeat and the event loop), so drag-drop and picker files take a
// hybrid path: the thin client POSTs each file to the upload endpoint, the
// server streams it into a temp Store and returns a temp ID, and the
// client reports the IDs over the socket where the widget claims the files
// into its pending set.
//
// The same Store abstraction doubles as the permanent destination for the
// widget's upload action via Sink, with DiskStore and S3Store as the two
// shipped implementations.
//
// The handler enforces the type allowlist against a server-side sniffed
// MIME type; client-provided Content-Type headers are not trusted.
package upload
