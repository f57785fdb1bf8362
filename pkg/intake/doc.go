// Package intake implements the file intake and validation pipeline.
//
// Raw files arrive from three sources (drag-drop, file picker, camera
// capture) and are filtered against type, size, and count rules before
// being tracked as pending entries. Each tracked entry owns a revocable
// preview handle that is released exactly once, on removal or teardown.
//
// The intake set is owned by a single widget and mutated only on that
// widget's event loop; no locking happens here. The preview registry is
// the one exception: it is read by HTTP handlers and guards itself.
package intake
