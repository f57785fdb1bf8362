package protocol

// Gesture names carried by event frames. They map one-to-one onto the
// widget's render-surface gestures.
const (
	// EventFilesSelected reports files chosen via drag-drop or the file
	// picker, identified by the temp IDs returned by the upload endpoint.
	EventFilesSelected = "files-selected"

	// EventRemove removes one pending entry by identifier.
	EventRemove = "remove"

	// EventUpload triggers the upload of the pending set.
	EventUpload = "upload"

	// EventCameraStart opens the camera capture session.
	EventCameraStart = "camera-start"

	// EventCameraCapture captures a still from the live stream.
	EventCameraCapture = "camera-capture"

	// EventCameraCancel closes the camera session without capturing.
	EventCameraCancel = "camera-cancel"
)

// Event is a user gesture forwarded by the thin client.
type Event struct {
	Name string `json:"name"`

	// EntryID identifies the target entry for EventRemove.
	EntryID string `json:"entry_id,omitempty"`

	// TempIDs identify uploaded temp files for EventFilesSelected.
	TempIDs []string `json:"temp_ids,omitempty"`
}

// Patch replaces the widget markup. Seq increases by one per patch so the
// client can drop stale frames after a reconnect.
type Patch struct {
	Seq  uint64 `json:"seq"`
	HTML string `json:"html"`
}

// Toast is a user-facing notification.
type Toast struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// ErrorMessage is a protocol-level error surfaced to the client.
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
