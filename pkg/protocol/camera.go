package protocol

// CameraOp discriminates camera control payloads.
type CameraOp string

const (
	// CameraAcquire asks the client to open a device stream with the
	// given constraints (server -> client).
	CameraAcquire CameraOp = "acquire"

	// CameraReady reports a granted stream and its native dimensions
	// (client -> server).
	CameraReady CameraOp = "ready"

	// CameraError reports an acquisition or capture failure
	// (client -> server).
	CameraError CameraOp = "error"

	// CameraFrameRequest asks the client to rasterize the current frame
	// (server -> client).
	CameraFrameRequest CameraOp = "frame-request"

	// CameraFrame carries a rasterized PNG frame (client -> server).
	CameraFrame CameraOp = "frame"

	// CameraStop tells the client to stop all stream tracks
	// (server -> client).
	CameraStop CameraOp = "stop"
)

// Failure codes carried by CameraError controls.
const (
	CameraCodePermissionDenied = "permission-denied"
	CameraCodeNoDevice         = "no-device"
	CameraCodeOverconstrained  = "overconstrained"
	CameraCodeUnsupported      = "unsupported"
	CameraCodeNoSurface        = "no-surface"
)

// CameraControl is the payload of camera frames. Which fields are set
// depends on Op.
type CameraControl struct {
	Op CameraOp `json:"op"`

	// Acquire constraints.
	Facing      string `json:"facing,omitempty"`
	IdealWidth  int    `json:"ideal_width,omitempty"`
	IdealHeight int    `json:"ideal_height,omitempty"`
	MaxWidth    int    `json:"max_width,omitempty"`
	MaxHeight   int    `json:"max_height,omitempty"`

	// Ready dimensions.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// Error code.
	Code string `json:"code,omitempty"`

	// Frame content (PNG, base64-encoded by encoding/json).
	Data []byte `json:"data,omitempty"`
}
