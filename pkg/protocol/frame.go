package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// FrameType discriminates frame payloads.
type FrameType string

const (
	// FrameEvent carries a user gesture (client -> server).
	FrameEvent FrameType = "event"

	// FramePatch carries a widget markup replacement (server -> client).
	FramePatch FrameType = "patch"

	// FrameToast carries a user-facing notification (server -> client).
	FrameToast FrameType = "toast"

	// FrameError carries a protocol-level error (server -> client).
	FrameError FrameType = "error"

	// FrameCamera carries camera session control in both directions.
	FrameCamera FrameType = "camera"

	// FramePing and FramePong keep the connection alive.
	FramePing FrameType = "ping"
	FramePong FrameType = "pong"
)

// ErrUnknownFrame is returned by Decode for an unrecognized frame type.
var ErrUnknownFrame = errors.New("protocol: unknown frame type")

// Frame is the wire envelope.
type Frame struct {
	Type    FrameType       `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

var knownFrameTypes = map[FrameType]bool{
	FrameEvent:  true,
	FramePatch:  true,
	FrameToast:  true,
	FrameError:  true,
	FrameCamera: true,
	FramePing:   true,
	FramePong:   true,
}

// Encode marshals a frame with the given payload.
func Encode(t FrameType, payload any) ([]byte, error) {
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("protocol: encode %s payload: %w", t, err)
		}
		raw = data
	}
	data, err := json.Marshal(Frame{Type: t, Payload: raw})
	if err != nil {
		return nil, fmt.Errorf("protocol: encode %s frame: %w", t, err)
	}
	return data, nil
}

// Decode unmarshals a frame and validates its type.
func Decode(data []byte) (*Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("protocol: decode frame: %w", err)
	}
	if !knownFrameTypes[f.Type] {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFrame, f.Type)
	}
	return &f, nil
}

// Unmarshal decodes the frame payload into v.
func (f *Frame) Unmarshal(v any) error {
	if len(f.Payload) == 0 {
		return fmt.Errorf("protocol: %s frame has no payload", f.Type)
	}
	if err := json.Unmarshal(f.Payload, v); err != nil {
		return fmt.Errorf("protocol: decode %s payload: %w", f.Type, err)
	}
	return nil
}
