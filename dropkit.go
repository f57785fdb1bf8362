// Package dropkit provides the public API for the Dropkit upload widget.
//
// This is the recommended import for most applications:
//
//	import "github.com/dropkit-ui/dropkit"
//
// Usage:
//
//	store, _ := upload.NewDiskStore(dir, 0)
//	handler := dropkit.NewHandler("/dropkit", dropkit.Config{
//		Store:    store,
//		OnUpload: dropkit.SinkTo(store),
//	})
//	r.Mount("/dropkit", handler)
//
// The widget state lives on the server. The thin client served at
// "<prefix>/client.js" connects over WebSocket, forwards gestures, and
// applies markup patches; files travel over a separate HTTP temp store.
package dropkit

import (
	"context"

	"github.com/dropkit-ui/dropkit/pkg/intake"
	"github.com/dropkit-ui/dropkit/pkg/live"
	"github.com/dropkit-ui/dropkit/pkg/upload"
	"github.com/dropkit-ui/dropkit/pkg/widget"
)

// =============================================================================
// Live transport (pkg/live exposed as the main entry point)
// =============================================================================

// Config configures a live widget handler.
type Config = live.Config

// Handler serves the live widget endpoints under a mount prefix.
type Handler = live.Handler

// NewHandler creates a Handler. prefix must match the path it is mounted
// under, since preview and client URLs are built against it.
func NewHandler(prefix string, cfg Config) *Handler {
	return live.NewHandler(prefix, cfg)
}

// =============================================================================
// Intake (validation pipeline types used in callbacks)
// =============================================================================

// Entry is one accepted pending file.
type Entry = intake.Entry

// Rejection describes one refused file.
type Rejection = intake.Rejection

// FormatSize renders a byte count for humans ("1.21 KB").
func FormatSize(n int64) string {
	return intake.FormatSize(n)
}

// =============================================================================
// Upload stores
// =============================================================================

// Store holds temp files between the upload POST and the claim gesture.
type Store = upload.Store

// NewDiskStore creates a directory-backed temp store.
func NewDiskStore(dir string, maxSize int64) (*upload.DiskStore, error) {
	return upload.NewDiskStore(dir, maxSize)
}

// SinkTo adapts a Store into an upload callback: each pending entry is
// written to the store when the user triggers upload.
func SinkTo(store Store) func(context.Context, []Entry) error {
	return upload.Sink(store)
}

// =============================================================================
// Embedding without the live transport
// =============================================================================

// Widget is the standalone controller, for hosts that bring their own
// transport and event loop.
type Widget = widget.Widget

// WidgetConfig configures a standalone Widget.
type WidgetConfig = widget.Config
