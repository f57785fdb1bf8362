package widget

import (
	"context"
	"log/slog"

	"github.com/dropkit-ui/dropkit/pkg/intake"
	"github.com/dropkit-ui/dropkit/pkg/toast"
)

// Config configures a Widget. Every field is optional.
type Config struct {
	// MaxFileSize is the per-file size ceiling in bytes.
	// Default: intake.DefaultMaxFileSize (10 MiB).
	MaxFileSize int64

	// AcceptedTypes is the list of accepted MIME patterns.
	// Default: intake.DefaultAcceptedTypes ("image/*", "video/*").
	AcceptedTypes []string

	// MaxFiles is the pending-set ceiling.
	// Default: intake.DefaultMaxFiles (10).
	MaxFiles int

	// OnFilesChange is invoked synchronously with the full pending set
	// after every successful mutation.
	OnFilesChange func([]intake.Entry)

	// OnUpload transmits the pending entries when the user triggers
	// upload. When nil, the widget reports success without transmitting.
	// An error leaves the pending set unchanged.
	OnUpload func(context.Context, []intake.Entry) error

	// OnReject observes every validation rejection after it has been
	// reported to the user. Used for instrumentation.
	OnReject func(intake.Rejection)

	// OnAccept observes the number of entries each accepted batch added.
	// Used for instrumentation.
	OnAccept func(n int)

	// OnCapture observes every camera capture delivered to the pending
	// set. Used for instrumentation.
	OnCapture func()

	// Notifier receives user-facing notifications. Nil drops them.
	Notifier toast.Notifier

	// Previews allocates preview handles. Default: an in-memory registry
	// rooted at "/preview" (pkg/live mounts its own).
	Previews intake.Previews

	// Post delivers asynchronous camera completions onto the owning
	// event loop. Required when the camera device resolves off-loop.
	Post func(func())

	// Class is appended to the root element's class list. Presentational
	// only.
	Class string

	// Logger is used for debug logging. Default: slog.Default().
	Logger *slog.Logger
}
