package intake

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Defaults applied by New when the corresponding Config field is zero.
const (
	DefaultMaxFileSize = 10 << 20 // 10 MiB
	DefaultMaxFiles    = 10
)

// DefaultAcceptedTypes is the accepted-type list applied when
// Config.AcceptedTypes is empty.
var DefaultAcceptedTypes = []string{"image/*", "video/*"}

// Config configures an Intake.
type Config struct {
	// MaxFileSize is the per-file size ceiling in bytes.
	// Default: DefaultMaxFileSize.
	MaxFileSize int64

	// AcceptedTypes is the list of accepted MIME patterns, exact
	// ("image/png") or prefix wildcards ("image/*").
	// Default: DefaultAcceptedTypes.
	AcceptedTypes []string

	// MaxFiles is the pending-set ceiling. Default: DefaultMaxFiles.
	MaxFiles int

	// OnChange is invoked synchronously with the full updated pending set
	// after every successful mutation (add or remove). Not invoked when a
	// batch produces no accepted entries.
	OnChange func([]Entry)

	// OnReject is invoked once per refused file, in batch order.
	OnReject func(Rejection)

	// Previews allocates preview handles for accepted entries.
	// Default: an unrouted in-memory registry.
	Previews Previews

	// Logger is used for debug logging. Default: slog.Default().
	Logger *slog.Logger
}

// Intake validates raw files and tracks the accepted pending set.
// It is not safe for concurrent use; all calls must happen on the owning
// widget's event loop.
type Intake struct {
	cfg      Config
	previews Previews
	logger   *slog.Logger
	entries  []Entry
}

// New creates an Intake with defaults applied for zero Config fields.
func New(cfg Config) *Intake {
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = DefaultMaxFileSize
	}
	if len(cfg.AcceptedTypes) == 0 {
		cfg.AcceptedTypes = DefaultAcceptedTypes
	}
	if cfg.MaxFiles <= 0 {
		cfg.MaxFiles = DefaultMaxFiles
	}
	previews := cfg.Previews
	if previews == nil {
		previews = NewMemoryPreviews("/preview")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Intake{cfg: cfg, previews: previews, logger: logger}
}

// Accept validates a batch of raw files and appends the survivors to the
// pending set, preserving arrival order. It returns the entries created for
// this batch.
//
// Per file: the MIME type must match an accepted pattern and the size must
// not exceed the ceiling. Files passing both checks are then clamped to the
// remaining slots (first come, first kept); overflow files are rejected with
// RejectCount. Every rejection is reported via OnReject and never aborts the
// rest of the batch. OnChange fires once, after the batch, iff at least one
// entry was added.
func (in *Intake) Accept(files []RawFile) []Entry {
	passed := make([]RawFile, 0, len(files))
	for _, f := range files {
		switch {
		case !Matches(in.cfg.AcceptedTypes, f.ContentType):
			in.reject(Rejection{
				Name:   f.Name,
				Reason: RejectType,
				Detail: fmt.Sprintf("%s is not an accepted file type", f.Name),
			})
		case f.Size > in.cfg.MaxFileSize:
			in.reject(Rejection{
				Name:   f.Name,
				Reason: RejectSize,
				Detail: fmt.Sprintf("%s exceeds the %s size limit", f.Name, FormatSize(in.cfg.MaxFileSize)),
			})
		default:
			passed = append(passed, f)
		}
	}

	remaining := in.cfg.MaxFiles - len(in.entries)
	if remaining < 0 {
		remaining = 0
	}
	if len(passed) > remaining {
		for _, f := range passed[remaining:] {
			in.reject(Rejection{
				Name:   f.Name,
				Reason: RejectCount,
				Detail: fmt.Sprintf("%s skipped: at most %d files allowed", f.Name, in.cfg.MaxFiles),
			})
		}
		passed = passed[:remaining]
	}

	added := make([]Entry, 0, len(passed))
	for _, f := range passed {
		e := Entry{
			ID:          uuid.NewString(),
			Name:        f.Name,
			Size:        f.Size,
			ContentType: f.ContentType,
			Preview:     in.previews.Create(f.ContentType, f.Data),
			File:        f,
		}
		in.entries = append(in.entries, e)
		added = append(added, e)
	}

	if len(added) > 0 {
		in.logger.Debug("files accepted", "count", len(added), "pending", len(in.entries))
		in.notifyChange()
	}
	return added
}

// Remove releases the identified entry's preview handle and drops the entry
// from the pending set. Removing an unknown identifier is a no-op: a second
// Remove with the same ID neither errors nor double-releases.
func (in *Intake) Remove(id string) {
	for i, e := range in.entries {
		if e.ID != id {
			continue
		}
		e.Preview.Release()
		in.entries = append(in.entries[:i], in.entries[i+1:]...)
		in.notifyChange()
		return
	}
}

// Entries returns a copy of the pending set in arrival order.
func (in *Intake) Entries() []Entry {
	out := make([]Entry, len(in.entries))
	copy(out, in.entries)
	return out
}

// Len returns the pending-set size.
func (in *Intake) Len() int {
	return len(in.entries)
}

// Clear releases every preview handle, empties the pending set, and fires
// OnChange once. Used after a successful upload.
func (in *Intake) Clear() {
	if len(in.entries) == 0 {
		return
	}
	in.release()
	in.notifyChange()
}

// Teardown releases every preview handle and empties the pending set
// without notifying. Called when the owning widget's lifetime ends.
func (in *Intake) Teardown() {
	in.release()
}

func (in *Intake) release() {
	for _, e := range in.entries {
		e.Preview.Release()
	}
	in.entries = nil
}

func (in *Intake) reject(r Rejection) {
	in.logger.Debug("file rejected", "name", r.Name, "reason", string(r.Reason))
	if in.cfg.OnReject != nil {
		in.cfg.OnReject(r)
	}
}

func (in *Intake) notifyChange() {
	if in.cfg.OnChange != nil {
		in.cfg.OnChange(in.Entries())
	}
}
