package widget

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dropkit-ui/dropkit/pkg/camera"
	"github.com/dropkit-ui/dropkit/pkg/intake"
	"github.com/dropkit-ui/dropkit/pkg/protocol"
	"github.com/dropkit-ui/dropkit/pkg/toast"
	"github.com/dropkit-ui/dropkit/pkg/upload"
)

// Widget is the parent controller: it owns the pending set and the camera
// session and routes gestures between them.
type Widget struct {
	cfg    Config
	logger *slog.Logger

	intake *intake.Intake
	camera *camera.Session
	store  upload.Store
}

// New creates a Widget. device backs the camera session (nil disables
// capture support: starting the camera reports an unsupported-device
// error). store is the temp store picker/drag-drop files are claimed
// from; nil disables the files-selected gesture.
func New(cfg Config, device camera.Device, store upload.Store) *Widget {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	w := &Widget{cfg: cfg, logger: logger, store: store}

	w.intake = intake.New(intake.Config{
		MaxFileSize:   cfg.MaxFileSize,
		AcceptedTypes: cfg.AcceptedTypes,
		MaxFiles:      cfg.MaxFiles,
		Previews:      cfg.Previews,
		Logger:        logger,
		OnChange: func(entries []intake.Entry) {
			if cfg.OnFilesChange != nil {
				cfg.OnFilesChange(entries)
			}
		},
		OnReject: func(r intake.Rejection) {
			toast.Error(cfg.Notifier, r.Detail)
			if cfg.OnReject != nil {
				cfg.OnReject(r)
			}
		},
	})

	w.camera = camera.New(device, camera.Options{
		Post:   cfg.Post,
		Logger: logger,
		Sink: func(p camera.Photo) {
			if cfg.OnCapture != nil {
				cfg.OnCapture()
			}
			w.accept([]intake.RawFile{{
				Name:        p.Name,
				Size:        int64(len(p.Data)),
				ContentType: p.ContentType,
				Data:        p.Data,
			}})
		},
		OnError: func(err error) {
			toast.Error(cfg.Notifier, camera.Message(err))
		},
	})

	return w
}

// Entries returns the pending set in arrival order.
func (w *Widget) Entries() []intake.Entry {
	return w.intake.Entries()
}

// Camera returns the camera session state, for rendering.
func (w *Widget) Camera() camera.State {
	return w.camera.State()
}

// HandleEvent routes one render-surface gesture.
func (w *Widget) HandleEvent(ev protocol.Event) {
	switch ev.Name {
	case protocol.EventFilesSelected:
		w.claim(ev.TempIDs)
	case protocol.EventRemove:
		w.intake.Remove(ev.EntryID)
	case protocol.EventUpload:
		w.Upload(context.Background())
	case protocol.EventCameraStart:
		w.camera.Start()
	case protocol.EventCameraCapture:
		w.camera.Capture()
	case protocol.EventCameraCancel:
		w.camera.Cancel()
	default:
		w.logger.Warn("unknown gesture", "name", ev.Name)
	}
}

// Accept validates raw files into the pending set. Exposed for callers
// that hold file content directly (tests, embedding applications).
func (w *Widget) Accept(files []intake.RawFile) []intake.Entry {
	return w.accept(files)
}

func (w *Widget) accept(files []intake.RawFile) []intake.Entry {
	added := w.intake.Accept(files)
	if len(added) > 0 && w.cfg.OnAccept != nil {
		w.cfg.OnAccept(len(added))
	}
	return added
}

// claim pulls temp files out of the store and runs them through intake.
func (w *Widget) claim(tempIDs []string) {
	if w.store == nil {
		w.logger.Warn("files-selected gesture without a temp store")
		return
	}
	files := make([]intake.RawFile, 0, len(tempIDs))
	for _, id := range tempIDs {
		f, err := w.store.Claim(id)
		if err != nil {
			w.logger.Warn("temp claim failed", "temp_id", id, "error", err)
			toast.Error(w.cfg.Notifier, "A selected file expired, pick it again")
			continue
		}
		data, err := io.ReadAll(f.Reader)
		f.Close()
		if err != nil {
			w.logger.Warn("temp read failed", "temp_id", id, "error", err)
			toast.Error(w.cfg.Notifier, "A selected file could not be read")
			continue
		}
		files = append(files, intake.RawFile{
			Name:        f.Filename,
			Size:        int64(len(data)),
			ContentType: f.ContentType,
			Data:        data,
		})
	}
	if len(files) > 0 {
		w.accept(files)
	}
}

// Upload hands the pending set to the configured OnUpload callback. On
// failure the pending set is left unchanged for a manual retry; on success
// it is cleared and all previews are released.
func (w *Widget) Upload(ctx context.Context) {
	entries := w.intake.Entries()
	if len(entries) == 0 {
		toast.Info(w.cfg.Notifier, "No files to upload")
		return
	}

	if w.cfg.OnUpload == nil {
		toast.Success(w.cfg.Notifier, uploadedMessage(len(entries)))
		w.intake.Clear()
		return
	}

	if err := w.cfg.OnUpload(ctx, entries); err != nil {
		w.logger.Warn("upload failed", "files", len(entries), "error", err)
		toast.Error(w.cfg.Notifier, "Upload failed, please try again")
		return
	}
	toast.Success(w.cfg.Notifier, uploadedMessage(len(entries)))
	w.intake.Clear()
}

// Teardown ends the widget's lifetime: the camera session is cancelled
// (stream stopped) and every preview handle is released.
func (w *Widget) Teardown() {
	w.camera.Teardown()
	w.intake.Teardown()
}

func uploadedMessage(n int) string {
	if n == 1 {
		return "1 file uploaded"
	}
	return fmt.Sprintf("%d files uploaded", n)
}
