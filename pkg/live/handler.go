package live

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	clientdist "github.com/dropkit-ui/dropkit/client/dist"
	"github.com/dropkit-ui/dropkit/pkg/intake"
	"github.com/dropkit-ui/dropkit/pkg/upload"
	"github.com/dropkit-ui/dropkit/pkg/widget"
)

// Default connection timeouts.
const (
	DefaultReadTimeout  = 60 * time.Second
	DefaultWriteTimeout = 10 * time.Second
)

// Config configures a Handler. Every field is optional except Store.
type Config struct {
	// Store holds picker/drag-drop files between the upload POST and the
	// files-selected gesture that claims them.
	Store upload.Store

	// MaxFileSize, AcceptedTypes and MaxFiles configure each session's
	// widget. Zero values use the intake defaults.
	MaxFileSize   int64
	AcceptedTypes []string
	MaxFiles      int

	// OnUpload transmits a session's pending set when the user triggers
	// upload. upload.Sink adapts a Store. When nil, upload reports
	// success without transmitting.
	OnUpload func(context.Context, []intake.Entry) error

	// Class is appended to every widget's root class list.
	Class string

	// CheckOrigin overrides the upgrader's origin check.
	CheckOrigin func(*http.Request) bool

	// ReadTimeout and WriteTimeout bound socket operations.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Logger is used for connection logging. Default: slog.Default().
	Logger *slog.Logger
}

// Handler serves the live widget: the WebSocket endpoint, the thin client
// bundle, the temp upload endpoint, and preview blobs. Mount it under a
// prefix with chi's Mount:
//
//	r.Mount("/dropkit", live.NewHandler("/dropkit", cfg))
type Handler struct {
	cfg      Config
	logger   *slog.Logger
	upgrader websocket.Upgrader
	previews *intake.MemoryPreviews
	manager  *Manager
	router   chi.Router
}

// NewHandler creates a Handler. prefix is the path the handler is mounted
// under; preview URLs are built against it.
func NewHandler(prefix string, cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultWriteTimeout
	}

	h := &Handler{
		cfg:      cfg,
		logger:   logger,
		previews: intake.NewMemoryPreviews(prefix + "/preview"),
		manager:  NewManager(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     cfg.CheckOrigin,
		},
	}

	r := chi.NewRouter()
	r.Get("/ws", h.serveWS)
	r.Get("/client.js", h.serveClient)
	r.Get("/preview/{token}", h.previews.ServeHTTP)
	r.Post("/upload", upload.HandlerWithConfig(h.cfg.Store, &upload.Config{
		MaxFileSize:  cfg.MaxFileSize,
		AllowedTypes: cfg.AcceptedTypes,
		Logger:       logger,
	}).ServeHTTP)
	h.router = r

	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// Sessions returns the manager tracking connected sessions.
func (h *Handler) Sessions() *Manager {
	return h.manager
}

// Shutdown closes all connected sessions.
func (h *Handler) Shutdown() {
	h.manager.Shutdown()
}

func (h *Handler) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	s := &Session{
		id:           uuid.NewString(),
		conn:         conn,
		logger:       h.logger,
		readTimeout:  h.cfg.ReadTimeout,
		writeTimeout: h.cfg.WriteTimeout,
		actions:      make(chan func(), 64),
		done:         make(chan struct{}),
		onClose:      h.manager.remove,
	}
	s.bridge = newBridge(s.sendCamera)

	m := getMetrics()
	s.widget = widget.New(widget.Config{
		MaxFileSize:   h.cfg.MaxFileSize,
		AcceptedTypes: h.cfg.AcceptedTypes,
		MaxFiles:      h.cfg.MaxFiles,
		OnUpload:      h.instrumentedUpload(),
		Class:         h.cfg.Class,
		Notifier:      s,
		Previews:      h.previews,
		Post:          s.post,
		Logger:        h.logger,
		OnAccept:      func(n int) { m.filesAccepted.Add(float64(n)) },
		OnCapture:     func() { m.capturesTotal.Inc() },
		OnReject: func(r intake.Rejection) {
			m.filesRejected.WithLabelValues(string(r.Reason)).Inc()
		},
	}, s.bridge, h.cfg.Store)

	h.manager.add(s)
	h.logger.Info("session connected", "session", s.id, "remote", r.RemoteAddr)

	go s.Run()
	go s.ReadLoop()
}

// instrumentedUpload wraps the configured OnUpload with outcome counters.
func (h *Handler) instrumentedUpload() func(context.Context, []intake.Entry) error {
	if h.cfg.OnUpload == nil {
		return nil
	}
	return func(ctx context.Context, entries []intake.Entry) error {
		err := h.cfg.OnUpload(ctx, entries)
		status := "success"
		if err != nil {
			status = "error"
		}
		getMetrics().uploadsTotal.WithLabelValues(status).Inc()
		return err
	}
}

func (h *Handler) serveClient(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(clientdist.DropkitJS)
}
