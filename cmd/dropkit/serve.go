package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/dropkit-ui/dropkit/el"
	"github.com/dropkit-ui/dropkit/pkg/live"
	"github.com/dropkit-ui/dropkit/pkg/upload"
)

type serveOptions struct {
	addr        string
	storeDir    string
	s3Bucket    string
	s3Prefix    string
	maxFileSize int64
	maxFiles    int
	accept      []string
	cleanupAge  time.Duration
	logJSON     bool
	logLevel    string
}

func serveCmd() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo upload server",
		Long: `Start an HTTP server hosting the widget demo page, the live
WebSocket endpoint, the temp upload store, and Prometheus metrics.

Temp files go to a local directory by default; pass --s3-bucket to use S3
with credentials from the ambient AWS configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.addr, "addr", "a", ":8080", "Listen address")
	cmd.Flags().StringVar(&opts.storeDir, "store-dir", "", "Temp store directory (default: os temp dir)")
	cmd.Flags().StringVar(&opts.s3Bucket, "s3-bucket", "", "Use an S3 bucket for the temp store")
	cmd.Flags().StringVar(&opts.s3Prefix, "s3-prefix", "dropkit-tmp/", "Key prefix inside the S3 bucket")
	cmd.Flags().Int64Var(&opts.maxFileSize, "max-file-size", 0, "Per-file size ceiling in bytes (default 10 MiB)")
	cmd.Flags().IntVar(&opts.maxFiles, "max-files", 0, "Pending-set ceiling (default 10)")
	cmd.Flags().StringSliceVar(&opts.accept, "accept", nil, "Accepted MIME patterns (default image/*,video/*)")
	cmd.Flags().DurationVar(&opts.cleanupAge, "cleanup-age", 30*time.Minute, "Unclaimed temp files older than this are swept")
	cmd.Flags().BoolVar(&opts.logJSON, "log-json", false, "Log in JSON")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	return cmd
}

func runServe(ctx context.Context, opts *serveOptions) error {
	logger := newLogger(opts)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := newStore(ctx, opts)
	if err != nil {
		return err
	}

	handler := live.NewHandler("/dropkit", live.Config{
		Store:         store,
		MaxFileSize:   opts.maxFileSize,
		AcceptedTypes: opts.accept,
		MaxFiles:      opts.maxFiles,
		OnUpload:      upload.Sink(store),
		Logger:        logger,
	})

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Mount("/dropkit", handler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/", serveDemo)

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Sweep unclaimed temp files in the background.
	go func() {
		ticker := time.NewTicker(opts.cleanupAge / 2)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := store.Cleanup(opts.cleanupAge); err != nil {
					logger.Warn("temp store sweep failed", "error", err)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", opts.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	handler.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newLogger(opts *serveOptions) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(opts.logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	ho := &slog.HandlerOptions{Level: level}
	if opts.logJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, ho))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, ho))
}

func newStore(ctx context.Context, opts *serveOptions) (upload.Store, error) {
	if opts.s3Bucket != "" {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return upload.NewS3Store(s3.NewFromConfig(cfg), opts.s3Bucket, opts.s3Prefix, opts.maxFileSize), nil
	}

	dir := opts.storeDir
	if dir == "" {
		var err error
		dir, err = os.MkdirTemp("", "dropkit-")
		if err != nil {
			return nil, fmt.Errorf("create temp store dir: %w", err)
		}
	}
	return upload.NewDiskStore(dir, opts.maxFileSize)
}

// serveDemo renders the demo page hosting one widget.
func serveDemo(w http.ResponseWriter, r *http.Request) {
	page := el.Html(
		el.Head(
			el.Meta(el.AttrKV("charset", "utf-8")),
			el.Meta(el.Name("viewport"), el.AttrKV("content", "width=device-width, initial-scale=1")),
			el.TitleEl(el.Text("Dropkit demo")),
			el.StyleEl(el.Raw(demoCSS)),
			el.Script(el.Src("/dropkit/client.js"), el.AttrKV("defer", "")),
		),
		el.Body(
			el.Main(
				el.H1(el.Text("Dropkit")),
				el.P(el.Text("Drop files, pick them, or take a photo. The widget state lives on the server.")),
				el.Div(el.ID("widget"), el.Data("dropkit", "/dropkit")),
			),
		),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, "<!DOCTYPE html>\n")
	page.Render(w)
}

const demoCSS = `
body { font-family: system-ui, sans-serif; margin: 0; background: #f6f7f9; }
main { max-width: 640px; margin: 3rem auto; padding: 0 1rem; }
.dropkit-dropzone { border: 2px dashed #c0c5cc; border-radius: 8px; padding: 2rem; text-align: center; background: #fff; }
.dropkit-entries { list-style: none; padding: 0; }
.dropkit-entry { display: flex; align-items: center; gap: .75rem; background: #fff; border-radius: 6px; padding: .5rem .75rem; margin-top: .5rem; }
.dropkit-thumb { width: 48px; height: 48px; object-fit: cover; border-radius: 4px; }
.dropkit-name { flex: 1; overflow: hidden; text-overflow: ellipsis; white-space: nowrap; }
.dropkit-size { color: #6b7280; font-size: .875rem; }
.dropkit-actions { margin-top: 1rem; }
.dropkit-video { width: 100%; border-radius: 8px; margin-top: 1rem; background: #000; }
button { cursor: pointer; }
`
