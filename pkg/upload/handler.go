package upload

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gabriel-vasile/mimetype"

	"github.com/dropkit-ui/dropkit/pkg/intake"
)

// Config configures the upload endpoint.
type Config struct {
	// MaxFileSize is the per-file byte ceiling. Default: 10 MiB.
	MaxFileSize int64

	// AllowedTypes is the accepted MIME pattern list, matched against the
	// sniffed content type with intake's rules. Empty allows everything.
	AllowedTypes []string

	// Logger is used for request logging. Default: slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the endpoint defaults.
func DefaultConfig() *Config {
	return &Config{MaxFileSize: intake.DefaultMaxFileSize}
}

// Handler returns the multipart upload endpoint backed by store, with
// default configuration. Mount it under the widget prefix:
//
//	r.Post("/upload", upload.Handler(store))
//
// The endpoint expects a "file" form field and answers
// {"temp_id": "..."}.
func Handler(store Store) http.Handler {
	return HandlerWithConfig(store, DefaultConfig())
}

// HandlerWithConfig returns the upload endpoint with custom configuration.
func HandlerWithConfig(store Store, config *Config) http.Handler {
	maxSize := config.MaxFileSize
	if maxSize <= 0 {
		maxSize = intake.DefaultMaxFileSize
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		// Cap the body before parsing so an oversized upload cannot be
		// buffered first.
		r.Body = http.MaxBytesReader(w, r.Body, maxSize)

		if err := r.ParseMultipartForm(32 << 20); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				http.Error(w, "File too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "Failed to parse form", http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "No file provided", http.StatusBadRequest)
			return
		}
		defer file.Close()

		// Sniff the real content type; the part header is untrusted.
		contentType, reader, err := sniffType(file)
		if err != nil {
			http.Error(w, "Failed to read file", http.StatusBadRequest)
			return
		}
		if len(config.AllowedTypes) > 0 && !intake.Matches(config.AllowedTypes, contentType) {
			http.Error(w, "Unsupported file type", http.StatusUnsupportedMediaType)
			return
		}

		tempID, err := store.Save(header.Filename, contentType, header.Size, reader)
		if err != nil {
			if errors.Is(err, ErrTooLarge) {
				http.Error(w, "File too large", http.StatusRequestEntityTooLarge)
				return
			}
			logger.Error("temp save failed", "filename", header.Filename, "error", err)
			http.Error(w, "Upload failed", http.StatusInternalServerError)
			return
		}

		logger.Debug("temp file stored",
			"temp_id", tempID, "filename", header.Filename,
			"content_type", contentType, "size", header.Size)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"temp_id": tempID})
	})
}

// sniffType detects the MIME type from the leading bytes and returns a
// reader that replays the full content.
func sniffType(r io.Reader) (string, io.Reader, error) {
	head := make([]byte, 3072)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", nil, err
	}
	head = head[:n]
	return mimetype.Detect(head).String(), io.MultiReader(bytes.NewReader(head), r), nil
}
