package upload

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
	"time"
)

// ErrNotFound is returned when a temp file does not exist or was already
// claimed.
var ErrNotFound = errors.New("upload: file not found")

// ErrTooLarge is returned when a file exceeds the store's size limit.
var ErrTooLarge = errors.New("upload: file too large")

// Store is a storage backend for uploaded files.
type Store interface {
	// Save stores the content and returns an opaque ID for it.
	Save(filename, contentType string, size int64, r io.Reader) (id string, err error)

	// Claim retrieves a stored file and removes it (or marks it for
	// removal). Claiming an unknown or already-claimed ID returns
	// ErrNotFound.
	Claim(id string) (*File, error)

	// Cleanup removes stored files older than maxAge. Call it
	// periodically.
	Cleanup(maxAge time.Duration) error
}

// File is a stored file returned by Claim.
type File struct {
	// ID is the store-assigned identifier.
	ID string

	// Filename is the original client-reported name.
	Filename string

	// ContentType is the server-side detected MIME type.
	ContentType string

	// Size is the stored size in bytes.
	Size int64

	// Path is the local filesystem path (DiskStore only).
	Path string

	// URL is a remote access URL (S3Store only).
	URL string

	// Reader provides the content. Closing it finalizes the claim for
	// backends that delete on close.
	Reader io.ReadCloser
}

// Close closes the content reader if open.
func (f *File) Close() error {
	if f.Reader != nil {
		return f.Reader.Close()
	}
	return nil
}

// newStoreID generates a cryptographically random file ID.
func newStoreID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
