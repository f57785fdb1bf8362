package intake

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"path"
	"strconv"
	"sync"
)

// Previews allocates revocable preview handles for accepted entries.
type Previews interface {
	// Create registers the content for preview and returns its handle.
	Create(contentType string, data []byte) *PreviewHandle
}

// PreviewHandle is an ephemeral reference to an entry's content, usable for
// visual preview until released. Each handle is owned by exactly one entry
// and released exactly once; releasing again is a no-op.
type PreviewHandle struct {
	url      string
	released bool
	revoke   func()
}

// URL returns the preview location. After Release the location no longer
// resolves.
func (h *PreviewHandle) URL() string {
	if h == nil {
		return ""
	}
	return h.url
}

// Released reports whether the handle has been released.
func (h *PreviewHandle) Released() bool {
	return h != nil && h.released
}

// Release revokes the handle. Safe to call on nil and idempotent.
func (h *PreviewHandle) Release() {
	if h == nil || h.released {
		return
	}
	h.released = true
	if h.revoke != nil {
		h.revoke()
	}
}

type previewBlob struct {
	contentType string
	data        []byte
}

// MemoryPreviews is the default preview registry: blobs held in memory,
// keyed by random token, served over HTTP until revoked.
//
// Unlike the rest of the package it is safe for concurrent use, since the
// HTTP server reads it from request goroutines while the widget loop
// creates and revokes handles.
type MemoryPreviews struct {
	basePath string

	mu    sync.RWMutex
	blobs map[string]previewBlob
}

// NewMemoryPreviews creates a registry whose handle URLs are rooted at
// basePath (e.g. "/dropkit/preview").
func NewMemoryPreviews(basePath string) *MemoryPreviews {
	return &MemoryPreviews{
		basePath: basePath,
		blobs:    make(map[string]previewBlob),
	}
}

// Create implements Previews.
func (p *MemoryPreviews) Create(contentType string, data []byte) *PreviewHandle {
	token := newPreviewToken()

	p.mu.Lock()
	p.blobs[token] = previewBlob{contentType: contentType, data: data}
	p.mu.Unlock()

	return &PreviewHandle{
		url: p.basePath + "/" + token,
		revoke: func() {
			p.mu.Lock()
			delete(p.blobs, token)
			p.mu.Unlock()
		},
	}
}

// Len returns the number of live (unrevoked) blobs.
func (p *MemoryPreviews) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.blobs)
}

// ServeHTTP serves a blob by the token in the last path segment. Released
// or unknown tokens answer 404.
func (p *MemoryPreviews) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := path.Base(r.URL.Path)

	p.mu.RLock()
	blob, ok := p.blobs[token]
	p.mu.RUnlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", blob.contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(blob.data)))
	w.Header().Set("Cache-Control", "no-store")
	w.Write(blob.data)
}

// newPreviewToken generates a cryptographically random blob token.
func newPreviewToken() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
