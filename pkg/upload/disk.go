package upload

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DiskStore keeps files on the local filesystem, one content file plus a
// JSON metadata sidecar per ID. Claimed files are deleted when the
// returned reader is closed.
type DiskStore struct {
	dir     string
	maxSize int64

	mu    sync.Mutex
	metas map[string]*diskMeta
}

type diskMeta struct {
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewDiskStore creates a DiskStore rooted at dir, creating it if needed.
// maxSize caps individual files; 0 means no limit.
func NewDiskStore(dir string, maxSize int64) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload: create store dir: %w", err)
	}
	return &DiskStore{
		dir:     dir,
		maxSize: maxSize,
		metas:   make(map[string]*diskMeta),
	}, nil
}

// Save implements Store.
func (s *DiskStore) Save(filename, contentType string, size int64, r io.Reader) (string, error) {
	if s.maxSize > 0 && size > s.maxSize {
		return "", ErrTooLarge
	}

	id := newStoreID()
	path := s.contentPath(id)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("upload: create temp file: %w", err)
	}
	defer f.Close()

	reader := r
	if s.maxSize > 0 {
		// +1 so an over-limit stream is detected rather than truncated.
		reader = io.LimitReader(r, s.maxSize+1)
	}
	written, err := io.Copy(f, reader)
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("upload: write temp file: %w", err)
	}
	if s.maxSize > 0 && written > s.maxSize {
		os.Remove(path)
		return "", ErrTooLarge
	}

	meta := &diskMeta{
		Filename:    filename,
		ContentType: contentType,
		Size:        written,
		CreatedAt:   time.Now(),
	}
	s.mu.Lock()
	s.metas[id] = meta
	s.mu.Unlock()

	// Sidecar on disk so files survive a restart.
	s.writeMeta(id, meta)

	return id, nil
}

// Claim implements Store.
func (s *DiskStore) Claim(id string) (*File, error) {
	s.mu.Lock()
	meta, ok := s.metas[id]
	if ok {
		delete(s.metas, id)
	}
	s.mu.Unlock()

	if !ok {
		var err error
		if meta, err = s.readMeta(id); err != nil {
			return nil, ErrNotFound
		}
	}

	path := s.contentPath(id)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("upload: open temp file: %w", err)
	}

	return &File{
		ID:          id,
		Filename:    meta.Filename,
		ContentType: meta.ContentType,
		Size:        meta.Size,
		Path:        path,
		Reader: &removeOnClose{
			File:  f,
			paths: []string{path, s.metaPath(id)},
		},
	}, nil
}

// Cleanup implements Store. It drops expired entries and sweeps the
// directory for orphans older than maxAge.
func (s *DiskStore) Cleanup(maxAge time.Duration) error {
	cutoff := time.Now().Add(-maxAge)

	s.mu.Lock()
	for id, meta := range s.metas {
		if meta.CreatedAt.Before(cutoff) {
			delete(s.metas, id)
			os.Remove(s.contentPath(id))
			os.Remove(s.metaPath(id))
		}
	}
	s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("upload: scan store dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			os.Remove(filepath.Join(s.dir, entry.Name()))
		}
	}
	return nil
}

func (s *DiskStore) contentPath(id string) string {
	return filepath.Join(s.dir, id)
}

func (s *DiskStore) metaPath(id string) string {
	return filepath.Join(s.dir, id+".meta")
}

func (s *DiskStore) writeMeta(id string, meta *diskMeta) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return os.WriteFile(s.metaPath(id), data, 0o644)
}

func (s *DiskStore) readMeta(id string) (*diskMeta, error) {
	data, err := os.ReadFile(s.metaPath(id))
	if err != nil {
		return nil, err
	}
	var meta diskMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// removeOnClose deletes the backing files once the content is consumed.
type removeOnClose struct {
	*os.File
	paths []string
}

func (r *removeOnClose) Close() error {
	err := r.File.Close()
	for _, p := range r.paths {
		os.Remove(p)
	}
	return err
}
