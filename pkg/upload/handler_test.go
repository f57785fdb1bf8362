package upload

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
)

// pngHeader is enough of a PNG signature for content sniffing.
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	part.Write(content)
	w.Close()
	return &buf, w.FormDataContentType()
}

func TestHandlerStoresAndReturnsTempID(t *testing.T) {
	store := newDiskStore(t, 0)
	h := HandlerWithConfig(store, &Config{AllowedTypes: []string{"image/*"}})

	body, contentType := multipartBody(t, "pic.png", pngHeader)
	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	tempID := resp["temp_id"]
	if tempID == "" {
		t.Fatal("missing temp_id")
	}

	file, err := store.Claim(tempID)
	if err != nil {
		t.Fatalf("Claim: %v", err)
	}
	defer file.Close()

	if file.Filename != "pic.png" {
		t.Errorf("filename = %q, want pic.png", file.Filename)
	}
	// Server-side sniffed, not taken from the part header.
	if file.ContentType != "image/png" {
		t.Errorf("content type = %q, want image/png", file.ContentType)
	}
}

func TestHandlerRejectsSniffedTypeMismatch(t *testing.T) {
	store := newDiskStore(t, 0)
	h := HandlerWithConfig(store, &Config{AllowedTypes: []string{"image/*"}})

	// Plain text with an image filename: the sniffer wins.
	body, contentType := multipartBody(t, "fake.png", []byte("just some text"))
	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnsupportedMediaType {
		t.Errorf("status = %d, want 415", rec.Code)
	}
}

func TestHandlerRejectsOversizedBody(t *testing.T) {
	store := newDiskStore(t, 0)
	h := HandlerWithConfig(store, &Config{MaxFileSize: 64})

	body, contentType := multipartBody(t, "big.bin", bytes.Repeat([]byte{0xAB}, 4096))
	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rec.Code)
	}
}

func TestHandlerMethodNotAllowed(t *testing.T) {
	h := Handler(newDiskStore(t, 0))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/upload", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestHandlerMissingFileField(t *testing.T) {
	h := Handler(newDiskStore(t, 0))

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	w.WriteField("other", "value")
	w.Close()

	req := httptest.NewRequest("POST", "/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
