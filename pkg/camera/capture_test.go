package camera

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"
	"time"
)

func TestCaptureName(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 678_000_000, time.UTC)

	got := CaptureName(now)
	want := "camera-capture-2024-01-02T03-04-05-678Z.jpg"
	if got != want {
		t.Errorf("CaptureName = %q, want %q", got, want)
	}
}

func TestCaptureNameConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, loc)

	got := CaptureName(now)
	want := "camera-capture-2024-06-01T10-00-00-000Z.jpg"
	if got != want {
		t.Errorf("CaptureName = %q, want %q", got, want)
	}
}

func TestEncodePhoto(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	photo, err := EncodePhoto(img, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("EncodePhoto: %v", err)
	}

	if photo.ContentType != "image/jpeg" {
		t.Errorf("ContentType = %q, want image/jpeg", photo.ContentType)
	}
	decoded, err := jpeg.Decode(bytes.NewReader(photo.Data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("dimensions = %dx%d, want 64x48", b.Dx(), b.Dy())
	}
}
