package camera

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"strings"
	"time"
)

// jpegQuality is the encode quality for captured stills (0.9 on the usual
// 0..1 scale).
const jpegQuality = 90

// nowFunc is a seam for tests.
var nowFunc = time.Now

// Photo is the single output a capture hands to the intake pipeline.
type Photo struct {
	Name        string
	ContentType string
	Data        []byte
}

// EncodePhoto encodes a rasterized frame as a JPEG photo with a
// timestamp-derived name.
func EncodePhoto(img image.Image, now time.Time) (Photo, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return Photo{}, fmt.Errorf("camera: encode frame: %w", err)
	}
	return Photo{
		Name:        CaptureName(now),
		ContentType: "image/jpeg",
		Data:        buf.Bytes(),
	}, nil
}

// CaptureName derives the capture filename from a timestamp:
// "camera-capture-<ISO timestamp with ':' and '.' replaced by '-'>.jpg".
func CaptureName(now time.Time) string {
	ts := now.UTC().Format("2006-01-02T15:04:05.000Z")
	ts = strings.ReplaceAll(ts, ":", "-")
	ts = strings.ReplaceAll(ts, ".", "-")
	return "camera-capture-" + ts + ".jpg"
}
