package widget

import (
	"strings"
	"testing"

	"github.com/dropkit-ui/dropkit/pkg/camera"
	"github.com/dropkit-ui/dropkit/pkg/camera/cameratest"
	"github.com/dropkit-ui/dropkit/pkg/intake"
	"github.com/dropkit-ui/dropkit/pkg/protocol"
)

func TestRenderEmptyWidget(t *testing.T) {
	h := newHarness(t, Config{Class: "my-theme"}, nil, nil)

	html := h.widget.RenderString()

	for _, want := range []string{
		`class="dropkit my-theme"`,
		"data-dk-drop",
		"data-dk-pick",
		"data-dk-camera",
		"data-dk-input",
		`accept="image/*,video/*"`,
		"data-dk-upload",
		"disabled",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %q:\n%s", want, html)
		}
	}
	if strings.Contains(html, "dropkit-camera ") || strings.Contains(html, `class="dropkit-camera"`) {
		t.Errorf("idle widget should not render the camera block:\n%s", html)
	}
}

func TestRenderEntries(t *testing.T) {
	h := newHarness(t, Config{}, nil, nil)
	added := h.widget.Accept([]intake.RawFile{
		raw("photo.png", "image/png", 1234),
		raw("clip.mp4", "video/mp4", 2048),
	})

	html := h.widget.RenderString()

	for _, want := range []string{
		"photo.png",
		"clip.mp4",
		"1.21 KB",
		"2 KB",
		`data-dk-remove="` + added[0].ID + `"`,
		`data-dk-remove="` + added[1].ID + `"`,
		"Upload 2 files",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %q:\n%s", want, html)
		}
	}

	// Image entries get a thumbnail from the preview handle, video entries
	// do not.
	if got := strings.Count(html, "dropkit-thumb"); got != 1 {
		t.Errorf("thumbnail count = %d, want 1", got)
	}
	if strings.Contains(html, "disabled") {
		t.Errorf("upload button should be enabled with pending entries:\n%s", html)
	}
}

func TestRenderCameraStates(t *testing.T) {
	block := make(chan struct{})
	device := (&cameratest.Device{Block: block}).Grant(&cameratest.Stream{W: 320, H: 240})
	h := newHarness(t, Config{}, device, nil)

	h.widget.HandleEvent(protocol.Event{Name: protocol.EventCameraStart})
	if got := h.widget.Camera(); got != camera.StateRequesting {
		t.Fatalf("camera state = %v, want Requesting", got)
	}
	html := h.widget.RenderString()
	if !strings.Contains(html, "Starting camera") {
		t.Errorf("requesting state should show the loading hint:\n%s", html)
	}
	if strings.Contains(html, "data-dk-video") {
		t.Errorf("requesting state should not render the video surface:\n%s", html)
	}

	close(block)
	h.loop.step()
	html = h.widget.RenderString()
	for _, want := range []string{"data-dk-video", "data-dk-capture", "data-dk-cancel", "autoplay", "playsinline"} {
		if !strings.Contains(html, want) {
			t.Errorf("live state HTML missing %q:\n%s", want, html)
		}
	}

	h.widget.HandleEvent(protocol.Event{Name: protocol.EventCameraCancel})
	if strings.Contains(h.widget.RenderString(), "data-dk-video") {
		t.Error("cancelled widget should not render the camera block")
	}
}
