package widget

import (
	"strconv"
	"strings"

	"github.com/dropkit-ui/dropkit/el"
	"github.com/dropkit-ui/dropkit/pkg/camera"
	"github.com/dropkit-ui/dropkit/pkg/intake"
)

// Render produces the widget markup for the current state. The client
// runtime wires gestures through data-dk-* attributes; everything else is
// plain HTML the host page styles.
func (w *Widget) Render() *el.Node {
	return el.Div(
		el.Class("dropkit", w.cfg.Class),
		w.renderDropzone(),
		w.renderEntries(),
		w.renderActions(),
		w.renderCamera(),
	)
}

// RenderString is Render flattened to HTML, for hosts that splice the
// widget into a template.
func (w *Widget) RenderString() string {
	return w.Render().RenderString()
}

func (w *Widget) renderDropzone() *el.Node {
	accept := strings.Join(w.acceptedTypes(), ",")
	return el.Div(
		el.Class("dropkit-dropzone"),
		el.Data("dk-drop", ""),
		el.P(el.Class("dropkit-hint"), el.Text("Drag files here, or")),
		el.Div(
			el.Class("dropkit-pickers"),
			el.Button(
				el.Type("button"),
				el.Class("dropkit-pick"),
				el.Data("dk-pick", ""),
				el.Text("Browse files"),
			),
			el.Button(
				el.Type("button"),
				el.Class("dropkit-camera-open"),
				el.Data("dk-camera", ""),
				el.Text("Take photo"),
			),
		),
		el.Input(
			el.Type("file"),
			el.Class("dropkit-input"),
			el.Data("dk-input", ""),
			el.Accept(accept),
			el.Multiple(),
			el.Hidden(),
		),
	)
}

func (w *Widget) renderEntries() *el.Node {
	entries := w.intake.Entries()
	if len(entries) == 0 {
		return el.Div(el.Class("dropkit-empty"), el.Hidden())
	}

	items := make([]*el.Node, 0, len(entries))
	for _, e := range entries {
		items = append(items, renderEntry(e))
	}
	return el.Ul(el.Class("dropkit-entries"), items)
}

func renderEntry(e intake.Entry) *el.Node {
	return el.Li(
		el.Class("dropkit-entry"),
		el.Data("dk-entry", e.ID),
		el.If(e.Preview != nil && strings.HasPrefix(e.ContentType, "image/"),
			el.Img(
				el.Class("dropkit-thumb"),
				el.Src(e.Preview.URL()),
				el.Alt(e.Name),
			),
		),
		el.Span(el.Class("dropkit-name"), el.Text(e.Name)),
		el.Span(el.Class("dropkit-size"), el.Text(intake.FormatSize(e.Size))),
		el.Button(
			el.Type("button"),
			el.Class("dropkit-remove"),
			el.Data("dk-remove", e.ID),
			el.Text("Remove"),
		),
	)
}

func (w *Widget) renderActions() *el.Node {
	n := w.intake.Len()
	return el.Div(
		el.Class("dropkit-actions"),
		el.Button(
			el.Type("button"),
			el.Class("dropkit-upload"),
			el.Data("dk-upload", ""),
			el.IfAttr(n == 0, el.Disabled()),
			el.Text(uploadLabel(n)),
		),
	)
}

func (w *Widget) renderCamera() *el.Node {
	state := w.camera.State()
	if state == camera.StateIdle {
		return nil
	}

	var body *el.Node
	switch state {
	case camera.StateRequesting:
		body = el.P(el.Class("dropkit-camera-status"), el.Text("Starting camera…"))
	default:
		body = el.Video(
			el.Class("dropkit-video"),
			el.Data("dk-video", ""),
			el.Autoplay(),
			el.Muted(),
			el.PlaysInline(),
		)
	}

	return el.Div(
		el.Class("dropkit-camera"),
		body,
		el.Div(
			el.Class("dropkit-camera-actions"),
			el.Button(
				el.Type("button"),
				el.Class("dropkit-capture"),
				el.Data("dk-capture", ""),
				el.IfAttr(state != camera.StateLive, el.Disabled()),
				el.Text("Capture"),
			),
			el.Button(
				el.Type("button"),
				el.Class("dropkit-cancel"),
				el.Data("dk-cancel", ""),
				el.Text("Cancel"),
			),
		),
	)
}

func (w *Widget) acceptedTypes() []string {
	if len(w.cfg.AcceptedTypes) > 0 {
		return w.cfg.AcceptedTypes
	}
	return intake.DefaultAcceptedTypes
}

func uploadLabel(n int) string {
	switch n {
	case 0:
		return "Upload"
	case 1:
		return "Upload 1 file"
	default:
		return "Upload " + strconv.Itoa(n) + " files"
	}
}
