package live

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dropkit-ui/dropkit/pkg/protocol"
	"github.com/dropkit-ui/dropkit/pkg/toast"
	"github.com/dropkit-ui/dropkit/pkg/widget"
)

// Session is one connected widget: a WebSocket connection, the widget
// controller behind it, and the event loop that owns both. All widget
// access happens on the loop goroutine; the read loop and the camera
// bridge only post work onto it.
type Session struct {
	id     string
	conn   *websocket.Conn
	logger *slog.Logger

	readTimeout  time.Duration
	writeTimeout time.Duration

	widget *widget.Widget
	bridge *bridge

	actions chan func()
	done    chan struct{}

	writeMu sync.Mutex
	closed  atomic.Bool
	seq     atomic.Uint64

	lastHTML string
	onClose  func(*Session)
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Run processes posted work until the session closes. It renders and
// pushes a patch after every action, and tears the widget down on exit.
// Run blocks; the handler calls it on a dedicated goroutine.
func (s *Session) Run() {
	defer s.teardown()

	// Initial markup so the client has something before the first gesture.
	s.render()

	for {
		select {
		case fn := <-s.actions:
			fn()
			s.render()
		case <-s.done:
			return
		}
	}
}

// post schedules fn on the session loop. Posts after close are dropped.
func (s *Session) post(fn func()) {
	select {
	case s.actions <- fn:
	case <-s.done:
	}
}

// ReadLoop reads frames until the connection closes or errors, routing
// gestures onto the session loop and camera controls to the bridge.
func (s *Session) ReadLoop() {
	defer s.Close()

	for {
		s.conn.SetReadDeadline(time.Now().Add(s.readTimeout))

		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "session", s.id, "error", err)
			}
			return
		}

		frame, err := protocol.Decode(msg)
		if err != nil {
			s.logger.Error("frame decode error", "session", s.id, "error", err)
			s.sendError("bad-frame", "Invalid frame")
			continue
		}

		switch frame.Type {
		case protocol.FrameEvent:
			s.handleEventFrame(frame)

		case protocol.FrameCamera:
			var ctrl protocol.CameraControl
			if err := frame.Unmarshal(&ctrl); err != nil {
				s.logger.Error("camera decode error", "session", s.id, "error", err)
				continue
			}
			s.bridge.deliver(ctrl)

		case protocol.FramePing:
			s.writeFrame(protocol.FramePong, nil)

		case protocol.FramePong:
			s.logger.Debug("received pong", "session", s.id)

		default:
			s.logger.Warn("unexpected frame type", "session", s.id, "type", frame.Type)
		}
	}
}

func (s *Session) handleEventFrame(frame *protocol.Frame) {
	var ev protocol.Event
	if err := frame.Unmarshal(&ev); err != nil {
		s.logger.Error("event decode error", "session", s.id, "error", err)
		s.sendError("bad-event", "Invalid event format")
		return
	}
	getMetrics().eventsTotal.WithLabelValues(ev.Name).Inc()
	s.post(func() { s.widget.HandleEvent(ev) })
}

// render pushes the widget markup when it changed since the last patch.
func (s *Session) render() {
	html := s.widget.RenderString()
	if html == s.lastHTML {
		return
	}
	s.lastHTML = html
	s.writeFrame(protocol.FramePatch, protocol.Patch{
		Seq:  s.seq.Add(1),
		HTML: html,
	})
}

// Notify implements toast.Notifier by forwarding notes to the client.
func (s *Session) Notify(level toast.Level, message string) {
	s.writeFrame(protocol.FrameToast, protocol.Toast{
		Level:   string(level),
		Message: message,
	})
}

func (s *Session) sendError(code, message string) {
	s.writeFrame(protocol.FrameError, protocol.ErrorMessage{Code: code, Message: message})
}

// sendCamera forwards a camera control to the client. Used by the bridge.
func (s *Session) sendCamera(ctrl protocol.CameraControl) error {
	return s.writeFrame(protocol.FrameCamera, ctrl)
}

func (s *Session) writeFrame(t protocol.FrameType, payload any) error {
	if s.closed.Load() {
		return websocket.ErrCloseSent
	}

	data, err := protocol.Encode(t, payload)
	if err != nil {
		s.logger.Error("frame encode error", "session", s.id, "error", err)
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.logger.Error("write error", "session", s.id, "error", err)
		s.Close()
		return err
	}
	return nil
}

// Close shuts the session down once: the connection is closed and the loop
// is signalled to tear the widget down and exit.
func (s *Session) Close() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}
	s.conn.Close()
	close(s.done)
	if s.onClose != nil {
		s.onClose(s)
	}
}

// teardown runs on the loop goroutine as it exits, so widget state is
// still single-threaded.
func (s *Session) teardown() {
	s.widget.Teardown()
	s.logger.Debug("session closed", "session", s.id)
}
