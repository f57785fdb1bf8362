// Package toast is the notification sink the widget reports user-facing
// outcomes through: validation rejections, camera failures, upload results.
// Presentation is not part of this package; pkg/live forwards notes to the
// thin client, and tests use Recorder.
package toast

// Level is the notification severity.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Notifier receives user-facing notifications.
type Notifier interface {
	Notify(level Level, message string)
}

// Func adapts a function to the Notifier interface.
type Func func(level Level, message string)

// Notify implements Notifier.
func (f Func) Notify(level Level, message string) {
	f(level, message)
}

// Success sends a success note. All helpers are nil-safe: a nil Notifier
// drops the note.
func Success(n Notifier, message string) {
	send(n, LevelSuccess, message)
}

// Error sends an error note.
func Error(n Notifier, message string) {
	send(n, LevelError, message)
}

// Warning sends a warning note.
func Warning(n Notifier, message string) {
	send(n, LevelWarning, message)
}

// Info sends an info note.
func Info(n Notifier, message string) {
	send(n, LevelInfo, message)
}

func send(n Notifier, level Level, message string) {
	if n == nil {
		return
	}
	n.Notify(level, message)
}

// Note is one recorded notification.
type Note struct {
	Level   Level
	Message string
}

// Recorder is a Notifier that captures notes for assertions in tests.
type Recorder struct {
	Notes []Note
}

// Notify implements Notifier.
func (r *Recorder) Notify(level Level, message string) {
	r.Notes = append(r.Notes, Note{Level: level, Message: message})
}

// Last returns the most recent note, or the zero Note.
func (r *Recorder) Last() Note {
	if len(r.Notes) == 0 {
		return Note{}
	}
	return r.Notes[len(r.Notes)-1]
}
