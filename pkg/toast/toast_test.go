package toast

import "testing"

func TestHelpersRecordLevels(t *testing.T) {
	rec := &Recorder{}

	Success(rec, "saved")
	Error(rec, "boom")
	Warning(rec, "careful")
	Info(rec, "fyi")

	if len(rec.Notes) != 4 {
		t.Fatalf("notes = %d, want 4", len(rec.Notes))
	}
	wantLevels := []Level{LevelSuccess, LevelError, LevelWarning, LevelInfo}
	for i, want := range wantLevels {
		if rec.Notes[i].Level != want {
			t.Errorf("note %d level = %s, want %s", i, rec.Notes[i].Level, want)
		}
	}
	if rec.Last().Message != "fyi" {
		t.Errorf("Last() = %q, want fyi", rec.Last().Message)
	}
}

func TestNilNotifierIsDropped(t *testing.T) {
	// Must not panic.
	Success(nil, "x")
	Error(nil, "x")
}

func TestFuncAdapter(t *testing.T) {
	var got Note
	n := Func(func(level Level, message string) {
		got = Note{Level: level, Message: message}
	})

	Warning(n, "heads up")

	if got.Level != LevelWarning || got.Message != "heads up" {
		t.Errorf("got %+v", got)
	}
}
