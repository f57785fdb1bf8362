package intake

import (
	"testing"
)

// countingPreviews tracks allocations and releases so tests can assert the
// exactly-once release invariant.
type countingPreviews struct {
	created  int
	released int
}

func (p *countingPreviews) Create(contentType string, data []byte) *PreviewHandle {
	p.created++
	return &PreviewHandle{
		url:    "/preview/test",
		revoke: func() { p.released++ },
	}
}

type changeLog struct {
	calls int
	last  []Entry
}

func (c *changeLog) onChange(entries []Entry) {
	c.calls++
	c.last = entries
}

func raw(name, contentType string, size int64) RawFile {
	return RawFile{Name: name, Size: size, ContentType: contentType, Data: []byte("x")}
}

func newTestIntake(cfg Config) (*Intake, *countingPreviews, *changeLog, *[]Rejection) {
	previews := &countingPreviews{}
	changes := &changeLog{}
	var rejections []Rejection

	cfg.Previews = previews
	cfg.OnChange = changes.onChange
	cfg.OnReject = func(r Rejection) { rejections = append(rejections, r) }

	return New(cfg), previews, changes, &rejections
}

func TestAcceptValidFiles(t *testing.T) {
	in, previews, changes, rejections := newTestIntake(Config{})

	added := in.Accept([]RawFile{
		raw("a.png", "image/png", 100),
		raw("b.mp4", "video/mp4", 200),
	})

	if len(added) != 2 {
		t.Fatalf("accepted %d entries, want 2", len(added))
	}
	if in.Len() != 2 {
		t.Errorf("pending set size = %d, want 2", in.Len())
	}
	if len(*rejections) != 0 {
		t.Errorf("rejections = %d, want 0", len(*rejections))
	}
	if changes.calls != 1 {
		t.Errorf("OnChange calls = %d, want 1", changes.calls)
	}
	if previews.created != 2 {
		t.Errorf("previews created = %d, want 2", previews.created)
	}

	// Arrival order preserved, metadata copied.
	entries := in.Entries()
	if entries[0].Name != "a.png" || entries[1].Name != "b.mp4" {
		t.Errorf("order = [%s, %s], want [a.png, b.mp4]", entries[0].Name, entries[1].Name)
	}
	if entries[0].Size != 100 || entries[0].ContentType != "image/png" {
		t.Errorf("entry metadata = %d/%s, want 100/image/png", entries[0].Size, entries[0].ContentType)
	}
	if entries[0].ID == "" || entries[0].ID == entries[1].ID {
		t.Errorf("identifiers not unique: %q vs %q", entries[0].ID, entries[1].ID)
	}
}

func TestAcceptRejectsUnmatchedType(t *testing.T) {
	in, _, changes, rejections := newTestIntake(Config{})

	added := in.Accept([]RawFile{raw("doc.pdf", "application/pdf", 100)})

	if len(added) != 0 || in.Len() != 0 {
		t.Fatalf("entry added for unmatched type: added=%d len=%d", len(added), in.Len())
	}
	if len(*rejections) != 1 || (*rejections)[0].Reason != RejectType {
		t.Fatalf("rejections = %+v, want one type rejection", *rejections)
	}
	if changes.calls != 0 {
		t.Errorf("OnChange calls = %d, want 0", changes.calls)
	}
}

func TestAcceptRejectsOversized(t *testing.T) {
	in, _, changes, rejections := newTestIntake(Config{MaxFileSize: 1024})

	added := in.Accept([]RawFile{raw("big.png", "image/png", 2048)})

	if len(added) != 0 || in.Len() != 0 {
		t.Fatalf("oversized file was added")
	}
	if len(*rejections) != 1 || (*rejections)[0].Reason != RejectSize {
		t.Fatalf("rejections = %+v, want one size rejection", *rejections)
	}
	if changes.calls != 0 {
		t.Errorf("OnChange calls = %d, want 0 when nothing was accepted", changes.calls)
	}
}

func TestAcceptAtExactSizeLimit(t *testing.T) {
	in, _, _, rejections := newTestIntake(Config{MaxFileSize: 1024})

	added := in.Accept([]RawFile{raw("edge.png", "image/png", 1024)})

	if len(added) != 1 {
		t.Fatalf("file at exact size limit rejected: %+v", *rejections)
	}
}

func TestAcceptClampsToRemainingSlots(t *testing.T) {
	in, _, changes, rejections := newTestIntake(Config{MaxFiles: 2})

	added := in.Accept([]RawFile{
		raw("a.png", "image/png", 1),
		raw("b.png", "image/png", 1),
		raw("c.png", "image/png", 1),
	})

	if len(added) != 2 || in.Len() != 2 {
		t.Fatalf("added = %d, len = %d, want 2/2", len(added), in.Len())
	}
	entries := in.Entries()
	if entries[0].Name != "a.png" || entries[1].Name != "b.png" {
		t.Errorf("kept [%s, %s], want first-come-first-kept [a.png, b.png]", entries[0].Name, entries[1].Name)
	}
	if len(*rejections) != 1 || (*rejections)[0].Reason != RejectCount || (*rejections)[0].Name != "c.png" {
		t.Errorf("rejections = %+v, want one count rejection for c.png", *rejections)
	}
	if changes.calls != 1 {
		t.Errorf("OnChange calls = %d, want exactly 1", changes.calls)
	}
	if len(changes.last) != 2 {
		t.Errorf("OnChange received %d entries, want 2", len(changes.last))
	}
}

func TestAcceptNeverExceedsMaxFiles(t *testing.T) {
	in, _, _, _ := newTestIntake(Config{MaxFiles: 3})

	for i := 0; i < 5; i++ {
		in.Accept([]RawFile{
			raw("a.png", "image/png", 1),
			raw("b.png", "image/png", 1),
		})
		if in.Len() > 3 {
			t.Fatalf("pending set size %d exceeds MaxFiles 3", in.Len())
		}
	}
	if in.Len() != 3 {
		t.Errorf("pending set size = %d, want 3", in.Len())
	}
}

func TestAcceptFullSetRejectsEverything(t *testing.T) {
	in, _, changes, rejections := newTestIntake(Config{MaxFiles: 1})

	in.Accept([]RawFile{raw("a.png", "image/png", 1)})
	added := in.Accept([]RawFile{raw("b.png", "image/png", 1)})

	if len(added) != 0 {
		t.Fatalf("added to a full set")
	}
	if len(*rejections) != 1 || (*rejections)[0].Reason != RejectCount {
		t.Errorf("rejections = %+v, want count rejection", *rejections)
	}
	if changes.calls != 1 {
		t.Errorf("OnChange calls = %d, want 1 (only the first batch)", changes.calls)
	}
}

func TestAcceptMixedBatchContinuesPastRejections(t *testing.T) {
	in, _, _, rejections := newTestIntake(Config{MaxFileSize: 1024})

	added := in.Accept([]RawFile{
		raw("bad.pdf", "application/pdf", 1),
		raw("big.png", "image/png", 4096),
		raw("ok.png", "image/png", 10),
	})

	if len(added) != 1 || added[0].Name != "ok.png" {
		t.Fatalf("added = %+v, want just ok.png", added)
	}
	if len(*rejections) != 2 {
		t.Fatalf("rejections = %d, want 2", len(*rejections))
	}
	if (*rejections)[0].Reason != RejectType || (*rejections)[1].Reason != RejectSize {
		t.Errorf("rejection reasons = %s, %s, want type, size",
			(*rejections)[0].Reason, (*rejections)[1].Reason)
	}
}

func TestRemoveReleasesPreviewOnce(t *testing.T) {
	in, previews, changes, _ := newTestIntake(Config{})

	added := in.Accept([]RawFile{raw("a.png", "image/png", 1)})
	id := added[0].ID

	in.Remove(id)
	if in.Len() != 0 {
		t.Fatalf("pending set size = %d after remove, want 0", in.Len())
	}
	if previews.released != 1 {
		t.Fatalf("preview released %d times, want 1", previews.released)
	}
	if changes.calls != 2 {
		t.Errorf("OnChange calls = %d, want 2 (add + remove)", changes.calls)
	}

	// Second remove is a no-op: no error, no double-release, no notify.
	in.Remove(id)
	if previews.released != 1 {
		t.Errorf("preview released %d times after double remove, want 1", previews.released)
	}
	if changes.calls != 2 {
		t.Errorf("OnChange calls = %d after double remove, want 2", changes.calls)
	}
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	in, _, changes, _ := newTestIntake(Config{})

	in.Accept([]RawFile{raw("a.png", "image/png", 1)})
	in.Remove("no-such-id")

	if in.Len() != 1 {
		t.Errorf("pending set size = %d, want 1", in.Len())
	}
	if changes.calls != 1 {
		t.Errorf("OnChange calls = %d, want 1", changes.calls)
	}
}

func TestClearReleasesAndNotifies(t *testing.T) {
	in, previews, changes, _ := newTestIntake(Config{})

	in.Accept([]RawFile{raw("a.png", "image/png", 1), raw("b.png", "image/png", 1)})
	in.Clear()

	if in.Len() != 0 {
		t.Errorf("pending set size = %d, want 0", in.Len())
	}
	if previews.released != 2 {
		t.Errorf("previews released = %d, want 2", previews.released)
	}
	if changes.calls != 2 {
		t.Errorf("OnChange calls = %d, want 2", changes.calls)
	}

	// Clearing an empty set does not notify.
	in.Clear()
	if changes.calls != 2 {
		t.Errorf("OnChange calls = %d after empty clear, want 2", changes.calls)
	}
}

func TestTeardownReleasesWithoutNotify(t *testing.T) {
	in, previews, changes, _ := newTestIntake(Config{})

	in.Accept([]RawFile{raw("a.png", "image/png", 1)})
	in.Teardown()

	if in.Len() != 0 {
		t.Errorf("pending set size = %d, want 0", in.Len())
	}
	if previews.released != 1 {
		t.Errorf("previews released = %d, want 1", previews.released)
	}
	if changes.calls != 1 {
		t.Errorf("OnChange calls = %d, want 1 (teardown is silent)", changes.calls)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	in, _, _, _ := newTestIntake(Config{})

	in.Accept([]RawFile{raw("a.png", "image/png", 1)})
	entries := in.Entries()
	entries[0].Name = "mutated"

	if in.Entries()[0].Name != "a.png" {
		t.Error("Entries() exposed internal state")
	}
}
