package intake

// RawFile is a file reference as delivered by one of the three intake
// sources, before validation.
type RawFile struct {
	// Name is the client-reported filename.
	Name string

	// Size is the byte size of the content.
	Size int64

	// ContentType is the MIME type of the content.
	ContentType string

	// Data is the file content.
	Data []byte
}

// Entry is a file accepted into the pending set.
//
// The scalar fields are copies taken at intake time and are immutable for
// the entry's lifetime. ID is the removal and render key.
type Entry struct {
	// ID is an opaque unique identifier generated at intake time.
	ID string

	// Name is the original filename.
	Name string

	// Size is the file size in bytes.
	Size int64

	// ContentType is the MIME type.
	ContentType string

	// Preview is the revocable preview handle owned by this entry.
	Preview *PreviewHandle

	// File is the underlying raw file.
	File RawFile
}

// RejectReason classifies why a file was refused at intake.
type RejectReason string

const (
	// RejectType means the MIME type matched no accepted pattern.
	RejectType RejectReason = "type"

	// RejectSize means the file exceeded the per-file size ceiling.
	RejectSize RejectReason = "size"

	// RejectCount means the pending set had no remaining slots.
	RejectCount RejectReason = "count"
)

// Rejection describes one refused file. Rejections are non-fatal: they are
// reported to the configured observer and never abort the rest of a batch.
type Rejection struct {
	// Name is the filename of the refused file.
	Name string

	// Reason classifies the rejection.
	Reason RejectReason

	// Detail is a user-facing message.
	Detail string
}
