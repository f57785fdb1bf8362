package upload

import (
	"bytes"
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dropkit-ui/dropkit/pkg/intake"
)

const tracerName = "dropkit"

// Sink adapts a Store into the widget's OnUpload callback: each accepted
// entry is persisted into the store. The batch is traced; the first save
// failure aborts the batch and is returned to the widget, which reports it
// and leaves the pending set unchanged.
func Sink(store Store) func(context.Context, []intake.Entry) error {
	tracer := otel.Tracer(tracerName)

	return func(ctx context.Context, entries []intake.Entry) error {
		var total int64
		for _, e := range entries {
			total += e.Size
		}

		ctx, span := tracer.Start(ctx, "upload.sink",
			trace.WithAttributes(
				attribute.Int("upload.files", len(entries)),
				attribute.Int64("upload.bytes", total),
			))
		defer span.End()

		for _, e := range entries {
			if _, err := store.Save(e.Name, e.ContentType, e.Size, bytes.NewReader(e.File.Data)); err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "save failed")
				return fmt.Errorf("upload: save %s: %w", e.Name, err)
			}
		}
		span.SetStatus(codes.Ok, "")
		return nil
	}
}
