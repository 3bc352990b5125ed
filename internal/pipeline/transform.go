package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/storm-bulletin-etl/internal/domain"
	"github.com/couchcryptid/storm-bulletin-etl/internal/observability"
)

// Sink message header names.
const (
	HeaderMessageType = "message_type"
	HeaderEvent       = "event"
	HeaderProcessedAt = "processed_at"
)

// BulletinTransformer implements Transformer by running each bulletin through
// the domain Processor, with optional map rendering for alerts.
type BulletinTransformer struct {
	processor *domain.Processor
	renderer  domain.MapRenderer
	metrics   *observability.Metrics
	logger    *slog.Logger
}

// NewTransformer creates a BulletinTransformer. Pass a nil renderer to skip
// map artifacts.
func NewTransformer(processor *domain.Processor, renderer domain.MapRenderer, metrics *observability.Metrics, logger *slog.Logger) *BulletinTransformer {
	return &BulletinTransformer{
		processor: processor,
		renderer:  renderer,
		metrics:   metrics,
		logger:    logger,
	}
}

// Transform decodes raw, normalizes it, and serializes the record for the sink.
// Rejected bulletins return a *domain.Rejection.
func (t *BulletinTransformer) Transform(ctx context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	msg := DecodeMessage(raw.Value, string(raw.Key), t.logger)
	rec, err := t.Normalize(ctx, msg)
	if err != nil {
		return domain.OutputEvent{}, err
	}
	return Serialize(rec)
}

// Normalize processes one bulletin and attaches a map to alerts when a
// renderer is configured.
func (t *BulletinTransformer) Normalize(ctx context.Context, msg domain.RawMessage) (domain.Record, error) {
	out, err := t.processor.Process(msg)
	if t.metrics != nil && out.Category != "" {
		t.metrics.Categories.WithLabelValues(string(out.Category)).Inc()
	}
	if err != nil {
		return nil, err
	}

	if alert, ok := out.Record.(*domain.AlertRecord); ok {
		domain.AttachMap(ctx, alert, t.renderer, t.logger)
	}
	return out.Record, nil
}

// Serialize encodes rec as a sink message keyed by the record id.
func Serialize(rec domain.Record) (domain.OutputEvent, error) {
	value, err := json.Marshal(rec)
	if err != nil {
		return domain.OutputEvent{}, fmt.Errorf("marshal %s record: %w", rec.Kind(), err)
	}
	return domain.OutputEvent{
		Key:   []byte(rec.RecordID()),
		Value: value,
		Headers: map[string]string{
			HeaderMessageType: string(rec.Kind()),
			HeaderEvent:       rec.EventName(),
			HeaderProcessedAt: clock.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}
