package domain

import (
	"context"
	"time"

	"github.com/couchcryptid/storm-bulletin-etl/internal/cap"
)

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// RawMessage is one bulletin as delivered by the feed: the product text, a
// message id, and the optional envelope the text arrived in.
type RawMessage struct {
	ID       string
	RawText  string
	Envelope *cap.Element
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
