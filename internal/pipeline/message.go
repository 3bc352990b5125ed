package pipeline

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/couchcryptid/storm-bulletin-etl/internal/cap"
	"github.com/couchcryptid/storm-bulletin-etl/internal/domain"
)

// envelopeMessage is the JSON shape a feed bridge publishes when it keeps the
// message envelope alongside the bulletin text.
type envelopeMessage struct {
	ID       string `json:"id"`
	RawText  string `json:"raw_text"`
	Envelope string `json:"envelope"`
}

// DecodeMessage turns a source payload into a RawMessage. A JSON object with a
// raw_text field is read as an envelope message; anything else is taken as
// plain bulletin text. The id is the JSON id, else fallbackID, else a new
// UUID. An envelope that does not parse is logged and dropped.
func DecodeMessage(value []byte, fallbackID string, logger *slog.Logger) domain.RawMessage {
	msg := domain.RawMessage{RawText: string(value)}

	var env envelopeMessage
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) > 0 && trimmed[0] == '{' && json.Unmarshal(trimmed, &env) == nil && env.RawText != "" {
		msg.ID = strings.TrimSpace(env.ID)
		msg.RawText = env.RawText
		if strings.TrimSpace(env.Envelope) != "" {
			root, err := cap.ParseElement([]byte(env.Envelope))
			if err != nil {
				logger.Warn("envelope parse failed, continuing without it",
					"id", firstNonEmpty(msg.ID, fallbackID),
					"error", err,
				)
			} else {
				msg.Envelope = root
			}
		}
	}

	msg.ID = firstNonEmpty(msg.ID, strings.TrimSpace(fallbackID))
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	return msg
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
