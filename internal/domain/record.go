package domain

import (
	"strings"

	"github.com/couchcryptid/storm-bulletin-etl/internal/nws"
)

// MessageType discriminates the two record kinds on the wire.
type MessageType string

const (
	MessageTypeAlert       MessageType = "alert"
	MessageTypeStormReport MessageType = "storm_report"
)

// StormReportType tags every storm report record.
const StormReportType = "Local Storm Report"

// Record is a normalized bulletin ready for delivery.
type Record interface {
	Kind() MessageType
	RecordID() string
	EventName() string
}

// AlertRecord is a normalized hazard alert.
type AlertRecord struct {
	MessageType   MessageType  `json:"message_type"`
	ID            string       `json:"id"`
	Source        string       `json:"source"`
	RawText       string       `json:"raw_text"`
	VTEC          *nws.VTEC    `json:"vtec,omitempty"`
	UGC           *nws.UGC     `json:"ugc,omitempty"`
	Event         string       `json:"event,omitempty"`
	Severity      string       `json:"severity,omitempty"`
	Urgency       string       `json:"urgency,omitempty"`
	Certainty     string       `json:"certainty,omitempty"`
	Effective     string       `json:"effective,omitempty"`
	Expires       string       `json:"expires,omitempty"`
	Headline      string       `json:"headline,omitempty"`
	Description   string       `json:"description,omitempty"`
	Instruction   string       `json:"instruction,omitempty"`
	AffectedAreas string       `json:"affected_areas_description,omitempty"`
	IssuingOffice string       `json:"issuing_office,omitempty"`
	Geometry      *nws.Polygon `json:"geometry,omitempty"`
	Display       *Display     `json:"display,omitempty"`
	Map           *MapImage    `json:"map,omitempty"`
	Error         string       `json:"error,omitempty"`
}

func (r *AlertRecord) Kind() MessageType { return MessageTypeAlert }
func (r *AlertRecord) RecordID() string  { return r.ID }
func (r *AlertRecord) EventName() string { return r.Event }

// StormReportRecord is a normalized Local Storm Report.
type StormReportRecord struct {
	MessageType   MessageType `json:"message_type"`
	ID            string      `json:"id"`
	Source        string      `json:"source"`
	RawText       string      `json:"raw_text"`
	Type          string      `json:"type"`
	Summary       string      `json:"summary"`
	EventLocation string      `json:"event_location"`
	EventTime     string      `json:"event_time"`
	Magnitude     string      `json:"magnitude,omitempty"`
	DataSource    string      `json:"data_source"`
	Remarks       string      `json:"remarks"`
	Latitude      *float64    `json:"latitude,omitempty"`
	Longitude     *float64    `json:"longitude,omitempty"`
	IssuingOffice string      `json:"issuing_office,omitempty"`
	UGC           *nws.UGC    `json:"ugc,omitempty"`
	Error         string      `json:"error,omitempty"`
}

func (r *StormReportRecord) Kind() MessageType { return MessageTypeStormReport }
func (r *StormReportRecord) RecordID() string  { return r.ID }
func (r *StormReportRecord) EventName() string { return r.Summary }

// notes accumulates malformed-field messages for a record's error field.
type notes []string

func (n *notes) add(msg string) { *n = append(*n, msg) }

func (n notes) String() string { return strings.Join(n, "; ") }
