package domain

import (
	"github.com/couchcryptid/storm-bulletin-etl/internal/filter"
	"github.com/couchcryptid/storm-bulletin-etl/internal/nws"
)

// Label sets tried, in order, for each storm report field.
var (
	summaryLabels   = []string{"EVENT:", "EVENT TYPE:"}
	locationLabels  = []string{"LOCATION:"}
	timeLabels      = []string{"TIME:"}
	magnitudeLabels = []string{"MAGNITUDE:"}
	sourceLabels    = []string{"SOURCE:"}
	remarksLabels   = []string{"REMARKS:"}
)

// StormReportNormalizer builds StormReportRecords from LSR bulletins.
type StormReportNormalizer struct {
	lists     *filter.Lists
	sourceTag string
}

// NewStormReportNormalizer creates a StormReportNormalizer.
func NewStormReportNormalizer(lists *filter.Lists, sourceTag string) *StormReportNormalizer {
	if lists == nil {
		lists = filter.Default()
	}
	return &StormReportNormalizer{lists: lists, sourceTag: sourceTag}
}

// Normalize extracts a storm report from msg. Labeled lines are read first and
// the tabular layout fills whatever they leave empty. Reports of plain "Rain"
// and reports from offices outside the allow list are rejected.
func (n *StormReportNormalizer) Normalize(msg RawMessage) (*StormReportRecord, error) {
	text := msg.RawText

	eventTime := nws.FindFirstLabeled(text, timeLabels...)
	if eventTime == "" {
		eventTime = nws.LSRTimeToken(text)
	}
	coords := nws.ExtractCoordinates(text)

	fields := nws.TableFields{
		Summary:       nws.FindFirstLabeled(text, summaryLabels...),
		EventLocation: nws.FindFirstLabeled(text, locationLabels...),
		Magnitude:     nws.FindFirstLabeled(text, magnitudeLabels...),
		DataSource:    nws.FindFirstLabeled(text, sourceLabels...),
		Remarks:       nws.FindFirstLabeled(text, remarksLabels...),
	}
	if fields.Summary == "" || fields.EventLocation == "" || fields.DataSource == "" || fields.Remarks == "" {
		fields = nws.FillTable(text, eventTime, coords, fields)
	}

	if fields.Summary == "Rain" {
		return nil, reject(ReasonFilteredEvent, fields.Summary)
	}
	office := nws.OfficeName(text)
	if !n.lists.OfficeAllowed(office) {
		return nil, reject(ReasonFilteredOffice, office)
	}

	var problems notes
	if eventTime == "" {
		problems.add("event time not found")
	}
	if coords == nil {
		problems.add("coordinates not found")
	}

	rec := &StormReportRecord{
		MessageType:   MessageTypeStormReport,
		ID:            msg.ID,
		Source:        n.sourceTag,
		RawText:       text,
		Type:          StormReportType,
		Summary:       fields.Summary,
		EventLocation: fields.EventLocation,
		EventTime:     eventTime,
		Magnitude:     fields.Magnitude,
		DataSource:    fields.DataSource,
		Remarks:       fields.Remarks,
		IssuingOffice: office,
		UGC:           nws.DecodeUGC(text),
		Error:         problems.String(),
	}
	if coords != nil {
		lat, lon := coords.Lat, coords.Lon
		rec.Latitude, rec.Longitude = &lat, &lon
	}
	return rec, nil
}
