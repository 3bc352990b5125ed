package domain

import (
	"strings"

	"github.com/couchcryptid/storm-bulletin-etl/internal/cap"
	"github.com/couchcryptid/storm-bulletin-etl/internal/filter"
	"github.com/couchcryptid/storm-bulletin-etl/internal/nws"
)

// AlertNormalizer builds AlertRecords from categorized CAP alerts.
type AlertNormalizer struct {
	lists     *filter.Lists
	sourceTag string
}

// NewAlertNormalizer creates an AlertNormalizer.
func NewAlertNormalizer(lists *filter.Lists, sourceTag string) *AlertNormalizer {
	if lists == nil {
		lists = filter.Default()
	}
	return &AlertNormalizer{lists: lists, sourceTag: sourceTag}
}

// Normalize combines the text decoders with the CAP detail of src. It returns
// a *Rejection when the alert is a cancel or update, or when the event or
// geography filters exclude it.
func (n *AlertNormalizer) Normalize(msg RawMessage, src cap.Source) (*AlertRecord, error) {
	vtec := nws.DecodeVTEC(msg.RawText)
	ugc := nws.DecodeUGC(msg.RawText)
	detail := cap.ExtractDetail(src)

	if len(detail.UGC) > 0 {
		ugc = &nws.UGC{Zones: detail.UGC}
	}

	switch strings.ToLower(detail.MsgType) {
	case "cancel", "update":
		return nil, reject(ReasonSuppressedMsgType, detail.MsgType)
	}

	var problems notes
	geometry := alertGeometry(msg.RawText, detail.Polygons, &problems)

	event := detail.Event
	if event == "" && vtec != nil {
		event = vtec.Phenomena
	}
	if n.lists.EventDenied(event) {
		return nil, reject(ReasonFilteredEvent, event)
	}
	if !n.lists.EventAllowed(event) {
		return nil, reject(ReasonFilteredEvent, event)
	}
	var zones []string
	if ugc != nil {
		zones = ugc.Zones
	}
	if !n.lists.UGCAllowed(zones) {
		return nil, reject(ReasonFilteredGeography, strings.Join(zones, ","))
	}

	office := nws.OfficeName(msg.RawText)
	if office == "" {
		office = detail.Sender
	}

	rec := &AlertRecord{
		MessageType:   MessageTypeAlert,
		ID:            msg.ID,
		Source:        n.sourceTag,
		RawText:       msg.RawText,
		VTEC:          vtec,
		UGC:           ugc,
		Event:         event,
		Severity:      detail.Severity,
		Urgency:       detail.Urgency,
		Certainty:     detail.Certainty,
		Effective:     detail.Effective,
		Expires:       detail.Expires,
		Headline:      detail.Headline,
		Description:   detail.Description,
		Instruction:   detail.Instruction,
		AffectedAreas: detail.AreaDesc,
		IssuingOffice: office,
		Geometry:      geometry,
		Error:         problems.String(),
	}
	rec.Display = BuildDisplay(rec)
	return rec, nil
}

// alertGeometry prefers the first valid CAP polygon and falls back to the
// LAT...LON block in the text.
func alertGeometry(rawText string, polygons []string, problems *notes) *nws.Polygon {
	for _, ring := range polygons {
		if p := nws.PolygonFromCAP(ring); p != nil {
			return p
		}
	}
	if len(polygons) > 0 {
		problems.add("cap polygon malformed")
	}

	p := nws.PolygonFromLatLon(rawText)
	if p == nil && strings.Contains(strings.ToUpper(rawText), "LAT...LON") {
		problems.add("lat...lon block malformed")
	}
	return p
}
