package nws

import (
	"regexp"
	"strings"
)

// vtecTimeRe matches a VTEC event time, YYMMDDThhmmZ.
var vtecTimeRe = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})T(\d{2})(\d{2})Z$`)

// untilFurtherNotice is the VTEC placeholder for an open-ended begin or end time.
const untilFurtherNotice = "000000T0000Z"

// VTEC is a decoded P-VTEC string.
type VTEC struct {
	ProductClass        string `json:"product_class"`
	Action              string `json:"action"`
	OfficeID            string `json:"office_id"`
	Phenomena           string `json:"phenomena"`
	Significance        string `json:"significance"`
	EventTrackingNumber string `json:"event_tracking_number"`
	StartTime           string `json:"start_time"`
	EndTime             string `json:"end_time"`
	WMOHeader           string `json:"wmo_header,omitempty"`
}

// DecodeVTEC decodes the first P-VTEC string found in text. It returns nil when
// no VTEC string is present or the match does not carry all seven segments.
func DecodeVTEC(text string) *VTEC {
	m := vtecRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	segs := strings.Split(m[1], ".")
	if len(segs) < 7 {
		return nil
	}

	start, end, _ := strings.Cut(segs[6], "-")

	v := &VTEC{
		ProductClass:        segs[0],
		Action:              LookupOr(Actions, segs[1]),
		OfficeID:            segs[2],
		Phenomena:           LookupOr(Phenomena, segs[3]),
		Significance:        LookupOr(Significance, segs[4]),
		EventTrackingNumber: segs[5],
		StartTime:           formatVTECTime(start),
		EndTime:             formatVTECTime(end),
	}
	if h := wmoHeaderRe.FindString(text); h != "" {
		v.WMOHeader = h
	}
	return v
}

// formatVTECTime rewrites YYMMDDThhmmZ as 20YY-MM-DDThh:mm:00Z. Anything else,
// including the open-ended placeholder, is returned unchanged.
func formatVTECTime(s string) string {
	if s == untilFurtherNotice {
		return s
	}
	m := vtecTimeRe.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	return "20" + m[1] + "-" + m[2] + "-" + m[3] + "T" + m[4] + ":" + m[5] + ":00Z"
}
