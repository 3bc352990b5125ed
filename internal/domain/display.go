package domain

import (
	"regexp"
	"strings"
)

// Display carries presentation hints for map and card rendering of an alert.
type Display struct {
	Color         string      `json:"color"`
	Center        *[2]float64 `json:"center,omitempty"` // [lat, lon]
	Zoom          int         `json:"zoom"`
	Hazards       string      `json:"hazards"`
	AffectedAreas string      `json:"affected_areas"`
}

const (
	defaultZoom       = 14
	maxHazardsLen     = 250
	hazardsUnknown    = "NOT SPECIFIED"
	areasUnknown      = "See warning details for specific locations"
	colorWarning      = "#FF0000"
	colorWatch        = "#FFA500"
	colorAdvisory     = "#FFFF00"
	colorUnclassified = "#808080"
)

type eventColor struct {
	event string
	color string
}

// eventColors follows the F5 Data warning colour scheme. Order matters for
// the keyword fallback.
var eventColors = []eventColor{
	{"Tornado Warning", "#FF0000"},
	{"Tornado Emergency", "#FF00FF"},
	{"Severe Thunderstorm Warning", "#FFFF00"},
	{"Flash Flood Warning", "#00FF00"},
	{"Flash Flood Emergency", "#00FFFF"},
	{"Flood Warning", "#00A000"},
	{"Areal Flood Warning", "#00A0A0"},
	{"Flood Advisory", "#00A000"},
	{"Winter Storm Warning", "#FF69B4"},
	{"Ice Storm Warning", "#FF69B4"},
	{"Blizzard Warning", "#FF69B4"},
	{"Lake Effect Snow Warning", "#FF69B4"},
	{"Winter Weather Advisory", "#FFC0CB"},
	{"Freezing Rain Advisory", "#FFC0CB"},
	{"High Wind Warning", "#A52A2A"},
	{"Wind Advisory", "#DEB887"},
	{"Hurricane Warning", "#FD6347"},
	{"Tropical Storm Warning", "#FD6347"},
	{"Storm Surge Warning", "#FD6347"},
	{"Coastal Flood Warning", "#6495ED"},
	{"Red Flag Warning", "#FF4500"},
	{"Fire Weather Warning", "#FF4500"},
	{"Excessive Heat Warning", "#8B0000"},
	{"Heat Advisory", "#CD5C5C"},
	{"Wind Chill Warning", "#9400D3"},
	{"Extreme Cold Warning", "#9400D3"},
	{"Air Quality Alert", "#808080"},
	{"Dust Storm Warning", "#D2691E"},
	{"Dense Fog Advisory", "#F0E68C"},
}

var colorKeywords = []string{
	"tornado", "severe", "flash flood", "flood", "winter", "wind",
	"hurricane", "tropical", "heat", "cold", "fire",
}

var hazardKeywords = []string{"HAIL", "WIND", "TORNADO", "FLOOD", "HEAVY RAIN"}

var (
	hazardSectionRe = regexp.MustCompile(`(?is)HAZARD\.\.\.(.*?)(?:IMPACT|$)`)
	windGustRe      = regexp.MustCompile(`(?i)wind gusts? (?:of|up to) (\d+)\s*mph`)
	countyRe        = regexp.MustCompile(`(?i)county`)
	includesRe      = regexp.MustCompile(`(?i)includes the count(?:ies|y)?\s*(?:of\s+)?`)
)

// BuildDisplay derives presentation hints from a normalized alert.
func BuildDisplay(rec *AlertRecord) *Display {
	d := &Display{
		Color:         EventColor(rec.Event),
		Zoom:          defaultZoom,
		Hazards:       hazardsFromDescription(rec.Description),
		AffectedAreas: affectedAreas(rec.AffectedAreas, rec.Headline, rec.Description),
	}
	if rec.Geometry != nil {
		if lat, lon, ok := rec.Geometry.Centroid(); ok {
			d.Center = &[2]float64{lat, lon}
		}
		d.Zoom = zoomForSpan(rec.Geometry.Span())
	}
	return d
}

// EventColor maps an event name to its display colour.
func EventColor(event string) string {
	for _, ec := range eventColors {
		if ec.event == event {
			return ec.color
		}
	}

	lower := strings.ToLower(event)
	for _, kw := range colorKeywords {
		if !strings.Contains(lower, kw) {
			continue
		}
		for _, ec := range eventColors {
			if strings.Contains(strings.ToLower(ec.event), kw) {
				return ec.color
			}
		}
	}

	switch {
	case strings.Contains(lower, "warning"):
		return colorWarning
	case strings.Contains(lower, "watch"):
		return colorWatch
	case strings.Contains(lower, "advisory"):
		return colorAdvisory
	}
	return colorUnclassified
}

func zoomForSpan(latSpan, lonSpan float64) int {
	wider := func(limit float64) bool { return latSpan > limit || lonSpan > limit }
	switch {
	case wider(10):
		return 6
	case wider(5):
		return 7
	case wider(2):
		return 8
	case wider(1):
		return 9
	case wider(0.5):
		return 10
	case wider(0.2):
		return 11
	}
	return defaultZoom
}

func hazardsFromDescription(description string) string {
	if strings.TrimSpace(description) == "" {
		return hazardsUnknown
	}

	m := hazardSectionRe.FindStringSubmatch(description)
	if m == nil {
		return hazardKeywordFallback(description)
	}

	hazards := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(m[1]), "."))
	if g := windGustRe.FindStringSubmatch(description); g != nil {
		hazards += "; Wind Gusts: " + g[1] + " mph"
	}
	if len(hazards) > maxHazardsLen {
		hazards = hazards[:maxHazardsLen] + "..."
	}
	return strings.ToUpper(hazards)
}

func hazardKeywordFallback(description string) string {
	upper := strings.ToUpper(description)
	var found []string
	for _, kw := range hazardKeywords {
		if strings.Contains(upper, kw) {
			found = append(found, kw)
		}
	}
	if len(found) == 0 {
		return hazardsUnknown
	}
	return strings.Join(found, ", ")
}

func affectedAreas(areaDesc, headline, description string) string {
	if areaDesc != "" {
		return areaDesc
	}

	if loc := countyRe.FindStringIndex(headline); loc != nil && loc[0] > 0 {
		return strings.TrimSpace(headline[:loc[0]])
	}

	if loc := includesRe.FindStringIndex(description); loc != nil && loc[0] > 0 {
		rest := description[loc[1]:]
		if end := strings.Index(rest, "."); end > 0 {
			if areas := strings.TrimSpace(rest[:end]); areas != "" {
				return areas
			}
		}
	}
	return areasUnknown
}
