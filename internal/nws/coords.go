package nws

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Coordinates is a single reported point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// coordStrategy extracts a point from raw text, reporting whether it succeeded.
type coordStrategy struct {
	name    string
	extract func(text string) (Coordinates, bool)
}

var (
	labeledSameLineRe = regexp.MustCompile(`(?i)LATITUDE:\s*(-?\d+(?:\.\d+)?)\s*([NS])?\b[\s,;]*LONGITUDE:\s*(-?\d+(?:\.\d+)?)\s*([EW])?\b`)
	latLonSlashRe     = regexp.MustCompile(`(?i)LAT/LON:\s*(-?\d+(?:\.\d+)?)\s*([NS])?\s*/\s*(-?\d+(?:\.\d+)?)\s*([EW])?\b`)
	latitudeLineRe    = regexp.MustCompile(`(?im)^\s*LATITUDE:?\s*(-?\d+(?:\.\d+)?)\s*([NS])?\b`)
	longitudeLineRe   = regexp.MustCompile(`(?im)^\s*LONGITUDE:?\s*(-?\d+(?:\.\d+)?)\s*([EW])?\b`)
	barePairRe        = regexp.MustCompile(`\b(\d{1,2}\.\d{1,2})([NS])\s+(\d{1,3}\.\d{1,2})([EW])\b`)
)

// coordStrategies are evaluated in order; the first that yields two finite
// numbers wins.
var coordStrategies = []coordStrategy{
	{name: "labeled_same_line", extract: func(text string) (Coordinates, bool) {
		return pointFromMatch(labeledSameLineRe.FindStringSubmatch(text))
	}},
	{name: "lat_lon_slash", extract: func(text string) (Coordinates, bool) {
		return pointFromMatch(latLonSlashRe.FindStringSubmatch(text))
	}},
	{name: "labeled_lines", extract: func(text string) (Coordinates, bool) {
		lat := latitudeLineRe.FindStringSubmatch(text)
		lon := longitudeLineRe.FindStringSubmatch(text)
		if lat == nil || lon == nil {
			return Coordinates{}, false
		}
		return pointFromMatch([]string{"", lat[1], lat[2], lon[1], lon[2]})
	}},
	{name: "bare_pair", extract: func(text string) (Coordinates, bool) {
		return pointFromMatch(barePairRe.FindStringSubmatch(text))
	}},
}

// ExtractCoordinates returns the first point found by the ordered strategies,
// or nil when none of them matches.
func ExtractCoordinates(text string) *Coordinates {
	for _, s := range coordStrategies {
		if c, ok := s.extract(text); ok {
			return &c
		}
	}
	return nil
}

// pointFromMatch converts [_, lat, latHemi, lon, lonHemi] into a point.
// Hemisphere letters override sign; an unsigned longitude without a
// hemisphere is taken as western.
func pointFromMatch(m []string) (Coordinates, bool) {
	if len(m) < 5 {
		return Coordinates{}, false
	}
	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Coordinates{}, false
	}
	lon, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return Coordinates{}, false
	}
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return Coordinates{}, false
	}

	switch strings.ToUpper(m[2]) {
	case "S":
		lat = -math.Abs(lat)
	case "N":
		lat = math.Abs(lat)
	}
	switch strings.ToUpper(m[4]) {
	case "W":
		lon = -math.Abs(lon)
	case "E":
		lon = math.Abs(lon)
	default:
		if lon > 0 {
			lon = -lon
		}
	}
	return Coordinates{Lat: lat, Lon: lon}, true
}

// FormatLatitude renders lat as it appears in tabular LSR rows, e.g. "40.78N".
func FormatLatitude(lat float64) string {
	hemi := "N"
	if lat < 0 {
		hemi = "S"
	}
	return strconv.FormatFloat(math.Abs(lat), 'f', 2, 64) + hemi
}
