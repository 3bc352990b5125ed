package nws

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// officeLabels are tried in order by OfficeName.
var officeLabels = []string{
	"National Weather Service ",
	"NWS STORM PREDICTION CENTER ",
}

// lsrTimeRe matches a leading LSR event time token such as "0155 PM" or "2254Z".
var lsrTimeRe = regexp.MustCompile(`^\s*(\d{4})\s*(AM|PM|Z|UTC|GMT|EST|EDT|CST|CDT|MST|MDT|PST|PDT|AKST|AKDT|HST|HDT|AST|ADT|CHST|SST)\b`)

// issuanceLineRe matches a product issuance line, e.g. "1015 PM CDT TUE MAY 21 2024".
var issuanceLineRe = regexp.MustCompile(`(?i)^\s*\d{3,4}\s+(AM|PM)\s+[A-Z]{3,4}\s+[A-Z]{3}\s+[A-Z]{3}\s+\d{1,2}\s+\d{4}\s*$`)

// latLonMarker introduces a polygon block in warning text.
const latLonMarker = "LAT...LON"

// Lines splits text into lines, normalizing CRLF.
func Lines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// FindLabeledLine returns the remainder of the first line containing label
// (case-insensitive), with leading punctuation and whitespace removed. It
// returns "" when no line carries the label.
func FindLabeledLine(text, label string) string {
	if label == "" {
		return ""
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label))
	for _, line := range Lines(text) {
		loc := re.FindStringIndex(line)
		if loc == nil {
			continue
		}
		rest := line[loc[1]:]
		rest = strings.TrimLeftFunc(rest, func(r rune) bool {
			return r == ':' || r == '.' || r == '-' || r == ',' || r == ';' || r == ' ' || r == '\t'
		})
		return strings.TrimSpace(rest)
	}
	return ""
}

// FindFirstLabeled tries each label in turn and returns the first non-empty value.
func FindFirstLabeled(text string, labels ...string) string {
	for _, l := range labels {
		if v := FindLabeledLine(text, l); v != "" {
			return v
		}
	}
	return ""
}

// OfficeName extracts the issuing office name from the product header.
func OfficeName(text string) string {
	return FindFirstLabeled(text, officeLabels...)
}

// PolygonFromLatLon extracts the warning polygon following a "LAT...LON"
// marker. Coordinates are encoded as hundredths of a degree, longitudes as
// unsigned western magnitudes. It returns nil when there is no marker, the
// token count is odd, or fewer than three vertices are present.
func PolygonFromLatLon(text string) *Polygon {
	lines := Lines(text)
	start := -1
	for i, line := range lines {
		if strings.Contains(strings.ToUpper(line), latLonMarker) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	first := lines[start]
	first = first[strings.Index(strings.ToUpper(first), latLonMarker)+len(latLonMarker):]
	tokens, ok := numericTokens(first)
	if !ok {
		return nil
	}
	for _, line := range lines[start+1:] {
		if strings.TrimSpace(line) == "" {
			break
		}
		more, ok := numericTokens(line)
		if !ok {
			break
		}
		tokens = append(tokens, more...)
	}

	if len(tokens) == 0 || len(tokens)%2 != 0 {
		return nil
	}

	ring := make([]Point, 0, len(tokens)/2+1)
	for i := 0; i < len(tokens); i += 2 {
		lat := tokens[i] / 100
		lon := -math.Abs(tokens[i+1]) / 100
		ring = append(ring, Point{lon, lat})
	}
	return NewPolygon(ring)
}

// numericTokens parses every whitespace-separated field of line as a number.
// ok is false when any field is not numeric.
func numericTokens(line string) ([]float64, bool) {
	fields := strings.Fields(line)
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}

// LSRTimeToken returns the first tabular LSR event time, reconstructed as
// "HHMM SUFFIX". Product issuance lines are skipped.
func LSRTimeToken(text string) string {
	for _, line := range Lines(text) {
		if issuanceLineRe.MatchString(line) {
			continue
		}
		if m := lsrTimeRe.FindStringSubmatch(line); m != nil {
			return m[1] + " " + m[2]
		}
	}
	return ""
}

// timeTokenPattern builds a pattern matching token with flexible spacing
// between the HHMM digits and the suffix.
func timeTokenPattern(token string) *regexp.Regexp {
	hhmm, suffix, ok := strings.Cut(strings.TrimSpace(token), " ")
	if !ok {
		return regexp.MustCompile(regexp.QuoteMeta(strings.TrimSpace(token)))
	}
	return regexp.MustCompile(regexp.QuoteMeta(hhmm) + `\s*` + regexp.QuoteMeta(suffix) + `\b`)
}
