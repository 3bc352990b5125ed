package nws

import (
	"regexp"
	"strconv"
	"strings"
)

// TableFields are the LSR fields the tabular parser can recover.
type TableFields struct {
	Summary       string
	EventLocation string
	Magnitude     string
	DataSource    string
	Remarks       string
}

// lsrEventTypes are known tabular event-type prefixes, longest first so that
// "FLASH FLOOD" wins over "FLOOD".
var lsrEventTypes = []string{
	"NON-TSTM WND DMG",
	"NON-TSTM WND GST",
	"MARINE TSTM WIND",
	"HIGH SUST WINDS",
	"HIGH ASTR TIDES",
	"LOW ASTR TIDES",
	"SNOWMELT FLOOD",
	"COASTAL FLOOD",
	"FREEZING RAIN",
	"FREEZING DRIZZLE",
	"EXTREME COLD",
	"EXTREME HEAT",
	"TSTM WND DMG",
	"TSTM WND GST",
	"FUNNEL CLOUD",
	"RIP CURRENTS",
	"STORM SURGE",
	"FLASH FLOOD",
	"WATER SPOUT",
	"WATERSPOUT",
	"DEBRIS FLOW",
	"DENSE FOG",
	"DUST STORM",
	"HEAVY RAIN",
	"HEAVY SNOW",
	"HIGH SURF",
	"ICE STORM",
	"LIGHTNING",
	"AVALANCHE",
	"BLIZZARD",
	"WILDFIRE",
	"TORNADO",
	"SNOW",
	"SLEET",
	"FLOOD",
	"HAIL",
	"RAIN",
}

var (
	coordPairRe      = regexp.MustCompile(`(\d{1,2}\.\d{2})([NS])\s+(\d{1,3}\.\d{2})([EW])\s*$`)
	anyCoordPairRe   = regexp.MustCompile(`\d{1,2}\.\d{2}[NS]\s+\d{1,3}\.\d{2}[EW]`)
	multiSpaceRe     = regexp.MustCompile(`\s{2,}`)
	distanceDirRe    = regexp.MustCompile(`^\d+(?:\.\d+)?\s+(?:N|NNE|NE|ENE|E|ESE|SE|SSE|S|SSW|SW|WSW|W|WNW|NW|NNW)\b`)
	lsrMagnitudeRe   = regexp.MustCompile(`\b([ME])(\d+(?:\.\d+)?)\s*(MPH|INCH|KTS)\b`)
	digitsOnlyRe     = regexp.MustCompile(`^\d{3,}$`)
	dateLineRe       = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}\b`)
	tabularTimeRe    = regexp.MustCompile(`^\d{4}\s*(?:AM|PM|Z)\b`)
	twoLetterCodeRe  = regexp.MustCompile(`^[A-Z]{2}$`)
	containsLetterRe = regexp.MustCompile(`[A-Za-z]`)
)

// FillTable recovers LSR fields from the fixed two-column tabular layout,
// anchored on the already-known eventTime and coords. Only fields that are
// empty in known are filled; anything the layout does not yield stays empty.
func FillTable(text, eventTime string, coords *Coordinates, known TableFields) TableFields {
	out := known
	if strings.TrimSpace(eventTime) == "" {
		return out
	}

	lines := Lines(text)
	primary := findPrimaryLine(lines, eventTime, coords)
	if primary < 0 {
		return out
	}

	summary, location := splitEventFragment(eventFragment(lines[primary], eventTime))
	setIfEmpty(&out.Summary, summary)
	setIfEmpty(&out.EventLocation, location)

	detail := nextNonBlank(lines, primary+1)
	if detail < 0 {
		return out
	}
	magnitude, source := magnitudeAndSource(lines[detail])
	setIfEmpty(&out.Magnitude, magnitude)
	setIfEmpty(&out.DataSource, source)

	consumed := map[string]bool{
		strings.TrimSpace(lines[primary]): true,
		strings.TrimSpace(lines[detail]):  true,
	}
	setIfEmpty(&out.Remarks, collectRemarks(lines, detail+1, consumed))
	return out
}

// findPrimaryLine returns the index of the data row carrying the event time
// and, when known, the formatted latitude.
func findPrimaryLine(lines []string, eventTime string, coords *Coordinates) int {
	timeRe := timeTokenPattern(eventTime)
	if coords != nil {
		lat := FormatLatitude(coords.Lat)
		for i, line := range lines {
			if timeRe.MatchString(line) && strings.Contains(line, lat) {
				return i
			}
		}
		return -1
	}

	leading := regexp.MustCompile(`^\s*` + timeRe.String())
	for i, line := range lines {
		if leading.MatchString(line) && anyCoordPairRe.MatchString(line) {
			return i
		}
	}
	return -1
}

// eventFragment strips the leading time token and trailing coordinate pair.
func eventFragment(line, eventTime string) string {
	frag := strings.TrimSpace(line)
	if loc := timeTokenPattern(eventTime).FindStringIndex(frag); loc != nil && loc[0] == 0 {
		frag = frag[loc[1]:]
	}
	frag = coordPairRe.ReplaceAllString(strings.TrimSpace(frag), "")
	return strings.TrimSpace(frag)
}

// splitEventFragment separates the event type from the location, first by the
// known vocabulary and then by column gaps.
func splitEventFragment(frag string) (summary, location string) {
	if frag == "" {
		return "", ""
	}
	upper := strings.ToUpper(frag)
	for _, prefix := range lsrEventTypes {
		if !strings.HasPrefix(upper, prefix) {
			continue
		}
		rest := frag[len(prefix):]
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			continue
		}
		return strings.TrimSpace(frag[:len(prefix)]), strings.TrimSpace(rest)
	}

	segs := multiSpaceRe.Split(frag, -1)
	if len(segs) == 1 {
		return strings.TrimSpace(segs[0]), ""
	}
	first, last := strings.TrimSpace(segs[0]), strings.TrimSpace(segs[len(segs)-1])
	if distanceDirRe.MatchString(first) {
		return last, first
	}
	return first, last
}

// magnitudeAndSource reads the second row of an LSR entry.
func magnitudeAndSource(line string) (magnitude, source string) {
	magnitude = lsrMagnitudeRe.FindString(line)

	segs := multiSpaceRe.Split(strings.TrimSpace(line), -1)
	for i := len(segs) - 1; i >= 0; i-- {
		seg := strings.TrimSpace(segs[i])
		if isSourceSegment(seg) {
			return magnitude, seg
		}
	}
	return magnitude, ""
}

func isSourceSegment(seg string) bool {
	if seg == "" || !containsLetterRe.MatchString(seg) {
		return false
	}
	if _, err := strconv.ParseFloat(seg, 64); err == nil {
		return false
	}
	if twoLetterCodeRe.MatchString(seg) {
		return false
	}
	return !lsrMagnitudeRe.MatchString(seg)
}

// collectRemarks accumulates free-text lines from start until a terminator.
func collectRemarks(lines []string, start int, consumed map[string]bool) string {
	first := nextNonBlank(lines, start)
	if first < 0 {
		return ""
	}
	if !looksLikeRemark(strings.TrimSpace(lines[first]), consumed) {
		return ""
	}

	var (
		parts  []string
		blanks int
	)
	for _, raw := range lines[first:] {
		line := strings.TrimSpace(raw)
		if line == "" {
			blanks++
			if blanks >= 2 {
				break
			}
			continue
		}
		blanks = 0
		if isRemarkTerminator(line) {
			break
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " ")
}

func looksLikeRemark(line string, consumed map[string]bool) bool {
	if consumed[line] || isRemarkTerminator(line) {
		return false
	}
	if dateLineRe.MatchString(line) || anyCoordPairRe.MatchString(line) {
		return false
	}
	return containsLetterRe.MatchString(line)
}

func isRemarkTerminator(line string) bool {
	switch {
	case strings.HasPrefix(line, "&&"), strings.HasPrefix(line, "$$"):
		return true
	case digitsOnlyRe.MatchString(line):
		return true
	case wmoHeaderRe.MatchString(line):
		return true
	case tabularTimeRe.MatchString(line) && anyCoordPairRe.MatchString(line):
		return true
	}
	return false
}

func nextNonBlank(lines []string, from int) int {
	for i := from; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "" {
			return i
		}
	}
	return -1
}

func setIfEmpty(dst *string, v string) {
	if *dst == "" && v != "" {
		*dst = v
	}
}
