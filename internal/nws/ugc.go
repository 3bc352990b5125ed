package nws

import (
	"fmt"
	"strconv"
	"strings"
)

// UGC holds the zone codes expanded from a UGC header line.
type UGC struct {
	Zones []string `json:"zones"`
}

// DecodeUGC locates the UGC header in text and expands it into six-character
// zone codes (SSFNNN). It returns nil when no header is found or the header
// expands to nothing.
func DecodeUGC(text string) *UGC {
	header := findUGCHeader(text)
	if header == "" {
		return nil
	}

	header = ugcExpiryRe.ReplaceAllString(header, "")
	header = strings.TrimRightFunc(header, func(r rune) bool {
		return !isAlnum(r)
	})

	var (
		zones  []string
		prefix string
	)
	for _, seg := range strings.Split(header, "-") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		if m := ugcPrefixedRe.FindStringSubmatch(seg); m != nil {
			prefix = m[1]
			zones = appendZoneRange(zones, prefix, m[2], m[3])
			continue
		}
		if prefix == "" {
			continue
		}
		if m := ugcBareRe.FindStringSubmatch(seg); m != nil {
			zones = appendZoneRange(zones, prefix, m[1], m[2])
		}
	}

	if len(zones) == 0 {
		return nil
	}
	return &UGC{Zones: zones}
}

// findUGCHeader returns the first UGC header line, joined with any wrapped
// continuation lines. Lines starting with "/" are VTEC strings and are skipped.
func findUGCHeader(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "/") || !ugcLineRe.MatchString(line) {
			continue
		}

		header := line
		for j := i + 1; j < len(lines) && strings.HasSuffix(header, "-"); j++ {
			next := strings.TrimSpace(lines[j])
			if !ugcContinuationRe.MatchString(next) {
				break
			}
			header += next
		}
		return header
	}
	return ""
}

// appendZoneRange appends prefix+from, or the inclusive range from..to when to
// is set. A descending range yields only the first zone.
func appendZoneRange(zones []string, prefix, from, to string) []string {
	start, err := strconv.Atoi(from)
	if err != nil {
		return zones
	}
	end := start
	if to != "" {
		if n, err := strconv.Atoi(to); err == nil && n >= start {
			end = n
		}
	}
	for n := start; n <= end; n++ {
		zones = append(zones, fmt.Sprintf("%s%03d", prefix, n))
	}
	return zones
}

func isAlnum(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
