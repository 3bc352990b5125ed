package nws

import "regexp"

// Actions maps VTEC action codes to their display names.
var Actions = map[string]string{
	"NEW": "New",
	"CON": "Continued",
	"EXT": "Extended",
	"EXA": "Extended Area",
	"EXB": "Extended Both",
	"UPG": "Upgraded",
	"CAN": "Cancelled",
	"EXP": "Expired",
	"COR": "Correction",
	"ROU": "Routine",
}

// Phenomena maps VTEC phenomena codes to event names. The convective and flash
// flood codes carry their warning product names because that is how the feed
// labels them downstream.
var Phenomena = map[string]string{
	"AF": "Ashfall",
	"AS": "Air Stagnation",
	"BH": "Beach Hazard",
	"BW": "Brisk Wind",
	"BZ": "Blizzard",
	"CF": "Coastal Flood",
	"DF": "Debris Flow",
	"DS": "Dust Storm",
	"DU": "Blowing Dust",
	"EC": "Extreme Cold",
	"EH": "Excessive Heat",
	"EW": "Extreme Wind",
	"FA": "Areal Flood",
	"FF": "Flash Flood Warning",
	"FG": "Dense Fog",
	"FL": "Flood",
	"FR": "Frost",
	"FW": "Fire Weather",
	"FZ": "Freeze",
	"GL": "Gale",
	"HF": "Hurricane Force Wind",
	"HT": "Heat",
	"HU": "Hurricane",
	"HW": "High Wind",
	"HY": "Hydrologic",
	"HZ": "Hard Freeze",
	"IS": "Ice Storm",
	"LE": "Lake Effect Snow",
	"LO": "Low Water",
	"LS": "Lakeshore Flood",
	"LW": "Lake Wind",
	"MA": "Special Marine Warning",
	"MF": "Dense Fog",
	"MH": "Ashfall",
	"MS": "Dense Smoke",
	"RB": "Small Craft for Rough Bar",
	"RP": "Rip Current Risk",
	"SC": "Small Craft",
	"SE": "Hazardous Seas",
	"SI": "Small Craft for Winds",
	"SM": "Dense Smoke",
	"SQ": "Snow Squall",
	"SR": "Storm",
	"SS": "Storm Surge",
	"SU": "High Surf",
	"SV": "Severe Thunderstorm Warning",
	"SW": "Small Craft for Hazardous Seas",
	"TO": "Tornado Warning",
	"TR": "Tropical Storm",
	"TS": "Tsunami",
	"TY": "Typhoon",
	"UP": "Heavy Freezing Spray",
	"WC": "Wind Chill",
	"WI": "Wind",
	"WS": "Winter Storm",
	"WW": "Winter Weather",
	"ZF": "Freezing Fog",
	"ZR": "Freezing Rain",
}

// Significance maps VTEC significance codes to their display names.
var Significance = map[string]string{
	"W": "Warning",
	"A": "Watch",
	"Y": "Advisory",
	"S": "Statement",
	"F": "Forecast",
	"O": "Outlook",
	"N": "Synopsis",
}

// Fixed boundary patterns shared by the decoders.
var (
	// vtecRe captures the inner body of a slash-delimited P-VTEC string, e.g.
	// "/O.NEW.KDMX.SV.W.0030.240521T2254Z-240521T2330Z/".
	vtecRe = regexp.MustCompile(`/([A-Z]\.[A-Z]{3}\.[A-Z]{4}\.[A-Z]{2}\.[A-Z]\.\d{4}\.[0-9TZ]+-[0-9TZ]+)/`)

	// wmoHeaderRe matches a WMO abbreviated heading, e.g. "WUUS53 KDMX 212254".
	wmoHeaderRe = regexp.MustCompile(`[A-Z]{4}\d{2}\s[A-Z]{4}\s\d{6}`)

	// ugcLineRe matches the start of a UGC header line.
	ugcLineRe = regexp.MustCompile(`^[A-Z]{2}[CZ]\d{3}(?:[->]|$)`)

	// ugcExpiryRe matches the trailing purge time, "-DDHHMM-" or "-YYMMDDHHMM-".
	ugcExpiryRe = regexp.MustCompile(`-(?:\d{6}|\d{10})-?$`)

	// ugcContinuationRe matches a wrapped UGC header continuation line.
	ugcContinuationRe = regexp.MustCompile(`^(?:[A-Z]{2}[CZ])?\d{3}[0-9A-Z>-]*$`)

	ugcPrefixedRe = regexp.MustCompile(`^([A-Z]{2}[CZ])(\d{3})(?:>(\d{3}))?$`)
	ugcBareRe     = regexp.MustCompile(`^(\d{3})(?:>(\d{3}))?$`)
)

// LookupOr returns table[code], or code itself when the table has no entry.
func LookupOr(table map[string]string, code string) string {
	if v, ok := table[code]; ok {
		return v
	}
	return code
}
