package cap

import "strings"

// Parameter is a CAP <parameter> name/value pair.
type Parameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Detail is the normalized content of a CAP alert. Timestamps are kept as
// the strings found in the document.
type Detail struct {
	Sender      string
	Sent        string
	Status      string
	MsgType     string
	Scope       string
	Event       string
	Urgency     string
	Severity    string
	Certainty   string
	Effective   string
	Onset       string
	Expires     string
	Headline    string
	Description string
	Instruction string
	AreaDesc    string
	UGC         []string
	Polygons    []string
	Parameters  []Parameter
}

// ExtractDetail normalizes src into a Detail. Scalar info fields take the
// first non-empty value across info blocks. Missing blocks leave fields unset.
func ExtractDetail(src Source) Detail {
	var d Detail
	if src == nil {
		return d
	}

	d.Sender = childText(src, "sender")
	d.Sent = childText(src, "sent")
	d.Status = childText(src, "status")
	d.MsgType = childText(src, "msgType")
	d.Scope = childText(src, "scope")

	ugc := newCodeSet()
	for _, info := range src.children("info") {
		setFirst(&d.Event, childText(info, "event"))
		setFirst(&d.Urgency, childText(info, "urgency"))
		setFirst(&d.Severity, childText(info, "severity"))
		setFirst(&d.Certainty, childText(info, "certainty"))
		setFirst(&d.Effective, childText(info, "effective"))
		setFirst(&d.Onset, childText(info, "onset"))
		setFirst(&d.Expires, childText(info, "expires"))
		setFirst(&d.Headline, childText(info, "headline"))
		setFirst(&d.Description, childText(info, "description"))
		setFirst(&d.Instruction, childText(info, "instruction"))

		for _, area := range info.children("area") {
			setFirst(&d.AreaDesc, childText(area, "areaDesc"))
			for _, gc := range area.children("geocode") {
				name := childText(gc, "valueName")
				if strings.EqualFold(name, "UGC") || strings.EqualFold(name, "FIPS6") {
					ugc.addFields(childText(gc, "value"))
				}
			}
			for _, poly := range area.children("polygon") {
				if ring := trim(poly.text()); ring != "" {
					d.Polygons = append(d.Polygons, ring)
				}
			}
		}

		for _, p := range info.children("parameter") {
			param := Parameter{Name: childText(p, "valueName"), Value: childText(p, "value")}
			d.Parameters = append(d.Parameters, param)
			if strings.EqualFold(param.Name, "UGC") {
				ugc.addFields(param.Value)
			}
		}
	}
	d.UGC = ugc.codes
	return d
}

// UGCGeocodes collects the values of area geocodes whose valueName is exactly
// "UGC". It reads only as far as needed for geographic pre-filtering.
func UGCGeocodes(src Source) []string {
	if src == nil {
		return nil
	}
	var out []string
	for _, info := range src.children("info") {
		for _, area := range info.children("area") {
			for _, gc := range area.children("geocode") {
				if childText(gc, "valueName") == "UGC" {
					out = append(out, strings.Fields(childText(gc, "value"))...)
				}
			}
		}
	}
	return out
}

// codeSet keeps codes in insertion order without duplicates.
type codeSet struct {
	codes []string
	seen  map[string]struct{}
}

func newCodeSet() *codeSet {
	return &codeSet{seen: map[string]struct{}{}}
}

func (s *codeSet) addFields(value string) {
	for _, code := range strings.Fields(value) {
		if _, ok := s.seen[code]; ok {
			continue
		}
		s.seen[code] = struct{}{}
		s.codes = append(s.codes, code)
	}
}

func setFirst(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

// EventName returns the first non-empty info event.
func EventName(src Source) string {
	if src == nil {
		return ""
	}
	for _, info := range src.children("info") {
		if ev := childText(info, "event"); ev != "" {
			return ev
		}
	}
	return ""
}
