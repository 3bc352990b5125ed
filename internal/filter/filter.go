// Package filter holds the allow and deny lists applied to normalized
// bulletins. A Lists value is read-only once loaded.
package filter

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultEventDeny is used when no deny list is configured.
var DefaultEventDeny = []string{
	"test message",
	"administrative message",
	"child abduction emergency",
	"hydrologic outlook",
	"special weather statement",
}

// File is the on-disk YAML layout.
type File struct {
	Events struct {
		Allow []string `yaml:"allow"`
		Deny  []string `yaml:"deny"`
	} `yaml:"events"`
	UGC struct {
		Allow []string `yaml:"allow"`
	} `yaml:"ugc"`
	Offices struct {
		Allow []string `yaml:"allow"`
	} `yaml:"offices"`
}

// Lists are the configured string sets. Event names are compared lower-cased;
// UGC codes and office names are compared verbatim.
type Lists struct {
	eventAllow  set
	eventDeny   set
	ugcAllow    set
	officeAllow set
}

type set map[string]struct{}

func newSet(values []string, normalize func(string) string) set {
	s := make(set, len(values))
	for _, v := range values {
		v = normalize(strings.TrimSpace(v))
		if v != "" {
			s[v] = struct{}{}
		}
	}
	return s
}

func (s set) has(v string) bool {
	_, ok := s[v]
	return ok
}

func verbatim(s string) string { return s }

// New builds Lists from explicit values.
func New(eventAllow, eventDeny, ugcAllow, officeAllow []string) *Lists {
	return &Lists{
		eventAllow:  newSet(eventAllow, strings.ToLower),
		eventDeny:   newSet(eventDeny, strings.ToLower),
		ugcAllow:    newSet(ugcAllow, verbatim),
		officeAllow: newSet(officeAllow, verbatim),
	}
}

// Default returns the built-in lists: the default event deny list and
// nothing else.
func Default() *Lists {
	return New(nil, DefaultEventDeny, nil, nil)
}

// Load reads the YAML file at path (built-in defaults when path is empty) and
// applies the EVENT_ALLOW, EVENT_DENY, UGC_ALLOW and OFFICE_ALLOW
// comma-separated environment overrides.
func Load(path string) (*Lists, error) {
	var f File
	f.Events.Deny = DefaultEventDeny

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read filters file: %w", err)
		}
		f = File{}
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse filters file %s: %w", path, err)
		}
	}

	overrideList(&f.Events.Allow, "EVENT_ALLOW")
	overrideList(&f.Events.Deny, "EVENT_DENY")
	overrideList(&f.UGC.Allow, "UGC_ALLOW")
	overrideList(&f.Offices.Allow, "OFFICE_ALLOW")

	return New(f.Events.Allow, f.Events.Deny, f.UGC.Allow, f.Offices.Allow), nil
}

func overrideList(dst *[]string, key string) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*dst = out
}

// EventDenied reports whether event is on the deny list.
func (l *Lists) EventDenied(event string) bool {
	return l.eventDeny.has(strings.ToLower(strings.TrimSpace(event)))
}

// EventAllowed reports whether event passes the allow list. An empty allow
// list admits every event.
func (l *Lists) EventAllowed(event string) bool {
	if len(l.eventAllow) == 0 {
		return true
	}
	return l.eventAllow.has(strings.ToLower(strings.TrimSpace(event)))
}

// UGCAllowed reports whether any of zones is on the UGC allow list. An empty
// allow list admits everything.
func (l *Lists) UGCAllowed(zones []string) bool {
	if len(l.ugcAllow) == 0 {
		return true
	}
	for _, z := range zones {
		if l.ugcAllow.has(z) {
			return true
		}
	}
	return false
}

// OfficeAllowed reports whether office is on the office allow list. An empty
// allow list admits every office.
func (l *Lists) OfficeAllowed(office string) bool {
	if len(l.officeAllow) == 0 {
		return true
	}
	return l.officeAllow.has(office)
}

// Summary returns list sizes for startup logging.
func (l *Lists) Summary() map[string]int {
	return map[string]int{
		"event_allow":  len(l.eventAllow),
		"event_deny":   len(l.eventDeny),
		"ugc_allow":    len(l.ugcAllow),
		"office_allow": len(l.officeAllow),
	}
}
