package domain

import (
	"log/slog"
	"strings"

	"github.com/couchcryptid/storm-bulletin-etl/internal/cap"
	"github.com/couchcryptid/storm-bulletin-etl/internal/filter"
)

// Category classifies a bulletin before normalization.
type Category string

const (
	CategoryAlert              Category = "alert"
	CategoryStormReport        Category = "storm_report"
	CategoryUnknown            Category = "unknown"
	CategoryAlertFilteredGeo   Category = "alert_filtered_geo"
	CategoryAlertFilteredEvent Category = "alert_filtered_event"
)

// Decision is the Categorizer's verdict. Alert is set only for CategoryAlert.
type Decision struct {
	Category Category
	Alert    cap.Source
}

const (
	xmlDeclaration = "<?xml"
	lsrPhrase      = "PRELIMINARY LOCAL STORM REPORT"
)

// Categorizer locates embedded CAP alerts and classifies bulletins.
type Categorizer struct {
	lists  *filter.Lists
	logger *slog.Logger
}

// NewCategorizer creates a Categorizer applying lists to its pre-filters.
func NewCategorizer(lists *filter.Lists, logger *slog.Logger) *Categorizer {
	if lists == nil {
		lists = filter.Default()
	}
	return &Categorizer{lists: lists, logger: logger}
}

// Categorize classifies msg. A CAP alert inside the envelope is preferred;
// failing that, an XML document embedded in the raw text is parsed. Parse
// failures fall through to the text checks.
func (c *Categorizer) Categorize(msg RawMessage) Decision {
	if alert := cap.FindAlert(msg.Envelope); alert != nil {
		return c.acceptAlert(alert)
	}

	if doc := c.parseEmbedded(msg); doc != nil {
		if !c.lists.UGCAllowed(cap.UGCGeocodes(doc.Body)) {
			return Decision{Category: CategoryAlertFilteredGeo}
		}
		return c.acceptAlert(doc.Body)
	}

	if strings.Contains(strings.ToUpper(msg.RawText), lsrPhrase) {
		return Decision{Category: CategoryStormReport}
	}
	return Decision{Category: CategoryUnknown}
}

func (c *Categorizer) acceptAlert(src cap.Source) Decision {
	if c.lists.EventDenied(cap.EventName(src)) {
		return Decision{Category: CategoryAlertFilteredEvent}
	}
	return Decision{Category: CategoryAlert, Alert: src}
}

// parseEmbedded returns the CAP 1.2 document embedded in the raw text, if any.
func (c *Categorizer) parseEmbedded(msg RawMessage) *cap.Document {
	idx := strings.Index(msg.RawText, xmlDeclaration)
	if idx < 0 {
		return nil
	}
	doc, err := cap.ParseObject([]byte(msg.RawText[idx:]))
	if err != nil {
		c.logger.Debug("embedded xml not parsed", "id", msg.ID, "error", err)
		return nil
	}
	if !doc.IsAlert() {
		return nil
	}
	return doc
}
