package domain

import (
	"fmt"
	"log/slog"

	"github.com/couchcryptid/storm-bulletin-etl/internal/filter"
)

// Outcome is the result of processing one bulletin. Record is nil when the
// bulletin was rejected.
type Outcome struct {
	Category Category
	Record   Record
}

// Processor runs a bulletin through categorization and normalization. It
// holds no per-message state and is safe for concurrent use.
type Processor struct {
	categorizer *Categorizer
	alerts      *AlertNormalizer
	reports     *StormReportNormalizer
}

// NewProcessor wires the categorizer and normalizers around lists.
func NewProcessor(lists *filter.Lists, sourceTag string, logger *slog.Logger) *Processor {
	if lists == nil {
		lists = filter.Default()
	}
	return &Processor{
		categorizer: NewCategorizer(lists, logger),
		alerts:      NewAlertNormalizer(lists, sourceTag),
		reports:     NewStormReportNormalizer(lists, sourceTag),
	}
}

// Process normalizes msg. Any bulletin that does not yield a record comes
// back with a *Rejection error.
func (p *Processor) Process(msg RawMessage) (out Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			out.Record = nil
			err = reject(ReasonParseError, fmt.Sprint(r))
		}
	}()

	decision := p.categorizer.Categorize(msg)
	out.Category = decision.Category

	switch decision.Category {
	case CategoryAlert:
		rec, err := p.alerts.Normalize(msg, decision.Alert)
		if err != nil {
			return out, err
		}
		out.Record = rec
	case CategoryStormReport:
		rec, err := p.reports.Normalize(msg)
		if err != nil {
			return out, err
		}
		out.Record = rec
	case CategoryAlertFilteredGeo:
		return out, reject(ReasonFilteredGeography, "")
	case CategoryAlertFilteredEvent:
		return out, reject(ReasonFilteredEvent, "")
	default:
		return out, reject(ReasonUnknownCategory, "")
	}
	return out, nil
}
