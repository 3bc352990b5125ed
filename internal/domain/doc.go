// Package domain turns National Weather Service (NWS) bulletins into
// normalized records.
//
// # Data Source
//
// Bulletins arrive from the NOAA Weather Wire (NWWS-OI) feed. Each message is
// the product text plus, when the feed collaborator forwards it, the XMPP
// envelope the text arrived in. Alerts are Common Alerting Protocol (CAP)
// documents, embedded either in the envelope or in the text itself. Storm
// observations are Local Storm Reports (LSRs), plain text with labeled lines
// or a fixed-column table.
//
// # Flow
//
//	RawMessage → Categorizer ─┬─ alert        → AlertNormalizer       → AlertRecord
//	                          ├─ storm_report → StormReportNormalizer → StormReportRecord
//	                          └─ anything else → *Rejection
//
// Categorization prefers a CAP alert found in the envelope (any CAP version).
// Otherwise a document starting at "<?xml" in the text is parsed and accepted
// only as CAP 1.2. Text containing "PRELIMINARY LOCAL STORM REPORT" is a storm
// report.
//
// # Filtering
//
// Filters are applied twice for alerts parsed from text: a UGC and event
// pre-filter in the Categorizer, then the full event and UGC checks in the
// AlertNormalizer. Alerts found in the envelope skip the UGC pre-filter.
// Cancel and Update messages are always suppressed. Storm reports of plain
// "Rain" and reports from offices outside the office allow list are dropped.
//
// # Error Model
//
// Extraction never fails: a missing or malformed field is left empty and a
// short note is added to the record's error field. A bulletin that produces
// no record returns a [Rejection] whose [Reason] distinguishes policy
// exclusion from unparseable input.
//
// # Idempotence
//
// Records depend only on the message. Processing time is stamped on the
// outbound Kafka headers, never on the record, so replays produce identical
// payloads.
package domain
