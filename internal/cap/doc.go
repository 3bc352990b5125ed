// Package cap locates and normalizes Common Alerting Protocol (CAP) alerts.
//
// An alert arrives in one of two shapes. When the feed envelope is available
// it is parsed into an [Element] tree and searched for an embedded <alert>.
// Otherwise an XML snippet is sliced from the raw bulletin text and decoded
// into the generic nested [Object] form. Both satisfy [Source], and
// [ExtractDetail] yields the same [Detail] for either.
package cap
