// Package nws decodes the fixed-format codes and text conventions found in
// National Weather Service (NWS) text products.
//
// # P-VTEC
//
// Valid Time Event Code strings are slash-delimited and dot-separated:
//
//	/O.NEW.KDMX.SV.W.0030.240521T2254Z-240521T2330Z/
//	 │ │   │    │  │ │    └ begin-end, YYMMDDThhmmZ
//	 │ │   │    │  │ └ event tracking number
//	 │ │   │    │  └ significance (W warning, A watch, Y advisory, S statement)
//	 │ │   │    └ phenomena (SV severe thunderstorm, TO tornado, FF flash flood)
//	 │ │   └ issuing office (ICAO id)
//	 │ └ action (NEW, CON, EXT, CAN, EXP, UPG, ...)
//	 └ product class
//
// "000000T0000Z" marks an open-ended time and is kept verbatim.
//
// # UGC
//
// Universal Geographic Code headers list zones as SSFNNN (state, C for county
// or Z for zone, three-digit number), separated by dashes and terminated by a
// purge time:
//
//	IAC001-003-220000-        → IAC001, IAC003
//	ARZ001>003-007-           → ARZ001, ARZ002, ARZ003, ARZ007
//
// A segment carrying its own SSF prefix resets the context for the bare
// numbers that follow. Long headers wrap onto continuation lines.
//
// # LAT...LON
//
// Warning polygons are written as hundredths of a degree with unsigned
// longitudes:
//
//	LAT...LON 4160 9380 4170 9360 4150 9350
//
// Longitudes are taken as western. The conversion is wrong for data east of
// the prime meridian, which the feed does not carry.
//
// # Local Storm Reports
//
// Tabular LSRs use a fixed two-row layout per report:
//
//	0155 PM     HAIL             1 N CENTRAL PARK      40.78N 73.97W
//	05/21/2024  M1.00 INCH       NEW YORK           NY   TRAINED SPOTTER
//
//	            QUARTER SIZE HAIL REPORTED.
//
// [FillTable] anchors on the row that carries the already-known event time and
// latitude, then reads the magnitude and source from the following row and
// the remarks after it.
package nws
