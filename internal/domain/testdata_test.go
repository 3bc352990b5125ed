package domain

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/couchcryptid/storm-bulletin-etl/internal/cap"
	"github.com/stretchr/testify/require"
)

const capAlertXML = `<?xml version="1.0" encoding="UTF-8"?>
<alert xmlns="urn:oasis:names:tc:emergency:cap:1.2">
  <sender>w-nws.webmaster@noaa.gov</sender>
  <sent>2024-05-21T17:54:00-05:00</sent>
  <status>Actual</status>
  <msgType>{{MSGTYPE}}</msgType>
  <scope>Public</scope>
  <info>
    <event>{{EVENT}}</event>
    <urgency>Immediate</urgency>
    <severity>Severe</severity>
    <certainty>Observed</certainty>
    <effective>2024-05-21T17:54:00-05:00</effective>
    <expires>2024-05-21T18:30:00-05:00</expires>
    <headline>Severe Thunderstorm Warning issued May 21 at 5:54PM CDT until May 21 at 6:30PM CDT by NWS Des Moines IA</headline>
    <description>HAZARD...Quarter size hail and wind gusts up to 60 mph.

IMPACT...Hail damage to vehicles is expected.</description>
    <instruction>For your protection move to an interior room on the lowest floor of a building.</instruction>
    <area>
      <areaDesc>Polk, IA; Story, IA</areaDesc>
      <polygon>{{POLYGON}}</polygon>
      <geocode>
        <valueName>UGC</valueName>
        <value>IAC153 IAC169 IAC187</value>
      </geocode>
    </area>
  </info>
</alert>`

const validCAPPolygon = "41.60,-93.80 41.70,-93.60 41.50,-93.50 41.60,-93.80"

// capAlertText is a warning bulletin carrying its CAP document inline.
func capAlertText(msgType, event, polygon string) string {
	xml := strings.NewReplacer(
		"{{MSGTYPE}}", msgType,
		"{{EVENT}}", event,
		"{{POLYGON}}", polygon,
	).Replace(capAlertXML)

	return `WUUS53 KDMX 212254
SVRDMX
IAC153-169-212330-
/O.NEW.KDMX.SV.W.0030.240521T2254Z-240521T2330Z/

Severe Thunderstorm Warning
National Weather Service Des Moines IA
554 PM CDT Tue May 21 2024

LAT...LON 4160 9390 4180 9360 4150 9340
TIME...MOT...LOC 2254Z 250DEG 35KT 4160 9370

` + xml
}

const envelopeXML = `<message xmlns="jabber:client" from="nwws@conference.nwws-oi.weather.gov/nwws-oi" type="groupchat">
  <body>KDMX issues SVR</body>
  <x xmlns="nwws-oi" cccc="KDMX" ttaaii="WUUS53" awipsid="SVRDMX" id="1234.5678">
    <alert xmlns="urn:oasis:names:tc:emergency:cap:1.1">
      <sender>w-nws.webmaster@noaa.gov</sender>
      <msgType>Alert</msgType>
      <info>
        <event>Tornado Warning</event>
        <area>
          <areaDesc>Story, IA</areaDesc>
          <geocode><valueName>UGC</valueName><value>IAC169</value></geocode>
        </area>
      </info>
    </alert>
  </x>
</message>`

const tabularLSR = `NWUS51 KOKX 211815
LSROKX

PRELIMINARY LOCAL STORM REPORT
NATIONAL WEATHER SERVICE NEW YORK NY
215 PM EDT TUE MAY 21 2024

..TIME...   ...EVENT...      ...CITY LOCATION...     ...LAT.LON...
..DATE...   ....MAG....      ..COUNTY LOCATION..ST.. ...SOURCE....
            ..REMARKS..

0155 PM     HAIL             1 N CENTRAL PARK      40.78N 73.97W
05/21/2024  M1.00 INCH       NEW YORK           NY   TRAINED SPOTTER

            QUARTER SIZE HAIL REPORTED AT THE
            BOATHOUSE.

&&
$$
`

const labeledLSR = `PRELIMINARY LOCAL STORM REPORT
NATIONAL WEATHER SERVICE DES MOINES IA
IAC169-212330-
EVENT: TORNADO
LOCATION: 3 W AMES
TIME: 0412 PM
MAGNITUDE: EF1
SOURCE: EMERGENCY MNGR
REMARKS: BARN DESTROYED.
LATITUDE: 42.02N LONGITUDE: 93.68W
`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseEnvelope(t *testing.T) *cap.Element {
	t.Helper()
	env, err := cap.ParseElement([]byte(envelopeXML))
	require.NoError(t, err)
	return env
}

func capObject(t *testing.T, xml string) cap.Source {
	t.Helper()
	doc, err := cap.ParseObject([]byte(xml))
	require.NoError(t, err)
	return doc.Body
}
