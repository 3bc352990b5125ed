//go:build integration

package integration_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

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

const tornadoWarningText = `WFUS53 KDMX 212254
TORDMX
IAC169-212330-
/O.NEW.KDMX.TO.W.0012.240521T2254Z-240521T2330Z/

Tornado Warning
National Weather Service Des Moines IA
554 PM CDT Tue May 21 2024

LAT...LON 4200 9370 4210 9350 4190 9340
`

const tornadoEnvelope = `<message xmlns="jabber:client" type="groupchat">
  <x xmlns="nwws-oi" cccc="KDMX" awipsid="TORDMX">
    <alert xmlns="urn:oasis:names:tc:emergency:cap:1.1">
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

const testMessage = `NTXX98 KWNO 211200
ADMNFD
<?xml version="1.0" encoding="UTF-8"?>
<alert xmlns="urn:oasis:names:tc:emergency:cap:1.2">
  <msgType>Alert</msgType>
  <info><event>Test Message</event></info>
</alert>`

func envelopeJSON(t *testing.T, id, rawText, envelope string) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]string{"id": id, "raw_text": rawText, "envelope": envelope})
	require.NoError(t, err)
	return b
}
