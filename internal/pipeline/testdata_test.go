package pipeline_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/storm-bulletin-etl/internal/domain"
	"github.com/couchcryptid/storm-bulletin-etl/internal/filter"
)

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

const zoneForecast = `FPUS53 KDMX 211000
ZFPDMX
ZONE FORECAST PRODUCT
`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newProcessor() *domain.Processor {
	return domain.NewProcessor(filter.Default(), "nwws-oi", discardLogger())
}

// envelopeJSON builds the JSON form a feed bridge publishes.
func envelopeJSON(t *testing.T, id, rawText, envelope string) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]string{
		"id":       id,
		"raw_text": rawText,
		"envelope": envelope,
	})
	require.NoError(t, err)
	return b
}
