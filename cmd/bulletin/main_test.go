package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const labeledLSR = `PRELIMINARY LOCAL STORM REPORT
NATIONAL WEATHER SERVICE DES MOINES IA
IAC169-212330-
EVENT: TORNADO
LOCATION: 3 W AMES
TIME: 0412 PM
SOURCE: EMERGENCY MNGR
LATITUDE: 42.02N LONGITUDE: 93.68W
`

const warningText = `WFUS53 KDMX 212254
TORDMX
IAC169-212330-
/O.NEW.KDMX.TO.W.0012.240521T2254Z-240521T2330Z/

Tornado Warning
National Weather Service Des Moines IA
`

const envelope = `<message xmlns="jabber:client">
  <x xmlns="nwws-oi">
    <alert xmlns="urn:oasis:names:tc:emergency:cap:1.1">
      <msgType>Alert</msgType>
      <info><event>Tornado Warning</event></info>
    </alert>
  </x>
</message>`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParse_JSON(t *testing.T) {
	dir := t.TempDir()
	lsr := writeFile(t, dir, "lsr.txt", labeledLSR)
	zfp := writeFile(t, dir, "zfp.txt", "ZONE FORECAST PRODUCT\n")

	out, err := execute(t, "parse", lsr, zfp)
	require.NoError(t, err)

	var results []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)

	assert.Equal(t, "lsr.txt", results[0]["id"])
	assert.Equal(t, "storm_report", results[0]["category"])
	record, ok := results[0]["record"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "TORNADO", record["summary"])

	assert.Equal(t, "unknown", results[1]["category"])
	assert.Equal(t, "unknown_category", results[1]["rejected"])
	assert.NotContains(t, results[1], "record")
}

func TestParse_Table(t *testing.T) {
	dir := t.TempDir()
	lsr := writeFile(t, dir, "lsr.txt", labeledLSR)

	out, err := execute(t, "parse", "--table", lsr)
	require.NoError(t, err)

	assert.Contains(t, out, "CATEGORY")
	assert.Contains(t, out, "storm_report")
	assert.Contains(t, out, "TORNADO")
}

func TestParse_HTMLFile(t *testing.T) {
	dir := t.TempDir()
	page := writeFile(t, dir, "lsr.html", "<html><body><pre>\n"+labeledLSR+"</pre></body></html>")

	out, err := execute(t, "parse", page)
	require.NoError(t, err)
	assert.Contains(t, out, `"category": "storm_report"`)
}

func TestCategorize_WithEnvelope(t *testing.T) {
	dir := t.TempDir()
	text := writeFile(t, dir, "tor.txt", warningText)
	env := writeFile(t, dir, "message.xml", envelope)

	out, err := execute(t, "categorize", "--envelope", env, text)
	require.NoError(t, err)

	var results []categorizeResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "alert", string(results[0].Category))
	assert.Equal(t, "Tornado Warning", results[0].Event)
}

func TestCategorize_FiltersFile(t *testing.T) {
	dir := t.TempDir()
	text := writeFile(t, dir, "tor.txt", warningText)
	env := writeFile(t, dir, "message.xml", envelope)
	filters := writeFile(t, dir, "filters.yaml", "events:\n  deny: [tornado warning]\n")

	out, err := execute(t, "categorize", "--filters", filters, "--envelope", env, text)
	require.NoError(t, err)
	assert.Contains(t, out, `"category": "alert_filtered_event"`)
}

func TestEnvelopeNeedsSingleFile(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", warningText)
	b := writeFile(t, dir, "b.txt", warningText)
	env := writeFile(t, dir, "message.xml", envelope)

	_, err := execute(t, "parse", "--envelope", env, a, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one FILE")
}

func TestParse_MissingFile(t *testing.T) {
	_, err := execute(t, "parse", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read bulletin")
}
