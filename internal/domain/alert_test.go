package domain

import (
	"testing"

	"github.com/couchcryptid/storm-bulletin-etl/internal/filter"
	"github.com/couchcryptid/storm-bulletin-etl/internal/nws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalizeAlert(t *testing.T, lists *filter.Lists, text string) (*AlertRecord, error) {
	t.Helper()
	msg := RawMessage{ID: "alert-1", RawText: text}
	d := NewCategorizer(filter.New(nil, nil, nil, nil), discardLogger()).Categorize(msg)
	require.Equal(t, CategoryAlert, d.Category)
	return NewAlertNormalizer(lists, "nwws-oi").Normalize(msg, d.Alert)
}

func TestAlertNormalizer(t *testing.T) {
	rec, err := normalizeAlert(t, filter.Default(), capAlertText("Alert", "Severe Thunderstorm Warning", validCAPPolygon))
	require.NoError(t, err)

	assert.Equal(t, MessageTypeAlert, rec.MessageType)
	assert.Equal(t, "alert-1", rec.ID)
	assert.Equal(t, "nwws-oi", rec.Source)
	assert.Equal(t, "Severe Thunderstorm Warning", rec.Event)
	assert.Equal(t, "Severe", rec.Severity)
	assert.Equal(t, "Immediate", rec.Urgency)
	assert.Equal(t, "2024-05-21T18:30:00-05:00", rec.Expires)
	assert.Equal(t, "Polk, IA; Story, IA", rec.AffectedAreas)
	assert.Equal(t, "Des Moines IA", rec.IssuingOffice)
	assert.Empty(t, rec.Error)

	require.NotNil(t, rec.VTEC)
	assert.Equal(t, "KDMX", rec.VTEC.OfficeID)
	assert.Equal(t, "WUUS53 KDMX 212254", rec.VTEC.WMOHeader)

	require.NotNil(t, rec.UGC)
	assert.Equal(t, []string{"IAC153", "IAC169", "IAC187"}, rec.UGC.Zones, "cap zones take precedence")

	require.NotNil(t, rec.Geometry)
	assert.Equal(t, []nws.Point{{-93.8, 41.6}, {-93.6, 41.7}, {-93.5, 41.5}, {-93.8, 41.6}}, rec.Geometry.Ring())

	require.NotNil(t, rec.Display)
	assert.Equal(t, "#FFFF00", rec.Display.Color)
	assert.Equal(t, 11, rec.Display.Zoom)
	assert.Equal(t, "QUARTER SIZE HAIL AND WIND GUSTS UP TO 60 MPH; WIND GUSTS: 60 MPH", rec.Display.Hazards)
}

func TestAlertNormalizer_SuppressedMessageTypes(t *testing.T) {
	for _, msgType := range []string{"Cancel", "Update", "UPDATE", "cancel"} {
		t.Run(msgType, func(t *testing.T) {
			rec, err := normalizeAlert(t, filter.Default(), capAlertText(msgType, "Severe Thunderstorm Warning", validCAPPolygon))
			assert.Nil(t, rec)

			r, ok := AsRejection(err)
			require.True(t, ok)
			assert.Equal(t, ReasonSuppressedMsgType, r.Reason)
		})
	}
}

func TestAlertNormalizer_GeometryFallback(t *testing.T) {
	rec, err := normalizeAlert(t, filter.Default(), capAlertText("Alert", "Severe Thunderstorm Warning", "41.60,-93.80 garbage"))
	require.NoError(t, err)

	require.NotNil(t, rec.Geometry)
	assert.Equal(t, []nws.Point{{-93.9, 41.6}, {-93.6, 41.8}, {-93.4, 41.5}, {-93.9, 41.6}}, rec.Geometry.Ring())
	assert.Equal(t, "cap polygon malformed", rec.Error)
}

func TestAlertNormalizer_EventFallsBackToVTEC(t *testing.T) {
	rec, err := normalizeAlert(t, filter.Default(), capAlertText("Alert", "", validCAPPolygon))
	require.NoError(t, err)
	assert.Equal(t, "Severe Thunderstorm Warning", rec.Event)
}

func TestAlertNormalizer_Filters(t *testing.T) {
	tests := []struct {
		name   string
		lists  *filter.Lists
		reason Reason
	}{
		{"deny list", filter.New(nil, []string{"severe thunderstorm warning"}, nil, nil), ReasonFilteredEvent},
		{"allow list", filter.New([]string{"tornado warning"}, nil, nil, nil), ReasonFilteredEvent},
		{"ugc allow list", filter.New(nil, nil, []string{"IAC001"}, nil), ReasonFilteredGeography},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := normalizeAlert(t, tt.lists, capAlertText("Alert", "Severe Thunderstorm Warning", validCAPPolygon))
			assert.Nil(t, rec)

			r, ok := AsRejection(err)
			require.True(t, ok)
			assert.Equal(t, tt.reason, r.Reason)
		})
	}

	t.Run("matching allow lists pass", func(t *testing.T) {
		lists := filter.New([]string{"Severe Thunderstorm Warning"}, nil, []string{"IAC187"}, nil)
		rec, err := normalizeAlert(t, lists, capAlertText("Alert", "Severe Thunderstorm Warning", validCAPPolygon))
		require.NoError(t, err)
		assert.NotNil(t, rec)
	})
}

func TestAlertNormalizer_EnvelopeAlert(t *testing.T) {
	msg := RawMessage{ID: "env-1", RawText: "TOR bulletin text without office", Envelope: parseEnvelope(t)}
	d := NewCategorizer(filter.Default(), discardLogger()).Categorize(msg)
	require.Equal(t, CategoryAlert, d.Category)

	rec, err := NewAlertNormalizer(filter.Default(), "nwws-oi").Normalize(msg, d.Alert)
	require.NoError(t, err)

	assert.Equal(t, "Tornado Warning", rec.Event)
	assert.Equal(t, "w-nws.webmaster@noaa.gov", rec.IssuingOffice, "falls back to cap sender")
	assert.Equal(t, []string{"IAC169"}, rec.UGC.Zones)
	assert.Nil(t, rec.Geometry)
	assert.Nil(t, rec.VTEC)
	assert.Equal(t, "#FF0000", rec.Display.Color)
	assert.Nil(t, rec.Display.Center)
	assert.Equal(t, 14, rec.Display.Zoom)
}
