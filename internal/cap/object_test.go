package cap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseObject(t *testing.T) {
	doc, err := ParseObject([]byte(sampleAlert))
	require.NoError(t, err)

	assert.Equal(t, "alert", doc.Root)
	assert.Equal(t, Namespace12, doc.Namespace)
	assert.True(t, doc.IsAlert())

	assert.Equal(t, "Actual", doc.Body["status"])
	assert.Equal(t, map[string]any{"xmlns": Namespace12}, doc.Body["$"])

	infos, ok := doc.Body["info"].([]any)
	require.True(t, ok, "repeated info becomes a list")
	require.Len(t, infos, 2)

	second, ok := infos[1].(Object)
	require.True(t, ok)
	area, ok := second["area"].(Object)
	require.True(t, ok, "single area stays an object")
	assert.Equal(t, "Second Area", area["areaDesc"])
}

func TestParseObject_MixedContent(t *testing.T) {
	doc, err := ParseObject([]byte(`<root><item kind="a">text</item></root>`))
	require.NoError(t, err)

	item, ok := doc.Body["item"].(Object)
	require.True(t, ok)
	assert.Equal(t, "text", item["_"])
	assert.Equal(t, map[string]any{"kind": "a"}, item["$"])
}

func TestDocument_IsAlert(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want bool
	}{
		{"cap 1.2", `<alert xmlns="urn:oasis:names:tc:emergency:cap:1.2"><status>Actual</status></alert>`, true},
		{"prefixed cap 1.2", `<cap:alert xmlns:cap="urn:oasis:names:tc:emergency:cap:1.2"><cap:status>Actual</cap:status></cap:alert>`, true},
		{"cap 1.1 rejected", `<alert xmlns="urn:oasis:names:tc:emergency:cap:1.1"><status>Actual</status></alert>`, false},
		{"wrong root", `<feed xmlns="urn:oasis:names:tc:emergency:cap:1.2"/>`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseObject([]byte(tt.xml))
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc.IsAlert())
		})
	}
}

func TestParseObject_Errors(t *testing.T) {
	_, err := ParseObject([]byte("not xml at all"))
	require.Error(t, err)

	_, err = ParseObject([]byte("<alert><info>"))
	require.Error(t, err)
}
