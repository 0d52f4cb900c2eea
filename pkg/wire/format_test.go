package wire_test

import (
	"testing"

	"github.com/fivetwenty-io/chargify-client/pkg/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected wire.Format
	}{
		{name: "xml document", body: `<?xml version="1.0" encoding="UTF-8"?><customer><id>1</id></customer>`, expected: wire.FormatXML},
		{name: "xml without prolog", body: `<customer/>`, expected: wire.FormatXML},
		{name: "xml with trailing whitespace", body: "<a>1</a>\n\n", expected: wire.FormatXML},
		{name: "json object", body: `{"customer":{"id":1}}`, expected: wire.FormatJSON},
		{name: "json array", body: `[{"customer":{"id":1}}]`, expected: wire.FormatJSON},
		{name: "single json token", body: `42`, expected: wire.FormatJSON},
		{name: "empty body", body: ``, expected: wire.FormatUnrecognized},
		{name: "html fragment", body: `<p>unclosed`, expected: wire.FormatUnrecognized},
		{name: "truncated json", body: `{"customer":`, expected: wire.FormatUnrecognized},
		{name: "xml with trailing element", body: `<a/><b/>`, expected: wire.FormatUnrecognized},
		{name: "json with trailing garbage", body: `{} x`, expected: wire.FormatUnrecognized},
		{name: "plain text", body: `Service Unavailable`, expected: wire.FormatUnrecognized},
		{name: "text before markup", body: `not xml at all <customer><id>7</id></customer>`, expected: wire.FormatUnrecognized},
		{name: "xml with leading whitespace", body: "\n  <customer/>", expected: wire.FormatXML},
		{name: "xml with leading comment", body: `<!-- generated --><customer/>`, expected: wire.FormatXML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, wire.Detect([]byte(tt.body)))
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := wire.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, wire.FormatJSON, f)

	f, err = wire.ParseFormat(" xml ")
	require.NoError(t, err)
	assert.Equal(t, wire.FormatXML, f)

	_, err = wire.ParseFormat("yaml")
	require.ErrorIs(t, err, wire.ErrUnknownFormat)
}

func TestFormat_Negotiation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "text/xml", wire.FormatXML.ContentType())
	assert.Equal(t, "application/xml", wire.FormatXML.Accept())
	assert.Equal(t, "xml", wire.FormatXML.Extension())
	assert.Equal(t, "application/json", wire.FormatJSON.ContentType())
	assert.Equal(t, "application/json", wire.FormatJSON.Accept())
	assert.Equal(t, "json", wire.FormatJSON.Extension())
}
