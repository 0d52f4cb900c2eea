package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Format is a wire serialization.
type Format int

// Supported formats. FormatUnrecognized is what Detect returns for bodies
// that parse as neither XML nor JSON.
const (
	FormatUnrecognized Format = iota
	FormatXML
	FormatJSON
)

// Media types used for content negotiation.
const (
	MediaTypeTextXML = "text/xml"
	MediaTypeXML     = "application/xml"
	MediaTypeJSON    = "application/json"
	MediaTypePDF     = "application/pdf"
)

// ErrUnknownFormat is returned by ParseFormat for names other than xml or json.
var ErrUnknownFormat = errors.New("unknown wire format")

// ParseFormat maps "xml" or "json" (any case) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "xml":
		return FormatXML, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatUnrecognized, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatJSON:
		return "json"
	default:
		return "unrecognized"
	}
}

// Extension returns the URL path suffix the API uses for the format.
func (f Format) Extension() string {
	if f == FormatJSON {
		return "json"
	}

	return "xml"
}

// ContentType returns the request Content-Type for the format.
func (f Format) ContentType() string {
	if f == FormatJSON {
		return MediaTypeJSON
	}

	return MediaTypeTextXML
}

// Accept returns the Accept header value for the format.
func (f Format) Accept() string {
	if f == FormatJSON {
		return MediaTypeJSON
	}

	return MediaTypeXML
}

// Detect classifies body by attempting a full parse, XML first. It never fails:
// parse errors become a negative classification.
func Detect(body []byte) Format {
	if IsXML(body) {
		return FormatXML
	}

	if IsJSON(body) {
		return FormatJSON
	}

	return FormatUnrecognized
}

// IsXML reports whether body is a well-formed XML document.
func IsXML(body []byte) bool {
	_, err := ParseXML(body)

	return err == nil
}

// IsJSON reports whether body is a single well-formed JSON value.
func IsJSON(body []byte) bool {
	_, err := ParseJSON(body)

	return err == nil
}

// ParseJSON decodes a single JSON value. Numbers are kept as json.Number so
// decimals survive without float rounding.
func ParseJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any

	err := dec.Decode(&v)
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	_, err = dec.Token()
	if !errors.Is(err, io.EOF) {
		return nil, ErrTrailingContent
	}

	return v, nil
}
