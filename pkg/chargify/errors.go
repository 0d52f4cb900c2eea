package chargify

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/fivetwenty-io/chargify-client/pkg/wire"
)

// Static errors for err113 compliance.
var (
	ErrMalformedResponse         = errors.New("malformed response")
	ErrUnsupportedResponseFormat = errors.New("response is neither XML nor JSON")
	ErrDuplicateKey              = errors.New("duplicate key in collection")
	ErrDecodeCountMismatch       = errors.New("decoded item count does not match payload")
	ErrInvalidArgument           = errors.New("invalid argument")
	ErrNotFound                  = errors.New("resource not found")
	ErrConfigRequired            = errors.New("config is required")
	ErrSiteURLRequired           = errors.New("site URL is required")
	ErrAPIKeyRequired            = errors.New("API key is required")
)

// ResponseError is returned for every non-2xx response. Errors holds the
// messages parsed from the body when the remote API sent any.
type ResponseError struct {
	StatusCode int
	Errors     []string
	Body       []byte
}

// NewResponseError builds a ResponseError, parsing remote messages from body.
func NewResponseError(statusCode int, body []byte) *ResponseError {
	return &ResponseError{
		StatusCode: statusCode,
		Errors:     ParseErrorMessages(body),
		Body:       body,
	}
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	status := fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))

	switch len(e.Errors) {
	case 0:
		return "API error: " + status
	case 1:
		return fmt.Sprintf("API error: %s: %s", status, e.Errors[0])
	default:
		return fmt.Sprintf("API error: %s: %s", status, strings.Join(e.Errors, "; "))
	}
}

// Is makes a 404 ResponseError match ErrNotFound.
func (e *ResponseError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsUnprocessable checks if the remote API rejected the request as invalid.
func IsUnprocessable(err error) bool {
	return hasStatus(err, http.StatusUnprocessableEntity)
}

func hasStatus(err error, status int) bool {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr.StatusCode == status
	}

	return false
}

// DuplicateKeyError reports a key seen twice while building a collection.
type DuplicateKeyError struct {
	Key any
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: %v", ErrDuplicateKey.Error(), e.Key)
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

// ValidationError is raised locally, before any request is sent, for the
// first request field that fails validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidArgument.Error(), e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ParseErrorMessages extracts the remote error messages from an error body.
// Recognised shapes are <errors><error>..</error></errors>, {"errors": [..]},
// {"errors": {"field": [..]}} and {"error": ".."}. Anything else yields nil.
func ParseErrorMessages(body []byte) []string {
	doc, err := parseDocument(body)
	if err != nil {
		return nil
	}

	if doc.xml != nil {
		return xmlErrorMessages(doc.xml)
	}

	obj, ok := doc.json.(map[string]any)
	if !ok {
		return nil
	}

	return jsonErrorMessages(obj)
}

func xmlErrorMessages(root *wire.Node) []string {
	var messages []string

	errs := root.Find("errors")
	if errs == nil {
		if root.Name() == "error" {
			return appendMessage(messages, root.Text)
		}

		return nil
	}

	for _, c := range errs.Children {
		if c.Name() == "error" {
			messages = appendMessage(messages, c.Text)
		}
	}

	return messages
}

func jsonErrorMessages(obj map[string]any) []string {
	var messages []string

	switch errs := obj["errors"].(type) {
	case []any:
		for _, e := range errs {
			messages = appendMessage(messages, wire.JSONString(e))
		}
	case map[string]any:
		for _, field := range slices.Sorted(maps.Keys(errs)) {
			switch msgs := errs[field].(type) {
			case []any:
				for _, m := range msgs {
					messages = appendMessage(messages, field+": "+wire.JSONString(m))
				}
			default:
				messages = appendMessage(messages, field+": "+wire.JSONString(msgs))
			}
		}
	case string:
		messages = appendMessage(messages, errs)
	}

	if msg, ok := obj["error"].(string); ok {
		messages = appendMessage(messages, msg)
	}

	return messages
}

func appendMessage(messages []string, msg string) []string {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return messages
	}

	return append(messages, msg)
}
