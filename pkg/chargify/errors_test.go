package chargify_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/chargify-client/pkg/chargify"
	"github.com/stretchr/testify/assert"
)

func TestParseErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected []string
	}{
		{
			name:     "xml errors",
			body:     `<?xml version="1.0" encoding="UTF-8"?><errors><error>First name: cannot be blank.</error><error>Email address: is invalid.</error></errors>`,
			expected: []string{"First name: cannot be blank.", "Email address: is invalid."},
		},
		{
			name:     "xml single error",
			body:     `<error>Not authorized</error>`,
			expected: []string{"Not authorized"},
		},
		{
			name:     "json error list",
			body:     `{"errors":["Product must be specified."," "]}`,
			expected: []string{"Product must be specified."},
		},
		{
			name:     "json field errors",
			body:     `{"errors":{"email":["is invalid"],"customer":"must exist"}}`,
			expected: []string{"customer: must exist", "email: is invalid"},
		},
		{
			name:     "json single error",
			body:     `{"error":"Subscription not found"}`,
			expected: []string{"Subscription not found"},
		},
		{name: "html page", body: `<html><body>Oops`},
		{name: "empty", body: ``},
		{name: "json without errors", body: `{"customer":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, chargify.ParseErrorMessages([]byte(tt.body)))
		})
	}
}

func TestResponseError(t *testing.T) {
	t.Parallel()

	notFound := chargify.NewResponseError(http.StatusNotFound, []byte(`<errors><error>Customer not found</error></errors>`))
	assert.Equal(t, "API error: 404 Not Found: Customer not found", notFound.Error())
	assert.True(t, chargify.IsNotFound(notFound))
	assert.True(t, chargify.IsNotFound(fmt.Errorf("getting customer: %w", notFound)))
	assert.ErrorIs(t, notFound, chargify.ErrNotFound)
	assert.False(t, chargify.IsForbidden(notFound))

	invalid := chargify.NewResponseError(http.StatusUnprocessableEntity, []byte(`{"errors":["a","b"]}`))
	assert.Equal(t, "API error: 422 Unprocessable Entity: a; b", invalid.Error())
	assert.True(t, chargify.IsUnprocessable(invalid))
	assert.False(t, chargify.IsNotFound(invalid))

	forbidden := chargify.NewResponseError(http.StatusForbidden, nil)
	assert.Equal(t, "API error: 403 Forbidden", forbidden.Error())
	assert.True(t, chargify.IsForbidden(forbidden))

	assert.True(t, chargify.IsUnauthorized(chargify.NewResponseError(http.StatusUnauthorized, nil)))
	assert.False(t, chargify.IsNotFound(chargify.ErrMalformedResponse))
}

func TestDuplicateKeyError(t *testing.T) {
	t.Parallel()

	err := &chargify.DuplicateKeyError{Key: "ada"}
	assert.Equal(t, "duplicate key in collection: ada", err.Error())
	assert.ErrorIs(t, err, chargify.ErrDuplicateKey)
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := &chargify.ValidationError{Field: "email", Reason: "is required"}
	assert.Equal(t, "invalid argument: email: is required", err.Error())
	assert.ErrorIs(t, err, chargify.ErrInvalidArgument)
}
