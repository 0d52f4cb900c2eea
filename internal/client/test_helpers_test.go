package client

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/fivetwenty-io/chargify-client/pkg/chargify"
	"github.com/fivetwenty-io/chargify-client/pkg/wire"
	"github.com/stretchr/testify/require"
)

// recordedRequest is what the test server saw.
type recordedRequest struct {
	Method      string
	Path        string
	Query       url.Values
	ContentType string
	Body        string
}

// testServer records requests and answers them with handler.
type testServer struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (s *testServer) record(request *http.Request) {
	body, _ := io.ReadAll(request.Body)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, recordedRequest{
		Method:      request.Method,
		Path:        request.URL.Path,
		Query:       request.URL.Query(),
		ContentType: request.Header.Get("Content-Type"),
		Body:        string(body),
	})
}

// Requests returns a copy of the recorded requests.
func (s *testServer) Requests() []recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]recordedRequest(nil), s.requests...)
}

// Last returns the most recent request.
func (s *testServer) Last(t *testing.T) recordedRequest {
	t.Helper()

	requests := s.Requests()
	require.NotEmpty(t, requests, "no request reached the server")

	return requests[len(requests)-1]
}

// newTestClientWithHandler starts a server and returns a client for it.
func newTestClientWithHandler(t *testing.T, config chargify.Config, handler http.HandlerFunc) (*Client, *testServer) {
	t.Helper()

	recorder := &testServer{}

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		recorder.record(request)
		handler(writer, request)
	}))
	t.Cleanup(server.Close)

	config.SiteURL = server.URL
	config.APIKey = "test-key"

	client, err := New(&config)
	require.NoError(t, err)

	return client, recorder
}

// newTestClient starts a server answering every request with status and body.
func newTestClient(t *testing.T, format wire.Format, status int, body string) (*Client, *testServer) {
	t.Helper()

	return newTestClientWithHandler(t, chargify.Config{Format: format}, func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(status)
		_, _ = writer.Write([]byte(body))
	})
}

// xmlDocument prefixes body with the XML prolog.
func xmlDocument(body string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>` + "\n" + strings.TrimSpace(body) + "\n"
}

// mustBuild renders req the way the client does.
func mustBuild(t *testing.T, req chargify.Request) string {
	t.Helper()

	body, err := chargify.BuildBody(req)
	require.NoError(t, err)

	return string(body)
}

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) log(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.log("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.log("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.log("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.log("error", msg, fields) }

// Messages returns the logged messages in order.
func (l *MockLogger) Messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	messages := make([]string, 0, len(l.logs))
	for _, entry := range l.logs {
		messages = append(messages, entry["msg"].(string))
	}

	return messages
}
