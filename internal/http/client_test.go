package http_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	chargifyhttp "github.com/fivetwenty-io/chargify-client/internal/http"
	"github.com/fivetwenty-io/chargify-client/pkg/chargify"
	"github.com/fivetwenty-io/chargify-client/pkg/wire"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

const customerXML = `<?xml version="1.0" encoding="UTF-8"?>
<customer><first_name>Ada</first_name><last_name>Lovelace</last_name><email>ada@example.com</email></customer>
`

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/customers/42.xml", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "application/xml", request.Header.Get("Accept"))
			assert.Equal(t, "text/xml", request.Header.Get("Content-Type"))

			user, password, ok := request.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "test-key", user)
			assert.Equal(t, "X", password)

			_, _ = writer.Write([]byte(`<customer><id type="integer">42</id></customer>`))
		}))
		defer server.Close()

		client := chargifyhttp.NewClient(server.URL, "test-key")

		req := &chargifyhttp.Request{
			Method: "GET",
			Path:   "/customers/42",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, `<customer><id type="integer">42</id></customer>`, string(resp.Body))
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/subscriptions.xml", request.URL.Path)
			assert.Equal(t, "page=2&per_page=50", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := chargifyhttp.NewClient(server.URL+"/", "test-key")

		req := &chargifyhttp.Request{
			Method: "GET",
			Path:   "/subscriptions",
			Query:  url.Values{"page": []string{"2"}, "per_page": []string{"50"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with XML body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "text/xml", request.Header.Get("Content-Type"))

			body, _ := io.ReadAll(request.Body)
			assert.Equal(t, customerXML, string(body))

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := chargifyhttp.NewClient(server.URL, "test-key")

		resp, err := client.Post(context.Background(), "/customers", []byte(customerXML))
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("JSON mode converts the body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/customers.json", request.URL.Path)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			body, _ := io.ReadAll(request.Body)
			assert.JSONEq(t, `{"customer":{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com"}}`, string(body))

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := chargifyhttp.NewClient(server.URL, "test-key", chargifyhttp.WithFormat(wire.FormatJSON))
		assert.Equal(t, wire.FormatJSON, client.Format())

		resp, err := client.Post(context.Background(), "/customers", []byte(customerXML))
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("JSON mode rejects a body that is not XML", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			calls.Add(1)
		}))
		defer server.Close()

		client := chargifyhttp.NewClient(server.URL, "test-key", chargifyhttp.WithFormat(wire.FormatJSON))

		_, err := client.Post(context.Background(), "/customers", []byte(`not xml`))
		require.Error(t, err)
		assert.Zero(t, calls.Load())
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`<errors><error>Customer not found</error></errors>`))
		}))
		defer server.Close()

		client := chargifyhttp.NewClient(server.URL, "test-key")

		resp, err := client.Get(context.Background(), "/customers/999", nil)
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		assert.True(t, chargify.IsNotFound(err))

		errResp := &chargify.ResponseError{}
		ok := errors.As(err, &errResp)
		require.True(t, ok)
		assert.Equal(t, []string{"Customer not found"}, errResp.Errors)
		assert.Equal(t, resp.Body, errResp.Body)
	})

	t.Run("unprocessable entity", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = writer.Write([]byte(`{"errors":["Email address: is invalid."]}`))
		}))
		defer server.Close()

		client := chargifyhttp.NewClient(server.URL, "test-key", chargifyhttp.WithFormat(wire.FormatJSON))

		_, err := client.Put(context.Background(), "/customers/1", []byte(customerXML))
		require.Error(t, err)
		assert.True(t, chargify.IsUnprocessable(err))
		assert.Contains(t, err.Error(), "Email address: is invalid.")
	})

	t.Run("custom headers and password", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			assert.Equal(t, "test-agent/1.0", request.Header.Get("User-Agent"))

			_, password, _ := request.BasicAuth()
			assert.Equal(t, "site-password", password)

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := chargifyhttp.NewClient(server.URL, "test-key",
			chargifyhttp.WithUserAgent("test-agent/1.0"),
			chargifyhttp.WithPassword("site-password"))

		req := &chargifyhttp.Request{
			Method: "GET",
			Path:   "/customers",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := chargifyhttp.NewClient(server.URL, "test-key", chargifyhttp.WithLogger(logger), chargifyhttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/customers", nil)
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})

	t.Run("logger without debug stays quiet", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := chargifyhttp.NewClient(server.URL, "test-key", chargifyhttp.WithLogger(logger))

		_, err := client.Get(context.Background(), "/customers", nil)
		require.NoError(t, err)
		assert.Empty(t, logger.logs)
	})

	t.Run("unsupported method", func(t *testing.T) {
		t.Parallel()

		client := chargifyhttp.NewClient("http://127.0.0.1:1", "test-key")

		_, err := client.Do(context.Background(), &chargifyhttp.Request{Method: "PATCH", Path: "/customers/1"})
		require.ErrorIs(t, err, chargifyhttp.ErrUnsupportedMethod)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := chargifyhttp.NewClient(server.URL, "test-key")

		_, err := client.Get(ctx, "/customers", nil)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestClient_Hooks(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusCreated)
		_, _ = writer.Write([]byte(`{"customer":{"id":42}}`))
	}))
	defer server.Close()

	var (
		sentMethod, sentURL string
		sentBody            []byte
		gotStatus           int
		gotBody             []byte
	)

	client := chargifyhttp.NewClient(server.URL, "test-key",
		chargifyhttp.WithFormat(wire.FormatJSON),
		chargifyhttp.WithRequestHook(func(method, url string, body []byte) {
			sentMethod, sentURL, sentBody = method, url, body
		}),
		chargifyhttp.WithResponseHook(func(statusCode int, url string, body []byte) {
			gotStatus, gotBody = statusCode, body
		}))

	_, err := client.Post(context.Background(), "/customers", []byte(customerXML))
	require.NoError(t, err)

	assert.Equal(t, "POST", sentMethod)
	assert.Equal(t, server.URL+"/customers.json", sentURL)
	assert.JSONEq(t, `{"customer":{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com"}}`, string(sentBody))
	assert.Equal(t, 201, gotStatus)
	assert.Equal(t, `{"customer":{"id":42}}`, string(gotBody))
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*chargifyhttp.Client, context.Context) (*chargifyhttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *chargifyhttp.Client, ctx context.Context) (*chargifyhttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *chargifyhttp.Client, ctx context.Context) (*chargifyhttp.Response, error) {
				return c.Post(ctx, "/test", []byte(customerXML))
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *chargifyhttp.Client, ctx context.Context) (*chargifyhttp.Response, error) {
				return c.Put(ctx, "/test", []byte(customerXML))
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *chargifyhttp.Client, ctx context.Context) (*chargifyhttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test.xml", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := chargifyhttp.NewClient(server.URL, "test-key")
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_GetPDF(t *testing.T) {
	t.Parallel()

	pdf := []byte("%PDF-1.4 statement")

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/statements/7.pdf", request.URL.Path)
		assert.Equal(t, "application/pdf", request.Header.Get("Accept"))
		assert.Equal(t, "application/pdf", request.Header.Get("Content-Type"))

		writer.Header().Set("Content-Type", "application/pdf")
		_, _ = writer.Write(pdf)
	}))
	defer server.Close()

	client := chargifyhttp.NewClient(server.URL, "test-key", chargifyhttp.WithFormat(wire.FormatJSON))

	body, err := client.GetPDF(context.Background(), "/statements/7")
	require.NoError(t, err)
	assert.Equal(t, pdf, body)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_ContentEncoding(t *testing.T) {
	t.Parallel()

	payload := []byte(`<customer><id type="integer">42</id></customer>`)

	gzipped := func() []byte {
		var buf bytes.Buffer

		writer := gzip.NewWriter(&buf)
		_, _ = writer.Write(payload)
		_ = writer.Close()

		return buf.Bytes()
	}

	zlibbed := func() []byte {
		var buf bytes.Buffer

		writer := zlib.NewWriter(&buf)
		_, _ = writer.Write(payload)
		_ = writer.Close()

		return buf.Bytes()
	}

	rawDeflated := func() []byte {
		var buf bytes.Buffer

		writer, _ := flate.NewWriter(&buf, flate.DefaultCompression)
		_, _ = writer.Write(payload)
		_ = writer.Close()

		return buf.Bytes()
	}

	zstded := func() []byte {
		encoder, _ := zstd.NewWriter(nil)
		defer func() { _ = encoder.Close() }()

		return encoder.EncodeAll(payload, nil)
	}

	tests := []struct {
		name     string
		encoding string
		body     func() []byte
		wantErr  error
	}{
		{name: "identity", encoding: "", body: func() []byte { return payload }},
		{name: "gzip", encoding: "gzip", body: gzipped},
		{name: "deflate", encoding: "deflate", body: zlibbed},
		{name: "raw deflate", encoding: "deflate", body: rawDeflated},
		{name: "zstd", encoding: "zstd", body: zstded},
		{name: "unknown", encoding: "br", body: func() []byte { return payload }, wantErr: chargifyhttp.ErrUnsupportedEncoding},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.True(t, strings.Contains(request.Header.Get("Accept-Encoding"), "gzip"))

				if testCase.encoding != "" {
					writer.Header().Set("Content-Encoding", testCase.encoding)
				}

				_, _ = writer.Write(testCase.body())
			}))
			defer server.Close()

			client := chargifyhttp.NewClient(server.URL, "test-key")

			resp, err := client.Get(context.Background(), "/customers/42", nil)
			if testCase.wantErr != nil {
				require.ErrorIs(t, err, testCase.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, payload, resp.Body)
		})
	}
}

func TestClient_NoRetry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
	}{
		{name: "server error", status: http.StatusInternalServerError},
		{name: "rate limited", status: http.StatusTooManyRequests},
		{name: "client error", status: http.StatusBadRequest},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var attempts atomic.Int32

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				attempts.Add(1)
				writer.WriteHeader(testCase.status)
			}))
			defer server.Close()

			client := chargifyhttp.NewClient(server.URL, "test-key")

			resp, err := client.Get(context.Background(), "/test", nil)
			require.Error(t, err)
			assert.Equal(t, testCase.status, resp.StatusCode)
			assert.Equal(t, int32(1), attempts.Load()) // Should not retry
		})
	}
}

func TestDefaultUserAgent(t *testing.T) {
	t.Parallel()

	agent := chargifyhttp.DefaultUserAgent()
	assert.True(t, strings.HasPrefix(agent, "chargify-client/"))
	assert.Equal(t, agent, chargifyhttp.DefaultUserAgent())
}
