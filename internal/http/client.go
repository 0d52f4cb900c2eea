package http

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/fivetwenty-io/chargify-client/internal/constants"
	"github.com/fivetwenty-io/chargify-client/pkg/chargify"
	"github.com/fivetwenty-io/chargify-client/pkg/wire"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// Static errors for err113 compliance.
var (
	ErrUnsupportedMethod   = errors.New("unsupported HTTP method")
	ErrUnsupportedEncoding = errors.New("unsupported content encoding")
)

const acceptEncoding = "gzip, deflate, zstd"

// defaultUserAgent is computed once per process.
var defaultUserAgent = sync.OnceValue(func() string {
	return fmt.Sprintf("chargify-client/%s (%s; %s/%s)", constants.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
})

// DefaultUserAgent returns the User-Agent sent when none is configured.
func DefaultUserAgent() string {
	return defaultUserAgent()
}

// Client is the HTTP transport shared by all resource clients.
type Client struct {
	baseURL      string
	apiKey       string
	password     string
	format       wire.Format
	httpClient   *retryablehttp.Client
	logger       chargify.Logger
	debug        bool
	userAgent    string
	requestHook  chargify.RequestHook
	responseHook chargify.ResponseHook
}

// Option configures the HTTP client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger chargify.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithPassword sets the Basic auth password. Empty keeps the default.
func WithPassword(password string) Option {
	return func(c *Client) {
		if password != "" {
			c.password = password
		}
	}
}

// WithFormat selects the wire format of request and response bodies.
func WithFormat(format wire.Format) Option {
	return func(c *Client) {
		if format == wire.FormatXML || format == wire.FormatJSON {
			c.format = format
		}
	}
}

// WithTimeout sets the per-request timeout of the underlying HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithRequestHook registers a hook receiving every outgoing body.
func WithRequestHook(hook chargify.RequestHook) Option {
	return func(c *Client) {
		c.requestHook = hook
	}
}

// WithResponseHook registers a hook receiving every response body.
func WithResponseHook(hook chargify.ResponseHook) Option {
	return func(c *Client) {
		c.responseHook = hook
	}
}

// NewClient creates a transport for the site at baseURL authenticating with apiKey.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		return false, nil
	}
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		password:   constants.DefaultAPIPassword,
		format:     wire.FormatXML,
		httpClient: retryClient,
		userAgent:  DefaultUserAgent(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Format returns the wire format the client negotiates.
func (c *Client) Format() wire.Format {
	return c.format
}

// Request represents an HTTP request.
type Request struct {
	Method string
	// Path: resource path without the format extension (e.g., "/customers/42").
	Path  string
	Query url.Values
	// Body: an XML document from chargify.BuildBody. It is converted to JSON
	// before sending when the client runs in JSON mode.
	Body    []byte
	Headers map[string]string
	// Accept: overrides the negotiated media type. MediaTypePDF also switches
	// the path extension to ".pdf".
	Accept string
}

// Response represents an HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Do performs an HTTP request. Non-2xx statuses return the response together
// with a *chargify.ResponseError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	switch req.Method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, req.Method)
	}

	fullURL, err := c.buildURL(req)
	if err != nil {
		return nil, err
	}

	body, err := c.encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	var rawBody interface{}
	if body != nil {
		rawBody = body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	c.setHeaders(httpReq, req)

	if c.requestHook != nil {
		c.requestHook(req.Method, fullURL, body)
	}

	start := time.Now()

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
			"bytes":  len(body),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := readBody(httpResp)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":   req.Method,
			"url":      fullURL,
			"status":   httpResp.StatusCode,
			"duration": time.Since(start).String(),
		})
	}

	if c.responseHook != nil {
		c.responseHook(httpResp.StatusCode, fullURL, respBody)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return resp, chargify.NewResponseError(httpResp.StatusCode, respBody)
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body []byte) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body []byte) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   path,
		Body:   body,
	})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
	})
}

// GetPDF fetches the PDF rendition of a resource.
func (c *Client) GetPDF(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Accept: wire.MediaTypePDF,
	})
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

func (c *Client) buildURL(req *Request) (string, error) {
	extension := c.format.Extension()
	if req.Accept == wire.MediaTypePDF {
		extension = "pdf"
	}

	parsed, err := url.Parse(c.baseURL + req.Path + "." + extension)
	if err != nil {
		return "", fmt.Errorf("parsing URL: %w", err)
	}

	if len(req.Query) > 0 {
		parsed.RawQuery = req.Query.Encode()
	}

	return parsed.String(), nil
}

func (c *Client) encodeBody(body []byte) ([]byte, error) {
	if len(body) == 0 {
		return nil, nil
	}

	if c.format != wire.FormatJSON {
		return body, nil
	}

	converted, err := wire.XMLToJSON(body)
	if err != nil {
		return nil, fmt.Errorf("converting request body to JSON: %w", err)
	}

	return converted, nil
}

func (c *Client) setHeaders(httpReq *retryablehttp.Request, req *Request) {
	httpReq.SetBasicAuth(c.apiKey, c.password)
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Accept-Encoding", acceptEncoding)
	contentType := c.format.ContentType()
	accept := c.format.Accept()

	if req.Accept != "" {
		accept = req.Accept
	}

	if req.Accept == wire.MediaTypePDF {
		contentType = wire.MediaTypePDF
	}

	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", accept)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
}

// readBody drains the response body, decoding it according to Content-Encoding.
func readBody(resp *http.Response) ([]byte, error) {
	var reader io.Reader

	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "", "identity":
		reader = resp.Body
	case "gzip", "x-gzip":
		gzipReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}

		defer func() { _ = gzipReader.Close() }()

		reader = gzipReader
	case "deflate":
		deflateReader, err := newDeflateReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("opening deflate stream: %w", err)
		}

		defer func() { _ = deflateReader.Close() }()

		reader = deflateReader
	case "zstd":
		zstdReader, err := zstd.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("opening zstd stream: %w", err)
		}

		defer zstdReader.Close()

		reader = zstdReader
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, resp.Header.Get("Content-Encoding"))
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}

	return body, nil
}

// newDeflateReader opens an HTTP deflate body, which is a zlib stream. Some
// servers send raw deflate data instead; that is detected from the missing
// zlib header.
func newDeflateReader(body io.Reader) (io.ReadCloser, error) {
	buffered := bufio.NewReader(body)

	header, err := buffered.Peek(2)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if len(header) == 2 && isZlibHeader(header[0], header[1]) {
		return zlib.NewReader(buffered)
	}

	return flate.NewReader(buffered), nil
}

func isZlibHeader(cmf, flg byte) bool {
	return cmf&0x0f == 8 && (uint16(cmf)<<8|uint16(flg))%31 == 0
}
