package fetch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptrace"
	"time"
)

// Client represents an HTTP client with customizable options.
// Client is safe for concurrent use by multiple goroutines.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	headers     map[string]string
	encodeQuery EncodeFunc
}

// ClientOption is a function that configures a Client.
type ClientOption func(*Client)

// NewClient creates a new HTTP client with the given options.
func NewClient(options ...ClientOption) *Client {
	client := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		headers: make(map[string]string),
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// WithBaseURL sets the base URL for the client. Relative request URLs are
// joined onto it; absolute request URLs ignore it.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the timeout for the client.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHeader adds a default header applied to every request. Request-level
// headers take precedence.
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithHTTPClient replaces the underlying http.Client. Transport concerns
// (TLS, proxy, cookies, redirect policy) are configured there and forwarded
// untouched.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTransport sets the underlying round tripper.
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *Client) {
		c.httpClient.Transport = rt
	}
}

// WithEncodeQuery sets the default query encoder. A request-level encoder
// takes precedence.
func WithEncodeQuery(fn EncodeFunc) ClientOption {
	return func(c *Client) {
		c.encodeQuery = fn
	}
}

// Do executes a request and returns the normalized response. The transport
// is invoked exactly once: no retries, and transport or body-read failures
// are returned unwrapped. A body that fails to parse as JSON is not an
// error; see Response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := req.build(ctx, c.baseURL, c.encodeQuery, c.headers)
	if err != nil {
		return nil, err
	}
	requestedURL := httpReq.URL.String()

	timing := TimingInfo{
		StartTime: time.Now(),
	}
	trace := newClientTrace(&timing)
	httpReq = httpReq.WithContext(httptrace.WithClientTrace(httpReq.Context(), trace))

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	timing.TotalTime = time.Since(timing.StartTime)

	contentTransferStart := time.Now()
	body, err := io.ReadAll(httpResp.Body)
	httpResp.Body.Close()
	if err != nil {
		return nil, err
	}
	timing.ContentTransferTime = time.Since(contentTransferStart)
	timing.TotalTime = time.Since(timing.StartTime)

	return newResponse(httpResp, body, requestedURL, timing), nil
}

// DoRaw executes a request and returns the transport's response untouched.
// The body is not consumed and no JSON parsing is attempted; the caller owns
// closing the body.
func (c *Client) DoRaw(ctx context.Context, req *Request) (*http.Response, error) {
	httpReq, err := req.build(ctx, c.baseURL, c.encodeQuery, c.headers)
	if err != nil {
		return nil, err
	}
	return c.httpClient.Do(httpReq)
}

// A convenience for one-off requests.
var defaultClient = NewClient()

// Get executes a GET request with the default client.
func Get(ctx context.Context, url string) (*Response, error) {
	return defaultClient.Do(ctx, NewRequest(http.MethodGet, url))
}

// Post executes a POST request with a JSON body using the default client.
func Post(ctx context.Context, url string, body interface{}) (*Response, error) {
	return defaultClient.Do(ctx, NewRequest(http.MethodPost, url).WithJSON(body))
}

// Put executes a PUT request with a JSON body using the default client.
func Put(ctx context.Context, url string, body interface{}) (*Response, error) {
	return defaultClient.Do(ctx, NewRequest(http.MethodPut, url).WithJSON(body))
}

// Patch executes a PATCH request with a JSON body using the default client.
func Patch(ctx context.Context, url string, body interface{}) (*Response, error) {
	return defaultClient.Do(ctx, NewRequest(http.MethodPatch, url).WithJSON(body))
}

// Delete executes a DELETE request with the default client.
func Delete(ctx context.Context, url string) (*Response, error) {
	return defaultClient.Do(ctx, NewRequest(http.MethodDelete, url))
}
