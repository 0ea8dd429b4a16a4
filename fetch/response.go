package fetch

import (
	"encoding/json"
	"net/http"
	"time"
)

// Response is the normalized response record returned by Client.Do. The raw
// body is always available as Text; JSON holds the parsed body, or falls
// back to Text when the body is not valid JSON (ParseErr then carries the
// parse error). Exactly one of {parsed value, ParseErr} is meaningful.
type Response struct {
	// StatusCode is the HTTP status code (e.g., 200, 404, 500)
	StatusCode int

	// Status is the HTTP status string (e.g., "200 OK")
	Status string

	// OK reports whether the status code is in the 2xx range
	OK bool

	// Redirected reports whether the transport followed at least one redirect
	Redirected bool

	// URL is the final URL after any redirects
	URL string

	// Headers is the transport's header collection, passed through by reference
	Headers http.Header

	// Text is the full response body
	Text string

	// JSON is the parsed body, or Text when parsing failed
	JSON interface{}

	// ParseErr is set only when the body is not valid JSON
	ParseErr error

	// ResponseTime is the total request duration
	ResponseTime time.Duration

	// Timing holds per-phase timing details
	Timing TimingInfo
}

// newResponse adapts a transport response whose body has already been read.
// Parsing is always attempted regardless of the declared Content-Type; a
// parse failure is captured as data, never returned as an error.
func newResponse(httpResp *http.Response, body []byte, requestedURL string, timing TimingInfo) *Response {
	finalURL := requestedURL
	if httpResp.Request != nil && httpResp.Request.URL != nil {
		finalURL = httpResp.Request.URL.String()
	}

	resp := &Response{
		StatusCode:   httpResp.StatusCode,
		Status:       httpResp.Status,
		OK:           httpResp.StatusCode >= 200 && httpResp.StatusCode < 300,
		Redirected:   finalURL != requestedURL,
		URL:          finalURL,
		Headers:      httpResp.Header,
		Text:         string(body),
		ResponseTime: timing.TotalTime,
		Timing:       timing,
	}

	var parsed interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		resp.JSON = resp.Text
		resp.ParseErr = err
	} else {
		resp.JSON = parsed
	}

	return resp
}

// Decode unmarshals the response body into the provided value.
func (r *Response) Decode(v interface{}) error {
	return json.Unmarshal([]byte(r.Text), v)
}

// GetHeader returns the value of the specified header.
func (r *Response) GetHeader(key string) string {
	return r.Headers.Get(key)
}

// IsSuccess returns true if the response status code is in the 2xx range
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsRedirect returns true if the response status code is in the 3xx range
func (r *Response) IsRedirect() bool {
	return r.StatusCode >= 300 && r.StatusCode < 400
}

// IsClientError returns true if the response status code is in the 4xx range
func (r *Response) IsClientError() bool {
	return r.StatusCode >= 400 && r.StatusCode < 500
}

// IsServerError returns true if the response status code is in the 5xx range
func (r *Response) IsServerError() bool {
	return r.StatusCode >= 500 && r.StatusCode < 600
}

// GetResponseTimeMillis returns the response time in milliseconds
func (r *Response) GetResponseTimeMillis() int64 {
	return r.ResponseTime.Milliseconds()
}

// GetDNSLookupTimeMillis returns the DNS lookup time in milliseconds
func (r *Response) GetDNSLookupTimeMillis() int64 {
	return r.Timing.DNSLookupTime.Milliseconds()
}

// GetTCPConnectTimeMillis returns the TCP connection time in milliseconds
func (r *Response) GetTCPConnectTimeMillis() int64 {
	return r.Timing.TCPConnectTime.Milliseconds()
}

// GetTLSHandshakeTimeMillis returns the TLS handshake time in milliseconds
func (r *Response) GetTLSHandshakeTimeMillis() int64 {
	return r.Timing.TLSHandshakeTime.Milliseconds()
}

// GetTimeToFirstByteMillis returns the time to first byte in milliseconds
func (r *Response) GetTimeToFirstByteMillis() int64 {
	return r.Timing.TimeToFirstByte.Milliseconds()
}

// GetContentTransferTimeMillis returns the content transfer time in milliseconds
func (r *Response) GetContentTransferTimeMillis() int64 {
	return r.Timing.ContentTransferTime.Milliseconds()
}

// GetTotalTimeMillis returns the total request time in milliseconds
func (r *Response) GetTotalTimeMillis() int64 {
	return r.Timing.TotalTime.Milliseconds()
}
