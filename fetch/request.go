package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Request represents one HTTP request to be built and sent by a Client.
type Request struct {
	Method string
	// URL is absolute or relative. A relative URL is joined onto the
	// client's base URL.
	URL         string
	Query       *Query
	EncodeQuery EncodeFunc
	Headers     map[string]string
	// JSON is serialized into the body when Body is nil.
	JSON interface{}
	// Body is the explicit request body: a string, []byte, or io.Reader.
	// When set, JSON is ignored and no Content-Type is injected.
	Body interface{}
}

// NewRequest creates a new request for the given method and URL.
func NewRequest(method, url string) *Request {
	return &Request{
		Method:  method,
		URL:     url,
		Query:   NewQuery(),
		Headers: make(map[string]string),
	}
}

// WithHeader adds a header to the request.
func (r *Request) WithHeader(key, value string) *Request {
	r.Headers[key] = value
	return r
}

// WithQuery replaces the request's query parameters.
func (r *Request) WithQuery(q *Query) *Request {
	r.Query = q
	return r
}

// WithQueryParam sets a single-valued query parameter.
func (r *Request) WithQueryParam(key, value string) *Request {
	r.Query.Set(key, Scalar(value))
	return r
}

// WithQueryList sets a multi-valued query parameter.
func (r *Request) WithQueryList(key string, values ...string) *Request {
	r.Query.Set(key, List(values...))
	return r
}

// WithEncodeQuery overrides the query encoder for this request.
func (r *Request) WithEncodeQuery(fn EncodeFunc) *Request {
	r.EncodeQuery = fn
	return r
}

// WithJSON sets the value to serialize as the request body.
func (r *Request) WithJSON(v interface{}) *Request {
	r.JSON = v
	return r
}

// WithBody sets an explicit body. The body must be a string, []byte, or
// io.Reader. An explicit body always wins over WithJSON.
func (r *Request) WithBody(body interface{}) *Request {
	r.Body = body
	return r
}

// build constructs an http.Request from the Request. Default headers are
// applied first so request headers win; Accept and Content-Type are only
// injected when absent.
func (r *Request) build(ctx context.Context, baseURL string, encode EncodeFunc, defaultHeaders map[string]string) (*http.Request, error) {
	target := r.URL
	if baseURL != "" && !isAbsoluteURL(target) {
		target = joinURL(baseURL, target)
	}

	if r.Query != nil && r.Query.Len() > 0 {
		if r.EncodeQuery != nil {
			encode = r.EncodeQuery
		}
		var encoded string
		if encode != nil {
			encoded = encode(r.Query)
		} else {
			encoded = r.Query.Encode()
		}
		target = appendQuery(target, encoded)
	}

	bodyReader, isJSON, err := r.bodyReader()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, bodyReader)
	if err != nil {
		return nil, err
	}

	for key, value := range defaultHeaders {
		req.Header.Set(key, value)
	}
	for key, value := range r.Headers {
		req.Header.Set(key, value)
	}

	// Header.Set canonicalizes keys, so these lookups are case-insensitive
	// with respect to whatever casing the caller used.
	if isJSON && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json, */*")
	}

	return req, nil
}

// bodyReader derives the outbound body. The explicit Body wins; otherwise
// JSON is marshaled and the second return value reports that the body is
// JSON-encoded.
func (r *Request) bodyReader() (io.Reader, bool, error) {
	if r.Body != nil {
		switch body := r.Body.(type) {
		case string:
			return strings.NewReader(body), false, nil
		case []byte:
			return bytes.NewReader(body), false, nil
		case io.Reader:
			return body, false, nil
		default:
			return nil, false, fmt.Errorf("unsupported body type %T (want string, []byte, or io.Reader)", r.Body)
		}
	}

	if r.JSON != nil {
		data, err := json.Marshal(r.JSON)
		if err != nil {
			return nil, false, err
		}
		return bytes.NewReader(data), true, nil
	}

	return nil, false, nil
}
