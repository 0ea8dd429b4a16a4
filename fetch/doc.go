// Package fetch provides a thin, JSON-first convenience layer over net/http.
//
// It auto-serializes JSON payloads into request bodies, sets conventional
// headers (Content-Type, Accept) when the caller has not, builds query
// strings from an ordered parameter set, resolves relative URLs against a
// base URL, and eagerly parses response bodies as JSON while preserving the
// raw text and any parse error.
//
// Basic Usage:
//
//	client := fetch.NewClient(
//	    fetch.WithBaseURL("https://api.example.com"),
//	    fetch.WithTimeout(30*time.Second),
//	    fetch.WithHeader("Authorization", "Bearer token"),
//	)
//
//	req := fetch.NewRequest("GET", "/users").
//	    WithQueryParam("limit", "10")
//
//	resp, err := client.Do(context.Background(), req)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Status: %d\n", resp.StatusCode)
//	fmt.Printf("Body: %s\n", resp.Text)
//
// JSON Example:
//
//	req := fetch.NewRequest("POST", "/users").
//	    WithJSON(map[string]string{"name": "Ada"})
//
//	resp, err := client.Do(context.Background(), req)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// resp.JSON holds the parsed body; on parse failure it holds the raw
//	// text and resp.ParseErr carries the error. Network and serialization
//	// failures are returned as errors, a non-JSON body is not.
//
// Thread Safety:
//
// Client is safe for concurrent use. Multiple goroutines may invoke methods
// on a Client simultaneously. Requests and Responses are per-call values and
// must not be shared across concurrent calls.
package fetch
