package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wesleyorama2/gofetch/fetch"
)

// Formatter is responsible for formatting HTTP requests and responses in text format
type Formatter struct {
	Verbose bool
	NoColor bool
	scheme  *ColorScheme
}

// NewFormatter creates a new formatter with the given options
func NewFormatter(verbose, noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}
	return &Formatter{
		Verbose: verbose,
		NoColor: noColor,
		scheme:  scheme,
	}
}

// FormatRequest formats an outbound request for display
func (f *Formatter) FormatRequest(req *fetch.Request, baseURL string) string {
	var buf strings.Builder

	fullURL := req.URL
	if baseURL != "" && !strings.Contains(fullURL, "://") && !strings.HasPrefix(fullURL, "//") {
		fullURL = strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(fullURL, "/")
	}
	if req.Query != nil && req.Query.Len() > 0 {
		if encoded := req.Query.Encode(); encoded != "" {
			sep := "?"
			if strings.Contains(fullURL, "?") {
				sep = "&"
			}
			fullURL += sep + encoded
		}
	}

	buf.WriteString(fmt.Sprintf("▶ REQUEST: %s %s\n", f.scheme.Method.Sprint(req.Method), f.scheme.URL.Sprint(fullURL)))

	if f.Verbose && len(req.Headers) > 0 {
		buf.WriteString("  Headers:\n")
		for key, value := range req.Headers {
			buf.WriteString(fmt.Sprintf("    %s: %s\n", f.scheme.HeaderKey.Sprint(key), value))
		}
	}

	if req.Body != nil {
		buf.WriteString("  Body: ")
		switch body := req.Body.(type) {
		case string:
			buf.WriteString(formatJSONString(body))
		case []byte:
			buf.WriteString(formatJSONString(string(body)))
		default:
			buf.WriteString(fmt.Sprintf("%v", body))
		}
		buf.WriteString("\n")
	} else if req.JSON != nil {
		jsonBody, err := json.Marshal(req.JSON)
		if err != nil {
			buf.WriteString(fmt.Sprintf("  Body: %v\n", req.JSON))
		} else {
			buf.WriteString("  Body: " + formatJSONString(string(jsonBody)) + "\n")
		}
	}

	return buf.String()
}

// FormatResponse formats a normalized response for display
func (f *Formatter) FormatResponse(resp *fetch.Response) string {
	var buf strings.Builder

	statusColor := f.scheme.StatusError
	if resp.IsSuccess() {
		statusColor = f.scheme.StatusOK
	} else if resp.IsRedirect() {
		statusColor = f.scheme.StatusWarn
	}

	buf.WriteString(fmt.Sprintf("◀ RESPONSE: %s (%dms)\n",
		statusColor.Sprint(resp.Status),
		resp.GetResponseTimeMillis()))

	if resp.Redirected {
		buf.WriteString(fmt.Sprintf("  Redirected to: %s\n", f.scheme.URL.Sprint(resp.URL)))
	}

	if f.Verbose {
		buf.WriteString("  Timing:\n")
		buf.WriteString(fmt.Sprintf("    DNS Lookup:         %dms\n", resp.GetDNSLookupTimeMillis()))
		buf.WriteString(fmt.Sprintf("    TCP Connection:     %dms\n", resp.GetTCPConnectTimeMillis()))
		buf.WriteString(fmt.Sprintf("    TLS Handshake:      %dms\n", resp.GetTLSHandshakeTimeMillis()))
		buf.WriteString(fmt.Sprintf("    Time to First Byte: %dms\n", resp.GetTimeToFirstByteMillis()))
		buf.WriteString(fmt.Sprintf("    Content Transfer:   %dms\n", resp.GetContentTransferTimeMillis()))
		buf.WriteString(fmt.Sprintf("    Total:              %dms\n", resp.GetTotalTimeMillis()))

		buf.WriteString("  Headers:\n")
		for key, values := range resp.Headers {
			for _, value := range values {
				buf.WriteString(fmt.Sprintf("    %s: %s\n", f.scheme.HeaderKey.Sprint(key), value))
			}
		}
	}

	if resp.Text != "" {
		buf.WriteString("  Body: " + formatJSONString(resp.Text) + "\n")
	}

	if resp.ParseErr != nil && f.Verbose {
		buf.WriteString(fmt.Sprintf("  %s Body is not valid JSON: %v\n", WarningIcon(f.NoColor), resp.ParseErr))
	}

	return buf.String()
}

// formatJSONString pretty-prints a JSON string, or returns it unchanged when
// it is not valid JSON.
func formatJSONString(s string) string {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, []byte(s), "  ", "  "); err != nil {
		return s
	}
	return pretty.String()
}
