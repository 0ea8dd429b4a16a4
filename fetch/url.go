package fetch

import (
	"regexp"
	"strings"
)

// Matches scheme-prefixed absolute URLs ("https://h") and protocol-relative
// URLs ("//h").
var absoluteURLPattern = regexp.MustCompile(`(?i)^([a-z][a-z0-9+.\-]*:)?//`)

// isAbsoluteURL reports whether u should be used as-is instead of being
// joined onto a base URL.
func isAbsoluteURL(u string) bool {
	return absoluteURLPattern.MatchString(u)
}

// joinURL joins a base URL and a path with exactly one slash at the join
// point, regardless of trailing/leading slashes on either side.
func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// appendQuery appends an encoded query string to a URL. An empty encoded
// string leaves the URL unchanged.
func appendQuery(u, encoded string) string {
	if encoded == "" {
		return u
	}
	if strings.Contains(u, "?") {
		if strings.HasSuffix(u, "?") || strings.HasSuffix(u, "&") {
			return u + encoded
		}
		return u + "&" + encoded
	}
	return u + "?" + encoded
}
