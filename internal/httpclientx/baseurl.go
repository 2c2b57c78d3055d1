package httpclientx

import (
	"net/url"
	"strings"
)

// BaseURL is the base URL of a remote API.
//
// Construct using [NewBaseURL].
type BaseURL struct {
	// Value is the MANDATORY base URL without trailing slash.
	Value string
}

// NewBaseURL constructs a new [*BaseURL] instance using the given URL.
func NewBaseURL(URL string) *BaseURL {
	return &BaseURL{Value: strings.TrimSuffix(URL, "/")}
}

// WithPath returns the URL obtained by appending path to the base URL.
func (b *BaseURL) WithPath(path string) string {
	if path == "" {
		return b.Value
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return b.Value + path
}

// WithQuery returns the URL obtained by appending path and the encoded
// query to the base URL. An empty query leaves the URL without "?".
func (b *BaseURL) WithQuery(path string, query url.Values) string {
	URL := b.WithPath(path)
	if len(query) <= 0 {
		return URL
	}
	return URL + "?" + query.Encode()
}
