package model

import "net/http"

// HTTPClient is the HTTP client used by the API clients. The
// standard library [*http.Client] satisfies this interface.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPHeaderUserAgent is the default User-Agent header value.
const HTTPHeaderUserAgent = "Nadia-Go-Client/2.0"
