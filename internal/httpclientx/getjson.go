package httpclientx

//
// getjson.go - GET a JSON response.
//

import (
	"context"
	"net/http"
)

// GetJSON sends a GET request and reads a JSON response.
//
// Arguments:
//
// - ctx is the cancellable context;
//
// - base is the [*BaseURL] to use;
//
// - path is appended to the base URL;
//
// - query is the OPTIONAL payload to encode as query parameters;
//
// - config contains the config.
//
// This function either returns an error or a valid Output.
func GetJSON[Output any](ctx context.Context, base *BaseURL, path string, query any, config *Config) (Output, error) {
	return DoJSON[Output](ctx, base, http.MethodGet, path, query, config)
}
