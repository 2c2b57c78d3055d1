package httpclientx

//
// postjson.go - POST a JSON request and read a JSON response.
//

import (
	"context"
	"net/http"
)

// PostJSON sends a POST request with a JSON body and reads a JSON response.
//
// Arguments:
//
// - ctx is the cancellable context;
//
// - base is the [*BaseURL] to use;
//
// - path is appended to the base URL;
//
// - input is the input structure to JSON serialize as the request body;
//
// - config is the config to use.
//
// This function either returns an error or a valid Output.
func PostJSON[Input, Output any](ctx context.Context, base *BaseURL, path string, input Input, config *Config) (Output, error) {
	return DoJSON[Output](ctx, base, http.MethodPost, path, input, config)
}
