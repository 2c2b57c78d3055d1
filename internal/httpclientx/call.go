package httpclientx

//
// call.go - send a request with an optional payload and read a JSON response.
//

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// Call sends a request using the given method and returns the raw JSON body.
//
// Arguments:
//
// - ctx is the cancellable context;
//
// - base is the [*BaseURL] of the API;
//
// - method is the HTTP method;
//
// - path is appended to the base URL;
//
// - payload is the OPTIONAL payload, which we encode as query parameters
// for GET requests and as a JSON body for any other method;
//
// - config is the config to use.
//
// This function either returns an error or a syntactically valid JSON body. The
// error is an [*ErrRequestFailed] on transport failures and non-2xx status codes
// and an [*ErrParseFailed] when the body is not valid JSON.
func Call(ctx context.Context, base *BaseURL, method, path string,
	payload any, config *Config) (json.RawMessage, error) {
	req, err := newRequest(ctx, base, method, path, payload, config)
	if err != nil {
		return nil, err
	}

	// get the raw response body
	rawrespbody, err := do(ctx, req, config)
	if err != nil {
		return nil, err
	}

	// make sure it's actually JSON
	var probe any
	if err := json.Unmarshal(rawrespbody, &probe); err != nil {
		err := &ErrParseFailed{Err: err}
		config.Logger.Warnf("%s %s: %s", req.Method, req.URL.String(), err.Error())
		return nil, err
	}

	return rawrespbody, nil
}

// DoJSON is like [Call] but additionally parses the response body as Output.
func DoJSON[Output any](ctx context.Context, base *BaseURL, method, path string,
	payload any, config *Config) (Output, error) {
	rawrespbody, err := Call(ctx, base, method, path, payload, config)
	if err != nil {
		return zeroValue[Output](), err
	}
	return unmarshal[Output](rawrespbody, config)
}

func newRequest(ctx context.Context, base *BaseURL, method, path string,
	payload any, config *Config) (*http.Request, error) {
	method = strings.ToUpper(method)

	// GET never has a body: the payload goes into the query string
	if method == http.MethodGet {
		query, err := encodeQuery(payload)
		if err != nil {
			return nil, err
		}
		return http.NewRequestWithContext(ctx, method, base.WithQuery(path, query), nil)
	}

	// any other method never has a query: the payload goes into the body
	var body io.Reader
	if !isNil(payload) {
		rawreqbody, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		config.Logger.Debugf("%s %s: raw request body: %s", method, base.WithPath(path), string(rawreqbody))
		body = bytes.NewReader(rawreqbody)
	}
	return http.NewRequestWithContext(ctx, method, base.WithPath(path), body)
}

func unmarshal[Output any](rawrespbody []byte, config *Config) (Output, error) {
	var output Output
	if err := json.Unmarshal(rawrespbody, &output); err != nil {
		err := &ErrParseFailed{Err: err}
		config.Logger.Warnf("httpclientx: %s", err.Error())
		return zeroValue[Output](), err
	}
	return output, nil
}

func zeroValue[Type any]() Type {
	return *new(Type)
}
