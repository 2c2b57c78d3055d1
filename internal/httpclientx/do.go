package httpclientx

//
// do.go - send a request and read the response body.
//

import (
	"compress/gzip"
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"
)

// maxBodySize is the maximum response body size we're willing to read.
const maxBodySize = 1 << 24

func do(ctx context.Context, req *http.Request, config *Config) ([]byte, error) {
	requestID := uuid.NewString()

	// assign the fixed headers
	for key, value := range config.Headers {
		req.Header.Set(key, value)
	}
	if config.AuthToken != "" {
		switch config.AuthHeader {
		case "", "Authorization":
			req.Header.Set("Authorization", "Bearer "+config.AuthToken)
		default:
			req.Header.Set(config.AuthHeader, config.AuthToken)
		}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", config.UserAgent)
	req.Header.Set("X-Request-Id", requestID)

	config.Logger.Debugf("%s %s: request-id %s", req.Method, req.URL.String(), requestID)

	// send the request and get the response.
	resp, err := config.Client.Do(req)
	if err != nil {
		err = &ErrRequestFailed{Err: err}
		config.Logger.Warnf("%s %s: %s", req.Method, req.URL.String(), err.Error())
		return nil, err
	}

	// make sure we close the response body
	defer resp.Body.Close()

	// possibly handle gzip encoding
	var reader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gzreader, err := gzip.NewReader(reader)
		if err != nil {
			err = &ErrRequestFailed{StatusCode: resp.StatusCode, Err: err}
			config.Logger.Warnf("%s %s: %s", req.Method, req.URL.String(), err.Error())
			return nil, err
		}
		reader = gzreader
	}

	// read the response body
	rawrespbody, err := io.ReadAll(io.LimitReader(reader, maxBodySize))
	if err != nil {
		err = &ErrRequestFailed{StatusCode: resp.StatusCode, Err: err}
		config.Logger.Warnf("%s %s: %s", req.Method, req.URL.String(), err.Error())
		return nil, err
	}

	config.Logger.Debugf("%s %s: status %d, raw response body: %s",
		req.Method, req.URL.String(), resp.StatusCode, string(rawrespbody))

	// handle the case of failure
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := &ErrRequestFailed{StatusCode: resp.StatusCode}
		config.Logger.Warnf("%s %s: %s", req.Method, req.URL.String(), err.Error())
		return nil, err
	}

	return rawrespbody, nil
}
