package httpclientx

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nadia-api/nadia-cli/internal/model"
	"github.com/nadia-api/nadia-cli/internal/testingx"
)

func newTestConfig() *Config {
	return &Config{
		Client:    http.DefaultClient,
		Logger:    model.DiscardLogger,
		UserAgent: model.HTTPHeaderUserAgent,
	}
}

type searchPayload struct {
	Query    string `json:"query,omitempty"`
	MaxPrice int    `json:"max_price,omitempty"`
}

func TestCallPayloadPlacement(t *testing.T) {
	payload := map[string]any{
		"query":     "masa aktif",
		"max_price": 5000,
		"tags":      []string{"a", "b"},
		"nothing":   nil,
	}

	t.Run("GET places the payload into the query string", func(t *testing.T) {
		recorder := &testingx.HTTPRequestRecorder{
			Handler: testingx.HTTPHandlerStatus(200, `{"success":true}`),
		}
		server := testingx.MustNewHTTPServer(recorder)
		defer server.Close()

		_, err := Call(context.Background(), NewBaseURL(server.URL), "GET", "/balance", payload, newTestConfig())
		if err != nil {
			t.Fatal(err)
		}

		reqs := recorder.Requests()
		if len(reqs) != 1 {
			t.Fatal("expected one request, got", len(reqs))
		}
		if len(reqs[0].Body) != 0 {
			t.Fatal("expected no body, got", string(reqs[0].Body))
		}
		query, err := url.ParseQuery(reqs[0].RawQuery)
		if err != nil {
			t.Fatal(err)
		}
		expect := url.Values{
			"query":     {"masa aktif"},
			"max_price": {"5000"},
			"tags":      {"a", "b"},
		}
		if diff := cmp.Diff(expect, query); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("POST places the payload into the body", func(t *testing.T) {
		recorder := &testingx.HTTPRequestRecorder{
			Handler: testingx.HTTPHandlerStatus(200, `{"success":true}`),
		}
		server := testingx.MustNewHTTPServer(recorder)
		defer server.Close()

		_, err := Call(context.Background(), NewBaseURL(server.URL), "post", "/packages", payload, newTestConfig())
		if err != nil {
			t.Fatal(err)
		}

		reqs := recorder.Requests()
		if reqs[0].Method != "POST" {
			t.Fatal("unexpected method", reqs[0].Method)
		}
		if reqs[0].RawQuery != "" {
			t.Fatal("expected no query, got", reqs[0].RawQuery)
		}
		var got map[string]any
		if err := json.Unmarshal(reqs[0].Body, &got); err != nil {
			t.Fatal(err)
		}
		expect := map[string]any{
			"query":     "masa aktif",
			"max_price": float64(5000),
			"tags":      []any{"a", "b"},
			"nothing":   nil,
		}
		if diff := cmp.Diff(expect, got); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("omitempty fields never reach the wire", func(t *testing.T) {
		recorder := &testingx.HTTPRequestRecorder{
			Handler: testingx.HTTPHandlerStatus(200, `{"success":true}`),
		}
		server := testingx.MustNewHTTPServer(recorder)
		defer server.Close()

		base := NewBaseURL(server.URL)
		if _, err := Call(context.Background(), base, "POST", "/packages", &searchPayload{}, newTestConfig()); err != nil {
			t.Fatal(err)
		}
		if _, err := Call(context.Background(), base, "GET", "/packages", &searchPayload{}, newTestConfig()); err != nil {
			t.Fatal(err)
		}

		reqs := recorder.Requests()
		if string(reqs[0].Body) != "{}" {
			t.Fatal("unexpected body", string(reqs[0].Body))
		}
		if reqs[1].RawQuery != "" {
			t.Fatal("unexpected query", reqs[1].RawQuery)
		}
	})

	t.Run("nil payload means no body", func(t *testing.T) {
		recorder := &testingx.HTTPRequestRecorder{
			Handler: testingx.HTTPHandlerStatus(200, `[]`),
		}
		server := testingx.MustNewHTTPServer(recorder)
		defer server.Close()

		var payload map[string]any
		if _, err := Call(context.Background(), NewBaseURL(server.URL), "POST", "/x", payload, newTestConfig()); err != nil {
			t.Fatal(err)
		}
		if body := recorder.Requests()[0].Body; len(body) != 0 {
			t.Fatal("unexpected body", string(body))
		}
	})
}

func TestCallHeaders(t *testing.T) {
	recorder := &testingx.HTTPRequestRecorder{
		Handler: testingx.HTTPHandlerStatus(200, `{}`),
	}
	server := testingx.MustNewHTTPServer(recorder)
	defer server.Close()

	t.Run("with the default auth header", func(t *testing.T) {
		config := newTestConfig()
		config.AuthToken = "xo"
		if _, err := Call(context.Background(), NewBaseURL(server.URL), "GET", "/", nil, config); err != nil {
			t.Fatal(err)
		}
		header := recorder.Requests()[0].Header
		if header.Get("Authorization") != "Bearer xo" {
			t.Fatal("unexpected Authorization", header.Get("Authorization"))
		}
		if header.Get("User-Agent") != model.HTTPHeaderUserAgent {
			t.Fatal("unexpected User-Agent", header.Get("User-Agent"))
		}
		if header.Get("Content-Type") != "application/json" {
			t.Fatal("unexpected Content-Type", header.Get("Content-Type"))
		}
		if header.Get("X-Request-Id") == "" {
			t.Fatal("expected a request ID")
		}
	})

	t.Run("with a custom auth header and extra headers", func(t *testing.T) {
		config := newTestConfig()
		config.AuthHeader = "x-token"
		config.AuthToken = "xo"
		config.Headers = map[string]string{"Referer": "https://example.com/"}
		if _, err := Call(context.Background(), NewBaseURL(server.URL), "GET", "/", nil, config); err != nil {
			t.Fatal(err)
		}
		header := recorder.Requests()[1].Header
		if header.Get("x-token") != "xo" {
			t.Fatal("unexpected x-token", header.Get("x-token"))
		}
		if header.Get("Authorization") != "" {
			t.Fatal("unexpected Authorization", header.Get("Authorization"))
		}
		if header.Get("Referer") != "https://example.com/" {
			t.Fatal("unexpected Referer", header.Get("Referer"))
		}
	})
}

func TestCallErrors(t *testing.T) {
	t.Run("in case of transport failure", func(t *testing.T) {
		server := testingx.MustNewHTTPServer(testingx.HTTPHandlerReset())
		defer server.Close()

		resp, err := Call(context.Background(), NewBaseURL(server.URL), "POST", "/", nil, newTestConfig())

		var reqerr *ErrRequestFailed
		if !errors.As(err, &reqerr) {
			t.Fatal("not an *ErrRequestFailed instance", err)
		}
		if reqerr.StatusCode != 0 || reqerr.Err == nil {
			t.Fatal("unexpected error fields", reqerr.StatusCode, reqerr.Err)
		}
		if resp != nil {
			t.Fatal("expected nil response")
		}
	})

	t.Run("in case of non-2xx status", func(t *testing.T) {
		server := testingx.MustNewHTTPServer(testingx.HTTPHandlerStatus(401, `{"success":false}`))
		defer server.Close()

		resp, err := Call(context.Background(), NewBaseURL(server.URL), "GET", "/", nil, newTestConfig())

		if err == nil || err.Error() != "httpclientx: request failed: status 401" {
			t.Fatal("unexpected error", err)
		}
		if StatusCode(err) != 401 || !IsUnauthorized(err) {
			t.Fatal("expected a 401 error")
		}
		if resp != nil {
			t.Fatal("expected nil response")
		}
	})

	t.Run("in case of non-JSON body", func(t *testing.T) {
		server := testingx.MustNewHTTPServer(testingx.HTTPHandlerStatus(200, `<html></html>`))
		defer server.Close()

		resp, err := Call(context.Background(), NewBaseURL(server.URL), "GET", "/", nil, newTestConfig())

		var parseerr *ErrParseFailed
		if !errors.As(err, &parseerr) {
			t.Fatal("not an *ErrParseFailed instance", err)
		}
		if StatusCode(err) != 0 {
			t.Fatal("a parse error has no status code")
		}
		if resp != nil {
			t.Fatal("expected nil response")
		}
	})

	t.Run("when we cannot create a request", func(t *testing.T) {
		_, err := Call(context.Background(), NewBaseURL("\t"), "GET", "", nil, newTestConfig())
		if err == nil || err.Error() != `parse "\t": net/url: invalid control character in URL` {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("when we cannot marshal the request body", func(t *testing.T) {
		_, err := Call(context.Background(), NewBaseURL("http://127.0.0.1"), "POST", "/", make(chan int), newTestConfig())
		if err == nil || err.Error() != "json: unsupported type: chan int" {
			t.Fatal("unexpected error", err)
		}
	})
}

func TestCallGETPayloadMustBeAnObject(t *testing.T) {
	recorder := &testingx.HTTPRequestRecorder{
		Handler: testingx.HTTPHandlerStatus(200, `{}`),
	}
	server := testingx.MustNewHTTPServer(recorder)
	defer server.Close()

	for _, payload := range []any{[]string{"a"}, "masa aktif", 5000, true} {
		_, err := Call(context.Background(), NewBaseURL(server.URL), "GET", "/packages", payload, newTestConfig())
		if !errors.Is(err, ErrQueryNotObject) {
			t.Fatal("unexpected error", payload, err)
		}
	}
	if len(recorder.Requests()) != 0 {
		t.Fatal("should not have sent any request")
	}

	var query *searchPayload
	if _, err := Call(context.Background(), NewBaseURL(server.URL), "GET", "/packages", query, newTestConfig()); err != nil {
		t.Fatal(err)
	}
}

func TestGzipDecompression(t *testing.T) {
	expected := []byte(`{"success":true,"data":{"balance":"Rp 10.000"}}`)

	server := testingx.MustNewHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var buffer bytes.Buffer
		writer := gzip.NewWriter(&buffer)
		writer.Write(expected)
		writer.Close()
		w.Header().Add("Content-Encoding", "gzip")
		w.Write(buffer.Bytes())
	}))
	defer server.Close()

	// use a transport that does not transparently decompress
	client := &http.Client{Transport: &http.Transport{DisableCompression: true}}
	config := newTestConfig()
	config.Client = client

	respbody, err := Call(context.Background(), NewBaseURL(server.URL), "GET", "/", nil, config)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(expected, []byte(respbody)); diff != "" {
		t.Fatal(diff)
	}
}
