package bulkfetch

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/google/go-cmp/cmp"
	"github.com/nadia-api/nadia-cli/internal/httpclientx"
	"github.com/nadia-api/nadia-cli/internal/model"
	"github.com/nadia-api/nadia-cli/internal/testingx"
)

func init() {
	log.SetHandler(discard.New())
}

func newTestFetcher(t *testing.T, handler http.Handler, endpoints map[string]string) *Fetcher {
	server := testingx.MustNewHTTPServer(handler)
	t.Cleanup(server.Close)
	return &Fetcher{
		BaseURL: httpclientx.NewBaseURL(server.URL),
		Config: &httpclientx.Config{
			AuthHeader: "x-token",
			AuthToken:  "secret",
			Client:     http.DefaultClient,
			Logger:     model.DiscardLogger,
			UserAgent:  model.HTTPHeaderUserAgent,
		},
		Endpoints: endpoints,
		OutputDir: filepath.Join(t.TempDir(), "api_responses"),
	}
}

func TestRunContinuesAfterFailures(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("/a.json", testingx.HTTPHandlerStatus(401, `{"message":"expired"}`))
	mux.Handle("/b.json", testingx.HTTPHandlerStatus(200, `{"success":true,"data":{"saldo":"Rp 1.000"}}`))
	mux.Handle("/c.json", testingx.HTTPHandlerStatus(200, `<html>`))

	fetcher := newTestFetcher(t, mux, map[string]string{
		"a": "/a.json",
		"b": "/b.json",
		"c": "/c.json",
	})

	report, err := fetcher.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	// B is written even though A failed before it
	bpath := filepath.Join(fetcher.OutputDir, "b.json")
	if diff := cmp.Diff([]string{bpath}, report.Written); diff != "" {
		t.Fatal(diff)
	}
	data, err := os.ReadFile(bpath)
	if err != nil {
		t.Fatal(err)
	}
	expect := "{\n  \"success\": true,\n  \"data\": {\n    \"saldo\": \"Rp 1.000\"\n  }\n}\n"
	if diff := cmp.Diff(expect, string(data)); diff != "" {
		t.Fatal(diff)
	}

	// A and C are not written
	for _, name := range []string{"a.json", "c.json"} {
		if _, err := os.Stat(filepath.Join(fetcher.OutputDir, name)); !errors.Is(err, os.ErrNotExist) {
			t.Fatal("expected no file for", name)
		}
	}

	// and both failures are in the report
	if report.Err() == nil || len(report.Errors.Errors) != 2 {
		t.Fatal("expected two errors", report.Err())
	}
	var epnterr *EndpointError
	if !errors.As(report.Errors.Errors[0], &epnterr) || epnterr.Name != "a" {
		t.Fatal("unexpected first error", report.Errors.Errors[0])
	}
	if httpclientx.StatusCode(report.Errors.Errors[0]) != 401 {
		t.Fatal("expected a 401")
	}
	var parseerr *httpclientx.ErrParseFailed
	if !errors.As(report.Errors.Errors[1], &parseerr) {
		t.Fatal("expected a parse error", report.Errors.Errors[1])
	}
}

func TestRunSendsAuthHeader(t *testing.T) {
	recorder := &testingx.HTTPRequestRecorder{
		Handler: testingx.HTTPHandlerStatus(200, `[]`),
	}
	fetcher := newTestFetcher(t, recorder, nil)
	fetcher.Progress = &bytes.Buffer{}

	report, err := fetcher.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if report.Err() != nil || len(report.Written) != len(DefaultEndpoints) {
		t.Fatal("unexpected report", report.Written, report.Err())
	}
	expectPaths := []string{
		"/api/user/wallet/balance.json",
		"/api/user/wallet/payment-methods.json",
		"/api/user/limited/xl/package-list-all.json",
	}
	if diff := cmp.Diff(expectPaths, recorder.Paths()); diff != "" {
		t.Fatal(diff)
	}
	for _, req := range recorder.Requests() {
		if req.Header.Get("x-token") != "secret" {
			t.Fatal("missing x-token header")
		}
	}
}

func TestRunCannotCreateOutputDir(t *testing.T) {
	fetcher := newTestFetcher(t, testingx.HTTPHandlerStatus(200, `{}`), nil)
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0600); err != nil {
		t.Fatal(err)
	}
	fetcher.OutputDir = filepath.Join(blocker, "out")

	report, err := fetcher.Run(context.Background())
	if err == nil || report != nil {
		t.Fatal("expected an error")
	}
}
