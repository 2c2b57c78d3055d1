package wallet

import (
	"context"
	"net/http"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"github.com/nadia-api/nadia-cli/internal/httpclientx"
	"github.com/nadia-api/nadia-cli/internal/model"
	"github.com/nadia-api/nadia-cli/internal/testingx"
	"github.com/nadia-api/nadia-cli/internal/walletapi"
)

func init() {
	log.SetHandler(discard.New())
}

func newTestClient(t *testing.T, handler http.Handler) (*walletapi.Client, *testingx.HTTPRequestRecorder) {
	recorder := &testingx.HTTPRequestRecorder{Handler: handler}
	server := testingx.MustNewHTTPServer(recorder)
	t.Cleanup(server.Close)
	client := walletapi.NewClient(&walletapi.Options{
		BaseURL: server.URL,
		Token:   "expired",
	}, http.DefaultClient, model.DiscardLogger)
	return client, recorder
}

func TestShowListsProductsWhenBalanceFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("/api/user/wallet/balance.json", testingx.HTTPHandlerStatus(401, `{"message":"unauthorized"}`))
	mux.Handle("/api/user/limited/xl/package-list-all.json", testingx.HTTPHandlerStatus(200,
		`{"data":[{"package_code":"XL_1","package_name":"Combo","package_harga_int":12000}]}`))
	client, recorder := newTestClient(t, mux)

	err := show(context.Background(), client, 5)

	expectPaths := []string{
		"/api/user/wallet/balance.json",
		"/api/user/limited/xl/package-list-all.json",
	}
	if diff := cmp.Diff(expectPaths, recorder.Paths()); diff != "" {
		t.Fatal(diff)
	}
	merr, ok := err.(*multierror.Error)
	if !ok || len(merr.Errors) != 1 {
		t.Fatal("expected exactly one error", err)
	}
	if !httpclientx.IsUnauthorized(merr.Errors[0]) {
		t.Fatal("expected the balance 401", merr.Errors[0])
	}
}

func TestShowSucceeds(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("/api/user/wallet/balance.json", testingx.HTTPHandlerStatus(200, `{"balance":1000}`))
	mux.Handle("/api/user/limited/xl/package-list-all.json", testingx.HTTPHandlerStatus(200, `{"data":[]}`))
	client, _ := newTestClient(t, mux)

	if err := show(context.Background(), client, 5); err != nil {
		t.Fatal(err)
	}
}

func TestShowReportsBothFailures(t *testing.T) {
	client, _ := newTestClient(t, testingx.HTTPHandlerStatus(500, `{}`))

	err := show(context.Background(), client, 5)

	merr, ok := err.(*multierror.Error)
	if !ok || len(merr.Errors) != 2 {
		t.Fatal("expected two errors", err)
	}
}
