package nadiaapi

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nadia-api/nadia-cli/internal/httpclientx"
	"github.com/nadia-api/nadia-cli/internal/model"
	"github.com/nadia-api/nadia-cli/internal/testingx"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *testingx.HTTPRequestRecorder) {
	recorder := &testingx.HTTPRequestRecorder{Handler: handler}
	server := testingx.MustNewHTTPServer(recorder)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "", http.DefaultClient, model.DiscardLogger), recorder
}

func TestSearchPackages(t *testing.T) {
	t.Run("unset optional fields are omitted", func(t *testing.T) {
		client, recorder := newTestClient(t, testingx.HTTPHandlerStatus(200, `{"success":true,"data":[]}`))

		result, err := client.SearchPackages(context.Background(), &SearchQuery{Query: "masa aktif"})
		if err != nil {
			t.Fatal(err)
		}
		if !result.OK() || len(result.Data()) != 0 {
			t.Fatal("unexpected result", result)
		}

		req := recorder.Requests()[0]
		if req.Method != "POST" || req.Path != "/packages" {
			t.Fatal("unexpected request", req.Method, req.Path)
		}
		if diff := cmp.Diff(`{"query":"masa aktif"}`, string(req.Body)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("all fields set", func(t *testing.T) {
		client, recorder := newTestClient(t, testingx.HTTPHandlerStatus(200, `{"success":true,"data":[]}`))

		query := &SearchQuery{Query: "combo", PaymentMethod: "BALANCE", MaxPrice: 10000, MinPrice: 1}
		if _, err := client.SearchPackages(context.Background(), query); err != nil {
			t.Fatal(err)
		}

		expect := `{"query":"combo","payment_method":"BALANCE","max_price":10000,"min_price":1}`
		if diff := cmp.Diff(expect, string(recorder.Requests()[0].Body)); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestGetBalance(t *testing.T) {
	client, recorder := newTestClient(t, testingx.HTTPHandlerStatus(200, `{"success":true,"data":{"balance":"Rp 50.000"}}`))

	result, err := client.GetBalance(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if string(result.Data().Balance) != `"Rp 50.000"` {
		t.Fatal("unexpected balance", string(result.Data().Balance))
	}
	req := recorder.Requests()[0]
	if req.Method != "GET" || req.Path != "/balance" || len(req.Body) != 0 {
		t.Fatal("unexpected request", req.Method, req.Path, string(req.Body))
	}
}

func TestRequestOTPFailure(t *testing.T) {
	client, _ := newTestClient(t, testingx.HTTPHandlerStatus(200, `{"success":false,"message":"invalid number"}`))

	result, err := client.RequestOTP(context.Background(), "0877")
	if err != nil {
		t.Fatal(err)
	}
	if result.OK() || result.Message() != "invalid number" {
		t.Fatal("unexpected result", result)
	}
}

func TestHTTPErrorIsNotAFailureResult(t *testing.T) {
	client, _ := newTestClient(t, testingx.HTTPHandlerStatus(500, `{"success":false,"message":"boom"}`))

	_, err := client.CheckTransaction(context.Background(), "trx")

	var reqerr *httpclientx.ErrRequestFailed
	if !errors.As(err, &reqerr) || reqerr.StatusCode != 500 {
		t.Fatal("expected a request failure", err)
	}
}

func TestLogin(t *testing.T) {
	client, recorder := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			w.Write([]byte(`{"success":true,"data":{"token":"nadia-token-1"}}`))
		default:
			w.Write([]byte(`{"success":true,"data":[]}`))
		}
	}))

	result, err := client.Login(context.Background(), "key")
	if err != nil {
		t.Fatal(err)
	}
	if !result.OK() {
		t.Fatal("expected success")
	}
	if _, err := client.GetPackageStock(context.Background()); err != nil {
		t.Fatal(err)
	}

	reqs := recorder.Requests()
	if string(reqs[0].Body) != `{"api_key":"key"}` {
		t.Fatal("unexpected login body", string(reqs[0].Body))
	}
	if got := reqs[1].Header.Get("Authorization"); got != "Bearer nadia-token-1" {
		t.Fatal("unexpected Authorization", got)
	}
}

func TestOperationsRequests(t *testing.T) {
	type testcase struct {
		name   string
		call   func(ctx context.Context, c *Client) error
		method string
		path   string
		body   string
	}

	cases := []testcase{{
		name: "RequestOTP",
		call: func(ctx context.Context, c *Client) error {
			_, err := c.RequestOTP(ctx, "0877")
			return err
		},
		method: "POST",
		path:   "/otp/request",
		body:   `{"phone_number":"0877"}`,
	}, {
		name: "VerifyOTP",
		call: func(ctx context.Context, c *Client) error {
			_, err := c.VerifyOTP(ctx, "0877", "1234")
			return err
		},
		method: "POST",
		path:   "/otp/verify",
		body:   `{"otp_code":"1234","phone_number":"0877"}`,
	}, {
		name: "PurchasePackage",
		call: func(ctx context.Context, c *Client) error {
			_, err := c.PurchasePackage(ctx, &PurchaseRequest{
				PhoneNumber:   "0877",
				PackageCode:   "XLC",
				PaymentMethod: "DANA",
				OTPCode:       "1234",
			})
			return err
		},
		method: "POST",
		path:   "/purchase",
		body:   `{"phone_number":"0877","package_code":"XLC","payment_method":"DANA","otp_code":"1234"}`,
	}, {
		name: "CheckCardStatus",
		call: func(ctx context.Context, c *Client) error {
			_, err := c.CheckCardStatus(ctx, "0877", "1234")
			return err
		},
		method: "POST",
		path:   "/card/status",
		body:   `{"otp_code":"1234","phone_number":"0877"}`,
	}, {
		name: "CheckActivePackages",
		call: func(ctx context.Context, c *Client) error {
			_, err := c.CheckActivePackages(ctx, "0877", "1234")
			return err
		},
		method: "POST",
		path:   "/card/packages",
		body:   `{"otp_code":"1234","phone_number":"0877"}`,
	}, {
		name: "CheckTransaction",
		call: func(ctx context.Context, c *Client) error {
			_, err := c.CheckTransaction(ctx, "TRX1")
			return err
		},
		method: "POST",
		path:   "/transaction/check",
		body:   `{"transaction_id":"TRX1"}`,
	}, {
		name: "GetPackageStock",
		call: func(ctx context.Context, c *Client) error {
			_, err := c.GetPackageStock(ctx)
			return err
		},
		method: "GET",
		path:   "/packages/stock",
	}, {
		name: "GetPaymentMethods",
		call: func(ctx context.Context, c *Client) error {
			_, err := c.GetPaymentMethods(ctx)
			return err
		},
		method: "GET",
		path:   "/payment-methods",
	}}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, recorder := newTestClient(t, testingx.HTTPHandlerStatus(200, `{"success":true}`))

			if err := tc.call(context.Background(), client); err != nil {
				t.Fatal(err)
			}

			req := recorder.Requests()[0]
			if req.Method != tc.method || req.Path != tc.path {
				t.Fatal("unexpected request", req.Method, req.Path)
			}
			if diff := cmp.Diff(tc.body, string(req.Body)); diff != "" {
				t.Fatal(diff)
			}
			if req.RawQuery != "" {
				t.Fatal("unexpected query", req.RawQuery)
			}
		})
	}
}

func TestSearchPackagesPrice(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		expect int
	}{{
		name:   "package_harga_int",
		body:   `{"success":true,"data":[{"package_code":"XL_MASTIF_30D_P_V1","package_name":"Masa Aktif 30 Hari","package_harga_int":5000,"package_harga":"Rp 5.000"}]}`,
		expect: 5000,
	}, {
		name:   "package_price",
		body:   `{"success":true,"data":[{"package_code":"XL_MASTIF_30D_P_V1","package_name":"Masa Aktif 30 Hari","package_price":4000}]}`,
		expect: 4000,
	}, {
		name:   "both keys",
		body:   `{"success":true,"data":[{"package_code":"XL_MASTIF_30D_P_V1","package_harga_int":5000,"package_price":4000}]}`,
		expect: 5000,
	}}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, testingx.HTTPHandlerStatus(200, tc.body))

			result, err := client.SearchPackages(context.Background(), &SearchQuery{Query: "masa aktif"})
			if err != nil {
				t.Fatal(err)
			}
			if len(result.Data()) != 1 {
				t.Fatal("unexpected data", result.Data())
			}
			if got := result.Data()[0]; got.Price != tc.expect || got.Code != "XL_MASTIF_30D_P_V1" {
				t.Fatal("unexpected package", got)
			}
		})
	}
}
