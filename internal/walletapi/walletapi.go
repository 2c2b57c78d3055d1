// Package walletapi is a client for the reseller wallet and product
// endpoints authenticated with an x-token header.
package walletapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nadia-api/nadia-cli/internal/httpclientx"
	"github.com/nadia-api/nadia-cli/internal/model"
)

const (
	balancePath        = "/api/user/wallet/balance.json"
	paymentMethodsPath = "/api/user/wallet/payment-methods.json"
	productsPath       = "/api/user/limited/xl/package-list-all.json"
)

// Product is a product of the wallet service.
type Product struct {
	Code  string `json:"package_code"`
	Name  string `json:"package_name"`
	Price int    `json:"package_harga_int"`
}

// Options contains the options for [NewClient].
type Options struct {
	// BaseURL is the MANDATORY base URL.
	BaseURL string

	// Token is the MANDATORY x-token value.
	Token string

	// Referer is the OPTIONAL Referer header value.
	Referer string

	// UserAgent is the OPTIONAL User-Agent; empty means the default one.
	UserAgent string
}

// Client is the wallet service client.
type Client struct {
	BaseURL *httpclientx.BaseURL
	Config  *httpclientx.Config
}

// NewClient creates a new [*Client].
func NewClient(opts *Options, client model.HTTPClient, logger model.Logger) *Client {
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = model.HTTPHeaderUserAgent
	}
	headers := map[string]string{}
	if opts.Referer != "" {
		headers["Referer"] = opts.Referer
	}
	return &Client{
		BaseURL: httpclientx.NewBaseURL(opts.BaseURL),
		Config: &httpclientx.Config{
			AuthHeader: "x-token",
			AuthToken:  opts.Token,
			Client:     client,
			Headers:    headers,
			Logger:     model.ValidLoggerOrDefault(logger),
			UserAgent:  userAgent,
		},
	}
}

// Balance returns the raw balance document.
func (c *Client) Balance(ctx context.Context) (json.RawMessage, error) {
	return httpclientx.Call(ctx, c.BaseURL, http.MethodGet, balancePath, nil, c.Config)
}

// PaymentMethods returns the raw payment methods document.
func (c *Client) PaymentMethods(ctx context.Context) (json.RawMessage, error) {
	return httpclientx.Call(ctx, c.BaseURL, http.MethodGet, paymentMethodsPath, nil, c.Config)
}

type productsResponse struct {
	Data []Product `json:"data"`
}

// Products returns all the products. A document without data yields an
// empty list.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	resp, err := httpclientx.GetJSON[*productsResponse](ctx, c.BaseURL, productsPath, nil, c.Config)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return []Product{}, nil
	}
	return resp.Data, nil
}
