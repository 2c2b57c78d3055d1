// Package nadiaapi is a client for the Nadia mobile top-up API.
package nadiaapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nadia-api/nadia-cli/internal/httpclientx"
	"github.com/nadia-api/nadia-cli/internal/model"
)

// Client is the Nadia API client.
type Client struct {
	// BaseURL is the MANDATORY API base URL.
	BaseURL *httpclientx.BaseURL

	// Config is the MANDATORY transport config.
	Config *httpclientx.Config
}

// NewClient creates a [*Client] for the API at baseURL using the given
// token (possibly empty), HTTP client, and logger.
func NewClient(baseURL, token string, client model.HTTPClient, logger model.Logger) *Client {
	return &Client{
		BaseURL: httpclientx.NewBaseURL(baseURL),
		Config: &httpclientx.Config{
			AuthToken: token,
			Client:    client,
			Logger:    model.ValidLoggerOrDefault(logger),
			UserAgent: model.HTTPHeaderUserAgent,
		},
	}
}

func call[T any](ctx context.Context, c *Client, method, path string, payload any) (Result[T], error) {
	raw, err := httpclientx.Call(ctx, c.BaseURL, method, path, payload, c.Config)
	if err != nil {
		return Result[T]{}, err
	}
	result, err := DecodeResult[T](raw)
	if err != nil {
		c.Config.Logger.Warnf("%s %s: %s", method, path, err.Error())
		return Result[T]{}, err
	}
	return result, nil
}

// Login exchanges the API key for a token and, on success, uses the token
// for all the following requests.
func (c *Client) Login(ctx context.Context, apiKey string) (Result[AuthData], error) {
	result, err := call[AuthData](ctx, c, http.MethodPost, "/auth/login", map[string]string{
		"api_key": apiKey,
	})
	if err == nil && result.OK() && result.Data().Token != "" {
		c.Config.AuthToken = result.Data().Token
	}
	return result, err
}

// SearchPackages searches for packages matching the query.
func (c *Client) SearchPackages(ctx context.Context, query *SearchQuery) (Result[[]Package], error) {
	return call[[]Package](ctx, c, http.MethodPost, "/packages", query)
}

// RequestOTP asks the server to send an OTP to the given phone number.
func (c *Client) RequestOTP(ctx context.Context, phone string) (Result[OTPData], error) {
	return call[OTPData](ctx, c, http.MethodPost, "/otp/request", map[string]string{
		"phone_number": phone,
	})
}

// VerifyOTP checks an OTP without consuming it for an operation.
func (c *Client) VerifyOTP(ctx context.Context, phone, otp string) (Result[map[string]any], error) {
	return call[map[string]any](ctx, c, http.MethodPost, "/otp/verify", map[string]string{
		"phone_number": phone,
		"otp_code":     otp,
	})
}

// PurchasePackage purchases a package.
func (c *Client) PurchasePackage(ctx context.Context, req *PurchaseRequest) (Result[PurchaseData], error) {
	return call[PurchaseData](ctx, c, http.MethodPost, "/purchase", req)
}

// CheckCardStatus returns the status of the SIM card.
func (c *Client) CheckCardStatus(ctx context.Context, phone, otp string) (Result[CardStatus], error) {
	return call[CardStatus](ctx, c, http.MethodPost, "/card/status", map[string]string{
		"phone_number": phone,
		"otp_code":     otp,
	})
}

// CheckActivePackages returns the packages active on the SIM card.
func (c *Client) CheckActivePackages(ctx context.Context, phone, otp string) (Result[ActivePackages], error) {
	return call[ActivePackages](ctx, c, http.MethodPost, "/card/packages", map[string]string{
		"phone_number": phone,
		"otp_code":     otp,
	})
}

// GetBalance returns the account balance.
func (c *Client) GetBalance(ctx context.Context) (Result[Balance], error) {
	return call[Balance](ctx, c, http.MethodGet, "/balance", nil)
}

// CheckTransaction returns the status of a transaction. The status
// schema belongs to the server so we keep it as raw JSON.
func (c *Client) CheckTransaction(ctx context.Context, trxID string) (Result[json.RawMessage], error) {
	return call[json.RawMessage](ctx, c, http.MethodPost, "/transaction/check", map[string]string{
		"transaction_id": trxID,
	})
}

// GetPackageStock returns the stock of each package.
func (c *Client) GetPackageStock(ctx context.Context) (Result[[]PackageStock], error) {
	return call[[]PackageStock](ctx, c, http.MethodGet, "/packages/stock", nil)
}

// GetPaymentMethods returns the accepted payment methods.
func (c *Client) GetPaymentMethods(ctx context.Context) (Result[[]PaymentMethod], error) {
	return call[[]PaymentMethod](ctx, c, http.MethodGet, "/payment-methods", nil)
}
