package flow

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nadia-api/nadia-cli/internal/nadiaapi"
)

// API is the subset of [*nadiaapi.Client] used by the flows.
type API interface {
	SearchPackages(ctx context.Context, query *nadiaapi.SearchQuery) (nadiaapi.Result[[]nadiaapi.Package], error)
	RequestOTP(ctx context.Context, phone string) (nadiaapi.Result[nadiaapi.OTPData], error)
	PurchasePackage(ctx context.Context, req *nadiaapi.PurchaseRequest) (nadiaapi.Result[nadiaapi.PurchaseData], error)
	CheckTransaction(ctx context.Context, trxID string) (nadiaapi.Result[json.RawMessage], error)
	CheckCardStatus(ctx context.Context, phone, otp string) (nadiaapi.Result[nadiaapi.CardStatus], error)
	CheckActivePackages(ctx context.Context, phone, otp string) (nadiaapi.Result[nadiaapi.ActivePackages], error)
	GetBalance(ctx context.Context) (nadiaapi.Result[nadiaapi.Balance], error)
	GetPackageStock(ctx context.Context) (nadiaapi.Result[[]nadiaapi.PackageStock], error)
}

var _ API = &nadiaapi.Client{}

// OTPSource obtains the OTP the user received by SMS.
type OTPSource interface {
	OTP(ctx context.Context, phone string) (string, error)
}

// FixedOTP is an [OTPSource] always returning the same code.
type FixedOTP string

// OTP implements OTPSource.
func (code FixedOTP) OTP(ctx context.Context, phone string) (string, error) {
	return string(code), nil
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
