package flow

import (
	"context"
	"time"

	"github.com/apex/log"
	"github.com/nadia-api/nadia-cli/internal/nadiaapi"
	"github.com/nadia-api/nadia-cli/internal/output"
)

// DefaultTransactionDelay is the default wait before checking a transaction.
const DefaultTransactionDelay = 2 * time.Second

// Purchase is the search, OTP, purchase, and transaction check flow.
type Purchase struct {
	// API is the MANDATORY API.
	API API

	// OTP is the MANDATORY source of the OTP code.
	OTP OTPSource

	// Phone is the MANDATORY phone number.
	Phone string

	// Query is the OPTIONAL package search query.
	Query nadiaapi.SearchQuery

	// PaymentMethod is the MANDATORY payment method.
	PaymentMethod string

	// Source is the OPTIONAL purchase source tag.
	Source string

	// TransactionDelay is the OPTIONAL wait before checking the
	// transaction. Zero means [DefaultTransactionDelay].
	TransactionDelay time.Duration

	// Sleep is the OPTIONAL function used to wait. Nil means [Sleep].
	Sleep func(ctx context.Context, d time.Duration) error
}

// Run runs the purchase flow.
func (f *Purchase) Run(ctx context.Context) (*Report, error) {
	var (
		selected nadiaapi.Package
		otpCode  string
		trxID    string
	)
	p := &Pipeline{}

	p.Then("search", func(ctx context.Context) (Outcome, error) {
		output.SectionTitle("1. Searching for packages")
		result, err := f.API.SearchPackages(ctx, &f.Query)
		if err != nil {
			return Outcome{}, err
		}
		output.PackageSearch(result)
		if !result.OK() || len(result.Data()) <= 0 {
			return Halt("No packages found"), nil
		}
		selected = result.Data()[0]
		log.Infof("Selected package: %s (%s)", selected.Name, selected.Code)
		return Continue(), nil
	})

	p.Then("request-otp", func(ctx context.Context) (Outcome, error) {
		output.SectionTitle("2. Requesting OTP")
		result, err := f.API.RequestOTP(ctx, f.Phone)
		if err != nil {
			return Outcome{}, err
		}
		output.OTPRequest(result)
		if !result.OK() {
			return Halt("OTP request failed"), nil
		}
		return Continue(), nil
	})

	p.Then("enter-otp", func(ctx context.Context) (Outcome, error) {
		code, err := f.OTP.OTP(ctx, f.Phone)
		if err != nil {
			return Outcome{}, err
		}
		otpCode = code
		return Continue(), nil
	})

	p.Then("purchase", func(ctx context.Context) (Outcome, error) {
		output.SectionTitle("3. Purchasing package")
		result, err := f.API.PurchasePackage(ctx, &nadiaapi.PurchaseRequest{
			PhoneNumber:   f.Phone,
			PackageCode:   selected.Code,
			PaymentMethod: f.PaymentMethod,
			OTPCode:       otpCode,
			Source:        f.Source,
		})
		if err != nil {
			return Outcome{}, err
		}
		output.Purchase(result)
		if !result.OK() {
			return Halt("Purchase failed"), nil
		}
		trxID = result.Data().TrxID
		return Continue(), nil
	})

	p.Then("check-transaction", func(ctx context.Context) (Outcome, error) {
		if trxID == "" {
			log.Warn("No transaction ID, skipping the transaction check")
			return Continue(), nil
		}
		output.SectionTitle("4. Checking transaction status")
		if err := f.sleep(ctx, f.transactionDelay()); err != nil {
			return Outcome{}, err
		}
		result, err := f.API.CheckTransaction(ctx, trxID)
		if err != nil {
			return Outcome{}, err
		}
		output.Transaction(result)
		return Continue(), nil
	})

	return p.Run(ctx)
}

func (f *Purchase) transactionDelay() time.Duration {
	if f.TransactionDelay <= 0 {
		return DefaultTransactionDelay
	}
	return f.TransactionDelay
}

func (f *Purchase) sleep(ctx context.Context, d time.Duration) error {
	if f.Sleep != nil {
		return f.Sleep(ctx, d)
	}
	return Sleep(ctx, d)
}
