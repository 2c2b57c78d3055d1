package flow

import (
	"context"

	"github.com/nadia-api/nadia-cli/internal/output"
)

// Card is the OTP, card status, and active packages flow.
type Card struct {
	// API is the MANDATORY API.
	API API

	// OTP is the MANDATORY source of the OTP code.
	OTP OTPSource

	// Phone is the MANDATORY phone number.
	Phone string
}

// Run runs the card management flow.
func (f *Card) Run(ctx context.Context) (*Report, error) {
	var otpCode string
	p := &Pipeline{}

	p.Then("request-otp", func(ctx context.Context) (Outcome, error) {
		output.SectionTitle("1. Requesting OTP")
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

	p.Then("card-status", func(ctx context.Context) (Outcome, error) {
		output.SectionTitle("2. Checking card status")
		result, err := f.API.CheckCardStatus(ctx, f.Phone, otpCode)
		if err != nil {
			return Outcome{}, err
		}
		output.CardStatus(result)
		return Continue(), nil
	})

	p.Then("active-packages", func(ctx context.Context) (Outcome, error) {
		output.SectionTitle("3. Checking active packages")
		result, err := f.API.CheckActivePackages(ctx, f.Phone, otpCode)
		if err != nil {
			return Outcome{}, err
		}
		output.ActivePackages(result)
		return Continue(), nil
	})

	return p.Run(ctx)
}
