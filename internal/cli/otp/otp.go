package otp

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/nadia-api/nadia-cli/internal/cli/root"
	"github.com/nadia-api/nadia-cli/internal/output"
)

func init() {
	requestCmd := root.Command("otp", "Request an OTP for a phone number.")
	phone := requestCmd.Arg("phone", "Phone number.").Required().String()

	requestCmd.Action(func(_ *kingpin.ParseContext) error {
		nctx, err := root.Init()
		if err != nil {
			log.WithError(err).Error("failed to initialize")
			return err
		}
		client, err := root.NadiaClient(root.Context, nctx)
		if err != nil {
			log.WithError(err).Error("failed to create the API client")
			return err
		}
		result, err := client.RequestOTP(root.Context, *phone)
		if err != nil {
			log.WithError(err).Error("failed to request the OTP")
			return err
		}
		output.OTPRequest(result)
		return nil
	})

	verifyCmd := root.Command("verify-otp", "Verify an OTP.")
	verifyPhone := verifyCmd.Arg("phone", "Phone number.").Required().String()
	code := verifyCmd.Arg("code", "OTP code; prompted when missing.").String()

	verifyCmd.Action(func(_ *kingpin.ParseContext) error {
		nctx, err := root.Init()
		if err != nil {
			log.WithError(err).Error("failed to initialize")
			return err
		}
		client, err := root.NadiaClient(root.Context, nctx)
		if err != nil {
			log.WithError(err).Error("failed to create the API client")
			return err
		}
		otpCode, err := root.OTPSource(*code).OTP(root.Context, *verifyPhone)
		if err != nil {
			return err
		}
		result, err := client.VerifyOTP(root.Context, *verifyPhone, otpCode)
		if err != nil {
			log.WithError(err).Error("failed to verify the OTP")
			return err
		}
		output.OTPVerify(result)
		return nil
	})
}
