package card

import (
	"context"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/nadia-api/nadia-cli/internal/cli/root"
	"github.com/nadia-api/nadia-cli/internal/nadiaapi"
	"github.com/nadia-api/nadia-cli/internal/output"
)

// action returns the action of a command that needs a phone number and
// an OTP code.
func action(phone, code *string, run func(ctx context.Context, client *nadiaapi.Client, phone, otp string) error) kingpin.Action {
	return func(_ *kingpin.ParseContext) error {
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
		otpCode, err := root.OTPSource(*code).OTP(root.Context, *phone)
		if err != nil {
			return err
		}
		return run(root.Context, client, *phone, otpCode)
	}
}

func init() {
	statusCmd := root.Command("card-status", "Show the status of a SIM card.")
	statusPhone := statusCmd.Arg("phone", "Phone number.").Required().String()
	statusCode := statusCmd.Flag("otp", "OTP code; prompted when missing.").String()
	statusCmd.Action(action(statusPhone, statusCode, func(ctx context.Context, client *nadiaapi.Client, phone, otp string) error {
		result, err := client.CheckCardStatus(ctx, phone, otp)
		if err != nil {
			log.WithError(err).Error("failed to check the card status")
			return err
		}
		output.CardStatus(result)
		return nil
	}))

	packagesCmd := root.Command("card-packages", "Show the active packages of a SIM card.")
	packagesPhone := packagesCmd.Arg("phone", "Phone number.").Required().String()
	packagesCode := packagesCmd.Flag("otp", "OTP code; prompted when missing.").String()
	packagesCmd.Action(action(packagesPhone, packagesCode, func(ctx context.Context, client *nadiaapi.Client, phone, otp string) error {
		result, err := client.CheckActivePackages(ctx, phone, otp)
		if err != nil {
			log.WithError(err).Error("failed to check the active packages")
			return err
		}
		output.ActivePackages(result)
		return nil
	}))
}
