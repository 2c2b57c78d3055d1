package purchase

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/nadia-api/nadia-cli/internal/cli/root"
	"github.com/nadia-api/nadia-cli/internal/nadiaapi"
	"github.com/nadia-api/nadia-cli/internal/output"
)

func init() {
	cmd := root.Command("purchase", "Purchase a package.")

	var req nadiaapi.PurchaseRequest
	cmd.Arg("phone", "Phone number.").Required().StringVar(&req.PhoneNumber)
	cmd.Arg("package", "Package code.").Required().StringVar(&req.PackageCode)
	cmd.Flag("payment-method", "Payment method; defaults to demo.payment_method.").StringVar(&req.PaymentMethod)
	cmd.Flag("source", "Purchase source tag.").StringVar(&req.Source)
	code := cmd.Flag("otp", "OTP code; prompted when missing.").String()

	cmd.Action(func(_ *kingpin.ParseContext) error {
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
		if req.PaymentMethod == "" {
			req.PaymentMethod = nctx.Config.Demo.PaymentMethod
		}
		if req.OTPCode, err = root.OTPSource(*code).OTP(root.Context, req.PhoneNumber); err != nil {
			return err
		}
		result, err := client.PurchasePackage(root.Context, &req)
		if err != nil {
			log.WithError(err).Error("failed to purchase")
			return err
		}
		output.Purchase(result)
		return nil
	})
}
