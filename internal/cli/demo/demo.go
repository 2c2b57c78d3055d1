package demo

import (
	"context"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	nadia "github.com/nadia-api/nadia-cli"
	"github.com/nadia-api/nadia-cli/config"
	"github.com/nadia-api/nadia-cli/internal/cli/root"
	"github.com/nadia-api/nadia-cli/internal/flow"
	"github.com/nadia-api/nadia-cli/internal/nadiaapi"
	"github.com/nadia-api/nadia-cli/internal/output"
	"github.com/pkg/errors"
)

type runner interface {
	Run(ctx context.Context) (*flow.Report, error)
}

func runFlow(name string, f runner) error {
	output.SectionTitle(name)
	report, err := f.Run(root.Context)
	if err != nil {
		log.WithError(err).Errorf("%s failed", name)
		return err
	}
	if report.Complete() {
		log.Infof("%s completed", name)
	} else {
		log.Warnf("%s stopped at %s: %s", name, report.HaltedAt, report.Reason)
	}
	return nil
}

func phoneOrDefault(nctx *nadia.Context, phone string) (string, error) {
	if phone == "" {
		phone = nctx.Config.Demo.Phone
	}
	if phone == "" {
		return "", errors.New("missing phone number: use --phone or set demo.phone")
	}
	return phone, nil
}

func otpOrDefault(nctx *nadia.Context, code string) flow.OTPSource {
	if code == "" {
		code = nctx.Config.Demo.OTP
	}
	return root.OTPSource(code)
}

func basicQuery(demo *config.Demo) nadiaapi.SearchQuery {
	return nadiaapi.SearchQuery{
		Query:    demo.Query,
		MaxPrice: demo.MaxPrice,
	}
}

func purchaseQuery(demo *config.Demo) nadiaapi.SearchQuery {
	return nadiaapi.SearchQuery{
		Query:         demo.PurchaseQuery,
		PaymentMethod: demo.PaymentMethod,
		MaxPrice:      demo.PurchaseMaxPrice,
	}
}

func init() {
	cmd := root.Command("demo", "Run a demo flow.")

	basicCmd := cmd.Command("basic", "Show balance, search packages, and show stock.")
	basicCmd.Action(func(_ *kingpin.ParseContext) error {
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
		return runFlow("Basic demo", &flow.Basic{
			API: client,
			Query: basicQuery(&nctx.Config.Demo),
		})
	})

	purchaseCmd := cmd.Command("purchase", "Search, request an OTP, purchase the first package, and check the transaction.")
	purchasePhone := purchaseCmd.Flag("phone", "Phone number; defaults to demo.phone.").String()
	purchaseOTP := purchaseCmd.Flag("otp", "OTP code; prompted when missing.").String()
	purchaseCmd.Action(func(_ *kingpin.ParseContext) error {
		nctx, err := root.Init()
		if err != nil {
			log.WithError(err).Error("failed to initialize")
			return err
		}
		phone, err := phoneOrDefault(nctx, *purchasePhone)
		if err != nil {
			return err
		}
		client, err := root.NadiaClient(root.Context, nctx)
		if err != nil {
			log.WithError(err).Error("failed to create the API client")
			return err
		}
		return runFlow("Purchase demo", &flow.Purchase{
			API:   client,
			OTP:   otpOrDefault(nctx, *purchaseOTP),
			Phone: phone,
			Query: purchaseQuery(&nctx.Config.Demo),
			PaymentMethod:    nctx.Config.Demo.PaymentMethod,
			TransactionDelay: nctx.Config.TransactionDelay(),
		})
	})

	cardCmd := cmd.Command("card", "Request an OTP and show the card status and active packages.")
	cardPhone := cardCmd.Flag("phone", "Phone number; defaults to demo.phone.").String()
	cardOTP := cardCmd.Flag("otp", "OTP code; prompted when missing.").String()
	cardCmd.Action(func(_ *kingpin.ParseContext) error {
		nctx, err := root.Init()
		if err != nil {
			log.WithError(err).Error("failed to initialize")
			return err
		}
		phone, err := phoneOrDefault(nctx, *cardPhone)
		if err != nil {
			return err
		}
		client, err := root.NadiaClient(root.Context, nctx)
		if err != nil {
			log.WithError(err).Error("failed to create the API client")
			return err
		}
		return runFlow("Card demo", &flow.Card{
			API:   client,
			OTP:   otpOrDefault(nctx, *cardOTP),
			Phone: phone,
		})
	})
}
