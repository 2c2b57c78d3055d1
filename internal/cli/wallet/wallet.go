package wallet

import (
	"context"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/hashicorp/go-multierror"
	"github.com/nadia-api/nadia-cli/internal/cli/root"
	"github.com/nadia-api/nadia-cli/internal/httpclientx"
	"github.com/nadia-api/nadia-cli/internal/output"
	"github.com/nadia-api/nadia-cli/internal/walletapi"
)

func logFailure(err error, what string) {
	if httpclientx.IsUnauthorized(err) {
		log.WithError(err).Errorf("failed to get the %s: the token has most likely expired, renew wallet.token", what)
		return
	}
	log.WithError(err).Errorf("failed to get the %s", what)
}

// show prints the balance and the first limit products. A failing step is
// logged and does not prevent running the next one.
func show(ctx context.Context, client *walletapi.Client, limit int) error {
	var result *multierror.Error

	output.SectionTitle("Wallet balance")
	balance, err := client.Balance(ctx)
	if err != nil {
		logFailure(err, "balance")
		result = multierror.Append(result, err)
	} else {
		output.WalletBalance(balance)
	}

	output.SectionTitle("Products")
	products, err := client.Products(ctx)
	if err != nil {
		logFailure(err, "products")
		result = multierror.Append(result, err)
	} else {
		output.WalletProducts(products, limit)
	}

	return result.ErrorOrNil()
}

func init() {
	cmd := root.Command("wallet", "Show the wallet balance and the first products.")
	limit := cmd.Flag("limit", "Number of products to show; defaults to wallet.product_limit.").Int()

	cmd.Action(func(_ *kingpin.ParseContext) error {
		nctx, err := root.Init()
		if err != nil {
			log.WithError(err).Error("failed to initialize")
			return err
		}
		n := *limit
		if n <= 0 {
			n = nctx.Config.Wallet.ProductLimit
		}
		return show(root.Context, nctx.NewWalletClient(), n)
	})
}
