package search

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/nadia-api/nadia-cli/internal/cli/root"
	"github.com/nadia-api/nadia-cli/internal/nadiaapi"
	"github.com/nadia-api/nadia-cli/internal/output"
)

func init() {
	cmd := root.Command("search", "Search the available packages.")

	var query nadiaapi.SearchQuery
	cmd.Arg("query", "Text to search for.").StringVar(&query.Query)
	cmd.Flag("payment-method", "Only packages payable with this method.").StringVar(&query.PaymentMethod)
	cmd.Flag("max-price", "Maximum price.").IntVar(&query.MaxPrice)
	cmd.Flag("min-price", "Minimum price.").IntVar(&query.MinPrice)

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
		result, err := client.SearchPackages(root.Context, &query)
		if err != nil {
			log.WithError(err).Error("failed to search packages")
			return err
		}
		output.PackageSearch(result)
		return nil
	})
}
