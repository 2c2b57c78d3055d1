package stock

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/nadia-api/nadia-cli/internal/cli/root"
	"github.com/nadia-api/nadia-cli/internal/output"
)

func init() {
	cmd := root.Command("stock", "Show the package stock.")

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
		result, err := client.GetPackageStock(root.Context)
		if err != nil {
			log.WithError(err).Error("failed to get the stock")
			return err
		}
		output.PackageStock(result)
		return nil
	})
}
