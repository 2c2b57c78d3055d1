package transaction

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/nadia-api/nadia-cli/internal/cli/root"
	"github.com/nadia-api/nadia-cli/internal/output"
)

func init() {
	cmd := root.Command("transaction", "Check the status of a transaction.")
	trxID := cmd.Arg("trx-id", "Transaction ID.").Required().String()

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
		result, err := client.CheckTransaction(root.Context, *trxID)
		if err != nil {
			log.WithError(err).Error("failed to check the transaction")
			return err
		}
		output.Transaction(result)
		return nil
	})
}
