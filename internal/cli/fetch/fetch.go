package fetch

import (
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/mattn/go-isatty"
	"github.com/nadia-api/nadia-cli/internal/bulkfetch"
	"github.com/nadia-api/nadia-cli/internal/cli/root"
	"github.com/nadia-api/nadia-cli/internal/httpclientx"
)

func init() {
	cmd := root.Command("fetch", "Save the wallet service JSON responses to files.")
	outputDir := cmd.Flag("output-dir", "Output directory; defaults to wallet.output_dir.").String()
	noProgress := cmd.Flag("no-progress", "Do not show a progress bar.").Bool()

	cmd.Action(func(_ *kingpin.ParseContext) error {
		nctx, err := root.Init()
		if err != nil {
			log.WithError(err).Error("failed to initialize")
			return err
		}
		dir := *outputDir
		if dir == "" {
			dir = nctx.Config.Wallet.OutputDir
		}
		var progress io.Writer
		if !*noProgress && isatty.IsTerminal(os.Stdout.Fd()) {
			progress = os.Stdout
		}

		wallet := nctx.NewWalletClient()
		fetcher := &bulkfetch.Fetcher{
			BaseURL:   wallet.BaseURL,
			Config:    wallet.Config,
			Endpoints: nctx.Config.Wallet.Endpoints,
			OutputDir: dir,
			Progress:  progress,
		}
		log.Infof("Saving responses to %s", dir)
		report, err := fetcher.Run(root.Context)
		if err != nil {
			log.WithError(err).Error("failed to fetch")
			return err
		}
		log.Infof("Saved %d files", len(report.Written))
		if err := report.Err(); err != nil {
			log.Warnf("%d endpoints failed", report.Errors.Len())
			if httpclientx.IsUnauthorized(err) {
				log.Warn("Renew wallet.token and try again")
			}
		}
		return nil
	})
}
