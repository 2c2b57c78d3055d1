package root

import (
	"context"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	nadia "github.com/nadia-api/nadia-cli"
	"github.com/nadia-api/nadia-cli/internal/log/handlers/cli"
	"github.com/nadia-api/nadia-cli/utils"
)

// Cmd is the root command
var Cmd = kingpin.New("nadia", "Command line client for the Nadia API")

// Command is syntax sugar for defining sub-commands
var Command = Cmd.Command

// Init should be called by all subcommand that care to have a nadia.Context instance
var Init func() (*nadia.Context, error)

// Context is the context of the running command. The app cancels it on SIGINT.
var Context = context.Background()

func init() {
	configPath := Cmd.Flag("config", "Set a custom config file path").Short('c').String()
	verbose := Cmd.Flag("verbose", "Enable verbose log output.").Short('v').Bool()

	Cmd.PreAction(func(ctx *kingpin.ParseContext) error {
		log.SetHandler(cli.Default)
		if *verbose {
			log.SetLevel(log.DebugLevel)
			log.Debugf("nadia version %s", nadia.Version)
		}

		Init = func() (*nadia.Context, error) {
			homePath, err := utils.GetNadiaHome()
			if err != nil {
				return nil, err
			}
			path := *configPath
			if path != "" {
				if path, err = utils.ExpandPath(path); err != nil {
					return nil, err
				}
			}

			ctx := nadia.NewContext(path, homePath)
			if err = ctx.Init(); err != nil {
				return nil, err
			}
			return ctx, nil
		}

		return nil
	})
}
