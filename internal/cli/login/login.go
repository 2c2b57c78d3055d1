package login

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/nadia-api/nadia-cli/config"
	"github.com/nadia-api/nadia-cli/internal/cli/root"
	"github.com/pkg/errors"
)

func init() {
	cmd := root.Command("login", "Exchange the API key for a token and save it in the config file.")
	apiKey := cmd.Flag("api-key", "API key; defaults to api.api_key.").String()

	cmd.Action(func(_ *kingpin.ParseContext) error {
		nctx, err := root.Init()
		if err != nil {
			log.WithError(err).Error("failed to initialize")
			return err
		}
		key := *apiKey
		if key == "" {
			key = nctx.Config.API.APIKey
		}
		if key == "" {
			return errors.New("missing API key: use --api-key or set api.api_key")
		}
		client := nctx.NewNadiaClient()
		result, err := client.Login(root.Context, key)
		if err != nil {
			log.WithError(err).Error("failed to log in")
			return err
		}
		if !result.OK() || result.Data().Token == "" {
			log.Errorf("Login failed: %s", result.Message())
			return errors.New("login failed")
		}

		// Re-read the file so values coming from the environment are not saved.
		onDisk, err := config.ReadConfig(nctx.Config.Path())
		if err != nil {
			log.WithError(err).Error("failed to read config file")
			return err
		}
		onDisk.Lock()
		onDisk.API.Token = result.Data().Token
		onDisk.Unlock()
		if err := onDisk.Write(); err != nil {
			log.WithError(err).Error("failed to write config file")
			return err
		}
		log.Infof("Token saved to %s", onDisk.Path())
		return nil
	})
}
