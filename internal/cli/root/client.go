package root

import (
	"context"

	"github.com/apex/log"
	nadia "github.com/nadia-api/nadia-cli"
	"github.com/nadia-api/nadia-cli/internal/nadiaapi"
	"github.com/pkg/errors"
)

// NadiaClient returns a Nadia API client. When there is no token but there
// is an API key, it logs in first.
func NadiaClient(ctx context.Context, nctx *nadia.Context) (*nadiaapi.Client, error) {
	client := nctx.NewNadiaClient()
	if nctx.Config.API.Token != "" || nctx.Config.API.APIKey == "" {
		return client, nil
	}
	log.Debug("Logging in with the API key")
	result, err := client.Login(ctx, nctx.Config.API.APIKey)
	if err != nil {
		return nil, errors.Wrap(err, "login")
	}
	if !result.OK() {
		return nil, errors.Errorf("login failed: %s", result.Message())
	}
	return client, nil
}
