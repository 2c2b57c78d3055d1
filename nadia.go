package nadia

import (
	"net/http"
	"os"

	"github.com/apex/log"
	"github.com/nadia-api/nadia-cli/config"
	"github.com/nadia-api/nadia-cli/internal/nadiaapi"
	"github.com/nadia-api/nadia-cli/internal/walletapi"
	"github.com/nadia-api/nadia-cli/utils"
	"github.com/pkg/errors"
)

// Version is the version of nadia-cli
const Version = "2.0.0"

// Context for nadia-cli
type Context struct {
	Config *config.Config
	Home   string

	configPath string
	httpClient *http.Client
}

// MaybeInitializeHome does the setup for a new nadia home
func MaybeInitializeHome(home string) error {
	if err := os.MkdirAll(home, 0700); err != nil {
		return err
	}
	return nil
}

// MaybeWriteDefaultConfig writes a default config file when none exists
// at path.
func MaybeWriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil || !os.IsNotExist(err) {
		return err
	}
	log.Debugf("Writing default config to %s", path)
	c, err := config.ParseConfig([]byte("{}"))
	if err != nil {
		return err
	}
	c.Comment = "This is your nadia-cli config file. Secrets may also come from .env or NADIA_* variables."
	c.SetPath(path)
	return c.Write()
}

// Init the nadia context: creates the home, reads the config, and applies
// the .env and NADIA_* overrides.
func (c *Context) Init() error {
	if err := MaybeInitializeHome(c.Home); err != nil {
		return errors.Wrap(err, "initializing home")
	}

	if c.configPath == "" {
		c.configPath = utils.ConfigPath(c.Home)
		if err := MaybeWriteDefaultConfig(c.configPath); err != nil {
			return errors.Wrap(err, "writing default config")
		}
	}
	log.Debugf("Reading config file from %s", c.configPath)
	cfg, err := config.ReadConfig(c.configPath)
	if err != nil {
		return errors.Wrap(err, "reading config")
	}

	lookup, err := config.LoadEnv(utils.EnvFiles(c.Home)...)
	if err != nil {
		return errors.Wrap(err, "loading environment")
	}
	if err := cfg.Override(lookup); err != nil {
		return errors.Wrap(err, "applying environment")
	}
	if cfg.Telegram.SessionFile == "" {
		cfg.Telegram.SessionFile = utils.SessionPath(c.Home)
	}
	c.Config = cfg
	return nil
}

// HTTPClient returns the HTTP client shared by all the API clients.
func (c *Context) HTTPClient() *http.Client {
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.Config.HTTPTimeout()}
	}
	return c.httpClient
}

// NewNadiaClient returns a client for the Nadia API.
func (c *Context) NewNadiaClient() *nadiaapi.Client {
	return nadiaapi.NewClient(c.Config.API.BaseURL, c.Config.API.Token, c.HTTPClient(), log.Log)
}

// NewWalletClient returns a client for the wallet service.
func (c *Context) NewWalletClient() *walletapi.Client {
	return walletapi.NewClient(&walletapi.Options{
		BaseURL:   c.Config.Wallet.BaseURL,
		Token:     c.Config.Wallet.Token,
		Referer:   c.Config.Wallet.Referer,
		UserAgent: c.Config.Wallet.UserAgent,
	}, c.HTTPClient(), log.Log)
}

// NewContext creates a new context instance. An empty configPath means
// the config.json inside home.
func NewContext(configPath string, home string) *Context {
	return &Context{
		Home:       home,
		configPath: configPath,
	}
}
