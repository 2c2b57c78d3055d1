package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// EnvPrefix is the prefix of the environment variables we honour.
const EnvPrefix = "NADIA_"

// Lookup returns the value of an environment variable.
type Lookup func(key string) (string, bool)

// LoadEnv returns a [Lookup] that checks the process environment first and
// then the given dotenv files in order. Missing files are skipped.
func LoadEnv(files ...string) (Lookup, error) {
	values := map[string]string{}
	for _, file := range files {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			continue
		}
		env, err := godotenv.Read(file)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", file)
		}
		for key, value := range env {
			if _, found := values[key]; !found {
				values[key] = value
			}
		}
	}
	return func(key string) (string, bool) {
		if value, found := os.LookupEnv(key); found {
			return value, true
		}
		value, found := values[key]
		return value, found
	}, nil
}

// Override replaces settings with the NADIA_* variables found by lookup.
func (c *Config) Override(lookup Lookup) error {
	c.Lock()
	defer c.Unlock()

	fields := map[string]*string{
		"API_BASE":          &c.API.BaseURL,
		"API_TOKEN":         &c.API.Token,
		"API_KEY":           &c.API.APIKey,
		"WALLET_BASE":       &c.Wallet.BaseURL,
		"WALLET_TOKEN":      &c.Wallet.Token,
		"TELEGRAM_APP_HASH": &c.Telegram.AppHash,
		"TELEGRAM_PHONE":    &c.Telegram.Phone,
		"TELEGRAM_PASSWORD": &c.Telegram.Password,
		"TELEGRAM_BOT":      &c.Telegram.Bot,
		"DEMO_PHONE":        &c.Demo.Phone,
		"DEMO_OTP":          &c.Demo.OTP,
	}
	for key, field := range fields {
		if value, found := lookup(EnvPrefix + key); found && value != "" {
			*field = value
		}
	}

	if value, found := lookup(EnvPrefix + "TELEGRAM_APP_ID"); found && value != "" {
		appID, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrap(err, EnvPrefix+"TELEGRAM_APP_ID")
		}
		c.Telegram.AppID = appID
	}
	return nil
}
