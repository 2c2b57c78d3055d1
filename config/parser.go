package config

import (
	"encoding/json"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/tailscale/hujson"
)

// ConfigVersion is the current version of the config file format.
const ConfigVersion = 1

// Defaults used when the config file leaves a setting empty.
const (
	DefaultAPIBaseURL       = "http://localhost:8080/api"
	DefaultWalletBaseURL    = "https://putri-veronica.my.id"
	DefaultOutputDir        = "api_responses"
	DefaultProductLimit     = 5
	DefaultCommand          = "/start"
	DefaultReplyTimeout     = 10
	DefaultTimeoutSeconds   = 30
	DefaultPaymentMethod    = "BALANCE"
	DefaultDemoQuery        = "combo"
	DefaultDemoMaxPrice     = 10000
	DefaultPurchaseQuery    = "masa aktif"
	DefaultPurchaseMaxPrice = 10000
	DefaultTransactionDelay = 2
)

// ReadConfig reads the configuration from the path
func ReadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c, err := ParseConfig(b)
	if err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	c.path = path
	return c, err
}

// ParseConfig returns config from JSON bytes. Comments and trailing
// commas are allowed.
func ParseConfig(b []byte) (*Config, error) {
	var c Config

	b, err := hujson.Standardize(b)
	if err != nil {
		return nil, errors.Wrap(err, "parsing hujson")
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, errors.Wrap(err, "parsing json")
	}

	if err := c.Default(); err != nil {
		return nil, errors.Wrap(err, "defaulting")
	}

	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating")
	}

	return &c, nil
}

// Config for the nadia installation
type Config struct {
	// Private settings
	Comment string `json:"_"`
	Version int64  `json:"_version"`

	API      API      `json:"api"`
	Wallet   Wallet   `json:"wallet"`
	Telegram Telegram `json:"telegram"`
	Demo     Demo     `json:"demo"`
	Advanced Advanced `json:"advanced"`

	mutex sync.Mutex
	path  string
}

// Path returns the path of the config file.
func (c *Config) Path() string {
	return c.path
}

// SetPath sets the path where [*Config.Write] writes.
func (c *Config) SetPath(path string) {
	c.path = path
}

// Write the config file in json to the path
func (c *Config) Write() error {
	c.Lock()
	defer c.Unlock()
	if c.path == "" {
		return errors.New("config file path is empty")
	}
	configJSON, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshalling config JSON")
	}
	if err := os.WriteFile(c.path, configJSON, 0600); err != nil {
		return errors.Wrap(err, "writing config JSON")
	}
	return nil
}

// Lock acquires the write mutex
func (c *Config) Lock() {
	c.mutex.Lock()
}

// Unlock releases the write mutex
func (c *Config) Unlock() {
	c.mutex.Unlock()
}

// Default config settings
func (c *Config) Default() error {
	if c.Version == 0 {
		c.Version = ConfigVersion
	}

	setDefault(&c.API.BaseURL, DefaultAPIBaseURL)

	setDefault(&c.Wallet.BaseURL, DefaultWalletBaseURL)
	setDefault(&c.Wallet.OutputDir, DefaultOutputDir)
	if c.Wallet.ProductLimit == 0 {
		c.Wallet.ProductLimit = DefaultProductLimit
	}

	setDefault(&c.Telegram.Command, DefaultCommand)
	if c.Telegram.ReplyTimeout == 0 {
		c.Telegram.ReplyTimeout = DefaultReplyTimeout
	}

	setDefault(&c.Demo.PaymentMethod, DefaultPaymentMethod)
	setDefault(&c.Demo.Query, DefaultDemoQuery)
	if c.Demo.MaxPrice == 0 {
		c.Demo.MaxPrice = DefaultDemoMaxPrice
	}
	setDefault(&c.Demo.PurchaseQuery, DefaultPurchaseQuery)
	if c.Demo.PurchaseMaxPrice == 0 {
		c.Demo.PurchaseMaxPrice = DefaultPurchaseMaxPrice
	}

	if c.Advanced.TimeoutSeconds == 0 {
		c.Advanced.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.Advanced.TransactionDelaySeconds == 0 {
		c.Advanced.TransactionDelaySeconds = DefaultTransactionDelay
	}
	return nil
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// Validate the config file
func (c *Config) Validate() error {
	if err := validateBaseURL(c.API.BaseURL); err != nil {
		return errors.Wrap(err, "api.base_url")
	}
	if err := validateBaseURL(c.Wallet.BaseURL); err != nil {
		return errors.Wrap(err, "wallet.base_url")
	}
	for name, path := range c.Wallet.Endpoints {
		if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
			return errors.Errorf("wallet.endpoints: invalid name %q", name)
		}
		if !strings.HasPrefix(path, "/") {
			return errors.Errorf("wallet.endpoints: %s: path must start with /", name)
		}
	}
	if c.Wallet.ProductLimit < 0 {
		return errors.New("wallet.product_limit must not be negative")
	}
	if c.Telegram.ReplyTimeout < 0 {
		return errors.New("telegram.reply_timeout must not be negative")
	}
	if c.Advanced.TimeoutSeconds < 0 || c.Advanced.TransactionDelaySeconds < 0 {
		return errors.New("advanced: durations must not be negative")
	}
	return nil
}

func validateBaseURL(value string) error {
	URL, err := url.Parse(value)
	if err != nil {
		return err
	}
	if URL.Scheme != "http" && URL.Scheme != "https" {
		return errors.Errorf("unsupported scheme %q", URL.Scheme)
	}
	if URL.Host == "" {
		return errors.New("missing host")
	}
	return nil
}

// HTTPTimeout returns the timeout of each HTTP request.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.Advanced.TimeoutSeconds) * time.Second
}

// TransactionDelay returns the wait before checking a transaction.
func (c *Config) TransactionDelay() time.Duration {
	return time.Duration(c.Advanced.TransactionDelaySeconds) * time.Second
}

// ReplyTimeout returns how long to wait for a bot reply.
func (c *Config) ReplyTimeout() time.Duration {
	return time.Duration(c.Telegram.ReplyTimeout) * time.Second
}
