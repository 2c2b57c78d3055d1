package config

// API settings
type API struct {
	BaseURL string `json:"base_url"`
	Token   string `json:"token"`
	APIKey  string `json:"api_key"`
}

// Wallet settings
type Wallet struct {
	BaseURL      string            `json:"base_url"`
	Token        string            `json:"token"`
	Referer      string            `json:"referer"`
	UserAgent    string            `json:"user_agent"`
	Endpoints    map[string]string `json:"endpoints"`
	OutputDir    string            `json:"output_dir"`
	ProductLimit int               `json:"product_limit"`
}

// Telegram settings
type Telegram struct {
	AppID        int    `json:"app_id"`
	AppHash      string `json:"app_hash"`
	Phone        string `json:"phone"`
	Password     string `json:"password"`
	SessionFile  string `json:"session_file"`
	Bot          string `json:"bot"`
	Command      string `json:"command"`
	TargetButton string `json:"target_button"`

	// ReplyTimeout is the number of seconds to wait for a bot reply.
	ReplyTimeout int `json:"reply_timeout"`
}

// Demo settings
type Demo struct {
	Phone         string `json:"phone"`
	PaymentMethod string `json:"payment_method"`
	Query         string `json:"query"`
	MaxPrice      int    `json:"max_price"`

	// PurchaseQuery and PurchaseMaxPrice drive the purchase demo search.
	PurchaseQuery    string `json:"purchase_query"`
	PurchaseMaxPrice int    `json:"purchase_max_price"`

	// OTP is used instead of prompting when not empty.
	OTP string `json:"otp"`
}

// Advanced settings
type Advanced struct {
	TimeoutSeconds          int `json:"timeout_seconds"`
	TransactionDelaySeconds int `json:"transaction_delay_seconds"`
}
