package nadiaapi

import "encoding/json"

// SearchQuery contains the OPTIONAL package search filters. Zero
// values are omitted from the request body.
type SearchQuery struct {
	Query         string `json:"query,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
	MaxPrice      int    `json:"max_price,omitempty"`
	MinPrice      int    `json:"min_price,omitempty"`
}

// Package is a purchasable mobile data package.
type Package struct {
	Code        string `json:"package_code"`
	Name        string `json:"package_name"`
	ShortName   string `json:"package_name_alias_short,omitempty"`
	Description string `json:"package_description,omitempty"`
	Price       int    `json:"package_harga_int"`
}

// UnmarshalJSON implements json.Unmarshaler. The price is read from
// package_harga_int and, when missing, from package_price.
func (p *Package) UnmarshalJSON(data []byte) error {
	type plain Package
	var aux struct {
		plain
		LegacyPrice *int `json:"package_price"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Price == 0 && aux.LegacyPrice != nil {
		aux.Price = *aux.LegacyPrice
	}
	*p = Package(aux.plain)
	return nil
}

// OTPData is the data returned when requesting an OTP.
type OTPData struct {
	ExpiresIn int `json:"expires_in"`
}

// DefaultOTPExpiry is the OTP lifetime in seconds we assume when the
// server does not tell us.
const DefaultOTPExpiry = 300

// Expiry returns ExpiresIn or [DefaultOTPExpiry] when missing.
func (d OTPData) Expiry() int {
	if d.ExpiresIn <= 0 {
		return DefaultOTPExpiry
	}
	return d.ExpiresIn
}

// PurchaseRequest is the body of a purchase.
type PurchaseRequest struct {
	PhoneNumber   string `json:"phone_number"`
	PackageCode   string `json:"package_code"`
	PaymentMethod string `json:"payment_method"`
	OTPCode       string `json:"otp_code"`
	Source        string `json:"source,omitempty"`
}

// PurchaseData is the data returned by a successful purchase.
type PurchaseData struct {
	PackageName   string `json:"package_name"`
	MSISDN        string `json:"msisdn"`
	TrxID         string `json:"trx_id"`
	ProcessingFee int    `json:"package_processing_fee"`
}

// CardStatus describes the state of a SIM card.
type CardStatus struct {
	MSISDN             string          `json:"msisdn"`
	SubscriptionStatus string          `json:"subscription_status"`
	Balance            json.RawMessage `json:"pulsa_real"`
	ActiveUntil        string          `json:"active_until"`
	Location           string          `json:"location"`
}

// Quota is an active package on a SIM card.
type Quota struct {
	Name      string `json:"name"`
	ExpiredAt string `json:"expired_at"`
}

// ActivePackages contains the packages active on a SIM card.
type ActivePackages struct {
	Quotas []Quota `json:"quotas"`
}

// Balance is the account balance.
type Balance struct {
	Balance json.RawMessage `json:"balance"`
}

// PackageStock is the stock of a package.
type PackageStock struct {
	Code  string `json:"package_code"`
	Name  string `json:"package_name,omitempty"`
	Stock int    `json:"stok"`
}

// PaymentMethod is a payment method accepted for purchases.
type PaymentMethod struct {
	Order       int    `json:"order"`
	Method      string `json:"payment_method"`
	DisplayName string `json:"payment_method_display_name"`
	Description string `json:"desc"`
}

// AuthData is the data returned by a successful login.
type AuthData struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}
