package domain

import "github.com/shopspring/decimal"

// adapter contract types, shared between the provider packages and the
// service layer

type ProviderMetadata struct {
	DisplayName         string   `json:"display_name"`
	RequiredCredentials []string `json:"required_credentials"`
	PaymentMethods      []string `json:"payment_methods"`
}

type CreatePaymentRequest struct {
	SaleID      string
	StoreID     string
	PayerID     string
	Amount      decimal.Decimal
	Description string
}

type CreatePaymentResult struct {
	PaymentID string
	// copy-paste payment payload (pix code etc). empty when the provider only
	// redirects
	Code        string
	RedirectURL string
	QrCode      string // base64 png, filled by the payment service
}

type PaymentStatus struct {
	Status string
	Paid   bool
}

// ResolvedProvider is the resolver's answer: which provider and credentials
// to use for a store at payment time.
type ResolvedProvider struct {
	Provider    Provider
	Credentials JSONMap
}
