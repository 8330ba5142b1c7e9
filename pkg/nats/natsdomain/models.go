package natsdomain

import (
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/shopspring/decimal"
)

// nats struct
type Ns struct {
	Nc *nats.Conn
	Js jetstream.JetStream
}

const (
	SaleStatusPaid     = "paid"
	SaleStatusPaidOver = "paid_over"
)

// SaleSettled is published by the sale pipeline when a sale reaches a paid
// state. The commission engine consumes it.
type SaleSettled struct {
	SaleID        string          `json:"sale_id"`
	StoreID       string          `json:"store_id"`
	PayerID       string          `json:"payer_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"` // provider name (wallet, mercadopago, ...)
	Status        string          `json:"status"`
	SaleDate      time.Time       `json:"sale_date"`
}

func (s *SaleSettled) IsPaid() bool {
	return s.Status == SaleStatusPaid || s.Status == SaleStatusPaidOver
}
