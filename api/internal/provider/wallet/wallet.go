package wallet

import (
	"context"
	"fmt"

	"payhub/api/internal/domain"

	"github.com/google/uuid"
)

const paymentIdPrefix = "wal-"

// Wallet is the platform's own ledger-settled payment method. CreatePayment
// synthesizes a locally-unique reference, actual settlement happens in the
// host sale-processing pipeline.
type Wallet struct {
	creds domain.JSONMap
}

func New(creds domain.JSONMap) *Wallet {
	return &Wallet{creds: creds}
}

func (w *Wallet) Describe() domain.ProviderMetadata {
	return domain.ProviderMetadata{
		DisplayName:         "Wallet",
		RequiredCredentials: []string{},
		PaymentMethods:      []string{"wallet_balance"},
	}
}

func (w *Wallet) CreatePayment(ctx context.Context, req *domain.CreatePaymentRequest) (*domain.CreatePaymentResult, error) {
	if req.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidAmount)
	}

	paymentId := paymentIdPrefix + uuid.NewString()

	return &domain.CreatePaymentResult{
		PaymentID: paymentId,
		Code:      fmt.Sprintf("payhub:wallet:%s:%s", paymentId, req.Amount.String()),
	}, nil
}

func (w *Wallet) CheckStatus(ctx context.Context, paymentID string) (*domain.PaymentStatus, error) {
	// the sale pipeline owns wallet settlement, until it settles the payment
	// stays pending here
	return &domain.PaymentStatus{Status: "pending", Paid: false}, nil
}

func (w *Wallet) ValidateCredentials(ctx context.Context) error {
	for _, k := range w.Describe().RequiredCredentials {
		if w.creds[k] == "" {
			return fmt.Errorf("%w: missing field %s", domain.ErrNotConfigured, k)
		}
	}
	return nil
}
