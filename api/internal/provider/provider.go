package provider

import (
	"context"

	"payhub/api/internal/domain"
)

// Adapter is the uniform contract every payment backend implements.
//
// CreatePayment and ValidateCredentials may make a bounded network round trip
// for external providers. The wallet adapter never touches the network.
type Adapter interface {
	Describe() domain.ProviderMetadata
	CreatePayment(ctx context.Context, req *domain.CreatePaymentRequest) (*domain.CreatePaymentResult, error)
	CheckStatus(ctx context.Context, paymentID string) (*domain.PaymentStatus, error)
	ValidateCredentials(ctx context.Context) error
}
