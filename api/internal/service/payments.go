package service

import (
	"context"

	"payhub/api/internal/domain"
	"payhub/api/internal/logger"
	"payhub/api/internal/provider"
)

type PaymentsService struct {
	resolver Resolver
	qrCodes  QrCodes
	l        logger.Logger
}

func NewPaymentsService(resolver Resolver, qrCodes QrCodes, l logger.Logger) *PaymentsService {
	return &PaymentsService{resolver: resolver, qrCodes: qrCodes, l: l}
}

// CreatePayment resolves the store's provider, builds its adapter and creates
// the payment. Provider failures are returned as-is and never touch the
// store's gateway configuration.
func (s *PaymentsService) CreatePayment(ctx context.Context, storeID string, req *domain.CreatePaymentRequest) (*domain.CreatePaymentResult, domain.Provider, error) {
	resolved := s.resolver.ResolveActiveProvider(storeID)

	ad, err := provider.New(resolved.Provider, resolved.Credentials)
	if err != nil {
		return nil, resolved.Provider, err
	}

	res, err := ad.CreatePayment(ctx, req)
	if err != nil {
		return nil, resolved.Provider, err
	}

	if res.Code != "" {
		qr, err := s.qrCodes.FindOrNew(res.Code)
		if err != nil {
			// the copy-paste code still works without the image
			s.l.Debug("qr code generation failed", "payment_id", res.PaymentID, "error", err.Error())
		} else {
			res.QrCode = qr
		}
	}

	return res, resolved.Provider, nil
}

func (s *PaymentsService) CheckStatus(ctx context.Context, storeID string, paymentID string) (*domain.PaymentStatus, error) {
	resolved := s.resolver.ResolveActiveProvider(storeID)

	ad, err := provider.New(resolved.Provider, resolved.Credentials)
	if err != nil {
		return nil, err
	}

	return ad.CheckStatus(ctx, paymentID)
}
