package service

import (
	"context"
	"strings"
	"testing"

	"payhub/api/internal/domain"
	"payhub/api/internal/logger"

	"github.com/shopspring/decimal"
)

func TestCreatePaymentFallsBackToWallet(t *testing.T) {
	resolver := newResolver(&fakeGatewayConfigs{}, &fakeSettings{}, "")
	s := NewPaymentsService(resolver, NewQrCodesService(), logger.Logger{})

	res, p, err := s.CreatePayment(context.Background(), "store-1", &domain.CreatePaymentRequest{
		SaleID:  "sale-1",
		StoreID: "store-1",
		PayerID: "payer-1",
		Amount:  decimal.RequireFromString("25.00"),
	})
	if err != nil {
		t.Fatalf("CreatePayment: %v", err)
	}

	if p != domain.PROVIDER_WALLET {
		t.Fatalf("want wallet, got %s", p.ToString())
	}
	if !strings.HasPrefix(res.PaymentID, "wal-") {
		t.Fatalf("wallet payment id missing prefix: %s", res.PaymentID)
	}
	if res.Code == "" {
		t.Fatal("copy-paste code missing")
	}
	if res.QrCode == "" {
		t.Fatal("qr code not generated")
	}
}

func TestCreatePaymentInvalidAmount(t *testing.T) {
	resolver := newResolver(&fakeGatewayConfigs{}, &fakeSettings{}, "")
	s := NewPaymentsService(resolver, NewQrCodesService(), logger.Logger{})

	_, _, err := s.CreatePayment(context.Background(), "store-1", &domain.CreatePaymentRequest{
		SaleID: "sale-1",
		Amount: decimal.Zero,
	})
	if err == nil {
		t.Fatal("want error for zero amount")
	}
}

func TestCheckStatusWallet(t *testing.T) {
	resolver := newResolver(&fakeGatewayConfigs{}, &fakeSettings{}, "")
	s := NewPaymentsService(resolver, NewQrCodesService(), logger.Logger{})

	status, err := s.CheckStatus(context.Background(), "store-1", "wal-123")
	if err != nil {
		t.Fatalf("CheckStatus: %v", err)
	}
	if status.Paid {
		t.Fatal("wallet status is pending until the sale pipeline settles it")
	}
}
