package service

import (
	"context"
	"testing"

	"payhub/api/internal/domain"
	"payhub/api/internal/logger"

	"github.com/shopspring/decimal"
)

// whole path of a new seller: submit wallet docs, get approved, switch the
// wallet on, receive a payment and earn the platform its commission on
// settlement.
func TestWalletOnboardingLifecycle(t *testing.T) {
	configs := &fakeGatewayConfigs{}
	approvalsRepo := &fakeApprovals{}
	commissionsRepo := newFakeCommissions()
	settings := &fakeSettings{}
	l := logger.Logger{}
	conf := testConfig()

	activation := NewActivationService(nil, configs, approvalsRepo, NewLockerService(), l, conf)
	approvals := NewApprovalsService(nil, approvalsRepo, l)
	resolver := NewResolverService(nil, configs, settings, l, conf)
	commissions := NewCommissionsService(nil, commissionsRepo, settings, l, conf)
	payments := NewPaymentsService(resolver, NewQrCodesService(), l)

	seller := owner("u1", "store-1")

	// activation is blocked until the request is approved
	if err := activation.SetActive("store-1", domain.PROVIDER_WALLET, true, seller); err == nil {
		t.Fatal("activation must fail before approval")
	}

	req, err := approvals.Submit(seller, "529.982.247-25", "Maria Souza ME", "maria@example.com")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := approvals.Decide(admin("adm"), req.RequestID, true, "docs verified"); err != nil {
		t.Fatalf("Decide: %v", err)
	}

	if err := activation.SetActive("store-1", domain.PROVIDER_WALLET, true, seller); err != nil {
		t.Fatalf("SetActive after approval: %v", err)
	}

	resolved := resolver.ResolveActiveProvider("store-1")
	if resolved.Provider != domain.PROVIDER_WALLET {
		t.Fatalf("resolver: want wallet, got %s", resolved.Provider.ToString())
	}

	res, p, err := payments.CreatePayment(context.Background(), "store-1", &domain.CreatePaymentRequest{
		SaleID:  "sale-1",
		StoreID: "store-1",
		PayerID: "payer-1",
		Amount:  decimal.RequireFromString("100.00"),
	})
	if err != nil {
		t.Fatalf("CreatePayment: %v", err)
	}
	if p != domain.PROVIDER_WALLET || res.PaymentID == "" {
		t.Fatalf("unexpected payment result: provider=%s res=%+v", p.ToString(), res)
	}

	// the sale pipeline settles the payment, the commission engine records
	// exactly one R$3.50 cut
	sale := settledSale("sale-1", "100.00")
	row, err := commissions.Record(nil, sale)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if !row.CommissionAmount.Equal(decimal.RequireFromString("3.50")) {
		t.Fatalf("commission: want 3.50, got %s", row.CommissionAmount)
	}

	if _, err := commissions.Record(nil, sale); err == nil {
		t.Fatal("second settlement notification must not double-charge")
	}

	summary, err := commissions.StoreSummary("store-1")
	if err != nil {
		t.Fatal(err)
	}
	if summary.Count != 1 || !summary.Net.Equal(decimal.RequireFromString("96.50")) {
		t.Fatalf("summary: %+v", summary)
	}

	recent, err := commissions.ListByStore("store-1", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 1 || recent[0].SaleID != "sale-1" {
		t.Fatalf("recent commissions: %+v", recent)
	}
}
