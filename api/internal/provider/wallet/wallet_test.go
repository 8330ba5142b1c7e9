package wallet

import (
	"context"
	"errors"
	"strings"
	"testing"

	"payhub/api/internal/domain"

	"github.com/shopspring/decimal"
)

func TestCreatePayment(t *testing.T) {
	w := New(domain.JSONMap{})

	req := &domain.CreatePaymentRequest{
		SaleID: "sale-1",
		Amount: decimal.NewFromInt(100),
	}

	res, err := w.CreatePayment(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(res.PaymentID, paymentIdPrefix) {
		t.Errorf("payment id = %s", res.PaymentID)
	}
	if res.Code == "" {
		t.Error("expected a copy-paste code")
	}

	res2, err := w.CreatePayment(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if res2.PaymentID == res.PaymentID {
		t.Error("payment ids must be locally unique")
	}
}

func TestCreatePaymentRejectsNonPositive(t *testing.T) {
	w := New(domain.JSONMap{})

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := w.CreatePayment(context.Background(), &domain.CreatePaymentRequest{Amount: amount})
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Errorf("amount %s: got %v, want ErrInvalidAmount", amount, err)
		}
	}
}

func TestValidateCredentialsEmptyBlob(t *testing.T) {
	// the resolver's terminal fallback is wallet with an empty blob, so an
	// empty blob must validate
	if err := New(domain.JSONMap{}).ValidateCredentials(context.Background()); err != nil {
		t.Error(err)
	}
	if err := New(nil).ValidateCredentials(context.Background()); err != nil {
		t.Error(err)
	}
}

func TestCheckStatusPending(t *testing.T) {
	st, err := New(domain.JSONMap{}).CheckStatus(context.Background(), "wal-x")
	if err != nil {
		t.Fatal(err)
	}
	if st.Paid {
		t.Error("wallet payments settle through the sale pipeline, never paid here")
	}
}
