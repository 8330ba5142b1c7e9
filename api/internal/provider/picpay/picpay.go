package picpay

import (
	"context"
	"errors"
	"net/http"
	"time"

	"payhub/api/internal/domain"

	"github.com/google/uuid"
)

const credPicpayToken = "picpay_token"

const requestTimeout = 10 * time.Second

type Picpay struct {
	creds  domain.JSONMap
	client *http.Client
}

func New(creds domain.JSONMap) *Picpay {
	return &Picpay{
		creds:  creds,
		client: &http.Client{Timeout: requestTimeout},
	}
}

func (p *Picpay) Describe() domain.ProviderMetadata {
	return domain.ProviderMetadata{
		DisplayName:         "PicPay",
		RequiredCredentials: []string{credPicpayToken},
		PaymentMethods:      []string{"picpay_app", "pix"},
	}
}

func (p *Picpay) CreatePayment(ctx context.Context, req *domain.CreatePaymentRequest) (*domain.CreatePaymentResult, error) {
	body := apiPaymentRequest{
		ReferenceId: req.SaleID,
		Value:       req.Amount.StringFixed(2),
	}

	var resp apiPaymentResponse
	if _, err := p.doRequest(ctx, http.MethodPost, "/payments", body, &resp); err != nil {
		return nil, err
	}

	return &domain.CreatePaymentResult{
		PaymentID:   resp.ReferenceId,
		Code:        resp.Qrcode.Content,
		RedirectURL: resp.PaymentUrl,
	}, nil
}

func (p *Picpay) CheckStatus(ctx context.Context, paymentID string) (*domain.PaymentStatus, error) {
	var resp apiStatusResponse
	if _, err := p.doRequest(ctx, http.MethodGet, "/payments/"+paymentID+"/status", nil, &resp); err != nil {
		return nil, err
	}

	return &domain.PaymentStatus{
		Status: resp.Status,
		Paid:   resp.Status == "paid" || resp.Status == "completed",
	}, nil
}

// picpay has no ping endpoint. probe the status of a payment that cannot
// exist: a 404 means the token was accepted, a 401 means it was not.
func (p *Picpay) ValidateCredentials(ctx context.Context) error {
	status, err := p.doRequest(ctx, http.MethodGet, "/payments/"+uuid.NewString()+"/status", nil, nil)
	if err == nil || status == http.StatusNotFound {
		return nil
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return errors.New("picpay token rejected")
	}
	return err
}
