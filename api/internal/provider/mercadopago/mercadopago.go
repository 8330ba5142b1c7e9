package mercadopago

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"payhub/api/internal/domain"
)

const credAccessToken = "access_token"

const requestTimeout = 10 * time.Second

type Mercadopago struct {
	creds  domain.JSONMap
	client *http.Client
}

func New(creds domain.JSONMap) *Mercadopago {
	return &Mercadopago{
		creds:  creds,
		client: &http.Client{Timeout: requestTimeout},
	}
}

func (m *Mercadopago) Describe() domain.ProviderMetadata {
	return domain.ProviderMetadata{
		DisplayName:         "Mercado Pago",
		RequiredCredentials: []string{credAccessToken},
		PaymentMethods:      []string{"pix", "credit_card", "boleto"},
	}
}

func (m *Mercadopago) CreatePayment(ctx context.Context, req *domain.CreatePaymentRequest) (*domain.CreatePaymentResult, error) {
	body := apiPaymentRequest{
		TransactionAmount: req.Amount.InexactFloat64(),
		Description:       req.Description,
		PaymentMethodId:   "pix",
		ExternalReference: req.SaleID,
	}

	var resp apiPaymentResponse
	if err := m.doRequest(ctx, http.MethodPost, "/v1/payments", body, &resp); err != nil {
		return nil, err
	}

	return &domain.CreatePaymentResult{
		PaymentID:   strconv.FormatInt(resp.Id, 10),
		Code:        resp.PointOfInteraction.TransactionData.QrCode,
		RedirectURL: resp.PointOfInteraction.TransactionData.TicketUrl,
	}, nil
}

func (m *Mercadopago) CheckStatus(ctx context.Context, paymentID string) (*domain.PaymentStatus, error) {
	var resp apiPaymentResponse
	if err := m.doRequest(ctx, http.MethodGet, "/v1/payments/"+paymentID, nil, &resp); err != nil {
		return nil, err
	}

	return &domain.PaymentStatus{
		Status: resp.Status,
		Paid:   resp.Status == "approved",
	}, nil
}

// lightweight round trip: the token is valid if /users/me answers 2xx
func (m *Mercadopago) ValidateCredentials(ctx context.Context) error {
	return m.doRequest(ctx, http.MethodGet, "/users/me", nil, nil)
}
