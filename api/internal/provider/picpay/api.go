package picpay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"payhub/api/internal/domain"
	"payhub/pkg/dlog"
)

const apiBase = "https://appws.picpay.com/ecommerce/public"

type apiPaymentRequest struct {
	ReferenceId string `json:"referenceId"`
	Value       string `json:"value"`
	CallbackUrl string `json:"callbackUrl,omitempty"`
	Buyer       struct {
		Document string `json:"document,omitempty"`
	} `json:"buyer"`
}

type apiPaymentResponse struct {
	ReferenceId string `json:"referenceId"`
	PaymentUrl  string `json:"paymentUrl"`
	Qrcode      struct {
		Content string `json:"content"`
	} `json:"qrcode"`
}

type apiStatusResponse struct {
	ReferenceId string `json:"referenceId"`
	Status      string `json:"status"`
}

func (p *Picpay) doRequest(ctx context.Context, method, path string, body any, out any) (int, error) {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reqBody = bytes.NewBuffer(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiBase+path, reqBody)
	if err != nil {
		return 0, err
	}
	req.Header.Set("x-picpay-token", p.creds[credPicpayToken])
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, asProviderErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		dlog.New().Log("picpay api error", "path", path, "status", resp.StatusCode, "body", string(respBody))
		return resp.StatusCode, fmt.Errorf("%w: picpay status %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}

	if out == nil {
		return resp.StatusCode, nil
	}
	return resp.StatusCode, json.NewDecoder(resp.Body).Decode(out)
}

func asProviderErr(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %s", domain.ErrProviderTimeout, err.Error())
	}
	return fmt.Errorf("%w: %s", domain.ErrProviderUnavailable, err.Error())
}
