package provider

import (
	"fmt"

	"payhub/api/internal/domain"
	"payhub/api/internal/provider/mercadopago"
	"payhub/api/internal/provider/picpay"
	"payhub/api/internal/provider/wallet"
)

// New is the only place provider types are wired in. Pure function, holds no
// state and performs no I/O.
func New(p domain.Provider, creds domain.JSONMap) (Adapter, error) {
	switch p {
	case domain.PROVIDER_WALLET:
		return wallet.New(creds), nil
	case domain.PROVIDER_MERCADOPAGO:
		return mercadopago.New(creds), nil
	case domain.PROVIDER_PICPAY:
		return picpay.New(creds), nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedProvider, p.ToString())
	}
}

func Describe(p domain.Provider) (domain.ProviderMetadata, error) {
	ad, err := New(p, domain.JSONMap{})
	if err != nil {
		return domain.ProviderMetadata{}, err
	}
	return ad.Describe(), nil
}
