package domain

type Provider uint8

const (
	PROVIDER_NONE Provider = iota // only for init
	PROVIDER_WALLET
	PROVIDER_MERCADOPAGO
	PROVIDER_PICPAY
)

var Providers = [...]string{"none", "wallet", "mercadopago", "picpay"}

func (p Provider) ToString() string {
	return Providers[p]
}

func (p Provider) IsNone() bool {
	return p == PROVIDER_NONE
}

func (p Provider) IsWallet() bool {
	return p == PROVIDER_WALLET
}

// external providers settle through a remote payment API
func (p Provider) IsExternal() bool {
	return !p.IsNone() && !p.IsWallet()
}

func StrToProvider(s string) Provider {
	for i, providerName := range Providers {
		if s == providerName {
			return Provider(i)
		}
	}
	return PROVIDER_NONE
}
