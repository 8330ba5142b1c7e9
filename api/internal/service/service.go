package service

import (
	"context"

	"payhub/api/internal/config"
	"payhub/api/internal/domain"
	"payhub/api/internal/infra/nats"
	"payhub/api/internal/logger"
	"payhub/api/internal/repository"
	"payhub/pkg/nats/natsdomain"

	"gorm.io/gorm"
)

type Activation interface {
	// turns a provider on or off for a store. activation is gated by
	// configuration (external providers) or approval (wallet), deactivation
	// is unconditional for the owner and admins.
	SetActive(storeID string, p domain.Provider, desired bool, actor domain.Actor) error
	SaveCredentials(storeID string, p domain.Provider, creds domain.JSONMap, actor domain.Actor) error
	GetConfigurations(storeID string, actor domain.Actor) ([]domain.GatewayConfigurations, error)
}

type Approvals interface {
	Submit(actor domain.Actor, taxID, legalName, pixKey string) (*domain.WalletApprovalRequests, error)
	Decide(actor domain.Actor, requestID string, approve bool, notes string) (*domain.WalletApprovalRequests, error)
	CurrentStatus(userID string) (*domain.WalletApprovalRequests, error)
	ListPending(actor domain.Actor) ([]domain.WalletApprovalRequests, error)
}

type Resolver interface {
	// never fails: falls back through store config, reference store, global
	// default and finally the wallet provider with an empty blob
	ResolveActiveProvider(storeID string) domain.ResolvedProvider
}

type Commissions interface {
	Record(tx *gorm.DB, sale *natsdomain.SaleSettled) (*domain.Commissions, error)
	FindBySale(saleID string) (*domain.Commissions, error)
	ListByStore(storeID string, limit int) ([]domain.Commissions, error)
	StoreSummary(storeID string) (*domain.CommissionSummary, error)
}

type Payments interface {
	CreatePayment(ctx context.Context, storeID string, req *domain.CreatePaymentRequest) (*domain.CreatePaymentResult, domain.Provider, error)
	CheckStatus(ctx context.Context, storeID string, paymentID string) (*domain.PaymentStatus, error)
}

type Settings interface {
	DefaultProvider() (domain.Provider, error)
	SetDefaultProvider(actor domain.Actor, p domain.Provider) error
}

type Settlements interface {
	StartWaitSettled()
}

type QrCodes interface {
	// generates qr code and saves it to cache
	New(content string) (string, error)
	// returns qr code from cache or generates new one
	FindOrNew(content string) (string, error)
}

type Locker interface {
	Lock(key string)
	Unlock(key string)
}

type Services struct {
	Activation  Activation
	Approvals   Approvals
	Resolver    Resolver
	Commissions Commissions
	Payments    Payments
	Settings    Settings
	Settlements Settlements
	QrCodes     QrCodes
}

func NewServices(n *nats.NatsInfra, db *gorm.DB, l logger.Logger, config *config.Config) *Services {
	configsRepo := repository.InitGatewayConfigsRepo()
	approvalsRepo := repository.InitApprovalsRepo()
	commissionsRepo := repository.InitCommissionsRepo()
	settingsRepo := repository.InitSettingsRepo()

	lockerService := NewLockerService()
	qrCodesService := NewQrCodesService()

	resolverService := NewResolverService(db, configsRepo, settingsRepo, l, config)
	commissionsService := NewCommissionsService(db, commissionsRepo, settingsRepo, l, config)

	return &Services{
		Activation:  NewActivationService(db, configsRepo, approvalsRepo, lockerService, l, config),
		Approvals:   NewApprovalsService(db, approvalsRepo, l),
		Resolver:    resolverService,
		Commissions: commissionsService,
		Payments:    NewPaymentsService(resolverService, qrCodesService, l),
		Settings:    NewSettingsService(db, settingsRepo),
		Settlements: NewSettlementsService(db, n, l, commissionsService),
		QrCodes:     qrCodesService,
	}
}
