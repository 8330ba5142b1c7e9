package repository

import (
	"payhub/api/internal/domain"

	"gorm.io/gorm"
)

type GatewayConfigs interface {
	Upsert(tx *gorm.DB, cfg *domain.GatewayConfigurations) error
	Find(tx *gorm.DB, storeID string, p domain.Provider) (*domain.GatewayConfigurations, error)
	FindByStore(tx *gorm.DB, storeID string) ([]domain.GatewayConfigurations, error)
	// active + configured, newest ConfiguredAt first
	FindActive(tx *gorm.DB, storeID string) (*domain.GatewayConfigurations, error)
	// active only, for the reference-store fallback
	FindActiveAny(tx *gorm.DB, storeID string) (*domain.GatewayConfigurations, error)
	Activate(tx *gorm.DB, storeID string, p domain.Provider) error
	Deactivate(tx *gorm.DB, storeID string, p domain.Provider) error
}

type Approvals interface {
	Create(tx *gorm.DB, req *domain.WalletApprovalRequests) error
	FindByRequestID(tx *gorm.DB, requestID string) (*domain.WalletApprovalRequests, error)
	FindLatestByUser(tx *gorm.DB, userID string) (*domain.WalletApprovalRequests, error)
	FindPending(tx *gorm.DB) ([]domain.WalletApprovalRequests, error)
	// conditional pending -> decided transition, returns affected rows
	Decide(tx *gorm.DB, id uint, status domain.ApprovalStatus, decidedBy string, notes string) (int64, error)
}

type Commissions interface {
	Create(tx *gorm.DB, commission *domain.Commissions) error
	FindBySale(tx *gorm.DB, saleID string) (*domain.Commissions, error)
	FindByStore(tx *gorm.DB, storeID string, limit int) ([]domain.Commissions, error)
	SummarizeStore(tx *gorm.DB, storeID string) (*domain.CommissionSummary, error)
}

type Settings interface {
	Get(tx *gorm.DB) (*domain.PlatformSettings, error)
	SetDefaultProvider(tx *gorm.DB, p domain.Provider) error
	CurrentFees(tx *gorm.DB) (*domain.FeeSchedules, error)
	AddFeeSchedule(tx *gorm.DB, fs *domain.FeeSchedules) error
}

type Repositories struct {
	GatewayConfigs GatewayConfigs
	Approvals      Approvals
	Commissions    Commissions
	Settings       Settings
}

func New() *Repositories {
	return &Repositories{
		GatewayConfigs: InitGatewayConfigsRepo(),
		Approvals:      InitApprovalsRepo(),
		Commissions:    InitCommissionsRepo(),
		Settings:       InitSettingsRepo(),
	}
}
