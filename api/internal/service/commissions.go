package service

import (
	"fmt"

	"payhub/api/internal/config"
	"payhub/api/internal/domain"
	"payhub/api/internal/infra/postgres"
	"payhub/api/internal/logger"
	"payhub/api/internal/repository"
	"payhub/pkg/nats/natsdomain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var hundred = decimal.NewFromInt(100)

type CommissionsService struct {
	repo     repository.Commissions
	settings repository.Settings
	db       *gorm.DB
	l        logger.Logger
	config   *config.Config
}

func NewCommissionsService(db *gorm.DB, repo repository.Commissions, settings repository.Settings, l logger.Logger, config *config.Config) *CommissionsService {
	return &CommissionsService{repo: repo, settings: settings, db: db, l: l, config: config}
}

// Record persists the platform's cut for one wallet-settled sale.
// commission = F + (P/100)*T, net = T - commission. Exactly one row per sale:
// a second call for the same sale id returns ErrDuplicateCommission.
func (s *CommissionsService) Record(tx *gorm.DB, sale *natsdomain.SaleSettled) (*domain.Commissions, error) {
	if sale.SaleID == "" {
		return nil, fmt.Errorf("%w: empty sale id", domain.ErrInvalidAmount)
	}
	if sale.Amount.Sign() <= 0 {
		// zero-amount sales are rejected here rather than producing a
		// negative net
		return nil, fmt.Errorf("%w: gross amount must be positive", domain.ErrInvalidAmount)
	}

	fixed, percent := s.currentFees(tx)

	commissionAmount := fixed.Add(percent.Div(hundred).Mul(sale.Amount))
	net := sale.Amount.Sub(commissionAmount)

	row := &domain.Commissions{
		SaleID:           sale.SaleID,
		StoreID:          sale.StoreID,
		PayerID:          sale.PayerID,
		GrossAmount:      sale.Amount,
		FixedFee:         fixed,
		PercentFee:       percent,
		CommissionAmount: commissionAmount,
		NetAmount:        net,
		SaleDate:         sale.SaleDate,
	}

	if err := s.repo.Create(tx, row); err != nil {
		if postgres.IsDuplicate(err) {
			return nil, domain.ErrDuplicateCommission
		}
		return nil, err
	}

	s.l.TemplSettlementInfo("commission recorded", sale.SaleID, sale.StoreID, commissionAmount.String())
	return row, nil
}

// the fee schedule table wins over the config defaults, newest row first
func (s *CommissionsService) currentFees(tx *gorm.DB) (fixed, percent decimal.Decimal) {
	fs, err := s.settings.CurrentFees(tx)
	if err == nil {
		return fs.FixedFee, fs.PercentFee
	}
	if !postgres.IsNotFound(err) {
		s.l.Error("fee schedule lookup failed, using config fees", "error", err.Error())
	}
	return s.config.Fees.FixedFee, s.config.Fees.PercentFee
}

func (s *CommissionsService) FindBySale(saleID string) (*domain.Commissions, error) {
	commission, err := s.repo.FindBySale(s.db, saleID)
	if err != nil {
		if postgres.IsNotFound(err) {
			return nil, domain.ErrCommissionNotFound
		}
		return nil, err
	}
	return commission, nil
}

func (s *CommissionsService) ListByStore(storeID string, limit int) ([]domain.Commissions, error) {
	return s.repo.FindByStore(s.db, storeID, limit)
}

func (s *CommissionsService) StoreSummary(storeID string) (*domain.CommissionSummary, error) {
	return s.repo.SummarizeStore(s.db, storeID)
}
