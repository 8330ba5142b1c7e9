package repository

import (
	"payhub/api/internal/domain"

	"gorm.io/gorm"
)

type CommissionsRepo struct {
}

func InitCommissionsRepo() *CommissionsRepo {
	return &CommissionsRepo{}
}

// Create relies on the unique index on sale_id. Duplicate settlement
// notifications surface as a duplicate-key error, never as a second row.
func (r *CommissionsRepo) Create(tx *gorm.DB, commission *domain.Commissions) error {
	return tx.Create(commission).Error
}

func (r *CommissionsRepo) FindBySale(tx *gorm.DB, saleID string) (*domain.Commissions, error) {
	var commission domain.Commissions
	return &commission, tx.Where("sale_id = ?", saleID).First(&commission).Error
}

func (r *CommissionsRepo) FindByStore(tx *gorm.DB, storeID string, limit int) ([]domain.Commissions, error) {
	var commissions []domain.Commissions
	return commissions, tx.Where("store_id = ?", storeID).
		Order("sale_date DESC").Limit(limit).Find(&commissions).Error
}

func (r *CommissionsRepo) SummarizeStore(tx *gorm.DB, storeID string) (*domain.CommissionSummary, error) {
	var summary domain.CommissionSummary
	err := tx.Model(&domain.Commissions{}).Where("store_id = ?", storeID).
		Select("COUNT(*) AS count, COALESCE(SUM(gross_amount), 0) AS gross, COALESCE(SUM(commission_amount), 0) AS commission, COALESCE(SUM(net_amount), 0) AS net").
		Scan(&summary).Error
	return &summary, err
}
