package repository

import (
	"payhub/api/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GatewayConfigsRepo struct {
}

func InitGatewayConfigsRepo() *GatewayConfigsRepo {
	return &GatewayConfigsRepo{}
}

func (r *GatewayConfigsRepo) Upsert(tx *gorm.DB, cfg *domain.GatewayConfigurations) error {
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "store_id"}, {Name: "provider"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"configured", "credentials", "configured_at", "updated_at",
		}),
	}).Create(cfg).Error
}

func (r *GatewayConfigsRepo) Find(tx *gorm.DB, storeID string, p domain.Provider) (*domain.GatewayConfigurations, error) {
	var cfg domain.GatewayConfigurations
	return &cfg, tx.Where("store_id = ? AND provider = ?", storeID, p).First(&cfg).Error
}

func (r *GatewayConfigsRepo) FindByStore(tx *gorm.DB, storeID string) ([]domain.GatewayConfigurations, error) {
	var cfgs []domain.GatewayConfigurations
	return cfgs, tx.Where("store_id = ?", storeID).Order("provider").Find(&cfgs).Error
}

func (r *GatewayConfigsRepo) FindActive(tx *gorm.DB, storeID string) (*domain.GatewayConfigurations, error) {
	var cfg domain.GatewayConfigurations
	return &cfg, tx.Where("store_id = ? AND active = ? AND configured = ?", storeID, true, true).
		Order("configured_at DESC NULLS LAST").First(&cfg).Error
}

func (r *GatewayConfigsRepo) FindActiveAny(tx *gorm.DB, storeID string) (*domain.GatewayConfigurations, error) {
	var cfg domain.GatewayConfigurations
	return &cfg, tx.Where("store_id = ? AND active = ?", storeID, true).
		Order("configured_at DESC NULLS LAST").First(&cfg).Error
}

// Activate flips the target row on and every sibling off inside one
// transaction, so the one-active-per-store invariant holds even under
// concurrent activations.
func (r *GatewayConfigsRepo) Activate(tx *gorm.DB, storeID string, p domain.Provider) error {
	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.GatewayConfigurations{}).
			Where("store_id = ? AND provider <> ? AND active = ?", storeID, p, true).
			Update("active", false).Error; err != nil {
			return err
		}

		res := tx.Model(&domain.GatewayConfigurations{}).
			Where("store_id = ? AND provider = ?", storeID, p).
			Update("active", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrConfigNotFound
		}
		return nil
	})
}

func (r *GatewayConfigsRepo) Deactivate(tx *gorm.DB, storeID string, p domain.Provider) error {
	// no row is a no-op: a provider that was never configured is not active
	return tx.Model(&domain.GatewayConfigurations{}).
		Where("store_id = ? AND provider = ?", storeID, p).
		Update("active", false).Error
}
