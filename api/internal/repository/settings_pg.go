package repository

import (
	"payhub/api/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepo struct {
}

func InitSettingsRepo() *SettingsRepo {
	return &SettingsRepo{}
}

func (r *SettingsRepo) Get(tx *gorm.DB) (*domain.PlatformSettings, error) {
	var settings domain.PlatformSettings
	return &settings, tx.Where("id = ?", domain.PLATFORM_SETTINGS_ID).First(&settings).Error
}

func (r *SettingsRepo) SetDefaultProvider(tx *gorm.DB, p domain.Provider) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"default_provider", "updated_at"}),
	}).Create(&domain.PlatformSettings{ID: domain.PLATFORM_SETTINGS_ID, DefaultProvider: p}).Error
}

func (r *SettingsRepo) CurrentFees(tx *gorm.DB) (*domain.FeeSchedules, error) {
	var fs domain.FeeSchedules
	return &fs, tx.Order("effective_at DESC").First(&fs).Error
}

func (r *SettingsRepo) AddFeeSchedule(tx *gorm.DB, fs *domain.FeeSchedules) error {
	return tx.Create(fs).Error
}
