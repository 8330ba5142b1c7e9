package service

import (
	"payhub/api/internal/domain"
	"payhub/api/internal/infra/postgres"
	"payhub/api/internal/repository"

	"gorm.io/gorm"
)

type SettingsService struct {
	repo repository.Settings
	db   *gorm.DB
}

func NewSettingsService(db *gorm.DB, repo repository.Settings) *SettingsService {
	return &SettingsService{repo: repo, db: db}
}

func (s *SettingsService) DefaultProvider() (domain.Provider, error) {
	settings, err := s.repo.Get(s.db)
	if err != nil {
		if postgres.IsNotFound(err) {
			return domain.PROVIDER_NONE, nil
		}
		return domain.PROVIDER_NONE, err
	}
	return settings.DefaultProvider, nil
}

func (s *SettingsService) SetDefaultProvider(actor domain.Actor, p domain.Provider) error {
	if !actor.IsAdmin() {
		return domain.ErrInsufficientRole
	}
	if p.IsNone() {
		return domain.ErrUnsupportedProvider
	}
	return s.repo.SetDefaultProvider(s.db, p)
}
