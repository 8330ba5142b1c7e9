package service

import (
	"payhub/api/internal/config"
	"payhub/api/internal/domain"
	"payhub/api/internal/infra/postgres"
	"payhub/api/internal/logger"
	"payhub/api/internal/repository"

	"gorm.io/gorm"
)

type ResolverService struct {
	configs  repository.GatewayConfigs
	settings repository.Settings
	db       *gorm.DB
	l        logger.Logger
	config   *config.Config
}

func NewResolverService(db *gorm.DB, configs repository.GatewayConfigs, settings repository.Settings, l logger.Logger, config *config.Config) *ResolverService {
	return &ResolverService{configs: configs, settings: settings, db: db, l: l, config: config}
}

// ResolveActiveProvider picks the provider and credentials for a payment.
// First match wins:
//  1. the store's own active and configured gateway
//  2. the reference store's active gateway
//  3. the platform default gateway setting, empty blob
//  4. wallet, empty blob
//
// Storage errors other than not-found are logged and treated as a miss, the
// chain always terminates with a usable answer.
func (s *ResolverService) ResolveActiveProvider(storeID string) domain.ResolvedProvider {
	cfg, err := s.configs.FindActive(s.db, storeID)
	if err == nil {
		return domain.ResolvedProvider{Provider: cfg.Provider, Credentials: cfg.Credentials}
	}
	s.logMiss("store gateway lookup failed", storeID, err)

	if ref := s.config.ReferenceStoreID; ref != "" && ref != storeID {
		cfg, err := s.configs.FindActiveAny(s.db, ref)
		if err == nil {
			return domain.ResolvedProvider{Provider: cfg.Provider, Credentials: cfg.Credentials}
		}
		s.logMiss("reference store lookup failed", ref, err)
	}

	settings, err := s.settings.Get(s.db)
	if err == nil && !settings.DefaultProvider.IsNone() {
		return domain.ResolvedProvider{Provider: settings.DefaultProvider, Credentials: domain.JSONMap{}}
	}
	s.logMiss("platform settings lookup failed", storeID, err)

	return domain.ResolvedProvider{Provider: domain.PROVIDER_WALLET, Credentials: domain.JSONMap{}}
}

func (s *ResolverService) logMiss(message string, storeID string, err error) {
	if err == nil || postgres.IsNotFound(err) {
		return
	}
	s.l.Error(message, "store_id", storeID, "error", err.Error())
}
