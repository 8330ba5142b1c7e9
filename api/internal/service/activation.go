package service

import (
	"context"
	"fmt"
	"time"

	"payhub/api/internal/config"
	"payhub/api/internal/domain"
	"payhub/api/internal/infra/postgres"
	"payhub/api/internal/logger"
	"payhub/api/internal/provider"
	"payhub/api/internal/repository"

	"gorm.io/gorm"
)

const credentialCheckTimeout = 10 * time.Second

type ActivationService struct {
	configs   repository.GatewayConfigs
	approvals repository.Approvals
	locker    Locker
	db        *gorm.DB
	l         logger.Logger
	config    *config.Config
}

func NewActivationService(db *gorm.DB, configs repository.GatewayConfigs, approvals repository.Approvals, locker Locker, l logger.Logger, config *config.Config) *ActivationService {
	return &ActivationService{configs: configs, approvals: approvals, locker: locker, db: db, l: l, config: config}
}

func (s *ActivationService) SetActive(storeID string, p domain.Provider, desired bool, actor domain.Actor) error {
	if p.IsNone() {
		return domain.ErrUnsupportedProvider
	}
	if !actor.IsAdmin() && !actor.OwnsStore(storeID) {
		return domain.ErrInsufficientRole
	}

	// activation has a cross-row invariant, serialize per store
	s.locker.Lock(storeID)
	defer s.locker.Unlock(storeID)

	if !desired {
		if err := s.configs.Deactivate(s.db, storeID, p); err != nil {
			return err
		}
		s.l.TemplActivationInfo("gateway deactivated", storeID, p.ToString(), false)
		return nil
	}

	if p.IsWallet() {
		if err := s.checkWalletApproval(actor); err != nil {
			return err
		}
		// wallet needs no stored credentials, create its row on first
		// activation
		if err := s.ensureWalletRow(storeID); err != nil {
			return err
		}
	} else {
		cfg, err := s.configs.Find(s.db, storeID, p)
		if err != nil {
			if postgres.IsNotFound(err) {
				return domain.ErrNotConfigured
			}
			return err
		}
		if !cfg.Configured {
			return domain.ErrNotConfigured
		}
	}

	if err := s.configs.Activate(s.db, storeID, p); err != nil {
		return err
	}

	s.l.TemplActivationInfo("gateway activated", storeID, p.ToString(), true)
	return nil
}

// admins may always activate the wallet. owners need an approved request as
// their most recent one: a newer pending or rejected submission supersedes an
// older approval.
func (s *ActivationService) checkWalletApproval(actor domain.Actor) error {
	if actor.IsAdmin() {
		return nil
	}

	latest, err := s.approvals.FindLatestByUser(s.db, actor.UserID)
	if err != nil {
		if postgres.IsNotFound(err) {
			return domain.ErrApprovalNotRequested
		}
		return err
	}

	switch latest.Status {
	case domain.APPROVAL_APPROVED:
		return nil
	case domain.APPROVAL_PENDING:
		return domain.ErrApprovalPending
	default: // rejected, the next step is a new submission
		return domain.ErrApprovalNotRequested
	}
}

func (s *ActivationService) ensureWalletRow(storeID string) error {
	_, err := s.configs.Find(s.db, storeID, domain.PROVIDER_WALLET)
	if err == nil {
		return nil
	}
	if !postgres.IsNotFound(err) {
		return err
	}

	now := time.Now()
	return s.configs.Upsert(s.db, &domain.GatewayConfigurations{
		StoreID:      storeID,
		Provider:     domain.PROVIDER_WALLET,
		Configured:   true,
		Credentials:  domain.JSONMap{},
		ConfiguredAt: &now,
	})
}

func (s *ActivationService) SaveCredentials(storeID string, p domain.Provider, creds domain.JSONMap, actor domain.Actor) error {
	if !actor.IsAdmin() && !actor.OwnsStore(storeID) {
		return domain.ErrInsufficientRole
	}

	ad, err := provider.New(p, creds)
	if err != nil {
		return err
	}

	for _, k := range ad.Describe().RequiredCredentials {
		if creds[k] == "" {
			return fmt.Errorf("%w: missing field %s", domain.ErrNotConfigured, k)
		}
	}

	// round trip to the provider before persisting anything, a communication
	// failure must not leave the row half-updated
	if p.IsExternal() && !s.config.Testing.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), credentialCheckTimeout)
		defer cancel()

		if err := ad.ValidateCredentials(ctx); err != nil {
			errid := logger.GenErrorId()
			s.l.TemplActivationErr("credential validation failed", errid, storeID, p.ToString(), err)
			return err
		}
	}

	now := time.Now()
	return s.configs.Upsert(s.db, &domain.GatewayConfigurations{
		StoreID:      storeID,
		Provider:     p,
		Configured:   true,
		Credentials:  creds,
		ConfiguredAt: &now,
	})
}

func (s *ActivationService) GetConfigurations(storeID string, actor domain.Actor) ([]domain.GatewayConfigurations, error) {
	if !actor.IsAdmin() && !actor.OwnsStore(storeID) {
		return nil, domain.ErrInsufficientRole
	}
	return s.configs.FindByStore(s.db, storeID)
}
