package service

import (
	"time"

	"payhub/api/internal/domain"
	"payhub/api/internal/infra/postgres"
	"payhub/api/internal/logger"
	"payhub/api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApprovalsService struct {
	repo repository.Approvals
	db   *gorm.DB
	l    logger.Logger
}

func NewApprovalsService(db *gorm.DB, repo repository.Approvals, l logger.Logger) *ApprovalsService {
	return &ApprovalsService{repo: repo, db: db, l: l}
}

// Submit appends one request to the log. Resubmitting while an older request
// is still pending is allowed, the new row supersedes it.
func (s *ApprovalsService) Submit(actor domain.Actor, taxID, legalName, pixKey string) (*domain.WalletApprovalRequests, error) {
	if actor.Role != domain.ROLE_STORE_OWNER {
		return nil, domain.ErrInsufficientRole
	}

	cleanedTaxID, err := domain.ValidateTaxID(taxID)
	if err != nil {
		return nil, err
	}

	req := &domain.WalletApprovalRequests{
		RequestID:   uuid.NewString(),
		UserID:      actor.UserID,
		StoreID:     actor.StoreID,
		TaxID:       cleanedTaxID,
		LegalName:   legalName,
		PixKey:      pixKey,
		Status:      domain.APPROVAL_PENDING,
		RequestedAt: time.Now(),
	}

	if err := s.repo.Create(s.db, req); err != nil {
		return nil, err
	}

	s.l.TemplApprovalInfo("approval request submitted", req.RequestID, req.UserID, req.Status.ToString())
	return req, nil
}

func (s *ApprovalsService) Decide(actor domain.Actor, requestID string, approve bool, notes string) (*domain.WalletApprovalRequests, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrInsufficientRole
	}

	req, err := s.repo.FindByRequestID(s.db, requestID)
	if err != nil {
		if postgres.IsNotFound(err) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}

	status := domain.APPROVAL_REJECTED
	if approve {
		status = domain.APPROVAL_APPROVED
	}

	affected, err := s.repo.Decide(s.db, req.ID, status, actor.UserID, notes)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, domain.ErrRequestAlreadyDecided
	}

	s.l.TemplApprovalInfo("approval request decided", req.RequestID, req.UserID, status.ToString())

	return s.repo.FindByRequestID(s.db, requestID)
}

// the current status is always the newest row by requested_at, older rows are
// history only
func (s *ApprovalsService) CurrentStatus(userID string) (*domain.WalletApprovalRequests, error) {
	req, err := s.repo.FindLatestByUser(s.db, userID)
	if err != nil {
		if postgres.IsNotFound(err) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	return req, nil
}

func (s *ApprovalsService) ListPending(actor domain.Actor) ([]domain.WalletApprovalRequests, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrInsufficientRole
	}
	return s.repo.FindPending(s.db)
}
