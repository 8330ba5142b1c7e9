package repository

import (
	"time"

	"payhub/api/internal/domain"

	"gorm.io/gorm"
)

type ApprovalsRepo struct {
}

func InitApprovalsRepo() *ApprovalsRepo {
	return &ApprovalsRepo{}
}

func (r *ApprovalsRepo) Create(tx *gorm.DB, req *domain.WalletApprovalRequests) error {
	return tx.Create(req).Error
}

func (r *ApprovalsRepo) FindByRequestID(tx *gorm.DB, requestID string) (*domain.WalletApprovalRequests, error) {
	var req domain.WalletApprovalRequests
	return &req, tx.Where("request_id = ?", requestID).First(&req).Error
}

func (r *ApprovalsRepo) FindLatestByUser(tx *gorm.DB, userID string) (*domain.WalletApprovalRequests, error) {
	var req domain.WalletApprovalRequests
	return &req, tx.Where("user_id = ?", userID).Order("requested_at DESC").First(&req).Error
}

func (r *ApprovalsRepo) FindPending(tx *gorm.DB) ([]domain.WalletApprovalRequests, error) {
	var reqs []domain.WalletApprovalRequests
	return reqs, tx.Where("status = ?", domain.APPROVAL_PENDING).Order("requested_at ASC").Find(&reqs).Error
}

// Decide only transitions rows still in pending. A decided row stays decided,
// the caller checks the affected count.
func (r *ApprovalsRepo) Decide(tx *gorm.DB, id uint, status domain.ApprovalStatus, decidedBy string, notes string) (int64, error) {
	now := time.Now()
	res := tx.Model(&domain.WalletApprovalRequests{}).
		Where("id = ? AND status = ?", id, domain.APPROVAL_PENDING).
		Updates(map[string]any{
			"status":         status,
			"decided_at":     &now,
			"decided_by":     decidedBy,
			"decision_notes": notes,
		})
	return res.RowsAffected, res.Error
}
