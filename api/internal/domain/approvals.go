package domain

import "time"

type ApprovalStatus uint8

const (
	APPROVAL_PENDING ApprovalStatus = iota
	APPROVAL_APPROVED
	APPROVAL_REJECTED
)

var ApprovalStatuses = [...]string{"pending", "approved", "rejected"}

func (s ApprovalStatus) ToString() string {
	return ApprovalStatuses[s]
}

func (s ApprovalStatus) IsPending() bool {
	return s == APPROVAL_PENDING
}

func (s ApprovalStatus) IsApproved() bool {
	return s == APPROVAL_APPROVED
}

func StrToApprovalStatus(s string) ApprovalStatus {
	for i, statusName := range ApprovalStatuses {
		if s == statusName {
			return ApprovalStatus(i)
		}
	}
	return APPROVAL_PENDING
}

// WalletApprovalRequests is an append-only log. A user may have many rows,
// the current status is always the newest row by RequestedAt.
type WalletApprovalRequests struct {
	ID        uint   `gorm:"primaryKey"`
	RequestID string `gorm:"unique;size:36;not null"`
	UserID    string `gorm:"size:36;not null;index"`
	StoreID   string `gorm:"size:36;not null"`
	TaxID     string `gorm:"size:14;not null"`
	LegalName string `gorm:"size:128;not null"`
	// pix transfer destination for wallet payouts
	PixKey        string         `gorm:"size:140;not null"`
	Status        ApprovalStatus `gorm:"type:int8;not null"`
	RequestedAt   time.Time      `gorm:"not null;index"`
	DecidedAt     *time.Time
	DecidedBy     string `gorm:"size:36"`
	DecisionNotes string `gorm:"type:text"`
}
