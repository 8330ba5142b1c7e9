package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Commissions are immutable once created. The unique index on SaleID is what
// makes recording idempotent under concurrent settlement notifications.
type Commissions struct {
	Model
	ID               uint            `gorm:"primaryKey"`
	SaleID           string          `gorm:"uniqueIndex;size:36;not null"`
	StoreID          string          `gorm:"size:36;not null;index"`
	PayerID          string          `gorm:"size:36"`
	GrossAmount      decimal.Decimal `gorm:"type:numeric;not null"`
	FixedFee         decimal.Decimal `gorm:"type:numeric;not null"`
	PercentFee       decimal.Decimal `gorm:"type:numeric;not null"`
	CommissionAmount decimal.Decimal `gorm:"type:numeric;not null"`
	NetAmount        decimal.Decimal `gorm:"type:numeric;not null"`
	SaleDate         time.Time
}

type CommissionSummary struct {
	Count      int64           `json:"count"`
	Gross      decimal.Decimal `json:"gross"`
	Commission decimal.Decimal `json:"commission"`
	Net        decimal.Decimal `json:"net"`
}
