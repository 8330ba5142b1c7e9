package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const PLATFORM_SETTINGS_ID = 1

// PlatformSettings is a singleton row. DefaultProvider is the platform-wide
// gateway used when a store has no usable configuration of its own.
type PlatformSettings struct {
	Model
	ID              uint     `gorm:"primaryKey"`
	DefaultProvider Provider `gorm:"type:int8;not null"`
}

// FeeSchedules versions the wallet commission parameters. The engine uses the
// newest row by EffectiveAt.
type FeeSchedules struct {
	ID          uint            `gorm:"primaryKey"`
	FixedFee    decimal.Decimal `gorm:"type:numeric;not null"`
	PercentFee  decimal.Decimal `gorm:"type:numeric;not null"`
	EffectiveAt time.Time       `gorm:"not null;index"`
	CreatedAt   time.Time
}
