package domain

import "time"

// GatewayConfigurations holds one row per (store, provider). Rows are never
// hard-deleted, toggles and credential changes update in place.
//
// Invariant: at most one row per store has Active = true.
type GatewayConfigurations struct {
	Model
	ID           uint     `gorm:"primaryKey"`
	StoreID      string   `gorm:"size:36;not null;uniqueIndex:idx_store_provider"`
	Provider     Provider `gorm:"type:int8;not null;uniqueIndex:idx_store_provider"`
	Active       bool     `gorm:"not null;default:false"`
	Configured   bool     `gorm:"not null;default:false"`
	Credentials  JSONMap  `gorm:"type:jsonb"`
	ConfiguredAt *time.Time
}
