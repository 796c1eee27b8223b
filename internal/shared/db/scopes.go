package db

import (
	"gorm.io/gorm"
)

// NewestFirst orders by created_at descending with id as tie breaker, so rows
// created within the same clock tick keep a stable order.
func NewestFirst(table string) func(db *gorm.DB) *gorm.DB {
	prefix := ""
	if table != "" {
		prefix = table + "."
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(prefix + "created_at DESC").Order(prefix + "id DESC")
	}
}

// Active filters rows whose is_active flag is set.
func Active(table string) func(db *gorm.DB) *gorm.DB {
	prefix := ""
	if table != "" {
		prefix = table + "."
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(prefix+"is_active = ?", true)
	}
}
