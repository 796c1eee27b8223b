package models

import (
	"github.com/shopspring/decimal"

	"github.com/lorenzobigazzi0/cassa/internal/shared/constants"
)

type MenuItemModel struct {
	ID       uint            `gorm:"primaryKey"`
	SKU      *string         `gorm:"column:sku;size:64;uniqueIndex"`
	Name     string          `gorm:"size:128;not null"`
	Category string          `gorm:"size:64;not null;index"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	IsActive bool            `gorm:"not null;index"`
}

func (MenuItemModel) TableName() string {
	return constants.TableMenuItems
}
