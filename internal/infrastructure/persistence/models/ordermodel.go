package models

import (
	"time"

	"github.com/lorenzobigazzi0/cassa/internal/shared/constants"
)

type OrderModel struct {
	ID        uint    `gorm:"primaryKey"`
	PublicID  string  `gorm:"size:16;not null;uniqueIndex"`
	TableID   uint    `gorm:"not null;index"`
	WaiterID  uint    `gorm:"not null;index"`
	Covers    int     `gorm:"not null;default:0"`
	Apericena int     `gorm:"not null;default:0"`
	Note      *string `gorm:"type:text"`
	Status    string  `gorm:"size:16;not null;index"`
	CreatedAt time.Time
	ReadyAt   *time.Time
	ClosedAt  *time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

func (OrderModel) TableName() string {
	return constants.TableOrders
}

type OrderItemModel struct {
	ID         uint    `gorm:"primaryKey"`
	OrderID    uint    `gorm:"not null;uniqueIndex:idx_order_items_order_line"`
	LineNo     int     `gorm:"not null;uniqueIndex:idx_order_items_order_line"`
	MenuItemID uint    `gorm:"not null"`
	Name       string  `gorm:"size:128;not null"`
	Note       *string `gorm:"size:255"`
	Qty        int     `gorm:"not null"`
	IsDone     bool    `gorm:"not null;default:false"`
}

func (OrderItemModel) TableName() string {
	return constants.TableOrderItems
}

// OrderViewRow is an order joined with its table number and waiter name.
type OrderViewRow struct {
	OrderModel
	TableNumber int
	WaiterName  string
}
