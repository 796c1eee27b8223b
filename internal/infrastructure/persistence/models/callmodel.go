package models

import (
	"time"

	"github.com/lorenzobigazzi0/cassa/internal/shared/constants"
)

type CallModel struct {
	ID         uint    `gorm:"primaryKey"`
	CallType   string  `gorm:"size:16;not null"`
	FromUserID uint    `gorm:"not null;index"`
	ToUserID   *uint   `gorm:"index"`
	TableID    *uint
	OrderID    *uint
	Message    *string `gorm:"size:255"`
	IsAck      bool    `gorm:"not null;default:false;index"`
	CreatedAt  time.Time
	AckedAt    *time.Time
}

func (CallModel) TableName() string {
	return constants.TableCalls
}
