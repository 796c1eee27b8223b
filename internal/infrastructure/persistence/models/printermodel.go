package models

import (
	"time"

	"github.com/lorenzobigazzi0/cassa/internal/shared/constants"
)

type PrinterModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:64;not null;uniqueIndex"`
	Kind        string `gorm:"size:16;not null"`
	Destination string `gorm:"size:255;not null;default:''"`
	IsActive    bool   `gorm:"not null"`
}

func (PrinterModel) TableName() string {
	return constants.TablePrinters
}

type PrintJobModel struct {
	ID        uint    `gorm:"primaryKey"`
	OrderID   uint    `gorm:"not null;index"`
	PrinterID uint    `gorm:"not null;index"`
	Status    string  `gorm:"size:16;not null"`
	Payload   string  `gorm:"type:text;not null"`
	Error     *string `gorm:"type:text"`
	CreatedAt time.Time
	SentAt    *time.Time
}

func (PrintJobModel) TableName() string {
	return constants.TablePrintJobs
}
