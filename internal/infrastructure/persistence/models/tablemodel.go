package models

import (
	"time"

	"github.com/lorenzobigazzi0/cassa/internal/shared/constants"
)

type TableModel struct {
	ID       uint    `gorm:"primaryKey"`
	Number   int     `gorm:"not null;uniqueIndex"`
	Name     *string `gorm:"size:64"`
	IsOpen   bool    `gorm:"not null;default:false"`
	OpenedBy *uint
	OpenedAt *time.Time
	ClosedAt *time.Time
}

func (TableModel) TableName() string {
	return constants.TableTables
}
