package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lorenzobigazzi0/cassa/internal/domain/call"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/persistence/mappers"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/persistence/models"
	"github.com/lorenzobigazzi0/cassa/internal/shared/db"
	"github.com/lorenzobigazzi0/cassa/internal/shared/errors"
)

type CallRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CallMapper
}

func NewCallRepository(db *gorm.DB) call.Repository {
	return &CallRepositoryImpl{
		db:     db,
		mapper: mappers.NewCallMapper(),
	}
}

func (r *CallRepositoryImpl) Create(ctx context.Context, c *call.Call) error {
	model := r.mapper.ToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create call: %w", err)
	}
	c.SetID(model.ID)
	return nil
}

func (r *CallRepositoryImpl) GetByID(ctx context.Context, id uint) (*call.Call, error) {
	var model models.CallModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("call not found", fmt.Sprintf("id %d", id))
		}
		return nil, fmt.Errorf("failed to get call: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *CallRepositoryImpl) UpdateAck(ctx context.Context, c *call.Call) error {
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.CallModel{}).
		Where("id = ?", c.ID()).
		Updates(map[string]interface{}{
			"is_ack":   c.IsAck(),
			"acked_at": c.AckedAt(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update call: %w", err)
	}
	return nil
}
