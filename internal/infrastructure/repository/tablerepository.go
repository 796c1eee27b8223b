package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lorenzobigazzi0/cassa/internal/domain/table"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/persistence/mappers"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/persistence/models"
	"github.com/lorenzobigazzi0/cassa/internal/shared/db"
	"github.com/lorenzobigazzi0/cassa/internal/shared/errors"
)

type TableRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TableMapper
}

func NewTableRepository(db *gorm.DB) table.Repository {
	return &TableRepositoryImpl{
		db:     db,
		mapper: mappers.NewTableMapper(),
	}
}

func (r *TableRepositoryImpl) Create(ctx context.Context, t *table.Table) error {
	model := r.mapper.ToModel(t)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("table already exists", fmt.Sprintf("number %d", t.Number()))
		}
		return fmt.Errorf("failed to create table: %w", err)
	}
	t.SetID(model.ID)
	return nil
}

func (r *TableRepositoryImpl) GetByNumber(ctx context.Context, number int) (*table.Table, error) {
	t, err := r.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("table not found", fmt.Sprintf("number %d", number))
	}
	return t, nil
}

func (r *TableRepositoryImpl) FindByNumber(ctx context.Context, number int) (*table.Table, error) {
	var model models.TableModel
	if err := db.GetTxFromContext(ctx, r.db).Where("number = ?", number).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get table by number: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *TableRepositoryImpl) UpdateOpening(ctx context.Context, t *table.Table) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TableModel{}).
		Where("id = ?", t.ID()).
		Updates(map[string]interface{}{
			"is_open":   t.IsOpen(),
			"opened_by": t.OpenedBy(),
			"opened_at": t.OpenedAt(),
			"closed_at": t.ClosedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update table: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("table not found")
	}
	return nil
}

func (r *TableRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.TableModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count tables: %w", err)
	}
	return total, nil
}
