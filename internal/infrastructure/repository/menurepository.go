package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lorenzobigazzi0/cassa/internal/domain/menu"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/persistence/mappers"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/persistence/models"
	"github.com/lorenzobigazzi0/cassa/internal/shared/db"
	"github.com/lorenzobigazzi0/cassa/internal/shared/errors"
)

type MenuRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MenuItemMapper
}

func NewMenuRepository(db *gorm.DB) menu.Repository {
	return &MenuRepositoryImpl{
		db:     db,
		mapper: mappers.NewMenuItemMapper(),
	}
}

func (r *MenuRepositoryImpl) Create(ctx context.Context, item *menu.Item) error {
	model := r.mapper.ToModel(item)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("menu item already exists", item.SKU())
		}
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	item.SetID(model.ID)
	return nil
}

func (r *MenuRepositoryImpl) ListActive(ctx context.Context) ([]*menu.Item, error) {
	var list []*models.MenuItemModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.Active("")).
		Order("category ASC").
		Order("name ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return r.mapper.ToEntities(list), nil
}

func (r *MenuRepositoryImpl) FindActiveByIDs(ctx context.Context, ids []uint) (map[uint]*menu.Item, error) {
	found := make(map[uint]*menu.Item, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	var list []*models.MenuItemModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.Active("")).
		Where("id IN ?", ids).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find menu items: %w", err)
	}

	for _, item := range r.mapper.ToEntities(list) {
		found[item.ID()] = item
	}
	return found, nil
}

func (r *MenuRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.MenuItemModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count menu items: %w", err)
	}
	return total, nil
}
