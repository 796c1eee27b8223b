package mappers

import (
	"github.com/lorenzobigazzi0/cassa/internal/domain/menu"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/persistence/models"
)

type MenuItemMapper interface {
	ToEntity(model *models.MenuItemModel) *menu.Item
	ToModel(entity *menu.Item) *models.MenuItemModel
	ToEntities(models []*models.MenuItemModel) []*menu.Item
}

type MenuItemMapperImpl struct{}

func NewMenuItemMapper() MenuItemMapper {
	return &MenuItemMapperImpl{}
}

func (m *MenuItemMapperImpl) ToEntity(model *models.MenuItemModel) *menu.Item {
	if model == nil {
		return nil
	}
	sku := ""
	if model.SKU != nil {
		sku = *model.SKU
	}
	return menu.ReconstructItem(model.ID, sku, model.Name, model.Category, model.Price, model.IsActive)
}

// ToModel stores an empty SKU as NULL so the unique index ignores it.
func (m *MenuItemMapperImpl) ToModel(entity *menu.Item) *models.MenuItemModel {
	if entity == nil {
		return nil
	}
	var sku *string
	if s := entity.SKU(); s != "" {
		sku = &s
	}
	return &models.MenuItemModel{
		ID:       entity.ID(),
		SKU:      sku,
		Name:     entity.Name(),
		Category: entity.Category(),
		Price:    entity.Price(),
		IsActive: entity.IsActive(),
	}
}

func (m *MenuItemMapperImpl) ToEntities(list []*models.MenuItemModel) []*menu.Item {
	entities := make([]*menu.Item, 0, len(list))
	for _, model := range list {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
