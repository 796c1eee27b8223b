package mappers

import (
	"github.com/lorenzobigazzi0/cassa/internal/domain/table"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/persistence/models"
)

type TableMapper interface {
	ToEntity(model *models.TableModel) *table.Table
	ToModel(entity *table.Table) *models.TableModel
}

type TableMapperImpl struct{}

func NewTableMapper() TableMapper {
	return &TableMapperImpl{}
}

func (m *TableMapperImpl) ToEntity(model *models.TableModel) *table.Table {
	if model == nil {
		return nil
	}
	return table.ReconstructTable(model.ID, model.Number, model.Name, model.IsOpen, model.OpenedBy, model.OpenedAt, model.ClosedAt)
}

func (m *TableMapperImpl) ToModel(entity *table.Table) *models.TableModel {
	if entity == nil {
		return nil
	}
	return &models.TableModel{
		ID:       entity.ID(),
		Number:   entity.Number(),
		Name:     entity.Name(),
		IsOpen:   entity.IsOpen(),
		OpenedBy: entity.OpenedBy(),
		OpenedAt: entity.OpenedAt(),
		ClosedAt: entity.ClosedAt(),
	}
}
