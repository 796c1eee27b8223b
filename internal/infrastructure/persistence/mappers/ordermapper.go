package mappers

import (
	"fmt"
	"sort"

	"github.com/lorenzobigazzi0/cassa/internal/domain/order"
	vo "github.com/lorenzobigazzi0/cassa/internal/domain/order/valueobjects"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/persistence/models"
)

type OrderMapper interface {
	ToEntity(model *models.OrderModel) (*order.Order, error)
	ToModel(entity *order.Order) *models.OrderModel
	ToView(row *models.OrderViewRow) (*order.View, error)
}

type OrderMapperImpl struct{}

func NewOrderMapper() OrderMapper {
	return &OrderMapperImpl{}
}

// ToEntity rebuilds the aggregate; items are ordered by line number.
func (m *OrderMapperImpl) ToEntity(model *models.OrderModel) (*order.Order, error) {
	if model == nil {
		return nil, nil
	}

	status, err := vo.NewOrderStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map order status: %w", err)
	}

	itemModels := append([]models.OrderItemModel(nil), model.Items...)
	sort.Slice(itemModels, func(i, j int) bool { return itemModels[i].LineNo < itemModels[j].LineNo })

	items := make([]*order.Item, 0, len(itemModels))
	for _, im := range itemModels {
		items = append(items, order.ReconstructItem(im.ID, im.OrderID, im.LineNo, im.MenuItemID, im.Name, im.Note, im.Qty, im.IsDone))
	}

	entity, err := order.ReconstructOrder(
		model.ID,
		model.PublicID,
		model.TableID,
		model.WaiterID,
		model.Covers,
		model.Apericena,
		model.Note,
		status,
		model.CreatedAt,
		model.ReadyAt,
		model.ClosedAt,
		items,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct order entity: %w", err)
	}

	return entity, nil
}

func (m *OrderMapperImpl) ToModel(entity *order.Order) *models.OrderModel {
	if entity == nil {
		return nil
	}

	items := make([]models.OrderItemModel, 0, len(entity.Items()))
	for _, it := range entity.Items() {
		items = append(items, models.OrderItemModel{
			ID:         it.ID(),
			OrderID:    it.OrderID(),
			LineNo:     it.LineNo(),
			MenuItemID: it.MenuItemID(),
			Name:       it.Name(),
			Note:       it.Note(),
			Qty:        it.Qty(),
			IsDone:     it.IsDone(),
		})
	}

	return &models.OrderModel{
		ID:        entity.ID(),
		PublicID:  entity.PublicID(),
		TableID:   entity.TableID(),
		WaiterID:  entity.WaiterID(),
		Covers:    entity.Covers(),
		Apericena: entity.Apericena(),
		Note:      entity.Note(),
		Status:    entity.Status().String(),
		CreatedAt: entity.CreatedAt(),
		ReadyAt:   entity.ReadyAt(),
		ClosedAt:  entity.ClosedAt(),
		Items:     items,
	}
}

func (m *OrderMapperImpl) ToView(row *models.OrderViewRow) (*order.View, error) {
	o, err := m.ToEntity(&row.OrderModel)
	if err != nil {
		return nil, err
	}
	return &order.View{Order: o, TableNumber: row.TableNumber, WaiterName: row.WaiterName}, nil
}
