package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lorenzobigazzi0/cassa/internal/domain/order"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/persistence/mappers"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/persistence/models"
	"github.com/lorenzobigazzi0/cassa/internal/shared/constants"
	"github.com/lorenzobigazzi0/cassa/internal/shared/db"
	"github.com/lorenzobigazzi0/cassa/internal/shared/errors"
)

type OrderRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.OrderMapper
}

func NewOrderRepository(db *gorm.DB) order.Repository {
	return &OrderRepositoryImpl{
		db:     db,
		mapper: mappers.NewOrderMapper(),
	}
}

// Create inserts the order together with its items.
func (r *OrderRepositoryImpl) Create(ctx context.Context, o *order.Order) error {
	model := r.mapper.ToModel(o)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("order public id already taken", o.PublicID())
		}
		return fmt.Errorf("failed to create order: %w", err)
	}

	o.SetID(model.ID)
	for i, it := range o.Items() {
		it.SetID(model.Items[i].ID)
	}
	return nil
}

func (r *OrderRepositoryImpl) GetByPublicID(ctx context.Context, publicID string) (*order.Order, error) {
	var model models.OrderModel
	err := db.GetTxFromContext(ctx, r.db).
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("line_no ASC") }).
		Where("public_id = ?", publicID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("order not found", publicID)
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *OrderRepositoryImpl) ExistsByPublicID(ctx context.Context, publicID string) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.OrderModel{}).
		Where("public_id = ?", publicID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check order public id: %w", err)
	}
	return count > 0, nil
}

// SetItemDone does not check affected rows: MySQL reports zero when the
// flag already has the requested value. Callers verify ownership first.
func (r *OrderRepositoryImpl) SetItemDone(ctx context.Context, orderID, itemID uint, done bool) error {
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.OrderItemModel{}).
		Where("id = ? AND order_id = ?", itemID, orderID).
		Update("is_done", done).Error
	if err != nil {
		return fmt.Errorf("failed to update order item: %w", err)
	}
	return nil
}

func (r *OrderRepositoryImpl) UpdateStatus(ctx context.Context, o *order.Order) error {
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.OrderModel{}).
		Where("id = ?", o.ID()).
		Updates(map[string]interface{}{
			"status":    o.Status().String(),
			"ready_at":  o.ReadyAt(),
			"closed_at": o.ClosedAt(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}

func (r *OrderRepositoryImpl) GetView(ctx context.Context, publicID string) (*order.View, error) {
	views, err := r.loadViews(ctx, r.viewQuery(ctx).Where(constants.TableOrders+".public_id = ?", publicID).Limit(1))
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, errors.NewNotFoundError("order not found", publicID)
	}
	return views[0], nil
}

func (r *OrderRepositoryImpl) ListViews(ctx context.Context, filter order.ListFilter) ([]*order.View, error) {
	q := r.viewQuery(ctx).Scopes(db.NewestFirst(constants.TableOrders))
	if filter.Status != nil {
		q = q.Where(constants.TableOrders+".status = ?", filter.Status.String())
	}
	return r.loadViews(ctx, q)
}

func (r *OrderRepositoryImpl) viewQuery(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Model(&models.OrderModel{}).
		Select("orders.*, tables.number AS table_number, users.display_name AS waiter_name").
		Joins("JOIN tables ON tables.id = orders.table_id").
		Joins("JOIN users ON users.id = orders.waiter_id")
}

// loadViews runs q and attaches each order's items in line order.
func (r *OrderRepositoryImpl) loadViews(ctx context.Context, q *gorm.DB) ([]*order.View, error) {
	var rows []*models.OrderViewRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	if len(rows) == 0 {
		return []*order.View{}, nil
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	var items []models.OrderItemModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("order_id IN ?", ids).
		Order("order_id ASC").
		Order("line_no ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}

	byOrder := make(map[uint][]models.OrderItemModel, len(rows))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}

	views := make([]*order.View, 0, len(rows))
	for _, row := range rows {
		row.Items = byOrder[row.ID]
		v, err := r.mapper.ToView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
