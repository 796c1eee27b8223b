package dto

import (
	"github.com/lorenzobigazzi0/cassa/internal/domain/order"
	"github.com/lorenzobigazzi0/cassa/internal/domain/shared/events"
)

// ToOrderSnapshot builds the order shape shared by API responses and
// realtime events.
func ToOrderSnapshot(v *order.View) *events.OrderSnapshot {
	if v == nil || v.Order == nil {
		return nil
	}
	o := v.Order

	items := make([]events.OrderItemSnapshot, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, events.OrderItemSnapshot{
			ID:         it.ID(),
			LineNo:     it.LineNo(),
			MenuItemID: it.MenuItemID(),
			Name:       it.Name(),
			Note:       it.Note(),
			Qty:        it.Qty(),
			IsDone:     it.IsDone(),
		})
	}

	return &events.OrderSnapshot{
		ID:          o.ID(),
		PublicID:    o.PublicID(),
		TableID:     o.TableID(),
		TableNumber: v.TableNumber,
		WaiterID:    o.WaiterID(),
		WaiterName:  v.WaiterName,
		Covers:      o.Covers(),
		Apericena:   o.Apericena(),
		Note:        o.Note(),
		Status:      o.Status().String(),
		CreatedAt:   o.CreatedAt(),
		ReadyAt:     o.ReadyAt(),
		ClosedAt:    o.ClosedAt(),
		Items:       items,
	}
}

func ToOrderSnapshots(views []*order.View) []*events.OrderSnapshot {
	out := make([]*events.OrderSnapshot, 0, len(views))
	for _, v := range views {
		out = append(out, ToOrderSnapshot(v))
	}
	return out
}
