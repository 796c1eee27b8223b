package models

// All lists every persisted model in dependency order.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&TableModel{},
		&MenuItemModel{},
		&OrderModel{},
		&OrderItemModel{},
		&PrinterModel{},
		&PrintJobModel{},
		&CallModel{},
	}
}
