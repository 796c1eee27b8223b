package dto

import (
	"github.com/lorenzobigazzi0/cassa/internal/domain/menu"
)

// MenuItemResponse carries the price as a JSON number rounded to cents.
type MenuItemResponse struct {
	ID       uint    `json:"id"`
	SKU      string  `json:"sku,omitempty"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

func ToMenuItemResponses(items []*menu.Item) []*MenuItemResponse {
	out := make([]*MenuItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, &MenuItemResponse{
			ID:       it.ID(),
			SKU:      it.SKU(),
			Name:     it.Name(),
			Category: it.Category(),
			Price:    it.Price().Round(2).InexactFloat64(),
		})
	}
	return out
}
