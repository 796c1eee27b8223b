package menu

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Item is reference data: order lines snapshot its name at creation time.
// The SKU is optional.
type Item struct {
	id       uint
	sku      string
	name     string
	category string
	price    decimal.Decimal
	isActive bool
}

func NewItem(sku, name, category string, price decimal.Decimal) (*Item, error) {
	sku = strings.TrimSpace(sku)
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("price cannot be negative")
	}
	return &Item{
		sku:      sku,
		name:     name,
		category: strings.TrimSpace(category),
		price:    price.Round(2),
		isActive: true,
	}, nil
}

func ReconstructItem(id uint, sku, name, category string, price decimal.Decimal, isActive bool) *Item {
	return &Item{
		id:       id,
		sku:      sku,
		name:     name,
		category: category,
		price:    price,
		isActive: isActive,
	}
}

func (i *Item) ID() uint               { return i.id }
func (i *Item) SKU() string            { return i.sku }
func (i *Item) Name() string           { return i.name }
func (i *Item) Category() string       { return i.category }
func (i *Item) Price() decimal.Decimal { return i.price }
func (i *Item) IsActive() bool         { return i.isActive }
func (i *Item) SetID(id uint)          { i.id = id }
func (i *Item) Deactivate()            { i.isActive = false }
