package order

import (
	"fmt"
	"time"

	vo "github.com/lorenzobigazzi0/cassa/internal/domain/order/valueobjects"
)

// Order owns its items; they are created with it and never outlive it.
type Order struct {
	id        uint
	publicID  string
	tableID   uint
	waiterID  uint
	covers    int
	apericena int
	note      *string
	status    vo.OrderStatus
	createdAt time.Time
	readyAt   *time.Time
	closedAt  *time.Time
	items     []*Item
}

func NewOrder(
	publicID string,
	tableID uint,
	waiterID uint,
	covers int,
	apericena int,
	note *string,
	items []*Item,
	now time.Time,
) (*Order, error) {
	if publicID == "" {
		return nil, fmt.Errorf("public ID is required")
	}
	if tableID == 0 {
		return nil, fmt.Errorf("table ID is required")
	}
	if waiterID == 0 {
		return nil, fmt.Errorf("waiter ID is required")
	}
	if covers < 0 || apericena < 0 {
		return nil, fmt.Errorf("covers and apericena cannot be negative")
	}
	if err := checkLineNumbers(items); err != nil {
		return nil, err
	}

	return &Order{
		publicID:  publicID,
		tableID:   tableID,
		waiterID:  waiterID,
		covers:    covers,
		apericena: apericena,
		note:      note,
		status:    vo.StatusOpen,
		createdAt: now,
		items:     items,
	}, nil
}

func ReconstructOrder(
	id uint,
	publicID string,
	tableID uint,
	waiterID uint,
	covers int,
	apericena int,
	note *string,
	status vo.OrderStatus,
	createdAt time.Time,
	readyAt *time.Time,
	closedAt *time.Time,
	items []*Item,
) (*Order, error) {
	if id == 0 {
		return nil, fmt.Errorf("order ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid order status: %s", status)
	}
	return &Order{
		id:        id,
		publicID:  publicID,
		tableID:   tableID,
		waiterID:  waiterID,
		covers:    covers,
		apericena: apericena,
		note:      note,
		status:    status,
		createdAt: createdAt,
		readyAt:   readyAt,
		closedAt:  closedAt,
		items:     items,
	}, nil
}

// line numbers must be exactly 1..N
func checkLineNumbers(items []*Item) error {
	for i, it := range items {
		if it.lineNo != i+1 {
			return fmt.Errorf("line numbers must be contiguous from 1: position %d has %d", i+1, it.lineNo)
		}
	}
	return nil
}

func (o *Order) ID() uint               { return o.id }
func (o *Order) PublicID() string       { return o.publicID }
func (o *Order) TableID() uint          { return o.tableID }
func (o *Order) WaiterID() uint         { return o.waiterID }
func (o *Order) Covers() int            { return o.covers }
func (o *Order) Apericena() int         { return o.apericena }
func (o *Order) Note() *string          { return o.note }
func (o *Order) Status() vo.OrderStatus { return o.status }
func (o *Order) CreatedAt() time.Time   { return o.createdAt }
func (o *Order) ReadyAt() *time.Time    { return o.readyAt }
func (o *Order) ClosedAt() *time.Time   { return o.closedAt }
func (o *Order) Items() []*Item         { return o.items }

func (o *Order) NoteText() string {
	if o.note == nil {
		return ""
	}
	return *o.note
}

// SetID assigns the storage id and propagates it to the items.
func (o *Order) SetID(id uint) {
	o.id = id
	for _, it := range o.items {
		it.orderID = id
	}
}

func (o *Order) Item(itemID uint) (*Item, bool) {
	for _, it := range o.items {
		if it.id == itemID {
			return it, true
		}
	}
	return nil, false
}

// AllItemsDone is false for an order without items.
func (o *Order) AllItemsDone() bool {
	if len(o.items) == 0 {
		return false
	}
	for _, it := range o.items {
		if !it.isDone {
			return false
		}
	}
	return true
}

// RefreshReadiness moves an OPEN order to READY once every item is done and
// reports whether it did. Orders past OPEN are left alone, so un-marking an
// item after READY does not revert the status.
func (o *Order) RefreshReadiness(now time.Time) bool {
	if !o.status.IsOpen() || !o.AllItemsDone() {
		return false
	}
	o.status = vo.StatusReady
	o.readyAt = &now
	return true
}

// MarkPrinted records a successful ticket print. A closed order keeps its
// status; an already printed one stays PRINTED.
func (o *Order) MarkPrinted() bool {
	if !o.status.CanTransitionTo(vo.StatusPrinted) {
		return false
	}
	o.status = vo.StatusPrinted
	return true
}

func (o *Order) Close(now time.Time) error {
	if !o.status.CanTransitionTo(vo.StatusClosed) {
		return fmt.Errorf("cannot close order in status %s", o.status)
	}
	o.status = vo.StatusClosed
	o.closedAt = &now
	return nil
}
