package order

import "fmt"

// Item is one merged order line. Name is a snapshot of the menu item name at
// order time and does not follow later menu edits.
type Item struct {
	id         uint
	orderID    uint
	lineNo     int
	menuItemID uint
	name       string
	note       *string
	qty        int
	isDone     bool
}

func NewItem(lineNo int, menuItemID uint, name string, note *string, qty int) (*Item, error) {
	if lineNo < 1 {
		return nil, fmt.Errorf("line number must be positive")
	}
	if menuItemID == 0 {
		return nil, fmt.Errorf("menu item ID is required")
	}
	if qty < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}
	return &Item{
		lineNo:     lineNo,
		menuItemID: menuItemID,
		name:       name,
		note:       note,
		qty:        qty,
	}, nil
}

func ReconstructItem(id, orderID uint, lineNo int, menuItemID uint, name string, note *string, qty int, isDone bool) *Item {
	return &Item{
		id:         id,
		orderID:    orderID,
		lineNo:     lineNo,
		menuItemID: menuItemID,
		name:       name,
		note:       note,
		qty:        qty,
		isDone:     isDone,
	}
}

func (i *Item) ID() uint         { return i.id }
func (i *Item) OrderID() uint    { return i.orderID }
func (i *Item) LineNo() int      { return i.lineNo }
func (i *Item) MenuItemID() uint { return i.menuItemID }
func (i *Item) Name() string     { return i.name }
func (i *Item) Note() *string    { return i.note }
func (i *Item) Qty() int         { return i.qty }
func (i *Item) IsDone() bool     { return i.isDone }

// NoteText returns the note or "" when absent.
func (i *Item) NoteText() string {
	if i.note == nil {
		return ""
	}
	return *i.note
}

func (i *Item) SetID(id uint)      { i.id = id }
func (i *Item) SetOrderID(id uint) { i.orderID = id }
func (i *Item) SetDone(done bool)  { i.isDone = done }
