package table

import (
	"fmt"
	"time"
)

// Table is identified on the floor by its number.
type Table struct {
	id       uint
	number   int
	name     *string
	isOpen   bool
	openedBy *uint
	openedAt *time.Time
	closedAt *time.Time
}

func NewTable(number int) (*Table, error) {
	if number < 1 {
		return nil, fmt.Errorf("table number must be positive")
	}
	return &Table{number: number}, nil
}

func ReconstructTable(id uint, number int, name *string, isOpen bool, openedBy *uint, openedAt, closedAt *time.Time) *Table {
	return &Table{
		id:       id,
		number:   number,
		name:     name,
		isOpen:   isOpen,
		openedBy: openedBy,
		openedAt: openedAt,
		closedAt: closedAt,
	}
}

func (t *Table) ID() uint             { return t.id }
func (t *Table) Number() int          { return t.number }
func (t *Table) Name() *string        { return t.name }
func (t *Table) IsOpen() bool         { return t.isOpen }
func (t *Table) OpenedBy() *uint      { return t.openedBy }
func (t *Table) OpenedAt() *time.Time { return t.openedAt }
func (t *Table) ClosedAt() *time.Time { return t.closedAt }
func (t *Table) SetID(id uint)        { t.id = id }

// Open marks the table as served by userID. The first opening time is kept
// across later orders.
func (t *Table) Open(userID uint, now time.Time) {
	t.isOpen = true
	t.openedBy = &userID
	if t.openedAt == nil {
		t.openedAt = &now
	}
}

func (t *Table) Close(now time.Time) {
	t.isOpen = false
	t.closedAt = &now
}
