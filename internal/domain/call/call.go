package call

import (
	"fmt"
	"time"
)

// Call is a staff request routed to the bar or to the floor.
type Call struct {
	id         uint
	callType   CallType
	fromUserID uint
	toUserID   *uint
	tableID    *uint
	orderID    *uint
	message    *string
	isAck      bool
	createdAt  time.Time
	ackedAt    *time.Time
}

func NewCall(callType CallType, fromUserID uint, toUserID, tableID, orderID *uint, message *string, now time.Time) (*Call, error) {
	if !callType.IsValid() {
		return nil, fmt.Errorf("invalid call type: %s", callType)
	}
	if fromUserID == 0 {
		return nil, fmt.Errorf("caller is required")
	}
	return &Call{
		callType:   callType,
		fromUserID: fromUserID,
		toUserID:   toUserID,
		tableID:    tableID,
		orderID:    orderID,
		message:    message,
		createdAt:  now,
	}, nil
}

func ReconstructCall(
	id uint,
	callType CallType,
	fromUserID uint,
	toUserID, tableID, orderID *uint,
	message *string,
	isAck bool,
	createdAt time.Time,
	ackedAt *time.Time,
) *Call {
	return &Call{
		id:         id,
		callType:   callType,
		fromUserID: fromUserID,
		toUserID:   toUserID,
		tableID:    tableID,
		orderID:    orderID,
		message:    message,
		isAck:      isAck,
		createdAt:  createdAt,
		ackedAt:    ackedAt,
	}
}

func (c *Call) ID() uint             { return c.id }
func (c *Call) Type() CallType       { return c.callType }
func (c *Call) FromUserID() uint     { return c.fromUserID }
func (c *Call) ToUserID() *uint      { return c.toUserID }
func (c *Call) TableID() *uint       { return c.tableID }
func (c *Call) OrderID() *uint       { return c.orderID }
func (c *Call) Message() *string     { return c.message }
func (c *Call) IsAck() bool          { return c.isAck }
func (c *Call) CreatedAt() time.Time { return c.createdAt }
func (c *Call) AckedAt() *time.Time  { return c.ackedAt }
func (c *Call) SetID(id uint)        { c.id = id }

// Ack acknowledges the call. Acknowledging twice moves acked_at to the later time.
func (c *Call) Ack(now time.Time) {
	c.isAck = true
	c.ackedAt = &now
}
