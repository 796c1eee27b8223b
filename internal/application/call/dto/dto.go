package dto

import (
	"github.com/lorenzobigazzi0/cassa/internal/domain/call"
	"github.com/lorenzobigazzi0/cassa/internal/domain/shared/events"
)

func ToCallSnapshot(c *call.Call) *events.CallSnapshot {
	if c == nil {
		return nil
	}
	from := c.FromUserID()
	return &events.CallSnapshot{
		ID:         c.ID(),
		CallType:   c.Type().String(),
		FromUserID: &from,
		ToUserID:   c.ToUserID(),
		TableID:    c.TableID(),
		OrderID:    c.OrderID(),
		Message:    c.Message(),
		IsAck:      c.IsAck(),
		CreatedAt:  c.CreatedAt(),
		AckedAt:    c.AckedAt(),
	}
}
