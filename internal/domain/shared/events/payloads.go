package events

import "time"

// Event type discriminators carried in the "type" field.
const (
	TypeHello        = "hello"
	TypeOrderCreated = "order_created"
	TypeOrderUpdated = "order_updated"
	TypePrintJob     = "print_job"
	TypeCallCreated  = "call_created"
	TypeCallAcked    = "call_acked"

	// legacyCallCreated is still read by older floor clients.
	legacyCallCreated = "call.created"
)

// OrderItemSnapshot is one line of an order as seen by clients.
type OrderItemSnapshot struct {
	ID         uint    `json:"id"`
	LineNo     int     `json:"line_no"`
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"name"`
	Note       *string `json:"note"`
	Qty        int     `json:"qty"`
	IsDone     bool    `json:"is_done"`
}

// OrderSnapshot is the full order with table number and waiter name denormalized.
type OrderSnapshot struct {
	ID          uint                `json:"id"`
	PublicID    string              `json:"public_id"`
	TableID     uint                `json:"table_id"`
	TableNumber int                 `json:"table_number"`
	WaiterID    uint                `json:"waiter_id"`
	WaiterName  string              `json:"waiter_name"`
	Covers      int                 `json:"covers"`
	Apericena   int                 `json:"apericena"`
	Note        *string             `json:"note"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	ReadyAt     *time.Time          `json:"ready_at"`
	ClosedAt    *time.Time          `json:"closed_at"`
	Items       []OrderItemSnapshot `json:"items"`
}

type OrderEvent struct {
	Type  string         `json:"type"`
	Order *OrderSnapshot `json:"order"`
}

func NewOrderCreated(order *OrderSnapshot) OrderEvent {
	return OrderEvent{Type: TypeOrderCreated, Order: order}
}

func NewOrderUpdated(order *OrderSnapshot) OrderEvent {
	return OrderEvent{Type: TypeOrderUpdated, Order: order}
}

// PrintJobEvent reports a print attempt; Error is empty on success.
type PrintJobEvent struct {
	Type     string `json:"type"`
	PublicID string `json:"public_id"`
	OK       bool   `json:"ok"`
	Error    string `json:"error"`
}

func NewPrintJob(publicID string, ok bool, errMsg string) PrintJobEvent {
	return PrintJobEvent{Type: TypePrintJob, PublicID: publicID, OK: ok, Error: errMsg}
}

type CallSnapshot struct {
	ID         uint       `json:"id"`
	CallType   string     `json:"call_type"`
	FromUserID *uint      `json:"from_user_id"`
	ToUserID   *uint      `json:"to_user_id"`
	TableID    *uint      `json:"table_id"`
	OrderID    *uint      `json:"order_id"`
	Message    *string    `json:"message"`
	IsAck      bool       `json:"is_ack"`
	CreatedAt  time.Time  `json:"created_at"`
	AckedAt    *time.Time `json:"acked_at"`
}

type CallCreatedEvent struct {
	Type  string        `json:"type"`
	Event string        `json:"event"`
	Call  *CallSnapshot `json:"call"`
}

func NewCallCreated(call *CallSnapshot) CallCreatedEvent {
	return CallCreatedEvent{Type: TypeCallCreated, Event: legacyCallCreated, Call: call}
}

type CallAckedEvent struct {
	Type   string `json:"type"`
	CallID uint   `json:"call_id"`
}

func NewCallAcked(callID uint) CallAckedEvent {
	return CallAckedEvent{Type: TypeCallAcked, CallID: callID}
}

// HelloEvent greets a socket right after it joins a channel.
type HelloEvent struct {
	Type    string  `json:"type"`
	Channel Channel `json:"channel"`
	User    *string `json:"user"`
}

func NewHello(channel Channel, username string) HelloEvent {
	ev := HelloEvent{Type: TypeHello, Channel: channel}
	if username != "" {
		ev.User = &username
	}
	return ev
}
