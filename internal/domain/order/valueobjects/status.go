package valueobjects

import "fmt"

type OrderStatus string

const (
	StatusOpen    OrderStatus = "OPEN"
	StatusReady   OrderStatus = "READY"
	StatusPrinted OrderStatus = "PRINTED"
	StatusClosed  OrderStatus = "CLOSED"
)

var validOrderStatuses = map[OrderStatus]bool{
	StatusOpen:    true,
	StatusReady:   true,
	StatusPrinted: true,
	StatusClosed:  true,
}

// Status only moves forward. PRINTED may skip READY because a ticket can be
// printed before the bar has marked every line.
var orderStatusTransitions = map[OrderStatus][]OrderStatus{
	StatusOpen:    {StatusReady, StatusPrinted, StatusClosed},
	StatusReady:   {StatusPrinted, StatusClosed},
	StatusPrinted: {StatusClosed},
	StatusClosed:  {},
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	return validOrderStatuses[s]
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsOpen() bool    { return s == StatusOpen }
func (s OrderStatus) IsReady() bool   { return s == StatusReady }
func (s OrderStatus) IsPrinted() bool { return s == StatusPrinted }
func (s OrderStatus) IsClosed() bool  { return s == StatusClosed }

func NewOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid order status: %s", s)
	}
	return status, nil
}
