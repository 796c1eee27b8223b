package order

// View is an order together with the display data every client needs.
type View struct {
	Order       *Order
	TableNumber int
	WaiterName  string
}
