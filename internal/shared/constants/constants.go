package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUsername  = "username"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers      = "users"
	TableTables     = "tables"
	TableMenuItems  = "menu_items"
	TableOrders     = "orders"
	TableOrderItems = "order_items"
	TablePrinters   = "printers"
	TablePrintJobs  = "print_jobs"
	TableCalls      = "calls"

	// Request bounds
	MaxTableNumber = 500
	MaxCovers      = 50
	MaxLineQty     = 50
)
