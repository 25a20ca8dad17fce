package pkgconstants

const (
	DBTableName_Customers       = "customers"
	DBTableName_Products        = "products"
	DBTableName_Orders          = "orders"
	DBTableName_OrderItems      = "order_items"
	DBTableName_InventoryEvents = "inventory_events"
	DBTableName_CustomerKPIs    = "customer_kpis"
)

// SourceTables are the five datasets in FK-safe insert order.
var SourceTables = []string{
	DBTableName_Customers,
	DBTableName_Products,
	DBTableName_Orders,
	DBTableName_OrderItems,
	DBTableName_InventoryEvents,
}

// AllTables includes the derived KPI table.
var AllTables = append(append([]string{}, SourceTables...), DBTableName_CustomerKPIs)

const (
	DefaultSQLitePath = "ecommerce.db"
	DefaultDataDir    = "data"
	DestinationPG     = "postgres"
)
