package domain

// Dataset is one generated or loaded batch.
type Dataset struct {
	Customers       []Customer
	Products        []Product
	Orders          []Order
	OrderItems      []OrderItem
	InventoryEvents []InventoryEvent
}
