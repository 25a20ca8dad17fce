package domain

import "time"

type InventoryEvent struct {
	ID             string    `db:"event_id"`
	ProductID      string    `db:"product_id"`
	EventType      EventType `db:"event_type"`
	QuantityChange int       `db:"quantity_change"`
	EventTimestamp time.Time `db:"event_timestamp"`
	Note           string    `db:"note"`
	Actor          Actor     `db:"actor"`
}

// InventoryDelta summarises the events recorded against one product.
type InventoryDelta struct {
	ProductID  string
	Restocked  int
	Sold       int
	Returned   int
	Adjusted   int
	SaleEvents int
}

func (d InventoryDelta) Net() int {
	return d.Restocked + d.Sold + d.Returned + d.Adjusted
}
