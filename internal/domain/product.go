package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID             string          `db:"product_id"`
	Name           string          `db:"name"`
	Category       string          `db:"category"`
	Brand          string          `db:"brand"`
	Price          decimal.Decimal `db:"price"`
	CreatedAt      time.Time       `db:"created_at"`
	InventoryCount int             `db:"inventory_count"`
	Active         bool            `db:"active_flag"`
}
