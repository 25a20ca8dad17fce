package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerKPI is derived from orders and order items. Pointer fields are nil
// for customers without orders.
type CustomerKPI struct {
	CustomerID      string
	TotalOrders     int
	FirstOrderDate  *time.Time
	LastOrderDate   *time.Time
	GrossRevenue    decimal.Decimal
	DiscountTotal   decimal.Decimal
	NetRevenue      decimal.Decimal
	AvgOrderValue   *decimal.Decimal
	DominantChannel *Channel
	SentimentScore  *float64
}
