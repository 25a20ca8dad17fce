package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ShippingAddress struct {
	Street     string `db:"shipping_address"`
	City       string `db:"shipping_city"`
	State      string `db:"shipping_state"`
	PostalCode string `db:"shipping_postal_code"`
	Country    string `db:"shipping_country"`
}

type Order struct {
	ID         string      `db:"order_id"`
	CustomerID string      `db:"customer_id"`
	OrderDate  time.Time   `db:"order_date"`
	Status     OrderStatus `db:"order_status"`
	ShippingAddress

	Subtotal     decimal.Decimal `db:"subtotal"`
	ShippingCost decimal.Decimal `db:"shipping_cost"`
	TaxAmount    decimal.Decimal `db:"tax_amount"`
	TotalAmount  decimal.Decimal `db:"total_amount"`

	CouponCode         string    `db:"coupon_code"`
	AcquisitionChannel Channel   `db:"acquisition_channel"`
	CustomerSentiment  Sentiment `db:"customer_sentiment"`
}

// TotalsDelta is the absolute difference between the stated total and
// subtotal+shipping+tax.
func (o *Order) TotalsDelta() decimal.Decimal {
	return o.Subtotal.Add(o.ShippingCost).Add(o.TaxAmount).Sub(o.TotalAmount).Abs()
}

type OrderItem struct {
	ID             string          `db:"order_item_id"`
	OrderID        string          `db:"order_id"`
	ProductID      string          `db:"product_id"`
	Quantity       int             `db:"quantity"`
	UnitPrice      decimal.Decimal `db:"unit_price"`
	DiscountAmount decimal.Decimal `db:"discount_amount"`
	LineTotal      decimal.Decimal `db:"line_total"`
	TaxRate        decimal.Decimal `db:"tax_rate"`
}

// ExpectedLineTotal is quantity * (unit_price - discount) rounded to cents.
func (oi *OrderItem) ExpectedLineTotal() decimal.Decimal {
	return oi.UnitPrice.Sub(oi.DiscountAmount).Mul(decimal.NewFromInt(int64(oi.Quantity))).Round(2)
}
