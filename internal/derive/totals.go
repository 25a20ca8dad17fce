package derive

import (
	"github.com/k-code-yt/ecommerce-dataset/internal/domain"
	"github.com/shopspring/decimal"
)

// OrderTaxRate is applied to the order subtotal, independent of item tax rates.
var OrderTaxRate = decimal.RequireFromString("0.0825")

// TotalsTolerance is the largest accepted gap between total_amount and
// subtotal+shipping+tax when loading.
var TotalsTolerance = decimal.NewFromInt(1)

// LineTotal is quantity * (unit price - discount), rounded to cents.
func LineTotal(quantity int, unitPrice, discount decimal.Decimal) decimal.Decimal {
	return unitPrice.Sub(discount).Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

type OrderTotals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

func ComputeOrderTotals(items []domain.OrderItem, shipping decimal.Decimal) OrderTotals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.LineTotal)
	}
	subtotal = subtotal.Round(2)
	shipping = shipping.Round(2)
	tax := subtotal.Mul(OrderTaxRate).Round(2)
	return OrderTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax).Round(2),
	}
}

// TotalsReconcile reports whether the stated total is within tolerance.
func TotalsReconcile(o *domain.Order) bool {
	return o.TotalsDelta().LessThanOrEqual(TotalsTolerance)
}
