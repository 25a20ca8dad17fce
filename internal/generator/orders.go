package generator

import (
	"fmt"

	"github.com/k-code-yt/ecommerce-dataset/internal/derive"
	"github.com/k-code-yt/ecommerce-dataset/internal/domain"
	"github.com/shopspring/decimal"
)

var itemDiscountRate = decimal.RequireFromString("0.1")

// generateOrders must stay sequential: each order's sentiment depends on the
// customer's history at the moment it is generated.
func (g *Generator) generateOrders(customers []domain.Customer, products []domain.Product, stats map[string]*CustomerStats) ([]domain.Order, []domain.OrderItem, map[string]int) {
	orders := make([]domain.Order, 0, g.cfg.Orders)
	items := make([]domain.OrderItem, 0, g.cfg.Orders*g.cfg.MaxItemsPerOrder/2)
	sold := make(map[string]int, len(products))
	for _, p := range products {
		sold[p.ID] = 0
	}

	for i := 0; i < g.cfg.Orders; i++ {
		customer := pick(g.rng, customers)
		o := domain.Order{
			CustomerID:         customer.ID,
			OrderDate:          randomDate(g.rng, g.now, historyDays),
			ShippingAddress:    g.address(),
			Status:             weighted(g.rng, domain.OrderStatuses, statusWeights),
			AcquisitionChannel: weighted(g.rng, domain.Channels, channelWeights),
			CouponCode:         pick(g.rng, couponCodes),
			ID:                 newID(g.rng),
		}

		lines := make([]domain.OrderItem, 0, g.cfg.MaxItemsPerOrder)
		for i, n := 0, between(g.rng, 1, g.cfg.MaxItemsPerOrder); i < n; i++ {
			it := g.orderItem(o.ID, pick(g.rng, products))
			lines = append(lines, it)
			sold[it.ProductID] += it.Quantity
		}

		totals := derive.ComputeOrderTotals(lines, uniformMoney(g.rng, 0, 25))
		o.Subtotal = totals.Subtotal
		o.ShippingCost = totals.Shipping
		o.TaxAmount = totals.Tax
		o.TotalAmount = totals.Total
		o.CustomerSentiment = stats[customer.ID].Record(&o)

		orders = append(orders, o)
		items = append(items, lines...)
	}
	return orders, items, sold
}

func (g *Generator) orderItem(orderID string, p domain.Product) domain.OrderItem {
	quantity := between(g.rng, 1, 4)
	discount := decimal.Zero
	// one in four lines carries a 10% unit discount
	if g.rng.Intn(4) == 3 {
		discount = p.Price.Mul(itemDiscountRate).Round(2)
	}
	return domain.OrderItem{
		ID:             newID(g.rng),
		OrderID:        orderID,
		ProductID:      p.ID,
		Quantity:       quantity,
		UnitPrice:      p.Price,
		DiscountAmount: discount,
		LineTotal:      derive.LineTotal(quantity, p.Price, discount),
		TaxRate:        decimal.RequireFromString(pick(g.rng, itemTaxRates)),
	}
}

func (g *Generator) address() domain.ShippingAddress {
	st := pick(g.rng, states)
	return domain.ShippingAddress{
		City:       pick(g.rng, st.cities),
		State:      st.code,
		Street:     fmt.Sprintf("%d %s %s", between(g.rng, 100, 9999), pick(g.rng, streetNames), pick(g.rng, streetSuffixes)),
		PostalCode: fmt.Sprintf("%d", between(g.rng, 10000, 99999)),
		Country:    pick(g.rng, countries),
	}
}
