package generator

import (
	"testing"

	"github.com/k-code-yt/ecommerce-dataset/internal/derive"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
)

func TestGeneratedDatasetProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 25
	properties := gopter.NewProperties(parameters)

	cent := decimal.RequireFromString("0.01")

	properties.Property("order totals reconcile within a cent", prop.ForAll(
		func(seed int64, orders int) bool {
			cfg := smallConfig(seed)
			cfg.Orders = orders
			res := New(cfg).Generate()
			for _, o := range res.Orders {
				if !o.TotalsDelta().LessThan(cent) {
					return false
				}
			}
			return len(res.Orders) == orders
		},
		gen.Int64(),
		gen.IntRange(0, 80),
	))

	properties.Property("line totals match quantity and net unit price", prop.ForAll(
		func(seed int64, maxItems int) bool {
			cfg := smallConfig(seed)
			cfg.MaxItemsPerOrder = maxItems
			res := New(cfg).Generate()
			perOrder := make(map[string]int)
			for _, it := range res.OrderItems {
				if !it.LineTotal.Equal(derive.LineTotal(it.Quantity, it.UnitPrice, it.DiscountAmount)) {
					return false
				}
				perOrder[it.OrderID]++
			}
			for _, n := range perOrder {
				if n < 1 || n > maxItems {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 6),
	))

	properties.Property("every reference resolves", prop.ForAll(
		func(seed int64) bool {
			res := New(smallConfig(seed)).Generate()
			customers := make(map[string]bool, len(res.Customers))
			for _, c := range res.Customers {
				customers[c.ID] = true
			}
			orders := make(map[string]bool, len(res.Orders))
			for _, o := range res.Orders {
				if !customers[o.CustomerID] {
					return false
				}
				orders[o.ID] = true
			}
			products := make(map[string]bool, len(res.Products))
			for _, p := range res.Products {
				products[p.ID] = true
			}
			for _, it := range res.OrderItems {
				if !orders[it.OrderID] || !products[it.ProductID] {
					return false
				}
			}
			for _, ev := range res.InventoryEvents {
				if !products[ev.ProductID] {
					return false
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.Property("bucket and tier follow final spend", prop.ForAll(
		func(seed int64) bool {
			res := New(smallConfig(seed)).Generate()
			for _, c := range res.Customers {
				spend := res.Stats[c.ID].Spend
				if c.LifetimeValueBucket != derive.LifetimeValueBucket(spend) {
					return false
				}
				if spend.GreaterThan(decimal.NewFromInt(1000)) && c.LoyaltyTier != derive.LoyaltyTier(spend, c.LoyaltyTier) {
					return false
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}
