package derive

import (
	"sort"

	"github.com/k-code-yt/ecommerce-dataset/internal/domain"
)

const minSaleEvents = 3

// SaleEventCount is the number of sale events emitted for a product that sold
// soldQty units.
func SaleEventCount(soldQty int) int {
	return max(minSaleEvents, soldQty/5)
}

// UnitsSold sums order item quantities per product.
func UnitsSold(items []domain.OrderItem) map[string]int {
	sold := make(map[string]int)
	for _, it := range items {
		sold[it.ProductID] += it.Quantity
	}
	return sold
}

// InventoryDeltas returns one delta per product, ordered by product id.
// Products without events get a zero delta.
func InventoryDeltas(products []domain.Product, events []domain.InventoryEvent) []domain.InventoryDelta {
	byProduct := make(map[string]*domain.InventoryDelta, len(products))
	for _, p := range products {
		byProduct[p.ID] = &domain.InventoryDelta{ProductID: p.ID}
	}
	for _, ev := range events {
		d, ok := byProduct[ev.ProductID]
		if !ok {
			continue
		}
		switch ev.EventType {
		case domain.EventType_Restock:
			d.Restocked += ev.QuantityChange
		case domain.EventType_Sale:
			d.Sold += ev.QuantityChange
			d.SaleEvents++
		case domain.EventType_Return:
			d.Returned += ev.QuantityChange
		case domain.EventType_Adjustment:
			d.Adjusted += ev.QuantityChange
		}
	}

	out := make([]domain.InventoryDelta, 0, len(byProduct))
	for _, d := range byProduct {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}
