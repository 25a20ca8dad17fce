package generator

import (
	"time"

	"github.com/k-code-yt/ecommerce-dataset/internal/derive"
	"github.com/k-code-yt/ecommerce-dataset/internal/domain"
)

const (
	noteInitialLoad = "Initial load"
	noteFulfillment = "order fulfillment"
	noteMidSeason   = "mid-season"

	midSeasonRestockChance = 0.3
)

func (g *Generator) generateInventoryEvents(products []domain.Product, sold map[string]int) []domain.InventoryEvent {
	events := make([]domain.InventoryEvent, 0, len(products)*(derive.SaleEventCount(0)+2))
	for _, p := range products {
		events = append(events, domain.InventoryEvent{
			ID:             newID(g.rng),
			ProductID:      p.ID,
			EventType:      domain.EventType_Restock,
			QuantityChange: between(g.rng, 100, 400),
			EventTimestamp: p.CreatedAt.Add(-time.Duration(between(g.rng, 5, 30)) * day),
			Note:           noteInitialLoad,
			Actor:          pick(g.rng, actors),
		})

		for i, n := 0, derive.SaleEventCount(sold[p.ID]); i < n; i++ {
			qty := between(g.rng, 1, 5)
			ts := p.CreatedAt.Add(time.Duration(between(g.rng, 1, historyDays)) * day)
			if ts.After(g.now) {
				ts = g.now
			}
			events = append(events, domain.InventoryEvent{
				ID:             newID(g.rng),
				ProductID:      p.ID,
				EventType:      domain.EventType_Sale,
				QuantityChange: -qty,
				EventTimestamp: ts,
				Note:           noteFulfillment,
				Actor:          pick(g.rng, actors),
			})
		}

		if g.rng.Float64() < midSeasonRestockChance {
			events = append(events, domain.InventoryEvent{
				ID:             newID(g.rng),
				ProductID:      p.ID,
				EventType:      domain.EventType_Restock,
				QuantityChange: between(g.rng, 20, 80),
				EventTimestamp: randomDate(g.rng, g.now, historyDays),
				Note:           noteMidSeason,
				Actor:          pick(g.rng, actors),
			})
		}
	}
	return events
}
