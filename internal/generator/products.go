package generator

import (
	"fmt"

	"github.com/k-code-yt/ecommerce-dataset/internal/domain"
)

func (g *Generator) generateProducts() []domain.Product {
	products := make([]domain.Product, 0, g.cfg.Products)
	for i := 0; i < g.cfg.Products; i++ {
		category := pick(g.rng, categories)
		p := domain.Product{
			ID:             newID(g.rng),
			Price:          uniformMoney(g.rng, 10, 600),
			CreatedAt:      randomDate(g.rng, g.now, historyDays),
			InventoryCount: between(g.rng, 50, 500),
			Name:           fmt.Sprintf("%s %s", pick(g.rng, productPrefixes), pick(g.rng, productSuffixes)),
			Category:       category,
			Brand:          pick(g.rng, brands[category]),
			// two in three products are active
			Active: g.rng.Intn(3) < 2,
		}
		products = append(products, p)
	}
	return products
}
