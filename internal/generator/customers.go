package generator

import (
	"fmt"
	"strings"

	"github.com/k-code-yt/ecommerce-dataset/internal/derive"
	"github.com/k-code-yt/ecommerce-dataset/internal/domain"
	"github.com/shopspring/decimal"
)

// CustomerStats are the running totals of one customer, updated in order
// generation sequence.
type CustomerStats struct {
	Spend          decimal.Decimal
	Orders         int
	NegativeEvents int
}

// Record adds an order and returns the sentiment implied by the history up to
// and including it.
func (s *CustomerStats) Record(o *domain.Order) domain.Sentiment {
	s.Spend = s.Spend.Add(o.TotalAmount)
	s.Orders++
	if o.Status.Negative() {
		s.NegativeEvents++
	}
	return derive.Sentiment(s.NegativeEvents, s.Orders)
}

func (g *Generator) generateCustomers() ([]domain.Customer, map[string]*CustomerStats) {
	customers := make([]domain.Customer, 0, g.cfg.Customers)
	stats := make(map[string]*CustomerStats, g.cfg.Customers)
	for i := 0; i < g.cfg.Customers; i++ {
		first := pick(g.rng, firstNames)
		last := pick(g.rng, lastNames)
		c := domain.Customer{
			FirstName:      first,
			LastName:       last,
			CreatedAt:      randomDate(g.rng, g.now, historyDays),
			ID:             newID(g.rng),
			LoyaltyTier:    weighted(g.rng, domain.LoyaltyTiers, tierWeights),
			Email:          g.email(first, last),
			Phone:          g.phone(),
			MarketingOptIn: g.rng.Intn(2) == 1,
			// overwritten by the final-spend pass
			LifetimeValueBucket: domain.LifetimeValueBucket_Medium,
		}
		customers = append(customers, c)
		stats[c.ID] = &CustomerStats{}
	}
	return customers, stats
}

func (g *Generator) email(first, last string) string {
	return fmt.Sprintf("%s.%s%d@%s", strings.ToLower(first), strings.ToLower(last), between(g.rng, 10, 999), pick(g.rng, emailDomains))
}

func (g *Generator) phone() string {
	return fmt.Sprintf("(%d)-%03d-%04d", between(g.rng, 200, 989), between(g.rng, 200, 989), between(g.rng, 1000, 9999))
}

// reclassifyCustomers sets bucket and tier from final cumulative spend. This
// deliberately runs after all orders, while order sentiment was fixed at
// generation time.
func reclassifyCustomers(customers []domain.Customer, stats map[string]*CustomerStats) {
	for i := range customers {
		c := &customers[i]
		spend := stats[c.ID].Spend
		c.LifetimeValueBucket = derive.LifetimeValueBucket(spend)
		c.LoyaltyTier = derive.LoyaltyTier(spend, c.LoyaltyTier)
	}
}
