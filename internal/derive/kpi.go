package derive

import (
	"sort"
	"time"

	"github.com/k-code-yt/ecommerce-dataset/internal/domain"
	"github.com/shopspring/decimal"
)

type kpiAccumulator struct {
	orders    int
	first     time.Time
	last      time.Time
	gross     decimal.Decimal
	discount  decimal.Decimal
	sentiment float64
	channels  map[domain.Channel]int
}

// CustomerKPIs recomputes the KPI record of every customer from scratch, in
// customer order. Customers without orders get zero counts and nil
// dates/averages/channel/sentiment.
//
// Dominant channel ties are broken by the alphabetically first channel name.
func CustomerKPIs(customers []domain.Customer, orders []domain.Order, items []domain.OrderItem) []domain.CustomerKPI {
	discountByOrder := make(map[string]decimal.Decimal, len(orders))
	for _, it := range items {
		discountByOrder[it.OrderID] = discountByOrder[it.OrderID].Add(it.DiscountAmount)
	}

	acc := make(map[string]*kpiAccumulator, len(customers))
	for _, c := range customers {
		acc[c.ID] = &kpiAccumulator{channels: make(map[domain.Channel]int)}
	}
	for _, o := range orders {
		a, ok := acc[o.CustomerID]
		if !ok {
			continue
		}
		if a.orders == 0 || o.OrderDate.Before(a.first) {
			a.first = o.OrderDate
		}
		if a.orders == 0 || o.OrderDate.After(a.last) {
			a.last = o.OrderDate
		}
		a.orders++
		a.gross = a.gross.Add(o.Subtotal)
		a.discount = a.discount.Add(discountByOrder[o.ID])
		a.sentiment += o.CustomerSentiment.Score()
		a.channels[o.AcquisitionChannel]++
	}

	kpis := make([]domain.CustomerKPI, 0, len(customers))
	for _, c := range customers {
		kpis = append(kpis, acc[c.ID].kpi(c.ID))
	}
	return kpis
}

func (a *kpiAccumulator) kpi(customerID string) domain.CustomerKPI {
	k := domain.CustomerKPI{
		CustomerID:    customerID,
		TotalOrders:   a.orders,
		GrossRevenue:  a.gross.Round(2),
		DiscountTotal: a.discount.Round(2),
		NetRevenue:    a.gross.Sub(a.discount).Round(2),
	}
	if a.orders == 0 {
		return k
	}

	first, last := a.first, a.last
	avg := a.gross.DivRound(decimal.NewFromInt(int64(a.orders)), 2)
	score := a.sentiment / float64(a.orders)
	channel := DominantChannel(a.channels)

	k.FirstOrderDate = &first
	k.LastOrderDate = &last
	k.AvgOrderValue = &avg
	k.SentimentScore = &score
	k.DominantChannel = &channel
	return k
}

// DominantChannel returns the most frequent channel; equal counts resolve to
// the alphabetically first channel. counts must not be empty.
func DominantChannel(counts map[domain.Channel]int) domain.Channel {
	names := make([]domain.Channel, 0, len(counts))
	for ch := range counts {
		names = append(names, ch)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	best := names[0]
	for _, ch := range names[1:] {
		if counts[ch] > counts[best] {
			best = ch
		}
	}
	return best
}
