package loader

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/k-code-yt/ecommerce-dataset/internal/dataset"
	"github.com/k-code-yt/ecommerce-dataset/internal/derive"
	"github.com/k-code-yt/ecommerce-dataset/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var fixtureNow = time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)

func fixtureItem(id, orderID, productID string, qty int, price, discount string) domain.OrderItem {
	return domain.OrderItem{
		ID:             id,
		OrderID:        orderID,
		ProductID:      productID,
		Quantity:       qty,
		UnitPrice:      dec(price),
		DiscountAmount: dec(discount),
		LineTotal:      derive.LineTotal(qty, dec(price), dec(discount)),
		TaxRate:        dec("0.07"),
	}
}

func fixtureOrder(id, customerID string, daysAgo int, ch domain.Channel, s domain.Sentiment, items []domain.OrderItem) domain.Order {
	totals := derive.ComputeOrderTotals(items, dec("4.99"))
	return domain.Order{
		ID:         id,
		CustomerID: customerID,
		OrderDate:  fixtureNow.AddDate(0, 0, -daysAgo),
		Status:     domain.OrderStatus_Delivered,
		ShippingAddress: domain.ShippingAddress{
			Street: "12 Oak St", City: "Austin", State: "TX", PostalCode: "73301", Country: "US",
		},
		Subtotal:           totals.Subtotal,
		ShippingCost:       totals.Shipping,
		TaxAmount:          totals.Tax,
		TotalAmount:        totals.Total,
		CouponCode:         "LOYAL20",
		AcquisitionChannel: ch,
		CustomerSentiment:  s,
	}
}

// fixtureDataset is small and consistent: c1 has two orders, c2 has none.
func fixtureDataset() *domain.Dataset {
	o1Items := []domain.OrderItem{
		fixtureItem("i1", "o1", "p1", 2, "10.00", "0.00"),
		fixtureItem("i2", "o1", "p2", 1, "5.50", "0.55"),
	}
	o2Items := []domain.OrderItem{
		fixtureItem("i3", "o2", "p1", 3, "10.00", "1.00"),
	}
	return &domain.Dataset{
		Customers: []domain.Customer{
			{ID: "c1", FirstName: "Ava", LastName: "Nguyen", Email: "ava@example.com", Phone: "(212)-555-0101",
				CreatedAt: fixtureNow.AddDate(-1, 0, 0), MarketingOptIn: true,
				LoyaltyTier: domain.LoyaltyTier_Silver, LifetimeValueBucket: domain.LifetimeValueBucket_Low},
			{ID: "c2", FirstName: "Liam", LastName: "Patel", Email: "liam@example.com",
				CreatedAt: fixtureNow.AddDate(0, -2, 0),
				LoyaltyTier: domain.LoyaltyTier_Bronze, LifetimeValueBucket: domain.LifetimeValueBucket_Low},
		},
		Products: []domain.Product{
			{ID: "p1", Name: "Nova One", Category: "electronics", Brand: "Luminex", Price: dec("10.00"),
				CreatedAt: fixtureNow.AddDate(-2, 0, 0), InventoryCount: 120, Active: true},
			{ID: "p2", Name: "Echo Mini", Category: "home", Brand: "Nestico", Price: dec("5.50"),
				CreatedAt: fixtureNow.AddDate(-2, 0, 0), InventoryCount: 80},
		},
		Orders: []domain.Order{
			fixtureOrder("o1", "c1", 30, domain.Channel_Social, domain.Sentiment_Positive, o1Items),
			fixtureOrder("o2", "c1", 3, domain.Channel_Email, domain.Sentiment_Neutral, o2Items),
		},
		OrderItems: append(o1Items, o2Items...),
		InventoryEvents: []domain.InventoryEvent{
			{ID: "e1", ProductID: "p1", EventType: domain.EventType_Restock, QuantityChange: 200,
				EventTimestamp: fixtureNow.AddDate(-2, 0, -10), Note: "Initial load", Actor: domain.Actor_System},
			{ID: "e2", ProductID: "p1", EventType: domain.EventType_Sale, QuantityChange: -5,
				EventTimestamp: fixtureNow.AddDate(0, 0, -3), Note: "order fulfillment", Actor: domain.Actor_WarehouseBot},
			{ID: "e3", ProductID: "p2", EventType: domain.EventType_Restock, QuantityChange: 150,
				EventTimestamp: fixtureNow.AddDate(-2, 0, -7), Note: "Initial load", Actor: domain.Actor_Vendor},
		},
	}
}

// writeDataset writes ds as CSV into a fresh directory.
func writeDataset(t *testing.T, ds *domain.Dataset) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "data")
	_, err := dataset.WriteDir(dir, dataset.Format_CSV, dataset.Encode(ds))
	require.NoError(t, err)
	return dir
}
