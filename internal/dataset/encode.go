package dataset

import (
	"strconv"

	"github.com/k-code-yt/ecommerce-dataset/internal/domain"
	pkgconstants "github.com/k-code-yt/ecommerce-dataset/pkg/constants"
	"github.com/shopspring/decimal"
)

func money(d decimal.Decimal) string { return d.StringFixed(2) }

func EncodeCustomers(customers []domain.Customer) *Table {
	t := NewTable(pkgconstants.DBTableName_Customers)
	for _, c := range customers {
		t.Rows = append(t.Rows, []string{
			c.ID, c.FirstName, c.LastName, c.Email, c.Phone,
			domain.FormatTime(c.CreatedAt), strconv.FormatBool(c.MarketingOptIn),
			string(c.LoyaltyTier), string(c.LifetimeValueBucket),
		})
	}
	return t
}

func EncodeProducts(products []domain.Product) *Table {
	t := NewTable(pkgconstants.DBTableName_Products)
	for _, p := range products {
		t.Rows = append(t.Rows, []string{
			p.ID, p.Name, p.Category, p.Brand, money(p.Price),
			domain.FormatTime(p.CreatedAt), strconv.Itoa(p.InventoryCount), strconv.FormatBool(p.Active),
		})
	}
	return t
}

func EncodeOrders(orders []domain.Order) *Table {
	t := NewTable(pkgconstants.DBTableName_Orders)
	for _, o := range orders {
		t.Rows = append(t.Rows, []string{
			o.ID, o.CustomerID, domain.FormatTime(o.OrderDate), string(o.Status),
			o.Street, o.City, o.State, o.PostalCode, o.Country,
			money(o.Subtotal), money(o.ShippingCost), money(o.TaxAmount), money(o.TotalAmount),
			o.CouponCode, string(o.AcquisitionChannel), string(o.CustomerSentiment),
		})
	}
	return t
}

func EncodeOrderItems(items []domain.OrderItem) *Table {
	t := NewTable(pkgconstants.DBTableName_OrderItems)
	for _, it := range items {
		t.Rows = append(t.Rows, []string{
			it.ID, it.OrderID, it.ProductID, strconv.Itoa(it.Quantity),
			money(it.UnitPrice), money(it.DiscountAmount), money(it.LineTotal), it.TaxRate.StringFixed(2),
		})
	}
	return t
}

func EncodeInventoryEvents(events []domain.InventoryEvent) *Table {
	t := NewTable(pkgconstants.DBTableName_InventoryEvents)
	for _, ev := range events {
		t.Rows = append(t.Rows, []string{
			ev.ID, ev.ProductID, string(ev.EventType), strconv.Itoa(ev.QuantityChange),
			domain.FormatTime(ev.EventTimestamp), ev.Note, string(ev.Actor),
		})
	}
	return t
}

// Encode converts a dataset into its five tables in insert order.
func Encode(ds *domain.Dataset) []*Table {
	return []*Table{
		EncodeCustomers(ds.Customers),
		EncodeProducts(ds.Products),
		EncodeOrders(ds.Orders),
		EncodeOrderItems(ds.OrderItems),
		EncodeInventoryEvents(ds.InventoryEvents),
	}
}
