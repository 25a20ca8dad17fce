package loader

import (
	"testing"

	"github.com/k-code-yt/ecommerce-dataset/internal/dataset"
	"github.com/k-code-yt/ecommerce-dataset/internal/domain"
	pkgconstants "github.com/k-code-yt/ecommerce-dataset/pkg/constants"
	pkgerrors "github.com/k-code-yt/ecommerce-dataset/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodedTables(ds *domain.Dataset) map[string]*dataset.Table {
	tables := make(map[string]*dataset.Table)
	for _, t := range dataset.Encode(ds) {
		tables[t.Name] = t
	}
	return tables
}

// setCell overwrites one column of one row.
func setCell(t *testing.T, tbl *dataset.Table, row int, column, value string) {
	t.Helper()
	for i, c := range tbl.Columns {
		if c == column {
			tbl.Rows[row][i] = value
			return
		}
	}
	t.Fatalf("column %s not in %s", column, tbl.Name)
}

func TestTransformRoundTrip(t *testing.T) {
	want := fixtureDataset()
	got, err := Transform(encodedTables(want))
	require.NoError(t, err)
	assertSameDataset(t, want, got)
}

func TestTransformTotalsMismatch(t *testing.T) {
	tables := encodedTables(fixtureDataset())
	orders := tables[pkgconstants.DBTableName_Orders]
	setCell(t, orders, 0, "subtotal", "100")
	setCell(t, orders, 0, "shipping_cost", "5")
	setCell(t, orders, 0, "tax_amount", "8")
	setCell(t, orders, 0, "total_amount", "200")

	_, err := Transform(tables)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsTotalsMismatchError(err))
	assert.Contains(t, err.Error(), "o1")
}

func TestTransformToleratesRoundingGap(t *testing.T) {
	tables := encodedTables(fixtureDataset())
	orders := tables[pkgconstants.DBTableName_Orders]
	setCell(t, orders, 0, "subtotal", "100")
	setCell(t, orders, 0, "shipping_cost", "5")
	setCell(t, orders, 0, "tax_amount", "8")
	setCell(t, orders, 0, "total_amount", "113.99")

	_, err := Transform(tables)
	assert.NoError(t, err)
}

func TestTransformRejectsBadRows(t *testing.T) {
	tests := []struct {
		name   string
		table  string
		column string
		value  string
	}{
		{"unknown tier", pkgconstants.DBTableName_Customers, "loyalty_tier", "diamond"},
		{"empty bucket", pkgconstants.DBTableName_Customers, "lifetime_value_bucket", ""},
		{"bad created_at", pkgconstants.DBTableName_Customers, "created_at", "yesterday"},
		{"missing email", pkgconstants.DBTableName_Customers, "email", " "},
		{"zero price", pkgconstants.DBTableName_Products, "price", "0"},
		{"negative price", pkgconstants.DBTableName_Products, "price", "-3.50"},
		{"price not a number", pkgconstants.DBTableName_Products, "price", "ten"},
		{"unknown status", pkgconstants.DBTableName_Orders, "order_status", "lost"},
		{"unknown channel", pkgconstants.DBTableName_Orders, "acquisition_channel", "tv"},
		{"unknown sentiment", pkgconstants.DBTableName_Orders, "customer_sentiment", "angry"},
		{"zero quantity", pkgconstants.DBTableName_OrderItems, "quantity", "0"},
		{"quantity not a number", pkgconstants.DBTableName_OrderItems, "quantity", "two"},
		{"unknown event type", pkgconstants.DBTableName_InventoryEvents, "event_type", "theft"},
		{"unknown actor", pkgconstants.DBTableName_InventoryEvents, "actor", "robot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables := encodedTables(fixtureDataset())
			setCell(t, tables[tt.table], 0, tt.column, tt.value)

			_, err := Transform(tables)
			require.Error(t, err)
			assert.True(t, pkgerrors.IsSchemaViolationError(err), "got %v", err)
			assert.Contains(t, err.Error(), tt.column)
		})
	}
}

func TestTransformLenientNumbers(t *testing.T) {
	tables := encodedTables(fixtureDataset())
	setCell(t, tables[pkgconstants.DBTableName_OrderItems], 0, "quantity", "2.0")
	setCell(t, tables[pkgconstants.DBTableName_Customers], 0, "marketing_opt_in", "1")
	setCell(t, tables[pkgconstants.DBTableName_Products], 1, "active_flag", "")
	setCell(t, tables[pkgconstants.DBTableName_Orders], 1, "order_date", "2025-04-28 09:30:00")

	ds, err := Transform(tables)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.OrderItems[0].Quantity)
	assert.True(t, ds.Customers[0].MarketingOptIn)
	assert.True(t, ds.Products[1].Active, "missing active_flag defaults to true")
	assert.Equal(t, fixtureNow.AddDate(0, 0, -3), ds.Orders[1].OrderDate)
}

func TestTransformMissingColumn(t *testing.T) {
	tables := encodedTables(fixtureDataset())
	orders := tables[pkgconstants.DBTableName_Orders]
	orders.Columns = orders.Columns[:len(orders.Columns)-1]

	_, err := Transform(tables)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsSchemaViolationError(err))
	assert.Contains(t, err.Error(), "customer_sentiment")
}

func TestTransformEmptyTables(t *testing.T) {
	ds, err := Transform(map[string]*dataset.Table{})
	require.NoError(t, err)
	assert.Empty(t, ds.Customers)
	assert.Empty(t, ds.InventoryEvents)
}

// assertSameDataset compares field values, using Equal for decimals and times.
func assertSameDataset(t *testing.T, want, got *domain.Dataset) {
	t.Helper()
	require.Len(t, got.Customers, len(want.Customers))
	for i, w := range want.Customers {
		g := got.Customers[i]
		assert.True(t, w.CreatedAt.Equal(g.CreatedAt), "customer %s created_at", w.ID)
		g.CreatedAt = w.CreatedAt
		assert.Equal(t, w, g)
	}

	require.Len(t, got.Products, len(want.Products))
	for i, w := range want.Products {
		g := got.Products[i]
		assert.True(t, w.Price.Equal(g.Price), "product %s price", w.ID)
		assert.True(t, w.CreatedAt.Equal(g.CreatedAt), "product %s created_at", w.ID)
		assert.Equal(t, []any{w.ID, w.Name, w.Category, w.Brand, w.InventoryCount, w.Active},
			[]any{g.ID, g.Name, g.Category, g.Brand, g.InventoryCount, g.Active})
	}

	require.Len(t, got.Orders, len(want.Orders))
	for i, w := range want.Orders {
		g := got.Orders[i]
		assert.True(t, w.OrderDate.Equal(g.OrderDate), "order %s date", w.ID)
		assert.True(t, w.Subtotal.Equal(g.Subtotal), "order %s subtotal", w.ID)
		assert.True(t, w.ShippingCost.Equal(g.ShippingCost), "order %s shipping", w.ID)
		assert.True(t, w.TaxAmount.Equal(g.TaxAmount), "order %s tax", w.ID)
		assert.True(t, w.TotalAmount.Equal(g.TotalAmount), "order %s total", w.ID)
		assert.Equal(t, w.ShippingAddress, g.ShippingAddress)
		assert.Equal(t, []any{w.ID, w.CustomerID, w.Status, w.CouponCode, w.AcquisitionChannel, w.CustomerSentiment},
			[]any{g.ID, g.CustomerID, g.Status, g.CouponCode, g.AcquisitionChannel, g.CustomerSentiment})
	}

	require.Len(t, got.OrderItems, len(want.OrderItems))
	for i, w := range want.OrderItems {
		g := got.OrderItems[i]
		assert.Equal(t, []any{w.ID, w.OrderID, w.ProductID, w.Quantity}, []any{g.ID, g.OrderID, g.ProductID, g.Quantity})
		assert.True(t, w.UnitPrice.Equal(g.UnitPrice), "item %s unit_price", w.ID)
		assert.True(t, w.DiscountAmount.Equal(g.DiscountAmount), "item %s discount", w.ID)
		assert.True(t, w.LineTotal.Equal(g.LineTotal), "item %s line_total", w.ID)
		assert.True(t, w.TaxRate.Equal(g.TaxRate), "item %s tax_rate", w.ID)
	}

	require.Len(t, got.InventoryEvents, len(want.InventoryEvents))
	for i, w := range want.InventoryEvents {
		g := got.InventoryEvents[i]
		assert.True(t, w.EventTimestamp.Equal(g.EventTimestamp), "event %s timestamp", w.ID)
		g.EventTimestamp = w.EventTimestamp
		assert.Equal(t, w, g)
	}
}
