// Package dataset moves tables between memory and flat files (CSV or Avro
// object container files).
package dataset

import (
	"fmt"

	pkgconstants "github.com/k-code-yt/ecommerce-dataset/pkg/constants"
)

var (
	CustomerColumns = []string{
		"customer_id", "first_name", "last_name", "email", "phone",
		"created_at", "marketing_opt_in", "loyalty_tier", "lifetime_value_bucket",
	}
	ProductColumns = []string{
		"product_id", "name", "category", "brand", "price",
		"created_at", "inventory_count", "active_flag",
	}
	OrderColumns = []string{
		"order_id", "customer_id", "order_date", "order_status",
		"shipping_address", "shipping_city", "shipping_state", "shipping_postal_code", "shipping_country",
		"subtotal", "shipping_cost", "tax_amount", "total_amount",
		"coupon_code", "acquisition_channel", "customer_sentiment",
	}
	OrderItemColumns = []string{
		"order_item_id", "order_id", "product_id", "quantity", "unit_price",
		"discount_amount", "line_total", "tax_rate",
	}
	InventoryEventColumns = []string{
		"event_id", "product_id", "event_type", "quantity_change",
		"event_timestamp", "note", "actor",
	}
)

// Columns returns the canonical column list of a source table.
func Columns(table string) []string {
	switch table {
	case pkgconstants.DBTableName_Customers:
		return CustomerColumns
	case pkgconstants.DBTableName_Products:
		return ProductColumns
	case pkgconstants.DBTableName_Orders:
		return OrderColumns
	case pkgconstants.DBTableName_OrderItems:
		return OrderItemColumns
	case pkgconstants.DBTableName_InventoryEvents:
		return InventoryEventColumns
	}
	return nil
}

// Table is a header plus text rows, the common shape of every source file.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

func NewTable(name string) *Table {
	return &Table{Name: name, Columns: Columns(name)}
}

func (t *Table) Len() int { return len(t.Rows) }

// Record is one row addressed by column name.
type Record struct {
	table string
	line  int
	index map[string]int
	row   []string
}

// Records fails if any canonical column is missing from the header.
func (t *Table) Records() ([]Record, error) {
	index := make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		index[c] = i
	}
	if len(t.Rows) > 0 {
		for _, want := range Columns(t.Name) {
			if _, ok := index[want]; !ok {
				return nil, fmt.Errorf("%s: missing column %q", t.Name, want)
			}
		}
	}

	out := make([]Record, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = Record{table: t.Name, line: i + 1, index: index, row: row}
	}
	return out, nil
}

// Get returns the named field, or "" if absent.
func (r Record) Get(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.row) {
		return ""
	}
	return r.row[i]
}

// Line is the 1-based data row number, excluding the header.
func (r Record) Line() int { return r.line }

func (r Record) Table() string { return r.table }
