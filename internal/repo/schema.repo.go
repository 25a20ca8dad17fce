package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/k-code-yt/ecommerce-dataset/internal/domain"
	pkgconstants "github.com/k-code-yt/ecommerce-dataset/pkg/constants"
	pkgdb "github.com/k-code-yt/ecommerce-dataset/pkg/db"
)

type SchemaRepo struct {
	dialect *pkgdb.Dialect
}

func NewSchemaRepo(dialect *pkgdb.Dialect) *SchemaRepo {
	return &SchemaRepo{dialect: dialect}
}

func inList(column string, values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + strings.ReplaceAll(v, "'", "''") + "'"
	}
	return fmt.Sprintf("CHECK (%s IN (%s))", column, strings.Join(quoted, ", "))
}

// CreateStatements returns the DDL for all six tables plus their FK indexes,
// parents first.
func (r *SchemaRepo) CreateStatements() []string {
	d := r.dialect
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	customer_id %[2]s PRIMARY KEY,
	first_name %[2]s NOT NULL,
	last_name %[2]s NOT NULL,
	email %[2]s NOT NULL,
	phone %[2]s,
	created_at %[3]s NOT NULL,
	marketing_opt_in %[4]s NOT NULL,
	loyalty_tier %[2]s NOT NULL %[5]s,
	lifetime_value_bucket %[2]s NOT NULL %[6]s
)`, pkgconstants.DBTableName_Customers, d.TextType, d.TimestampType, d.BoolType,
			inList("loyalty_tier", domain.Strings(domain.LoyaltyTiers)),
			inList("lifetime_value_bucket", domain.Strings(domain.LifetimeValueBuckets))),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	product_id %[2]s PRIMARY KEY,
	name %[2]s NOT NULL,
	category %[2]s NOT NULL,
	brand %[2]s NOT NULL,
	price %[3]s NOT NULL CHECK (price > 0),
	created_at %[4]s NOT NULL,
	inventory_count INTEGER NOT NULL,
	active_flag %[5]s NOT NULL
)`, pkgconstants.DBTableName_Products, d.TextType, d.MoneyType, d.TimestampType, d.BoolType),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	order_id %[2]s PRIMARY KEY,
	customer_id %[2]s NOT NULL REFERENCES %[5]s(customer_id),
	order_date %[3]s NOT NULL,
	order_status %[2]s NOT NULL %[6]s,
	shipping_address %[2]s NOT NULL,
	shipping_city %[2]s NOT NULL,
	shipping_state %[2]s NOT NULL,
	shipping_postal_code %[2]s NOT NULL,
	shipping_country %[2]s NOT NULL,
	subtotal %[4]s NOT NULL,
	shipping_cost %[4]s NOT NULL,
	tax_amount %[4]s NOT NULL,
	total_amount %[4]s NOT NULL,
	coupon_code %[2]s,
	acquisition_channel %[2]s NOT NULL %[7]s,
	customer_sentiment %[2]s NOT NULL %[8]s
)`, pkgconstants.DBTableName_Orders, d.TextType, d.TimestampType, d.MoneyType,
			pkgconstants.DBTableName_Customers,
			inList("order_status", domain.Strings(domain.OrderStatuses)),
			inList("acquisition_channel", domain.Strings(domain.Channels)),
			inList("customer_sentiment", domain.Strings(domain.Sentiments))),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	order_item_id %[2]s PRIMARY KEY,
	order_id %[2]s NOT NULL REFERENCES %[5]s(order_id) ON DELETE CASCADE,
	product_id %[2]s NOT NULL REFERENCES %[6]s(product_id),
	quantity INTEGER NOT NULL CHECK (quantity > 0),
	unit_price %[3]s NOT NULL,
	discount_amount %[3]s NOT NULL,
	line_total %[3]s NOT NULL,
	tax_rate %[4]s NOT NULL
)`, pkgconstants.DBTableName_OrderItems, d.TextType, d.MoneyType, d.RateType,
			pkgconstants.DBTableName_Orders, pkgconstants.DBTableName_Products),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	event_id %[2]s PRIMARY KEY,
	product_id %[2]s NOT NULL REFERENCES %[4]s(product_id),
	event_type %[2]s NOT NULL %[5]s,
	quantity_change INTEGER NOT NULL,
	event_timestamp %[3]s NOT NULL,
	note %[2]s,
	actor %[2]s NOT NULL %[6]s
)`, pkgconstants.DBTableName_InventoryEvents, d.TextType, d.TimestampType,
			pkgconstants.DBTableName_Products,
			inList("event_type", domain.Strings(domain.EventTypes)),
			inList("actor", domain.Strings(domain.Actors))),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	customer_id %[2]s PRIMARY KEY REFERENCES %[6]s(customer_id),
	total_orders INTEGER NOT NULL,
	first_order_date %[3]s,
	last_order_date %[3]s,
	gross_revenue %[4]s NOT NULL,
	discount_total %[4]s NOT NULL,
	net_revenue %[4]s NOT NULL,
	avg_order_value %[4]s,
	dominant_channel %[2]s %[7]s,
	sentiment_score %[5]s
)`, pkgconstants.DBTableName_CustomerKPIs, d.TextType, d.TimestampType, d.MoneyType, d.FloatType,
			pkgconstants.DBTableName_Customers,
			inList("dominant_channel", domain.Strings(domain.Channels))),

		"CREATE INDEX IF NOT EXISTS idx_orders_customer_id ON orders(customer_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_product_id ON order_items(product_id)",
		"CREATE INDEX IF NOT EXISTS idx_inventory_events_product_id ON inventory_events(product_id)",
	}
}

// DropStatements drop children before parents.
func (r *SchemaRepo) DropStatements() []string {
	stmts := make([]string, 0, len(pkgconstants.AllTables))
	for i := len(pkgconstants.AllTables) - 1; i >= 0; i-- {
		stmts = append(stmts, fmt.Sprintf("DROP TABLE IF EXISTS %s", pkgconstants.AllTables[i]))
	}
	return stmts
}

func (r *SchemaRepo) Create(ctx context.Context, tx *sqlx.Tx) error {
	return execAll(ctx, tx, r.CreateStatements())
}

func (r *SchemaRepo) Drop(ctx context.Context, tx *sqlx.Tx) error {
	return execAll(ctx, tx, r.DropStatements())
}

func execAll(ctx context.Context, tx *sqlx.Tx, stmts []string) error {
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("exec %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
