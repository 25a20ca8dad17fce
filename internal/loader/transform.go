package loader

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/k-code-yt/ecommerce-dataset/internal/dataset"
	"github.com/k-code-yt/ecommerce-dataset/internal/derive"
	"github.com/k-code-yt/ecommerce-dataset/internal/domain"
	pkgconstants "github.com/k-code-yt/ecommerce-dataset/pkg/constants"
	pkgerrors "github.com/k-code-yt/ecommerce-dataset/pkg/errors"
	"github.com/shopspring/decimal"
)

// rowParser collects the first parse failure of a record so the transform
// functions can read fields without an error check per column.
type rowParser struct {
	rec dataset.Record
	err error
}

func (p *rowParser) fail(column, value, why string) {
	if p.err != nil {
		return
	}
	msg := fmt.Sprintf("%s row %d: column %s: %s (value %q)", p.rec.Table(), p.rec.Line(), column, why, value)
	p.err = pkgerrors.NewSchemaViolationError(msg, nil)
}

func (p *rowParser) text(column string) string {
	return p.rec.Get(column)
}

func (p *rowParser) required(column string) string {
	v := p.rec.Get(column)
	if strings.TrimSpace(v) == "" {
		p.fail(column, v, "required value is empty")
	}
	return v
}

func (p *rowParser) boolean(column, fallback string) bool {
	v := p.rec.Get(column)
	if v == "" {
		v = fallback
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "t", "yes":
		return true
	}
	return false
}

// money treats an empty cell as zero.
func (p *rowParser) money(column string) decimal.Decimal {
	v := strings.TrimSpace(p.rec.Get(column))
	if v == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		p.fail(column, v, "not a decimal")
	}
	return d
}

// integer accepts "3" and "3.0"; empty is zero.
func (p *rowParser) integer(column string) int {
	v := strings.TrimSpace(p.rec.Get(column))
	if v == "" {
		return 0
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(column, v, "not a number")
		return 0
	}
	return int(f)
}

func (p *rowParser) timestamp(column string) time.Time {
	v := p.required(column)
	if v == "" {
		return time.Time{}
	}
	t, err := domain.ParseTime(v)
	if err != nil {
		p.fail(column, v, "not a timestamp")
	}
	return t
}

func enum[T ~string](p *rowParser, column string, valid func(T) bool) T {
	v := T(p.rec.Get(column))
	if !valid(v) {
		p.fail(column, string(v), "value outside the allowed set")
	}
	return v
}

func TransformCustomers(t *dataset.Table) ([]domain.Customer, error) {
	recs, err := t.Records()
	if err != nil {
		return nil, pkgerrors.NewSchemaViolationError("bad header", err)
	}
	out := make([]domain.Customer, 0, len(recs))
	for _, rec := range recs {
		p := &rowParser{rec: rec}
		c := domain.Customer{
			ID:                  p.required("customer_id"),
			FirstName:           p.required("first_name"),
			LastName:            p.required("last_name"),
			Email:               p.required("email"),
			Phone:               p.text("phone"),
			CreatedAt:           p.timestamp("created_at"),
			MarketingOptIn:      p.boolean("marketing_opt_in", "false"),
			LoyaltyTier:         enum(p, "loyalty_tier", domain.LoyaltyTier.Valid),
			LifetimeValueBucket: enum(p, "lifetime_value_bucket", domain.LifetimeValueBucket.Valid),
		}
		if p.err != nil {
			return nil, p.err
		}
		out = append(out, c)
	}
	return out, nil
}

func TransformProducts(t *dataset.Table) ([]domain.Product, error) {
	recs, err := t.Records()
	if err != nil {
		return nil, pkgerrors.NewSchemaViolationError("bad header", err)
	}
	out := make([]domain.Product, 0, len(recs))
	for _, rec := range recs {
		p := &rowParser{rec: rec}
		pr := domain.Product{
			ID:             p.required("product_id"),
			Name:           p.required("name"),
			Category:       p.required("category"),
			Brand:          p.required("brand"),
			Price:          p.money("price"),
			CreatedAt:      p.timestamp("created_at"),
			InventoryCount: p.integer("inventory_count"),
			Active:         p.boolean("active_flag", "true"),
		}
		if p.err == nil && !pr.Price.IsPositive() {
			p.fail("price", pr.Price.String(), "price must be positive")
		}
		if p.err != nil {
			return nil, p.err
		}
		out = append(out, pr)
	}
	return out, nil
}

// TransformOrders also reconciles totals: a gap above derive.TotalsTolerance
// is a TotalsMismatch.
func TransformOrders(t *dataset.Table) ([]domain.Order, error) {
	recs, err := t.Records()
	if err != nil {
		return nil, pkgerrors.NewSchemaViolationError("bad header", err)
	}
	out := make([]domain.Order, 0, len(recs))
	for _, rec := range recs {
		p := &rowParser{rec: rec}
		o := domain.Order{
			ID:         p.required("order_id"),
			CustomerID: p.required("customer_id"),
			OrderDate:  p.timestamp("order_date"),
			Status:     enum(p, "order_status", domain.OrderStatus.Valid),
			ShippingAddress: domain.ShippingAddress{
				Street:     p.text("shipping_address"),
				City:       p.text("shipping_city"),
				State:      p.text("shipping_state"),
				PostalCode: p.text("shipping_postal_code"),
				Country:    p.text("shipping_country"),
			},
			Subtotal:           p.money("subtotal"),
			ShippingCost:       p.money("shipping_cost"),
			TaxAmount:          p.money("tax_amount"),
			TotalAmount:        p.money("total_amount"),
			CouponCode:         p.text("coupon_code"),
			AcquisitionChannel: enum(p, "acquisition_channel", domain.Channel.Valid),
			CustomerSentiment:  enum(p, "customer_sentiment", domain.Sentiment.Valid),
		}
		if p.err != nil {
			return nil, p.err
		}
		if !derive.TotalsReconcile(&o) {
			return nil, pkgerrors.NewTotalsMismatchError(o.ID, fmt.Errorf(
				"subtotal %s + shipping %s + tax %s differs from total %s by %s",
				o.Subtotal, o.ShippingCost, o.TaxAmount, o.TotalAmount, o.TotalsDelta()))
		}
		out = append(out, o)
	}
	return out, nil
}

func TransformOrderItems(t *dataset.Table) ([]domain.OrderItem, error) {
	recs, err := t.Records()
	if err != nil {
		return nil, pkgerrors.NewSchemaViolationError("bad header", err)
	}
	out := make([]domain.OrderItem, 0, len(recs))
	for _, rec := range recs {
		p := &rowParser{rec: rec}
		it := domain.OrderItem{
			ID:             p.required("order_item_id"),
			OrderID:        p.required("order_id"),
			ProductID:      p.required("product_id"),
			Quantity:       p.integer("quantity"),
			UnitPrice:      p.money("unit_price"),
			DiscountAmount: p.money("discount_amount"),
			LineTotal:      p.money("line_total"),
			TaxRate:        p.money("tax_rate"),
		}
		if p.err == nil && it.Quantity <= 0 {
			p.fail("quantity", strconv.Itoa(it.Quantity), "quantity must be positive")
		}
		if p.err != nil {
			return nil, p.err
		}
		out = append(out, it)
	}
	return out, nil
}

func TransformInventoryEvents(t *dataset.Table) ([]domain.InventoryEvent, error) {
	recs, err := t.Records()
	if err != nil {
		return nil, pkgerrors.NewSchemaViolationError("bad header", err)
	}
	out := make([]domain.InventoryEvent, 0, len(recs))
	for _, rec := range recs {
		p := &rowParser{rec: rec}
		ev := domain.InventoryEvent{
			ID:             p.required("event_id"),
			ProductID:      p.required("product_id"),
			EventType:      enum(p, "event_type", domain.EventType.Valid),
			QuantityChange: p.integer("quantity_change"),
			EventTimestamp: p.timestamp("event_timestamp"),
			Note:           p.text("note"),
			Actor:          enum(p, "actor", domain.Actor.Valid),
		}
		if p.err != nil {
			return nil, p.err
		}
		out = append(out, ev)
	}
	return out, nil
}

// Transform converts the five source tables into a typed dataset. Any
// rejected row fails the whole batch.
func Transform(tables map[string]*dataset.Table) (*domain.Dataset, error) {
	get := func(name string) *dataset.Table {
		if t, ok := tables[name]; ok {
			return t
		}
		return dataset.NewTable(name)
	}

	var (
		ds  domain.Dataset
		err error
	)
	if ds.Customers, err = TransformCustomers(get(pkgconstants.DBTableName_Customers)); err != nil {
		return nil, err
	}
	if ds.Products, err = TransformProducts(get(pkgconstants.DBTableName_Products)); err != nil {
		return nil, err
	}
	if ds.Orders, err = TransformOrders(get(pkgconstants.DBTableName_Orders)); err != nil {
		return nil, err
	}
	if ds.OrderItems, err = TransformOrderItems(get(pkgconstants.DBTableName_OrderItems)); err != nil {
		return nil, err
	}
	if ds.InventoryEvents, err = TransformInventoryEvents(get(pkgconstants.DBTableName_InventoryEvents)); err != nil {
		return nil, err
	}
	return &ds, nil
}
