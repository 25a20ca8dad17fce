package repo

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/k-code-yt/ecommerce-dataset/internal/dataset"
	"github.com/k-code-yt/ecommerce-dataset/internal/domain"
	pkgconstants "github.com/k-code-yt/ecommerce-dataset/pkg/constants"
	"github.com/shopspring/decimal"
)

type OrderRepo struct {
	tableName string
}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{
		tableName: pkgconstants.DBTableName_Orders,
	}
}

func (r *OrderRepo) InsertMany(ctx context.Context, tx *sqlx.Tx, orders []domain.Order) (int, error) {
	return insertRows(ctx, tx, r.tableName, dataset.OrderColumns, len(orders), func(i int) []any {
		o := &orders[i]
		return []any{
			o.ID, o.CustomerID, domain.FormatTime(o.OrderDate), string(o.Status),
			o.Street, o.City, o.State, o.PostalCode, o.Country,
			money(o.Subtotal), money(o.ShippingCost), money(o.TaxAmount), money(o.TotalAmount),
			o.CouponCode, string(o.AcquisitionChannel), string(o.CustomerSentiment),
		}
	})
}

type orderFact struct {
	ID         string          `db:"order_id"`
	CustomerID string          `db:"customer_id"`
	OrderDate  string          `db:"order_date"`
	Subtotal   decimal.Decimal `db:"subtotal"`
	Channel    string          `db:"acquisition_channel"`
	Sentiment  string          `db:"customer_sentiment"`
}

// ListFacts reads back the order columns KPI derivation needs.
func (r *OrderRepo) ListFacts(ctx context.Context, q sqlx.QueryerContext) ([]domain.Order, error) {
	var facts []orderFact
	query := "SELECT order_id, customer_id, order_date, subtotal, acquisition_channel, customer_sentiment FROM " + r.tableName + " ORDER BY order_id"
	if err := sqlx.SelectContext(ctx, q, &facts, query); err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(facts))
	for _, f := range facts {
		ts, err := domain.ParseTime(f.OrderDate)
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", f.ID, err)
		}
		orders = append(orders, domain.Order{
			ID:                 f.ID,
			CustomerID:         f.CustomerID,
			OrderDate:          ts,
			Subtotal:           f.Subtotal,
			AcquisitionChannel: domain.Channel(f.Channel),
			CustomerSentiment:  domain.Sentiment(f.Sentiment),
		})
	}
	return orders, nil
}
