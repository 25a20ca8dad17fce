package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/k-code-yt/ecommerce-dataset/internal/domain"
	pkgconstants "github.com/k-code-yt/ecommerce-dataset/pkg/constants"
	"github.com/shopspring/decimal"
)

var kpiColumns = []string{
	"customer_id", "total_orders", "first_order_date", "last_order_date",
	"gross_revenue", "discount_total", "net_revenue", "avg_order_value",
	"dominant_channel", "sentiment_score",
}

type KPIRepo struct {
	tableName string
}

func NewKPIRepo() *KPIRepo {
	return &KPIRepo{
		tableName: pkgconstants.DBTableName_CustomerKPIs,
	}
}

func optTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return domain.FormatTime(*t)
}

// ReplaceAll deletes every KPI row and inserts kpis. Callers run it inside the
// load transaction so readers never see a partial table.
func (r *KPIRepo) ReplaceAll(ctx context.Context, tx *sqlx.Tx, kpis []domain.CustomerKPI) (int, error) {
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+r.tableName); err != nil {
		return 0, fmt.Errorf("clear %s: %w", r.tableName, err)
	}
	return insertRows(ctx, tx, r.tableName, kpiColumns, len(kpis), func(i int) []any {
		k := &kpis[i]
		return []any{
			k.CustomerID, int64(k.TotalOrders), optTime(k.FirstOrderDate), optTime(k.LastOrderDate),
			money(k.GrossRevenue), money(k.DiscountTotal), money(k.NetRevenue), optMoney(k.AvgOrderValue),
			optString(k.DominantChannel), optFloat(k.SentimentScore),
		}
	})
}

type kpiRow struct {
	CustomerID      string              `db:"customer_id"`
	TotalOrders     int                 `db:"total_orders"`
	FirstOrderDate  sql.NullString      `db:"first_order_date"`
	LastOrderDate   sql.NullString      `db:"last_order_date"`
	GrossRevenue    decimal.Decimal     `db:"gross_revenue"`
	DiscountTotal   decimal.Decimal     `db:"discount_total"`
	NetRevenue      decimal.Decimal     `db:"net_revenue"`
	AvgOrderValue   decimal.NullDecimal `db:"avg_order_value"`
	DominantChannel sql.NullString      `db:"dominant_channel"`
	SentimentScore  sql.NullFloat64     `db:"sentiment_score"`
}

func (r *KPIRepo) List(ctx context.Context, q sqlx.QueryerContext) ([]domain.CustomerKPI, error) {
	var rows []kpiRow
	query := fmt.Sprintf("SELECT customer_id, total_orders, first_order_date, last_order_date, gross_revenue, discount_total, net_revenue, avg_order_value, dominant_channel, sentiment_score FROM %s ORDER BY customer_id", r.tableName)
	if err := sqlx.SelectContext(ctx, q, &rows, query); err != nil {
		return nil, err
	}

	kpis := make([]domain.CustomerKPI, 0, len(rows))
	for _, row := range rows {
		k := domain.CustomerKPI{
			CustomerID:    row.CustomerID,
			TotalOrders:   row.TotalOrders,
			GrossRevenue:  row.GrossRevenue,
			DiscountTotal: row.DiscountTotal,
			NetRevenue:    row.NetRevenue,
		}
		if row.FirstOrderDate.Valid {
			t, err := domain.ParseTime(row.FirstOrderDate.String)
			if err != nil {
				return nil, err
			}
			k.FirstOrderDate = &t
		}
		if row.LastOrderDate.Valid {
			t, err := domain.ParseTime(row.LastOrderDate.String)
			if err != nil {
				return nil, err
			}
			k.LastOrderDate = &t
		}
		if row.AvgOrderValue.Valid {
			v := row.AvgOrderValue.Decimal
			k.AvgOrderValue = &v
		}
		if row.DominantChannel.Valid {
			ch := domain.Channel(row.DominantChannel.String)
			k.DominantChannel = &ch
		}
		if row.SentimentScore.Valid {
			v := row.SentimentScore.Float64
			k.SentimentScore = &v
		}
		kpis = append(kpis, k)
	}
	return kpis, nil
}
