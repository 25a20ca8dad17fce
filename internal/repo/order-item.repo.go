package repo

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/k-code-yt/ecommerce-dataset/internal/dataset"
	"github.com/k-code-yt/ecommerce-dataset/internal/domain"
	pkgconstants "github.com/k-code-yt/ecommerce-dataset/pkg/constants"
	"github.com/shopspring/decimal"
)

type OrderItemRepo struct {
	tableName string
}

func NewOrderItemRepo() *OrderItemRepo {
	return &OrderItemRepo{
		tableName: pkgconstants.DBTableName_OrderItems,
	}
}

func (r *OrderItemRepo) InsertMany(ctx context.Context, tx *sqlx.Tx, items []domain.OrderItem) (int, error) {
	return insertRows(ctx, tx, r.tableName, dataset.OrderItemColumns, len(items), func(i int) []any {
		it := &items[i]
		return []any{
			it.ID, it.OrderID, it.ProductID, int64(it.Quantity),
			money(it.UnitPrice), money(it.DiscountAmount), money(it.LineTotal), it.TaxRate.String(),
		}
	})
}

type itemDiscount struct {
	OrderID        string          `db:"order_id"`
	DiscountAmount decimal.Decimal `db:"discount_amount"`
}

// ListDiscounts reads back the order_id and discount_amount of every item.
func (r *OrderItemRepo) ListDiscounts(ctx context.Context, q sqlx.QueryerContext) ([]domain.OrderItem, error) {
	var rows []itemDiscount
	if err := sqlx.SelectContext(ctx, q, &rows, "SELECT order_id, discount_amount FROM "+r.tableName); err != nil {
		return nil, err
	}
	items := make([]domain.OrderItem, len(rows))
	for i, row := range rows {
		items[i] = domain.OrderItem{OrderID: row.OrderID, DiscountAmount: row.DiscountAmount}
	}
	return items, nil
}
