package repo

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/k-code-yt/ecommerce-dataset/internal/dataset"
	"github.com/k-code-yt/ecommerce-dataset/internal/domain"
	pkgconstants "github.com/k-code-yt/ecommerce-dataset/pkg/constants"
)

type CustomerRepo struct {
	tableName string
}

func NewCustomerRepo() *CustomerRepo {
	return &CustomerRepo{
		tableName: pkgconstants.DBTableName_Customers,
	}
}

func (r *CustomerRepo) InsertMany(ctx context.Context, tx *sqlx.Tx, customers []domain.Customer) (int, error) {
	return insertRows(ctx, tx, r.tableName, dataset.CustomerColumns, len(customers), func(i int) []any {
		c := &customers[i]
		return []any{
			c.ID, c.FirstName, c.LastName, c.Email, c.Phone,
			domain.FormatTime(c.CreatedAt), c.MarketingOptIn, string(c.LoyaltyTier), string(c.LifetimeValueBucket),
		}
	})
}

// ListIDs returns customer ids in id order.
func (r *CustomerRepo) ListIDs(ctx context.Context, q sqlx.QueryerContext) ([]string, error) {
	var ids []string
	err := sqlx.SelectContext(ctx, q, &ids, "SELECT customer_id FROM "+r.tableName+" ORDER BY customer_id")
	return ids, err
}
