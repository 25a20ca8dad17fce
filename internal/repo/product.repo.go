package repo

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/k-code-yt/ecommerce-dataset/internal/dataset"
	"github.com/k-code-yt/ecommerce-dataset/internal/domain"
	pkgconstants "github.com/k-code-yt/ecommerce-dataset/pkg/constants"
)

type ProductRepo struct {
	tableName string
}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{
		tableName: pkgconstants.DBTableName_Products,
	}
}

func (r *ProductRepo) InsertMany(ctx context.Context, tx *sqlx.Tx, products []domain.Product) (int, error) {
	return insertRows(ctx, tx, r.tableName, dataset.ProductColumns, len(products), func(i int) []any {
		p := &products[i]
		return []any{
			p.ID, p.Name, p.Category, p.Brand, money(p.Price),
			domain.FormatTime(p.CreatedAt), int64(p.InventoryCount), p.Active,
		}
	})
}

type ProductName struct {
	ID   string `db:"product_id"`
	Name string `db:"name"`
}

func (r *ProductRepo) ListNames(ctx context.Context, q sqlx.QueryerContext) ([]ProductName, error) {
	var out []ProductName
	err := sqlx.SelectContext(ctx, q, &out, "SELECT product_id, name FROM "+r.tableName+" ORDER BY product_id")
	return out, err
}
