package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	pkgdb "github.com/k-code-yt/ecommerce-dataset/pkg/db"
	pkgerrors "github.com/k-code-yt/ecommerce-dataset/pkg/errors"
)

func insertQuery(table string, columns []string) string {
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), marks)
}

// insertRows runs one INSERT per row; no prepare, which keeps the statement
// portable across drivers. Constraint failures become SchemaViolation.
func insertRows(ctx context.Context, tx *sqlx.Tx, table string, columns []string, n int, args func(i int) []any) (int, error) {
	query := tx.Rebind(insertQuery(table, columns))
	for i := 0; i < n; i++ {
		if _, err := tx.ExecContext(ctx, query, args(i)...); err != nil {
			if pkgdb.IsConstraintErr(err) {
				return i, pkgerrors.NewSchemaViolationError(fmt.Sprintf("%s row %d rejected by store", table, i+1), err)
			}
			return i, fmt.Errorf("insert into %s row %d: %w", table, i+1, err)
		}
	}
	return n, nil
}

// Args are reduced to int64/float64/bool/string/nil before reaching a driver,
// so neither driver has to understand decimal or enum types.

func money(d decimal.Decimal) string { return d.StringFixed(2) }

func optMoney(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return money(*d)
}

func optFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func optString[T ~string](s *T) any {
	if s == nil {
		return nil
	}
	return string(*s)
}
