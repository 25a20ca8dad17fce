package repo

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/k-code-yt/ecommerce-dataset/internal/domain"
	pkgconstants "github.com/k-code-yt/ecommerce-dataset/pkg/constants"
	pkgdb "github.com/k-code-yt/ecommerce-dataset/pkg/db"
	pkgerrors "github.com/k-code-yt/ecommerce-dataset/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var created = time.Date(2024, 2, 10, 8, 15, 30, 123456000, time.UTC)

func openSQLite(t *testing.T) *pkgdb.DB {
	t.Helper()
	dest, err := pkgdb.ParseDestination(filepath.Join(t.TempDir(), "repo.db"))
	require.NoError(t, err)
	db, err := pkgdb.NewDBConn(dest)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = pkgdb.TxClosure(context.Background(), db, func(ctx context.Context, tx *sqlx.Tx) (struct{}, error) {
		return struct{}{}, NewSchemaRepo(db.Dialect).Create(ctx, tx)
	})
	require.NoError(t, err)
	return db
}

func inTx[T any](t *testing.T, db *pkgdb.DB, fn func(ctx context.Context, tx *sqlx.Tx) (T, error)) (T, error) {
	t.Helper()
	return pkgdb.TxClosure(context.Background(), db, fn)
}

func customer(id string, tier domain.LoyaltyTier) domain.Customer {
	return domain.Customer{
		ID: id, FirstName: "Mia", LastName: "Hall", Email: id + "@example.com",
		CreatedAt: created, LoyaltyTier: tier, LifetimeValueBucket: domain.LifetimeValueBucket_High,
	}
}

func TestSchemaStatements(t *testing.T) {
	for _, d := range []*pkgdb.Dialect{pkgdb.SQLiteDialect, pkgdb.PostgresDialect} {
		stmts := NewSchemaRepo(d).CreateStatements()
		require.Len(t, stmts, 10)
		for i, table := range pkgconstants.AllTables {
			assert.True(t, strings.HasPrefix(stmts[i], "CREATE TABLE IF NOT EXISTS "+table+" ("), stmts[i])
		}
		assert.Contains(t, stmts[0], "CHECK (loyalty_tier IN ('bronze', 'silver', 'gold', 'platinum'))")
		assert.Contains(t, stmts[5], d.FloatType)
	}
	drops := NewSchemaRepo(pkgdb.SQLiteDialect).DropStatements()
	assert.Equal(t, "DROP TABLE IF EXISTS customer_kpis", drops[0])
	assert.Equal(t, "DROP TABLE IF EXISTS customers", drops[len(drops)-1])
}

func TestCustomerRoundTrip(t *testing.T) {
	db := openSQLite(t)
	n, err := inTx(t, db, func(ctx context.Context, tx *sqlx.Tx) (int, error) {
		return NewCustomerRepo().InsertMany(ctx, tx, []domain.Customer{customer("c2", domain.LoyaltyTier_Gold), customer("c1", domain.LoyaltyTier_Bronze)})
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	ids, err := NewCustomerRepo().ListIDs(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, ids)
}

func TestStoreRejectsEnumViolation(t *testing.T) {
	db := openSQLite(t)
	_, err := inTx(t, db, func(ctx context.Context, tx *sqlx.Tx) (int, error) {
		return NewCustomerRepo().InsertMany(ctx, tx, []domain.Customer{customer("c1", "diamond")})
	})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsSchemaViolationError(err), "got %v", err)
}

func TestStoreRejectsMissingParent(t *testing.T) {
	db := openSQLite(t)
	_, err := inTx(t, db, func(ctx context.Context, tx *sqlx.Tx) (int, error) {
		return NewOrderRepo().InsertMany(ctx, tx, []domain.Order{{
			ID: "o1", CustomerID: "ghost", OrderDate: created, Status: domain.OrderStatus_Pending,
			Subtotal: decimal.NewFromInt(10), ShippingCost: decimal.Zero, TaxAmount: decimal.Zero, TotalAmount: decimal.NewFromInt(10),
			AcquisitionChannel: domain.Channel_Organic, CustomerSentiment: domain.Sentiment_Positive,
		}})
	})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsSchemaViolationError(err), "got %v", err)

	count, err := NewStatsRepo().CountRows(context.Background(), db, pkgconstants.DBTableName_Orders)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestKPIReplaceAllAndList(t *testing.T) {
	db := openSQLite(t)
	avg := decimal.RequireFromString("125.50")
	ch := domain.Channel_PaidSearch
	score := -0.5
	first := created
	last := created.Add(48 * time.Hour)

	kpis := []domain.CustomerKPI{
		{
			CustomerID: "c1", TotalOrders: 2, FirstOrderDate: &first, LastOrderDate: &last,
			GrossRevenue: decimal.RequireFromString("251.00"), DiscountTotal: decimal.RequireFromString("1.25"),
			NetRevenue: decimal.RequireFromString("249.75"), AvgOrderValue: &avg, DominantChannel: &ch, SentimentScore: &score,
		},
		{CustomerID: "c2"},
	}
	_, err := inTx(t, db, func(ctx context.Context, tx *sqlx.Tx) (int, error) {
		if _, err := NewCustomerRepo().InsertMany(ctx, tx, []domain.Customer{customer("c1", domain.LoyaltyTier_Silver), customer("c2", domain.LoyaltyTier_Silver)}); err != nil {
			return 0, err
		}
		if _, err := NewKPIRepo().ReplaceAll(ctx, tx, kpis[:1]); err != nil {
			return 0, err
		}
		return NewKPIRepo().ReplaceAll(ctx, tx, kpis)
	})
	require.NoError(t, err)

	got, err := NewKPIRepo().List(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, got, 2)

	c1 := got[0]
	assert.Equal(t, 2, c1.TotalOrders)
	assert.True(t, first.Equal(*c1.FirstOrderDate))
	assert.True(t, last.Equal(*c1.LastOrderDate))
	assert.True(t, avg.Equal(*c1.AvgOrderValue))
	assert.True(t, decimal.RequireFromString("249.75").Equal(c1.NetRevenue))
	assert.Equal(t, ch, *c1.DominantChannel)
	assert.Equal(t, score, *c1.SentimentScore)

	c2 := got[1]
	assert.Zero(t, c2.TotalOrders)
	assert.Nil(t, c2.FirstOrderDate)
	assert.Nil(t, c2.AvgOrderValue)
	assert.Nil(t, c2.DominantChannel)
	assert.Nil(t, c2.SentimentScore)
	assert.True(t, c2.GrossRevenue.IsZero())
}
