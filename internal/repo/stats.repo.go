package repo

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type StatsRepo struct{}

func NewStatsRepo() *StatsRepo {
	return &StatsRepo{}
}

func (r *StatsRepo) CountRows(ctx context.Context, q sqlx.QueryerContext, table string) (int, error) {
	var n int
	if err := sqlx.GetContext(ctx, q, &n, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

func (r *StatsRepo) CountAll(ctx context.Context, q sqlx.QueryerContext, tables []string) (map[string]int, error) {
	counts := make(map[string]int, len(tables))
	for _, t := range tables {
		n, err := r.CountRows(ctx, q, t)
		if err != nil {
			return nil, err
		}
		counts[t] = n
	}
	return counts, nil
}
