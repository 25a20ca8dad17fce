package repo

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/k-code-yt/ecommerce-dataset/internal/dataset"
	"github.com/k-code-yt/ecommerce-dataset/internal/domain"
	pkgconstants "github.com/k-code-yt/ecommerce-dataset/pkg/constants"
)

type InventoryRepo struct {
	tableName string
}

func NewInventoryRepo() *InventoryRepo {
	return &InventoryRepo{
		tableName: pkgconstants.DBTableName_InventoryEvents,
	}
}

func (r *InventoryRepo) InsertMany(ctx context.Context, tx *sqlx.Tx, events []domain.InventoryEvent) (int, error) {
	return insertRows(ctx, tx, r.tableName, dataset.InventoryEventColumns, len(events), func(i int) []any {
		ev := &events[i]
		return []any{
			ev.ID, ev.ProductID, string(ev.EventType), int64(ev.QuantityChange),
			domain.FormatTime(ev.EventTimestamp), ev.Note, string(ev.Actor),
		}
	})
}

type eventDelta struct {
	ProductID      string `db:"product_id"`
	EventType      string `db:"event_type"`
	QuantityChange int    `db:"quantity_change"`
}

func (r *InventoryRepo) ListDeltas(ctx context.Context, q sqlx.QueryerContext) ([]domain.InventoryEvent, error) {
	var rows []eventDelta
	if err := sqlx.SelectContext(ctx, q, &rows, "SELECT product_id, event_type, quantity_change FROM "+r.tableName); err != nil {
		return nil, err
	}
	events := make([]domain.InventoryEvent, len(rows))
	for i, row := range rows {
		events[i] = domain.InventoryEvent{
			ProductID:      row.ProductID,
			EventType:      domain.EventType(row.EventType),
			QuantityChange: row.QuantityChange,
		}
	}
	return events, nil
}
