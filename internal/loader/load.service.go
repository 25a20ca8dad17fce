package loader

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/k-code-yt/ecommerce-dataset/internal/dataset"
	"github.com/k-code-yt/ecommerce-dataset/internal/derive"
	"github.com/k-code-yt/ecommerce-dataset/internal/domain"
	"github.com/k-code-yt/ecommerce-dataset/internal/repo"
	pkgconstants "github.com/k-code-yt/ecommerce-dataset/pkg/constants"
	pkgdb "github.com/k-code-yt/ecommerce-dataset/pkg/db"
	pkgerrors "github.com/k-code-yt/ecommerce-dataset/pkg/errors"
	"github.com/sirupsen/logrus"
)

const inventorySampleSize = 5

type Options struct {
	DropExisting bool
	VacuumAfter  bool
}

type InventorySample struct {
	domain.InventoryDelta
	Name string
}

type Report struct {
	// Counts holds rows per table: parsed rows for a dry run, stored rows
	// after a load.
	Counts    map[string]int
	KPIRows   int
	Inventory []InventorySample
	Warnings  []string
}

// Prepare reads the five source tables from dir, converts them and checks
// keys and references. Nothing touches the store, so a failure here leaves
// it unchanged.
func Prepare(dir string, format dataset.Format, metrics *Metrics) (*domain.Dataset, *Report, error) {
	start := time.Now()
	defer metrics.ObserveValidation(start)

	tables, err := dataset.ReadDir(dir, format)
	if err != nil {
		metrics.ObserveFailure(err)
		return nil, nil, err
	}

	report := &Report{Counts: make(map[string]int, len(pkgconstants.SourceTables))}
	for _, name := range pkgconstants.SourceTables {
		t := tables[name]
		report.Counts[name] = t.Len()
		if t.Len() == 0 {
			warn := pkgerrors.NewEmptyDatasetError(name)
			metrics.ObserveEmpty(name)
			report.Warnings = append(report.Warnings, warn.Error())
			logrus.WithFields(logrus.Fields{
				"table": name,
				"dir":   dir,
			}).Warn("DATASET:EMPTY")
		}
	}

	ds, err := Transform(tables)
	if err != nil {
		metrics.ObserveFailure(err)
		return nil, nil, err
	}
	if err := CheckReferences(ds); err != nil {
		metrics.ObserveFailure(err)
		return nil, nil, err
	}

	logrus.WithFields(logrus.Fields{
		"dir":    dir,
		"format": string(format),
		"orders": len(ds.Orders),
		"items":  len(ds.OrderItems),
	}).Info("DATASET:VALIDATED")
	return ds, report, nil
}

type LoadService struct {
	db        *pkgdb.DB
	metrics   *Metrics
	schema    *repo.SchemaRepo
	customers *repo.CustomerRepo
	products  *repo.ProductRepo
	orders    *repo.OrderRepo
	items     *repo.OrderItemRepo
	inventory *repo.InventoryRepo
	kpis      *repo.KPIRepo
	stats     *repo.StatsRepo
}

func NewLoadService(db *pkgdb.DB, metrics *Metrics) *LoadService {
	return &LoadService{
		db:        db,
		metrics:   metrics,
		schema:    repo.NewSchemaRepo(db.Dialect),
		customers: repo.NewCustomerRepo(),
		products:  repo.NewProductRepo(),
		orders:    repo.NewOrderRepo(),
		items:     repo.NewOrderItemRepo(),
		inventory: repo.NewInventoryRepo(),
		kpis:      repo.NewKPIRepo(),
		stats:     repo.NewStatsRepo(),
	}
}

// Load writes the dataset and rebuilds customer_kpis in one transaction.
// Any failure rolls back every statement of the batch, including the
// optional drop.
func (s *LoadService) Load(ctx context.Context, ds *domain.Dataset, opts Options) (*Report, error) {
	start := time.Now()
	logrus.WithFields(logrus.Fields{
		"dialect": s.db.Dialect.Name,
		"drop":    opts.DropExisting,
	}).Info("LOAD:START")

	inserted, err := pkgdb.TxClosure(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) (map[string]int, error) {
		if opts.DropExisting {
			if err := s.schema.Drop(ctx, tx); err != nil {
				return nil, err
			}
		}
		if err := s.schema.Create(ctx, tx); err != nil {
			return nil, err
		}
		return s.insertAll(ctx, tx, ds)
	})
	if err != nil {
		s.metrics.ObserveFailure(err)
		logrus.WithFields(logrus.Fields{
			"code":  pkgerrors.GetErrorCode(err),
			"error": err,
		}).Error("LOAD:ROLLBACK")
		return nil, err
	}
	for table, n := range inserted {
		s.metrics.ObserveRows(table, n)
	}
	s.metrics.ObserveLoad(start, inserted[pkgconstants.DBTableName_CustomerKPIs])
	logrus.WithFields(logrus.Fields{
		"customers": inserted[pkgconstants.DBTableName_Customers],
		"orders":    inserted[pkgconstants.DBTableName_Orders],
		"kpis":      inserted[pkgconstants.DBTableName_CustomerKPIs],
		"took":      time.Since(start).String(),
	}).Info("LOAD:COMMIT")

	if opts.VacuumAfter {
		if err := s.Vacuum(ctx); err != nil {
			return nil, err
		}
	}
	return s.Summary(ctx)
}

func (s *LoadService) insertAll(ctx context.Context, tx *sqlx.Tx, ds *domain.Dataset) (map[string]int, error) {
	counts := make(map[string]int, len(pkgconstants.AllTables))
	steps := []struct {
		table  string
		insert func() (int, error)
	}{
		{pkgconstants.DBTableName_Customers, func() (int, error) { return s.customers.InsertMany(ctx, tx, ds.Customers) }},
		{pkgconstants.DBTableName_Products, func() (int, error) { return s.products.InsertMany(ctx, tx, ds.Products) }},
		{pkgconstants.DBTableName_Orders, func() (int, error) { return s.orders.InsertMany(ctx, tx, ds.Orders) }},
		{pkgconstants.DBTableName_OrderItems, func() (int, error) { return s.items.InsertMany(ctx, tx, ds.OrderItems) }},
		{pkgconstants.DBTableName_InventoryEvents, func() (int, error) { return s.inventory.InsertMany(ctx, tx, ds.InventoryEvents) }},
	}
	for _, step := range steps {
		n, err := step.insert()
		if err != nil {
			return nil, err
		}
		counts[step.table] = n
	}

	n, err := s.materializeKPIs(ctx, tx)
	if err != nil {
		return nil, err
	}
	counts[pkgconstants.DBTableName_CustomerKPIs] = n
	return counts, nil
}

// materializeKPIs derives customer_kpis from what the transaction can see,
// so rows already in the store count as well as the current batch.
func (s *LoadService) materializeKPIs(ctx context.Context, tx *sqlx.Tx) (int, error) {
	ids, err := s.customers.ListIDs(ctx, tx)
	if err != nil {
		return 0, fmt.Errorf("read customers: %w", err)
	}
	orders, err := s.orders.ListFacts(ctx, tx)
	if err != nil {
		return 0, fmt.Errorf("read orders: %w", err)
	}
	items, err := s.items.ListDiscounts(ctx, tx)
	if err != nil {
		return 0, fmt.Errorf("read order items: %w", err)
	}

	customers := make([]domain.Customer, len(ids))
	for i, id := range ids {
		customers[i] = domain.Customer{ID: id}
	}
	return s.kpis.ReplaceAll(ctx, tx, derive.CustomerKPIs(customers, orders, items))
}

// RefreshKPIs rebuilds customer_kpis from the stored tables in its own
// transaction.
func (s *LoadService) RefreshKPIs(ctx context.Context) (int, error) {
	n, err := pkgdb.TxClosure(ctx, s.db, s.materializeKPIs)
	if err != nil {
		s.metrics.ObserveFailure(err)
		return 0, err
	}
	logrus.WithFields(logrus.Fields{
		"rows": n,
	}).Info("KPI:REFRESHED")
	return n, nil
}

func (s *LoadService) Vacuum(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.db.Dialect.VacuumStmt); err != nil {
		return fmt.Errorf("vacuum: %w", err)
	}
	logrus.WithField("dialect", s.db.Dialect.Name).Info("STORE:VACUUMED")
	return nil
}

// Summary reports stored row counts and the inventory deltas of the first
// products by id.
func (s *LoadService) Summary(ctx context.Context) (*Report, error) {
	counts, err := s.stats.CountAll(ctx, s.db, pkgconstants.AllTables)
	if err != nil {
		return nil, err
	}
	products, err := s.products.ListNames(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}
	events, err := s.inventory.ListDeltas(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("read inventory events: %w", err)
	}

	names := make(map[string]string, len(products))
	keys := make([]domain.Product, len(products))
	for i, p := range products {
		names[p.ID] = p.Name
		keys[i] = domain.Product{ID: p.ID}
	}
	deltas := derive.InventoryDeltas(keys, events)
	if len(deltas) > inventorySampleSize {
		deltas = deltas[:inventorySampleSize]
	}

	report := &Report{
		Counts:  counts,
		KPIRows: counts[pkgconstants.DBTableName_CustomerKPIs],
	}
	for _, d := range deltas {
		report.Inventory = append(report.Inventory, InventorySample{InventoryDelta: d, Name: names[d.ProductID]})
	}
	return report, nil
}
