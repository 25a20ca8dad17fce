package loader

import (
	"fmt"

	"github.com/k-code-yt/ecommerce-dataset/internal/domain"
	pkgconstants "github.com/k-code-yt/ecommerce-dataset/pkg/constants"
	pkgerrors "github.com/k-code-yt/ecommerce-dataset/pkg/errors"
)

func keySet[T any](table string, rows []T, key func(*T) string) (map[string]struct{}, error) {
	set := make(map[string]struct{}, len(rows))
	for i := range rows {
		k := key(&rows[i])
		if _, dup := set[k]; dup {
			return nil, pkgerrors.NewSchemaViolationError(fmt.Sprintf("%s row %d: duplicate primary key %q", table, i+1, k), nil)
		}
		set[k] = struct{}{}
	}
	return set, nil
}

func missingRef(table string, row int, column, value, parent string) error {
	return pkgerrors.NewSchemaViolationError(
		fmt.Sprintf("%s row %d: %s %q has no matching row in %s", table, row, column, value, parent), nil)
}

// CheckReferences verifies primary key uniqueness and every foreign key of
// the batch before anything is written.
func CheckReferences(ds *domain.Dataset) error {
	customers, err := keySet(pkgconstants.DBTableName_Customers, ds.Customers, func(c *domain.Customer) string { return c.ID })
	if err != nil {
		return err
	}
	products, err := keySet(pkgconstants.DBTableName_Products, ds.Products, func(p *domain.Product) string { return p.ID })
	if err != nil {
		return err
	}
	orders, err := keySet(pkgconstants.DBTableName_Orders, ds.Orders, func(o *domain.Order) string { return o.ID })
	if err != nil {
		return err
	}
	if _, err := keySet(pkgconstants.DBTableName_OrderItems, ds.OrderItems, func(it *domain.OrderItem) string { return it.ID }); err != nil {
		return err
	}
	if _, err := keySet(pkgconstants.DBTableName_InventoryEvents, ds.InventoryEvents, func(ev *domain.InventoryEvent) string { return ev.ID }); err != nil {
		return err
	}

	for i, o := range ds.Orders {
		if _, ok := customers[o.CustomerID]; !ok {
			return missingRef(pkgconstants.DBTableName_Orders, i+1, "customer_id", o.CustomerID, pkgconstants.DBTableName_Customers)
		}
	}
	for i, it := range ds.OrderItems {
		if _, ok := orders[it.OrderID]; !ok {
			return missingRef(pkgconstants.DBTableName_OrderItems, i+1, "order_id", it.OrderID, pkgconstants.DBTableName_Orders)
		}
		if _, ok := products[it.ProductID]; !ok {
			return missingRef(pkgconstants.DBTableName_OrderItems, i+1, "product_id", it.ProductID, pkgconstants.DBTableName_Products)
		}
	}
	for i, ev := range ds.InventoryEvents {
		if _, ok := products[ev.ProductID]; !ok {
			return missingRef(pkgconstants.DBTableName_InventoryEvents, i+1, "product_id", ev.ProductID, pkgconstants.DBTableName_Products)
		}
	}
	return nil
}
