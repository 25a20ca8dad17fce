package dataset

import (
	"os"
	"path/filepath"
	"testing"

	pkgconstants "github.com/k-code-yt/ecommerce-dataset/pkg/constants"
	pkgerrors "github.com/k-code-yt/ecommerce-dataset/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTables() []*Table {
	customers := NewTable(pkgconstants.DBTableName_Customers)
	customers.Rows = [][]string{
		{"c1", "Ava", "O'Neil, Jr.", "ava@example.com", "(212)-555-0101", "2024-03-01T10:00:00Z", "true", "gold", "medium"},
		{"c2", "Liam", "Lee", "liam@example.com", "", "2024-03-02T11:30:00.5Z", "false", "bronze", "low"},
	}
	tables := []*Table{customers}
	for _, name := range pkgconstants.SourceTables[1:] {
		tables = append(tables, NewTable(name))
	}
	return tables
}

func TestWriteReadRoundTrip(t *testing.T) {
	for _, format := range []Format{Format_CSV, Format_Avro} {
		t.Run(string(format), func(t *testing.T) {
			dir := t.TempDir()
			in := sampleTables()

			paths, err := WriteDir(dir, format, in)
			require.NoError(t, err)
			require.Len(t, paths, len(pkgconstants.SourceTables))
			assert.Equal(t, filepath.Join(dir, "customers."+string(format)), paths[0])

			got, err := ReadDir(dir, format)
			require.NoError(t, err)
			require.Len(t, got, len(pkgconstants.SourceTables))

			customers := got[pkgconstants.DBTableName_Customers]
			assert.Equal(t, CustomerColumns, customers.Columns)
			assert.Equal(t, in[0].Rows, customers.Rows)
			assert.Zero(t, got[pkgconstants.DBTableName_Orders].Len())
		})
	}
}

func TestReadTableMissingFile(t *testing.T) {
	_, err := ReadTable(t.TempDir(), Format_CSV, pkgconstants.DBTableName_Orders)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsMissingSourceFileError(err))
	assert.Contains(t, err.Error(), "orders.csv")
}

func TestReadDirStopsAtMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteDir(dir, Format_CSV, sampleTables())
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(dir, "order_items.csv")))

	_, err = ReadDir(dir, Format_CSV)
	assert.True(t, pkgerrors.IsMissingSourceFileError(err))
}

func TestReadEmptyCSV(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.csv"), nil, 0o644))

	tbl, err := ReadTable(dir, Format_CSV, pkgconstants.DBTableName_Products)
	require.NoError(t, err)
	assert.Zero(t, tbl.Len())
}

func TestRecordsMissingColumn(t *testing.T) {
	tbl := &Table{
		Name:    pkgconstants.DBTableName_Products,
		Columns: []string{"product_id", "name"},
		Rows:    [][]string{{"p1", "Nova One"}},
	}
	_, err := tbl.Records()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category")
}

func TestRecordsByColumnName(t *testing.T) {
	tbl := &Table{
		Name:    pkgconstants.DBTableName_InventoryEvents,
		Columns: []string{"actor", "note", "event_timestamp", "quantity_change", "event_type", "product_id", "event_id"},
		Rows:    [][]string{{"system", "Initial load", "2024-01-01T00:00:00Z", "120", "restock", "p1", "e1"}},
	}
	recs, err := tbl.Records()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "e1", recs[0].Get("event_id"))
	assert.Equal(t, "120", recs[0].Get("quantity_change"))
	assert.Equal(t, "", recs[0].Get("unknown"))
	assert.Equal(t, 1, recs[0].Line())
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, Format_CSV, f)

	f, err = ParseFormat("avro")
	require.NoError(t, err)
	assert.Equal(t, Format_Avro, f)

	_, err = ParseFormat("parquet")
	assert.Error(t, err)
}

func TestWriteReadme(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteReadme(dir, Format_CSV, sampleTables())
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "- customers.csv: 2 rows")
	assert.Contains(t, string(b), "- inventory_events.csv: 0 rows")
}
