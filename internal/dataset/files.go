package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	pkgconstants "github.com/k-code-yt/ecommerce-dataset/pkg/constants"
	pkgerrors "github.com/k-code-yt/ecommerce-dataset/pkg/errors"
)

type Format string

const (
	Format_CSV  Format = "csv"
	Format_Avro Format = "avro"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case Format_CSV, "":
		return Format_CSV, nil
	case Format_Avro:
		return Format_Avro, nil
	}
	return "", fmt.Errorf("unknown dataset format %q (use csv or avro)", s)
}

func (f Format) FileName(table string) string {
	return table + "." + string(f)
}

func (f Format) codec() tableCodec {
	if f == Format_Avro {
		return avroCodec{}
	}
	return csvCodec{}
}

type tableCodec interface {
	write(path string, t *Table) error
	read(path, name string) (*Table, error)
}

// WriteDir writes every table into dir, creating it if needed, and returns the
// written paths in table order.
func WriteDir(dir string, format Format, tables []*Table) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	paths := make([]string, 0, len(tables))
	for _, t := range tables {
		path := filepath.Join(dir, format.FileName(t.Name))
		if err := format.codec().write(path, t); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// ReadTable reads one source table. A missing file is a MissingSourceFile error.
func ReadTable(dir string, format Format, name string) (*Table, error) {
	path := filepath.Join(dir, format.FileName(name))
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, pkgerrors.NewMissingSourceFileError(path, err)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	t, err := format.codec().read(path, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

// ReadDir reads the five source tables, stopping at the first failure.
func ReadDir(dir string, format Format) (map[string]*Table, error) {
	tables := make(map[string]*Table, len(pkgconstants.SourceTables))
	for _, name := range pkgconstants.SourceTables {
		t, err := ReadTable(dir, format, name)
		if err != nil {
			return nil, err
		}
		tables[name] = t
	}
	return tables, nil
}
