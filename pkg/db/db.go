package pkgdb

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// DB pairs a connection pool with the dialect used to build its SQL.
type DB struct {
	*sqlx.DB
	Dialect *Dialect
}

func NewDBConn(dest *Destination) (*DB, error) {
	conn, err := sqlx.Connect(dest.Dialect.DriverName, dest.DSN)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", dest.Label, err)
	}
	if dest.Dialect == SQLiteDialect {
		// one writer; also keeps the per-connection pragmas on a single conn
		conn.SetMaxOpenConns(1)
	}
	return &DB{DB: conn, Dialect: dest.Dialect}, nil
}

// WrapDB is used by tests that bring their own *sql.DB (sqlmock).
func WrapDB(conn *sqlx.DB, dialect *Dialect) *DB {
	return &DB{DB: conn, Dialect: dialect}
}
