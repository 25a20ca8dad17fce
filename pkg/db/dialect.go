package pkgdb

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
)

type Dialect struct {
	Name       string
	DriverName string

	TextType      string
	MoneyType     string
	RateType      string
	FloatType     string
	TimestampType string
	BoolType      string

	VacuumStmt string
	Isolation  sql.IsolationLevel
}

var (
	SQLiteDialect = &Dialect{
		Name:          "sqlite",
		DriverName:    "sqlite",
		TextType:      "TEXT",
		MoneyType:     "REAL",
		RateType:      "REAL",
		FloatType:     "REAL",
		TimestampType: "TEXT",
		BoolType:      "INTEGER",
		VacuumStmt:    "VACUUM",
		// write lock comes from _txlock=immediate; sqlite is serializable regardless
		Isolation: sql.LevelDefault,
	}

	PostgresDialect = &Dialect{
		Name:          "postgres",
		DriverName:    "postgres",
		TextType:      "TEXT",
		MoneyType:     "NUMERIC(12,2)",
		RateType:      "NUMERIC(6,4)",
		FloatType:     "DOUBLE PRECISION",
		TimestampType: "TIMESTAMPTZ",
		BoolType:      "BOOLEAN",
		VacuumStmt:    "VACUUM ANALYZE",
		Isolation:     sql.LevelSerializable,
	}
)

func init() {
	sqlx.BindDriver(SQLiteDialect.DriverName, sqlx.QUESTION)
}

func (d *Dialect) TxOptions() *sql.TxOptions {
	return &sql.TxOptions{Isolation: d.Isolation}
}
