package pkgdb

import (
	"fmt"
	"os"
	"strings"

	pkgconstants "github.com/k-code-yt/ecommerce-dataset/pkg/constants"
)

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func NewPostgresConfig(fallbackDBName string) *PostgresConfig {
	var postgres PostgresConfig

	postgres.Host = GetEnv("POSTGRES_HOSTS", "localhost")
	postgres.Port = GetEnv("POSTGRES_PORT", "5432")
	postgres.User = GetEnv("POSTGRES_USER", "user")
	postgres.Password = GetEnv("POSTGRES_PASSWORD", "pass")
	postgres.DBName = GetEnv("POSTGRES_DATABASE", fallbackDBName)
	postgres.SSLMode = GetEnv("POSTGRES_SSL_MODE", "disable")

	return &postgres
}

func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func GetConnString(options *PostgresConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s", options.Host, options.Port, options.User, options.Password, options.DBName, options.SSLMode)
}

// Destination is a resolved load target.
type Destination struct {
	Dialect *Dialect
	DSN     string
	// Label is safe to log; it never carries a password.
	Label string
}

// ParseDestination resolves the --destination value. The literal "postgres"
// builds a connection from POSTGRES_* env vars, postgres URLs and key=value
// strings are used as-is, anything else is a SQLite file path.
func ParseDestination(dest string) (*Destination, error) {
	dest = strings.TrimSpace(dest)
	switch {
	case dest == "":
		dest = pkgconstants.DefaultSQLitePath
	case dest == pkgconstants.DestinationPG:
		cfg := NewPostgresConfig("ecommerce")
		return &Destination{
			Dialect: PostgresDialect,
			DSN:     GetConnString(cfg),
			Label:   fmt.Sprintf("postgres://%s@%s:%s/%s", cfg.User, cfg.Host, cfg.Port, cfg.DBName),
		}, nil
	case strings.HasPrefix(dest, "postgres://"), strings.HasPrefix(dest, "postgresql://"):
		return &Destination{Dialect: PostgresDialect, DSN: dest, Label: redactURL(dest)}, nil
	case strings.Contains(dest, "host=") && strings.Contains(dest, "dbname="):
		return &Destination{Dialect: PostgresDialect, DSN: dest, Label: "postgres"}, nil
	}

	path := strings.TrimPrefix(strings.TrimPrefix(dest, "sqlite://"), "file:")
	if path == "" {
		return nil, fmt.Errorf("empty sqlite path in destination %q", dest)
	}
	return &Destination{
		Dialect: SQLiteDialect,
		DSN:     SQLiteDSN(path),
		Label:   path,
	}, nil
}

// SQLiteDSN enables foreign keys on every connection and takes the write lock
// when a transaction begins.
func SQLiteDSN(path string) string {
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_txlock=immediate"
}

func redactURL(dsn string) string {
	at := strings.LastIndex(dsn, "@")
	scheme := strings.Index(dsn, "://")
	if at < 0 || scheme < 0 {
		return dsn
	}
	creds := dsn[scheme+3 : at]
	if colon := strings.Index(creds, ":"); colon >= 0 {
		creds = creds[:colon] + ":***"
	}
	return dsn[:scheme+3] + creds + dsn[at:]
}
