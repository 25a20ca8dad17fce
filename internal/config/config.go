package config

import (
	"errors"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/k-code-yt/ecommerce-dataset/internal/generator"
	pkgconstants "github.com/k-code-yt/ecommerce-dataset/pkg/constants"
	pkgdb "github.com/k-code-yt/ecommerce-dataset/pkg/db"
	"github.com/sirupsen/logrus"
)

// Config carries the defaults of every CLI flag. Flags override it.
type Config struct {
	DataDir     string
	Destination string
	Format      string
	LogLevel    string
	Generator   generator.Config
}

// LoadEnvFile loads a .env file into the process environment. A missing file
// is not an error; variables already set win.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func Load() *Config {
	gen := generator.NewDefaultConfig()
	gen.Seed = getEnvInt64("ECOM_SEED", gen.Seed)
	gen.Customers = getEnvInt("ECOM_CUSTOMERS", gen.Customers)
	gen.Products = getEnvInt("ECOM_PRODUCTS", gen.Products)
	gen.Orders = getEnvInt("ECOM_ORDERS", gen.Orders)
	gen.MaxItemsPerOrder = getEnvInt("ECOM_MAX_ITEMS", gen.MaxItemsPerOrder)

	return &Config{
		DataDir:     pkgdb.GetEnv("ECOM_DATA_DIR", pkgconstants.DefaultDataDir),
		Destination: pkgdb.GetEnv("ECOM_DESTINATION", pkgconstants.DefaultSQLitePath),
		Format:      pkgdb.GetEnv("ECOM_FORMAT", "csv"),
		LogLevel:    pkgdb.GetEnv("ECOM_LOG_LEVEL", "info"),
		Generator:   gen,
	}
}

func getEnvInt(key string, fallback int) int {
	return int(getEnvInt64(key, int64(fallback)))
}

func getEnvInt64(key string, fallback int64) int64 {
	raw := pkgdb.GetEnv(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   key,
			"value": raw,
		}).Warn("CONFIG:INVALID_INT")
		return fallback
	}
	return v
}
