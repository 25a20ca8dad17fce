package main

import (
	"os"

	"github.com/k-code-yt/ecommerce-dataset/internal/cli"
	"github.com/k-code-yt/ecommerce-dataset/internal/config"
	pkgdb "github.com/k-code-yt/ecommerce-dataset/pkg/db"
	"github.com/sirupsen/logrus"
)

func init() {
	envPath := pkgdb.GetEnv("ECOM_ENV_FILE", ".env")
	if err := config.LoadEnvFile(envPath); err != nil {
		logrus.WithFields(logrus.Fields{
			"path":  envPath,
			"error": err,
		}).Fatal("ENV:LOAD_FAILED")
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetOutput(os.Stderr)
}

func main() {
	os.Exit(cli.Execute())
}
