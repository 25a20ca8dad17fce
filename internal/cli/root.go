package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/k-code-yt/ecommerce-dataset/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewRootCmd(cfg *config.Config) *cobra.Command {
	logLevel := cfg.LogLevel
	root := &cobra.Command{
		Use:   "ecomdata [command]",
		Short: "Synthetic e-commerce dataset generator and loader",
		Long: `Generate a consistent synthetic e-commerce dataset (customers, products, orders,
order items, inventory events) and load it into SQLite or PostgreSQL together with
derived per-customer KPIs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logrus.SetLevel(lvl)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "Log level (or ECOM_LOG_LEVEL env)")

	root.AddCommand(newGenerateCmd(cfg))
	root.AddCommand(newLoadCmd(cfg))
	root.AddCommand(newKPIsCmd(cfg))
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd(config.Load()).ExecuteContext(ctx); err != nil {
		code := ExitCode(err)
		logrus.WithFields(logrus.Fields{
			"exitCode": code,
			"error":    err,
		}).Error("COMMAND:FAILED")
		return code
	}
	return ExitOK
}
